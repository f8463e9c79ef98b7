package dto

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jsamuelsen11/go-todo-service/internal/domain"
	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
)

// MaxBodyBytes caps the size of a todo request body.
const MaxBodyBytes = 1 << 20

const (
	locBody = "body"

	msgInvalidJSON = "must be a valid JSON document"
	msgUnreadable  = "could not be read"
)

// TodoBase is the writable shape shared by create and update bodies.
// Description is nil when the caller sent null or left it out; Done defaults
// to false.
type TodoBase struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Done        bool    `json:"done"`

	present todo.FieldSet
}

// Present reports which attributes were keys in the request body.
func (b TodoBase) Present() todo.FieldSet {
	return b.present
}

func (b TodoBase) fields() todo.Fields {
	return todo.Fields{
		Title:       b.Title,
		Description: b.Description,
		Done:        b.Done,
	}
}

// TodoCreate is the body of POST /todos.
type TodoCreate struct {
	TodoBase
}

// ToFields converts the validated body into domain fields.
func (c TodoCreate) ToFields() todo.Fields {
	return c.fields()
}

// TodoUpdate is the body of PUT and PATCH /todos/{id}. Title is required for
// both verbs.
type TodoUpdate struct {
	TodoBase
}

// ToUpdate converts the validated body into a domain update. With partial
// set, only keys present in the body are applied.
func (u TodoUpdate) ToUpdate(partial bool) todo.Update {
	return todo.Update{
		Fields:  u.fields(),
		Present: u.present,
		Partial: partial,
	}
}

// DecodeTodoCreate reads r, validates it against the todo schema and decodes
// it. Failures are *domain.ValidationError.
func DecodeTodoCreate(r io.Reader) (TodoCreate, error) {
	base, err := decodeTodoBase(r)
	if err != nil {
		return TodoCreate{}, err
	}
	return TodoCreate{TodoBase: base}, nil
}

// DecodeTodoUpdate is DecodeTodoCreate for update bodies.
func DecodeTodoUpdate(r io.Reader) (TodoUpdate, error) {
	base, err := decodeTodoBase(r)
	if err != nil {
		return TodoUpdate{}, err
	}
	return TodoUpdate{TodoBase: base}, nil
}

func decodeTodoBase(r io.Reader) (TodoBase, error) {
	body, err := io.ReadAll(io.LimitReader(r, MaxBodyBytes+1))
	if err != nil {
		return TodoBase{}, bodyError(msgUnreadable)
	}
	if len(body) > MaxBodyBytes {
		return TodoBase{}, bodyError(fmt.Sprintf("must not exceed %d bytes", MaxBodyBytes))
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return TodoBase{}, bodyError(msgInvalidJSON)
	}

	if err := validateAgainst(todoBaseSchema, doc); err != nil {
		return TodoBase{}, err
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return TodoBase{}, bodyError(msgInvalidJSON)
	}
	return baseFromObject(obj), nil
}

// baseFromObject reads the schema-checked object with exact key lookups.
// Keys that differ only in case are unknown and stay ignored.
func baseFromObject(obj map[string]any) TodoBase {
	base := TodoBase{present: presentKeys(obj)}
	if title, ok := obj["title"].(string); ok {
		base.Title = title
	}
	if desc, ok := obj["description"].(string); ok {
		base.Description = &desc
	}
	if done, ok := obj["done"].(bool); ok {
		base.Done = done
	}
	return base
}

func presentKeys(obj map[string]any) todo.FieldSet {
	var set todo.FieldSet
	if _, ok := obj["title"]; ok {
		set |= todo.FieldTitle
	}
	if _, ok := obj["description"]; ok {
		set |= todo.FieldDescription
	}
	if _, ok := obj["done"]; ok {
		set |= todo.FieldDone
	}
	return set
}

func bodyError(msg string) error {
	return &domain.ValidationError{Fields: map[string]string{locBody: msg}}
}
