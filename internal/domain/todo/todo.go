// Package todo defines the todo entity and the value types used to create and
// change it.
package todo

// Todo is a task with a title, an optional description and a completion flag.
// ID is assigned by storage on creation and never changes afterwards.
type Todo struct {
	ID          int64
	Title       string
	Description *string
	Done        bool
}

// Fields holds the caller-settable attributes of a Todo after schema defaults
// have been applied: an omitted description is nil and an omitted done flag
// is false.
type Fields struct {
	Title       string
	Description *string
	Done        bool
}

// FieldSet records which attributes a caller explicitly supplied.
type FieldSet uint8

const (
	FieldTitle FieldSet = 1 << iota
	FieldDescription
	FieldDone

	AllFields = FieldTitle | FieldDescription | FieldDone
)

// Has reports whether every field in f is part of s.
func (s FieldSet) Has(f FieldSet) bool {
	return s&f == f
}

// Update describes a change to a stored Todo.
//
// A full update (Partial == false) replaces title, description and done with
// the values in Fields, including defaults for attributes the caller left
// out. A partial update writes only the attributes named in Present.
type Update struct {
	Fields  Fields
	Present FieldSet
	Partial bool
}

// Apply writes the update onto t. The ID is never modified.
func (u Update) Apply(t *Todo) {
	present := AllFields
	if u.Partial {
		present = u.Present
	}

	if present.Has(FieldTitle) {
		t.Title = u.Fields.Title
	}
	if present.Has(FieldDescription) {
		t.Description = u.Fields.Description
	}
	if present.Has(FieldDone) {
		t.Done = u.Fields.Done
	}
}
