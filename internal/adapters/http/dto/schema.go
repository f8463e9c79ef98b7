package dto

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jsamuelsen11/go-todo-service/internal/domain"
)

//go:embed schemas/todo_base.json
var todoBaseSchemaJSON []byte

const todoBaseSchemaURL = "todo_base.json"

// todoBaseSchema validates TodoCreate and TodoUpdate bodies. Compiled once at
// package init; a broken embedded schema is a build defect, hence the panic.
var todoBaseSchema = mustCompileSchema(todoBaseSchemaURL, todoBaseSchemaJSON)

func mustCompileSchema(url string, doc []byte) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource(url, bytes.NewReader(doc)); err != nil {
		panic(fmt.Sprintf("adding schema %s: %v", url, err))
	}
	schema, err := compiler.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("compiling schema %s: %v", url, err))
	}
	return schema
}

// validateAgainst checks a decoded JSON document against schema and converts
// failures into a *domain.ValidationError keyed by body location.
func validateAgainst(schema *jsonschema.Schema, doc any) error {
	err := schema.Validate(doc)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return &domain.ValidationError{Fields: map[string]string{locBody: err.Error()}}
	}

	fields := make(map[string]string)
	collectSchemaErrors(fields, verr)
	return &domain.ValidationError{Fields: fields}
}

// collectSchemaErrors flattens the cause tree into one message per leaf
// location. The first message seen for a location wins.
func collectSchemaErrors(fields map[string]string, verr *jsonschema.ValidationError) {
	if len(verr.Causes) == 0 {
		loc := bodyLocation(verr.InstanceLocation)
		if _, ok := fields[loc]; !ok {
			fields[loc] = verr.Message
		}
		return
	}
	for _, cause := range verr.Causes {
		collectSchemaErrors(fields, cause)
	}
}

// bodyLocation turns a JSON pointer ("/title") into a request location
// ("body.title"). The empty pointer is the body itself.
func bodyLocation(pointer string) string {
	pointer = strings.TrimPrefix(pointer, "#")
	pointer = strings.TrimPrefix(pointer, "/")
	if pointer == "" {
		return locBody
	}

	segments := strings.Split(pointer, "/")
	for i, s := range segments {
		s = strings.ReplaceAll(s, "~1", "/")
		segments[i] = strings.ReplaceAll(s, "~0", "~")
	}
	return locBody + "." + strings.Join(segments, ".")
}
