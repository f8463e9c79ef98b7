// Package dto provides HTTP request/response data transfer objects, the JSON
// Schema that guards todo request bodies, and RFC 9457 Problem Details error
// responses for the inbound HTTP adapter layer.
package dto

import "github.com/jsamuelsen11/go-todo-service/internal/domain/todo"

// Todo is the JSON representation of a todo. Description serialises as null
// when unset.
type Todo struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Done        bool    `json:"done"`
}

// Message is a plain {"message": ...} body.
type Message struct {
	Message string `json:"message"`
}

// ToTodo converts a domain todo to its response DTO.
func ToTodo(t *todo.Todo) Todo {
	return Todo{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Done:        t.Done,
	}
}

// ToTodoList converts domain todos to response DTOs. The result is never nil
// so an empty list encodes as [].
func ToTodoList(todos []todo.Todo) []Todo {
	items := make([]Todo, len(todos))
	for i := range todos {
		items[i] = ToTodo(&todos[i])
	}
	return items
}
