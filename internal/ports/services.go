package ports

import (
	"context"

	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
)

// TodoService defines the service port for todo operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Each call is served by exactly one storage session.
type TodoService interface {
	// ListTodos returns up to limit todos in creation order, skipping the
	// first skip entries.
	ListTodos(ctx context.Context, skip, limit int) ([]todo.Todo, error)

	// GetTodo returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, id int64) (*todo.Todo, error)

	// CreateTodo persists a new todo and returns it with its assigned ID.
	CreateTodo(ctx context.Context, fields todo.Fields) (*todo.Todo, error)

	// UpdateTodo applies a full or partial update and returns the stored result.
	// Returns domain.ErrNotFound if the todo does not exist.
	UpdateTodo(ctx context.Context, id int64, update todo.Update) (*todo.Todo, error)

	// DeleteTodo removes a todo permanently.
	// Returns domain.ErrNotFound if the todo does not exist.
	DeleteTodo(ctx context.Context, id int64) error
}
