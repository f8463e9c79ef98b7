package ports

import (
	"context"

	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
)

// SessionProvider hands out storage sessions. Implemented by the storage
// adapter; called by the application layer once per request.
type SessionProvider interface {
	// Session acquires a new storage session bound to ctx. The caller owns the
	// session and must Close it on every exit path.
	Session(ctx context.Context) (TodoSession, error)
}

// TodoSession is the data access port for the todos table, scoped to a single
// storage session. Storage failures are reported as domain.ErrStorage with a
// client-safe detail; missing rows as domain.ErrNotFound.
//
// A TodoSession is not safe for concurrent use.
type TodoSession interface {
	// List returns up to limit todos in creation order after skipping skip rows.
	List(ctx context.Context, skip, limit int) ([]todo.Todo, error)

	// Get returns the todo with the given ID.
	Get(ctx context.Context, id int64) (*todo.Todo, error)

	// Create inserts a todo and returns the stored row including its ID.
	Create(ctx context.Context, fields todo.Fields) (*todo.Todo, error)

	// Update loads the todo, applies update and returns the stored row.
	Update(ctx context.Context, id int64, update todo.Update) (*todo.Todo, error)

	// Delete removes the todo with the given ID.
	Delete(ctx context.Context, id int64) error

	// Close releases the session. Calling Close more than once is a no-op.
	Close() error
}
