// Package app provides application services that orchestrate use cases by
// coordinating between domain types and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-todo-service/internal/domain"
	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-todo-service/internal/ports"
)

const detailSessionUnavailable = "Failed to open storage session"

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService. Every call opens exactly one
// storage session, runs a single data access operation on it and releases it
// before returning, whatever the outcome.
type TodoService struct {
	sessions ports.SessionProvider
	logger   *slog.Logger
}

// NewTodoService creates a TodoService backed by the given session provider.
// A nil logger discards output.
func NewTodoService(sessions ports.SessionProvider, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		sessions: sessions,
		logger:   logger,
	}
}

// ListTodos returns up to limit todos in creation order after skipping skip.
func (s *TodoService) ListTodos(ctx context.Context, skip, limit int) ([]todo.Todo, error) {
	s.log(ctx).InfoContext(ctx, "listing todos", slog.Int("skip", skip), slog.Int("limit", limit))

	if err := validatePage(skip, limit); err != nil {
		return nil, err
	}

	var todos []todo.Todo
	err := s.withSession(ctx, "ListTodos", 0, func(sess ports.TodoSession) error {
		var err error
		todos, err = sess.List(ctx, skip, limit)
		return err
	})
	if err != nil {
		return nil, err
	}

	return todos, nil
}

// GetTodo returns a single todo by ID.
func (s *TodoService) GetTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	s.log(ctx).InfoContext(ctx, "fetching todo", slog.Int64("todo_id", id))

	var t *todo.Todo
	err := s.withSession(ctx, "GetTodo", id, func(sess ports.TodoSession) error {
		var err error
		t, err = sess.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

// CreateTodo stores a new todo and returns it with its assigned ID.
func (s *TodoService) CreateTodo(ctx context.Context, fields todo.Fields) (*todo.Todo, error) {
	s.log(ctx).InfoContext(ctx, "creating todo", slog.String("title", fields.Title))

	var created *todo.Todo
	err := s.withSession(ctx, "CreateTodo", 0, func(sess ports.TodoSession) error {
		var err error
		created, err = sess.Create(ctx, fields)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateTodo applies a full or partial update to an existing todo.
func (s *TodoService) UpdateTodo(ctx context.Context, id int64, update todo.Update) (*todo.Todo, error) {
	s.log(ctx).InfoContext(ctx, "updating todo",
		slog.Int64("todo_id", id),
		slog.Bool("partial", update.Partial),
	)

	var updated *todo.Todo
	err := s.withSession(ctx, "UpdateTodo", id, func(sess ports.TodoSession) error {
		var err error
		updated, err = sess.Update(ctx, id, update)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteTodo removes a todo permanently.
func (s *TodoService) DeleteTodo(ctx context.Context, id int64) error {
	s.log(ctx).InfoContext(ctx, "deleting todo", slog.Int64("todo_id", id))

	return s.withSession(ctx, "DeleteTodo", id, func(sess ports.TodoSession) error {
		return sess.Delete(ctx, id)
	})
}

// withSession opens a session, runs fn on it and closes it on every exit
// path. A failure to close is logged but does not change the result.
func (s *TodoService) withSession(ctx context.Context, op string, id int64, fn func(ports.TodoSession) error) error {
	sess, err := s.sessions.Session(ctx)
	if err != nil {
		s.logError(ctx, op, id, err)
		return domain.StorageFailure(detailSessionUnavailable, err)
	}
	defer func() {
		if cerr := sess.Close(); cerr != nil {
			s.log(ctx).LogAttrs(ctx, slog.LevelWarn, "failed to close storage session",
				logging.OperationAttrs(op, id, slog.Any("error", cerr))...)
		}
	}()

	if err := fn(sess); err != nil {
		s.logError(ctx, op, id, err)
		return err
	}
	return nil
}

// log returns the request-scoped logger when ctx carries one.
func (s *TodoService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}

// logError logs a failed operation. Missing todos are an expected outcome
// and log at info.
func (s *TodoService) logError(ctx context.Context, op string, id int64, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		s.log(ctx).LogAttrs(ctx, slog.LevelInfo, "todo not found", logging.OperationAttrs(op, id)...)
		return
	}
	s.log(ctx).LogAttrs(ctx, slog.LevelError, "todo operation failed",
		logging.OperationAttrs(op, id, slog.Any("error", err))...)
}

// validatePage rejects negative paging values before they reach storage.
func validatePage(skip, limit int) error {
	fields := make(map[string]string)
	if skip < 0 {
		fields["query.skip"] = fmt.Sprintf("must be greater than or equal to 0, got %d", skip)
	}
	if limit < 0 {
		fields["query.limit"] = fmt.Sprintf("must be greater than or equal to 0, got %d", limit)
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
