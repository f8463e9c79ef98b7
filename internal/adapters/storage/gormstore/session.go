package gormstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/go-todo-service/internal/domain"
	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-service/internal/ports"
)

// Operation names used for spans, metrics and logs.
const (
	opList   = "list"
	opGet    = "get"
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// Client-safe failure details.
const (
	detailNotFound = "Todo not found"
	detailList     = "Failed to fetch todos"
	detailGet      = "Failed to fetch todo by ID"
	detailCreate   = "Failed to create todo"
	detailUpdate   = "Failed to update todo"
	detailDelete   = "Failed to delete todo"
)

var errSessionClosed = errors.New("storage session is closed")

var _ ports.TodoSession = (*Session)(nil)

// Session is a storage session bound to one pooled connection. Writes run in
// a transaction on that connection and roll back on any error. A Session is
// not safe for concurrent use.
type Session struct {
	client *Client
	db     *gorm.DB
	conn   *sql.Conn
	closed bool
}

// List returns up to limit todos ordered by id after skipping skip rows.
// A limit of zero yields an empty list without a query.
func (s *Session) List(ctx context.Context, skip, limit int) ([]todo.Todo, error) {
	if limit == 0 {
		return []todo.Todo{}, nil
	}

	var records []todoRecord
	err := s.run(ctx, opList, func(db *gorm.DB) error {
		return db.Order("id").Offset(skip).Limit(limit).Find(&records).Error
	})
	if err != nil {
		return nil, s.fail(ctx, opList, 0, detailList, err)
	}

	return toDomainList(records), nil
}

// Get returns the todo with the given id.
func (s *Session) Get(ctx context.Context, id int64) (*todo.Todo, error) {
	var rec todoRecord
	err := s.run(ctx, opGet, func(db *gorm.DB) error {
		return db.First(&rec, id).Error
	})
	if err != nil {
		return nil, s.fail(ctx, opGet, id, detailGet, err)
	}

	t := rec.toDomain()
	return &t, nil
}

// Create inserts a todo and returns it with its storage-assigned id.
func (s *Session) Create(ctx context.Context, fields todo.Fields) (*todo.Todo, error) {
	rec := newTodoRecord(fields)
	err := s.run(ctx, opCreate, func(db *gorm.DB) error {
		return db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&rec).Error
		})
	})
	if err != nil {
		return nil, s.fail(ctx, opCreate, 0, detailCreate, err)
	}

	t := rec.toDomain()
	return &t, nil
}

// Update loads the todo, applies update and returns the row as stored.
func (s *Session) Update(ctx context.Context, id int64, update todo.Update) (*todo.Todo, error) {
	var stored todoRecord
	err := s.run(ctx, opUpdate, func(db *gorm.DB) error {
		return db.Transaction(func(tx *gorm.DB) error {
			var rec todoRecord
			if err := tx.First(&rec, id).Error; err != nil {
				return err
			}

			rec.apply(update)
			if err := tx.Save(&rec).Error; err != nil {
				return err
			}

			return tx.First(&stored, id).Error
		})
	})
	if err != nil {
		return nil, s.fail(ctx, opUpdate, id, detailUpdate, err)
	}

	t := stored.toDomain()
	return &t, nil
}

// Delete removes the todo with the given id.
func (s *Session) Delete(ctx context.Context, id int64) error {
	err := s.run(ctx, opDelete, func(db *gorm.DB) error {
		return db.Transaction(func(tx *gorm.DB) error {
			var rec todoRecord
			if err := tx.First(&rec, id).Error; err != nil {
				return err
			}
			return tx.Delete(&rec).Error
		})
	})
	if err != nil {
		return s.fail(ctx, opDelete, id, detailDelete, err)
	}
	return nil
}

// Close returns the connection to the pool. Subsequent calls are no-ops.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.conn.Close()
}

// run executes fn against this session's connection through the circuit
// breaker, inside a client span, and records metrics for the outcome.
func (s *Session) run(ctx context.Context, op string, fn func(db *gorm.DB) error) error {
	if s.closed {
		return errSessionClosed
	}

	start := time.Now()
	ctx, span := s.client.startSpan(ctx, op)
	defer span.End()

	_, err := s.client.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, fn(s.db.WithContext(ctx))
	})

	finishSpan(span, err)
	s.client.recordMetrics(ctx, op, start, err)

	return err
}

// fail maps a storage error to a domain error: a missing row becomes
// NotFound, anything else is logged and hidden behind detail.
func (s *Session) fail(ctx context.Context, op string, id int64, detail string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFound(detailNotFound)
	}

	s.client.logFailure(ctx, op, id, err)
	return domain.StorageFailure(detail, err)
}
