package gormstore

import "github.com/jsamuelsen11/go-todo-service/internal/domain/todo"

// todoRecord is the persisted shape of a todo. It never leaves this package;
// callers see todo.Todo.
type todoRecord struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Title       string  `gorm:"column:title;type:varchar(255);not null"`
	Description *string `gorm:"column:description;type:varchar(255)"`
	Done        bool    `gorm:"column:done;not null;default:false"`
}

// TableName pins the table name so it does not depend on gorm's pluralizer.
func (todoRecord) TableName() string {
	return "todos"
}

func newTodoRecord(f todo.Fields) todoRecord {
	return todoRecord{
		Title:       f.Title,
		Description: f.Description,
		Done:        f.Done,
	}
}

func (r todoRecord) toDomain() todo.Todo {
	return todo.Todo{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Done:        r.Done,
	}
}

// apply writes u onto the record with the same full/partial semantics as
// todo.Update.Apply.
func (r *todoRecord) apply(u todo.Update) {
	t := r.toDomain()
	u.Apply(&t)

	r.Title = t.Title
	r.Description = t.Description
	r.Done = t.Done
}

func toDomainList(records []todoRecord) []todo.Todo {
	out := make([]todo.Todo, len(records))
	for i, r := range records {
		out[i] = r.toDomain()
	}
	return out
}
