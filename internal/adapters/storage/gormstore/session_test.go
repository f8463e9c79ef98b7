package gormstore

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-todo-service/internal/domain"
	"github.com/jsamuelsen11/go-todo-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todo-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-todo-service/internal/ports"
)

func newTestSession(t *testing.T, client *Client) ports.TodoSession {
	t.Helper()

	sess, err := client.Session(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sess.Close() })
	return sess
}

func seed(t *testing.T, sess ports.TodoSession, titles ...string) []todo.Todo {
	t.Helper()

	out := make([]todo.Todo, 0, len(titles))
	for _, title := range titles {
		created, err := sess.Create(context.Background(), todo.Fields{Title: title})
		require.NoError(t, err)
		out = append(out, *created)
	}
	return out
}

func dropTable(t *testing.T, client *Client) {
	t.Helper()
	require.NoError(t, client.db.Exec("DROP TABLE todos").Error)
}

func requireDetail(t *testing.T, err error, kind error, want string) {
	t.Helper()

	require.ErrorIs(t, err, kind)
	detail, ok := domain.Detail(err)
	require.True(t, ok, "error %v carries no detail", err)
	require.Equal(t, want, detail)
}

func TestSession_CreateDefaults(t *testing.T) {
	t.Parallel()

	sess := newTestSession(t, newTestClient(t, newTestConfig(t)))

	created, err := sess.Create(context.Background(), todo.Fields{Title: "Todo1"})
	require.NoError(t, err)

	require.Positive(t, created.ID)
	require.Equal(t, "Todo1", created.Title)
	require.Nil(t, created.Description)
	require.False(t, created.Done)
}

func TestSession_CreateThenGet(t *testing.T) {
	t.Parallel()

	sess := newTestSession(t, newTestClient(t, newTestConfig(t)))
	ctx := context.Background()

	created, err := sess.Create(ctx, todo.Fields{Title: "Todo1", Description: strPtr("Description1"), Done: true})
	require.NoError(t, err)

	got, err := sess.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestSession_GetMissing(t *testing.T) {
	t.Parallel()

	sess := newTestSession(t, newTestClient(t, newTestConfig(t)))

	_, err := sess.Get(context.Background(), 999)
	requireDetail(t, err, domain.ErrNotFound, "Todo not found")
}

func TestSession_List(t *testing.T) {
	t.Parallel()

	sess := newTestSession(t, newTestClient(t, newTestConfig(t)))
	seeded := seed(t, sess, "a", "b", "c", "d", "e")
	ctx := context.Background()

	tests := []struct {
		name       string
		skip       int
		limit      int
		wantTitles []string
	}{
		{"first page", 0, 2, []string{"a", "b"}},
		{"skip two", 2, 2, []string{"c", "d"}},
		{"limit larger than rows", 0, 10, []string{"a", "b", "c", "d", "e"}},
		{"skip past end", 10, 5, []string{}},
		{"zero limit", 0, 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sess.List(ctx, tt.skip, tt.limit)
			require.NoError(t, err)
			require.NotNil(t, got)

			titles := make([]string, len(got))
			for i, td := range got {
				titles[i] = td.Title
			}
			require.Equal(t, tt.wantTitles, titles)
		})
	}

	all, err := sess.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Equal(t, seeded, all)
}

func TestSession_FullUpdateClearsDescription(t *testing.T) {
	t.Parallel()

	sess := newTestSession(t, newTestClient(t, newTestConfig(t)))
	ctx := context.Background()

	created, err := sess.Create(ctx, todo.Fields{Title: "Old", Description: strPtr("keep?"), Done: true})
	require.NoError(t, err)

	updated, err := sess.Update(ctx, created.ID, todo.Update{
		Fields:  todo.Fields{Title: "New"},
		Present: todo.FieldTitle,
	})
	require.NoError(t, err)

	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "New", updated.Title)
	require.Nil(t, updated.Description)
	require.False(t, updated.Done)

	got, err := sess.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, updated, got)
}

func TestSession_PartialUpdateKeepsUnsentFields(t *testing.T) {
	t.Parallel()

	sess := newTestSession(t, newTestClient(t, newTestConfig(t)))
	ctx := context.Background()

	created, err := sess.Create(ctx, todo.Fields{Title: "Old", Description: strPtr("desc"), Done: true})
	require.NoError(t, err)

	updated, err := sess.Update(ctx, created.ID, todo.Update{
		Fields:  todo.Fields{Title: "X"},
		Present: todo.FieldTitle,
		Partial: true,
	})
	require.NoError(t, err)

	require.Equal(t, "X", updated.Title)
	require.Equal(t, "desc", *updated.Description)
	require.True(t, updated.Done)
}

func TestSession_UpdateMissing(t *testing.T) {
	t.Parallel()

	sess := newTestSession(t, newTestClient(t, newTestConfig(t)))

	_, err := sess.Update(context.Background(), 42, todo.Update{Fields: todo.Fields{Title: "X"}})
	requireDetail(t, err, domain.ErrNotFound, "Todo not found")
}

func TestSession_DeleteThenGet(t *testing.T) {
	t.Parallel()

	sess := newTestSession(t, newTestClient(t, newTestConfig(t)))
	ctx := context.Background()
	seeded := seed(t, sess, "a", "b")

	require.NoError(t, sess.Delete(ctx, seeded[1].ID))

	_, err := sess.Get(ctx, seeded[1].ID)
	requireDetail(t, err, domain.ErrNotFound, "Todo not found")

	err = sess.Delete(ctx, seeded[1].ID)
	requireDetail(t, err, domain.ErrNotFound, "Todo not found")
}

func TestSession_IDsNotReusedAfterDelete(t *testing.T) {
	t.Parallel()

	sess := newTestSession(t, newTestClient(t, newTestConfig(t)))
	ctx := context.Background()
	seeded := seed(t, sess, "a", "b")

	require.NoError(t, sess.Delete(ctx, seeded[1].ID))

	created, err := sess.Create(ctx, todo.Fields{Title: "c"})
	require.NoError(t, err)
	require.Greater(t, created.ID, seeded[1].ID)
}

func TestSession_StorageFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	update := todo.Update{Fields: todo.Fields{Title: "X"}}

	tests := []struct {
		name   string
		call   func(ports.TodoSession) error
		detail string
	}{
		{"list", func(s ports.TodoSession) error { _, err := s.List(ctx, 0, 10); return err }, "Failed to fetch todos"},
		{"get", func(s ports.TodoSession) error { _, err := s.Get(ctx, 1); return err }, "Failed to fetch todo by ID"},
		{"create", func(s ports.TodoSession) error {
			_, err := s.Create(ctx, todo.Fields{Title: "X"})
			return err
		}, "Failed to create todo"},
		{"update", func(s ports.TodoSession) error { _, err := s.Update(ctx, 1, update); return err }, "Failed to update todo"},
		{"delete", func(s ports.TodoSession) error { return s.Delete(ctx, 1) }, "Failed to delete todo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, newTestConfig(t))
			dropTable(t, client)
			sess := newTestSession(t, client)

			err := tt.call(sess)
			requireDetail(t, err, domain.ErrStorage, tt.detail)
			require.NotErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestSession_FailureLoggedWithRequestLogger(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, newTestConfig(t))
	dropTable(t, client)
	sess := newTestSession(t, client)

	var buf bytes.Buffer
	requestLogger := slog.New(slog.NewJSONHandler(&buf, nil)).With(slog.String("request_id", "req-db-1"))
	ctx := logging.WithLogger(context.Background(), requestLogger)

	_, err := sess.Get(ctx, 3)
	require.ErrorIs(t, err, domain.ErrStorage)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), "log output: %s", buf.String())
	require.Equal(t, "storage operation failed", line["msg"])
	require.Equal(t, "req-db-1", line["request_id"])
	require.Equal(t, opGet, line["operation"])
	require.EqualValues(t, 3, line["todo_id"])
	require.Equal(t, DriverSQLite, line["db.system"])
}

func TestSession_UpdateFailureLeavesRowUnchanged(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, newTestConfig(t))
	sess := newTestSession(t, client)
	ctx := context.Background()

	created, err := sess.Create(ctx, todo.Fields{Title: "Old", Description: strPtr("desc")})
	require.NoError(t, err)

	require.NoError(t, client.db.Exec(`CREATE TRIGGER reject_update BEFORE UPDATE ON todos
		BEGIN SELECT RAISE(ABORT, 'updates disabled'); END`).Error)

	_, err = sess.Update(ctx, created.ID, todo.Update{Fields: todo.Fields{Title: "New"}})
	requireDetail(t, err, domain.ErrStorage, "Failed to update todo")

	got, err := sess.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestSession_ClosedSession(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, newTestConfig(t))
	sess, err := client.Session(context.Background())
	require.NoError(t, err)

	require.NoError(t, sess.Close())
	require.NoError(t, sess.Close(), "second Close must be a no-op")

	_, err = sess.Get(context.Background(), 1)
	requireDetail(t, err, domain.ErrStorage, "Failed to fetch todo by ID")
	require.ErrorIs(t, err, errSessionClosed)
}

func TestSession_SessionsShareCommittedRows(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, newTestConfig(t))
	ctx := context.Background()

	writer := newTestSession(t, client)
	created, err := writer.Create(ctx, todo.Fields{Title: "shared"})
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := newTestSession(t, client)
	got, err := reader.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestSession_CircuitBreakerOpensOnStorageFailures(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t)
	cfg.CircuitBreaker.MaxFailures = 2
	cfg.CircuitBreaker.Timeout = time.Minute
	client := newTestClient(t, cfg)
	sess := newTestSession(t, client)
	ctx := context.Background()

	// Missing rows do not count against the breaker.
	for range 3 {
		_, err := sess.Get(ctx, 404)
		require.ErrorIs(t, err, domain.ErrNotFound)
	}
	require.NoError(t, client.HealthCheck(ctx))

	dropTable(t, client)
	for range 2 {
		_, err := sess.List(ctx, 0, 10)
		require.ErrorIs(t, err, domain.ErrStorage)
	}

	_, err := sess.Get(ctx, 1)
	requireDetail(t, err, domain.ErrStorage, "Failed to fetch todo by ID")
	require.ErrorIs(t, err, gobreaker.ErrOpenState)

	require.ErrorContains(t, client.HealthCheck(ctx), "circuit breaker open")
}
