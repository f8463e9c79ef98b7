package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-todo-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todo-service/internal/domain"
	"github.com/jsamuelsen11/go-todo-service/internal/platform/logging"
)

const (
	defaultSkip  = 0
	defaultLimit = 10

	msgInteger     = "must be a valid integer"
	msgNonNegative = "must be greater than or equal to 0"
)

// parseID extracts an int64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{
			Fields: map[string]string{"path." + param: msgInteger},
		}
	}
	return id, nil
}

// parsePage reads the skip and limit query parameters. Absent values take
// their defaults; present values must be non-negative integers.
func parsePage(r *http.Request) (skip, limit int, err error) {
	q := r.URL.Query()
	fields := make(map[string]string)

	skip = parseNonNegative(q.Get("skip"), q.Has("skip"), defaultSkip, "query.skip", fields)
	limit = parseNonNegative(q.Get("limit"), q.Has("limit"), defaultLimit, "query.limit", fields)

	if len(fields) > 0 {
		return 0, 0, &domain.ValidationError{Fields: fields}
	}
	return skip, limit, nil
}

func parseNonNegative(raw string, present bool, def int, loc string, fields map[string]string) int {
	if !present {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		fields[loc] = msgInteger
		return 0
	}
	if v < 0 {
		fields[loc] = msgNonNegative
		return 0
	}
	return v
}

// writeJSON writes a JSON response with the given status code. The status is
// already on the wire when encoding fails, so the failure is only logged.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctx := r.Context()
		logging.FromContext(ctx).ErrorContext(ctx, "failed to encode response",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}
}

// decodeTodoCreate validates and decodes a create body. On failure it writes
// a 422 response and returns false.
func decodeTodoCreate(w http.ResponseWriter, r *http.Request) (dto.TodoCreate, bool) {
	body, err := dto.DecodeTodoCreate(http.MaxBytesReader(w, r.Body, dto.MaxBodyBytes))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return dto.TodoCreate{}, false
	}
	return body, true
}

// decodeTodoUpdate is decodeTodoCreate for PUT and PATCH bodies.
func decodeTodoUpdate(w http.ResponseWriter, r *http.Request) (dto.TodoUpdate, bool) {
	body, err := dto.DecodeTodoUpdate(http.MaxBytesReader(w, r.Body, dto.MaxBodyBytes))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return dto.TodoUpdate{}, false
	}
	return body, true
}
