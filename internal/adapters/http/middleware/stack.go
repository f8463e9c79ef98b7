// Package middleware provides the inbound HTTP pipeline of the todo service.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-todo-service/internal/platform/telemetry"
)

// Stack returns the middleware every route runs behind, outermost first:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → router
//
// Recovery must stay outermost and Logging must follow both ID middlewares,
// since its request logger copies their values. A nil metrics disables
// request metrics.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
	}
}
