package middleware

import (
	"log/slog"
	"net/http"
	"strings"
)

const redacted = "[REDACTED]"

// sensitiveHeaders holds lowercase header names whose values never reach the
// debug log.
var sensitiveHeaders = map[string]struct{}{
	"authorization":       {},
	"proxy-authorization": {},
	"x-api-key":           {},
	"cookie":              {},
	"set-cookie":          {},
}

// RedactHeaders converts headers into slog attributes for debug logging.
// Sensitive values are replaced with "[REDACTED]"; multi-value headers are
// joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		if _, ok := sensitiveHeaders[strings.ToLower(key)]; ok {
			attrs = append(attrs, slog.String(key, redacted))
			continue
		}
		attrs = append(attrs, slog.String(key, strings.Join(vals, ",")))
	}
	return attrs
}
