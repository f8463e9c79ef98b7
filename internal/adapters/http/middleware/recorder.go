package middleware

import "net/http"

// recorder captures the status and size of a response. Every middleware
// that needs the outcome obtains it through record, so the stack wraps the
// client's writer once however many of them are installed.
type recorder struct {
	http.ResponseWriter
	status  int
	bytes   int64
	started bool
}

// record returns w itself when an outer middleware already wrapped it.
func record(w http.ResponseWriter) *recorder {
	if rec, ok := w.(*recorder); ok {
		return rec
	}
	return &recorder{ResponseWriter: w}
}

// WriteHeader forwards the first status code and drops later ones.
func (rec *recorder) WriteHeader(code int) {
	if rec.started {
		return
	}
	rec.status = code
	rec.started = true
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *recorder) Write(b []byte) (int, error) {
	if !rec.started {
		rec.WriteHeader(http.StatusOK)
	}
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += int64(n)
	return n, err
}

// Status is the code sent to the client. A handler that wrote nothing gets
// net/http's implicit 200.
func (rec *recorder) Status() int {
	if rec.status == 0 {
		return http.StatusOK
	}
	return rec.status
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rec *recorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}
