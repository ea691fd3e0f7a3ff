package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/po3rin/saunadge/internal/model"
)

// Recovery turns a panic into the failure badge of style. When the handler
// already started its response, the panic is only logged.
func Recovery(style *model.BadgeStyle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tracked := &headerTracker{ResponseWriter: w}

			defer func() {
				if recovered := recover(); recovered != nil {
					if recovered == http.ErrAbortHandler {
						panic(recovered)
					}

					slog.Error("panic recovered",
						"error", fmt.Sprintf("%v", recovered),
						"headers_sent", tracked.wroteHeader,
						"stack", string(debug.Stack()),
					)
					if tracked.wroteHeader {
						return
					}

					badge := style.Failure()
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(badge.StatusCode())
					_ = model.EncodeBadge(w, badge)
				}
			}()

			next.ServeHTTP(tracked, r)
		})
	}
}

type headerTracker struct {
	http.ResponseWriter
	wroteHeader bool
}

func (t *headerTracker) WriteHeader(statusCode int) {
	t.wroteHeader = true
	t.ResponseWriter.WriteHeader(statusCode)
}

func (t *headerTracker) Write(b []byte) (int, error) {
	t.wroteHeader = true
	return t.ResponseWriter.Write(b)
}

func (t *headerTracker) Unwrap() http.ResponseWriter {
	return t.ResponseWriter
}
