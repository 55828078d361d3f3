package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the request's trace identifier in both directions:
// a caller may supply one, and the response always echoes the one used.
const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a trace identifier to every request. The caller's
// header value is honoured when present so traces can span services;
// otherwise a fresh UUID is minted. The identifier is stamped onto the
// request-scoped logger, so every log line of the request carries it.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
