package httpserver

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/landingkit/pkg/logger"
)

// HealthCheckHandler returns a handler usable for both liveness and readiness
// probes.
//
// With no dependency functions it answers 200 OK with body "ALIVE". With one
// or more functions it runs each of them and answers 200 OK "READY" when all
// succeed, or 500 "NOT_READY" when any fails.
func HealthCheckHandler(ctx context.Context, log *slog.Logger, funcs ...func(context.Context) error) http.HandlerFunc {
	probe := func(w http.ResponseWriter, code int, body string) {
		w.WriteHeader(code)
		io.WriteString(w, body)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if len(funcs) == 0 {
			probe(w, http.StatusOK, "ALIVE")
			return
		}

		for _, f := range funcs {
			if err := f(ctx); err != nil {
				log.ErrorContext(ctx, "Readiness check failed", logger.Error(err))
				probe(w, http.StatusInternalServerError, "NOT_READY")
				return
			}
		}

		probe(w, http.StatusOK, "READY")
	}
}
