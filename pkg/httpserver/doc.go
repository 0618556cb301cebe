// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, lifecycle hooks, and a health-check handler.
//
// The core type is Server. Run starts the underlying http.Server and blocks
// until the context is cancelled, an interrupt or TERM signal arrives, or the
// listener fails. Shutdown then drains in-flight requests within a
// configurable deadline.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(context.Background(), log))
//
//	srv := httpserver.NewFromConfig(cfg.HTTP,
//		httpserver.WithLogger(log),
//		httpserver.WithStartHook(func(log *slog.Logger) {
//			log.Info("HTTP server starting", slog.String("addr", cfg.HTTP.Addr))
//		}),
//	)
//	if err := srv.Run(context.Background(), r); err != nil {
//		log.Error("Server stopped with error", logger.Error(err))
//	}
//
// Construction goes through New or NewFromConfig with functional Option
// values. WithStartHook and WithStopHook run side effects around the server
// lifecycle, for example logging the bound address or flushing buffers.
//
// # Errors
//
// Run wraps listen failures with ErrStart and Shutdown wraps drain failures
// with ErrShutdown, so callers can distinguish them with errors.Is. A clean
// http.ErrServerClosed is never surfaced as an error.
package httpserver
