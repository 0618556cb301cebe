// Package logger builds configured *slog.Logger instances and supplies the
// attribute constructors used throughout the application.
//
// A single factory, New, accepts functional Option values and returns a ready
// logger. Context extractors registered at construction time copy
// request-scoped values, such as request IDs, onto every record.
//
// # Architecture
//
// New determines the concrete slog.Handler implementation, slog.NewTextHandler
// or slog.NewJSONHandler, based on the configured Format. It then wraps the
// handler with a decorator that runs any registered ContextExtractor callbacks
// before delegating to the underlying handler, so request-scoped values such
// as request IDs appear on every record logged with a context.
//
// Helper constructors such as Error, RequestID and Component live in attr.go
// and return commonly-used slog.Attr instances to keep attribute naming
// consistent across the codebase.
//
// # Usage
//
//	import "github.com/dmitrymomot/landingkit/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithDevelopment("landingkit"),
//	        logger.WithContextExtractors(requestid.LoggerExtractor()),
//	    )
//	    logger.SetAsDefault(log)
//
//	    log.InfoContext(ctx, "request handled",
//	        logger.Component("signup"),
//	        logger.Duration(time.Since(start)),
//	    )
//	}
//
// # Configuration
//
// Option helpers cover the common knobs:
//
//   - WithDevelopment / WithProduction / WithEnvironment for sensible
//     defaults per environment.
//   - WithFormat and WithLevel to override the output format and level.
//   - WithAttr to attach static attributes.
//   - WithContextExtractors to inject attributes from context.
//
// # Error Handling
//
// The Error helper returns an empty attribute for a nil error, so call sites
// never need a nil check:
//
//	log.Info("operation finished", logger.Error(err))
package logger
