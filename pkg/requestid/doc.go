// Package requestid provides HTTP middleware and helpers for request
// correlation identifiers.
//
// A request ID is a short opaque string that uniquely identifies an incoming
// HTTP request. Propagating the same ID through headers, context, and
// structured logs makes it easy to correlate records belonging to the same
// user interaction.
//
// # Overview
//
//   - Middleware attaches a request ID to every request. A client-supplied
//     "X-Request-ID" header is validated and reused; otherwise a new UUIDv4
//     string is generated. The chosen ID is stored in the request context and
//     echoed back in the response header.
//   - WithContext and FromContext store and extract request IDs from a
//     context.Context.
//   - LoggerExtractor integrates with the logger package so the request ID is
//     injected into log records automatically.
//
// # Usage
//
// Install the middleware on the router, then read the ID wherever the
// request context is available:
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
//	// inside a handler
//	id := requestid.FromContext(r.Context())
//
// The package does not return errors. Invalid or empty request IDs supplied
// by a client are silently replaced by a freshly generated UUID.
package requestid
