// Package binder parses HTTP requests into typed request structs.
//
// Each binder handles one request surface and processes only its own struct
// tags, so several binders can populate a single struct:
//
//	type ValidateFieldRequest struct {
//		Field string `query:"field"`
//		Name  string `form:"name"`
//		Email string `form:"email"`
//	}
//
//	handler.Wrap(h, handler.WithBinders(
//		binder.Query(),
//		binder.Form(),
//	))
//
// A binder that does not apply to the incoming request (for example Form on a
// GET, or Signals without a signals payload) returns ErrBinderNotApplicable,
// which the handler wrapper treats as "skip and try the next binder" rather
// than a client error.
//
// Supported field types across binders: string, ints, uints, floats, bool,
// slices of those, and pointers for optional fields. Boolean parsing is
// lenient to cover HTML checkbox conventions ("on", "yes", "1").
package binder
