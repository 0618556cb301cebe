package binder

import (
	"net/http"
)

// Query creates a binder for URL query parameters. It applies to every
// request method.
//
// Supported struct tags:
//   - `query:"name"` - binds to query parameter "name"
//   - `query:"-"`    - skips the field
//
// Example:
//
//	type SelectTabRequest struct {
//		ID string `query:"id"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
