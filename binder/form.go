package binder

import (
	"fmt"
	"net/http"
	"strings"
)

// defaultMaxMemory caps the in-memory portion of multipart form parsing (10MB).
const defaultMaxMemory = 10 << 20

// Form creates a binder for form submissions. It handles both
// application/x-www-form-urlencoded and multipart/form-data bodies, covering
// plain form posts as well as the form content type used by client actions.
//
// Supported struct tags:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"`    - skips the field
//
// Requests without a form body (other methods, other content types) yield
// ErrBinderNotApplicable so the binder chain can continue.
//
// Example:
//
//	type SignupForm struct {
//		Name     string `form:"name"`
//		Email    string `form:"email"`
//		Terms    bool   `form:"terms"`    // checkbox: absent means false
//		Website  string `form:"website"`  // optional field
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			return fmt.Errorf("%w: %s request has no form body", ErrBinderNotApplicable, r.Method)
		}

		mediaType := r.Header.Get("Content-Type")
		if idx := strings.Index(mediaType, ";"); idx != -1 {
			mediaType = strings.TrimSpace(mediaType[:idx])
		}

		var values map[string][]string

		switch {
		case mediaType == "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.PostForm

		case strings.HasPrefix(mediaType, "multipart/form-data"):
			if err := r.ParseMultipartForm(defaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			if r.MultipartForm == nil {
				values = map[string][]string{}
			} else {
				values = r.MultipartForm.Value
			}

		default:
			return fmt.Errorf("%w: content type %q is not a form", ErrBinderNotApplicable, mediaType)
		}

		return bindToStruct(v, "form", values, ErrInvalidForm)
	}
}
