package binder

import (
	"fmt"
	"net/http"
	"reflect"
)

// Path creates a binder for URL path parameters using the provided extractor,
// typically chi.URLParam. The extractor is called once per tagged field.
//
// Supported struct tags:
//   - `path:"name"` - binds to path parameter "name"
//   - `path:"-"`    - skips the field
//
// Example with chi:
//
//	type CounterRequest struct {
//		Op    string `path:"op"`
//		Count int    `json:"count"`
//	}
//
//	r.Post("/counter/{op}", handler.Wrap(h,
//		handler.WithBinders(
//			binder.Path(chi.URLParam),
//			binder.Signals(),
//		),
//	))
func Path(extractor func(r *http.Request, fieldName string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Ptr || rv.IsNil() {
			return fmt.Errorf("%w: target must be a non-nil pointer", ErrInvalidPath)
		}

		rv = rv.Elem()
		if rv.Kind() != reflect.Struct {
			return fmt.Errorf("%w: target must be a pointer to struct", ErrInvalidPath)
		}

		rt := rv.Type()

		for i := range rv.NumField() {
			field := rv.Field(i)
			fieldType := rt.Field(i)

			if !field.CanSet() {
				continue
			}

			// Only explicitly tagged fields bind from the path; untagged
			// fields belong to other binders in the chain.
			tag := fieldType.Tag.Get("path")
			if tag == "" || tag == "-" {
				continue
			}
			paramName, skip := parseFieldTag(fieldType, "path")
			if skip {
				continue
			}

			value := extractor(r, paramName)
			if value == "" {
				continue
			}

			if err := setFieldValue(field, fieldType.Type, []string{value}); err != nil {
				return fmt.Errorf("%w: field %s: %v", ErrInvalidPath, fieldType.Name, err)
			}
		}

		return nil
	}
}
