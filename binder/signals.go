package binder

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxSignalsBody caps the accepted signals payload size (1MB). Signals carry
// small bits of UI state, never bulk data.
const maxSignalsBody = 1 << 20

// Signals creates a binder for client signal state. Signals travel in the
// `datastar` query parameter on GET requests and as a JSON body on other
// methods, and bind through standard `json:` struct tags.
//
// Requests carrying no signals payload yield ErrBinderNotApplicable so the
// binder chain can continue.
//
// Example:
//
//	type CounterSignals struct {
//		Count int `json:"count"`
//	}
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		var payload []byte

		if r.Method == http.MethodGet {
			raw := r.URL.Query().Get("datastar")
			if raw == "" {
				return fmt.Errorf("%w: no signals query parameter", ErrBinderNotApplicable)
			}
			payload = []byte(raw)
		} else {
			mediaType := r.Header.Get("Content-Type")
			if idx := strings.Index(mediaType, ";"); idx != -1 {
				mediaType = strings.TrimSpace(mediaType[:idx])
			}
			if mediaType != "application/json" {
				return fmt.Errorf("%w: content type %q carries no signals", ErrBinderNotApplicable, mediaType)
			}

			body, err := io.ReadAll(io.LimitReader(r.Body, maxSignalsBody))
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidSignals, err)
			}
			if len(body) == 0 {
				return fmt.Errorf("%w: empty signals body", ErrBinderNotApplicable)
			}
			payload = body
		}

		if err := json.Unmarshal(payload, v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSignals, err)
		}
		return nil
	}
}
