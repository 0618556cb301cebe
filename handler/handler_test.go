package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landingkit/binder"
	"github.com/dmitrymomot/landingkit/handler"
)

// Mock response for testing
type mockResponse struct {
	statusCode int
	body       string
	renderErr  error
}

func (m mockResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if m.renderErr != nil {
		return m.renderErr
	}
	w.WriteHeader(m.statusCode)
	w.Write([]byte(m.body))
	return nil
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("basic handler without options", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
			assert.NotNil(t, ctx)
			assert.Equal(t, "", req) // zero value
			return mockResponse{statusCode: http.StatusOK, body: "success"}
		})

		wrapped := handler.Wrap(h)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		rec := httptest.NewRecorder()

		wrapped(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "success", rec.Body.String())
	})

	t.Run("handler with render error", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
			return mockResponse{renderErr: errors.New("render failed")}
		})

		wrapped := handler.Wrap(h)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		rec := httptest.NewRecorder()

		wrapped(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "render failed")
	})

	t.Run("handler returns nil response", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
			return nil
		})

		wrapped := handler.Wrap(h)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		rec := httptest.NewRecorder()

		wrapped(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "handler returned nil response")
	})

	t.Run("binders run in order", func(t *testing.T) {
		t.Parallel()
		type testRequest struct {
			Value string
		}

		var executionOrder []string

		binder1 := func(r *http.Request, v any) error {
			executionOrder = append(executionOrder, "binder1")
			if req, ok := v.(*testRequest); ok {
				req.Value = "first"
			}
			return nil
		}

		binder2 := func(r *http.Request, v any) error {
			executionOrder = append(executionOrder, "binder2")
			if req, ok := v.(*testRequest); ok {
				req.Value = "second"
			}
			return nil
		}

		h := handler.HandlerFunc[handler.Context, testRequest](func(ctx handler.Context, req testRequest) handler.Response {
			return mockResponse{statusCode: http.StatusOK, body: req.Value}
		})

		wrapped := handler.Wrap(h, handler.WithBinders[handler.Context, testRequest](binder1, binder2))

		req := httptest.NewRequest(http.MethodPost, "/test", nil)
		rec := httptest.NewRecorder()

		wrapped(rec, req)

		assert.Equal(t, []string{"binder1", "binder2"}, executionOrder)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "second", rec.Body.String())
	})

	t.Run("not applicable binder is skipped", func(t *testing.T) {
		t.Parallel()
		type testRequest struct {
			Value string
		}

		skipped := func(r *http.Request, v any) error {
			return binder.ErrBinderNotApplicable
		}

		applied := func(r *http.Request, v any) error {
			if req, ok := v.(*testRequest); ok {
				req.Value = "bound"
			}
			return nil
		}

		h := handler.HandlerFunc[handler.Context, testRequest](func(ctx handler.Context, req testRequest) handler.Response {
			return mockResponse{statusCode: http.StatusOK, body: req.Value}
		})

		wrapped := handler.Wrap(h, handler.WithBinders[handler.Context, testRequest](skipped, applied))

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		rec := httptest.NewRecorder()

		wrapped(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "bound", rec.Body.String())
	})

	t.Run("binder error stops the chain", func(t *testing.T) {
		t.Parallel()
		type testRequest struct {
			Value string
		}

		binderErr := errors.New("binding failed")

		failing := func(r *http.Request, v any) error {
			return binderErr
		}

		h := handler.HandlerFunc[handler.Context, testRequest](func(ctx handler.Context, req testRequest) handler.Response {
			t.Error("handler should not be called when binder fails")
			return nil
		})

		var capturedErr error
		errorHandler := func(ctx handler.Context, err error) {
			capturedErr = err
			ctx.ResponseWriter().WriteHeader(http.StatusBadRequest)
			ctx.ResponseWriter().Write([]byte("binding error"))
		}

		wrapped := handler.Wrap(h,
			handler.WithBinders[handler.Context, testRequest](failing),
			handler.WithErrorHandler[handler.Context, testRequest](errorHandler),
		)

		req := httptest.NewRequest(http.MethodPost, "/test", nil)
		rec := httptest.NewRecorder()

		wrapped(rec, req)

		assert.Equal(t, binderErr, capturedErr)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "binding error", rec.Body.String())
	})

	t.Run("with nil options", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
			return mockResponse{statusCode: http.StatusOK, body: "ok"}
		})

		wrapped := handler.Wrap(h,
			handler.WithErrorHandler[handler.Context, string](nil),
			handler.WithContextFactory[handler.Context, string](nil),
		)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		rec := httptest.NewRecorder()

		require.NotPanics(t, func() {
			wrapped(rec, req)
		})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("handler returns HTTPError", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
			return mockResponse{renderErr: handler.ErrNotFound}
		})

		wrapped := handler.Wrap(h)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		rec := httptest.NewRecorder()

		wrapped(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "not_found")
	})

	t.Run("handler returns wrapped HTTPError", func(t *testing.T) {
		t.Parallel()
		wrappedErr := fmt.Errorf("validation failed: %w", handler.ErrUnprocessableEntity)

		h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
			return mockResponse{renderErr: wrappedErr}
		})

		wrapped := handler.Wrap(h)

		req := httptest.NewRequest(http.MethodPost, "/test", nil)
		rec := httptest.NewRecorder()

		wrapped(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "unprocessable_entity")
	})
}

// Custom context for testing
type customContext interface {
	handler.Context
	Theme() string
}

type testCustomContext struct {
	handler.Context
	theme string
}

func (c *testCustomContext) Theme() string {
	return c.theme
}

func newTestCustomContext(w http.ResponseWriter, r *http.Request) customContext {
	return &testCustomContext{
		Context: handler.NewContext(w, r),
		theme:   "dark",
	}
}

func TestWrapWithCustomContext(t *testing.T) {
	t.Parallel()

	t.Run("handler with custom context", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[customContext, string](func(ctx customContext, req string) handler.Response {
			assert.Equal(t, "dark", ctx.Theme())
			return mockResponse{statusCode: http.StatusOK, body: ctx.Theme()}
		})

		wrapped := handler.Wrap(h,
			handler.WithContextFactory[customContext, string](newTestCustomContext),
		)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		rec := httptest.NewRecorder()

		wrapped(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "dark", rec.Body.String())
	})

	t.Run("custom context without factory panics", func(t *testing.T) {
		t.Parallel()
		h := handler.HandlerFunc[customContext, string](func(ctx customContext, req string) handler.Response {
			t.Error("handler should not be called")
			return nil
		})

		wrapped := handler.Wrap(h)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		rec := httptest.NewRecorder()

		assert.Panics(t, func() {
			wrapped(rec, req)
		}, "should panic when custom context is used without factory")
	})
}

func TestWrapWithDecorators(t *testing.T) {
	t.Parallel()

	t.Run("multiple decorators order", func(t *testing.T) {
		t.Parallel()
		var order []string

		decorator1 := func(next handler.HandlerFunc[handler.Context, string]) handler.HandlerFunc[handler.Context, string] {
			return func(ctx handler.Context, req string) handler.Response {
				order = append(order, "decorator1-before")
				resp := next(ctx, req)
				order = append(order, "decorator1-after")
				return resp
			}
		}

		decorator2 := func(next handler.HandlerFunc[handler.Context, string]) handler.HandlerFunc[handler.Context, string] {
			return func(ctx handler.Context, req string) handler.Response {
				order = append(order, "decorator2-before")
				resp := next(ctx, req)
				order = append(order, "decorator2-after")
				return resp
			}
		}

		h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
			order = append(order, "handler")
			return mockResponse{statusCode: http.StatusOK, body: "success"}
		})

		wrapped := handler.Wrap(h,
			handler.WithDecorators(decorator1, decorator2),
		)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		rec := httptest.NewRecorder()

		wrapped(rec, req)

		// decorator1 wraps decorator2 wraps handler
		expectedOrder := []string{
			"decorator1-before",
			"decorator2-before",
			"handler",
			"decorator2-after",
			"decorator1-after",
		}
		assert.Equal(t, expectedOrder, order)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("decorator short-circuiting", func(t *testing.T) {
		t.Parallel()
		handlerCalled := false
		decorator := func(next handler.HandlerFunc[handler.Context, string]) handler.HandlerFunc[handler.Context, string] {
			return func(ctx handler.Context, req string) handler.Response {
				return mockResponse{statusCode: http.StatusUnauthorized, body: "unauthorized"}
			}
		}

		h := handler.HandlerFunc[handler.Context, string](func(ctx handler.Context, req string) handler.Response {
			handlerCalled = true
			return mockResponse{statusCode: http.StatusOK, body: "success"}
		})

		wrapped := handler.Wrap(h,
			handler.WithDecorators(decorator),
		)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		rec := httptest.NewRecorder()

		wrapped(rec, req)

		assert.False(t, handlerCalled)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "unauthorized", rec.Body.String())
	})
}
