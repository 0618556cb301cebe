package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/landingkit/pkg/logger"
	"github.com/dmitrymomot/landingkit/pkg/requestid"
	"github.com/dmitrymomot/landingkit/pkg/validator"
)

// ErrorPageParams feeds the full-page error view shown on plain requests.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams feeds the toast view patched into an open page.
type ErrorToastParams struct {
	Message   string
	Type      string // "error", "warning", "info"
	RequestID string
}

// ErrorHandlerConfig supplies the views and patch placement used by
// NewErrorHandler. Zero fields fall back to package defaults.
type ErrorHandlerConfig struct {
	// ErrorPage renders the whole-page error view for plain requests.
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders the toast patched into stream requests.
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget is the selector toasts are patched into. Defaults to
	// "#toast-container".
	ToastTarget string

	// ToastMode is the DOM patch mode for toasts. Defaults to PatchPrepend.
	ToastMode datastar.ElementPatchMode
}

// errorInfo is a classified error: what to tell the client and how loud
// to log it.
type errorInfo struct {
	status  int
	message string
	tone    string
	level   slog.Level
}

// classify maps err onto a status code, user-facing message, UI tone and
// log level. Validation failures take precedence over HTTPError so field
// messages survive wrapping; anything unrecognized becomes a generic 500.
func classify(err error) errorInfo {
	info := errorInfo{
		status:  http.StatusInternalServerError,
		message: "An error occurred processing your request",
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.status = httpErr.Code
		info.message = httpErr.Key
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		info.status = http.StatusUnprocessableEntity
		info.message = joinFieldErrors(fieldErrs)
	}

	switch {
	case info.status >= http.StatusInternalServerError:
		info.tone, info.level = "error", slog.LevelError
	case info.status >= http.StatusBadRequest:
		info.tone, info.level = "warning", slog.LevelWarn
	default:
		info.tone, info.level = "info", slog.LevelError
	}

	return info
}

// joinFieldErrors flattens field failures into a single message, keeping
// the order rules were applied in.
func joinFieldErrors(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "Validation failed"
	}
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return strings.Join(messages, "; ")
}

// errorRenderer holds everything the returned ErrorHandler closure needs.
type errorRenderer struct {
	log *slog.Logger
	cfg ErrorHandlerConfig
}

func (er errorRenderer) handle(ctx Context, err error) {
	requestID := requestid.FromContext(ctx.Request().Context())
	info := classify(err)

	er.log.LogAttrs(ctx.Request().Context(), info.level, "request error",
		logger.RequestID(requestID),
		logger.Error(err),
		slog.Int("status_code", info.status),
		slog.String("method", ctx.Request().Method),
		slog.String("path", ctx.Request().URL.Path),
		slog.Bool("is_datastar", IsDataStar(ctx.Request())),
		logger.Component("error_handler"),
	)

	if IsDataStar(ctx.Request()) {
		er.toast(ctx, info, requestID)
	} else {
		er.page(ctx, info, requestID)
	}
}

// toast patches the error into the toast container over the open stream.
// SSE responses carry no status code, so none is set here.
func (er errorRenderer) toast(ctx Context, info errorInfo, requestID string) {
	if er.cfg.ErrorToast == nil {
		er.log.Warn("no error toast component configured for datastar request",
			logger.RequestID(requestID),
			logger.Component("error_handler"),
		)
		return
	}

	response := Templ(
		er.cfg.ErrorToast(ErrorToastParams{
			Message:   info.message,
			Type:      info.tone,
			RequestID: requestID,
		}),
		WithTarget(er.cfg.ToastTarget),
		WithPatchMode(er.cfg.ToastMode),
	)

	if renderErr := response.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
		er.log.Error("failed to render error toast",
			logger.RequestID(requestID),
			logger.Error(renderErr),
			logger.Event("render_error_toast"),
		)
	}
}

// page writes the status code and renders the full error page, falling
// back to http.Error when no component is configured or rendering fails.
func (er errorRenderer) page(ctx Context, info errorInfo, requestID string) {
	if er.cfg.ErrorPage == nil {
		er.log.Warn("no error page component configured",
			logger.RequestID(requestID),
			logger.Component("error_handler"),
		)
		http.Error(ctx.ResponseWriter(), info.message, info.status)
		return
	}

	component := er.cfg.ErrorPage(ErrorPageParams{
		Error:      info.message,
		StatusCode: info.status,
		RequestID:  requestID,
		RetryURL:   ctx.Request().URL.Path,
	})

	ctx.ResponseWriter().WriteHeader(info.status)

	if renderErr := Templ(component).Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
		er.log.Error("failed to render error page",
			logger.RequestID(requestID),
			logger.Error(renderErr),
			logger.Event("render_error_page"),
		)
		http.Error(ctx.ResponseWriter(), "Internal Server Error", http.StatusInternalServerError)
	}
}

// NewErrorHandler creates the default error handler that adapts to request
// type. For regular HTTP requests it renders a full error page; for datastar
// requests it sends a toast notification. Configure this once in main.go and
// pass it to all modules.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}
	if log == nil {
		log = slog.Default()
	}

	return errorRenderer{log: log, cfg: cfg}.handle
}
