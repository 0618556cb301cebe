package landing

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/landingkit/binder"
	"github.com/dmitrymomot/landingkit/handler"
	"github.com/dmitrymomot/landingkit/pkg/cookie"
)

// Service serves the landing page and its interactive widgets. All widget
// state travels with the request (cookie, query, signals); the service holds
// only the static catalog and its collaborators.
type Service struct {
	content      *Content
	cookies      *cookie.Manager
	signupForm   templ.Component
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewService creates the landing service. signupForm is the form component
// mounted into the page shell; the signup module owns its markup.
func NewService(content *Content, cookies *cookie.Manager, signupForm templ.Component, errorHandler handler.ErrorHandler[handler.Context]) *Service {
	return &Service{
		content:      content,
		cookies:      cookies,
		signupForm:   signupForm,
		errorHandler: errorHandler,
	}
}

// Handle returns the landing router, mounted at the site root.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, pageRequest](s.errorHandler),
	))

	r.Post("/theme/toggle", handler.Wrap(s.toggleTheme,
		handler.WithErrorHandler[handler.Context, themeToggleRequest](s.errorHandler),
	))

	r.Post("/counter/{op}", handler.Wrap(s.counter,
		handler.WithBinders[handler.Context, counterRequest](
			binder.Path(chi.URLParam),
			binder.Signals(),
		),
		handler.WithErrorHandler[handler.Context, counterRequest](s.errorHandler),
	))

	r.Post("/faq/toggle", handler.Wrap(s.toggleFAQ,
		handler.WithBinders[handler.Context, faqToggleRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, faqToggleRequest](s.errorHandler),
	))

	r.Post("/tabs/select", handler.Wrap(s.selectTab,
		handler.WithBinders[handler.Context, tabSelectRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, tabSelectRequest](s.errorHandler),
	))

	r.Post("/dropdown/toggle", handler.Wrap(s.toggleDropdown,
		handler.WithBinders[handler.Context, dropdownToggleRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, dropdownToggleRequest](s.errorHandler),
	))

	r.Post("/dropdown/select", handler.Wrap(s.selectDropdownOption,
		handler.WithBinders[handler.Context, dropdownSelectRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, dropdownSelectRequest](s.errorHandler),
	))

	return r
}

// pageRequest carries no inputs; the theme comes from the cookie.
type pageRequest struct{}

func (s *Service) page(ctx handler.Context, _ pageRequest) handler.Response {
	return handler.Templ(pageView(pageParams{
		Content:    s.content,
		Theme:      s.theme(ctx.Request()),
		SignupForm: s.signupForm,
	}))
}
