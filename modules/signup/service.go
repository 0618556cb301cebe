package signup

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/landingkit/binder"
	"github.com/dmitrymomot/landingkit/handler"
	"github.com/dmitrymomot/landingkit/pkg/validator"
)

// Service serves the signup form. Submissions are validated and answered
// with patches; submitted data is never persisted or forwarded.
type Service struct {
	errorHandler handler.ErrorHandler[handler.Context]
}

func NewService(errorHandler handler.ErrorHandler[handler.Context]) *Service {
	return &Service{errorHandler: errorHandler}
}

// Handle returns the signup router, mounted at /signup.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.form,
		handler.WithErrorHandler[handler.Context, formRequest](s.errorHandler),
	))

	r.Post("/", handler.Wrap(s.submit,
		handler.WithBinders[handler.Context, SignupForm](binder.Form()),
		handler.WithErrorHandler[handler.Context, SignupForm](s.errorHandler),
	))

	r.Post("/validate", handler.Wrap(s.validateField,
		handler.WithBinders[handler.Context, validateFieldRequest](
			binder.Query(),
			binder.Form(),
		),
		handler.WithErrorHandler[handler.Context, validateFieldRequest](s.errorHandler),
	))

	return r
}

type formRequest struct{}

// form serves the signup section as a patch for Datastar requests and as a
// standalone page for direct navigation.
func (s *Service) form(ctx handler.Context, _ formRequest) handler.Response {
	return handler.TemplPartial(Form(FormParams{}), standalonePage(FormParams{}))
}

// validateFieldRequest carries the field key under validation plus the whole
// form, so cross-field rules read current values.
type validateFieldRequest struct {
	Field    string `query:"field"`
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
	Confirm  string `form:"confirm-password"`
	Age      string `form:"age"`
	Website  string `form:"website"`
	Terms    bool   `form:"terms"`
}

func (r validateFieldRequest) form() SignupForm {
	return SignupForm{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Confirm:  r.Confirm,
		Age:      r.Age,
		Website:  r.Website,
		Terms:    r.Terms,
	}
}

// validateField re-validates exactly one field against the submitted values
// and patches that field's block, so the displayed outcome always reflects
// the latest input.
func (s *Service) validateField(ctx handler.Context, req validateFieldRequest) handler.Response {
	form := req.form()
	rule, ok := form.Rule(req.Field)
	if !ok {
		return handler.Error(fmt.Errorf("%w: unknown field %q", handler.ErrNotFound, req.Field))
	}

	message := ""
	if err := validator.Apply(rule); err != nil {
		message = validator.ExtractValidationErrors(err).First(req.Field)
	}
	return handler.Templ(fieldBlock(form, req.Field, message))
}

// submit runs the aggregate pass. An invalid form gets every field block
// refreshed, including clears for now-valid fields, plus focus moved to the
// first failure in document order. A valid form comes back pristine with a
// visible success note.
func (s *Service) submit(ctx handler.Context, req SignupForm) handler.Response {
	err := req.Validate()
	if err == nil {
		return handler.Templ(formBody(FormParams{Success: true}))
	}

	errs := validator.ExtractValidationErrors(err)
	patches := make([]handler.TemplPatch, 0, len(fieldOrder)+2)
	patches = append(patches, handler.Patch(successBanner(false)))
	for _, field := range fieldOrder {
		patches = append(patches, handler.Patch(fieldBlock(req, field, errs.First(field))))
	}
	patches = append(patches, handler.ScriptPatch(focusScript(errs[0].Field)))
	return handler.TemplMulti(patches...)
}
