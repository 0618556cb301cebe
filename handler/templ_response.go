package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// TemplComponent is the renderable accepted by the Templ response
// constructors. It is structurally identical to github.com/a-h/templ.Component
// so generated views satisfy it without an import here.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

// TemplOption aliases datastar's PatchElementOption.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector the patched element replaces.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the patched element merges into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch pairs one component with the patch options applied to it.
type TemplPatch struct {
	Component TemplComponent
	Options   []datastar.PatchElementOption
}

// Patch builds a TemplPatch for TemplMulti.
func Patch(component TemplComponent, opts ...TemplOption) TemplPatch {
	return TemplPatch{
		Component: component,
		Options:   opts,
	}
}

// renderHTML writes components in order as a plain HTML response.
func renderHTML(w http.ResponseWriter, r *http.Request, components ...TemplComponent) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	for _, c := range components {
		if err := c.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

type templResponse struct {
	component TemplComponent
	options   []datastar.PatchElementOption
}

// Render outputs the component via SSE for Datastar or HTML for regular requests
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return renderHTML(w, r, t.component)
	}
	return datastar.NewSSE(w, r).PatchElementTempl(t.component, t.options...)
}

// Templ responds with a single component. Datastar requests receive it as an
// SSE element patch honoring the target and patch-mode options; regular
// requests receive it as plain HTML.
//
// Simple usage:
//
//	return handler.Templ(views.FaqItem(item))
//
// With target selector:
//
//	return handler.Templ(
//		views.FieldError(state),
//		handler.WithTarget("#email-error"),
//	)
func Templ(component TemplComponent, opts ...TemplOption) Response {
	return templResponse{
		component: component,
		options:   opts,
	}
}

type templPartialResponse struct {
	partial TemplComponent
	full    TemplComponent
	options []datastar.PatchElementOption
}

// Render outputs the partial for Datastar SSE or the full component otherwise
func (t templPartialResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return renderHTML(w, r, t.full)
	}
	return datastar.NewSSE(w, r).PatchElementTempl(t.partial, t.options...)
}

// TemplPartial creates a response that renders differently for Datastar vs
// regular requests: the partial component is patched into the page over SSE,
// while direct navigation gets the full component.
//
//	return handler.TemplPartial(
//		views.SignupForm(state),
//		views.Page(page),
//		handler.WithTarget("#signup-form"),
//	)
func TemplPartial(partial, full TemplComponent, opts ...TemplOption) Response {
	return templPartialResponse{
		partial: partial,
		full:    full,
		options: opts,
	}
}

type templMultiResponse struct {
	patches []TemplPatch
}

// Render sends multiple SSE patches for Datastar or concatenated HTML
func (t templMultiResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		components := make([]TemplComponent, 0, len(t.patches))
		for _, patch := range t.patches {
			components = append(components, patch.Component)
		}
		return renderHTML(w, r, components...)
	}

	sse := datastar.NewSSE(w, r)
	for _, patch := range t.patches {
		if err := sse.PatchElementTempl(patch.Component, patch.Options...); err != nil {
			return err
		}
	}
	return nil
}

// TemplMulti renders multiple components to different targets. For Datastar
// requests, each component is sent as a separate SSE patch with its own
// options. For regular HTTP requests, all components are concatenated in
// order.
//
//	// Refresh every error label after an aggregate validation pass.
//	return handler.TemplMulti(
//		handler.Patch(views.FieldError(nameState)),
//		handler.Patch(views.FieldError(emailState)),
//		handler.ScriptPatch(`document.getElementById("name").focus()`),
//	)
func TemplMulti(patches ...TemplPatch) Response {
	return templMultiResponse{
		patches: patches,
	}
}
