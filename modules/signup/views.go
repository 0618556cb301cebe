package signup

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// component adapts a builder function to templ's render contract.
func component(build func(b *strings.Builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		build(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// FormParams drives one render of the signup form.
type FormParams struct {
	Values  SignupForm // submitted values to re-display; zero for a pristine form
	Success bool       // show the success note; the form renders pristine
}

// fieldLabel derives the visible label from a field key:
// "confirm-password" becomes "Confirm Password".
func fieldLabel(field string) string {
	title := cases.Title(language.English)
	return title.String(strings.ReplaceAll(field, "-", " "))
}

// inputTypes maps field keys to their HTML control types. The form carries
// novalidate, so these inform mobile keyboards without fighting the
// server-driven validation.
var inputTypes = map[string]string{
	FieldName:     "text",
	FieldEmail:    "email",
	FieldPassword: "password",
	FieldConfirm:  "password",
	FieldAge:      "number",
	FieldWebsite:  "url",
}

// Form renders the whole signup section. The landing page mounts it and
// GET /signup serves it as a patchable partial.
func Form(p FormParams) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString(`<section id="signup" class="signup"><h2>Create your account</h2>`)
		writeFormBody(b, p)
		b.WriteString(`</section>`)
	})
}

// formBody is the patch target for successful submissions.
func formBody(p FormParams) templ.Component {
	return component(func(b *strings.Builder) { writeFormBody(b, p) })
}

func writeFormBody(b *strings.Builder, p FormParams) {
	if p.Success {
		p.Values = SignupForm{}
	}
	b.WriteString(`<form id="signup-form" novalidate data-on-submit="@post('/signup', {contentType: 'form'})">`)
	writeSuccessBanner(b, p.Success)
	for _, field := range fieldOrder {
		writeFieldBlock(b, p.Values, field, "")
	}
	b.WriteString(`<button type="submit">Sign up</button></form>`)
}

// successBanner is also patched alone, to clear a stale success note when a
// later submission fails.
func successBanner(show bool) templ.Component {
	return component(func(b *strings.Builder) { writeSuccessBanner(b, show) })
}

func writeSuccessBanner(b *strings.Builder, show bool) {
	b.WriteString(`<div id="signup-success" class="signup-success" role="status"`)
	if !show {
		b.WriteString(` hidden`)
	}
	b.WriteString(`>Thanks for signing up! Everything checks out.</div>`)
}

// fieldBlock renders one field wrapper: label, control, and error label as a
// single patchable unit, so the message and the invalid marker can never
// disagree.
func fieldBlock(values SignupForm, field, message string) templ.Component {
	return component(func(b *strings.Builder) { writeFieldBlock(b, values, field, message) })
}

func writeFieldBlock(b *strings.Builder, values SignupForm, field, message string) {
	b.WriteString(`<div id="field-` + field + `" class="field`)
	if field == FieldTerms {
		b.WriteString(` field-checkbox`)
	}
	b.WriteString(`"`)
	if message != "" {
		b.WriteString(` data-invalid="true"`)
	}
	b.WriteString(`>`)

	if field == FieldTerms {
		b.WriteString(`<label><input type="checkbox" id="terms" name="terms"`)
		if values.Terms {
			b.WriteString(` checked`)
		}
		writeValidateAction(b, field)
		b.WriteString(`> I accept the terms</label>`)
	} else {
		b.WriteString(`<label for="` + field + `">`)
		b.WriteString(html.EscapeString(fieldLabel(field)))
		b.WriteString(`</label><input type="`)
		b.WriteString(inputTypes[field])
		b.WriteString(`" id="` + field + `" name="` + field + `" value="`)
		b.WriteString(html.EscapeString(values.value(field)))
		b.WriteString(`"`)
		writeValidateAction(b, field)
		b.WriteString(`>`)
	}

	b.WriteString(`<span id="` + field + `-error" class="field-error">`)
	b.WriteString(html.EscapeString(message))
	b.WriteString(`</span></div>`)
}

// writeValidateAction wires the change-driven per-field validation post. The
// whole form travels with it so cross-field rules see current values.
func writeValidateAction(b *strings.Builder, field string) {
	b.WriteString(` data-on-change="@post('/signup/validate?field=` + field + `', {contentType: 'form'})"`)
}

// standalonePage wraps the form for direct navigation to /signup.
func standalonePage(p FormParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>Sign up</title><script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"></script></head><body><div id="toast-container" aria-live="polite"></div><main>`); err != nil {
			return err
		}
		if err := Form(p).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// focusScript moves focus to a field's input element. Field keys are plain
// ASCII identifiers, so Go quoting doubles as JavaScript quoting.
func focusScript(field string) string {
	return fmt.Sprintf("document.getElementById(%q).focus()", field)
}
