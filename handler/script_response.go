package handler

import (
	"context"
	"io"
)

// scriptComponent renders a one-shot script element. The data-effect
// attribute removes the element right after it executes so repeated patches
// do not accumulate script tags in the document.
type scriptComponent struct {
	js string
}

func (s scriptComponent) Render(ctx context.Context, w io.Writer) error {
	// Script bodies are developer-authored; values interpolated into them
	// must already be quoted for the script context by the caller.
	_, err := io.WriteString(w, `<script data-effect="el.remove()">`+s.js+`</script>`)
	return err
}

// scriptOptions appends the script inside body so it executes on insertion.
func scriptOptions() []TemplOption {
	return []TemplOption{
		WithTarget("body"),
		WithPatchMode(PatchAppend),
	}
}

// Script creates a response that executes a one-shot script on the page.
// For Datastar requests the script element is appended inside body and runs
// on insertion; for regular requests the script tag is rendered as HTML.
//
//	return handler.Script(`document.getElementById("name").focus()`)
func Script(js string) Response {
	return Templ(scriptComponent{js: js}, scriptOptions()...)
}

// ScriptPatch wraps a one-shot script as a TemplPatch for TemplMulti, so a
// response can combine element updates with a script side effect.
//
//	return handler.TemplMulti(
//		handler.Patch(views.ThemeToggle(next)),
//		handler.ScriptPatch(`document.body.dataset.theme = "dark"`),
//	)
func ScriptPatch(js string) TemplPatch {
	return Patch(scriptComponent{js: js}, scriptOptions()...)
}
