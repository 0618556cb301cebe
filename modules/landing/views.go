package landing

import (
	"context"
	"html"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/landingkit/handler"
)

// component adapts a builder function to templ's render contract. Views build
// their markup into a strings.Builder and write it out in one piece.
func component(build func(b *strings.Builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		build(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// pageStyles is deliberately tiny: enough for the two themes, the widgets,
// and field error states without an asset pipeline.
const pageStyles = `<style>
body{font-family:system-ui,sans-serif;margin:0;color:#1a1a1a;background:#fff}
body[data-theme=dark]{color:#e8e8e8;background:#16181d}
header.topbar{display:flex;justify-content:space-between;align-items:center;padding:1rem 2rem}
main{max-width:52rem;margin:0 auto;padding:0 1rem}
section{margin:3rem 0}
.hero h1{font-size:2.2rem;margin-bottom:.3rem}
.features ul{list-style:none;padding:0;display:grid;gap:1rem;grid-template-columns:repeat(auto-fit,minmax(14rem,1fr))}
.faq-item p{margin:.4rem 0 1rem}
[role=tab][aria-selected=true]{font-weight:700;text-decoration:underline}
.dropdown ul{list-style:none;margin:.3rem 0;padding:.3rem;border:1px solid currentColor;max-width:14rem}
.field{margin:.8rem 0;display:grid;gap:.25rem}
.field[data-invalid] input{border-color:#c0392b}
.field-error{color:#c0392b;font-size:.85rem;min-height:1.1em}
.signup-success{padding:.6rem;border:1px solid #2e7d32;color:#2e7d32}
#toast-container{position:fixed;top:1rem;right:1rem;display:grid;gap:.5rem}
.toast{padding:.6rem 1rem;border:1px solid currentColor;background:inherit}
.toast-error{color:#c0392b}
.toast-warning{color:#b26a00}
.error-page{text-align:center;padding:4rem 1rem}
.request-id{opacity:.6;font-size:.8rem}
</style>`

type pageParams struct {
	Content    *Content
	Theme      string
	SignupForm templ.Component
}

// pageView renders the full landing page shell with every widget in its
// initial state and the signup form mounted at the bottom.
func pageView(p pageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.Grow(4096)

		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		b.WriteString(html.EscapeString(p.Content.Hero.Title))
		b.WriteString(`</title><script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"></script>`)
		b.WriteString(pageStyles)
		b.WriteString(`</head><body data-theme="`)
		b.WriteString(html.EscapeString(p.Theme))
		b.WriteString(`"><div id="toast-container" aria-live="polite"></div><header class="topbar"><span class="brand">landingkit</span>`)
		writeThemeToggleButton(&b, p.Theme)
		b.WriteString(`</header><main>`)
		writeHero(&b, p.Content.Hero)
		writeFeatures(&b, p.Content.Features)
		writeCounter(&b)
		writeFAQ(&b, p.Content.FAQ)
		writeTabs(&b, p.Content.Tabs, p.Content.Tabs[0].ID)
		writeDropdown(&b, p.Content.Dropdown, false)

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if p.SignupForm != nil {
			if err := p.SignupForm.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main><footer><p>Rendered server-side. No build step.</p></footer></body></html>`)
		return err
	})
}

func themeToggleButton(theme string) templ.Component {
	return component(func(b *strings.Builder) { writeThemeToggleButton(b, theme) })
}

func faqItemView(index int, item FAQItem, open bool) templ.Component {
	return component(func(b *strings.Builder) { writeFAQItem(b, index, item, open) })
}

func tabsView(tabs []Tab, activeID string) templ.Component {
	return component(func(b *strings.Builder) { writeTabs(b, tabs, activeID) })
}

func dropdownView(dd Dropdown, open bool) templ.Component {
	return component(func(b *strings.Builder) { writeDropdown(b, dd, open) })
}

func writeThemeToggleButton(b *strings.Builder, theme string) {
	b.WriteString(`<button type="button" id="theme-toggle" data-on-click="@post('/theme/toggle')">`)
	if normalizeTheme(theme) == ThemeDark {
		b.WriteString(`Switch to light mode`)
	} else {
		b.WriteString(`Switch to dark mode`)
	}
	b.WriteString(`</button>`)
}

func writeHero(b *strings.Builder, h Hero) {
	b.WriteString(`<section id="hero" class="hero"><h1>`)
	b.WriteString(html.EscapeString(h.Title))
	b.WriteString(`</h1><p>`)
	b.WriteString(html.EscapeString(h.Subtitle))
	b.WriteString(`</p><a class="cta" href="#signup">`)
	b.WriteString(html.EscapeString(h.CTA))
	b.WriteString(`</a></section>`)
}

func writeFeatures(b *strings.Builder, features []Feature) {
	b.WriteString(`<section id="features" class="features"><h2>Why landingkit</h2><ul>`)
	for _, f := range features {
		b.WriteString(`<li><h3>`)
		b.WriteString(html.EscapeString(f.Title))
		b.WriteString(`</h3><p>`)
		b.WriteString(html.EscapeString(f.Description))
		b.WriteString(`</p></li>`)
	}
	b.WriteString(`</ul></section>`)
}

// writeCounter seeds the count signal at zero; every button round-trips the
// current signal value through the counter endpoint.
func writeCounter(b *strings.Builder) {
	b.WriteString(`<section id="counter" class="counter" data-signals="{count: 0}"><h2>Live counter</h2>` +
		`<p>Count: <strong data-text="$count"></strong></p>` +
		`<button type="button" data-on-click="@post('/counter/decrement')">-</button>` +
		`<button type="button" data-on-click="@post('/counter/reset')">Reset</button>` +
		`<button type="button" data-on-click="@post('/counter/increment')">+</button></section>`)
}

func writeFAQ(b *strings.Builder, items []FAQItem) {
	b.WriteString(`<section id="faq" class="faq"><h2>Frequently asked questions</h2>`)
	for i, item := range items {
		writeFAQItem(b, i, item, false)
	}
	b.WriteString(`</section>`)
}

// writeFAQItem renders one accordion entry. The button always posts the
// opposite of the rendered state, so toggling needs no client logic.
func writeFAQItem(b *strings.Builder, index int, item FAQItem, open bool) {
	idx := strconv.Itoa(index)
	b.WriteString(`<div id="faq-item-` + idx + `" class="faq-item"><button type="button" aria-expanded="`)
	b.WriteString(strconv.FormatBool(open))
	b.WriteString(`" aria-controls="faq-answer-` + idx + `" data-on-click="@post('/faq/toggle?index=` + idx + `&amp;open=` + strconv.FormatBool(!open) + `')">`)
	b.WriteString(html.EscapeString(item.Question))
	b.WriteString(`</button><p id="faq-answer-` + idx + `"`)
	if !open {
		b.WriteString(` hidden`)
	}
	b.WriteString(`>`)
	b.WriteString(html.EscapeString(item.Answer))
	b.WriteString(`</p></div>`)
}

func writeTabs(b *strings.Builder, tabs []Tab, activeID string) {
	b.WriteString(`<section id="tabs" class="tabs"><h2>How it fits together</h2><div role="tablist">`)
	var active Tab
	for _, t := range tabs {
		selected := t.ID == activeID
		if selected {
			active = t
		}
		b.WriteString(`<button type="button" role="tab" id="tab-`)
		b.WriteString(html.EscapeString(t.ID))
		b.WriteString(`" aria-selected="`)
		b.WriteString(strconv.FormatBool(selected))
		b.WriteString(`" data-on-click="@post('/tabs/select?id=`)
		b.WriteString(url.QueryEscape(t.ID))
		b.WriteString(`')">`)
		b.WriteString(html.EscapeString(t.Label))
		b.WriteString(`</button>`)
	}
	b.WriteString(`</div><div role="tabpanel" aria-labelledby="tab-`)
	b.WriteString(html.EscapeString(active.ID))
	b.WriteString(`"><p>`)
	b.WriteString(html.EscapeString(active.Content))
	b.WriteString(`</p></div></section>`)
}

func writeDropdown(b *strings.Builder, dd Dropdown, open bool) {
	b.WriteString(`<section id="dropdown" class="dropdown"`)
	if open {
		// Any click outside the open menu closes it.
		b.WriteString(` data-on-click__outside="@post('/dropdown/toggle?open=false')"`)
	}
	b.WriteString(`><h2>Plans</h2><button type="button" aria-haspopup="listbox" aria-expanded="`)
	b.WriteString(strconv.FormatBool(open))
	b.WriteString(`" data-on-click="@post('/dropdown/toggle?open=`)
	b.WriteString(strconv.FormatBool(!open))
	b.WriteString(`')">`)
	b.WriteString(html.EscapeString(dd.Label))
	b.WriteString(`</button>`)
	if open {
		b.WriteString(`<ul role="listbox">`)
		for _, opt := range dd.Options {
			b.WriteString(`<li><button type="button" role="option" data-on-click="@post('/dropdown/select?value=`)
			b.WriteString(url.QueryEscape(opt))
			b.WriteString(`')">`)
			b.WriteString(html.EscapeString(opt))
			b.WriteString(`</button></li>`)
		}
		b.WriteString(`</ul>`)
	}
	b.WriteString(`</section>`)
}

// ErrorPage renders the standalone error page served to non-Datastar
// requests.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>Error `)
		b.WriteString(strconv.Itoa(p.StatusCode))
		b.WriteString(`</title>`)
		b.WriteString(pageStyles)
		b.WriteString(`</head><body><main class="error-page"><h1>`)
		b.WriteString(strconv.Itoa(p.StatusCode))
		b.WriteString(`</h1><p>`)
		b.WriteString(html.EscapeString(p.Error))
		b.WriteString(`</p>`)
		retry := p.RetryURL
		if retry == "" {
			retry = "/"
		}
		b.WriteString(`<a href="`)
		b.WriteString(html.EscapeString(retry))
		b.WriteString(`">Back to the page</a>`)
		if p.RequestID != "" {
			b.WriteString(`<p class="request-id">Request ID: `)
			b.WriteString(html.EscapeString(p.RequestID))
			b.WriteString(`</p>`)
		}
		b.WriteString(`</main></body></html>`)
	})
}

// ErrorToast renders the notification patched into #toast-container on
// Datastar requests.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return component(func(b *strings.Builder) {
		b.WriteString(`<div class="toast toast-`)
		b.WriteString(html.EscapeString(p.Type))
		b.WriteString(`" role="alert">`)
		b.WriteString(html.EscapeString(p.Message))
		if p.RequestID != "" {
			b.WriteString(`<small> (`)
			b.WriteString(html.EscapeString(p.RequestID))
			b.WriteString(`)</small>`)
		}
		b.WriteString(`</div>`)
	})
}
