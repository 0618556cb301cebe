package landing

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/landingkit/handler"
	"github.com/dmitrymomot/landingkit/pkg/cookie"
)

// Theme values persisted in the theme cookie. Absent or unrecognized values
// render as light.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	themeCookie       = "theme"
	themeCookieMaxAge = 365 * 24 * 60 * 60
)

// normalizeTheme maps any stored value onto a known theme.
func normalizeTheme(v string) string {
	if v == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// flipTheme returns the opposite theme.
func flipTheme(v string) string {
	if normalizeTheme(v) == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// theme reads the visitor's theme preference from the request cookie.
func (s *Service) theme(r *http.Request) string {
	v, err := s.cookies.Get(r, themeCookie)
	if err != nil {
		return ThemeLight
	}
	return normalizeTheme(v)
}

// themeToggleRequest carries no inputs; the current theme comes from the cookie.
type themeToggleRequest struct{}

// toggleTheme flips the persisted theme, re-renders the toggle button, and
// applies the new theme to the live page through a one-shot script.
func (s *Service) toggleTheme(ctx handler.Context, _ themeToggleRequest) handler.Response {
	next := flipTheme(s.theme(ctx.Request()))
	if err := s.cookies.Set(ctx.ResponseWriter(), themeCookie, next, cookie.WithMaxAge(themeCookieMaxAge)); err != nil {
		return handler.Error(err)
	}
	return handler.TemplMulti(
		handler.Patch(themeToggleButton(next)),
		handler.ScriptPatch(fmt.Sprintf("document.body.dataset.theme = %q", next)),
	)
}
