package landing

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrymomot/landingkit/handler"
)

type faqToggleRequest struct {
	Index int  `query:"index"`
	Open  bool `query:"open"`
}

// toggleFAQ re-renders one FAQ item in the requested state. Items are
// independent; opening one never closes another.
func (s *Service) toggleFAQ(ctx handler.Context, req faqToggleRequest) handler.Response {
	item, ok := s.content.FAQAt(req.Index)
	if !ok {
		return handler.Error(fmt.Errorf("%w: faq index %d out of range", handler.ErrNotFound, req.Index))
	}
	return handler.Templ(faqItemView(req.Index, item, req.Open))
}

type tabSelectRequest struct {
	ID string `query:"id"`
}

// selectTab re-renders the whole tab group with the chosen tab active and its
// panel shown.
func (s *Service) selectTab(ctx handler.Context, req tabSelectRequest) handler.Response {
	if _, ok := s.content.Tab(req.ID); !ok {
		return handler.Error(fmt.Errorf("%w: unknown tab %q", handler.ErrNotFound, req.ID))
	}
	return handler.Templ(tabsView(s.content.Tabs, req.ID))
}

type dropdownToggleRequest struct {
	Open bool `query:"open"`
}

func (s *Service) toggleDropdown(ctx handler.Context, req dropdownToggleRequest) handler.Response {
	return handler.Templ(dropdownView(s.content.Dropdown, req.Open))
}

type dropdownSelectRequest struct {
	Value string `query:"value"`
}

// selectDropdownOption closes the menu and raises the selection alert.
func (s *Service) selectDropdownOption(ctx handler.Context, req dropdownSelectRequest) handler.Response {
	if !s.content.HasOption(req.Value) {
		return handler.Error(fmt.Errorf("%w: unknown dropdown option %q", handler.ErrNotFound, req.Value))
	}
	return handler.TemplMulti(
		handler.Patch(dropdownView(s.content.Dropdown, false)),
		handler.ScriptPatch("alert("+jsString("Selected: "+req.Value)+")"),
	)
}

// jsString renders s as a JavaScript string literal. JSON string encoding is
// valid JavaScript source for any input.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
