package landing

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var contentYAML []byte

// ErrInvalidContent indicates the embedded content catalog failed to load.
var ErrInvalidContent = errors.New("invalid landing content")

// Content is the static page catalog: everything the landing page shows that
// is copy rather than behavior. It is embedded as YAML and decoded once at
// startup.
type Content struct {
	Hero     Hero      `yaml:"hero"`
	Features []Feature `yaml:"features"`
	FAQ      []FAQItem `yaml:"faq"`
	Tabs     []Tab     `yaml:"tabs"`
	Dropdown Dropdown  `yaml:"dropdown"`
}

type Hero struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	CTA      string `yaml:"cta"`
}

type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type FAQItem struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type Tab struct {
	ID      string `yaml:"id"`
	Label   string `yaml:"label"`
	Content string `yaml:"content"`
}

type Dropdown struct {
	Label   string   `yaml:"label"`
	Options []string `yaml:"options"`
}

// LoadContent decodes and checks the embedded catalog. The page cannot render
// without it, so callers treat any error as fatal.
func LoadContent() (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(contentYAML, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}

	if len(c.Tabs) == 0 {
		return nil, fmt.Errorf("%w: no tabs defined", ErrInvalidContent)
	}
	seen := make(map[string]struct{}, len(c.Tabs))
	for _, tab := range c.Tabs {
		if tab.ID == "" {
			return nil, fmt.Errorf("%w: tab %q has no id", ErrInvalidContent, tab.Label)
		}
		if _, dup := seen[tab.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate tab id %q", ErrInvalidContent, tab.ID)
		}
		seen[tab.ID] = struct{}{}
	}

	return &c, nil
}

// Tab returns the tab with the given id.
func (c *Content) Tab(id string) (Tab, bool) {
	for _, t := range c.Tabs {
		if t.ID == id {
			return t, true
		}
	}
	return Tab{}, false
}

// FAQAt returns the FAQ item at index; ok is false when out of range.
func (c *Content) FAQAt(index int) (FAQItem, bool) {
	if index < 0 || index >= len(c.FAQ) {
		return FAQItem{}, false
	}
	return c.FAQ[index], true
}

// HasOption reports whether value is one of the dropdown options.
func (c *Content) HasOption(value string) bool {
	return slices.Contains(c.Dropdown.Options, value)
}
