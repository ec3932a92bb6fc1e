package rod

import (
	"regexp"
	"strings"
)

// Default selectors.
const (
	DefaultTitleSelector       = `.text-2xl.font-bold.text-new_primary.dark\:text-new_dark_primary`
	DefaultDescriptionSelector = `.mt-6.w-full.text-new_secondary.text-\[14px\].dark\:text-zinc-200`
	DefaultConstraintsSelector = `.mt-4.flex.flex-col.gap-y-2.mb-24`
)

// Selectors locate the parts of a problem page.
// Paragraphs are the <p> elements under Description; constraints are the
// <li> elements of the first <ul> under Constraints.
type Selectors struct {
	Title       string
	Description string
	Constraints string
}

// DefaultSelectors returns the built-in selectors.
func DefaultSelectors() Selectors {
	return Selectors{
		Title:       DefaultTitleSelector,
		Description: DefaultDescriptionSelector,
		Constraints: DefaultConstraintsSelector,
	}
}

// withDefaults fills empty fields.
func (s Selectors) withDefaults() Selectors {
	d := DefaultSelectors()
	if s.Title == "" {
		s.Title = d.Title
	}
	if s.Description == "" {
		s.Description = d.Description
	}
	if s.Constraints == "" {
		s.Constraints = d.Constraints
	}
	return s
}

// PageContent is the raw text pulled from a page.
type PageContent struct {
	Title       string
	Paragraphs  []string
	Constraints []string
}

// titleDecoration matches the search icon the browser extension injects
// next to the title, as a glyph or inline SVG.
var titleDecoration = regexp.MustCompile(`🔍|<svg.*?</svg>`)

// CleanTitle strips injected decorations and surrounding space.
func CleanTitle(title string) string {
	return strings.TrimSpace(titleDecoration.ReplaceAllString(title, ""))
}

// Text joins the content into a single query string.
// Blank paragraphs are dropped; constraint items are kept as listed.
func (c PageContent) Text() string {
	var b strings.Builder

	if title := CleanTitle(c.Title); title != "" {
		b.WriteString(title)
		b.WriteByte(' ')
	}

	paragraphs := make([]string, 0, len(c.Paragraphs))
	for _, p := range c.Paragraphs {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	if len(paragraphs) > 0 {
		b.WriteString(strings.Join(paragraphs, " "))
		b.WriteByte(' ')
	}

	constraints := make([]string, len(c.Constraints))
	for i, item := range c.Constraints {
		constraints[i] = strings.TrimSpace(item)
	}
	b.WriteString(strings.Join(constraints, " "))

	return strings.TrimSpace(b.String())
}
