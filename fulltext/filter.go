package fulltext

import (
	"strings"

	"github.com/c360studio/rulingpipe/markup"
)

// Filter keeps sections whose normalized title is in its allow-set.
type Filter struct {
	titles map[string]struct{}
	order  Order
}

// NewFilter creates a filter for the given titles. Titles are normalized the same
// way section titles are, so "Overwegingen" and "OVERWEGINGEN" are equivalent.
// With no titles, DefaultTitles is used.
func NewFilter(order Order, titles ...string) *Filter {
	if len(titles) == 0 {
		titles = DefaultTitles
	}
	if !order.Valid() {
		order = OrderDocument
	}
	f := &Filter{titles: make(map[string]struct{}, len(titles)), order: order}
	for _, t := range titles {
		f.titles[NormalizeTitle(t)] = struct{}{}
	}
	return f
}

// NormalizeTitle trims and upper-cases a section title.
func NormalizeTitle(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Allows reports whether a normalized title is kept.
func (f *Filter) Allows(title string) bool {
	_, ok := f.titles[title]
	return ok
}

// Apply returns the kept sections in source order. Sections with a missing or
// text-less title are dropped. Duplicate titles are kept as separate entries.
func (f *Filter) Apply(sections []*markup.Node) []Section {
	out := make([]Section, 0)
	for _, sec := range sections {
		raw, ok := markup.TextOf(sec.Child(ElementTitle).Value())
		if !ok {
			continue
		}
		title := NormalizeTitle(raw)
		if !f.Allows(title) {
			continue
		}
		out = append(out, Section{
			Title:      title,
			Paragraphs: Flatten(sec, f.order),
		})
	}
	return out
}
