package fulltext

import (
	"fmt"

	"github.com/c360studio/rulingpipe/markup"
)

// Default container element names.
const (
	DefaultRootElement = "open-rechtspraak"
	DefaultBodyElement = "uitspraak"
)

// Extractor locates the section list in a parsed ruling and filters it.
type Extractor struct {
	// RootElement is the expected document element.
	RootElement string

	// BodyElement is the ruling body container directly under the root.
	BodyElement string

	// Filter selects the kept sections.
	Filter *Filter
}

// NewExtractor returns an extractor with the default container names and filter.
func NewExtractor() *Extractor {
	return &Extractor{
		RootElement: DefaultRootElement,
		BodyElement: DefaultBodyElement,
		Filter:      NewFilter(OrderDocument),
	}
}

// Extract returns the kept sections of tree.
// A body without any section elements is valid and yields an empty list.
func (e *Extractor) Extract(tree *markup.Node) ([]Section, error) {
	if tree == nil || tree.Name != e.RootElement {
		return nil, fmt.Errorf("%w: missing <%s>", ErrNoSectionContainer, e.RootElement)
	}
	body := tree.Child(e.BodyElement)
	if body == nil {
		return nil, fmt.Errorf("%w: missing <%s> in <%s>", ErrNoSectionContainer, e.BodyElement, e.RootElement)
	}

	filter := e.Filter
	if filter == nil {
		filter = NewFilter(OrderDocument)
	}
	return filter.Apply(body.ChildrenNamed(ElementSection)), nil
}
