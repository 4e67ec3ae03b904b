package markup

import "strings"

// Value is the text carried by a title or paragraph element.
// It is either PlainText or TextNode; the set is closed.
type Value interface {
	isValue()
}

// PlainText is a bare string value.
type PlainText string

// TextNode is an element that carries its text in a designated slot next to
// attributes or child elements.
type TextNode struct {
	Text string
}

func (PlainText) isValue() {}
func (TextNode) isValue()  {}

// TextOf normalizes a Value to a plain string.
// It reports false when the value is absent or its text is empty after trimming.
func TextOf(v Value) (string, bool) {
	var s string
	switch t := v.(type) {
	case PlainText:
		s = string(t)
	case TextNode:
		s = t.Text
	default:
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// NormalizeSpace trims s and collapses every run of whitespace to a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
