package markup

// Node is one element of a parsed document.
type Node struct {
	// Name is the element's local name (namespace prefix stripped).
	Name string

	// Space is the resolved namespace URI, empty when none is declared.
	Space string

	// Attrs holds the element's attributes keyed by local name.
	Attrs map[string]string

	// Text is the normalized character data directly under this element.
	Text string

	// Children are the child elements in source order.
	Children []*Node
}

// Child returns the first child element with the given local name, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns all child elements with the given local name.
func (n *Node) ChildrenNamed(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Path follows a chain of first-child lookups, returning nil if any step is missing.
func (n *Node) Path(names ...string) *Node {
	cur := n
	for _, name := range names {
		cur = cur.Child(name)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Attr returns the attribute value for a local name.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil || n.Attrs == nil {
		return "", false
	}
	v, ok := n.Attrs[name]
	return v, ok
}

// Value returns the node's text as a Value.
// A leaf element without attributes is PlainText; anything else carries its text
// in the TextNode slot. A nil node yields nil.
func (n *Node) Value() Value {
	if n == nil {
		return nil
	}
	if len(n.Attrs) == 0 && len(n.Children) == 0 {
		return PlainText(n.Text)
	}
	return TextNode{Text: n.Text}
}
