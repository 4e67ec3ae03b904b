package fulltext

import "github.com/c360studio/rulingpipe/markup"

// Kind classifies a node inside a section body.
type Kind int

const (
	// KindOther is any element that is not part of the paragraph tree.
	KindOther Kind = iota
	// KindParagraph is a single paragraph.
	KindParagraph
	// KindParagraphGroup wraps further paragraphs or wrappers.
	KindParagraphGroup
	// KindParagraphBlock wraps further paragraphs or wrappers.
	KindParagraphBlock
	// KindComposite is the node being flattened itself.
	KindComposite
)

// KindOf returns the kind of a child element.
func KindOf(n *markup.Node) Kind {
	switch n.Name {
	case ElementParagraph:
		return KindParagraph
	case ElementParagraphGroup:
		return KindParagraphGroup
	case ElementParagraphBlock:
		return KindParagraphBlock
	default:
		return KindOther
	}
}

// Flatten returns the non-empty paragraph texts under n in the given order.
// It never fails: a nil node or one without paragraph content yields an empty slice.
//
// OrderDocument interleaves paragraphs, groups and blocks as they appear in the
// source. OrderGrouped reproduces the legacy JSON output, which lists the direct
// paragraphs first, then the flattened groups, then the flattened blocks.
func Flatten(n *markup.Node, order Order) []string {
	f := flattener{order: order, visited: make(map[*markup.Node]struct{})}
	out := make([]string, 0)
	return f.walk(n, KindComposite, out)
}

type flattener struct {
	order   Order
	visited map[*markup.Node]struct{}
}

func (f *flattener) walk(n *markup.Node, kind Kind, out []string) []string {
	if n == nil {
		return out
	}
	if _, seen := f.visited[n]; seen {
		return out
	}
	f.visited[n] = struct{}{}

	switch kind {
	case KindParagraph:
		if text, ok := markup.TextOf(n.Value()); ok {
			out = append(out, text)
		}
		return out
	case KindOther:
		return out
	}

	if f.order == OrderGrouped {
		for _, k := range []Kind{KindParagraph, KindParagraphGroup, KindParagraphBlock} {
			for _, c := range n.Children {
				if KindOf(c) == k {
					out = f.walk(c, k, out)
				}
			}
		}
		return out
	}

	for _, c := range n.Children {
		out = f.walk(c, KindOf(c), out)
	}
	return out
}
