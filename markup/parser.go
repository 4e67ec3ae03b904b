package markup

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

const (
	// DefaultMaxDepth bounds element nesting. Legal documents rarely go past 20.
	DefaultMaxDepth = 256
)

// DefaultInlineElements are elements whose text is folded into the parent's text
// slot instead of becoming a separate child.
var DefaultInlineElements = []string{"emphasis"}

// Parser converts raw XML into a Node tree.
type Parser struct {
	// InlineElements lists local names treated as inline markup.
	InlineElements []string

	// MaxDepth is the maximum element nesting (default: DefaultMaxDepth).
	MaxDepth int
}

// NewParser creates a parser with default settings.
func NewParser() *Parser {
	return &Parser{
		InlineElements: DefaultInlineElements,
		MaxDepth:       DefaultMaxDepth,
	}
}

// Parse parses raw XML with the default parser.
func Parse(raw []byte) (*Node, error) {
	return NewParser().Parse(raw)
}

// NewDecoder returns an xml.Decoder that honours the encoding declared in the
// document prolog.
func NewDecoder(r io.Reader) *xml.Decoder {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel
	return d
}

// frame is an open element during decoding.
type frame struct {
	node   *Node
	text   strings.Builder
	inline int
}

// Parse decodes raw into a tree rooted at the document element.
func (p *Parser) Parse(raw []byte) (*Node, error) {
	maxDepth := p.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	inline := make(map[string]bool, len(p.InlineElements))
	for _, name := range p.InlineElements {
		inline[name] = true
	}

	d := NewDecoder(bytes.NewReader(raw))

	var (
		root  *Node
		stack []*frame
	)

	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.inline > 0 || inline[t.Name.Local] {
					top.inline++
					continue
				}
			} else if root != nil {
				return nil, fmt.Errorf("decode xml: multiple root elements")
			}
			if len(stack) >= maxDepth {
				return nil, fmt.Errorf("%w: more than %d levels", ErrTooDeep, maxDepth)
			}

			n := &Node{Name: t.Name.Local, Space: t.Name.Space}
			if len(t.Attr) > 0 {
				n.Attrs = make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
						continue
					}
					n.Attrs[a.Name.Local] = a.Value
				}
				if len(n.Attrs) == 0 {
					n.Attrs = nil
				}
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1].node
				parent.Children = append(parent.Children, n)
			} else {
				root = n
			}
			stack = append(stack, &frame{node: n})

		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			if top.inline > 0 {
				top.inline--
				continue
			}
			top.node.Text = NormalizeSpace(top.text.String())
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			top.text.Write(t)
		}
	}

	if root == nil {
		return nil, ErrEmptyDocument
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("decode xml: unclosed element <%s>", stack[len(stack)-1].node.Name)
	}
	return root, nil
}
