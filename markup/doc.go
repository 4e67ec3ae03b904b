// Package markup parses structured XML documents into a labelled tree.
//
// The tree mirrors the element structure of the source: every element becomes a
// Node with its local name, attributes, a normalized text slot and its child
// elements in source order. Character data is whitespace-normalized on the way in,
// so "<a>text</a>" and "<a> text </a>" produce the same node.
//
// Titles and paragraphs are read through the Value union and TextOf:
//
//	tree, err := markup.Parse(raw)
//	title, ok := markup.TextOf(tree.Child("title").Value())
package markup
