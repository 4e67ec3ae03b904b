// Package fulltext extracts the reasoning sections of a ruling as flat paragraph lists.
//
// A ruling body holds a list of top-level section elements. Each section has a
// title and a body in which paragraphs may be nested inside paragroup and
// parablock wrappers to any depth. Flatten turns such a body into a linear list
// of paragraph strings; Filter keeps only the sections whose normalized title is
// in an allow-set; Extractor ties both to a parsed document tree.
package fulltext
