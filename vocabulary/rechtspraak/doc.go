// Package rechtspraak provides the linked-data vocabulary for ruling metadata.
//
// Ruling documents published by the Dutch judiciary carry an RDF header built
// from Dublin Core terms and the judiciary's own PSI vocabulary. The metadata
// package decodes that header and re-publishes it as JSON-LD using the compact
// term names defined here; the export package expands the same terms to full
// IRIs for N-Triples and Turtle.
package rechtspraak
