// Package export serializes ruling metadata records as RDF.
//
// A record becomes one ruling resource plus one resource per labelled court,
// procedure or subject it links to. The graph can be written as Turtle,
// N-Triples or compacted JSON-LD sharing the @context of the metadata records.
package export
