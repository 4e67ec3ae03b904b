// Package metadata converts the RDF header of a ruling document into a JSON-LD record.
//
// Only the header is decoded: the converter streams the document until it has
// read the rdf:RDF block and the optional inhoudsindicatie (summary), and stops
// as soon as the ruling body starts. Body markup is never inspected, so a
// document whose body is malformed still yields metadata.
package metadata
