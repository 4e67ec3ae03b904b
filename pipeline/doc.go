// Package pipeline converts directories of ruling documents into JSON artifacts.
//
// Each document runs through two independent sub-pipelines: metadata decoding
// of the RDF header and full-text extraction of the kept sections. A metadata
// failure skips the document; a full-text failure still writes the artifact
// with an empty section list. The Driver enumerates, converts and writes
// documents strictly one at a time and tallies the outcomes in a Summary.
package pipeline
