package pipeline

import (
	"fmt"

	"github.com/c360studio/rulingpipe/fulltext"
	"github.com/c360studio/rulingpipe/markup"
	"github.com/c360studio/rulingpipe/metadata"
)

// MetadataConverter turns a raw document into its metadata record.
type MetadataConverter interface {
	Convert(raw []byte) (*metadata.Record, error)
}

// MetadataFunc adapts a function to MetadataConverter.
type MetadataFunc func(raw []byte) (*metadata.Record, error)

// Convert calls f(raw).
func (f MetadataFunc) Convert(raw []byte) (*metadata.Record, error) {
	return f(raw)
}

// TreeParser turns a raw document into a labelled tree.
type TreeParser interface {
	Parse(raw []byte) (*markup.Node, error)
}

// ParseFunc adapts a function to TreeParser.
type ParseFunc func(raw []byte) (*markup.Node, error)

// Parse calls f(raw).
func (f ParseFunc) Parse(raw []byte) (*markup.Node, error) {
	return f(raw)
}

// Converter runs the metadata and full-text sub-pipelines for one document.
type Converter struct {
	meta      MetadataConverter
	parser    TreeParser
	extractor *fulltext.Extractor
}

// NewConverter creates a converter. Nil collaborators fall back to the
// package defaults of metadata, markup and fulltext.
func NewConverter(meta MetadataConverter, parser TreeParser, extractor *fulltext.Extractor) *Converter {
	if meta == nil {
		meta = metadata.NewConverter()
	}
	if parser == nil {
		parser = markup.NewParser()
	}
	if extractor == nil {
		extractor = fulltext.NewExtractor()
	}
	return &Converter{meta: meta, parser: parser, extractor: extractor}
}

// Convert produces the outcome for doc. It never panics on malformed input
// and holds no state between calls.
func (c *Converter) Convert(doc RawDocument) Outcome {
	rec, err := c.meta.Convert(doc.Content)
	if err != nil {
		return Skipped(fmt.Errorf("metadata: %w", err))
	}
	if rec == nil {
		return Skipped(ErrNoMetadata)
	}

	sections, err := c.extract(doc.Content)
	if err != nil {
		return Degraded(&OutputRecord{Metadata: rec, FullText: []fulltext.Section{}}, err)
	}
	return Converted(&OutputRecord{Metadata: rec, FullText: sections})
}

func (c *Converter) extract(raw []byte) ([]fulltext.Section, error) {
	tree, err := c.parser.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	sections, err := c.extractor.Extract(tree)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	if sections == nil {
		sections = []fulltext.Section{}
	}
	return sections, nil
}
