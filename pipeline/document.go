package pipeline

import (
	"path/filepath"
	"strings"

	"github.com/c360studio/rulingpipe/fulltext"
	"github.com/c360studio/rulingpipe/metadata"
)

// RawDocument is a source document read into memory.
type RawDocument struct {
	// ID is the file name without extension, used as the artifact base name.
	ID string

	// Path is the path relative to the input directory.
	Path string

	// Content holds the raw document bytes.
	Content []byte
}

// NewRawDocument builds a RawDocument for the relative path rel.
func NewRawDocument(rel string, content []byte) RawDocument {
	base := filepath.Base(rel)
	return RawDocument{
		ID:      strings.TrimSuffix(base, filepath.Ext(base)),
		Path:    rel,
		Content: content,
	}
}

// Dir returns the directory of the document relative to the input directory.
func (d RawDocument) Dir() string {
	return filepath.Dir(d.Path)
}

// OutputRecord is the artifact written for a converted document.
type OutputRecord struct {
	Metadata *metadata.Record   `json:"metadata"`
	FullText []fulltext.Section `json:"fullText"`
}

// Status is the result class of a document conversion.
type Status int

// StatusConverted, StatusDegraded, and StatusSkipped enumerate conversion results.
const (
	StatusConverted Status = iota
	StatusDegraded
	StatusSkipped
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusConverted:
		return "converted"
	case StatusDegraded:
		return "degraded"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Outcome is the result of converting one document.
// Record is nil only for skipped documents; Err is nil only for converted ones.
type Outcome struct {
	Status Status
	Record *OutputRecord
	Err    error
}

// Converted returns a successful outcome.
func Converted(rec *OutputRecord) Outcome {
	return Outcome{Status: StatusConverted, Record: rec}
}

// Degraded returns an outcome whose record carries metadata but no full text.
func Degraded(rec *OutputRecord, cause error) Outcome {
	return Outcome{Status: StatusDegraded, Record: rec, Err: cause}
}

// Skipped returns an outcome for a document that produces no artifact.
func Skipped(cause error) Outcome {
	return Outcome{Status: StatusSkipped, Err: cause}
}
