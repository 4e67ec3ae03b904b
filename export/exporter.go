package export

import (
	"fmt"
	"io"

	"github.com/c360studio/rulingpipe/metadata"
)

// Exporter collects ruling resources and serializes them.
type Exporter struct {
	resources []Resource
}

// NewExporter creates an empty exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// AddRecord adds the ruling described by rec and the resources it references.
func (e *Exporter) AddRecord(rec *metadata.Record) {
	if rec == nil {
		return
	}
	e.resources = append(e.resources, RecordResources(rec)...)
}

// Write serializes all resources to w in the given format.
func (e *Exporter) Write(w io.Writer, format Format) error {
	switch format {
	case FormatTurtle:
		return writeTurtle(w, e.resources)
	case FormatNTriples:
		return writeNTriples(w, e.resources)
	case FormatJSONLD:
		return writeJSONLD(w, e.resources)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
