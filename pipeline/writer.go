package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultArtifactExtension is appended to the document ID.
const DefaultArtifactExtension = ".json"

// Writer serializes output records to the output directory.
type Writer struct {
	dir string
	ext string
}

// NewWriter creates a writer rooted at dir. An empty ext uses DefaultArtifactExtension.
func NewWriter(dir, ext string) *Writer {
	if ext == "" {
		ext = DefaultArtifactExtension
	}
	return &Writer{dir: dir, ext: ext}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Prepare creates the output directory if it does not exist.
func (w *Writer) Prepare() error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputDir, err)
	}
	return nil
}

// PathFor returns the artifact path for doc, mirroring its input subdirectory.
func (w *Writer) PathFor(doc RawDocument) string {
	return filepath.Join(w.dir, doc.Dir(), doc.ID+w.ext)
}

// Write serializes rec and writes it to the artifact path of doc, replacing
// any earlier artifact. It returns the written path.
func (w *Writer) Write(doc RawDocument, rec *OutputRecord) (string, error) {
	data, err := Marshal(rec)
	if err != nil {
		return "", err
	}

	path := w.PathFor(doc)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create artifact dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write artifact: %w", err)
	}
	return path, nil
}

// Marshal returns the canonical artifact encoding of rec: two-space indented
// JSON without HTML escaping, ending in a newline.
func Marshal(rec *OutputRecord) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return nil, fmt.Errorf("marshal artifact: %w", err)
	}
	return buf.Bytes(), nil
}
