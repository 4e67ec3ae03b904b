package pipeline

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const rdfOpen = `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:dcterms="http://purl.org/dc/terms/">`

// ruling returns a minimal document with the given identifier and body markup.
func ruling(ecli, body string) string {
	return `<?xml version="1.0" encoding="utf-8"?>` + "\n" +
		`<open-rechtspraak>` + rdfOpen +
		`<rdf:Description><dcterms:identifier>` + ecli + `</dcterms:identifier>` +
		`<dcterms:date>2021-01-14</dcterms:date></rdf:Description></rdf:RDF>` +
		body + `</open-rechtspraak>`
}

// headerless returns a document without any RDF header.
func headerless(body string) string {
	return `<open-rechtspraak>` + body + `</open-rechtspraak>`
}

func writeInput(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// bufferLogger returns a logger writing text lines to buf.
func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func newTestDriver(t *testing.T, in, out string, opts ...Option) *Driver {
	t.Helper()
	source := &Source{Dir: in, Extension: ".xml"}
	opts = append([]Option{WithLogger(discardLogger())}, opts...)
	return NewDriver(source, NewConverter(nil, nil, nil), NewWriter(out, ""), opts...)
}

type recordingPublisher struct {
	mu   sync.Mutex
	sent []Notification
	err  error
}

func (p *recordingPublisher) Publish(_ context.Context, n Notification) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, n)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }
