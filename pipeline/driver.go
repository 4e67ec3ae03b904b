package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// WarningKind classifies a per-document warning.
type WarningKind string

// WarningSkipped, WarningDegraded, WarningWriteFailed, and WarningPublishFailed
// enumerate the per-document warning kinds.
const (
	WarningSkipped       WarningKind = "skipped"
	WarningDegraded      WarningKind = "degraded"
	WarningWriteFailed   WarningKind = "write_failed"
	WarningPublishFailed WarningKind = "publish_failed"
)

// Warning records a problem with one document. Document is the document ID
// used in log lines; Path is relative to the input directory.
type Warning struct {
	Document string
	Path     string
	Kind     WarningKind
	Message  string
}

// Summary tallies one batch run.
type Summary struct {
	RunID       string
	Discovered  int
	Converted   int
	Degraded    int
	Skipped     int
	WriteFailed int
	Warnings    []Warning
	Interrupted bool
	Duration    time.Duration
}

// Written returns the number of artifacts produced by the run.
func (s *Summary) Written() int {
	return s.Converted + s.Degraded
}

func (s *Summary) warn(r Result, kind WarningKind, err error) {
	s.Warnings = append(s.Warnings, Warning{Document: r.Document, Path: r.Path, Kind: kind, Message: err.Error()})
}

// Result is the handling of one document by the driver.
type Result struct {
	Document   string
	Path       string
	Outcome    Outcome
	Output     string
	WriteErr   error
	PublishErr error
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger used for progress lines.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithMetrics records run statistics on m.
func WithMetrics(m *Metrics, textfile string) Option {
	return func(d *Driver) {
		d.metrics = m
		d.textfile = textfile
	}
}

// WithPublisher announces written artifacts through p.
func WithPublisher(p Publisher) Option {
	return func(d *Driver) {
		if p != nil {
			d.publisher = p
		}
	}
}

// Driver runs the batch: discover, convert, write and tally.
// Documents are handled strictly sequentially; a Driver is not safe for
// concurrent use.
type Driver struct {
	source    *Source
	converter *Converter
	writer    *Writer
	logger    *slog.Logger
	metrics   *Metrics
	textfile  string
	publisher Publisher
	hashes    hashRecorder
	runID     string
}

// hashRecorder receives the content hash of each document read by the driver.
type hashRecorder interface {
	SetHash(path, hash string)
}

// NewDriver creates a driver reading from source and writing through writer.
func NewDriver(source *Source, converter *Converter, writer *Writer, opts ...Option) *Driver {
	d := &Driver{
		source:    source,
		converter: converter,
		writer:    writer,
		logger:    slog.Default(),
		publisher: NopPublisher(),
		runID:     uuid.New().String(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// RunID returns the identifier attached to notifications of this driver.
func (d *Driver) RunID() string {
	return d.runID
}

// Run converts every eligible document once. The returned error is non-nil
// only for batch-fatal conditions; per-document failures are recorded in the
// Summary. Cancellation of ctx is observed between documents.
func (d *Driver) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	summary := &Summary{RunID: d.runID}

	paths, err := d.source.Discover()
	if err != nil {
		return nil, err
	}
	if err := d.writer.Prepare(); err != nil {
		return nil, err
	}
	summary.Discovered = len(paths)
	d.metrics.SetDiscovered(len(paths))
	d.logger.Info("Found XML files", "count", len(paths), "input", d.source.Dir, "run_id", d.runID)

	for _, path := range paths {
		if ctx.Err() != nil {
			summary.Interrupted = true
			d.logger.Warn("Run interrupted", "remaining", len(paths)-summary.processed())
			break
		}
		summary.add(d.ProcessFile(ctx, path))
	}

	summary.Duration = time.Since(start)
	d.logger.Info("All files processed",
		"converted", summary.Converted,
		"degraded", summary.Degraded,
		"skipped", summary.Skipped,
		"write_failed", summary.WriteFailed,
		"duration", summary.Duration)

	if err := d.metrics.WriteTextfile(d.textfile); err != nil {
		d.logger.Warn("Failed to write metrics", "path", d.textfile, "error", err)
	}
	return summary, nil
}

func (s *Summary) processed() int {
	return s.Converted + s.Degraded + s.Skipped + s.WriteFailed
}

func (s *Summary) add(r Result) {
	if r.WriteErr != nil {
		s.WriteFailed++
		s.warn(r, WarningWriteFailed, r.WriteErr)
		return
	}
	switch r.Outcome.Status {
	case StatusConverted:
		s.Converted++
	case StatusDegraded:
		s.Degraded++
		s.warn(r, WarningDegraded, r.Outcome.Err)
	case StatusSkipped:
		s.Skipped++
		s.warn(r, WarningSkipped, r.Outcome.Err)
	}
	if r.PublishErr != nil {
		s.warn(r, WarningPublishFailed, r.PublishErr)
	}
}

// ProcessFile reads, converts and writes the document at the relative path.
func (d *Driver) ProcessFile(ctx context.Context, path string) Result {
	start := time.Now()
	result := Result{Document: NewRawDocument(path, nil).ID, Path: path}

	doc, err := d.source.Read(path)
	if err != nil {
		result.Outcome = Skipped(err)
		d.logger.Warn("Skipping document due to read error", "document", result.Document, "path", path, "error", err)
		d.metrics.ObserveDocument(LabelSkipped, time.Since(start))
		return result
	}
	if d.hashes != nil {
		d.hashes.SetHash(path, ContentHash(doc.Content))
	}

	result.Outcome = d.converter.Convert(doc)
	switch result.Outcome.Status {
	case StatusSkipped:
		d.logger.Warn("Skipping document due to metadata error", "document", doc.ID, "error", result.Outcome.Err)
		d.metrics.ObserveDocument(LabelSkipped, time.Since(start))
		return result
	case StatusDegraded:
		d.logger.Warn("Partial extract failed", "document", doc.ID, "error", result.Outcome.Err)
	}

	output, err := d.writer.Write(doc, result.Outcome.Record)
	if err != nil {
		result.WriteErr = err
		d.logger.Warn("Failed to write artifact", "document", doc.ID, "error", err)
		d.metrics.ObserveDocument(LabelWriteFailed, time.Since(start))
		return result
	}
	result.Output = output

	if result.Outcome.Status == StatusConverted {
		d.logger.Info("Converted", "document", doc.ID, "output", output)
		d.metrics.ObserveDocument(LabelConverted, time.Since(start))
	} else {
		d.metrics.ObserveDocument(LabelDegraded, time.Since(start))
	}

	result.PublishErr = d.notify(ctx, doc, result)
	return result
}

func (d *Driver) notify(ctx context.Context, doc RawDocument, r Result) error {
	n := Notification{
		RunID:    d.runID,
		Document: doc.ID,
		Status:   r.Outcome.Status.String(),
		Output:   r.Output,
	}
	if rec := r.Outcome.Record; rec != nil && rec.Metadata != nil {
		n.Identifier = rec.Metadata.Identifier
	}
	if err := d.publisher.Publish(ctx, n); err != nil {
		d.logger.Warn("Failed to publish notification", "document", doc.ID, "error", err)
		return err
	}
	return nil
}
