package pipeline

import "errors"

// Sentinel errors for document and batch handling.
var (
	// ErrInputDir indicates the input directory cannot be enumerated.
	ErrInputDir = errors.New("input directory unavailable")

	// ErrOutputDir indicates the output directory cannot be created.
	ErrOutputDir = errors.New("output directory unavailable")

	// ErrTooLarge indicates a document exceeds the configured size limit.
	ErrTooLarge = errors.New("document too large")

	// ErrNoMetadata indicates the metadata converter returned no record.
	ErrNoMetadata = errors.New("metadata converter returned no record")
)
