package metadata

import "errors"

// Conversion errors.
var (
	// ErrNoDescription is returned when the document has no rdf:RDF header or the
	// header holds no rdf:Description.
	ErrNoDescription = errors.New("no rdf description in document")

	// ErrMissingIdentifier is returned when no description carries an identifier.
	ErrMissingIdentifier = errors.New("ruling identifier missing")

	// ErrInvalidIdentifier is returned when the identifier is not an ECLI.
	ErrInvalidIdentifier = errors.New("ruling identifier is not a valid ECLI")

	// ErrInvalidDate is returned when a ruling or publication date cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")
)
