package markup

import "errors"

// Parse errors.
var (
	// ErrEmptyDocument is returned when the input has no root element.
	ErrEmptyDocument = errors.New("document has no root element")

	// ErrTooDeep is returned when element nesting exceeds Parser.MaxDepth.
	ErrTooDeep = errors.New("element nesting too deep")
)
