package fulltext

import "errors"

// ErrNoSectionContainer is returned when a document lacks the root container or
// ruling body that holds the section list.
var ErrNoSectionContainer = errors.New("section container not found")
