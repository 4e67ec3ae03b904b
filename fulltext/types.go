package fulltext

// Element names used by the ruling markup.
const (
	ElementSection        = "section"
	ElementTitle          = "title"
	ElementParagraph      = "para"
	ElementParagraphGroup = "paragroup"
	ElementParagraphBlock = "parablock"
)

// Canonical section titles kept by default.
const (
	TitleConsiderations = "OVERWEGINGEN"
	TitleDecision       = "BESLISSING"
)

// DefaultTitles is the default section allow-set.
var DefaultTitles = []string{TitleConsiderations, TitleDecision}

// Section is one kept section of a ruling.
type Section struct {
	Title      string   `json:"title"`
	Paragraphs []string `json:"paragraphs"`
}

// Order selects how sibling paragraphs and wrappers are sequenced.
type Order string

const (
	// OrderDocument walks children in source order, depth-first.
	OrderDocument Order = "document"

	// OrderGrouped emits all direct paragraphs first, then every paragroup,
	// then every parablock, as the legacy converter did.
	OrderGrouped Order = "grouped"
)

// Valid reports whether o is a known order.
func (o Order) Valid() bool {
	return o == OrderDocument || o == OrderGrouped
}
