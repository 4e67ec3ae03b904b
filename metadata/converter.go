package metadata

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/c360studio/rulingpipe/markup"
	vocab "github.com/c360studio/rulingpipe/vocabulary/rechtspraak"
)

const (
	elementSummary = "inhoudsindicatie"
	dateLayout     = "2006-01-02"
)

var ecliPattern = regexp.MustCompile(`^ECLI:[A-Z]{2}:[A-Z0-9.]{1,7}:[0-9]{4}:[A-Z0-9.]{1,25}$`)

// DefaultBodyElements mark where the header ends.
var DefaultBodyElements = []string{"uitspraak", "conclusie"}

// Converter turns ruling headers into records.
type Converter struct {
	// BodyElements are local names at which decoding stops.
	BodyElements []string

	// OmitContext leaves @context out of produced records.
	OmitContext bool
}

// NewConverter returns a converter with default settings.
func NewConverter() *Converter {
	return &Converter{BodyElements: DefaultBodyElements}
}

// Convert decodes the header of raw with the default converter.
func Convert(raw []byte) (*Record, error) {
	return NewConverter().Convert(raw)
}

// IsECLI reports whether s is a syntactically valid European Case Law Identifier.
func IsECLI(s string) bool {
	return ecliPattern.MatchString(s)
}

// Convert decodes the header of raw into a Record.
func (c *Converter) Convert(raw []byte) (*Record, error) {
	header, summary, err := c.decodeHeader(raw)
	if err != nil {
		return nil, err
	}
	return c.build(header, summary)
}

// decodeHeader streams raw until the body starts and returns the rdf:RDF block
// and the summary text. Malformed markup after the header has been read is not
// an error.
func (c *Converter) decodeHeader(raw []byte) (*rdfHeader, string, error) {
	stop := make(map[string]bool, len(c.BodyElements))
	for _, name := range c.BodyElements {
		stop[name] = true
	}

	d := markup.NewDecoder(bytes.NewReader(raw))

	var (
		header  *rdfHeader
		summary string
	)

	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if header != nil {
				break
			}
			return nil, "", fmt.Errorf("decode header: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch {
		case start.Name.Space == vocab.RDF && start.Name.Local == "RDF":
			var h rdfHeader
			if err := d.DecodeElement(&h, &start); err != nil {
				return nil, "", fmt.Errorf("decode rdf header: %w", err)
			}
			if header == nil {
				header = &h
			}
		case start.Name.Local == elementSummary:
			text, err := collectText(d)
			if err == nil {
				summary = text
			}
		case stop[start.Name.Local]:
			if header == nil {
				return nil, "", ErrNoDescription
			}
			return header, summary, nil
		}
	}

	if header == nil {
		return nil, "", ErrNoDescription
	}
	return header, summary, nil
}

// collectText reads the remainder of the current element and returns its
// normalized character data, including text of nested elements. Block elements
// are separated by a space; inline elements are not.
func collectText(d *xml.Decoder) (string, error) {
	inline := make(map[string]bool, len(markup.DefaultInlineElements))
	for _, name := range markup.DefaultInlineElements {
		inline[name] = true
	}

	var sb strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if !inline[t.Name.Local] {
				sb.WriteByte(' ')
			}
		case xml.EndElement:
			depth--
			if !inline[t.Name.Local] {
				sb.WriteByte(' ')
			}
		case xml.CharData:
			sb.Write(t)
		}
	}
	return markup.NormalizeSpace(sb.String()), nil
}

func (c *Converter) build(h *rdfHeader, summary string) (*Record, error) {
	if len(h.Descriptions) == 0 {
		return nil, ErrNoDescription
	}

	ecli, err := identifier(h.Descriptions)
	if err != nil {
		return nil, err
	}

	rec := &Record{
		ID:         vocab.RulingIRI(ecli),
		Identifier: ecli,
		Abstract:   summary,
	}
	if !c.OmitContext {
		rec.Context = vocab.Context()
	}

	for i := range h.Descriptions {
		d := &h.Descriptions[i]
		rec.Title = first(rec.Title, d.Title)
		rec.Abstract = first(rec.Abstract, d.Abstract)
		rec.Date = first(rec.Date, d.Date)
		rec.Issued = first(rec.Issued, d.Issued)
		rec.Modified = first(rec.Modified, d.Modified)
		rec.Language = first(rec.Language, d.Language)
		rec.Spatial = first(rec.Spatial, d.Spatial)
		if rec.Creator == nil {
			rec.Creator = d.Creator.resource()
		}
		if rec.Publisher == nil {
			rec.Publisher = d.Publisher.resource()
		}
		if rec.Kind == nil {
			rec.Kind = d.Type.resource()
		}
		rec.Procedure = append(rec.Procedure, resources(d.Procedures)...)
		rec.Subject = append(rec.Subject, resources(d.Subjects)...)
		rec.Relation = append(rec.Relation, resources(d.Relations)...)
		rec.References = append(rec.References, resources(d.References)...)
		for _, n := range d.CaseNumbers {
			if n = markup.NormalizeSpace(n); n != "" {
				rec.CaseNumber = append(rec.CaseNumber, n)
			}
		}
	}

	if err := checkDate(vocab.TermDate, rec.Date); err != nil {
		return nil, err
	}
	if err := checkDate(vocab.TermIssued, rec.Issued); err != nil {
		return nil, err
	}

	rec.Types = typesFor(rec.Kind)
	return rec, nil
}

func checkDate(term, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return fmt.Errorf("%w: %s %q", ErrInvalidDate, term, value)
	}
	return nil
}

// identifier returns the first ECLI found in the descriptions.
func identifier(descs []description) (string, error) {
	var seen string
	for _, d := range descs {
		id := strings.TrimSpace(d.Identifier)
		if id == "" {
			continue
		}
		if IsECLI(id) {
			return id, nil
		}
		if seen == "" {
			seen = id
		}
	}
	if seen != "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, seen)
	}
	return "", ErrMissingIdentifier
}
