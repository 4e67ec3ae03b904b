package metadata

import (
	"strings"

	"github.com/c360studio/rulingpipe/markup"
	vocab "github.com/c360studio/rulingpipe/vocabulary/rechtspraak"
)

// rdfHeader is the rdf:RDF block of a ruling.
type rdfHeader struct {
	Descriptions []description `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# Description"`
}

// description is one rdf:Description. A ruling header usually carries two: one
// for the ruling itself and one for its public web rendition.
type description struct {
	About       string     `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# about,attr"`
	Identifier  string     `xml:"http://purl.org/dc/terms/ identifier"`
	Title       string     `xml:"http://purl.org/dc/terms/ title"`
	Abstract    string     `xml:"http://purl.org/dc/terms/ abstract"`
	Date        string     `xml:"http://purl.org/dc/terms/ date"`
	Issued      string     `xml:"http://purl.org/dc/terms/ issued"`
	Modified    string     `xml:"http://purl.org/dc/terms/ modified"`
	Language    string     `xml:"http://purl.org/dc/terms/ language"`
	Creator     *labelled  `xml:"http://purl.org/dc/terms/ creator"`
	Publisher   *labelled  `xml:"http://purl.org/dc/terms/ publisher"`
	Type        *labelled  `xml:"http://purl.org/dc/terms/ type"`
	Procedures  []labelled `xml:"http://psi.rechtspraak.nl/ procedure"`
	Subjects    []labelled `xml:"http://purl.org/dc/terms/ subject"`
	CaseNumbers []string   `xml:"http://psi.rechtspraak.nl/ zaaknummer"`
	Spatial     string     `xml:"http://purl.org/dc/terms/ spatial"`
	Relations   []labelled `xml:"http://purl.org/dc/terms/ relation"`
	References  []labelled `xml:"http://purl.org/dc/terms/ references"`
}

// labelled is an element whose text is a label and whose resourceIdentifier
// attribute points at the referenced resource.
type labelled struct {
	Value    string `xml:",chardata"`
	Resource string `xml:"resourceIdentifier,attr"`
}

func (l *labelled) resource() *Resource {
	if l == nil {
		return nil
	}
	r := Resource{ID: strings.TrimSpace(l.Resource), Label: markup.NormalizeSpace(l.Value)}
	if r.ID == "" && r.Label == "" {
		return nil
	}
	return &r
}

func resources(ls []labelled) []Resource {
	var out []Resource
	for i := range ls {
		if r := ls[i].resource(); r != nil {
			out = append(out, *r)
		}
	}
	return out
}

// first returns the first non-empty normalized value.
func first(values ...string) string {
	for _, v := range values {
		if v = markup.NormalizeSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// typesFor maps the dcterms:type resource to record classes.
func typesFor(kind *Resource) []string {
	types := []string{vocab.ClassWork}
	if kind == nil {
		return types
	}
	switch {
	case kind.ID == vocab.ClassConclusion || strings.EqualFold(kind.Label, "conclusie"):
		types = append(types, vocab.ClassConclusion)
	case kind.ID == vocab.ClassRuling || strings.EqualFold(kind.Label, "uitspraak"):
		types = append(types, vocab.ClassRuling)
	}
	return types
}
