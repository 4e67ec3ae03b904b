package rechtspraak

import "sort"

// Compact JSON-LD term names used in metadata records.
const (
	TermIdentifier = "identifier"
	TermTitle      = "title"
	TermAbstract   = "abstract"
	TermDate       = "date"
	TermIssued     = "issued"
	TermModified   = "modified"
	TermLanguage   = "language"
	TermCreator    = "creator"
	TermPublisher  = "publisher"
	TermType       = "type"
	TermProcedure  = "procedure"
	TermSubject    = "subject"
	TermCaseNumber = "caseNumber"
	TermSpatial    = "spatial"
	TermRelation   = "relation"
	TermReferences = "references"
	TermLabel      = "label"
)

// termIRIs maps compact terms to their full predicate IRIs.
var termIRIs = map[string]string{
	TermIdentifier: DCTerms + "identifier",
	TermTitle:      DCTerms + "title",
	TermAbstract:   DCTerms + "abstract",
	TermDate:       DCTerms + "date",
	TermIssued:     DCTerms + "issued",
	TermModified:   DCTerms + "modified",
	TermLanguage:   DCTerms + "language",
	TermCreator:    DCTerms + "creator",
	TermPublisher:  DCTerms + "publisher",
	TermType:       DCTerms + "type",
	TermProcedure:  PSI + "procedure",
	TermSubject:    DCTerms + "subject",
	TermCaseNumber: PSI + "zaaknummer",
	TermSpatial:    DCTerms + "spatial",
	TermRelation:   DCTerms + "relation",
	TermReferences: DCTerms + "references",
	TermLabel:      RDFS + "label",
}

// dateTerms hold xsd:date literals.
var dateTerms = map[string]bool{
	TermDate:   true,
	TermIssued: true,
}

// setTerms repeat on a ruling and are always serialized as arrays.
var setTerms = map[string]bool{
	TermProcedure:  true,
	TermSubject:    true,
	TermCaseNumber: true,
	TermRelation:   true,
	TermReferences: true,
}

// PredicateIRI returns the full IRI of a compact term, or the term itself when unknown.
func PredicateIRI(term string) string {
	if iri, ok := termIRIs[term]; ok {
		return iri
	}
	return term
}

// TermFor returns the compact term of a predicate IRI.
func TermFor(iri string) (string, bool) {
	for term, full := range termIRIs {
		if full == iri {
			return term, true
		}
	}
	return "", false
}

// IsSetTerm reports whether the term is declared with a @set container.
func IsSetTerm(term string) bool {
	return setTerms[term]
}

// IsDateTerm reports whether the term's literals are typed xsd:date.
func IsDateTerm(term string) bool {
	return dateTerms[term]
}

// Terms returns all known compact terms, sorted.
func Terms() []string {
	out := make([]string, 0, len(termIRIs))
	for t := range termIRIs {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Prefixes returns the namespace prefixes used for compact serializations.
func Prefixes() map[string]string {
	return map[string]string{
		"rdf":     RDF,
		"rdfs":    RDFS,
		"dcterms": DCTerms,
		"psi":     PSI,
		"xsd":     XSD,
		"frbr":    FRBR,
	}
}

// Context returns the JSON-LD @context for metadata records.
func Context() map[string]any {
	ctx := make(map[string]any, len(termIRIs)+len(Prefixes()))
	for prefix, iri := range Prefixes() {
		ctx[prefix] = iri
	}
	for term, iri := range termIRIs {
		switch {
		case IsDateTerm(term):
			ctx[term] = map[string]string{"@id": iri, "@type": XSD + "date"}
		case IsSetTerm(term):
			ctx[term] = map[string]string{"@id": iri, "@container": "@set"}
		default:
			ctx[term] = iri
		}
	}
	return ctx
}
