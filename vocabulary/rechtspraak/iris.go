package rechtspraak

// Namespace IRIs used in ruling headers.
const (
	// RDF is the RDF syntax namespace.
	RDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RDFS is the RDF schema namespace.
	RDFS = "http://www.w3.org/2000/01/rdf-schema#"

	// DCTerms is the Dublin Core terms namespace.
	DCTerms = "http://purl.org/dc/terms/"

	// PSI is the judiciary's own vocabulary namespace.
	PSI = "http://psi.rechtspraak.nl/"

	// XSD is the XML Schema datatypes namespace.
	XSD = "http://www.w3.org/2001/XMLSchema#"

	// FRBR is the bibliographic work/expression vocabulary.
	FRBR = "http://purl.org/vocab/frbr/core#"
)

// DeeplinkBase prefixes an ECLI to form the ruling's persistent IRI.
const DeeplinkBase = "http://deeplink.rechtspraak.nl/uitspraak?id="

// Class IRIs.
const (
	// ClassWork is the abstract ruling, independent of any publication.
	ClassWork = FRBR + "Work"

	// ClassRuling is a court decision.
	ClassRuling = PSI + "uitspraak"

	// ClassConclusion is an advisory opinion by the procurator general.
	ClassConclusion = PSI + "conclusie"
)

// RulingIRI returns the persistent IRI of a ruling identified by ecli.
func RulingIRI(ecli string) string {
	return DeeplinkBase + ecli
}
