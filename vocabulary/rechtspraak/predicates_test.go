package rechtspraak

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicateIRI(t *testing.T) {
	assert.Equal(t, "http://purl.org/dc/terms/creator", PredicateIRI(TermCreator))
	assert.Equal(t, "http://psi.rechtspraak.nl/zaaknummer", PredicateIRI(TermCaseNumber))
	assert.Equal(t, "unknown", PredicateIRI("unknown"))
}

func TestTermsResolveToAbsoluteIRIs(t *testing.T) {
	for _, term := range Terms() {
		iri := PredicateIRI(term)
		assert.True(t, strings.HasPrefix(iri, "http://"), "term %s -> %s", term, iri)
	}
}

func TestTermFor(t *testing.T) {
	for _, term := range Terms() {
		got, ok := TermFor(PredicateIRI(term))
		assert.True(t, ok, term)
		assert.Equal(t, term, got)
	}

	_, ok := TermFor(RDF + "type")
	assert.False(t, ok)
}

func TestIsSetTerm(t *testing.T) {
	assert.True(t, IsSetTerm(TermSubject))
	assert.True(t, IsSetTerm(TermCaseNumber))
	assert.False(t, IsSetTerm(TermCreator))
	assert.False(t, IsSetTerm(TermLabel))
}

func TestContext(t *testing.T) {
	ctx := Context()
	assert.Equal(t, DCTerms, ctx["dcterms"])
	assert.Equal(t, DCTerms+"identifier", ctx[TermIdentifier])
	assert.Equal(t, map[string]string{"@id": DCTerms + "date", "@type": XSD + "date"}, ctx[TermDate])
	assert.Equal(t, map[string]string{"@id": PSI + "zaaknummer", "@container": "@set"}, ctx[TermCaseNumber])
}

func TestRulingIRI(t *testing.T) {
	assert.Equal(t, "http://deeplink.rechtspraak.nl/uitspraak?id=ECLI:NL:CRVB:2021:123", RulingIRI("ECLI:NL:CRVB:2021:123"))
}
