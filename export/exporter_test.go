package export_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/c360studio/rulingpipe/export"
	"github.com/c360studio/rulingpipe/metadata"
	vocab "github.com/c360studio/rulingpipe/vocabulary/rechtspraak"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	rulingIRI  = "http://deeplink.rechtspraak.nl/uitspraak?id=ECLI:NL:CRVB:2021:123"
	courtIRI   = "http://standaarden.overheid.nl/owms/terms/Centrale_Raad_van_Beroep"
	subjectIRI = "http://psi.rechtspraak.nl/rechtsgebied#bestuursrecht"
)

func sampleRecord() *metadata.Record {
	return &metadata.Record{
		ID:         vocab.RulingIRI("ECLI:NL:CRVB:2021:123"),
		Types:      []string{vocab.ClassWork, vocab.ClassRuling},
		Identifier: "ECLI:NL:CRVB:2021:123",
		Title:      `Uitspraak "WIA"`,
		Date:       "2021-01-14",
		Creator:    &metadata.Resource{ID: courtIRI, Label: "Centrale Raad van Beroep"},
		Subject: []metadata.Resource{
			{ID: subjectIRI, Label: "Bestuursrecht"},
			{Label: "Zonder IRI"},
		},
		CaseNumber: []string{"19/4321 WIA", "19/4322 WIA"},
	}
}

func write(t *testing.T, rec *metadata.Record, format export.Format) string {
	t.Helper()
	exporter := export.NewExporter()
	exporter.AddRecord(rec)
	var buf bytes.Buffer
	require.NoError(t, exporter.Write(&buf, format))
	return buf.String()
}

func TestRecordResources(t *testing.T) {
	resources := export.RecordResources(sampleRecord())
	require.Len(t, resources, 3, "ruling plus two labelled resources")

	ruling := resources[0]
	assert.Equal(t, rulingIRI, ruling.IRI)
	assert.Contains(t, ruling.Statements, export.Statement{
		Predicate: vocab.DCTerms + "date",
		Object:    export.Literal{Value: "2021-01-14", Datatype: vocab.XSD + "date"},
	})
	assert.Contains(t, ruling.Statements, export.Statement{Predicate: vocab.DCTerms + "creator", Object: export.IRI(courtIRI)})
	assert.Contains(t, ruling.Statements, export.Statement{Predicate: vocab.DCTerms + "subject", Object: export.Literal{Value: "Zonder IRI"}})
	assert.Contains(t, ruling.Statements, export.Statement{Predicate: vocab.PSI + "zaaknummer", Object: export.Literal{Value: "19/4322 WIA"}})

	assert.Equal(t, courtIRI, resources[1].IRI)
	assert.Equal(t, []export.Statement{{Predicate: vocab.RDFS + "label", Object: export.Literal{Value: "Centrale Raad van Beroep"}}},
		resources[1].Statements)
}

func TestRecordResources_LinkedOnce(t *testing.T) {
	rec := sampleRecord()
	rec.Publisher = &metadata.Resource{ID: courtIRI, Label: "Centrale Raad van Beroep"}

	resources := export.RecordResources(rec)
	assert.Len(t, resources, 3)
}

func TestWriteTurtle(t *testing.T) {
	want := `@prefix dcterms: <http://purl.org/dc/terms/> .
@prefix frbr: <http://purl.org/vocab/frbr/core#> .
@prefix psi: <http://psi.rechtspraak.nl/> .
@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .

<` + rulingIRI + `>
    a frbr:Work, psi:uitspraak ;
    dcterms:identifier "ECLI:NL:CRVB:2021:123" ;
    dcterms:title "Uitspraak \"WIA\"" ;
    dcterms:date "2021-01-14"^^xsd:date ;
    dcterms:creator <` + courtIRI + `> ;
    dcterms:subject <` + subjectIRI + `>, "Zonder IRI" ;
    psi:zaaknummer "19/4321 WIA", "19/4322 WIA" .

<` + courtIRI + `>
    rdfs:label "Centrale Raad van Beroep" .

<` + subjectIRI + `>
    rdfs:label "Bestuursrecht" .
`
	assert.Equal(t, want, write(t, sampleRecord(), export.FormatTurtle))
}

func TestWriteNTriples(t *testing.T) {
	output := write(t, sampleRecord(), export.FormatNTriples)

	subject := "<" + rulingIRI + ">"
	assert.Contains(t, output, subject+" <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <"+vocab.ClassWork+"> .\n")
	assert.Contains(t, output, subject+" <http://purl.org/dc/terms/date> \"2021-01-14\"^^<http://www.w3.org/2001/XMLSchema#date> .\n")
	assert.Contains(t, output, subject+` <http://purl.org/dc/terms/title> "Uitspraak \"WIA\"" .`+"\n")
	assert.Contains(t, output, "<"+subjectIRI+"> <http://www.w3.org/2000/01/rdf-schema#label> \"Bestuursrecht\" .\n")

	lines := strings.Split(strings.TrimSpace(output), "\n")
	assert.Len(t, lines, 12)
	for _, line := range lines {
		assert.True(t, strings.HasSuffix(line, " ."), "line %q", line)
		assert.NotContains(t, line, "dcterms:", "line %q", line)
	}
}

func TestWriteJSONLD(t *testing.T) {
	output := write(t, sampleRecord(), export.FormatJSONLD)

	var doc struct {
		Context map[string]any   `json:"@context"`
		Graph   []map[string]any `json:"@graph"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &doc))
	assert.Equal(t, vocab.DCTerms, doc.Context["dcterms"])
	require.Len(t, doc.Graph, 3)

	assert.Equal(t, map[string]any{
		"@id":        rulingIRI,
		"@type":      []any{"frbr:Work", "psi:uitspraak"},
		"identifier": "ECLI:NL:CRVB:2021:123",
		"title":      `Uitspraak "WIA"`,
		"date":       "2021-01-14",
		"creator":    map[string]any{"@id": courtIRI},
		"subject":    []any{map[string]any{"@id": subjectIRI}, "Zonder IRI"},
		"caseNumber": []any{"19/4321 WIA", "19/4322 WIA"},
	}, doc.Graph[0])
	assert.Equal(t, map[string]any{"@id": courtIRI, "label": "Centrale Raad van Beroep"}, doc.Graph[1])
}

func TestWriteJSONLD_SetTermsAreArrays(t *testing.T) {
	rec := sampleRecord()
	rec.CaseNumber = rec.CaseNumber[:1]
	rec.Subject = rec.Subject[1:]

	var doc struct {
		Graph []map[string]any `json:"@graph"`
	}
	require.NoError(t, json.Unmarshal([]byte(write(t, rec, export.FormatJSONLD)), &doc))
	assert.Equal(t, []any{"19/4321 WIA"}, doc.Graph[0]["caseNumber"])
	assert.Equal(t, []any{"Zonder IRI"}, doc.Graph[0]["subject"])
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := export.NewExporter().Write(&buf, "rdfxml")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want export.Format
		ext  string
	}{
		{in: "turtle", want: export.FormatTurtle, ext: ".ttl"},
		{in: "TTL", want: export.FormatTurtle, ext: ".ttl"},
		{in: "nt", want: export.FormatNTriples, ext: ".nt"},
		{in: "n-triples", want: export.FormatNTriples, ext: ".nt"},
		{in: "json-ld", want: export.FormatJSONLD, ext: ".jsonld"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := export.ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ext, got.Extension())
		})
	}

	_, err := export.ParseFormat("xml")
	assert.Error(t, err)
}
