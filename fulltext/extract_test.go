package fulltext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	tree := mustParse(t, `<open-rechtspraak>
  <inhoudsindicatie>summary</inhoudsindicatie>
  <uitspraak>
    <uitspraak.info><para>header</para></uitspraak.info>
    <section><title>Procesverloop</title><para>history</para></section>
    <section><title>Overwegingen</title>
      <paragroup><para>1.1</para><parablock><para>1.2</para></parablock></paragroup>
    </section>
    <section><title>Beslissing</title><para>De Raad bevestigt de aangevallen uitspraak.</para></section>
  </uitspraak>
</open-rechtspraak>`)

	got, err := NewExtractor().Extract(tree)
	require.NoError(t, err)
	assert.Equal(t, []Section{
		{Title: "OVERWEGINGEN", Paragraphs: []string{"1.1", "1.2"}},
		{Title: "BESLISSING", Paragraphs: []string{"De Raad bevestigt de aangevallen uitspraak."}},
	}, got)
}

func TestExtractor_MissingContainer(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"wrong root", `<other><uitspraak/></other>`},
		{"no body", `<open-rechtspraak><conclusie><section><title>Beslissing</title></section></conclusie></open-rechtspraak>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewExtractor().Extract(mustParse(t, tt.raw))
			assert.ErrorIs(t, err, ErrNoSectionContainer)
		})
	}

	_, err := NewExtractor().Extract(nil)
	assert.ErrorIs(t, err, ErrNoSectionContainer)
}

func TestExtractor_BodyWithoutSections(t *testing.T) {
	got, err := NewExtractor().Extract(mustParse(t, `<open-rechtspraak><uitspraak/></open-rechtspraak>`))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtractor_CustomBody(t *testing.T) {
	e := &Extractor{RootElement: "open-rechtspraak", BodyElement: "conclusie", Filter: NewFilter(OrderDocument, "Conclusie")}
	got, err := e.Extract(mustParse(t, `<open-rechtspraak><conclusie><section><title>Conclusie</title><para>c</para></section></conclusie></open-rechtspraak>`))
	require.NoError(t, err)
	assert.Equal(t, []Section{{Title: "CONCLUSIE", Paragraphs: []string{"c"}}}, got)
}
