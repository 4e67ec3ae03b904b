package fulltext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_Apply(t *testing.T) {
	body := mustParse(t, `<uitspraak>
  <section><title>Overwegingen</title><para>P1</para><para></para><para>P2</para></section>
  <section><title>Considerans</title><para>skip</para></section>
</uitspraak>`)

	got := NewFilter(OrderDocument).Apply(body.ChildrenNamed(ElementSection))
	assert.Equal(t, []Section{{Title: "OVERWEGINGEN", Paragraphs: []string{"P1", "P2"}}}, got)
}

func TestFilter_PreservesOrderAndDuplicates(t *testing.T) {
	body := mustParse(t, `<uitspraak>
  <section><title> beslissing </title><para>D1</para></section>
  <section><title>Procesverloop</title><para>x</para></section>
  <section><title>OVERWEGINGEN</title><para>C1</para></section>
  <section><title>Beslissing</title><para>D2</para></section>
</uitspraak>`)

	got := NewFilter(OrderDocument).Apply(body.ChildrenNamed(ElementSection))
	require.Len(t, got, 3)
	assert.Equal(t, "BESLISSING", got[0].Title)
	assert.Equal(t, []string{"D1"}, got[0].Paragraphs)
	assert.Equal(t, "OVERWEGINGEN", got[1].Title)
	assert.Equal(t, "BESLISSING", got[2].Title)
	assert.Equal(t, []string{"D2"}, got[2].Paragraphs)
}

func TestFilter_TitleForms(t *testing.T) {
	body := mustParse(t, `<uitspraak>
  <section><title id="t1">Overwegingen</title><para>with attr</para></section>
  <section><title><nr>3.</nr>Beslissing</title><para>with child</para></section>
  <section><title><nr>4.</nr></title><para>no text slot</para></section>
  <section><para>no title</para></section>
  <section><title>   </title><para>blank title</para></section>
</uitspraak>`)

	got := NewFilter(OrderDocument).Apply(body.ChildrenNamed(ElementSection))
	require.Len(t, got, 2)
	assert.Equal(t, "OVERWEGINGEN", got[0].Title)
	assert.Equal(t, "BESLISSING", got[1].Title)
}

func TestFilter_EmptySectionKeepsEmptyParagraphs(t *testing.T) {
	body := mustParse(t, `<uitspraak><section><title>Beslissing</title></section></uitspraak>`)

	got := NewFilter(OrderDocument).Apply(body.ChildrenNamed(ElementSection))
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Paragraphs)
	assert.Empty(t, got[0].Paragraphs)
}

func TestNewFilter_CustomTitles(t *testing.T) {
	f := NewFilter(OrderDocument, "procesverloop ")
	assert.True(t, f.Allows("PROCESVERLOOP"))
	assert.False(t, f.Allows(TitleConsiderations))

	def := NewFilter("bogus")
	assert.True(t, def.Allows(TitleConsiderations))
	assert.True(t, def.Allows(TitleDecision))
	assert.Equal(t, OrderDocument, def.order)
}
