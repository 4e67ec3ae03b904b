package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_Discover(t *testing.T) {
	dir := t.TempDir()
	for _, rel := range []string{"b.xml", "a.xml", "C.XML", "notes.txt", filepath.Join("sub", "d.xml"), "draft-e.xml"} {
		writeInput(t, dir, rel, "<x/>")
	}

	tests := []struct {
		name   string
		source Source
		want   []string
	}{
		{
			name:   "default include is top level only",
			source: Source{Extension: ".xml"},
			want:   []string{"a.xml", "b.xml", "draft-e.xml"},
		},
		{
			name:   "recursive include",
			source: Source{Extension: ".xml", Include: []string{"**/*.xml"}},
			want:   []string{"a.xml", "b.xml", "draft-e.xml", filepath.Join("sub", "d.xml")},
		},
		{
			name:   "exclude",
			source: Source{Extension: ".xml", Include: []string{"**/*.xml"}, Exclude: []string{"draft-*", "sub/**"}},
			want:   []string{"a.xml", "b.xml"},
		},
		{
			name:   "case-insensitive extension",
			source: Source{Extension: ".xml", Include: []string{"*"}},
			want:   []string{"C.XML", "a.xml", "b.xml", "draft-e.xml"},
		},
		{
			name:   "overlapping includes are deduplicated",
			source: Source{Extension: ".xml", Include: []string{"*.xml", "a.*"}},
			want:   []string{"a.xml", "b.xml", "draft-e.xml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := tt.source
			src.Dir = dir
			got, err := src.Discover()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSource_Discover_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "file.xml", "<x/>")

	src := Source{Dir: filepath.Join(dir, "file.xml")}
	_, err := src.Discover()
	assert.ErrorIs(t, err, ErrInputDir)
}

func TestSource_Eligible(t *testing.T) {
	src := Source{Extension: ".xml", Include: []string{"**/*.xml"}, Exclude: []string{"tmp/**"}}

	assert.True(t, src.Eligible("a.xml"))
	assert.True(t, src.Eligible(filepath.Join("2021", "a.xml")))
	assert.False(t, src.Eligible("a.json"))
	assert.False(t, src.Eligible(filepath.Join("tmp", "a.xml")))
}

func TestSource_Read(t *testing.T) {
	dir := t.TempDir()
	writeInput(t, dir, "ECLI_NL_HR_2020_1.xml", "<open-rechtspraak/>")

	src := Source{Dir: dir}
	doc, err := src.Read("ECLI_NL_HR_2020_1.xml")
	require.NoError(t, err)
	assert.Equal(t, "ECLI_NL_HR_2020_1", doc.ID)
	assert.Equal(t, "<open-rechtspraak/>", string(doc.Content))

	src.MaxSize = 4
	_, err = src.Read("ECLI_NL_HR_2020_1.xml")
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = src.Read("missing.xml")
	assert.Error(t, err)
}
