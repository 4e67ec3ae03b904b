package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultInclude matches every XML document directly in the input directory.
var DefaultInclude = []string{"*.xml"}

// Source enumerates and reads eligible documents from an input directory.
type Source struct {
	// Dir is the input directory.
	Dir string

	// Extension is the required file extension, compared case-insensitively.
	// Empty accepts any extension.
	Extension string

	// Include lists doublestar patterns, relative to Dir, of eligible files.
	Include []string

	// Exclude lists doublestar patterns of files to leave out.
	Exclude []string

	// MaxSize is the largest accepted document in bytes; zero means unlimited.
	MaxSize int64
}

func (s *Source) includes() []string {
	if len(s.Include) == 0 {
		return DefaultInclude
	}
	return s.Include
}

// Discover returns the eligible documents as paths relative to Dir, in
// lexicographic order.
func (s *Source) Discover() ([]string, error) {
	if err := s.checkDir(); err != nil {
		return nil, err
	}

	fsys := os.DirFS(s.Dir)
	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range s.includes() {
		matches, err := doublestar.Glob(fsys, pattern,
			doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
		if err != nil {
			return nil, fmt.Errorf("%w: glob %q: %w", ErrInputDir, pattern, err)
		}
		for _, m := range matches {
			rel := filepath.FromSlash(m)
			if seen[rel] || !s.Eligible(rel) {
				continue
			}
			seen[rel] = true
			paths = append(paths, rel)
		}
	}

	sort.Strings(paths)
	return paths, nil
}

func (s *Source) checkDir() error {
	info, err := os.Stat(s.Dir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInputDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrInputDir, s.Dir)
	}
	return nil
}

// Eligible reports whether the relative path rel names a document to convert.
func (s *Source) Eligible(rel string) bool {
	if s.Extension != "" && !strings.EqualFold(filepath.Ext(rel), s.Extension) {
		return false
	}

	slashed := filepath.ToSlash(rel)
	included := false
	for _, pattern := range s.includes() {
		if ok, _ := doublestar.Match(pattern, slashed); ok {
			included = true
			break
		}
	}
	if !included {
		return false
	}

	for _, pattern := range s.Exclude {
		if ok, _ := doublestar.Match(pattern, slashed); ok {
			return false
		}
	}
	return true
}

// Rel converts a path under Dir into the relative form used by Discover.
func (s *Source) Rel(path string) (string, error) {
	return filepath.Rel(s.Dir, path)
}

// Read loads the document at the relative path rel.
func (s *Source) Read(rel string) (RawDocument, error) {
	path := filepath.Join(s.Dir, rel)
	info, err := os.Stat(path)
	if err != nil {
		return RawDocument{}, fmt.Errorf("stat %s: %w", rel, err)
	}
	if s.MaxSize > 0 && info.Size() > s.MaxSize {
		return RawDocument{}, fmt.Errorf("%w: %d bytes exceeds %d", ErrTooLarge, info.Size(), s.MaxSize)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return RawDocument{}, fmt.Errorf("read %s: %w", rel, err)
	}
	return NewRawDocument(rel, content), nil
}
