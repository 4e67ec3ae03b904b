package export

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	vocab "github.com/c360studio/rulingpipe/vocabulary/rechtspraak"
)

var localName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// compactIRI returns prefix:local for iri when one of the vocabulary
// namespaces covers it with a plain local name.
func compactIRI(iri string) (string, bool) {
	var prefix, ns string
	for p, candidate := range vocab.Prefixes() {
		if len(candidate) > len(ns) && strings.HasPrefix(iri, candidate) && localName.MatchString(iri[len(candidate):]) {
			prefix, ns = p, candidate
		}
	}
	if ns == "" {
		return "", false
	}
	return prefix + ":" + iri[len(ns):], true
}

func turtleIRI(iri string) string {
	if curie, ok := compactIRI(iri); ok {
		return curie
	}
	return "<" + iri + ">"
}

func turtleObject(obj Object) string {
	switch v := obj.(type) {
	case IRI:
		return turtleIRI(string(v))
	case Literal:
		if v.Datatype != "" {
			return `"` + escapeString(v.Value) + `"^^` + turtleIRI(v.Datatype)
		}
		return `"` + escapeString(v.Value) + `"`
	default:
		return ""
	}
}

// writeTurtle writes the prefixes followed by one block per resource.
// Repeated predicates share a line with their objects separated by commas.
func writeTurtle(w io.Writer, resources []Resource) error {
	bw := bufio.NewWriter(w)

	prefixes := vocab.Prefixes()
	names := make([]string, 0, len(prefixes))
	for name := range prefixes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(bw, "@prefix %s: <%s> .\n", name, prefixes[name])
	}

	for _, r := range resources {
		var lines []string
		if len(r.Types) > 0 {
			types := make([]string, len(r.Types))
			for i, t := range r.Types {
				types[i] = turtleIRI(t)
			}
			lines = append(lines, "a "+strings.Join(types, ", "))
		}
		order, objects := groupStatements(r)
		for _, pred := range order {
			objs := make([]string, len(objects[pred]))
			for i, obj := range objects[pred] {
				objs[i] = turtleObject(obj)
			}
			lines = append(lines, turtleIRI(pred)+" "+strings.Join(objs, ", "))
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(bw, "\n%s\n    %s .\n", turtleIRI(r.IRI), strings.Join(lines, " ;\n    "))
	}

	return bw.Flush()
}

// escapeString escapes a literal for Turtle and N-Triples.
func escapeString(s string) string {
	return literalEscaper.Replace(s)
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)
