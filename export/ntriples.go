package export

import (
	"bufio"
	"fmt"
	"io"

	vocab "github.com/c360studio/rulingpipe/vocabulary/rechtspraak"
)

const rdfType = vocab.RDF + "type"

func ntriplesObject(obj Object) string {
	switch v := obj.(type) {
	case IRI:
		return "<" + string(v) + ">"
	case Literal:
		if v.Datatype != "" {
			return `"` + escapeString(v.Value) + `"^^<` + v.Datatype + ">"
		}
		return `"` + escapeString(v.Value) + `"`
	default:
		return ""
	}
}

// writeNTriples writes one line per type and statement, all IRIs absolute.
func writeNTriples(w io.Writer, resources []Resource) error {
	bw := bufio.NewWriter(w)
	for _, r := range resources {
		for _, t := range r.Types {
			fmt.Fprintf(bw, "<%s> <%s> <%s> .\n", r.IRI, rdfType, t)
		}
		for _, st := range r.Statements {
			fmt.Fprintf(bw, "<%s> <%s> %s .\n", r.IRI, st.Predicate, ntriplesObject(st.Object))
		}
	}
	return bw.Flush()
}
