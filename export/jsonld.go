package export

import (
	"encoding/json"
	"io"

	vocab "github.com/c360studio/rulingpipe/vocabulary/rechtspraak"
)

type jsonldDocument struct {
	Context map[string]any   `json:"@context"`
	Graph   []map[string]any `json:"@graph"`
}

// jsonldNode compacts r against the record context. Known predicates use
// their term and set terms are always arrays.
func jsonldNode(r Resource) map[string]any {
	node := map[string]any{"@id": r.IRI}
	if len(r.Types) > 0 {
		types := make([]string, len(r.Types))
		for i, t := range r.Types {
			types[i] = t
			if curie, ok := compactIRI(t); ok {
				types[i] = curie
			}
		}
		node["@type"] = types
	}

	order, objects := groupStatements(r)
	for _, pred := range order {
		term, known := vocab.TermFor(pred)
		key := pred
		if known {
			key = term
		}

		values := make([]any, len(objects[pred]))
		for i, obj := range objects[pred] {
			values[i] = jsonldValue(obj)
		}
		if len(values) == 1 && !(known && vocab.IsSetTerm(term)) {
			node[key] = values[0]
		} else {
			node[key] = values
		}
	}
	return node
}

// jsonldValue drops literal datatypes: only date terms carry one and the
// context coerces those.
func jsonldValue(obj Object) any {
	switch v := obj.(type) {
	case IRI:
		return map[string]string{"@id": string(v)}
	case Literal:
		return v.Value
	default:
		return nil
	}
}

// writeJSONLD writes the resources as a compacted @graph document.
func writeJSONLD(w io.Writer, resources []Resource) error {
	doc := jsonldDocument{
		Context: vocab.Context(),
		Graph:   make([]map[string]any, 0, len(resources)),
	}
	for _, r := range resources {
		doc.Graph = append(doc.Graph, jsonldNode(r))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}
