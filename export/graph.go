package export

import (
	"github.com/c360studio/rulingpipe/metadata"
	vocab "github.com/c360studio/rulingpipe/vocabulary/rechtspraak"
)

// Object is the object of a statement: an IRI or a Literal.
type Object interface {
	object()
}

// IRI refers to a resource.
type IRI string

// Literal is a string value, optionally typed.
type Literal struct {
	Value    string
	Datatype string
}

func (IRI) object()     {}
func (Literal) object() {}

// Statement is one predicate-object pair. Predicate is a full IRI.
type Statement struct {
	Predicate string
	Object    Object
}

// Resource is a subject with its classes and statements.
type Resource struct {
	IRI        string
	Types      []string
	Statements []Statement
}

// RecordResources maps a record to the ruling resource followed by one
// resource per labelled IRI it references, each listed once.
func RecordResources(rec *metadata.Record) []Resource {
	ruling := Resource{IRI: rec.ID, Types: rec.Types}
	var linked []Resource
	seen := make(map[string]bool)

	literal := func(term, value string) {
		if value == "" {
			return
		}
		lit := Literal{Value: value}
		if vocab.IsDateTerm(term) {
			lit.Datatype = vocab.XSD + "date"
		}
		ruling.Statements = append(ruling.Statements, Statement{Predicate: vocab.PredicateIRI(term), Object: lit})
	}
	resource := func(term string, r metadata.Resource) {
		if r.ID == "" {
			literal(term, r.Label)
			return
		}
		ruling.Statements = append(ruling.Statements, Statement{Predicate: vocab.PredicateIRI(term), Object: IRI(r.ID)})
		if r.Label != "" && !seen[r.ID] {
			seen[r.ID] = true
			linked = append(linked, Resource{
				IRI:        r.ID,
				Statements: []Statement{{Predicate: vocab.PredicateIRI(vocab.TermLabel), Object: Literal{Value: r.Label}}},
			})
		}
	}

	literal(vocab.TermIdentifier, rec.Identifier)
	literal(vocab.TermTitle, rec.Title)
	literal(vocab.TermAbstract, rec.Abstract)
	literal(vocab.TermDate, rec.Date)
	literal(vocab.TermIssued, rec.Issued)
	literal(vocab.TermModified, rec.Modified)
	literal(vocab.TermLanguage, rec.Language)
	if rec.Creator != nil {
		resource(vocab.TermCreator, *rec.Creator)
	}
	if rec.Publisher != nil {
		resource(vocab.TermPublisher, *rec.Publisher)
	}
	if rec.Kind != nil {
		resource(vocab.TermType, *rec.Kind)
	}
	for _, r := range rec.Procedure {
		resource(vocab.TermProcedure, r)
	}
	for _, r := range rec.Subject {
		resource(vocab.TermSubject, r)
	}
	for _, n := range rec.CaseNumber {
		literal(vocab.TermCaseNumber, n)
	}
	literal(vocab.TermSpatial, rec.Spatial)
	for _, r := range rec.Relation {
		resource(vocab.TermRelation, r)
	}
	for _, r := range rec.References {
		resource(vocab.TermReferences, r)
	}

	return append([]Resource{ruling}, linked...)
}

// groupStatements returns the distinct predicates of r in first-use order
// with their objects.
func groupStatements(r Resource) ([]string, map[string][]Object) {
	var order []string
	objects := make(map[string][]Object)
	for _, st := range r.Statements {
		if _, ok := objects[st.Predicate]; !ok {
			order = append(order, st.Predicate)
		}
		objects[st.Predicate] = append(objects[st.Predicate], st.Object)
	}
	return order, objects
}
