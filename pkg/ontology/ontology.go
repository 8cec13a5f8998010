// Package ontology provides a read-only OWL view over an RDF triple store,
// plus readers for the RDF/XML and JSON-LD serializations that
// phyloreference ontologies are exchanged in.
package ontology

import (
	"errors"
	"sort"
	"strings"

	"github.com/coolbeans/phylor/pkg/store"
)

// ErrParse indicates that input could not be parsed as valid ontology
// content. Use errors.Is to detect it under wrapping.
var ErrParse = errors.New("cannot parse ontology")

// Ontology is a read-only view of a loaded OWL graph. All accessors return
// fresh slices; the underlying store is never mutated by this package's
// consumers.
type Ontology struct {
	store *store.TripleStore
}

// New wraps a triple store in an ontology view.
func New(ts *store.TripleStore) *Ontology {
	return &Ontology{store: ts}
}

// FromTriples builds an ontology from a list of triples.
func FromTriples(triples []store.Triple) *Ontology {
	ts := store.NewTripleStore()
	_ = ts.BulkAdd(triples)
	return New(ts)
}

// Store exposes the underlying triple store for query components.
func (o *Ontology) Store() *store.TripleStore {
	return o.store
}

// Count returns the number of triples in the ontology.
func (o *Ontology) Count() int {
	return o.store.Count()
}

// IsAnonymous reports whether an entity identifier names a blank node,
// i.e. an anonymous class expression or unnamed resource.
func IsAnonymous(id string) bool {
	return strings.HasPrefix(id, "_:")
}

// Classes returns the IRIs of all declared named classes, sorted.
// Anonymous class expressions are not included.
func (o *Ontology) Classes() []string {
	return o.namedSubjectsOfType(store.OWLClass)
}

// NamedIndividuals returns the IRIs of all declared named individuals, sorted.
func (o *Ontology) NamedIndividuals() []string {
	return o.namedSubjectsOfType(store.OWLNamedIndividual)
}

func (o *Ontology) namedSubjectsOfType(classIRI string) []string {
	subjects := o.store.Subjects(store.RDFType, store.IRI(classIRI))
	named := make([]string, 0, len(subjects))
	for _, s := range subjects {
		if !IsAnonymous(s) {
			named = append(named, s)
		}
	}
	return named
}

// Annotations returns the literal values of all annotation assertions on
// the entity using the given annotation property. Non-literal annotation
// values are omitted. Sorted by lexical form, then language tag.
func (o *Ontology) Annotations(entityIRI, propertyIRI string) []store.Term {
	var literals []store.Term
	for _, term := range o.store.Objects(entityIRI, propertyIRI) {
		if term.IsLiteral() {
			literals = append(literals, term)
		}
	}
	sort.Slice(literals, func(i, j int) bool {
		if literals[i].Value != literals[j].Value {
			return literals[i].Value < literals[j].Value
		}
		return literals[i].Lang < literals[j].Lang
	})
	return literals
}

// Types returns the asserted types of a resource as terms. A type is
// either an IRI term naming a class or a blank term for an anonymous
// class expression. Sorted by value.
func (o *Ontology) Types(subject string) []store.Term {
	var types []store.Term
	for _, term := range o.store.Objects(subject, store.RDFType) {
		if term.IsIRI() || term.IsBlank() {
			types = append(types, term)
		}
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i].Value < types[j].Value
	})
	return types
}

// HasType reports whether the resource has an asserted rdf:type of the
// given named class.
func (o *Ontology) HasType(subject, classIRI string) bool {
	return o.store.Exists(subject, store.RDFType, store.IRI(classIRI))
}
