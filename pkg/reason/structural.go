package reason

import (
	"fmt"
	"sort"

	"github.com/coolbeans/phylor/pkg/ontology"
	"github.com/coolbeans/phylor/pkg/store"
)

// Structural is a reasoner over asserted axioms: it classifies by taking
// the transitive closure of rdfs:subClassOf, merging owl:equivalentClass
// pairs symmetrically, and retrieving instances through asserted rdf:type
// plus that closure. It does not evaluate anonymous class expressions, so
// it is exact for pre-reasoned ontologies, where inferred types and
// subclass edges have already been asserted.
type Structural struct {
	ont      *ontology.Ontology
	disposed bool

	// directSubs maps a class IRI to its directly asserted named
	// subclasses (including equivalence edges in both directions).
	directSubs map[string][]string
}

// NewStructural builds a structural reasoner and classifies the ontology.
func NewStructural(ont *ontology.Ontology) (*Structural, error) {
	if ont == nil {
		return nil, fmt.Errorf("structural reasoner requires an ontology")
	}

	r := &Structural{
		ont:        ont,
		directSubs: make(map[string][]string),
	}
	r.classify()
	return r, nil
}

// StructuralFactory adapts NewStructural to the Factory signature.
func StructuralFactory(ont *ontology.Ontology) (Reasoner, error) {
	return NewStructural(ont)
}

// classify indexes the asserted subsumption edges. Blank nodes are
// skipped on both sides: anonymous class expressions cannot be
// structurally evaluated.
func (r *Structural) classify() {
	seen := make(map[string]map[string]bool)

	addEdge := func(super, sub string) {
		if ontology.IsAnonymous(super) || ontology.IsAnonymous(sub) || super == sub {
			return
		}
		if seen[super] == nil {
			seen[super] = make(map[string]bool)
		}
		if seen[super][sub] {
			return
		}
		seen[super][sub] = true
		r.directSubs[super] = append(r.directSubs[super], sub)
	}

	for _, triple := range r.ont.Store().Find("", store.RDFSSubClassOf, store.Term{}) {
		if triple.Object.IsIRI() {
			addEdge(triple.Object.Value, triple.Subject)
		}
	}

	// Equivalent classes subsume each other.
	for _, triple := range r.ont.Store().Find("", store.OWLEquivalentClass, store.Term{}) {
		if triple.Object.IsIRI() {
			addEdge(triple.Object.Value, triple.Subject)
			addEdge(triple.Subject, triple.Object.Value)
		}
	}

	for super := range r.directSubs {
		sort.Strings(r.directSubs[super])
	}
}

// SubClassesOf returns the named subclasses of a class, excluding the
// class itself.
func (r *Structural) SubClassesOf(classIRI string, direct bool) ([]string, error) {
	if r.disposed {
		return nil, fmt.Errorf("subclasses of %s: %w", classIRI, ErrDisposed)
	}

	if direct {
		return append([]string{}, r.directSubs[classIRI]...), nil
	}

	closure := r.descendants(classIRI)
	delete(closure, classIRI)

	result := make([]string, 0, len(closure))
	for sub := range closure {
		result = append(result, sub)
	}
	sort.Strings(result)
	return result, nil
}

// InstancesOf returns the individuals classified under a class. With
// direct=false, instances of every class in the subsumption closure are
// included.
func (r *Structural) InstancesOf(classIRI string, direct bool) ([]string, error) {
	if r.disposed {
		return nil, fmt.Errorf("instances of %s: %w", classIRI, ErrDisposed)
	}

	classes := map[string]bool{classIRI: true}
	if !direct {
		classes = r.descendants(classIRI)
	}

	instances := make(map[string]bool)
	for class := range classes {
		for _, subject := range r.ont.Store().Subjects(store.RDFType, store.IRI(class)) {
			instances[subject] = true
		}
	}

	result := make([]string, 0, len(instances))
	for instance := range instances {
		result = append(result, instance)
	}
	sort.Strings(result)
	return result, nil
}

// Dispose releases the reasoner. A second Dispose returns ErrDisposed.
func (r *Structural) Dispose() error {
	if r.disposed {
		return ErrDisposed
	}
	r.disposed = true
	r.ont = nil
	r.directSubs = nil
	return nil
}

// descendants returns the subsumption closure of a class, including the
// class itself.
func (r *Structural) descendants(classIRI string) map[string]bool {
	closure := map[string]bool{classIRI: true}
	queue := []string{classIRI}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, sub := range r.directSubs[current] {
			if !closure[sub] {
				closure[sub] = true
				queue = append(queue, sub)
			}
		}
	}

	return closure
}
