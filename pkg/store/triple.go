package store

import "fmt"

// Triple represents an RDF Subject-Predicate-Object triple.
// In the phylogeny domain:
//   - Subject: a class or individual IRI (e.g., a phyloreference or a tree
//     node), or a blank node label for anonymous class expressions
//   - Predicate: a relationship IRI (e.g., rdf:type, rdfs:subClassOf)
//   - Object: another resource or a literal value
type Triple struct {
	Subject   string
	Predicate string
	Object    Term
}

// NewTriple creates a new triple with the given components.
func NewTriple(subject, predicate string, object Term) Triple {
	return Triple{
		Subject:   subject,
		Predicate: predicate,
		Object:    object,
	}
}

// Equals checks if two triples have identical components.
func (t Triple) Equals(other Triple) bool {
	return t.Subject == other.Subject &&
		t.Predicate == other.Predicate &&
		t.Object.Equals(other.Object)
}

// String returns a human-readable representation of the triple.
func (t Triple) String() string {
	return fmt.Sprintf("<%s> <%s> %s", t.Subject, t.Predicate, t.Object)
}

// NTriples returns the triple in N-Triples format.
func (t Triple) NTriples() string {
	return fmt.Sprintf("<%s> <%s> %s .", t.Subject, t.Predicate, t.Object)
}

// IsValid returns true if all components are non-empty.
func (t Triple) IsValid() bool {
	return t.Subject != "" && t.Predicate != "" && t.Object.Value != ""
}
