package store

import "fmt"

// TermKind distinguishes the three kinds of RDF terms that can appear in
// the object position of a triple.
type TermKind int

const (
	// IRITerm is a named resource identified by an absolute IRI.
	IRITerm TermKind = iota

	// BlankTerm is an anonymous resource with a document-scoped label.
	BlankTerm

	// LiteralTerm is a literal value with an optional language tag or
	// datatype IRI.
	LiteralTerm
)

// Term represents an RDF term. In the phylogeny domain:
//   - IRI terms name classes and individuals (phyloreferences, tree nodes)
//   - blank terms carry anonymous class expressions produced by OWL axioms
//   - literal terms carry annotation values such as rdfs:label strings
type Term struct {
	Kind     TermKind
	Value    string // IRI string, blank node label (with "_:" prefix), or lexical form
	Lang     string // language tag for literals; "" means untagged
	Datatype string // datatype IRI for typed literals; "" for plain literals
}

// IRI creates an IRI term.
func IRI(iri string) Term {
	return Term{Kind: IRITerm, Value: iri}
}

// Blank creates a blank node term. The label should carry the "_:" prefix
// so it matches blank node identifiers used in the subject position.
func Blank(label string) Term {
	return Term{Kind: BlankTerm, Value: label}
}

// Literal creates a literal term with an optional language tag.
func Literal(text, lang string) Term {
	return Term{Kind: LiteralTerm, Value: text, Lang: lang}
}

// TypedLiteral creates a literal term with a datatype IRI.
func TypedLiteral(text, datatype string) Term {
	return Term{Kind: LiteralTerm, Value: text, Datatype: datatype}
}

// IsIRI returns true if the term is a named resource.
func (t Term) IsIRI() bool {
	return t.Kind == IRITerm
}

// IsBlank returns true if the term is an anonymous resource.
func (t Term) IsBlank() bool {
	return t.Kind == BlankTerm
}

// IsLiteral returns true if the term is a literal value.
func (t Term) IsLiteral() bool {
	return t.Kind == LiteralTerm
}

// Equals checks if two terms are identical in kind and all components.
func (t Term) Equals(other Term) bool {
	return t.Kind == other.Kind &&
		t.Value == other.Value &&
		t.Lang == other.Lang &&
		t.Datatype == other.Datatype
}

// IsZero returns true for the zero term, which Find treats as a wildcard.
func (t Term) IsZero() bool {
	return t.Value == "" && t.Lang == "" && t.Datatype == ""
}

// String returns an N-Triples-style representation of the term.
func (t Term) String() string {
	switch t.Kind {
	case BlankTerm:
		return t.Value
	case LiteralTerm:
		if t.Lang != "" {
			return fmt.Sprintf("%q@%s", t.Value, t.Lang)
		}
		if t.Datatype != "" {
			return fmt.Sprintf("%q^^<%s>", t.Value, t.Datatype)
		}
		return fmt.Sprintf("%q", t.Value)
	default:
		return fmt.Sprintf("<%s>", t.Value)
	}
}

// key returns a canonical encoding of the term used as an index key.
// Distinct terms always produce distinct keys.
func (t Term) key() string {
	switch t.Kind {
	case BlankTerm:
		return "b|" + t.Value
	case LiteralTerm:
		return "l|" + t.Lang + "|" + t.Datatype + "|" + t.Value
	default:
		return "i|" + t.Value
	}
}
