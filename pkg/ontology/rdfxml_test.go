package ontology

import (
	"errors"
	"strings"
	"testing"

	"github.com/coolbeans/phylor/pkg/store"
)

const rdfXMLFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
    xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"
    xmlns:owl="http://www.w3.org/2002/07/owl#">

  <owl:Class rdf:about="http://example.org/jphyloref#Alphonse">
    <rdfs:subClassOf rdf:resource="http://ontology.phyloref.org/phyloref.owl#Phyloreference"/>
    <rdfs:label xml:lang="en">Alphonse</rdfs:label>
    <rdfs:label>Alphonse sans langue</rdfs:label>
  </owl:Class>

  <rdf:Description rdf:about="http://example.org/jphyloref#node0">
    <rdf:type rdf:resource="http://www.w3.org/2002/07/owl#NamedIndividual"/>
    <rdf:type rdf:resource="http://purl.obolibrary.org/obo/CDAO_0000140"/>
    <rdf:type>
      <owl:Restriction>
        <owl:onProperty rdf:resource="http://purl.obolibrary.org/obo/CDAO_0000149"/>
      </owl:Restriction>
    </rdf:type>
  </rdf:Description>

  <rdf:Description rdf:about="http://example.org/jphyloref#node1">
    <rdfs:comment rdf:datatype="http://www.w3.org/2001/XMLSchema#integer">7</rdfs:comment>
  </rdf:Description>
</rdf:RDF>`

func TestParseRDFXML(t *testing.T) {
	ont, err := ParseRDFXML(strings.NewReader(rdfXMLFixture))
	if err != nil {
		t.Fatalf("ParseRDFXML failed: %v", err)
	}

	// Typed node element asserts rdf:type from its element name.
	if !ont.HasType("http://example.org/jphyloref#Alphonse", store.OWLClass) {
		t.Error("Alphonse should be typed owl:Class from the element name")
	}

	// rdf:resource property element.
	if !ont.Store().Exists(
		"http://example.org/jphyloref#Alphonse",
		store.RDFSSubClassOf,
		store.IRI(store.PhylorefClass),
	) {
		t.Error("subClassOf assertion missing")
	}

	// Literal property elements with and without xml:lang.
	labels := ont.Annotations("http://example.org/jphyloref#Alphonse", store.RDFSLabel)
	if len(labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(labels))
	}
	var tagged, untagged bool
	for _, label := range labels {
		switch {
		case label.Value == "Alphonse" && label.Lang == "en":
			tagged = true
		case label.Value == "Alphonse sans langue" && label.Lang == "":
			untagged = true
		}
	}
	if !tagged || !untagged {
		t.Errorf("labels not parsed with language tags: %v", labels)
	}
}

func TestParseRDFXML_AnonymousType(t *testing.T) {
	ont, err := ParseRDFXML(strings.NewReader(rdfXMLFixture))
	if err != nil {
		t.Fatalf("ParseRDFXML failed: %v", err)
	}

	types := ont.Types("http://example.org/jphyloref#node0")
	if len(types) != 3 {
		t.Fatalf("node0 should have 3 types, got %d: %v", len(types), types)
	}

	var blank store.Term
	for _, typ := range types {
		if typ.IsBlank() {
			blank = typ
		}
	}
	if !blank.IsBlank() {
		t.Fatal("nested owl:Restriction should surface as an anonymous type")
	}

	// The anonymous expression carries its own assertions.
	if !ont.HasType(blank.Value, store.NamespaceOWL+"Restriction") {
		t.Error("anonymous node should be typed owl:Restriction")
	}
}

func TestParseRDFXML_TypedLiteral(t *testing.T) {
	ont, err := ParseRDFXML(strings.NewReader(rdfXMLFixture))
	if err != nil {
		t.Fatalf("ParseRDFXML failed: %v", err)
	}

	comments := ont.Store().Objects("http://example.org/jphyloref#node1", store.NamespaceRDFS+"comment")
	if len(comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(comments))
	}
	if comments[0].Value != "7" || comments[0].Datatype != store.NamespaceXSD+"integer" {
		t.Errorf("typed literal not preserved: %v", comments[0])
	}
}

func TestParseRDFXML_InheritedLanguage(t *testing.T) {
	doc := `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
    xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#" xml:lang="de">
  <rdf:Description rdf:about="http://example.org/jphyloref#phyloref0">
    <rdfs:label>Etikett auf Deutsch</rdfs:label>
  </rdf:Description>
</rdf:RDF>`

	ont, err := ParseRDFXML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseRDFXML failed: %v", err)
	}

	labels := ont.Annotations("http://example.org/jphyloref#phyloref0", store.RDFSLabel)
	if len(labels) != 1 || labels[0].Lang != "de" {
		t.Errorf("xml:lang should inherit from rdf:RDF: %v", labels)
	}
}

func TestParseRDFXML_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "empty input",
			input: "",
		},
		{
			name:  "not XML",
			input: "{ \"@graph\": [] }",
		},
		{
			name:  "wrong root element",
			input: `<html xmlns="http://www.w3.org/1999/xhtml"></html>`,
		},
		{
			name: "truncated document",
			input: `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
  <rdf:Description rdf:about="http://example.org/x">`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRDFXML(strings.NewReader(tc.input))
			if err == nil {
				t.Fatal("expected a parse error")
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("error should wrap ErrParse: %v", err)
			}
		})
	}
}
