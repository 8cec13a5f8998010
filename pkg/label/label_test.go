package label

import (
	"reflect"
	"testing"

	"github.com/coolbeans/phylor/pkg/ontology"
	"github.com/coolbeans/phylor/pkg/store"
)

const phyloref1 = "http://example.org/phyloref1"

// labeledOntology carries one entity with an untagged label and labels in
// English, German and Hindi.
func labeledOntology() *ontology.Ontology {
	return ontology.FromTriples([]store.Triple{
		store.NewTriple(phyloref1, store.RDFSLabel, store.Literal("Label without a language", "")),
		store.NewTriple(phyloref1, store.RDFSLabel, store.Literal("Label in English", "en")),
		store.NewTriple(phyloref1, store.RDFSLabel, store.Literal("Etikett auf Englisch", "de")),
		store.NewTriple(phyloref1, store.RDFSLabel, store.Literal("अंग्रेजी में लेबल", "hi")),
	})
}

func TestSelect(t *testing.T) {
	ont := labeledOntology()

	tests := []struct {
		name     string
		language string
		expected []string
	}{
		{
			name:     "English label",
			language: "en",
			expected: []string{"Label in English"},
		},
		{
			name:     "German label",
			language: "de",
			expected: []string{"Etikett auf Englisch"},
		},
		{
			name:     "untagged label only for empty request",
			language: "",
			expected: []string{"Label without a language"},
		},
		{
			name:     "region subtag does not match the bare tag",
			language: "en-US",
			expected: []string{},
		},
		{
			name:     "no label in requested language",
			language: "fr",
			expected: []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			labels := Select(ont, phyloref1, tc.language)
			if !reflect.DeepEqual(labels, tc.expected) {
				t.Errorf("Select(%q) = %v, want %v", tc.language, labels, tc.expected)
			}
		})
	}
}

func TestSelect_UnknownEntity(t *testing.T) {
	ont := labeledOntology()

	labels := Select(ont, "http://example.org/unknown", "en")
	if len(labels) != 0 {
		t.Errorf("unknown entity should yield no labels: %v", labels)
	}
	if labels == nil {
		t.Error("result should be an empty slice, not nil")
	}
}

func TestSelect_ExactTagDoesNotMatchUntagged(t *testing.T) {
	ont := ontology.FromTriples([]store.Triple{
		store.NewTriple(phyloref1, store.RDFSLabel, store.Literal("Label without a language", "")),
	})

	if labels := Select(ont, phyloref1, "en"); len(labels) != 0 {
		t.Errorf("untagged label must not satisfy a tagged request: %v", labels)
	}
}

func TestSelect_Deduplicates(t *testing.T) {
	// The same text under distinct properties would be distinct triples,
	// but identical label literals collapse to one entry.
	ts := store.NewTripleStore()
	_ = ts.Add(phyloref1, store.RDFSLabel, store.Literal("Alphonse", "en"))
	_ = ts.Add(phyloref1, store.RDFSLabel, store.Literal("Alphonse", "en"))
	ont := ontology.New(ts)

	labels := Select(ont, phyloref1, "en")
	if !reflect.DeepEqual(labels, []string{"Alphonse"}) {
		t.Errorf("Select = %v, want [Alphonse]", labels)
	}
}

func TestSelectEnglish(t *testing.T) {
	ont := labeledOntology()

	labels := SelectEnglish(ont, phyloref1)
	if !reflect.DeepEqual(labels, []string{"Label in English"}) {
		t.Errorf("SelectEnglish = %v, want [Label in English]", labels)
	}
}
