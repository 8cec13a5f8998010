// Package label selects human-readable names for ontology entities from
// their rdfs:label annotations.
package label

import (
	"sort"

	"github.com/coolbeans/phylor/pkg/ontology"
	"github.com/coolbeans/phylor/pkg/store"
)

// Select returns the rdfs:label values on an entity whose language tag
// equals the requested tag exactly. Matching is byte equality: "en" never
// matches "en-US", and an untagged label is returned only when the
// requested tag is itself empty. An entity with no matching labels yields
// an empty slice, never an error. The result is sorted and deduplicated.
func Select(ont *ontology.Ontology, entityIRI, languageTag string) []string {
	seen := make(map[string]bool)
	labels := []string{}

	for _, literal := range ont.Annotations(entityIRI, store.RDFSLabel) {
		if literal.Lang != languageTag {
			continue
		}
		if seen[literal.Value] {
			continue
		}
		seen[literal.Value] = true
		labels = append(labels, literal.Value)
	}

	sort.Strings(labels)
	return labels
}

// SelectEnglish returns the entity's labels tagged "en".
func SelectEnglish(ont *ontology.Ontology, entityIRI string) []string {
	return Select(ont, entityIRI, "en")
}
