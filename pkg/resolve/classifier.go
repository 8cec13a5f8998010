// Package resolve computes which phylogeny nodes satisfy which
// phyloreference clade definitions in a classified ontology.
package resolve

import (
	"fmt"
	"sort"
	"strings"

	"github.com/coolbeans/phylor/pkg/ontology"
	"github.com/coolbeans/phylor/pkg/reason"
	"github.com/coolbeans/phylor/pkg/store"
)

// ListPhyloreferences returns the IRIs of all phyloreference classes in
// the ontology: the named subclasses of the phyloreference marker class
// under classification, excluding owl:Nothing and the marker itself.
//
// With a nil reasoner, the asserted fallback is used instead: classes
// directly typed as the marker class.
func ListPhyloreferences(ont *ontology.Ontology, r reason.Reasoner) ([]string, error) {
	if r == nil {
		var phylorefs []string
		for _, subject := range ont.Store().Subjects(store.RDFType, store.IRI(store.PhylorefClass)) {
			if !ontology.IsAnonymous(subject) {
				phylorefs = append(phylorefs, subject)
			}
		}
		sort.Strings(phylorefs)
		return phylorefs, nil
	}

	subclasses, err := r.SubClassesOf(store.PhylorefClass, false)
	if err != nil {
		return nil, fmt.Errorf("list phyloreferences: %w", err)
	}

	phylorefs := make([]string, 0, len(subclasses))
	for _, class := range subclasses {
		if class == store.OWLNothing || class == store.PhylorefClass || ontology.IsAnonymous(class) {
			continue
		}
		phylorefs = append(phylorefs, class)
	}
	sort.Strings(phylorefs)
	return phylorefs, nil
}

// MatchedNodes returns the prefix-stripped identifiers of the phylogeny
// nodes matched by one phyloreference class.
//
// The reasoner's instance retrieval includes every individual classified
// under the class, which can include the phyloreference itself through
// punning. Individuals are therefore filtered to phylogeny nodes: an
// individual is kept iff at least one of its asserted types is either an
// anonymous class expression or exactly the CDAO node class. Anonymous
// type expressions cannot be evaluated against the node type, so such
// individuals are conservatively kept; this inclusive bias avoids false
// negatives from incomplete type assertions at the cost of possible
// over-inclusion.
func MatchedNodes(ont *ontology.Ontology, r reason.Reasoner, phylorefIRI, defaultPrefix string) ([]string, error) {
	instances, err := r.InstancesOf(phylorefIRI, false)
	if err != nil {
		return nil, fmt.Errorf("matched nodes of %s: %w", phylorefIRI, err)
	}

	seen := make(map[string]bool)
	nodes := []string{}
	for _, individual := range instances {
		if !isPhylogenyNode(ont, individual) {
			continue
		}
		node := stripPrefix(individual, defaultPrefix)
		if seen[node] {
			continue
		}
		seen[node] = true
		nodes = append(nodes, node)
	}

	sort.Strings(nodes)
	return nodes, nil
}

// isPhylogenyNode applies the node type filter to one individual.
func isPhylogenyNode(ont *ontology.Ontology, individual string) bool {
	for _, typ := range ont.Types(individual) {
		if typ.IsBlank() {
			return true // unevaluable anonymous expression: keep
		}
		if typ.IsIRI() && typ.Value == store.CDAONode {
			return true
		}
	}
	return false
}

// stripPrefix removes the configured namespace prefix from the front of
// an identifier. This is a literal prefix match, not URI-aware relative
// resolution; identifiers under other namespaces pass through unchanged.
func stripPrefix(iri, prefix string) string {
	if prefix == "" {
		return iri
	}
	return strings.TrimPrefix(iri, prefix)
}
