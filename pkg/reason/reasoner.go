// Package reason provides the classification capability consumed by the
// phyloreference resolution pipeline. Resolution depends only on the
// Reasoner interface; the structural reasoner in this package is the
// production adapter.
package reason

import (
	"errors"

	"github.com/coolbeans/phylor/pkg/ontology"
)

// ErrDisposed is returned when a reasoner is used after Dispose. Hitting
// it indicates a caller contract violation, not a recoverable condition:
// callers must treat it as fatal and never retry.
var ErrDisposed = errors.New("reasoner has been disposed")

// Reasoner answers classification queries over one ontology. A reasoner
// is a scoped resource: it is not safe for concurrent use, and every
// reasoner must be disposed exactly once when its owner is done with it.
type Reasoner interface {
	// SubClassesOf returns the IRIs of the named subclasses of the given
	// class. With direct=false the result includes indirect subclasses
	// through the full subsumption closure.
	SubClassesOf(classIRI string, direct bool) ([]string, error)

	// InstancesOf returns the identifiers of individuals classified as
	// instances of the given class. With direct=false the result includes
	// instances of all subclasses.
	InstancesOf(classIRI string, direct bool) ([]string, error)

	// Dispose releases the reasoner. Any use after Dispose, including a
	// second Dispose, returns ErrDisposed.
	Dispose() error
}

// Factory constructs a reasoner over an ontology. The caller owns the
// returned reasoner and is responsible for disposing it; when the factory
// returns an error, no reasoner was created and nothing needs disposal.
type Factory func(*ontology.Ontology) (Reasoner, error)
