package resolve

import (
	"fmt"

	"github.com/coolbeans/phylor/pkg/ontology"
	"github.com/coolbeans/phylor/pkg/reason"
	"github.com/coolbeans/phylor/pkg/store"
)

// Report maps each phyloreference identifier to the sorted identifiers of
// the phylogeny nodes it resolved to. Both sides carry the configured
// namespace prefix stripped. Node lists may be empty but are never nil,
// and every phyloreference found at build time has an entry.
type Report map[string][]string

// Option configures a report build.
type Option func(*buildConfig)

type buildConfig struct {
	prefix string
}

// WithPrefix overrides the namespace prefix stripped from identifiers in
// the report. The default is store.DefaultURIPrefix.
func WithPrefix(prefix string) Option {
	return func(c *buildConfig) {
		c.prefix = prefix
	}
}

// BuildReport resolves every phyloreference in the ontology against its
// phylogeny.
//
// The builder owns the reasoner it creates: once the factory succeeds,
// the reasoner is disposed exactly once on every exit path. When the
// factory fails, no disposal is attempted and the failure is returned
// as-is.
func BuildReport(ont *ontology.Ontology, factory reason.Factory, opts ...Option) (report Report, err error) {
	config := buildConfig{prefix: store.DefaultURIPrefix}
	for _, opt := range opts {
		opt(&config)
	}

	reasoner, err := factory(ont)
	if err != nil {
		return nil, fmt.Errorf("create reasoner: %w", err)
	}
	defer func() {
		if disposeErr := reasoner.Dispose(); disposeErr != nil && err == nil {
			report = nil
			err = fmt.Errorf("dispose reasoner: %w", disposeErr)
		}
	}()

	phylorefs, err := ListPhyloreferences(ont, reasoner)
	if err != nil {
		return nil, err
	}

	report = make(Report, len(phylorefs))
	for _, phyloref := range phylorefs {
		nodes, err := MatchedNodes(ont, reasoner, phyloref, config.prefix)
		if err != nil {
			return nil, err
		}
		report[stripPrefix(phyloref, config.prefix)] = nodes
	}

	return report, nil
}
