package ontology

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/coolbeans/phylor/pkg/store"
)

// LoadOptions controls how ontology input is interpreted.
type LoadOptions struct {
	// JSONLD forces JSON-LD parsing regardless of the input filename.
	JSONLD bool

	// Base is the base IRI that relative identifiers in JSON-LD input are
	// resolved against.
	Base string
}

// LoadOption configures Load.
type LoadOption func(*LoadOptions)

// WithJSONLD forces the input to be treated as JSON-LD.
func WithJSONLD() LoadOption {
	return func(o *LoadOptions) {
		o.JSONLD = true
	}
}

// WithBase sets the base IRI for JSON-LD input.
func WithBase(base string) LoadOption {
	return func(o *LoadOptions) {
		o.Base = base
	}
}

// IsJSONLDFilename reports whether a filename indicates JSON-LD content
// by its extension (".json" or ".jsonld", case-insensitive).
func IsJSONLDFilename(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".json") || strings.HasSuffix(lower, ".jsonld")
}

// Load reads an ontology from a file path. The path "-" means standard
// input. Files named *.json or *.jsonld (or any input with the JSONLD
// option) are parsed as JSON-LD; everything else is parsed as RDF/XML.
//
// An unopenable path surfaces the wrapped os error (detectable via
// errors.Is(err, fs.ErrNotExist)); malformed content surfaces ErrParse.
func Load(path string, opts ...LoadOption) (*Ontology, error) {
	if path == "-" {
		return LoadReader(os.Stdin, "-", opts...)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input %q: %w", path, err)
	}
	defer file.Close()

	return LoadReader(file, path, opts...)
}

// LoadReader reads an ontology from a stream. The name is used for format
// detection by extension and for error messages.
func LoadReader(r io.Reader, name string, opts ...LoadOption) (*Ontology, error) {
	options := LoadOptions{Base: store.DefaultURIPrefix}
	for _, opt := range opts {
		opt(&options)
	}

	var ont *Ontology
	var err error
	if options.JSONLD || IsJSONLDFilename(name) {
		ont, err = ParseJSONLD(r, options.Base)
	} else {
		ont, err = ParseRDFXML(r)
	}
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", name, err)
	}
	return ont, nil
}
