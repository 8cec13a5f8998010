package ontology

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/coolbeans/phylor/pkg/store"
)

// jsonldContext holds the active @context mappings for a document.
type jsonldContext struct {
	mappings map[string]string // term or prefix -> IRI (possibly compact)
	idTerms  map[string]bool   // terms whose values are coerced to @id
	base     string
	vocab    string
	language string
}

// jsonldParser reads a subset of JSON-LD sufficient for phyloreference
// exchange files:
//
//   - inline @context with prefix, term and type-coercion ("@type": "@id")
//     mappings, plus @base, @vocab and @language
//   - @graph, @id, @type, @value/@language/@type, @list, nested node
//     objects and value arrays
//   - compact IRI expansion and relative IRI resolution against a base IRI
//
// Remote contexts are not fetched; a document referencing one fails to
// parse. List order is not preserved: members are asserted as individual
// triples, which is sufficient for class and type assertions.
type jsonldParser struct {
	store    *store.TripleStore
	ctx      *jsonldContext
	blankSeq int
}

var absoluteIRIPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*:`)

// ParseJSONLD reads a JSON-LD document into an ontology. Relative IRIs
// are resolved against the given base IRI.
func ParseJSONLD(r io.Reader, base string) (*Ontology, error) {
	var document interface{}
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&document); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	parser := &jsonldParser{
		store: store.NewTripleStore(),
		ctx: &jsonldContext{
			mappings: make(map[string]string),
			idTerms:  make(map[string]bool),
			base:     base,
		},
	}

	switch doc := document.(type) {
	case map[string]interface{}:
		if rawContext, ok := doc["@context"]; ok {
			if err := parser.parseContext(rawContext); err != nil {
				return nil, err
			}
		}
		if rawGraph, ok := doc["@graph"]; ok {
			if err := parser.processValue(rawGraph); err != nil {
				return nil, err
			}
		} else {
			if _, err := parser.processNode(doc); err != nil {
				return nil, err
			}
		}
	case []interface{}:
		for _, element := range doc {
			if err := parser.processValue(element); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("%w: top-level JSON-LD value must be an object or array", ErrParse)
	}

	return New(parser.store), nil
}

// parseContext folds one or more context definitions into the active context.
func (p *jsonldParser) parseContext(raw interface{}) error {
	switch ctx := raw.(type) {
	case []interface{}:
		for _, element := range ctx {
			if err := p.parseContext(element); err != nil {
				return err
			}
		}
		return nil
	case string:
		return fmt.Errorf("%w: remote @context %q is not supported", ErrParse, ctx)
	case map[string]interface{}:
		for key, value := range ctx {
			switch key {
			case "@base":
				if s, ok := value.(string); ok {
					p.ctx.base = s
				}
			case "@vocab":
				if s, ok := value.(string); ok {
					p.ctx.vocab = s
				}
			case "@language":
				if s, ok := value.(string); ok {
					p.ctx.language = s
				}
			default:
				switch def := value.(type) {
				case string:
					p.ctx.mappings[key] = def
				case map[string]interface{}:
					if id, ok := def["@id"].(string); ok {
						p.ctx.mappings[key] = id
					}
					if coerce, ok := def["@type"].(string); ok && coerce == "@id" {
						p.ctx.idTerms[key] = true
					}
				}
			}
		}
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("%w: malformed @context", ErrParse)
	}
}

// processValue handles a node object or an array of node objects.
func (p *jsonldParser) processValue(raw interface{}) error {
	switch value := raw.(type) {
	case map[string]interface{}:
		_, err := p.processNode(value)
		return err
	case []interface{}:
		for _, element := range value {
			if err := p.processValue(element); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: expected a node object", ErrParse)
	}
}

// processNode asserts the triples of one node object and returns the
// node's identifier (an IRI or blank node label).
func (p *jsonldParser) processNode(node map[string]interface{}) (string, error) {
	subject := ""
	if rawID, ok := node["@id"].(string); ok {
		subject = p.expandID(rawID)
	}
	if subject == "" {
		subject = p.newBlank()
	}

	for key, rawValue := range node {
		if key == "@id" || key == "@context" {
			continue
		}
		if key == "@type" {
			for _, typeName := range stringValues(rawValue) {
				p.add(subject, store.RDFType, resourceTerm(p.expandID(typeName)))
			}
			continue
		}
		if strings.HasPrefix(key, "@") {
			// Other keywords (@graph in a node, @index, ...) are not needed
			// for resolution input.
			continue
		}

		predicate := p.expandPredicate(key)
		if predicate == "" {
			continue // term with no mapping and no vocabulary
		}

		if err := p.processObjects(subject, predicate, key, rawValue); err != nil {
			return "", err
		}
	}

	return subject, nil
}

// processObjects asserts one or more object values for a predicate.
func (p *jsonldParser) processObjects(subject, predicate, term string, rawValue interface{}) error {
	switch value := rawValue.(type) {
	case []interface{}:
		for _, element := range value {
			if err := p.processObjects(subject, predicate, term, element); err != nil {
				return err
			}
		}
		return nil

	case string:
		if p.ctx.idTerms[term] {
			p.add(subject, predicate, resourceTerm(p.expandID(value)))
		} else {
			p.add(subject, predicate, store.Literal(value, p.ctx.language))
		}
		return nil

	case bool:
		p.add(subject, predicate, store.TypedLiteral(strconv.FormatBool(value), store.NamespaceXSD+"boolean"))
		return nil

	case float64:
		if value == math.Trunc(value) {
			p.add(subject, predicate, store.TypedLiteral(strconv.FormatInt(int64(value), 10), store.NamespaceXSD+"integer"))
		} else {
			p.add(subject, predicate, store.TypedLiteral(strconv.FormatFloat(value, 'g', -1, 64), store.NamespaceXSD+"double"))
		}
		return nil

	case map[string]interface{}:
		if rawLiteral, ok := value["@value"]; ok {
			return p.processLiteral(subject, predicate, value, rawLiteral)
		}
		if rawList, ok := value["@list"]; ok {
			return p.processObjects(subject, predicate, term, rawList)
		}
		objectID, err := p.processNode(value)
		if err != nil {
			return err
		}
		p.add(subject, predicate, resourceTerm(objectID))
		return nil

	case nil:
		return nil

	default:
		return fmt.Errorf("%w: unsupported value for %q", ErrParse, term)
	}
}

// processLiteral asserts a @value object as a literal term.
func (p *jsonldParser) processLiteral(subject, predicate string, object map[string]interface{}, rawLiteral interface{}) error {
	text := ""
	switch literal := rawLiteral.(type) {
	case string:
		text = literal
	case bool:
		text = strconv.FormatBool(literal)
	case float64:
		if literal == math.Trunc(literal) {
			text = strconv.FormatInt(int64(literal), 10)
		} else {
			text = strconv.FormatFloat(literal, 'g', -1, 64)
		}
	default:
		return fmt.Errorf("%w: unsupported @value", ErrParse)
	}

	if language, ok := object["@language"].(string); ok {
		p.add(subject, predicate, store.Literal(text, language))
		return nil
	}
	if datatype, ok := object["@type"].(string); ok {
		p.add(subject, predicate, store.TypedLiteral(text, p.expandID(datatype)))
		return nil
	}
	p.add(subject, predicate, store.Literal(text, ""))
	return nil
}

// expandID expands a node identifier: blank labels pass through, compact
// IRIs expand via the context, absolute IRIs pass through, and anything
// else resolves against the base IRI.
func (p *jsonldParser) expandID(value string) string {
	if value == "" || strings.HasPrefix(value, "_:") {
		return value
	}
	if expanded, ok := p.expandCompact(value); ok {
		return expanded
	}
	if absoluteIRIPattern.MatchString(value) {
		return value
	}
	return p.ctx.base + value
}

// expandPredicate expands a node object key to a predicate IRI. Returns
// "" when the key has no mapping and cannot be treated as an IRI.
func (p *jsonldParser) expandPredicate(key string) string {
	if mapped, ok := p.ctx.mappings[key]; ok {
		return p.expandTermTarget(mapped)
	}
	if expanded, ok := p.expandCompact(key); ok {
		return expanded
	}
	if absoluteIRIPattern.MatchString(key) {
		return key
	}
	if p.ctx.vocab != "" {
		return p.ctx.vocab + key
	}
	return ""
}

// expandTermTarget expands a context mapping target, which may itself be
// a compact IRI.
func (p *jsonldParser) expandTermTarget(target string) string {
	if expanded, ok := p.expandCompact(target); ok {
		return expanded
	}
	return target
}

// expandCompact expands "prefix:suffix" when the prefix is mapped in the
// context. Returns false when the value is not a compact IRI.
func (p *jsonldParser) expandCompact(value string) (string, bool) {
	colon := strings.Index(value, ":")
	if colon <= 0 {
		return "", false
	}
	prefix := value[:colon]
	if namespace, ok := p.ctx.mappings[prefix]; ok {
		return namespace + value[colon+1:], true
	}
	return "", false
}

func (p *jsonldParser) add(subject, predicate string, object store.Term) {
	if object.Value == "" {
		return
	}
	_ = p.store.Add(subject, predicate, object)
}

func (p *jsonldParser) newBlank() string {
	label := fmt.Sprintf("_:jsonld%d", p.blankSeq)
	p.blankSeq++
	return label
}

// stringValues flattens a JSON value into its string members.
func stringValues(raw interface{}) []string {
	switch value := raw.(type) {
	case string:
		return []string{value}
	case []interface{}:
		var values []string
		for _, element := range value {
			if s, ok := element.(string); ok {
				values = append(values, s)
			}
		}
		return values
	default:
		return nil
	}
}
