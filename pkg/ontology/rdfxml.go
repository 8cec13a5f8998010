package ontology

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/coolbeans/phylor/pkg/store"
)

// rdfXMLParser reads a subset of the RDF/XML syntax sufficient for OWL
// ontologies as serialized by common tooling:
//
//   - rdf:Description and typed node elements
//   - rdf:about, rdf:ID and rdf:nodeID subject identification
//   - property elements with rdf:resource, rdf:nodeID, rdf:datatype,
//     rdf:parseType="Resource", nested node elements, or literal content
//   - xml:lang inherited through element scope
//   - property attributes on node elements
//
// Blank node labels are generated for anonymous nodes so that anonymous
// class expressions survive into the triple store.
type rdfXMLParser struct {
	decoder  *xml.Decoder
	store    *store.TripleStore
	blankSeq int
}

// ParseRDFXML reads an RDF/XML document into an ontology.
func ParseRDFXML(r io.Reader) (*Ontology, error) {
	parser := &rdfXMLParser{
		decoder: xml.NewDecoder(r),
		store:   store.NewTripleStore(),
	}
	if err := parser.parse(); err != nil {
		return nil, err
	}
	return New(parser.store), nil
}

func (p *rdfXMLParser) parse() error {
	root, err := p.nextStartElement()
	if err != nil {
		return err
	}
	if root == nil || expandName(root.Name) != store.NamespaceRDF+"RDF" {
		return fmt.Errorf("%w: expected rdf:RDF root element", ErrParse)
	}

	rootLang := langAttr(root.Attr, "")

	for {
		token, err := p.decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrParse, err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if _, err := p.parseNodeElement(t, rootLang); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// parseNodeElement reads one node element (rdf:Description or a typed
// node) and all property elements within it, returning the subject
// identifier (an IRI or a blank node label).
func (p *rdfXMLParser) parseNodeElement(start xml.StartElement, inheritedLang string) (string, error) {
	lang := langAttr(start.Attr, inheritedLang)

	subject := ""
	var propertyAttrs []xml.Attr
	for _, attr := range start.Attr {
		switch {
		case isRDFAttr(attr, "about"):
			subject = attr.Value
		case isRDFAttr(attr, "ID"):
			subject = "#" + attr.Value
		case isRDFAttr(attr, "nodeID"):
			subject = "_:" + attr.Value
		case isSyntaxAttr(attr):
			// xmlns declarations, xml:lang, other rdf: syntax terms
		default:
			propertyAttrs = append(propertyAttrs, attr)
		}
	}
	if subject == "" {
		subject = p.newBlank()
	}

	// A typed node element asserts rdf:type from its element name.
	if typeIRI := expandName(start.Name); typeIRI != store.NamespaceRDF+"Description" {
		p.add(subject, store.RDFType, store.IRI(typeIRI))
	}

	// Property attributes abbreviate literal-valued property elements.
	for _, attr := range propertyAttrs {
		p.add(subject, expandName(attr.Name), store.Literal(attr.Value, lang))
	}

	for {
		token, err := p.decoder.Token()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrParse, err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if err := p.parsePropertyElement(subject, t, lang); err != nil {
				return "", err
			}
		case xml.EndElement:
			return subject, nil
		}
	}
}

// parsePropertyElement reads one property element and adds the triple it
// asserts about the subject.
func (p *rdfXMLParser) parsePropertyElement(subject string, start xml.StartElement, inheritedLang string) error {
	predicate := expandName(start.Name)
	lang := langAttr(start.Attr, inheritedLang)

	resource, nodeID, datatype, parseType := "", "", "", ""
	for _, attr := range start.Attr {
		switch {
		case isRDFAttr(attr, "resource"):
			resource = attr.Value
		case isRDFAttr(attr, "nodeID"):
			nodeID = attr.Value
		case isRDFAttr(attr, "datatype"):
			datatype = attr.Value
		case isRDFAttr(attr, "parseType"):
			parseType = attr.Value
		}
	}

	if resource != "" {
		p.add(subject, predicate, store.IRI(resource))
		return p.skipToEnd()
	}
	if nodeID != "" {
		p.add(subject, predicate, store.Blank("_:"+nodeID))
		return p.skipToEnd()
	}
	if parseType == "Resource" {
		// An implicit blank node whose children are property elements.
		blank := p.newBlank()
		p.add(subject, predicate, store.Blank(blank))
		for {
			token, err := p.decoder.Token()
			if err != nil {
				return fmt.Errorf("%w: %v", ErrParse, err)
			}
			switch t := token.(type) {
			case xml.StartElement:
				if err := p.parsePropertyElement(blank, t, lang); err != nil {
					return err
				}
			case xml.EndElement:
				return nil
			}
		}
	}

	// Either literal content or a nested node element.
	var text strings.Builder
	nestedID := ""
	for {
		token, err := p.decoder.Token()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrParse, err)
		}

		switch t := token.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			id, err := p.parseNodeElement(t, lang)
			if err != nil {
				return err
			}
			nestedID = id
		case xml.EndElement:
			if nestedID != "" {
				p.add(subject, predicate, resourceTerm(nestedID))
				return nil
			}
			value := text.String()
			if strings.TrimSpace(value) == "" && datatype == "" {
				// Empty property element: nothing to assert.
				return nil
			}
			if datatype != "" {
				p.add(subject, predicate, store.TypedLiteral(value, datatype))
			} else {
				p.add(subject, predicate, store.Literal(value, lang))
			}
			return nil
		}
	}
}

// skipToEnd consumes tokens up to the end of the current element.
func (p *rdfXMLParser) skipToEnd() error {
	depth := 0
	for {
		token, err := p.decoder.Token()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrParse, err)
		}
		switch token.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 {
				return nil
			}
			depth--
		}
	}
}

// nextStartElement scans forward to the first start element.
func (p *rdfXMLParser) nextStartElement() (*xml.StartElement, error) {
	for {
		token, err := p.decoder.Token()
		if err == io.EOF {
			return nil, fmt.Errorf("%w: no XML content found", ErrParse)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		if start, ok := token.(xml.StartElement); ok {
			return &start, nil
		}
	}
}

func (p *rdfXMLParser) add(subject, predicate string, object store.Term) {
	if object.Value == "" {
		return
	}
	_ = p.store.Add(subject, predicate, object)
}

func (p *rdfXMLParser) newBlank() string {
	label := fmt.Sprintf("_:genid%d", p.blankSeq)
	p.blankSeq++
	return label
}

// resourceTerm builds the object term for a resource identifier, which is
// a blank term when the identifier carries a blank node label.
func resourceTerm(id string) store.Term {
	if IsAnonymous(id) {
		return store.Blank(id)
	}
	return store.IRI(id)
}

// expandName joins an XML name's namespace and local part into a full IRI.
func expandName(name xml.Name) string {
	return name.Space + name.Local
}

// langAttr returns the xml:lang attribute value, or the inherited language
// when the element does not carry one.
func langAttr(attrs []xml.Attr, inherited string) string {
	for _, attr := range attrs {
		if attr.Name.Local == "lang" &&
			(attr.Name.Space == "xml" || attr.Name.Space == "http://www.w3.org/XML/1998/namespace") {
			return attr.Value
		}
	}
	return inherited
}

// isRDFAttr matches an attribute in the RDF namespace with the given local
// name. Unprefixed rdf:ID-style attributes are not recognized; phylo
// ontologies always carry the namespace.
func isRDFAttr(attr xml.Attr, local string) bool {
	return attr.Name.Space == store.NamespaceRDF && attr.Name.Local == local
}

// isSyntaxAttr filters attributes that do not assert property values:
// namespace declarations, xml:* attributes and rdf: syntax attributes.
func isSyntaxAttr(attr xml.Attr) bool {
	if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
		return true
	}
	if attr.Name.Space == "xml" || attr.Name.Space == "http://www.w3.org/XML/1998/namespace" {
		return true
	}
	return attr.Name.Space == store.NamespaceRDF
}
