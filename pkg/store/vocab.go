package store

// Namespace URIs for the vocabularies used by phyloreference ontologies.
const (
	// NamespaceRDF is the standard RDF namespace.
	NamespaceRDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// NamespaceRDFS is the RDF Schema namespace.
	NamespaceRDFS = "http://www.w3.org/2000/01/rdf-schema#"

	// NamespaceOWL is the OWL 2 namespace.
	NamespaceOWL = "http://www.w3.org/2002/07/owl#"

	// NamespaceXSD is the XML Schema namespace for datatypes.
	NamespaceXSD = "http://www.w3.org/2001/XMLSchema#"

	// NamespaceOBO is the OBO Foundry namespace carrying CDAO terms.
	NamespaceOBO = "http://purl.obolibrary.org/obo/"

	// NamespacePhyloref is the Phyloreference ontology namespace.
	NamespacePhyloref = "http://ontology.phyloref.org/phyloref.owl#"
)

// RDF, RDFS and OWL terms used during loading and classification.
const (
	// RDFType asserts that a resource is an instance of a class.
	RDFType = NamespaceRDF + "type"

	// RDFSLabel is the annotation property carrying human-readable names.
	RDFSLabel = NamespaceRDFS + "label"

	// RDFSSubClassOf asserts the subsumption relationship between classes.
	RDFSSubClassOf = NamespaceRDFS + "subClassOf"

	// OWLClass marks a resource as an OWL class declaration.
	OWLClass = NamespaceOWL + "Class"

	// OWLNamedIndividual marks a resource as an OWL named individual.
	OWLNamedIndividual = NamespaceOWL + "NamedIndividual"

	// OWLEquivalentClass asserts that two class expressions are equivalent.
	OWLEquivalentClass = NamespaceOWL + "equivalentClass"

	// OWLOntology marks the ontology header resource.
	OWLOntology = NamespaceOWL + "Ontology"

	// OWLNothing is the unsatisfiable bottom class reported by reasoners.
	OWLNothing = NamespaceOWL + "Nothing"
)

// Phyloreference domain terms.
const (
	// CDAONode is the CDAO class for a node in a phylogeny
	// (Comparative Data Analysis Ontology term CDAO_0000140).
	CDAONode = NamespaceOBO + "CDAO_0000140"

	// PhylorefClass is the marker class whose subclasses are
	// phyloreferences: executable clade definitions.
	PhylorefClass = NamespacePhyloref + "Phyloreference"
)

// DefaultURIPrefix is the base URI used when reading JSON-LD input and the
// default namespace prefix stripped from IRIs in resolution reports.
const DefaultURIPrefix = "http://example.org/jphyloref"
