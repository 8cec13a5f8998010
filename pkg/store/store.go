// Package store provides RDF term and triple storage for OWL ontology data.
package store

import (
	"fmt"
	"sort"
	"sync"
)

// TripleStore is an in-memory RDF triple store with multiple indexes.
// It provides efficient lookups via three indexes:
//   - SPO: Subject -> Predicate -> Object (find facts about a subject)
//   - POS: Predicate -> Object -> Subject (find subjects with property=value)
//   - OSP: Object -> Subject -> Predicate (find subjects pointing to object)
//
// Objects are full RDF terms, so literals keep their language tags and
// datatypes through storage; the POS and OSP indexes key on a canonical
// term encoding.
type TripleStore struct {
	mu sync.RWMutex

	// SPO index: Subject -> Predicate -> object key -> Term
	spo map[string]map[string]map[string]Term

	// POS index: Predicate -> object key -> Subject -> exists
	pos map[string]map[string]map[string]bool

	// OSP index: object key -> Subject -> Predicate -> exists
	osp map[string]map[string]map[string]bool

	// Triple count
	count int
}

// NewTripleStore creates a new in-memory triple store with all indexes initialized.
func NewTripleStore() *TripleStore {
	return &TripleStore{
		spo:   make(map[string]map[string]map[string]Term),
		pos:   make(map[string]map[string]map[string]bool),
		osp:   make(map[string]map[string]map[string]bool),
		count: 0,
	}
}

// Add inserts a triple into the store. Returns nil if successful or if the
// triple already exists (idempotent operation).
func (ts *TripleStore) Add(subject, predicate string, object Term) error {
	if subject == "" || predicate == "" || object.Value == "" {
		return fmt.Errorf("triple components cannot be empty")
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.addUnsafe(subject, predicate, object)
	return nil
}

// AddTriple inserts a Triple struct into the store.
func (ts *TripleStore) AddTriple(triple Triple) error {
	return ts.Add(triple.Subject, triple.Predicate, triple.Object)
}

// BulkAdd inserts multiple triples efficiently. Holds the write lock for the
// entire operation to minimize lock contention. Invalid triples are skipped.
func (ts *TripleStore) BulkAdd(triples []Triple) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	for _, triple := range triples {
		if !triple.IsValid() {
			continue
		}
		ts.addUnsafe(triple.Subject, triple.Predicate, triple.Object)
	}

	return nil
}

// addUnsafe inserts into all three indexes. Caller must hold the write lock.
func (ts *TripleStore) addUnsafe(subject, predicate string, object Term) {
	objectKey := object.key()

	if ts.existsUnsafe(subject, predicate, objectKey) {
		return // Already exists, idempotent
	}

	// Add to SPO index
	if ts.spo[subject] == nil {
		ts.spo[subject] = make(map[string]map[string]Term)
	}
	if ts.spo[subject][predicate] == nil {
		ts.spo[subject][predicate] = make(map[string]Term)
	}
	ts.spo[subject][predicate][objectKey] = object

	// Add to POS index
	if ts.pos[predicate] == nil {
		ts.pos[predicate] = make(map[string]map[string]bool)
	}
	if ts.pos[predicate][objectKey] == nil {
		ts.pos[predicate][objectKey] = make(map[string]bool)
	}
	ts.pos[predicate][objectKey][subject] = true

	// Add to OSP index
	if ts.osp[objectKey] == nil {
		ts.osp[objectKey] = make(map[string]map[string]bool)
	}
	if ts.osp[objectKey][subject] == nil {
		ts.osp[objectKey][subject] = make(map[string]bool)
	}
	ts.osp[objectKey][subject][predicate] = true

	ts.count++
}

// Find queries triples matching the pattern. Use empty string "" for the
// subject or predicate wildcard and the zero Term for the object wildcard.
// Returns all matching triples.
func (ts *TripleStore) Find(subject, predicate string, object Term) []Triple {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	results := []Triple{}
	objectWild := object.IsZero()
	objectKey := ""
	if !objectWild {
		objectKey = object.key()
	}

	switch {
	case subject != "":
		// Drive from the SPO index.
		pMap, ok := ts.spo[subject]
		if !ok {
			return results
		}
		for p, oMap := range pMap {
			if predicate != "" && p != predicate {
				continue
			}
			for key, term := range oMap {
				if !objectWild && key != objectKey {
					continue
				}
				results = append(results, Triple{Subject: subject, Predicate: p, Object: term})
			}
		}

	case predicate != "":
		// Drive from the POS index.
		oMap, ok := ts.pos[predicate]
		if !ok {
			return results
		}
		for key, sMap := range oMap {
			if !objectWild && key != objectKey {
				continue
			}
			for s := range sMap {
				term := ts.spo[s][predicate][key]
				results = append(results, Triple{Subject: s, Predicate: predicate, Object: term})
			}
		}

	case !objectWild:
		// Drive from the OSP index.
		sMap, ok := ts.osp[objectKey]
		if !ok {
			return results
		}
		for s, pMap := range sMap {
			for p := range pMap {
				term := ts.spo[s][p][objectKey]
				results = append(results, Triple{Subject: s, Predicate: p, Object: term})
			}
		}

	default:
		// Full scan.
		for s, pMap := range ts.spo {
			for p, oMap := range pMap {
				for _, term := range oMap {
					results = append(results, Triple{Subject: s, Predicate: p, Object: term})
				}
			}
		}
	}

	return results
}

// Exists checks if a specific triple exists in the store.
func (ts *TripleStore) Exists(subject, predicate string, object Term) bool {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	return ts.existsUnsafe(subject, predicate, object.key())
}

// existsUnsafe checks the SPO index. Caller must hold a lock.
func (ts *TripleStore) existsUnsafe(subject, predicate, objectKey string) bool {
	if pMap, ok := ts.spo[subject]; ok {
		if oMap, ok := pMap[predicate]; ok {
			_, exists := oMap[objectKey]
			return exists
		}
	}
	return false
}

// Objects retrieves all object terms for a subject-predicate pair.
func (ts *TripleStore) Objects(subject, predicate string) []Term {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	var terms []Term
	if pMap, ok := ts.spo[subject]; ok {
		for _, term := range pMap[predicate] {
			terms = append(terms, term)
		}
	}
	return terms
}

// Subjects retrieves all subjects that have the given predicate-object pair.
// Returned sorted for deterministic iteration.
func (ts *TripleStore) Subjects(predicate string, object Term) []string {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	var subjects []string
	if oMap, ok := ts.pos[predicate]; ok {
		for s := range oMap[object.key()] {
			subjects = append(subjects, s)
		}
	}
	sort.Strings(subjects)
	return subjects
}

// Get retrieves all properties for a subject as a map of predicate -> []terms.
func (ts *TripleStore) Get(subject string) map[string][]Term {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	result := make(map[string][]Term)

	if pMap, ok := ts.spo[subject]; ok {
		for p, oMap := range pMap {
			terms := make([]Term, 0, len(oMap))
			for _, term := range oMap {
				terms = append(terms, term)
			}
			result[p] = terms
		}
	}

	return result
}

// All returns every triple in the store.
func (ts *TripleStore) All() []Triple {
	return ts.Find("", "", Term{})
}

// Count returns the number of triples in the store.
func (ts *TripleStore) Count() int {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	return ts.count
}
