package triple

import "sync"

// Interner is the contract the core requires from its string<->ID
// collaborator (spec §4.1): a total, idempotent intern function plus a
// reverse map for diagnostics. The core never observes any other
// behavior, so alternate implementations (e.g. a lock-free shared
// structure, per spec §5) are free to replace MemInterner entirely.
type Interner interface {
	// Intern returns the dense ID for iri, assigning a fresh one on first
	// sight. Intern(x) == Intern(x) for the lifetime of the Interner.
	Intern(iri string) uint32

	// Lookup reverses Intern. ok is false if id was never assigned.
	Lookup(id uint32) (iri string, ok bool)
}

// MemInterner is the reference Interner: a single-writer, map-backed
// structure safe for concurrent readers. Per spec §4.1/§5, in multi-worker
// mode only worker 0 should call Intern; other workers only Lookup.
type MemInterner struct {
	mu      sync.RWMutex
	byIRI   map[string]uint32
	byID    []string
	nextID  uint32
}

// NewMemInterner constructs a MemInterner with every reserved schema IRI
// pre-registered at its frozen ID (vocab.go), and validates the contract
// immediately: if pre-registration ever produced a mismatch the
// constructor panics, since that would indicate a bug in this package
// itself, not a caller error.
func NewMemInterner() *MemInterner {
	reserved := ReservedIDs()
	size := MaxConst + 1
	m := &MemInterner{
		byIRI:  make(map[string]uint32, len(reserved)*2),
		byID:   make([]string, size, size*4),
		nextID: size,
	}
	for id, iri := range reserved {
		m.byIRI[iri] = id
		m.byID[id] = iri
	}
	for id, iri := range reserved {
		if got := m.byIRI[iri]; got != id {
			panic(ErrReservedIDMismatch)
		}
	}
	return m
}

// Intern implements Interner.
func (m *MemInterner) Intern(iri string) uint32 {
	m.mu.RLock()
	if id, ok := m.byIRI[iri]; ok {
		m.mu.RUnlock()
		return id
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	// Re-check under the write lock: another writer may have interned iri
	// between the RUnlock above and this Lock.
	if id, ok := m.byIRI[iri]; ok {
		return id
	}
	id := m.nextID
	m.nextID++
	m.byIRI[iri] = id
	m.byID = append(m.byID, iri)
	return id
}

// Lookup implements Interner.
func (m *MemInterner) Lookup(id uint32) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if int(id) >= len(m.byID) {
		return "", false
	}
	return m.byID[id], true
}

// Len returns the number of distinct IRIs interned so far, including the
// reserved vocabulary.
func (m *MemInterner) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byIRI)
}
