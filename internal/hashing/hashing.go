// Package hashing detects move lists that reach the same position.
package hashing

import (
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Signature identifies the final position of one replayed move list.
type Signature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// WeakHash is the material signature, a second check against collisions
	WeakHash uint64
	// Ply is the number of moves played to reach the position
	Ply int
	// Name labels the source, e.g. a file name
	Name string
}

// Sign describes the engine's current position.
func Sign(name string, e *engine.Engine) Signature {
	return Signature{
		Hash:     Position(e),
		WeakHash: WeakHash(e.Board()),
		Ply:      e.Ply(),
		Name:     name,
	}
}

// DuplicateDetector tracks seen positions. It is safe for concurrent use.
type DuplicateDetector struct {
	mu sync.RWMutex
	// hashTable stores the first signature seen for each position
	hashTable map[uint64][]Signature
	// samePly also requires the move counts to match
	samePly        bool
	duplicateCount int
}

// NewDuplicateDetector creates a detector. With samePly set, positions only
// match when they were reached in the same number of moves.
func NewDuplicateDetector(samePly bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable: make(map[uint64][]Signature),
		samePly:   samePly,
	}
}

// CheckAndAdd records the signature. When an earlier signature matches it
// is returned with true and the new one is not stored.
func (d *DuplicateDetector) CheckAndAdd(sig Signature) (Signature, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing, true
		}
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return Signature{}, false
}

func (d *DuplicateDetector) signaturesMatch(a, b Signature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	return !d.samePly || a.Ply == b.Ply
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions stored.
func (d *DuplicateDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hashTable = make(map[uint64][]Signature)
	d.duplicateCount = 0
}
