// File: internal/tt/tt.go
package tt

import "sync"

// Entry is one cached leaf score.
type Entry struct {
	Key   uint64 // board hash mixed with the evaluation side; 0 marks an empty slot
	Score int32
}

// Table is a direct-mapped, replace-always cache of leaf evaluations.
// 2^bits slots; bits=16 is about 1 MiB.
type Table struct {
	mu      sync.RWMutex
	entries []Entry
	mask    uint64
	used    int
}

func New(bits uint8) *Table {
	size := 1 << bits
	return &Table{
		entries: make([]Entry, size),
		mask:    uint64(size - 1),
	}
}

// Clear marks every slot empty.
func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
	t.used = 0
}

// Len is the number of occupied slots.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.used
}

func (t *Table) Cap() int { return len(t.entries) }

func (t *Table) Probe(key uint64) (int32, bool) {
	if key == 0 {
		return 0, false
	}
	t.mu.RLock()
	e := t.entries[key&t.mask]
	t.mu.RUnlock()
	if e.Key != key {
		return 0, false
	}
	return e.Score, true
}

func (t *Table) Store(key uint64, score int32) {
	if key == 0 {
		return
	}
	t.mu.Lock()
	e := &t.entries[key&t.mask]
	if e.Key == 0 {
		t.used++
	}
	e.Key, e.Score = key, score
	t.mu.Unlock()
}
