// Package intern provides an append-only word-interning table. Every token
// that ever appears in an indexed document or query is resolved through a
// Table so that equal words share one stored copy, giving a stable handle
// that survives for the lifetime of the server.
package intern

import "sync"

// Table is an interning table for words. The zero value is empty and ready
// to use. A Table is safe for concurrent use by multiple goroutines.
type Table struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewTable creates an empty, ready-to-use Table.
func NewTable() *Table {
	return &Table{values: make(map[string]string)}
}

// Intern returns the canonical stored copy of s. Two calls with equal
// strings return the identical stored value. Intern never removes entries:
// the table grows monotonically.
func (t *Table) Intern(s string) string {
	t.mu.RLock()
	if v, ok := t.values[s]; ok {
		t.mu.RUnlock()
		return v
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	if v, ok := t.values[s]; ok {
		return v
	}
	if t.values == nil {
		t.values = make(map[string]string)
	}
	// Copy s so the stored key doesn't keep a larger backing array (e.g.
	// a raw-query substring) alive longer than necessary.
	owned := string([]byte(s))
	t.values[owned] = owned
	return owned
}

// Len returns the number of distinct interned words.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.values)
}
