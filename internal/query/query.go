// Package query implements the plus/minus word query grammar: parsing a raw
// query string into required (plus) and forbidden (minus) word sequences.
package query

import "sort"

// Query is a parsed search query: the words that must appear (Plus) and the
// words that must not appear (Minus), as interned handles in parse order.
type Query struct {
	Plus  []string
	Minus []string
}

// Dedup sorts and compacts both word sequences in place, leaving them
// de-duplicated and ordered. Used by the parallel matching path, which
// needs a stable order to iterate over safely.
func (q *Query) Dedup() {
	q.Plus = sortUnique(q.Plus)
	q.Minus = sortUnique(q.Minus)
}

func sortUnique(words []string) []string {
	if len(words) == 0 {
		return words
	}
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)

	out := sorted[:1]
	for _, w := range sorted[1:] {
		if w != out[len(out)-1] {
			out = append(out, w)
		}
	}
	return out
}
