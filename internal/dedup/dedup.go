// Package dedup implements duplicate-document removal: two documents are
// duplicates if they share the exact same set of words, irrespective of
// word frequency, rating, or status.
package dedup

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rqust/searchserver/internal/index"
)

// RemoveDuplicates scans s's documents in ascending id order and removes
// every document whose word set exactly matches one already seen at a
// lower id. For each removed document it writes
// "Found duplicate document id <id>\n" to w.
func RemoveDuplicates(w io.Writer, s *index.Server) error {
	seen := make(map[string]struct{})

	for _, id := range append([]int(nil), s.DocumentIDs()...) {
		fp := fingerprint(s.GetWordFrequencies(id))
		if _, dup := seen[fp]; dup {
			if _, err := fmt.Fprintf(w, "Found duplicate document id %d\n", id); err != nil {
				return err
			}
			s.RemoveDocument(id)
			continue
		}
		seen[fp] = struct{}{}
	}

	return nil
}

// fingerprint builds a stable, collision-resistant key for a document's
// word set, ignoring term frequency.
func fingerprint(freqs map[string]float64) string {
	words := make([]string, 0, len(freqs))
	for w := range freqs {
		words = append(words, w)
	}
	sort.Strings(words)
	return strings.Join(words, "\x00")
}
