package index

import "github.com/rqust/searchserver/pkg/types"

// Predicate decides whether a document qualifies for inclusion in search
// results, given its id, status, and rating. FindTopDocuments and
// FindTopDocumentsParallel call it once per scored candidate document,
// after scores are accumulated and minus-word matches removed.
type Predicate func(id int, status types.DocumentStatus, rating int) bool

// ActualOnly is the default predicate: it accepts only documents whose
// status is types.Actual, matching the original search engine's
// zero-argument FindTopDocuments overload.
func ActualOnly(_ int, status types.DocumentStatus, _ int) bool {
	return status == types.Actual
}

// StatusPredicate returns a Predicate that accepts documents with exactly
// the given status.
func StatusPredicate(want types.DocumentStatus) Predicate {
	return func(_ int, status types.DocumentStatus, _ int) bool {
		return status == want
	}
}
