// Package batch runs many queries against a Server concurrently, preserving
// the caller's input order in the returned results.
package batch

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/rqust/searchserver/internal/index"
)

type orderedResult struct {
	order int
	docs  []index.Document
}

// ProcessQueries evaluates every query in queries concurrently against s,
// one goroutine per query, using the default ACTUAL-only predicate. The
// returned slice has one entry per input query, in the same order as
// queries, regardless of completion order.
//
// If any query fails to parse, ProcessQueries returns the first such error
// and no results. The other queries are not cancelled: they run to
// completion and their results are discarded.
func ProcessQueries(s *index.Server, queries []string) ([][]index.Document, error) {
	return ProcessQueriesWithPredicate(s, queries, index.ActualOnly)
}

// ProcessQueriesWithPredicate is ProcessQueries with an explicit predicate.
func ProcessQueriesWithPredicate(s *index.Server, queries []string, pred index.Predicate) ([][]index.Document, error) {
	var g errgroup.Group
	results := make(chan orderedResult, len(queries))

	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			docs, err := s.FindTopDocumentsParallel(q, pred)
			if err != nil {
				return err
			}
			results <- orderedResult{order: i, docs: docs}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)

	ordered := make([]orderedResult, 0, len(queries))
	for r := range results {
		ordered = append(ordered, r)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].order < ordered[j].order })

	out := make([][]index.Document, len(ordered))
	for i, r := range ordered {
		out[i] = r.docs
	}
	return out, nil
}

// ProcessQueriesJoined is ProcessQueries, flattened into a single sequence
// in query order.
func ProcessQueriesJoined(s *index.Server, queries []string) ([]index.Document, error) {
	results, err := ProcessQueries(s, queries)
	if err != nil {
		return nil, err
	}

	var joined []index.Document
	for _, docs := range results {
		joined = append(joined, docs...)
	}
	return joined, nil
}
