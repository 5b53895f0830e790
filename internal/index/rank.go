package index

import (
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/rqust/searchserver/internal/query"
	"github.com/rqust/searchserver/internal/shardmap"
	"github.com/rqust/searchserver/pkg/types"
)

// FindTopDocuments parses raw, scores every document that satisfies pred by
// TF-IDF, and returns at most types.MaxResultDocumentCount documents sorted
// by descending relevance, breaking ties by descending rating.
func (s *Server) FindTopDocuments(raw string, pred Predicate) ([]Document, error) {
	q, err := query.Parse(raw, s.interner, s.stopWords)
	if err != nil {
		return nil, err
	}
	q.Dedup()

	scores := make(map[int]float64)
	for _, w := range q.Plus {
		postings, ok := s.forward[w]
		if !ok {
			continue
		}
		idf := s.idf(w, len(postings))
		for id, tf := range postings {
			scores[id] += tf * idf
		}
	}

	for _, w := range q.Minus {
		for id := range s.forward[w] {
			delete(scores, id)
		}
	}

	return s.rankScores(scores, pred), nil
}

// FindTopDocumentsParallel is equivalent to FindTopDocuments but
// accumulates scores across the plus-words concurrently using a
// shardmap.Map guarded per bucket rather than by a single mutex.
func (s *Server) FindTopDocumentsParallel(raw string, pred Predicate) ([]Document, error) {
	q, err := query.Parse(raw, s.interner, s.stopWords)
	if err != nil {
		return nil, err
	}
	q.Dedup()

	acc := shardmap.New[float64](s.shardCount)

	var g errgroup.Group
	for _, w := range q.Plus {
		w := w
		g.Go(func() error {
			postings, ok := s.forward[w]
			if !ok {
				return nil
			}
			idf := s.idf(w, len(postings))
			for id, tf := range postings {
				h := acc.Access(id)
				h.Set(h.Value() + tf*idf)
				h.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	scores := acc.BuildOrdinary()
	for _, w := range q.Minus {
		for id := range s.forward[w] {
			delete(scores, id)
		}
	}

	return s.rankScores(scores, pred), nil
}

// idf returns the inverse document frequency of a word with docFreq
// postings, given the current total document count.
func (s *Server) idf(_ string, docFreq int) float64 {
	if docFreq == 0 {
		return 0
	}
	return math.Log(float64(len(s.documents)) / float64(docFreq))
}

// rankScores applies pred, attaches rating, sorts, and truncates to
// types.MaxResultDocumentCount.
func (s *Server) rankScores(scores map[int]float64, pred Predicate) []Document {
	if pred == nil {
		pred = ActualOnly
	}

	docs := make([]Document, 0, len(scores))
	for id, relevance := range scores {
		status, rating, ok := s.docInfo(id)
		if !ok || !pred(id, status, rating) {
			continue
		}
		docs = append(docs, Document{ID: id, Relevance: relevance, Rating: rating})
	}

	sort.Slice(docs, func(i, j int) bool {
		if math.Abs(docs[i].Relevance-docs[j].Relevance) > types.Epsilon {
			return docs[i].Relevance > docs[j].Relevance
		}
		if docs[i].Rating != docs[j].Rating {
			return docs[i].Rating > docs[j].Rating
		}
		return docs[i].ID < docs[j].ID
	})

	if len(docs) > types.MaxResultDocumentCount {
		docs = docs[:types.MaxResultDocumentCount]
	}

	return docs
}
