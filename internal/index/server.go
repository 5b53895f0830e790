// Package index implements the inverted index and ranked search server:
// document storage, forward/reverse posting lists, and the sequential and
// parallel query-evaluation paths.
package index

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/rqust/searchserver/internal/intern"
	"github.com/rqust/searchserver/internal/query"
	"github.com/rqust/searchserver/internal/text"
	"github.com/rqust/searchserver/pkg/types"
)

// Document is a single scored search result.
type Document = types.Document

// docRecord is the immutable per-document metadata stored at AddDocument
// time. It is never mutated after insertion.
type docRecord struct {
	rating  int
	status  types.DocumentStatus
	content string
}

// Server is the inverted index and search engine: it owns documents, the
// stop-word set, the word interner, and the forward/reverse posting lists.
//
// Readers (FindTopDocuments, MatchDocument, GetWordFrequencies) may run
// concurrently with each other. Writers (AddDocument, RemoveDocument)
// require exclusive access to the Server; the Server does not provide its
// own reader-writer lock — serializing writers against readers is the
// caller's responsibility, same as the original C++ SearchServer.
type Server struct {
	stopWords  map[string]struct{}
	interner   *intern.Table
	shardCount int // bucket count for the parallel methods' shardmap.Map

	documents   map[int]docRecord
	documentIDs []int // ascending, mirrors the key-set of documents and reverse

	forward map[string]map[int]float64 // word -> doc -> tf
	reverse map[int]map[string]float64 // doc -> word -> tf
}

// defaultShardCount is used when the caller does not specify one, matching
// spec §4.G's suggested shard count for typical corpora.
const defaultShardCount = 100

// NewServer constructs a Server whose stop-word set is parsed from a
// delimited string (separated by ASCII spaces), equivalent to tokenizing it
// first with text.Split.
func NewServer(stopWordsText string) (*Server, error) {
	return NewServerFromWords(text.Split(stopWordsText))
}

// NewServerFromWords constructs a Server given stop-words as a slice, using
// the default shard count for parallel operations. Every stop-word must be
// non-empty and free of control bytes.
func NewServerFromWords(stopWords []string) (*Server, error) {
	return NewServerWithConfig(stopWords, types.SearchConfig{ShardCount: defaultShardCount})
}

// NewServerWithConfig constructs a Server given stop-words and a
// SearchConfig; cfg.ShardCount, if positive, overrides the default shard
// count used by the parallel methods.
func NewServerWithConfig(stopWords []string, cfg types.SearchConfig) (*Server, error) {
	set := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		if w == "" || !text.IsValidWord(w) {
			return nil, types.Errorf("index.NewServer", types.ErrInvalidStopWord, "stop word %q is invalid", w)
		}
		set[w] = struct{}{}
	}

	shardCount := cfg.ShardCount
	if shardCount <= 0 {
		shardCount = defaultShardCount
	}

	return &Server{
		stopWords:  set,
		interner:   intern.NewTable(),
		shardCount: shardCount,
		documents:  make(map[int]docRecord),
		forward:    make(map[string]map[int]float64),
		reverse:    make(map[int]map[string]float64),
	}, nil
}

// AddDocument indexes a document under id, tokenizing text, dropping
// stop-words, and validating the remaining tokens. A document consisting
// entirely of stop-words is accepted with no posting-list entries and an
// empty reverse-map entry rather than rejected (see DESIGN.md for the
// rationale).
func (s *Server) AddDocument(id int, content string, status types.DocumentStatus, ratings []int) error {
	if id < 0 {
		return types.Errorf("index.AddDocument", types.ErrInvalidDocumentID, "id %d is negative", id)
	}
	if _, exists := s.documents[id]; exists {
		return types.Errorf("index.AddDocument", types.ErrInvalidDocumentID, "id %d already indexed", id)
	}

	words, err := s.splitNoStop(content)
	if err != nil {
		return err
	}

	freqs := s.reverse[id]
	if freqs == nil {
		freqs = make(map[string]float64)
	}

	if len(words) > 0 {
		inv := 1.0 / float64(len(words))
		for _, w := range words {
			handle := s.interner.Intern(w)
			if s.forward[handle] == nil {
				s.forward[handle] = make(map[int]float64)
			}
			s.forward[handle][id] += inv
			freqs[handle] += inv
		}
	}

	s.reverse[id] = freqs
	s.documents[id] = docRecord{
		rating:  computeAverageRating(ratings),
		status:  status,
		content: content,
	}
	s.insertDocumentID(id)

	return nil
}

// splitNoStop tokenizes content, validates each surviving token, and drops
// stop-words.
func (s *Server) splitNoStop(content string) ([]string, error) {
	var words []string
	for _, tok := range text.Split(content) {
		if !text.IsValidWord(tok) {
			return nil, types.Errorf("index.AddDocument", types.ErrInvalidWord, "word %q is invalid", tok)
		}
		if _, stop := s.stopWords[tok]; stop {
			continue
		}
		words = append(words, tok)
	}
	return words, nil
}

func (s *Server) insertDocumentID(id int) {
	i := sort.SearchInts(s.documentIDs, id)
	s.documentIDs = append(s.documentIDs, 0)
	copy(s.documentIDs[i+1:], s.documentIDs[i:])
	s.documentIDs[i] = id
}

func (s *Server) removeDocumentID(id int) {
	i := sort.SearchInts(s.documentIDs, id)
	if i < len(s.documentIDs) && s.documentIDs[i] == id {
		s.documentIDs = append(s.documentIDs[:i], s.documentIDs[i+1:]...)
	}
}

// computeAverageRating returns the truncated-toward-zero integer average of
// ratings, or 0 for an empty list.
func computeAverageRating(ratings []int) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return sum / len(ratings)
}

// RemoveDocument removes id from the index. A no-op if id is not present.
func (s *Server) RemoveDocument(id int) {
	freqs, ok := s.reverse[id]
	if !ok {
		return
	}
	for word := range freqs {
		delete(s.forward[word], id)
		if len(s.forward[word]) == 0 {
			delete(s.forward, word)
		}
	}
	delete(s.documents, id)
	delete(s.reverse, id)
	s.removeDocumentID(id)
}

// RemoveDocumentParallel is equivalent to RemoveDocument but erases id from
// each affected word's posting list concurrently. Each worker touches a
// distinct per-word map, so no locking is needed during the parallel phase;
// emptied posting lists are dropped from the outer forward map afterward,
// sequentially.
func (s *Server) RemoveDocumentParallel(id int) error {
	freqs, ok := s.reverse[id]
	if !ok {
		return nil
	}

	words := make([]string, 0, len(freqs))
	for w := range freqs {
		words = append(words, w)
	}

	empty := make([]bool, len(words))
	var g errgroup.Group
	for i, w := range words {
		i, w := i, w
		g.Go(func() error {
			delete(s.forward[w], id)
			empty[i] = len(s.forward[w]) == 0
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, w := range words {
		if empty[i] {
			delete(s.forward, w)
		}
	}

	delete(s.documents, id)
	delete(s.reverse, id)
	s.removeDocumentID(id)
	return nil
}

// GetDocumentCount returns the number of live documents.
func (s *Server) GetDocumentCount() int {
	return len(s.documents)
}

// GetDocumentID returns the id at position index in ascending document-id
// order.
func (s *Server) GetDocumentID(index int) (int, error) {
	if index < 0 || index >= len(s.documentIDs) {
		return 0, types.Errorf("index.GetDocumentID", types.ErrIndexOutOfRange, "index %d out of range [0,%d)", index, len(s.documentIDs))
	}
	return s.documentIDs[index], nil
}

// DocumentIDs returns the live document ids in ascending order. The
// returned slice must not be mutated by the caller.
func (s *Server) DocumentIDs() []int {
	return s.documentIDs
}

// GetWordFrequencies returns a freshly computed map from word to tf for the
// given document, or an empty map if id is not indexed. Each call returns
// an independent map.
func (s *Server) GetWordFrequencies(id int) map[string]float64 {
	freqs, ok := s.reverse[id]
	if !ok {
		return map[string]float64{}
	}
	out := make(map[string]float64, len(freqs))
	for w, f := range freqs {
		out[w] = f
	}
	return out
}

// docInfo returns the status and rating stored for id, and whether id is
// indexed.
func (s *Server) docInfo(id int) (status types.DocumentStatus, rating int, ok bool) {
	rec, ok := s.documents[id]
	if !ok {
		return 0, 0, false
	}
	return rec.status, rec.rating, true
}

// MatchDocument parses raw, and if any of its minus-words appear in id's
// postings, returns (nil, status) with no error. Otherwise it returns the
// plus-words that appear in the document, in the parser's set order
// (lexicographic by interned handle), together with the document's status.
func (s *Server) MatchDocument(raw string, id int) ([]string, types.DocumentStatus, error) {
	rec, ok := s.documents[id]
	if !ok {
		return nil, 0, types.Errorf("index.MatchDocument", types.ErrInvalidDocumentID, "document %d not indexed", id)
	}
	if !text.IsValidWord(raw) {
		return nil, 0, types.Errorf("index.MatchDocument", types.ErrInvalidQuery, "control byte in query")
	}

	q, err := query.Parse(raw, s.interner, s.stopWords)
	if err != nil {
		return nil, 0, err
	}
	q.Dedup()

	for _, w := range q.Minus {
		if _, ok := s.forward[w][id]; ok {
			return nil, rec.status, nil
		}
	}

	var matched []string
	for _, w := range q.Plus {
		if _, ok := s.forward[w][id]; ok {
			matched = append(matched, w)
		}
	}

	return matched, rec.status, nil
}

// MatchDocumentParallel is equivalent to MatchDocument, but checks
// minus-words and plus-words concurrently. Each check only reads
// s.forward, so no locking is required; the result is sorted and
// de-duplicated by Query.Dedup before the checks run.
func (s *Server) MatchDocumentParallel(raw string, id int) ([]string, types.DocumentStatus, error) {
	rec, ok := s.documents[id]
	if !ok {
		return nil, 0, types.Errorf("index.MatchDocumentParallel", types.ErrInvalidDocumentID, "document %d not indexed", id)
	}
	if !text.IsValidWord(raw) {
		return nil, 0, types.Errorf("index.MatchDocumentParallel", types.ErrInvalidQuery, "control byte in query")
	}

	q, err := query.Parse(raw, s.interner, s.stopWords)
	if err != nil {
		return nil, 0, err
	}
	q.Dedup()

	excluded := make([]bool, 1)
	var g errgroup.Group
	g.Go(func() error {
		for _, w := range q.Minus {
			if _, ok := s.forward[w][id]; ok {
				excluded[0] = true
				return nil
			}
		}
		return nil
	})

	matchedFlags := make([]bool, len(q.Plus))
	for i, w := range q.Plus {
		i, w := i, w
		g.Go(func() error {
			_, matchedFlags[i] = s.forward[w][id]
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	if excluded[0] {
		return nil, rec.status, nil
	}

	var matched []string
	for i, w := range q.Plus {
		if matchedFlags[i] {
			matched = append(matched, w)
		}
	}

	return matched, rec.status, nil
}
