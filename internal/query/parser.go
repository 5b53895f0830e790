package query

import (
	"github.com/rqust/searchserver/internal/intern"
	"github.com/rqust/searchserver/internal/text"
	"github.com/rqust/searchserver/pkg/types"
)

// Parse splits raw into whitespace tokens and classifies each as a
// plus-word or minus-word per the grammar in the query-language spec:
//
//   - a token may be prefixed by a single '-' to mark it a minus-word
//   - an empty token after stripping '-' is an error
//   - a token beginning with "--" is an error
//   - any control byte (< 0x20) anywhere in the token is an error
//   - a trailing bare "-" is an error
//   - stop-words (after stripping the optional '-') are discarded
//
// Surviving words are interned through table before being placed into the
// resulting Query.
func Parse(raw string, table *intern.Table, stopWords map[string]struct{}) (Query, error) {
	var q Query

	for _, tok := range text.Split(raw) {
		word, isMinus, err := parseQueryWord(tok)
		if err != nil {
			return Query{}, err
		}

		if _, stop := stopWords[word]; stop {
			continue
		}

		handle := table.Intern(word)
		if isMinus {
			q.Minus = append(q.Minus, handle)
		} else {
			q.Plus = append(q.Plus, handle)
		}
	}

	return q, nil
}

// parseQueryWord validates a single raw token and splits off its leading
// minus sign, if any.
func parseQueryWord(tok string) (word string, isMinus bool, err error) {
	if tok == "" {
		return "", false, types.Errorf("query.Parse", types.ErrInvalidQuery, "empty token")
	}

	if tok[0] == '-' {
		isMinus = true
		tok = tok[1:]
	}

	if tok == "" {
		return "", false, types.Errorf("query.Parse", types.ErrInvalidQuery, "trailing bare '-'")
	}
	if tok[0] == '-' {
		return "", false, types.Errorf("query.Parse", types.ErrInvalidQuery, "double '-' prefix in %q", tok)
	}
	if !text.IsValidWord(tok) {
		return "", false, types.Errorf("query.Parse", types.ErrInvalidQuery, "control byte in query word %q", tok)
	}

	return tok, isMinus, nil
}
