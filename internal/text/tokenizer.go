// Package text implements the whitespace tokenizer shared by document
// indexing and query parsing.
package text

// Split breaks text into non-empty tokens separated by runs of one or more
// ASCII space (0x20) bytes. Other whitespace (tabs, newlines) is not treated
// as a separator, and no Unicode normalization is performed; bytes are
// passed through untouched.
func Split(text string) []string {
	var tokens []string
	start := -1
	for i := 0; i < len(text); i++ {
		if text[i] == ' ' {
			if start >= 0 {
				tokens = append(tokens, text[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, text[start:])
	}
	return tokens
}

// IsValidWord reports whether s contains no control byte, i.e. no byte in
// [0x00, 0x20).
func IsValidWord(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < ' ' {
			return false
		}
	}
	return true
}
