package textnorm

import (
	"strings"
	"unicode"
)

// Normalizer cleans free text into lexical tokens comparable across a corpus
// and its queries. It is pure: same input, same output, no external state.
type Normalizer struct {
	stopwords map[string]struct{}
}

// New returns a normalizer with the stop-word set for the given language
// code. Unknown codes get an empty stop-word set.
func New(lang string) *Normalizer {
	return &Normalizer{stopwords: stopwordsFor(lang)}
}

// Normalize splits text on whitespace, lowercases each token, strips
// punctuation runes and drops stop words. Empty input yields an empty slice.
func (n *Normalizer) Normalize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		tok := strings.Map(dropPunct, strings.ToLower(field))
		if tok == "" {
			continue
		}
		if _, stop := n.stopwords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func dropPunct(r rune) rune {
	if unicode.IsPunct(r) {
		return -1
	}
	return r
}
