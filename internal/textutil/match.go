package textutil

import (
	"regexp"
	"strings"
)

var tokenSplitPattern = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Tokenize splits text into lowercase letter/digit runs.
func Tokenize(text string) []string {
	raw := tokenSplitPattern.Split(strings.ToLower(text), -1)
	terms := make([]string, 0, len(raw))
	for _, token := range raw {
		if token == "" {
			continue
		}
		terms = append(terms, token)
	}
	return terms
}

// MatchesTerms reports whether every token of query is a prefix of some
// token in text. An empty query matches everything.
func MatchesTerms(text, query string) bool {
	want := Tokenize(query)
	if len(want) == 0 {
		return true
	}
	have := Tokenize(text)
	for _, term := range want {
		found := false
		for _, token := range have {
			if strings.HasPrefix(token, term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
