package wordlist

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// SearchResult is returned by the Search method. It indicates the suffixes
// which could complete the input query to make it a valid word in the wordlist,
// including the empty string if an exact match was found.
type SearchResult struct {
	// ExactMatch is true if the input query is a valid word in the wordlist.
	// Indicates that the first element of the Suffixes field will be the empty string.
	//
	// Note that finding an exact match does not necessarily mean it is the only
	// possible word. Some words are prefixes of others ("car" and "cargo").
	ExactMatch bool

	// Suffixes is a set of suffix strings which can be appended to the original
	// input query to make it a valid word in the wordlist. Suffixes appear in
	// wordlist order.
	Suffixes []string
}

// Search scans the language's wordlist for any words which start with the
// given query string. This is useful for autocomplete and error correction.
//
// The query is normalized to NFKD form before matching, the same form in
// which the wordlists are stored. Matching is case-sensitive; wordlist
// words are all lower-case.
func (lang Language) Search(query string) *SearchResult {
	result := &SearchResult{Suffixes: []string{}}
	if query == "" {
		return result
	}
	query = norm.NFKD.String(query)

	for _, word := range lang.list().words {
		if strings.HasPrefix(word, query) {
			if word == query {
				result.ExactMatch = true
			}
			result.Suffixes = append(result.Suffixes, strings.TrimPrefix(word, query))
		}
	}
	return result
}
