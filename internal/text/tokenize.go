// Package text splits message bodies into words and emoji for the
// frequency tables. All functions are pure; callers own the inputs.
package text

import (
	"strings"
	"unicode"
)

// Tokenize splits a message body into lowercased words. Every rune that
// is not a letter or digit acts as a separator, so punctuation, emoji
// and underscores never leak into word tokens. Empty tokens are dropped.
func Tokenize(body string) []string {
	var strBuilder strings.Builder

	var words []string

	flush := func() {
		if strBuilder.Len() > 0 {
			words = append(words, strBuilder.String())
			strBuilder.Reset()
		}
	}

	for _, r := range body {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			strBuilder.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
	}

	flush()

	return words
}

// FilterStopWords returns the words not present in stopSet. The stop set
// is expected to be lowercased already, matching Tokenize output.
func FilterStopWords(words []string, stopSet map[string]struct{}) []string {
	if len(stopSet) == 0 {
		return words
	}

	kept := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := stopSet[w]; !ok {
			kept = append(kept, w)
		}
	}

	return kept
}

// CountBadWords counts word occurrences matching badSet. Occurrences,
// not distinct words: "damn damn" counts twice.
func CountBadWords(words []string, badSet map[string]struct{}) int {
	if len(badSet) == 0 {
		return 0
	}

	n := 0
	for _, w := range words {
		if _, ok := badSet[w]; ok {
			n++
		}
	}

	return n
}
