// Package tokenizer turns raw text into the filtered token stream that feeds
// frequency ranking. Order and multiplicity of surviving tokens are preserved.
package tokenizer

import (
	"unicode"

	"zipfstat/pkg/stopwords"
)

// Tokenize lowercases the text, extracts maximal runs of letters and digits
// (any script; punctuation and whitespace always separate), and filters the
// candidates. A candidate is discarded when any of these hold:
//
//   - it is in the stopword set;
//   - it consists entirely of digits;
//   - it is a single character;
//   - it is 2-3 characters long and does not start with a Cyrillic letter
//     (short Latin tokens in this corpus are technical abbreviations, while
//     short Cyrillic words are real words worth keeping).
//
// An empty result is valid: the caller decides what an empty document means.
func Tokenize(text string, stop stopwords.Set) []string {
	var tokens []string
	current := make([]rune, 0, 32)

	flush := func() {
		if len(current) > 0 && keep(current, stop) {
			tokens = append(tokens, string(current))
		}
		current = current[:0]
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current = append(current, unicode.ToLower(r))
			continue
		}
		flush()
	}
	flush()

	return tokens
}

func keep(word []rune, stop stopwords.Set) bool {
	if stop.Contains(string(word)) {
		return false
	}
	if allDigits(word) {
		return false
	}
	if len(word) == 1 {
		return false
	}
	if len(word) <= 3 && !unicode.Is(unicode.Cyrillic, word[0]) {
		return false
	}
	return true
}

func allDigits(word []rune) bool {
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
