package tasks

import (
	"strings"
	"unicode/utf8"
)

// isDelimiter reports whether r separates words. Only space and tab count;
// other whitespace is part of a word.
func isDelimiter(r rune) bool {
	return r == ' ' || r == '\t'
}

// trimLineEnding removes a single trailing "\n" or "\r\n". A carriage
// return anywhere else is an ordinary character.
func trimLineEnding(s string) string {
	if !strings.HasSuffix(s, "\n") {
		return s
	}
	return strings.TrimSuffix(s[:len(s)-1], "\r")
}

// Words splits a sentence into its words. The trailing line terminator is
// dropped first, then runs of spaces and tabs act as separators.
func Words(sentence string) []string {
	return strings.FieldsFunc(trimLineEnding(sentence), isDelimiter)
}

// LongestEvenWord returns the longest word whose character count is even.
// A word only replaces the current best when it is strictly longer, so the
// first of several equally long words wins. ok is false when no word has an
// even length.
func LongestEvenWord(sentence string) (word string, ok bool) {
	maxLen := 0
	for _, w := range Words(sentence) {
		n := utf8.RuneCountInString(w)
		if n%2 == 0 && n > maxLen {
			maxLen = n
			word = w
		}
	}
	return word, maxLen > 0
}
