package utils

import (
	"strings"
	"unicode"
)

// Truncate returns s truncated to maxLen characters, with "..." appended if truncated.
// If maxLen is 0 or negative, returns s unchanged.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// NormalizeWhitespace collapses runs of whitespace into single spaces
// and trims leading and trailing space.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitWords splits s into lowercase word tokens, treating any
// non-letter, non-digit rune as a separator.
func SplitWords(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// SplitSentences splits s on sentence-terminating punctuation and
// returns the non-empty trimmed fragments.
func SplitSentences(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// CountSyllables estimates the syllable count of an English word by
// counting vowel groups, with a silent-e adjustment. Returns at least 1
// for non-empty words.
func CountSyllables(word string) int {
	w := strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r)
	}))
	if w == "" {
		return 0
	}
	isVowel := func(r rune) bool {
		return strings.ContainsRune("aeiouy", r)
	}
	count := 0
	prev := false
	for _, r := range w {
		v := isVowel(r)
		if v && !prev {
			count++
		}
		prev = v
	}
	if strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}
