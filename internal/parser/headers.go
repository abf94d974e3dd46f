package parser

import (
	"strings"
	"unicode"
)

// referenceSections are the canonical section names every candidate
// header is embedded against. A header is accepted when its best
// similarity to one of these meets the configured threshold.
var referenceSections = []string{
	"summary",
	"objective",
	"experience",
	"work history",
	"education",
	"skills",
	"projects",
	"certifications",
	"awards",
	"publications",
	"languages",
	"volunteer work",
}

// canonicalName maps a reference phrase to the canonical section header.
var canonicalName = map[string]string{
	"summary":        "summary",
	"objective":      "summary",
	"experience":     "experience",
	"work history":   "experience",
	"education":      "education",
	"skills":         "skills",
	"projects":       "projects",
	"certifications": "certifications",
	"awards":         "awards",
	"publications":   "publications",
	"languages":      "languages",
	"volunteer work": "volunteer",
}

const (
	maxHeaderWords = 5
	maxHeaderChars = 60
)

var bulletPrefixes = []string{"-", "*", "•", "●", "◆", "■", "▪", "→", "»", "★", "✓"}

// looksLikeHeader reports whether a line is shaped like a section
// header: short, not a bullet, not a sentence, and either title-cased,
// upper-cased, or ending with a colon.
func looksLikeHeader(line string) bool {
	t := strings.TrimSpace(line)
	if t == "" || len(t) > maxHeaderChars {
		return false
	}
	for _, b := range bulletPrefixes {
		if strings.HasPrefix(t, b) {
			return false
		}
	}
	if strings.HasSuffix(t, ".") || strings.HasSuffix(t, ",") {
		return false
	}
	words := strings.Fields(t)
	if len(words) == 0 || len(words) > maxHeaderWords {
		return false
	}
	if strings.HasSuffix(t, ":") {
		return true
	}
	return isUpperCase(t) || isTitleCase(words)
}

func isUpperCase(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func isTitleCase(words []string) bool {
	for _, w := range words {
		r := []rune(w)[0]
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// normalizeHeader strips trailing colons and lowercases for embedding.
func normalizeHeader(line string) string {
	t := strings.TrimSpace(line)
	t = strings.TrimSuffix(t, ":")
	return strings.ToLower(strings.TrimSpace(t))
}
