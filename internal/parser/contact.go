package parser

import (
	"regexp"
	"strings"

	"github.com/hyperjump/hirescope/internal/models"
)

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe = regexp.MustCompile(`\+?\(?\d{1,4}\)?[-.\s]?\d{2,4}[-.\s]?\d{3,4}(?:[-.\s]?\d{2,4})?`)
	urlRe   = regexp.MustCompile(`(?:https?://)?(?:www\.)?[a-zA-Z0-9][-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z]{2,6}\b[-a-zA-Z0-9@:%_+.~#?&/=]*`)
)

// platformDomains maps URL host substrings to the platform label
// reported in contact entries.
var platformDomains = []struct {
	domain   string
	platform string
}{
	{"github.com", "github"},
	{"gitlab.com", "gitlab"},
	{"bitbucket.org", "bitbucket"},
	{"linkedin.com", "linkedin"},
	{"twitter.com", "twitter"},
	{"x.com", "twitter"},
	{"stackoverflow.com", "stackoverflow"},
	{"medium.com", "medium"},
	{"dev.to", "devto"},
	{"kaggle.com", "kaggle"},
	{"leetcode.com", "leetcode"},
	{"hackerrank.com", "hackerrank"},
	{"behance.net", "behance"},
	{"dribbble.com", "dribbble"},
	{"youtube.com", "youtube"},
	{"facebook.com", "facebook"},
	{"instagram.com", "instagram"},
}

// ExtractContacts finds emails, phone numbers, and URLs in text.
// Values are deduplicated case-insensitively after stripping URL scheme
// and trailing slashes, so http://GitHub.com/x and github.com/x/ count once.
func ExtractContacts(text string) []models.ContactEntry {
	var out []models.ContactEntry
	seen := make(map[string]bool)

	add := func(kind, value, platform string) {
		key := kind + "|" + normalizeContactValue(value)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, models.ContactEntry{Kind: kind, Value: value, Platform: platform})
	}

	for _, m := range emailRe.FindAllString(text, -1) {
		add("email", m, "")
	}

	// Mask emails before URL matching so user@host.com does not double
	// as a URL hit.
	masked := emailRe.ReplaceAllString(text, " ")
	for _, m := range urlRe.FindAllString(masked, -1) {
		if !strings.Contains(m, ".") {
			continue
		}
		add("url", m, identifyPlatform(m))
	}

	for _, m := range phoneRe.FindAllString(masked, -1) {
		if countDigits(m) < 9 {
			continue
		}
		add("phone", strings.TrimSpace(m), "")
	}

	return out
}

// identifyPlatform returns the platform label for a URL, or "Website"
// when the host is not one of the recognized platforms.
func identifyPlatform(url string) string {
	u := strings.ToLower(url)
	for _, p := range platformDomains {
		if strings.Contains(u, p.domain) {
			return p.platform
		}
	}
	return "Website"
}

func normalizeContactValue(v string) string {
	s := strings.ToLower(strings.TrimSpace(v))
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "www.")
	return strings.TrimRight(s, "/")
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
