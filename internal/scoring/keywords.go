package scoring

import (
	"regexp"
	"sort"
	"strings"

	"github.com/hyperjump/hirescope/internal/models"
)

// MaxKeywords caps how many keywords are extracted from one job description.
const MaxKeywords = 35

// maxFreqRatio drops terms repeated in more than this share of the JD;
// anything that frequent is filler, not a skill.
const maxFreqRatio = 0.03

// Keyword is a job-description keyword with its requirement tier.
type Keyword struct {
	Text string
	Tier string
}

// Weight returns the tier's score weight.
func (k Keyword) Weight() float64 {
	switch k.Tier {
	case models.TierRequired:
		return 2.0
	case models.TierBonus:
		return 0.5
	default:
		return 1.0
	}
}

var tokenRe = regexp.MustCompile(`[a-z0-9+\-#.]{2,}`)

// requirement tier header patterns, checked per JD line.
var (
	requiredRe = regexp.MustCompile(`(?i)required\s+(skills|qualifications|experience)|must\s+have|requirements?:|essential\s+(skills|experience)|minimum\s+(qualifications|requirements)|we\s+require|mandatory`)
	preferRe   = regexp.MustCompile(`(?i)preferred\s+(skills|qualifications|experience)|nice\s+to\s+have|desired\s+(skills|qualifications)|plus(es)?:|ideally|advantageous|beneficial`)
	bonusRe    = regexp.MustCompile(`(?i)bonus\s+(points|skills)|extra\s+credit|additional\s+(skills|experience)|a\s+plus|would\s+be\s+(nice|great)|optional`)
)

// ExtractKeywords pulls up to MaxKeywords technical keywords out of a
// job description: known compound phrases first, then single tokens
// from the skill vocabulary, acronym list, or tech-looking shapes
// (version numbers, c++/c# style names). Overly frequent terms are
// dropped, and a keyword that is a substring of a longer kept keyword
// is considered redundant.
func ExtractKeywords(jdText string) []string {
	candidates := candidatePhrases(jdText)
	if len(candidates) == 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, c := range candidates {
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}

	totalWords := len(strings.Fields(jdText))
	maxFreq := int(float64(totalWords) * maxFreqRatio)
	if maxFreq < 1 {
		maxFreq = 1
	}

	var kept []string
	for _, c := range order {
		if counts[c] <= maxFreq {
			kept = append(kept, c)
		}
	}

	// Longer, more specific terms win; a shorter term that is contained
	// in a kept one is redundant.
	sort.SliceStable(kept, func(i, j int) bool {
		if len(kept[i]) != len(kept[j]) {
			return len(kept[i]) > len(kept[j])
		}
		return counts[kept[i]] > counts[kept[j]]
	})

	var final []string
	for _, c := range kept {
		redundant := false
		for _, existing := range final {
			if strings.Contains(existing, c) ||
				(strings.Contains(c, existing) && len(existing) >= len(c)*7/10) {
				redundant = true
				break
			}
		}
		if !redundant {
			final = append(final, c)
		}
	}

	if len(final) > MaxKeywords {
		final = final[:MaxKeywords]
	}
	return final
}

// ExtractWeightedKeywords splits the JD into requirement blocks by tier
// header lines, then extracts keywords per block so each keyword
// carries the tier of the block it first appeared in. Keywords outside
// any recognized block default to the preferred tier.
func ExtractWeightedKeywords(jdText string) []Keyword {
	blocks := splitRequirementBlocks(jdText)

	seen := make(map[string]bool)
	var out []Keyword
	for _, b := range blocks {
		for _, kw := range ExtractKeywords(b.text) {
			if seen[kw] {
				continue
			}
			seen[kw] = true
			out = append(out, Keyword{Text: kw, Tier: b.tier})
		}
	}
	if len(out) > MaxKeywords {
		out = out[:MaxKeywords]
	}
	return out
}

type requirementBlock struct {
	tier string
	text string
}

func splitRequirementBlocks(jdText string) []requirementBlock {
	var blocks []requirementBlock
	current := requirementBlock{tier: models.TierPreferred}
	var buf []string

	flush := func() {
		if len(buf) > 0 {
			current.text = strings.Join(buf, "\n")
			blocks = append(blocks, current)
			buf = nil
		}
	}

	for _, line := range strings.Split(jdText, "\n") {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		tier := tierForLine(t)
		if tier != "" {
			flush()
			current = requirementBlock{tier: tier}
		}
		buf = append(buf, line)
	}
	flush()
	return blocks
}

func tierForLine(line string) string {
	switch {
	case requiredRe.MatchString(line):
		return models.TierRequired
	case bonusRe.MatchString(line):
		return models.TierBonus
	case preferRe.MatchString(line):
		return models.TierPreferred
	default:
		return ""
	}
}

// candidatePhrases lists every keyword occurrence in text, in order,
// with duplicates preserved for frequency counting.
func candidatePhrases(text string) []string {
	lower := strings.ToLower(text)
	var candidates []string

	for _, compound := range compoundTerms {
		for n := strings.Count(lower, compound); n > 0; n-- {
			candidates = append(candidates, compound)
		}
	}

	tokens := tokenRe.FindAllString(lower, -1)
	for _, tok := range tokens {
		if stopwords[tok] || isAllDigits(tok) {
			continue
		}
		if technicalKeywords[tok] || technicalPatterns[tok] || looksTechnical(tok) {
			candidates = append(candidates, tok)
		}
	}

	// Bigrams where both halves are known technical terms.
	var words []string
	for _, tok := range tokens {
		if !stopwords[tok] && !isAllDigits(tok) {
			words = append(words, tok)
		}
	}
	for i := 0; i+1 < len(words); i++ {
		a, b := words[i], words[i+1]
		if (technicalKeywords[a] || technicalPatterns[a]) &&
			(technicalKeywords[b] || technicalPatterns[b]) {
			bigram := a + " " + b
			if !isCompoundTerm(bigram) {
				candidates = append(candidates, bigram)
			}
		}
	}
	return candidates
}

// looksTechnical accepts tokens shaped like technology names: version
// suffixes (python3), special characters (c++, scikit-learn), or
// common tech suffixes.
func looksTechnical(tok string) bool {
	hasDigit, hasAlpha := false, false
	for _, r := range tok {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'a' && r <= 'z':
			hasAlpha = true
		}
	}
	if hasDigit && hasAlpha {
		return true
	}
	if strings.ContainsAny(tok, "+#") {
		return true
	}
	for _, suffix := range []string{"js", "sql", "db", "ops"} {
		if strings.HasSuffix(tok, suffix) && len(tok) > len(suffix) {
			return true
		}
	}
	return false
}

func isCompoundTerm(s string) bool {
	for _, c := range compoundTerms {
		if c == s {
			return true
		}
	}
	return false
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
