package ats

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/hyperjump/hirescope/internal/models"
	"github.com/hyperjump/hirescope/internal/parser"
)

// Penalty applied per issue severity when computing the score.
const (
	penaltyHigh   = 15
	penaltyMedium = 8
	penaltyLow    = 3
)

const (
	specialCharLimit = 20
	pipeLimit        = 5
	tabLimit         = 10
	shortLineLimit   = 5
	bulletStyleLimit = 2
	minTextChars     = 200
	minSectionCount  = 3
)

var (
	specialCharRe = regexp.MustCompile(`[^\p{L}\p{N}_\s\-.,@()\[\]:/;'"!?#%&+=<>|]`)
	emailRe       = regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`)
	phoneRe       = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	urlRe         = regexp.MustCompile(`https?://\S+|www\.\S+`)

	bulletGlyphs = []string{"•", "●", "◆", "■", "▪", "→", "»", "★", "✓"}
	bulletRe     = regexp.MustCompile(`[•●◆■▪→»★✓]`)
	blankRunRe   = regexp.MustCompile(`\n{3,}`)
	spaceRunRe   = regexp.MustCompile(` {2,}`)
)

// standardSections are the headers most applicant tracking systems key on.
// Variants sharing a first word count as one section.
var standardSections = []string{
	"summary", "objective", "profile",
	"experience", "work experience", "work history", "employment",
	"education", "academic background",
	"skills", "technical skills", "core competencies",
	"projects", "certifications", "licenses",
	"awards", "honors", "achievements",
	"publications", "languages", "interests",
	"volunteer", "volunteering", "references",
	"training", "courses", "activities", "leadership",
}

var sectionRes = compileSectionRes()

func compileSectionRes() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(standardSections))
	for i, header := range standardSections {
		res[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(header) + `\b`)
	}
	return res
}

// Simulator runs a resume through the checks a typical applicant
// tracking system applies before any human sees the document.
type Simulator struct {
	logger *zap.Logger
}

func NewSimulator(logger *zap.Logger) *Simulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulator{logger: logger}
}

// Simulate inspects raw resume text and reports parsing hazards, a
// 0-100 friendliness score, and a cleaned version of the text.
func (s *Simulator) Simulate(text string) *models.ATSReport {
	issues := s.collectIssues(text)

	score := 100
	for _, is := range issues {
		switch is.Severity {
		case models.SeverityHigh:
			score -= penaltyHigh
		case models.SeverityMedium:
			score -= penaltyMedium
		case models.SeverityLow:
			score -= penaltyLow
		}
	}
	if score < 0 {
		score = 0
	}

	sections := detectSections(text)
	report := &models.ATSReport{
		Score:        score,
		Issues:       issues,
		Statistics:   buildStatistics(text, sections),
		Sections:     sections,
		Contacts:     parser.ExtractContacts(text),
		OriginalText: text,
		CleanText:    CleanText(text),
	}

	s.logger.Debug("ats simulation complete",
		zap.Int("score", report.Score),
		zap.Int("issues", len(report.Issues)))
	return report
}

// collectIssues runs every check in a fixed order so reports are
// deterministic for identical input.
func (s *Simulator) collectIssues(text string) []models.ATSIssue {
	issues := []models.ATSIssue{}

	if offenders := specialCharRe.FindAllString(text, -1); len(offenders) > 0 {
		severity := models.SeverityLow
		if len(offenders) > specialCharLimit {
			severity = models.SeverityMedium
		}
		issues = append(issues, models.ATSIssue{
			Code:     "special_characters",
			Severity: severity,
			Message:  "Unusual characters may confuse resume parsers",
			Detail:   "Replace these with plain text equivalents: " + uniqueChars(offenders),
		})
	}

	if strings.Count(text, "|") > pipeLimit || strings.Count(text, "\t") > tabLimit {
		issues = append(issues, models.ATSIssue{
			Code:     "formatting",
			Severity: models.SeverityHigh,
			Message:  "Pipe or tab characters suggest a table layout",
			Detail:   "Tables rarely survive automated parsing, use plain lines",
		})
	}

	if countShortLines(text) > shortLineLimit {
		issues = append(issues, models.ATSIssue{
			Code:     "formatting",
			Severity: models.SeverityMedium,
			Message:  "Many very short lines suggest multi-column or table layout",
			Detail:   "Use a single-column layout without tables or text boxes",
		})
	}

	if countBulletStyles(text) > bulletStyleLimit {
		issues = append(issues, models.ATSIssue{
			Code:     "bullets",
			Severity: models.SeverityLow,
			Message:  "Mixed bullet styles detected",
			Detail:   "Use one consistent bullet character throughout",
		})
	}

	if urlRe.MatchString(text) {
		issues = append(issues, models.ATSIssue{
			Code:     "urls",
			Severity: models.SeverityLow,
			Message:  "Raw URLs found in the document",
			Detail:   "Some parsers truncate or garble long URLs",
		})
	}

	if !emailRe.MatchString(text) {
		issues = append(issues, models.ATSIssue{
			Code:     "contact",
			Severity: models.SeverityHigh,
			Message:  "No email address found",
			Detail:   "Recruiters cannot reach a candidate without an email",
		})
	}
	if !phoneRe.MatchString(text) {
		issues = append(issues, models.ATSIssue{
			Code:     "contact",
			Severity: models.SeverityMedium,
			Message:  "No phone number found",
		})
	}

	if len(strings.TrimSpace(text)) < minTextChars {
		issues = append(issues, models.ATSIssue{
			Code:     "parsing",
			Severity: models.SeverityHigh,
			Message:  "Very little text could be extracted",
			Detail:   "The document may be image-based or heavily formatted",
		})
	}

	if len(detectSections(text)) < minSectionCount {
		issues = append(issues, models.ATSIssue{
			Code:     "structure",
			Severity: models.SeverityMedium,
			Message:  "Few standard section headers detected",
			Detail:   "Use conventional headers such as Experience, Education and Skills",
		})
	}

	return issues
}

// uniqueChars lists each distinct offending character once, in order
// of first appearance.
func uniqueChars(offenders []string) string {
	seen := map[string]bool{}
	var b strings.Builder
	for _, c := range offenders {
		if seen[c] {
			continue
		}
		seen[c] = true
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c)
	}
	return b.String()
}

func countShortLines(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && len(trimmed) < 5 {
			n++
		}
	}
	return n
}

func countBulletStyles(text string) int {
	n := 0
	for _, glyph := range bulletGlyphs {
		if strings.Contains(text, glyph) {
			n++
		}
	}
	return n
}

// detectSections returns the standard headers present in the text,
// deduplicated by their leading word so "work experience" and
// "work history" count once.
func detectSections(text string) []string {
	lowered := strings.ToLower(text)
	seen := map[string]bool{}
	var found []string
	for i, header := range standardSections {
		if !sectionRes[i].MatchString(lowered) {
			continue
		}
		base := strings.Fields(header)[0]
		if seen[base] {
			continue
		}
		seen[base] = true
		found = append(found, header)
	}
	return found
}

func buildStatistics(text string, sections []string) models.ATSStatistics {
	lines := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines++
		}
	}
	return models.ATSStatistics{
		CharCount:    len(text),
		LineCount:    lines,
		WordCount:    len(strings.Fields(text)),
		EmailsFound:  len(emailRe.FindAllString(text, -1)),
		PhonesFound:  len(phoneRe.FindAllString(text, -1)),
		URLsFound:    len(urlRe.FindAllString(text, -1)),
		SectionCount: len(sections),
	}
}

// CleanText rewrites the document into a form plain-text parsers
// handle well: uniform dashes for bullets, no runs of blank lines,
// single spaces.
func CleanText(text string) string {
	out := bulletRe.ReplaceAllString(text, "-")
	out = blankRunRe.ReplaceAllString(out, "\n\n")
	out = spaceRunRe.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}
