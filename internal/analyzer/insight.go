package analyzer

import (
	"strings"

	"github.com/hyperjump/hirescope/internal/models"
)

// GenerateInsight produces the one-line verdict shown at the top of a
// result: overall strength plus the single most valuable next step.
func GenerateInsight(b models.ScoreBreakdown) string {
	var strength string
	switch {
	case b.Composite > 0.75:
		strength = "Strong match overall. Your resume is well-structured and relevant."
	case b.Composite > 0.5:
		strength = "Moderate fit. A few targeted improvements will significantly increase match."
	default:
		strength = "Needs improvement. Focus on key areas below to boost your match rate."
	}

	suggestion := "Resume looks well-aligned, consider adding metrics to projects to increase impact."
	switch {
	case b.Keyword < 0.5:
		suggestion = "Include more role-specific keywords from the job description (technologies, tools)."
	case b.Semantic < 0.5:
		suggestion = "Make project outcomes more explicit and align phrasing to the job description."
	case b.Structural < 0.66:
		suggestion = "Add or restructure Experience/Education/Skills sections clearly."
	case b.Tone < 0.4:
		suggestion = "Use more action verbs and quantify impact (numbers, % growth, scale)."
	}

	return strength + " Recommendation: " + suggestion
}

// GenerateInsights turns sub-score weaknesses into structured,
// prioritized items. Ordering is severity-stable: high first.
func GenerateInsights(b models.ScoreBreakdown, missing []string) []models.Insight {
	var out []models.Insight

	if b.Keyword < 0.4 {
		msg := "Keyword match is low. Add job-specific keywords to your Skills section."
		if len(missing) > 0 {
			top := missing
			if len(top) > 5 {
				top = top[:5]
			}
			msg = "Keyword match is low. Add these high-priority keywords: " + strings.Join(top, ", ")
		}
		out = append(out, models.Insight{
			Category: "keywords",
			Message:  msg,
			Severity: "high",
		})
	}
	if b.Structural < 0.6 {
		out = append(out, models.Insight{
			Category: "structure",
			Message:  "Ensure clear section headings: Experience, Education, Skills, Contact.",
			Severity: "high",
		})
	}
	if b.Tone < 0.5 {
		out = append(out, models.Insight{
			Category: "tone",
			Message:  "Use more action verbs and quantify achievements with numbers.",
			Severity: "medium",
		})
	}
	if b.Semantic < 0.5 {
		out = append(out, models.Insight{
			Category: "alignment",
			Message:  "Mirror the language and terminology used in the job description.",
			Severity: "medium",
		})
	}
	if b.Readability < 0.5 {
		out = append(out, models.Insight{
			Category: "readability",
			Message:  "Break long sentences into shorter, punchier bullet points.",
			Severity: "low",
		})
	}
	if b.Composite > 0.6 {
		out = append(out, models.Insight{
			Category: "polish",
			Message:  "Include links to projects, GitHub, or a portfolio to stand out.",
			Severity: "low",
		})
	}

	return out
}
