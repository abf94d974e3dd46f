package models

import (
	"fmt"
	"strings"
)

// MinJobDescriptionLen is the minimum job description length accepted
// by full analysis endpoints.
const MinJobDescriptionLen = 50

// MinLiveTextLen is the minimum resume text length for live analysis.
const MinLiveTextLen = 20

// LiveAnalyzeRequest is the payload for incremental in-editor analysis.
type LiveAnalyzeRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description,omitempty"`
}

// Validate checks field lengths and trims whitespace in place.
func (r *LiveAnalyzeRequest) Validate() error {
	r.ResumeText = strings.TrimSpace(r.ResumeText)
	r.JobDescription = strings.TrimSpace(r.JobDescription)
	if len(r.ResumeText) < MinLiveTextLen {
		return fmt.Errorf("resume text must be at least %d characters", MinLiveTextLen)
	}
	return nil
}

// LiveAnalyzeResponse is the lightweight result for live analysis.
type LiveAnalyzeResponse struct {
	Score           float64        `json:"score"`
	Breakdown       ScoreBreakdown `json:"breakdown"`
	MatchedKeywords []KeywordMatch `json:"matched_keywords,omitempty"`
	MissingKeywords []string       `json:"missing_keywords,omitempty"`
	Sections        []string       `json:"sections,omitempty"`
	WordCount       int            `json:"word_count"`
	Insight         string         `json:"insight,omitempty"`
	Tips            []Tip          `json:"tips,omitempty"`
}

// TemplateRequest selects an industry resume template.
type TemplateRequest struct {
	Industry string `json:"industry"`
	Name     string `json:"name,omitempty"`
	Title    string `json:"title,omitempty"`
}

// Validate normalizes the industry and rejects unknown values.
func (r *TemplateRequest) Validate() error {
	r.Industry = strings.ToLower(strings.TrimSpace(r.Industry))
	switch r.Industry {
	case "tech", "finance", "healthcare", "marketing":
		return nil
	case "":
		return fmt.Errorf("industry is required")
	default:
		return fmt.Errorf("unknown industry %q", r.Industry)
	}
}

// ErrorResponse is the JSON error envelope for all endpoints.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}
