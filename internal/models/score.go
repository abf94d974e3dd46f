package models

import "time"

// Role categories used to pick composite score weights.
const (
	RoleTech     = "TECH"
	RoleManager  = "MANAGER"
	RoleCreative = "CREATIVE"
	RoleGeneral  = "GENERAL"
)

// Keyword match requirement tiers, derived from how the job description
// introduces a requirement.
const (
	TierRequired  = "required"
	TierPreferred = "preferred"
	TierBonus     = "bonus"
)

// KeywordMatch records how a single job-description keyword matched
// against the resume text.
type KeywordMatch struct {
	Keyword   string  `json:"keyword"`
	Matched   bool    `json:"matched"`
	MatchKind string  `json:"match_kind,omitempty"` // "exact", "substring", "plural", "semantic"
	Score     float64 `json:"score"`
	Tier      string  `json:"tier"`
}

// ScoreBreakdown holds the per-dimension sub-scores and the weighted
// composite. All values are in [0, 1]; Composite is scaled to [0, 100]
// for presentation by the caller.
type ScoreBreakdown struct {
	Keyword     float64 `json:"keyword"`
	Semantic    float64 `json:"semantic"`
	Structural  float64 `json:"structural"`
	Readability float64 `json:"readability"`
	Tone        float64 `json:"tone"`
	Weighted    float64 `json:"weighted_match"`
	Composite   float64 `json:"composite"`
	Role        string  `json:"role"`
}

// Insight is one actionable suggestion attached to an analysis result.
type Insight struct {
	Category string `json:"category"`
	Message  string `json:"message"`
	Severity string `json:"severity"` // "high", "medium", "low"
}

// HeatmapEntry is one resume sentence with its similarity to the job
// description, used to highlight the strongest and weakest passages.
type HeatmapEntry struct {
	Sentence string  `json:"sentence"`
	Score    float64 `json:"score"`
}

// AnalysisResult is the full outcome of scoring one resume against one
// job description.
type AnalysisResult struct {
	ID              string         `json:"id,omitempty"`
	Filename        string         `json:"filename,omitempty"`
	Score           float64        `json:"score"` // composite, 0-100
	Breakdown       ScoreBreakdown `json:"breakdown"`
	MatchedKeywords []KeywordMatch `json:"matched_keywords"`
	MissingKeywords []string       `json:"missing_keywords"`
	Sections        []Section      `json:"sections"`
	Contacts        []ContactEntry `json:"contacts"`
	Heatmap         []HeatmapEntry `json:"heatmap,omitempty"`
	Insight         string         `json:"insight,omitempty"`
	Insights        []Insight      `json:"insights,omitempty"`
	Tips            []Tip          `json:"tips,omitempty"`
	Degraded        bool           `json:"degraded,omitempty"`
	Warnings        []string       `json:"warnings,omitempty"`
}

// AnalysisSummary is the listing view of a stored analysis result.
type AnalysisSummary struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	Score     float64   `json:"score"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Tip is an improvement suggestion retrieved from the tips knowledge base.
type Tip struct {
	Category string  `json:"category"`
	Text     string  `json:"text"`
	Score    float64 `json:"score"`
}
