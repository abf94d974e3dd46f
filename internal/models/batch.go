package models

// Batch entry statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BatchEntry is the per-file outcome of a batch analysis. A failed file
// carries Status "error" and an Error message; its Result is nil and it
// receives no rank.
type BatchEntry struct {
	Filename string          `json:"filename"`
	Status   string          `json:"status"`
	Rank     int             `json:"rank,omitempty"` // 1-based over successful entries
	Score    float64         `json:"score,omitempty"`
	Result   *AnalysisResult `json:"result,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// BatchStats aggregates scores across successful entries.
type BatchStats struct {
	Successful int     `json:"successful"`
	Failed     int     `json:"failed"`
	Average    float64 `json:"average_score"`
	Highest    float64 `json:"highest_score"`
	Lowest     float64 `json:"lowest_score"`
}

// BatchResult is the ranked outcome of analyzing several resumes
// against one job description.
type BatchResult struct {
	Entries []BatchEntry `json:"entries"`
	Stats   BatchStats   `json:"stats"`
}
