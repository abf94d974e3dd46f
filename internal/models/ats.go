package models

// ATS issue severities and their score penalties.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// ATSIssue is one parseability problem found by the ATS simulator.
type ATSIssue struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Detail   string `json:"detail,omitempty"`
}

// ATSStatistics summarizes the document as an ATS parser would see it.
type ATSStatistics struct {
	CharCount    int `json:"total_characters"`
	LineCount    int `json:"total_lines"`
	WordCount    int `json:"total_words"`
	EmailsFound  int `json:"emails_found"`
	PhonesFound  int `json:"phones_found"`
	URLsFound    int `json:"urls_found"`
	SectionCount int `json:"sections_detected"`
}

// ATSReport is the deterministic result of simulating an ATS parse.
// Score starts at 100 and loses points per issue severity, clamped to [0, 100].
type ATSReport struct {
	Score        int            `json:"score"`
	Issues       []ATSIssue     `json:"issues"`
	Statistics   ATSStatistics  `json:"statistics"`
	Sections     []string       `json:"detected_sections"`
	Contacts     []ContactEntry `json:"contacts"`
	OriginalText string         `json:"original_text,omitempty"`
	CleanText    string         `json:"ats_parsed_text,omitempty"`
}
