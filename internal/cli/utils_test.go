package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hyperjump/hirescope/internal/models"
)

func sampleAnalysis() *models.AnalysisResult {
	return &models.AnalysisResult{
		ID:       "res-1",
		Filename: "resume.pdf",
		Score:    72.5,
		Breakdown: models.ScoreBreakdown{
			Keyword: 0.6, Semantic: 0.7, Structural: 0.8,
			Readability: 0.5, Tone: 0.4, Composite: 0.725,
			Role: models.RoleTech,
		},
		MatchedKeywords: []models.KeywordMatch{
			{Keyword: "go", Matched: true, MatchKind: "exact", Tier: "required"},
			{Keyword: "kubernetes", Matched: false, Tier: "required"},
		},
		MissingKeywords: []string{"kubernetes"},
		Insight:         "Good alignment overall.",
		Insights: []models.Insight{
			{Category: "keywords", Message: "Add kubernetes.", Severity: "high"},
		},
		Tips: []models.Tip{{Category: "skills", Text: "Group skills by category.", Score: 0.8}},
	}
}

func TestWriteAnalysisResult_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteAnalysisResult(&buf, sampleAnalysis(), OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"resume.pdf", "72.5", "TECH", "+ go", "kubernetes", "Good alignment overall.", "Group skills by category."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "+ kubernetes") {
		t.Error("unmatched keyword listed as matched")
	}
}

func TestWriteAnalysisResult_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteAnalysisResult(&buf, sampleAnalysis(), OutputJSON); err != nil {
		t.Fatal(err)
	}
	var decoded models.AnalysisResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.ID != "res-1" || decoded.Score != 72.5 {
		t.Errorf("decoded %+v", decoded)
	}
}

func TestWriteATSReport_Text(t *testing.T) {
	report := &models.ATSReport{
		Score: 85,
		Issues: []models.ATSIssue{
			{Code: "contact", Severity: "high", Message: "No email address found."},
		},
		Sections: []string{"experience", "education"},
		Statistics: models.ATSStatistics{
			WordCount: 250, LineCount: 40, EmailsFound: 0, PhonesFound: 1,
		},
	}
	var buf bytes.Buffer
	if err := WriteATSReport(&buf, report, OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"85 / 100", "[high] contact", "experience, education", "Words: 250"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteATSReport_NoIssues(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteATSReport(&buf, &models.ATSReport{Score: 100}, OutputText); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No issues found.") {
		t.Errorf("output: %s", buf.String())
	}
}

func TestWriteBatchResult_Text(t *testing.T) {
	result := &models.BatchResult{
		Entries: []models.BatchEntry{
			{Filename: "strong.txt", Status: models.StatusOK, Rank: 1, Score: 88},
			{Filename: "weak.txt", Status: models.StatusOK, Rank: 2, Score: 45.5},
			{Filename: "bad.xlsx", Status: models.StatusError, Error: "unsupported file type"},
		},
		Stats: models.BatchStats{Successful: 2, Failed: 1, Average: 66.75, Highest: 88, Lowest: 45.5},
	}
	var buf bytes.Buffer
	if err := WriteBatchResult(&buf, result, OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"strong.txt", "weak.txt", "FAILED: unsupported file type", "Average: 66.8"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteLiveResult_Text(t *testing.T) {
	resp := &models.LiveAnalyzeResponse{
		Score:     61,
		Breakdown: models.ScoreBreakdown{Role: models.RoleGeneral},
		Sections:  []string{"experience", "skills"},
		WordCount: 120,
		Insight:   "Solid foundation.",
	}
	var buf bytes.Buffer
	if err := WriteLiveResult(&buf, resp, OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"61.0 / 100", "120 words", "experience, skills", "Solid foundation."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
