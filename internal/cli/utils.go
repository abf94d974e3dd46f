// Package cli provides CLI output formatting for HireScope.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hyperjump/hirescope/internal/models"
	"github.com/hyperjump/hirescope/pkg/utils"
)

// OutputFormat is the format for CLI result output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteAnalysisResult writes one analysis result to w in the given format.
func WriteAnalysisResult(w io.Writer, result *models.AnalysisResult, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, result)
	}
	fmt.Fprintf(w, "\n%s\n", result.Filename)
	fmt.Fprintf(w, "Score: %.1f / 100   (role: %s)\n\n", result.Score, result.Breakdown.Role)
	writeBreakdown(w, result.Breakdown)
	if len(result.MatchedKeywords) > 0 {
		fmt.Fprintf(w, "\nMatched keywords (%d):\n", countMatched(result.MatchedKeywords))
		for _, m := range result.MatchedKeywords {
			if !m.Matched {
				continue
			}
			fmt.Fprintf(w, "  + %s (%s, %s)\n", m.Keyword, m.Tier, m.MatchKind)
		}
	}
	if len(result.MissingKeywords) > 0 {
		fmt.Fprintf(w, "\nMissing keywords: %s\n", strings.Join(result.MissingKeywords, ", "))
	}
	if result.Insight != "" {
		fmt.Fprintf(w, "\n%s\n", result.Insight)
	}
	for _, ins := range result.Insights {
		fmt.Fprintf(w, "  [%s] %s: %s\n", ins.Severity, ins.Category, ins.Message)
	}
	if len(result.Tips) > 0 {
		fmt.Fprintln(w, "\nTips:")
		for _, tip := range result.Tips {
			fmt.Fprintf(w, "  - %s\n", tip.Text)
		}
	}
	if result.Degraded {
		fmt.Fprintln(w, "\nNote: result is degraded (missing job description or partial extraction).")
	}
	for _, warn := range result.Warnings {
		fmt.Fprintf(w, "Warning: %s\n", warn)
	}
	return nil
}

// WriteLiveResult writes a live analysis response, compact enough to
// re-print on every file change in watch mode.
func WriteLiveResult(w io.Writer, resp *models.LiveAnalyzeResponse, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, resp)
	}
	fmt.Fprintf(w, "\nScore: %.1f / 100   (%d words, role: %s)\n", resp.Score, resp.WordCount, resp.Breakdown.Role)
	writeBreakdown(w, resp.Breakdown)
	if len(resp.Sections) > 0 {
		fmt.Fprintf(w, "Sections: %s\n", strings.Join(resp.Sections, ", "))
	}
	if len(resp.MissingKeywords) > 0 {
		fmt.Fprintf(w, "Missing: %s\n", strings.Join(resp.MissingKeywords, ", "))
	}
	if resp.Insight != "" {
		fmt.Fprintf(w, "%s\n", resp.Insight)
	}
	for _, tip := range resp.Tips {
		fmt.Fprintf(w, "  - %s\n", tip.Text)
	}
	return nil
}

// WriteATSReport writes an ATS simulation report to w.
func WriteATSReport(w io.Writer, report *models.ATSReport, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, report)
	}
	fmt.Fprintf(w, "\nATS compatibility: %d / 100\n", report.Score)
	if len(report.Issues) == 0 {
		fmt.Fprintln(w, "No issues found.")
	} else {
		fmt.Fprintf(w, "\nIssues (%d):\n", len(report.Issues))
		for _, issue := range report.Issues {
			fmt.Fprintf(w, "  [%s] %s: %s\n", issue.Severity, issue.Code, issue.Message)
			if issue.Detail != "" {
				fmt.Fprintf(w, "         %s\n", issue.Detail)
			}
		}
	}
	if len(report.Sections) > 0 {
		fmt.Fprintf(w, "\nDetected sections: %s\n", strings.Join(report.Sections, ", "))
	}
	stats := report.Statistics
	fmt.Fprintf(w, "Words: %d, lines: %d, emails: %d, phones: %d, urls: %d\n",
		stats.WordCount, stats.LineCount, stats.EmailsFound, stats.PhonesFound, stats.URLsFound)
	return nil
}

// WriteBatchResult writes a ranked batch comparison to w.
func WriteBatchResult(w io.Writer, result *models.BatchResult, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, result)
	}
	fmt.Fprintf(w, "\nRanked %d resume(s): %d analyzed, %d failed\n\n",
		len(result.Entries), result.Stats.Successful, result.Stats.Failed)
	for _, entry := range result.Entries {
		if entry.Status != models.StatusOK {
			fmt.Fprintf(w, "   -  %-30s FAILED: %s\n", utils.Truncate(entry.Filename, 30), entry.Error)
			continue
		}
		fmt.Fprintf(w, "  %2d. %-30s %6.1f\n", entry.Rank, utils.Truncate(entry.Filename, 30), entry.Score)
	}
	if result.Stats.Successful > 0 {
		fmt.Fprintf(w, "\nAverage: %.1f   Highest: %.1f   Lowest: %.1f\n",
			result.Stats.Average, result.Stats.Highest, result.Stats.Lowest)
	}
	return nil
}

func writeBreakdown(w io.Writer, b models.ScoreBreakdown) {
	fmt.Fprintf(w, "  keyword:     %5.2f\n", b.Keyword)
	fmt.Fprintf(w, "  semantic:    %5.2f\n", b.Semantic)
	fmt.Fprintf(w, "  structural:  %5.2f\n", b.Structural)
	fmt.Fprintf(w, "  readability: %5.2f\n", b.Readability)
	fmt.Fprintf(w, "  tone:        %5.2f\n", b.Tone)
}

func countMatched(matches []models.KeywordMatch) int {
	n := 0
	for _, m := range matches {
		if m.Matched {
			n++
		}
	}
	return n
}
