package batch

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/hyperjump/hirescope/internal/models"
)

// exportHeader is the column layout of the comparison sheet.
var exportHeader = []interface{}{
	"Rank", "Filename", "Status", "Score",
	"Keyword", "Semantic", "Structural", "Readability", "Tone",
	"Role", "Missing Keywords", "Error",
}

const exportSheet = "Comparison"

// WriteXLSX renders a batch result as a spreadsheet: one row per
// entry in ranked order, followed by a summary block.
func WriteXLSX(result *models.BatchResult, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", exportSheet)
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	row := 2
	for _, entry := range result.Entries {
		cells := entryRow(entry)
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(exportSheet, cell, &cells); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
		row++
	}

	row++ // blank separator
	summary := [][]interface{}{
		{"Successful", result.Stats.Successful},
		{"Failed", result.Stats.Failed},
		{"Average Score", result.Stats.Average},
		{"Highest Score", result.Stats.Highest},
		{"Lowest Score", result.Stats.Lowest},
	}
	for _, line := range summary {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(exportSheet, cell, &line); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
		row++
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func entryRow(entry models.BatchEntry) []interface{} {
	if entry.Status != models.StatusOK || entry.Result == nil {
		return []interface{}{
			"", entry.Filename, entry.Status, entry.Score,
			"", "", "", "", "", "", "", entry.Error,
		}
	}
	b := entry.Result.Breakdown
	missing := ""
	for i, kw := range entry.Result.MissingKeywords {
		if i > 0 {
			missing += ", "
		}
		missing += kw
	}
	return []interface{}{
		entry.Rank, entry.Filename, entry.Status, entry.Score,
		b.Keyword, b.Semantic, b.Structural, b.Readability, b.Tone,
		b.Role, missing, "",
	}
}
