package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/hyperjump/hirescope/internal/models"
)

// extractPDFText extracts text from PDF bytes page by page, recording
// the page number on every extracted line.
func extractPDFText(ctx context.Context, content []byte) (*models.ExtractedText, error) {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("open PDF: %w", err)
	}

	out := &models.ExtractedText{Source: "pdf"}
	var buf bytes.Buffer
	numPages := r.NumPage()
	out.PageCount = numPages
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extract page %d: %w", i, err)
		}
		para := len(out.Lines)
		for _, l := range strings.Split(text, "\n") {
			t := strings.TrimRight(l, " \t\r")
			if strings.TrimSpace(t) == "" {
				continue
			}
			out.Lines = append(out.Lines, models.Line{Text: t, Page: i, Paragraph: para})
			para++
		}
		buf.WriteString(text)
		if i < numPages {
			buf.WriteByte('\n')
		}
	}
	out.Text = buf.String()
	return out, nil
}
