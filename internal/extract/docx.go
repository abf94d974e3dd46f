package extract

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"github.com/hyperjump/hirescope/internal/models"
)

// wtTag matches <w:t>text</w:t> or <w:t xml:space="preserve">text</w:t> (and any other attributes).
var wtTag = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)

// paraEnd splits the document body into paragraphs.
var paraEnd = regexp.MustCompile(`</w:p>`)

// extractDOCX extracts text from .docx bytes. The docx package handles
// the OOXML zip layout and returns the main document XML; text runs are
// pulled from <w:t> nodes per paragraph so paragraph boundaries survive
// regardless of run attributes.
func extractDOCX(content []byte) (*models.ExtractedText, error) {
	r := bytes.NewReader(content)
	doc, err := docx.ReadDocxFromMemory(r, int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("open DOCX: %w", err)
	}
	defer doc.Close()

	body := doc.Editable().GetContent()
	out := &models.ExtractedText{Source: "docx", PageCount: 1}
	var b strings.Builder
	for i, para := range paraEnd.Split(body, -1) {
		runs := wtTag.FindAllStringSubmatch(para, -1)
		if len(runs) == 0 {
			continue
		}
		var line strings.Builder
		for _, run := range runs {
			line.WriteString(run[1])
		}
		t := strings.TrimSpace(line.String())
		if t == "" {
			continue
		}
		out.Lines = append(out.Lines, models.Line{Text: t, Page: 1, Paragraph: i})
		b.WriteString(t)
		b.WriteByte('\n')
	}
	out.Text = strings.TrimRight(b.String(), "\n")
	if out.Text == "" {
		return nil, fmt.Errorf("%w: DOCX body has no text runs", ErrNoText)
	}
	return out, nil
}
