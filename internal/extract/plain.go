package extract

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hyperjump/hirescope/internal/models"
)

// extractPlain returns content as text, validating it is valid UTF-8.
// Invalid UTF-8 sequences are replaced with the replacement character.
func extractPlain(content []byte) (*models.ExtractedText, error) {
	s := string(content)
	if !utf8.Valid(content) {
		s = strings.ToValidUTF8(s, "�")
	}
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: empty file", ErrNoText)
	}
	out := textToExtracted(s, "txt")
	out.PageCount = 1
	return out, nil
}
