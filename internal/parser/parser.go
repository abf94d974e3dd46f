// Package parser turns extracted resume text into labeled sections and
// contact entries. Candidate headers are validated against a bank of
// reference section embeddings so decorative lines do not start sections.
package parser

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/hyperjump/hirescope/internal/config"
	"github.com/hyperjump/hirescope/internal/embedding"
	"github.com/hyperjump/hirescope/internal/models"
	"github.com/hyperjump/hirescope/pkg/utils"
)

// HeaderSection is the implicit section holding lines that appear
// before the first recognized header (name, title, contact block).
const HeaderSection = "header"

// Parser detects resume sections using header heuristics plus
// embedding similarity against the reference bank.
type Parser struct {
	embedder  embedding.Embedder
	threshold float64
	mergeSim  float64
	logger    *zap.Logger

	initMu  sync.Mutex
	refVecs [][]float32
}

// NewParser returns a Parser using the given embedder and thresholds
// from cfg. The reference bank is embedded here, before the parser
// serves any request, so request deadlines never apply to it.
func NewParser(embedder embedding.Embedder, cfg config.AnalysisConfig, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Parser{
		embedder:  embedder,
		threshold: cfg.SectionThreshold,
		mergeSim:  cfg.SectionMerge,
		logger:    logger,
	}
	if err := p.init(context.Background()); err != nil {
		logger.Warn("reference bank not ready, will retry on first parse", zap.Error(err))
	}
	return p
}

// init embeds the reference bank. A failed attempt is not cached, so a
// later call retries instead of failing forever.
func (p *Parser) init(ctx context.Context) error {
	p.initMu.Lock()
	defer p.initMu.Unlock()
	if p.refVecs != nil {
		return nil
	}
	vecs, err := p.embedder.EmbedBatch(ctx, referenceSections)
	if err != nil {
		return fmt.Errorf("embed reference sections: %w", err)
	}
	p.refVecs = vecs
	return nil
}

// Parse splits extracted text into sections. Every line belongs to
// exactly one section; lines before the first accepted header form the
// implicit "header" section. A candidate line becomes a header when it
// looks like one and its embedding similarity to the closest reference
// section meets the threshold (inclusive). A new header whose canonical
// section matches the previous one, or whose similarity to the previous
// header's reference is at or above the merge threshold, extends the
// previous section instead of starting a new one.
func (p *Parser) Parse(ctx context.Context, extracted *models.ExtractedText) (*models.ParsedResume, error) {
	if err := p.init(ctx); err != nil {
		return nil, err
	}

	lines := extracted.Lines
	if len(lines) == 0 {
		lines = linesFromText(extracted.Text)
	}

	result := &models.ParsedResume{
		FullText: extracted.Text,
		Contacts: ExtractContacts(extracted.Text),
	}

	current := models.Section{Header: HeaderSection, RawHeader: "", StartLine: 0, Confidence: 1}
	var content []string
	flush := func(endLine int) {
		current.Content = strings.TrimSpace(strings.Join(content, "\n"))
		current.EndLine = endLine
		if current.Content != "" || current.Header != HeaderSection {
			result.Sections = append(result.Sections, current)
		}
		content = content[:0]
	}

	for i, line := range lines {
		if !looksLikeHeader(line.Text) {
			content = append(content, line.Text)
			continue
		}
		name, sim, err := p.matchHeader(ctx, line.Text)
		if err != nil {
			return nil, err
		}
		if sim < p.threshold {
			content = append(content, line.Text)
			continue
		}

		if name == current.Header {
			// Repeated header for the same section; keep accumulating.
			continue
		}
		if p.mergeableWithCurrent(ctx, name, current.Header) {
			continue
		}

		flush(i - 1)
		current = models.Section{
			Header:     name,
			RawHeader:  strings.TrimSpace(line.Text),
			StartLine:  i,
			Confidence: utils.Round2(sim),
		}
	}
	flush(len(lines) - 1)

	p.logger.Debug("parsed resume",
		zap.Int("sections", len(result.Sections)),
		zap.Int("contacts", len(result.Contacts)))
	return result, nil
}

// matchHeader embeds the normalized header and returns the canonical
// section name of the closest reference plus the similarity.
func (p *Parser) matchHeader(ctx context.Context, line string) (string, float64, error) {
	vec, err := p.embedder.Embed(ctx, normalizeHeader(line))
	if err != nil {
		return "", 0, fmt.Errorf("embed header %q: %w", line, err)
	}
	best := -1.0
	bestIdx := 0
	for i, ref := range p.refVecs {
		if sim := utils.CosineSimilarity(vec, ref); sim > best {
			best = sim
			bestIdx = i
		}
	}
	return canonicalName[referenceSections[bestIdx]], best, nil
}

// mergeableWithCurrent reports whether a newly detected canonical
// section should fold into the current one because their reference
// embeddings are near-duplicates (similarity at or above the merge
// threshold), like "experience" and "work history".
func (p *Parser) mergeableWithCurrent(ctx context.Context, name, currentName string) bool {
	if currentName == HeaderSection {
		return false
	}
	av, err := p.embedder.Embed(ctx, name)
	if err != nil {
		return false
	}
	bv, err := p.embedder.Embed(ctx, currentName)
	if err != nil {
		return false
	}
	return utils.CosineSimilarity(av, bv) >= p.mergeSim
}

func linesFromText(text string) []models.Line {
	var out []models.Line
	for i, l := range strings.Split(text, "\n") {
		t := strings.TrimRight(l, " \t\r")
		if strings.TrimSpace(t) == "" {
			continue
		}
		out = append(out, models.Line{Text: t, Page: 1, Paragraph: i})
	}
	return out
}
