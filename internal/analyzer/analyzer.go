// Package analyzer orchestrates the full analysis pipeline: extract,
// parse, score, and enrich with heatmap, insight text and tips.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hyperjump/hirescope/internal/embedding"
	"github.com/hyperjump/hirescope/internal/extract"
	"github.com/hyperjump/hirescope/internal/models"
	"github.com/hyperjump/hirescope/internal/parser"
	"github.com/hyperjump/hirescope/internal/scoring"
	"github.com/hyperjump/hirescope/internal/tips"
	"github.com/hyperjump/hirescope/pkg/utils"
)

// ErrJobDescriptionTooShort is returned when a non-empty job
// description is under the minimum length.
var ErrJobDescriptionTooShort = errors.New("job description too short")

// maxHeatmapEntries caps the per-sentence similarity list.
const maxHeatmapEntries = 80

// liveTipsK is how many tips a live analysis may attach.
const liveTipsK = 3

// Analyzer wires the pipeline stages together. The tips engine is
// optional; a nil engine just skips suggestions.
type Analyzer struct {
	extractor *extract.Extractor
	parser    *parser.Parser
	scorer    *scoring.Scorer
	embedder  embedding.Embedder
	tips      *tips.Engine
	logger    *zap.Logger
}

func New(extractor *extract.Extractor, p *parser.Parser, scorer *scoring.Scorer, embedder embedding.Embedder, tipEngine *tips.Engine, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{
		extractor: extractor,
		parser:    p,
		scorer:    scorer,
		embedder:  embedder,
		tips:      tipEngine,
		logger:    logger,
	}
}

// Analyze runs the full pipeline on one uploaded document. An empty
// job description is allowed and yields a degraded result with zero
// keyword and semantic scores; a non-empty one below the minimum
// length is rejected.
func (a *Analyzer) Analyze(ctx context.Context, filename string, content []byte, jdText string) (*models.AnalysisResult, error) {
	jd := strings.TrimSpace(jdText)
	if jd != "" && len(jd) < models.MinJobDescriptionLen {
		return nil, fmt.Errorf("%w: need at least %d characters", ErrJobDescriptionTooShort, models.MinJobDescriptionLen)
	}

	extracted, err := a.extractor.Extract(ctx, filename, content)
	if err != nil {
		return nil, err
	}

	parsed, err := a.parser.Parse(ctx, extracted)
	if err != nil {
		return nil, err
	}

	scored, err := a.scorer.Score(ctx, parsed, jd)
	if err != nil {
		return nil, err
	}

	result := &models.AnalysisResult{
		ID:              uuid.NewString(),
		Filename:        filename,
		Score:           utils.Round2(scored.Breakdown.Composite * 100),
		Breakdown:       scored.Breakdown,
		MatchedKeywords: scored.Matches,
		MissingKeywords: scored.Missing,
		Sections:        parsed.Sections,
		Contacts:        parsed.Contacts,
		Insight:         GenerateInsight(scored.Breakdown),
		Insights:        GenerateInsights(scored.Breakdown, scored.Missing),
		Degraded:        extracted.Degraded || jd == "",
		Warnings:        extracted.Warnings,
	}

	if jd != "" {
		heatmap, err := a.buildHeatmap(ctx, parsed.FullText, jd)
		if err != nil {
			a.logger.Warn("heatmap generation failed", zap.Error(err))
		} else {
			result.Heatmap = heatmap
		}
	}

	if a.tips != nil {
		result.Tips = a.tips.Suggest(ctx, scored.Breakdown, jd)
	}

	a.logger.Info("analysis complete",
		zap.String("id", result.ID),
		zap.String("filename", filename),
		zap.Float64("score", result.Score),
		zap.Bool("degraded", result.Degraded))
	return result, nil
}

// LiveAnalyze scores raw editor text without extraction or heatmap,
// trading completeness for latency.
func (a *Analyzer) LiveAnalyze(ctx context.Context, req *models.LiveAnalyzeRequest) (*models.LiveAnalyzeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.JobDescription != "" && len(req.JobDescription) < models.MinJobDescriptionLen {
		return nil, fmt.Errorf("%w: need at least %d characters", ErrJobDescriptionTooShort, models.MinJobDescriptionLen)
	}

	parsed, err := a.parser.Parse(ctx, extractedFromText(req.ResumeText))
	if err != nil {
		return nil, err
	}

	scored, err := a.scorer.Score(ctx, parsed, req.JobDescription)
	if err != nil {
		return nil, err
	}

	resp := &models.LiveAnalyzeResponse{
		Score:           utils.Round2(scored.Breakdown.Composite * 100),
		Breakdown:       scored.Breakdown,
		MatchedKeywords: scored.Matches,
		MissingKeywords: scored.Missing,
		Sections:        sectionNames(parsed.Sections),
		WordCount:       len(strings.Fields(req.ResumeText)),
		Insight:         GenerateInsight(scored.Breakdown),
	}

	// Tips only when there is room to improve, keeping the hot path cheap.
	if a.tips != nil && req.JobDescription != "" && scored.Breakdown.Composite < 0.7 {
		found, err := a.tips.TopTips(ctx, "improve resume for: "+utils.Truncate(req.JobDescription, 150), liveTipsK)
		if err != nil {
			a.logger.Warn("live tip retrieval failed", zap.Error(err))
		} else {
			resp.Tips = found
		}
	}
	return resp, nil
}

// buildHeatmap embeds each resume sentence and ranks it by similarity
// to the job description, strongest first.
func (a *Analyzer) buildHeatmap(ctx context.Context, resumeText, jdText string) ([]models.HeatmapEntry, error) {
	sentences := utils.SplitSentences(resumeText)
	if len(sentences) == 0 {
		return nil, nil
	}

	jdVec, err := a.embedder.Embed(ctx, jdText)
	if err != nil {
		return nil, err
	}
	vecs, err := a.embedder.EmbedBatch(ctx, sentences)
	if err != nil {
		return nil, err
	}

	entries := make([]models.HeatmapEntry, len(sentences))
	for i, sent := range sentences {
		entries[i] = models.HeatmapEntry{
			Sentence: sent,
			Score:    utils.Round2(utils.CosineSimilarity(vecs[i], jdVec)),
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })
	if len(entries) > maxHeatmapEntries {
		entries = entries[:maxHeatmapEntries]
	}
	return entries, nil
}

// extractedFromText wraps already-plain text for the parser.
func extractedFromText(text string) *models.ExtractedText {
	lines := make([]models.Line, 0)
	paragraph := 0
	blank := false
	for _, raw := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			blank = true
			continue
		}
		if blank && len(lines) > 0 {
			paragraph++
		}
		blank = false
		lines = append(lines, models.Line{Text: trimmed, Page: 1, Paragraph: paragraph})
	}
	return &models.ExtractedText{
		Text:      text,
		Lines:     lines,
		PageCount: 1,
		Source:    "live",
	}
}

// sectionNames lists canonical section headers in document order,
// skipping the unnamed preamble.
func sectionNames(sections []models.Section) []string {
	out := make([]string, 0, len(sections))
	for _, s := range sections {
		if s.Header == parser.HeaderSection {
			continue
		}
		out = append(out, s.Header)
	}
	return out
}
