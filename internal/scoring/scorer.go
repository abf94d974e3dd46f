// Package scoring computes the multi-dimensional resume score: keyword
// and semantic match against a job description, plus structural,
// readability, and tone signals with role-aware weighting.
package scoring

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/hyperjump/hirescope/internal/config"
	"github.com/hyperjump/hirescope/internal/embedding"
	"github.com/hyperjump/hirescope/internal/models"
	"github.com/hyperjump/hirescope/pkg/utils"
)

// weightedBlend is the share of the composite taken by the
// tier-weighted keyword score; the rest is the role-weighted mix.
const weightedBlend = 0.3

// Scorer scores parsed resumes against job descriptions. Keyword
// extraction per JD is cached because batch analysis reuses one JD
// across all files.
type Scorer struct {
	embedder    embedding.Embedder
	semanticMin float64
	logger      *zap.Logger

	mu      sync.Mutex
	jdCache map[string][]Keyword
}

// jdCacheMax bounds the keyword cache; entries are tiny, this only
// guards a long-running server against unbounded growth.
const jdCacheMax = 128

// NewScorer returns a Scorer using cfg's semantic-match threshold.
func NewScorer(embedder embedding.Embedder, cfg config.AnalysisConfig, logger *zap.Logger) *Scorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scorer{
		embedder:    embedder,
		semanticMin: cfg.SemanticMatchMin,
		logger:      logger,
		jdCache:     make(map[string][]Keyword),
	}
}

// Result bundles everything Score computes.
type Result struct {
	Breakdown models.ScoreBreakdown
	Matches   []models.KeywordMatch
	Missing   []string
}

// Score computes all sub-scores and the composite for a parsed resume
// against jdText. An empty jdText yields zero keyword and semantic
// scores but never an error; structural, readability, and tone are
// always computed. The composite blends the role-weighted sub-score
// mix with the tier-weighted keyword ratio and stays in [0, 1].
func (s *Scorer) Score(ctx context.Context, parsed *models.ParsedResume, jdText string) (*Result, error) {
	role := DetectRole(jdText)
	weights := roleWeights[role]

	breakdown := models.ScoreBreakdown{
		Role:        role,
		Structural:  StructuralScore(parsed),
		Readability: ReadabilityScore(parsed.FullText),
		Tone:        ToneScore(parsed.FullText),
	}

	var matches []models.KeywordMatch
	var missing []string
	var keywords []Keyword
	if jdText != "" {
		keywords = s.keywordsFor(jdText)
		var err error
		matches, missing, err = MatchKeywords(ctx, s.embedder, s.semanticMin, keywords, parsed.FullText)
		if err != nil {
			return nil, err
		}
		breakdown.Keyword = KeywordScore(matches)
		breakdown.Weighted = WeightedScore(keywords, matches)

		semantic, err := SemanticScore(ctx, s.embedder, parsed.FullText, jdText)
		if err != nil {
			return nil, err
		}
		breakdown.Semantic = semantic
	}

	roleMix := weights.Structural*breakdown.Structural +
		weights.Semantic*breakdown.Semantic +
		weights.Keyword*breakdown.Keyword +
		weights.Readability*breakdown.Readability +
		weights.Tone*breakdown.Tone

	if jdText != "" && len(keywords) > 0 {
		breakdown.Composite = utils.Clamp01((1-weightedBlend)*roleMix + weightedBlend*breakdown.Weighted)
	} else {
		breakdown.Composite = utils.Clamp01(roleMix)
	}

	breakdown.Structural = utils.Round2(breakdown.Structural)
	breakdown.Semantic = utils.Round2(breakdown.Semantic)
	breakdown.Keyword = utils.Round2(breakdown.Keyword)
	breakdown.Readability = utils.Round2(breakdown.Readability)
	breakdown.Tone = utils.Round2(breakdown.Tone)
	breakdown.Weighted = utils.Round2(breakdown.Weighted)
	breakdown.Composite = utils.Round2(breakdown.Composite)

	s.logger.Debug("scored resume",
		zap.String("role", role),
		zap.Float64("composite", breakdown.Composite),
		zap.Int("keywords", len(keywords)),
		zap.Int("missing", len(missing)))

	return &Result{Breakdown: breakdown, Matches: matches, Missing: missing}, nil
}

// keywordsFor returns the weighted keywords for a JD, cached.
func (s *Scorer) keywordsFor(jdText string) []Keyword {
	s.mu.Lock()
	defer s.mu.Unlock()
	if kws, ok := s.jdCache[jdText]; ok {
		return kws
	}
	kws := ExtractWeightedKeywords(jdText)
	if len(s.jdCache) >= jdCacheMax {
		for k := range s.jdCache {
			delete(s.jdCache, k)
			break
		}
	}
	s.jdCache[jdText] = kws
	return kws
}
