package scoring

import (
	"context"
	"fmt"
	"strings"

	"github.com/hyperjump/hirescope/internal/embedding"
	"github.com/hyperjump/hirescope/internal/models"
	"github.com/hyperjump/hirescope/pkg/utils"
)

// semanticMatchMinLen skips semantic fallback for very short keywords;
// acronym embeddings are too noisy to trust.
const semanticMatchMinLen = 4

// MatchKeywords checks each JD keyword against the resume. Cheap
// checks run first: exact candidate match, substring of the resume
// text, then plural/singular variation. Keywords still missing go
// through the semantic fallback, matching when the best similarity to
// any resume candidate phrase reaches semanticMin. The fallback is
// skipped when more than 70% of keywords are missing, which signals an
// unrelated resume rather than wording variations.
func MatchKeywords(
	ctx context.Context,
	embedder embedding.Embedder,
	semanticMin float64,
	keywords []Keyword,
	resumeText string,
) ([]models.KeywordMatch, []string, error) {
	if len(keywords) == 0 {
		return nil, nil, nil
	}

	resumeLower := strings.ToLower(resumeText)
	resumeCandidates := candidatePhrases(resumeText)
	candidateSet := make(map[string]bool, len(resumeCandidates))
	for _, c := range resumeCandidates {
		candidateSet[c] = true
	}

	matches := make([]models.KeywordMatch, len(keywords))
	var missingIdx []int
	for i, kw := range keywords {
		m := models.KeywordMatch{Keyword: kw.Text, Tier: kw.Tier}
		switch {
		case candidateSet[kw.Text]:
			m.Matched, m.MatchKind, m.Score = true, "exact", 1.0
		case strings.Contains(resumeLower, kw.Text):
			m.Matched, m.MatchKind, m.Score = true, "substring", 1.0
		case strings.Contains(resumeLower, kw.Text+"s") ||
			(strings.HasSuffix(kw.Text, "s") && strings.Contains(resumeLower, strings.TrimSuffix(kw.Text, "s"))):
			m.Matched, m.MatchKind, m.Score = true, "plural", 1.0
		default:
			missingIdx = append(missingIdx, i)
		}
		matches[i] = m
	}

	if embedder != nil && len(missingIdx) > 0 &&
		len(missingIdx) < len(keywords)*7/10 && len(resumeCandidates) > 0 {
		if err := semanticPass(ctx, embedder, semanticMin, matches, missingIdx, resumeCandidates); err != nil {
			return nil, nil, err
		}
	}

	var missing []string
	for _, m := range matches {
		if !m.Matched {
			missing = append(missing, m.Keyword)
		}
	}
	return matches, missing, nil
}

func semanticPass(
	ctx context.Context,
	embedder embedding.Embedder,
	semanticMin float64,
	matches []models.KeywordMatch,
	missingIdx []int,
	resumeCandidates []string,
) error {
	var texts []string
	var idxs []int
	for _, i := range missingIdx {
		if len(matches[i].Keyword) >= semanticMatchMinLen {
			texts = append(texts, matches[i].Keyword)
			idxs = append(idxs, i)
		}
	}
	if len(texts) == 0 {
		return nil
	}

	kwVecs, err := embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed missing keywords: %w", err)
	}
	candVecs, err := embedder.EmbedBatch(ctx, dedup(resumeCandidates))
	if err != nil {
		return fmt.Errorf("embed resume candidates: %w", err)
	}

	for n, i := range idxs {
		best := 0.0
		for _, cv := range candVecs {
			if sim := utils.CosineSimilarity(kwVecs[n], cv); sim > best {
				best = sim
			}
		}
		if best >= semanticMin {
			matches[i].Matched = true
			matches[i].MatchKind = "semantic"
			matches[i].Score = utils.Round2(best)
		}
	}
	return nil
}

// KeywordScore is the unweighted match ratio.
func KeywordScore(matches []models.KeywordMatch) float64 {
	if len(matches) == 0 {
		return 0
	}
	matched := 0
	for _, m := range matches {
		if m.Matched {
			matched++
		}
	}
	return float64(matched) / float64(len(matches))
}

// WeightedScore is the tier-weighted match ratio: required keywords
// count double, bonus keywords half.
func WeightedScore(keywords []Keyword, matches []models.KeywordMatch) float64 {
	var total, matched float64
	for i, kw := range keywords {
		w := kw.Weight()
		total += w
		if i < len(matches) && matches[i].Matched {
			matched += w
		}
	}
	if total == 0 {
		return 0
	}
	return matched / total
}

func dedup(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, it := range items {
		if !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	return out
}
