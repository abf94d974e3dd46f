package scoring

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hyperjump/hirescope/internal/embedding"
	"github.com/hyperjump/hirescope/internal/models"
	"github.com/hyperjump/hirescope/pkg/utils"
)

// roleWeights maps a detected role to per-dimension composite weights.
// Each row sums to 1.
var roleWeights = map[string]models.ScoreBreakdown{
	models.RoleTech:     {Structural: 0.20, Semantic: 0.45, Keyword: 0.25, Readability: 0.05, Tone: 0.05},
	models.RoleManager:  {Structural: 0.25, Semantic: 0.30, Keyword: 0.15, Readability: 0.15, Tone: 0.15},
	models.RoleCreative: {Structural: 0.20, Semantic: 0.25, Keyword: 0.10, Readability: 0.20, Tone: 0.25},
	models.RoleGeneral:  {Structural: 0.25, Semantic: 0.35, Keyword: 0.25, Readability: 0.10, Tone: 0.05},
}

// DetectRole categorizes a job description by its vocabulary, checking
// tech terms first, then management, then creative. Empty or
// unclassifiable JDs are GENERAL.
func DetectRole(jdText string) string {
	if jdText == "" {
		return models.RoleGeneral
	}
	jd := strings.ToLower(jdText)
	for _, w := range techRoleWords {
		if strings.Contains(jd, w) {
			return models.RoleTech
		}
	}
	for _, w := range managerRoleWords {
		if strings.Contains(jd, w) {
			return models.RoleManager
		}
	}
	for _, w := range creativeRoleWords {
		if strings.Contains(jd, w) {
			return models.RoleCreative
		}
	}
	return models.RoleGeneral
}

// StructuralScore checks for the three pillars of a complete resume:
// contact info, experience (or projects), and education. Detected
// sections count first; raw-text markers cover resumes whose headers
// were not recognized.
func StructuralScore(parsed *models.ParsedResume) float64 {
	t := strings.ToLower(parsed.FullText)

	hasContact := strings.Contains(t, "@") || strings.Contains(t, "email")
	if !hasContact {
		for _, c := range parsed.Contacts {
			if c.Kind == "email" || c.Kind == "phone" {
				hasContact = true
				break
			}
		}
	}

	hasExp := parsed.SectionByHeader("experience") != nil ||
		parsed.SectionByHeader("projects") != nil ||
		strings.Contains(t, "experience") || strings.Contains(t, "projects")

	hasEdu := parsed.SectionByHeader("education") != nil ||
		strings.Contains(t, "education") || strings.Contains(t, "bachelor") ||
		strings.Contains(t, "master") || strings.Contains(t, "b.sc")

	score := 0.0
	if hasContact {
		score++
	}
	if hasExp {
		score++
	}
	if hasEdu {
		score++
	}
	return score / 3.0
}

// ReadabilityScore is the Flesch Reading Ease of the text, normalized
// to [0, 1]. Empty text scores a neutral 0.5.
func ReadabilityScore(text string) float64 {
	sentences := utils.SplitSentences(text)
	words := strings.Fields(text)
	if len(sentences) == 0 || len(words) == 0 {
		return 0.5
	}
	syllables := 0
	for _, w := range words {
		syllables += utils.CountSyllables(w)
	}
	fre := 206.835 -
		1.015*(float64(len(words))/float64(len(sentences))) -
		84.6*(float64(syllables)/float64(len(words)))
	return utils.Clamp01(fre / 100.0)
}

// ToneScore measures action-verb density: occurrences of resume action
// verbs relative to half the sentence count, capped at 1.
func ToneScore(text string) float64 {
	lower := strings.ToLower(text)
	count := 0
	for _, v := range actionVerbs {
		count += strings.Count(lower, v)
	}
	sentences := len(utils.SplitSentences(text))
	if sentences < 1 {
		sentences = 1
	}
	return utils.Clamp01(float64(count) / (0.5 * float64(sentences)))
}

// semanticTopK sentences contribute to the semantic score.
const semanticTopK = 5

// maxSemanticSentences caps how many resume sentences are embedded.
const maxSemanticSentences = 40

// SemanticScore embeds the resume's sentences and the job description
// and averages the top-K sentence similarities, clamped to [0, 1].
// With no usable sentences it falls back to whole-document similarity.
func SemanticScore(ctx context.Context, embedder embedding.Embedder, resumeText, jdText string) (float64, error) {
	if jdText == "" || strings.TrimSpace(resumeText) == "" {
		return 0, nil
	}
	jdVec, err := embedder.Embed(ctx, jdText)
	if err != nil {
		return 0, fmt.Errorf("embed job description: %w", err)
	}

	sentences := utils.SplitSentences(resumeText)
	if len(sentences) > maxSemanticSentences {
		sentences = sentences[:maxSemanticSentences]
	}
	if len(sentences) == 0 {
		docVec, err := embedder.Embed(ctx, resumeText)
		if err != nil {
			return 0, fmt.Errorf("embed resume: %w", err)
		}
		return utils.Clamp01(utils.CosineSimilarity(docVec, jdVec)), nil
	}

	vecs, err := embedder.EmbedBatch(ctx, sentences)
	if err != nil {
		return 0, fmt.Errorf("embed resume sentences: %w", err)
	}
	sims := make([]float64, len(vecs))
	for i, v := range vecs {
		sims[i] = utils.CosineSimilarity(v, jdVec)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sims)))
	k := semanticTopK
	if k > len(sims) {
		k = len(sims)
	}
	sum := 0.0
	for _, s := range sims[:k] {
		sum += s
	}
	return utils.Clamp01(sum / float64(k)), nil
}
