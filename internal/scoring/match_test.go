package scoring

import (
	"context"
	"testing"

	"github.com/hyperjump/hirescope/internal/models"
)

// seededEmbedder returns preset vectors for known texts and orthogonal
// basis vectors for everything else.
type seededEmbedder struct {
	dims int
	vecs map[string][]float32
	next int
}

func newSeededEmbedder(dims int) *seededEmbedder {
	return &seededEmbedder{dims: dims, vecs: make(map[string][]float32)}
}

func (s *seededEmbedder) seed(text string, vec []float32) { s.vecs[text] = vec }

func (s *seededEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if v, ok := s.vecs[text]; ok {
		return v, nil
	}
	v := make([]float32, s.dims)
	v[s.next%s.dims] = 1
	s.next++
	s.vecs[text] = v
	return v, nil
}

func (s *seededEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := s.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (s *seededEmbedder) Dimensions() int { return s.dims }
func (s *seededEmbedder) Close() error    { return nil }

func kws(tier string, texts ...string) []Keyword {
	out := make([]Keyword, len(texts))
	for i, t := range texts {
		out[i] = Keyword{Text: t, Tier: tier}
	}
	return out
}

func TestMatchKeywords_exactAndSubstring(t *testing.T) {
	resume := "Built services in Python with Django and deployed via Docker"
	matches, missing, err := MatchKeywords(context.Background(), nil, 0.7,
		kws(models.TierRequired, "python", "django", "docker", "kubernetes"), resume)
	if err != nil {
		t.Fatal(err)
	}
	byKw := make(map[string]models.KeywordMatch)
	for _, m := range matches {
		byKw[m.Keyword] = m
	}
	for _, w := range []string{"python", "django", "docker"} {
		if !byKw[w].Matched {
			t.Errorf("%q should match", w)
		}
	}
	if byKw["kubernetes"].Matched {
		t.Error("kubernetes should be missing")
	}
	if len(missing) != 1 || missing[0] != "kubernetes" {
		t.Errorf("missing = %v", missing)
	}
}

func TestMatchKeywords_plural(t *testing.T) {
	matches, _, err := MatchKeywords(context.Background(), nil, 0.7,
		kws(models.TierPreferred, "microservice"), "designed microservices at scale")
	if err != nil {
		t.Fatal(err)
	}
	if !matches[0].Matched {
		t.Error("plural variation should match")
	}
}

func TestMatchKeywords_semanticFallback(t *testing.T) {
	emb := newSeededEmbedder(8)
	// "postgresql" (JD) and "postgres" (resume candidate) share a vector,
	// so the fallback should match them at similarity 1.0.
	v := []float32{1, 0, 0, 0, 0, 0, 0, 0}
	emb.seed("postgresql", v)
	emb.seed("postgres", v)

	resume := "Tuned postgres replication. Wrote python and django services with docker."
	matches, missing, err := MatchKeywords(context.Background(), emb, 0.7,
		kws(models.TierRequired, "python", "django", "docker", "postgresql"), resume)
	if err != nil {
		t.Fatal(err)
	}
	var pg models.KeywordMatch
	for _, m := range matches {
		if m.Keyword == "postgresql" {
			pg = m
		}
	}
	if !pg.Matched || pg.MatchKind != "semantic" {
		t.Errorf("postgresql should match semantically: %+v", pg)
	}
	if pg.Score < 0.7 {
		t.Errorf("semantic score = %f", pg.Score)
	}
	if len(missing) != 0 {
		t.Errorf("missing = %v", missing)
	}
}

func TestMatchKeywords_semanticSkippedWhenMostlyMissing(t *testing.T) {
	emb := newSeededEmbedder(8)
	v := []float32{0, 1, 0, 0, 0, 0, 0, 0}
	emb.seed("terraform", v)
	emb.seed("python", v)

	// All 4 keywords miss the cheap checks, so no semantic pass runs
	// even though terraform would have matched.
	matches, _, err := MatchKeywords(context.Background(), emb, 0.7,
		kws(models.TierRequired, "docker", "terraform", "kubernetes", "rust"),
		"I write python programs")
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range matches {
		if m.Keyword == "terraform" && m.Matched {
			t.Error("semantic pass should be skipped for mostly-missing keyword sets")
		}
	}
}

func TestMatchKeywords_empty(t *testing.T) {
	matches, missing, err := MatchKeywords(context.Background(), nil, 0.7, nil, "anything")
	if err != nil || matches != nil || missing != nil {
		t.Errorf("got %v %v %v", matches, missing, err)
	}
}

func TestKeywordScore(t *testing.T) {
	matches := []models.KeywordMatch{
		{Keyword: "a", Matched: true},
		{Keyword: "b", Matched: true},
		{Keyword: "c", Matched: false},
		{Keyword: "d", Matched: false},
	}
	if got := KeywordScore(matches); got != 0.5 {
		t.Errorf("KeywordScore = %f, want 0.5", got)
	}
	if got := KeywordScore(nil); got != 0 {
		t.Errorf("KeywordScore(nil) = %f", got)
	}
}

func TestWeightedScore(t *testing.T) {
	keywords := []Keyword{
		{Text: "a", Tier: models.TierRequired},  // 2.0
		{Text: "b", Tier: models.TierPreferred}, // 1.0
		{Text: "c", Tier: models.TierBonus},     // 0.5
	}
	matches := []models.KeywordMatch{
		{Keyword: "a", Matched: true},
		{Keyword: "b", Matched: false},
		{Keyword: "c", Matched: true},
	}
	got := WeightedScore(keywords, matches)
	want := 2.5 / 3.5
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("WeightedScore = %f, want %f", got, want)
	}
	if got := WeightedScore(nil, nil); got != 0 {
		t.Errorf("WeightedScore(nil) = %f", got)
	}
}
