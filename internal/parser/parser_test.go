package parser

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/hyperjump/hirescope/internal/config"
	"github.com/hyperjump/hirescope/internal/models"
)

// stubEmbedder hands out one unit basis vector per distinct text, so
// unseen texts are orthogonal to everything. Tests can pre-seed vectors
// to control similarity exactly.
type stubEmbedder struct {
	dims int
	vecs map[string][]float32
	next int
}

func newStubEmbedder(dims int) *stubEmbedder {
	return &stubEmbedder{dims: dims, vecs: make(map[string][]float32)}
}

func (s *stubEmbedder) basis(i int) []float32 {
	v := make([]float32, s.dims)
	v[i%s.dims] = 1
	return v
}

func (s *stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if v, ok := s.vecs[text]; ok {
		return v, nil
	}
	v := s.basis(s.next)
	s.next++
	s.vecs[text] = v
	return v, nil
}

func (s *stubEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
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

func (s *stubEmbedder) Dimensions() int { return s.dims }
func (s *stubEmbedder) Close() error    { return nil }

// ctxEmbedder honors context cancellation and can fail a number of
// batch calls, like the ONNX embedder under load or during warm-up.
type ctxEmbedder struct {
	*stubEmbedder
	failBatches int
}

func (c *ctxEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.stubEmbedder.Embed(ctx, text)
}

func (c *ctxEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.failBatches > 0 {
		c.failBatches--
		return nil, errors.New("model busy")
	}
	return c.stubEmbedder.EmbedBatch(ctx, texts)
}

func testConfig() config.AnalysisConfig {
	cfg := config.AnalysisConfig{}
	cfg.SectionThreshold = 0.4
	cfg.SectionMerge = 0.7
	return cfg
}

func extractedFrom(lines ...string) *models.ExtractedText {
	out := &models.ExtractedText{Text: strings.Join(lines, "\n"), Source: "txt"}
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out.Lines = append(out.Lines, models.Line{Text: l, Page: 1, Paragraph: i})
	}
	return out
}

func TestParse_detectsSections(t *testing.T) {
	p := NewParser(newStubEmbedder(32), testConfig(), nil)
	doc := extractedFrom(
		"John Smith",
		"john.smith@example.com",
		"EXPERIENCE",
		"Built a search engine in Go",
		"Led a team of four",
		"EDUCATION",
		"BS Computer Science",
	)
	got, err := p.Parse(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Sections) != 3 {
		t.Fatalf("got %d sections: %+v", len(got.Sections), got.Sections)
	}
	if got.Sections[0].Header != HeaderSection {
		t.Errorf("first section = %q, want %q", got.Sections[0].Header, HeaderSection)
	}
	if got.Sections[1].Header != "experience" {
		t.Errorf("second section = %q", got.Sections[1].Header)
	}
	if !strings.Contains(got.Sections[1].Content, "search engine") {
		t.Errorf("experience content = %q", got.Sections[1].Content)
	}
	if got.Sections[2].Header != "education" {
		t.Errorf("third section = %q", got.Sections[2].Header)
	}
}

func TestParse_everyLineBelongsToOneSection(t *testing.T) {
	p := NewParser(newStubEmbedder(32), testConfig(), nil)
	doc := extractedFrom(
		"Jane Doe",
		"SKILLS",
		"Go, Python",
		"EXPERIENCE",
		"Shipped things",
	)
	got, err := p.Parse(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}
	covered := make(map[int]int)
	for _, s := range got.Sections {
		for i := s.StartLine; i <= s.EndLine; i++ {
			covered[i]++
		}
	}
	for i := 0; i < len(doc.Lines); i++ {
		if covered[i] != 1 {
			t.Errorf("line %d covered %d times", i, covered[i])
		}
	}
}

func TestParse_unvalidatedHeaderStaysInContent(t *testing.T) {
	// "Acme Corporation" is header-shaped but orthogonal to every
	// reference section, so it must not start a section.
	p := NewParser(newStubEmbedder(64), testConfig(), nil)
	doc := extractedFrom(
		"EXPERIENCE",
		"Acme Corporation",
		"Did engineering work",
	)
	got, err := p.Parse(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Sections) != 1 {
		t.Fatalf("got %d sections: %+v", len(got.Sections), got.Sections)
	}
	if !strings.Contains(got.Sections[0].Content, "Acme Corporation") {
		t.Errorf("content = %q", got.Sections[0].Content)
	}
}

func TestParse_thresholdIsInclusive(t *testing.T) {
	emb := newStubEmbedder(32)
	p := NewParser(emb, testConfig(), nil)
	if err := p.init(context.Background()); err != nil {
		t.Fatal(err)
	}

	// Seed a header embedding at exactly the acceptance threshold
	// relative to the "skills" reference.
	skillsVec, _ := emb.Embed(context.Background(), "skills")
	v := make([]float32, 32)
	idx := 0
	for i, x := range skillsVec {
		if x != 0 {
			idx = i
			break
		}
	}
	v[idx] = 0.4
	v[(idx+13)%32] = float32(math.Sqrt(1 - 0.4*0.4))
	emb.vecs["technical expertise"] = v

	doc := extractedFrom(
		"Technical Expertise",
		"Go, distributed systems",
	)
	got, err := p.Parse(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Sections) != 1 || got.Sections[0].Header != "skills" {
		t.Fatalf("similarity exactly at threshold should be accepted: %+v", got.Sections)
	}
}

func TestParse_equivalentHeadersMerge(t *testing.T) {
	p := NewParser(newStubEmbedder(32), testConfig(), nil)
	doc := extractedFrom(
		"EXPERIENCE",
		"First job",
		"Work History",
		"Second job",
	)
	got, err := p.Parse(context.Background(), doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Sections) != 1 {
		t.Fatalf("got %d sections: %+v", len(got.Sections), got.Sections)
	}
	s := got.Sections[0]
	if s.Header != "experience" {
		t.Errorf("header = %q", s.Header)
	}
	if !strings.Contains(s.Content, "First job") || !strings.Contains(s.Content, "Second job") {
		t.Errorf("merged content = %q", s.Content)
	}
}

func TestParse_emptyDocument(t *testing.T) {
	p := NewParser(newStubEmbedder(32), testConfig(), nil)
	got, err := p.Parse(context.Background(), &models.ExtractedText{Text: ""})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Sections) != 0 {
		t.Errorf("got %d sections for empty input", len(got.Sections))
	}
}

func TestParse_canceledRequestDoesNotPoison(t *testing.T) {
	emb := &ctxEmbedder{stubEmbedder: newStubEmbedder(32)}
	p := NewParser(emb, testConfig(), nil)
	doc := extractedFrom("Jane Doe", "EXPERIENCE", "built things")

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Parse(canceled, doc); !errors.Is(err, context.Canceled) {
		t.Fatalf("Parse with canceled ctx: err = %v, want context.Canceled", err)
	}

	got, err := p.Parse(context.Background(), doc)
	if err != nil {
		t.Fatalf("Parse after canceled request: %v", err)
	}
	if len(got.Sections) == 0 {
		t.Error("expected sections from recovered parser")
	}
}

func TestNewParser_retriesReferenceBankAfterFailure(t *testing.T) {
	emb := &ctxEmbedder{stubEmbedder: newStubEmbedder(32), failBatches: 1}
	p := NewParser(emb, testConfig(), nil)

	got, err := p.Parse(context.Background(), extractedFrom("Jane Doe", "EXPERIENCE", "built things"))
	if err != nil {
		t.Fatalf("Parse after failed warm-up: %v", err)
	}
	if len(got.Sections) == 0 {
		t.Error("expected sections once the reference bank loads")
	}
}

func TestLooksLikeHeader(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"EXPERIENCE", true},
		{"Work History:", true},
		{"Education", true},
		{"- built a thing", false},
		{"• bullet point", false},
		{"This is a long sentence that talks about many accomplishments in detail.", false},
		{"worked at a startup", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := looksLikeHeader(tt.line); got != tt.want {
			t.Errorf("looksLikeHeader(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
