// Package tips retrieves resume-writing advice from a built-in
// knowledge base using hybrid keyword and embedding search.
package tips

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"go.uber.org/zap"

	"github.com/hyperjump/hirescope/internal/embedding"
	"github.com/hyperjump/hirescope/internal/models"
	"github.com/hyperjump/hirescope/pkg/utils"
)

const (
	defaultTopK    = 5
	maxSuggestTips = 10
	jdSnippetLen   = 200

	// Fusion weights. Embedding similarity carries most of the signal,
	// the keyword index sharpens exact-term queries.
	keywordWeight  = 0.4
	semanticWeight = 0.6
)

// tipDoc is the shape indexed into bleve.
type tipDoc struct {
	Text     string `json:"text"`
	Context  string `json:"context"`
	Category string `json:"category"`
}

// Engine answers advice queries over the knowledge base. Retrieval
// fuses bleve keyword scores with embedding cosine similarity.
type Engine struct {
	index    bleve.Index
	embedder embedding.Embedder
	logger   *zap.Logger

	initMu sync.Mutex
	vecs   [][]float32
}

// NewEngine builds the tip index and embeds the knowledge base. When
// indexPath is empty the index lives in memory; otherwise it is created
// or reopened on disk. Embedding happens here, before any retrieval, so
// request deadlines never apply to it.
func NewEngine(embedder embedding.Embedder, indexPath string, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	index, err := openIndex(indexPath)
	if err != nil {
		return nil, err
	}
	for i, e := range knowledgeBase {
		doc := tipDoc{Text: e.Text, Context: e.Context, Category: e.Category}
		if err := index.Index(strconv.Itoa(i), doc); err != nil {
			index.Close()
			return nil, fmt.Errorf("failed to index tip %d: %w", i, err)
		}
	}

	engine := &Engine{index: index, embedder: embedder, logger: logger}
	if err := engine.init(context.Background()); err != nil {
		logger.Warn("knowledge base not embedded, will retry on first retrieval", zap.Error(err))
	}
	return engine, nil
}

func openIndex(path string) (bleve.Index, error) {
	im := bleve.NewIndexMapping()
	docMapping := bleve.NewDocumentMapping()
	textFieldMapping := bleve.NewTextFieldMapping()
	// Standard analyzer: lowercase + tokenize without stemming, so a
	// query term matches the exact word it was written with.
	textFieldMapping.Analyzer = standard.Name
	docMapping.AddFieldMappingsAt("text", textFieldMapping)
	docMapping.AddFieldMappingsAt("context", textFieldMapping)
	docMapping.AddFieldMappingsAt("category", bleve.NewKeywordFieldMapping())
	im.AddDocumentMapping("tip", docMapping)
	im.DefaultType = "tip"
	im.DefaultMapping = docMapping

	if path == "" {
		index, err := bleve.NewMemOnly(im)
		if err != nil {
			return nil, fmt.Errorf("failed to create tip index: %w", err)
		}
		return index, nil
	}
	if _, err := os.Stat(path); err == nil {
		index, openErr := bleve.Open(path)
		if openErr != nil {
			return nil, fmt.Errorf("failed to open tip index: %w", openErr)
		}
		return index, nil
	}
	index, err := bleve.New(path, im)
	if err != nil {
		return nil, fmt.Errorf("failed to create tip index: %w", err)
	}
	return index, nil
}

// init embeds every knowledge base entry. Tip and context are embedded
// together so context terms influence similarity. A failed attempt is
// not cached, so a later call retries instead of failing forever.
func (e *Engine) init(ctx context.Context) error {
	e.initMu.Lock()
	defer e.initMu.Unlock()
	if e.vecs != nil {
		return nil
	}
	texts := make([]string, len(knowledgeBase))
	for i, entry := range knowledgeBase {
		texts[i] = entry.Text + " " + entry.Context
	}
	vecs, err := e.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed knowledge base: %w", err)
	}
	e.vecs = vecs
	e.logger.Debug("tip knowledge base embedded", zap.Int("entries", len(vecs)))
	return nil
}

// TopTips returns the k entries most relevant to query, scored by the
// fused keyword and embedding similarity.
func (e *Engine) TopTips(ctx context.Context, query string, k int) ([]models.Tip, error) {
	if k <= 0 {
		k = defaultTopK
	}
	if err := e.init(ctx); err != nil {
		return nil, err
	}

	keywordScores, err := e.keywordScores(query, k)
	if err != nil {
		return nil, err
	}
	semanticScores, err := e.semanticScores(ctx, query)
	if err != nil {
		return nil, err
	}

	type scored struct {
		idx   int
		score float64
	}
	fused := make([]scored, 0, len(knowledgeBase))
	for i := range knowledgeBase {
		score := keywordWeight*keywordScores[i] + semanticWeight*semanticScores[i]
		if score <= 0 {
			continue
		}
		fused = append(fused, scored{idx: i, score: score})
	}
	sort.Slice(fused, func(i, j int) bool {
		if fused[i].score != fused[j].score {
			return fused[i].score > fused[j].score
		}
		return fused[i].idx < fused[j].idx
	})
	if len(fused) > k {
		fused = fused[:k]
	}

	out := make([]models.Tip, len(fused))
	for i, s := range fused {
		entry := knowledgeBase[s.idx]
		out[i] = models.Tip{
			Category: entry.Category,
			Text:     entry.Text,
			Score:    utils.Round2(s.score),
		}
	}
	return out, nil
}

// keywordScores runs a match query and normalizes hit scores to [0,1]
// by the best hit.
func (e *Engine) keywordScores(query string, k int) (map[int]float64, error) {
	reqSize := k * 4
	if reqSize < 20 {
		reqSize = 20
	}
	req := bleve.NewSearchRequest(bleve.NewMatchQuery(query))
	req.Size = reqSize
	results, err := e.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("tip keyword search failed: %w", err)
	}

	scores := make(map[int]float64, len(results.Hits))
	maxScore := 0.0
	for _, hit := range results.Hits {
		if hit.Score > maxScore {
			maxScore = hit.Score
		}
	}
	if maxScore == 0 {
		return scores, nil
	}
	for _, hit := range results.Hits {
		idx, err := strconv.Atoi(hit.ID)
		if err != nil || idx < 0 || idx >= len(knowledgeBase) {
			continue
		}
		scores[idx] = hit.Score / maxScore
	}
	return scores, nil
}

// semanticScores is cosine similarity between the query embedding and
// every entry embedding, floored at zero.
func (e *Engine) semanticScores(ctx context.Context, query string) (map[int]float64, error) {
	vec, err := e.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed tip query: %w", err)
	}
	scores := make(map[int]float64, len(e.vecs))
	for i, kb := range e.vecs {
		sim := utils.CosineSimilarity(vec, kb)
		if sim > 0 {
			scores[i] = sim
		}
	}
	return scores, nil
}

// suggestQuery pairs a retrieval query with how many tips it may add.
type suggestQuery struct {
	query string
	k     int
}

// Suggest maps a score breakdown to targeted retrieval queries and
// returns the deduplicated advice, strongest signals first.
func (e *Engine) Suggest(ctx context.Context, breakdown models.ScoreBreakdown, jdText string) []models.Tip {
	snippet := utils.Truncate(jdText, jdSnippetLen)

	var queries []suggestQuery
	switch {
	case breakdown.Keyword < 0.3:
		queries = append(queries, suggestQuery{"improve keyword matching for: " + snippet, 3})
	case breakdown.Keyword < 0.5:
		queries = append(queries, suggestQuery{"optimize keywords for: " + snippet, 2})
	}
	switch {
	case breakdown.Structural < 0.6:
		queries = append(queries, suggestQuery{"improve resume structure and formatting ATS compatibility", 3})
	case breakdown.Structural < 0.7:
		queries = append(queries, suggestQuery{"resume formatting best practices", 2})
	}
	switch {
	case breakdown.Tone < 0.5:
		queries = append(queries, suggestQuery{"improve professional writing tone action verbs impact", 3})
	case breakdown.Tone < 0.7:
		queries = append(queries, suggestQuery{"action verbs quantifiable achievements", 2})
	}
	if breakdown.Semantic < 0.5 {
		queries = append(queries, suggestQuery{"align resume with job description: " + snippet, 2})
	}
	if breakdown.Readability < 0.5 {
		queries = append(queries, suggestQuery{"improve resume readability concise writing", 2})
	}
	switch {
	case breakdown.Composite >= 0.7:
		queries = append(queries, suggestQuery{"polish resume advanced optimization", 3})
	case breakdown.Composite < 0.4:
		queries = append(queries, suggestQuery{"major resume overhaul improvement strategy", 4})
	}
	queries = append(queries, suggestQuery{"resume best practices for " + utils.Truncate(jdText, 150), 4})

	seen := make(map[string]bool)
	var out []models.Tip
	for _, q := range queries {
		found, err := e.TopTips(ctx, q.query, q.k)
		if err != nil {
			e.logger.Warn("tip retrieval failed", zap.String("query", q.query), zap.Error(err))
			continue
		}
		for _, tip := range found {
			if seen[tip.Text] {
				continue
			}
			seen[tip.Text] = true
			out = append(out, tip)
		}
	}
	if len(out) > maxSuggestTips {
		out = out[:maxSuggestTips]
	}
	return out
}

// Close releases the bleve index.
func (e *Engine) Close() error {
	return e.index.Close()
}
