package embedding

import (
	"context"
	"math"

	"github.com/hyperjump/hirescope/pkg/utils"
)

// HashEmbedder is a deterministic embedder used as a fallback when the
// ONNX model is unavailable, and in tests. It derives a fixed-dimension
// vector from word hashes so the same text always gets the same
// embedding and texts sharing words land near each other.
type HashEmbedder struct {
	dimensions int
}

// NewHashEmbedder returns a deterministic embedder with the given dimensions.
func NewHashEmbedder(dimensions int) *HashEmbedder {
	if dimensions <= 0 {
		dimensions = 384
	}
	return &HashEmbedder{dimensions: dimensions}
}

// Embed returns a deterministic embedding from the text's word hashes.
// Each word contributes a sinusoid seeded by its hash, so overlapping
// vocabularies produce correlated vectors.
func (e *HashEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	emb := make([]float32, e.dimensions)
	words := SplitWords(text)
	if len(words) == 0 {
		words = []string{text}
	}
	for _, w := range words {
		h := HashString(w)
		for i := 0; i < e.dimensions; i++ {
			emb[i] += float32(math.Sin(float64(h*(i+1)))*0.1 + 0.01)
		}
	}
	utils.NormalizeL2(emb)
	return emb, nil
}

// EmbedBatch calls Embed for each text.
func (e *HashEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		emb, err := e.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		embeddings[i] = emb
	}
	return embeddings, nil
}

// Dimensions returns the embedding dimension.
func (e *HashEmbedder) Dimensions() int {
	return e.dimensions
}

// Close is a no-op for HashEmbedder.
func (e *HashEmbedder) Close() error {
	return nil
}
