// Package embedding provides text embedding via ONNX with a deterministic fallback.
package embedding

import (
	"context"

	"go.uber.org/zap"

	"github.com/hyperjump/hirescope/internal/config"
)

// Embedder produces vector embeddings for text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Dimensions() int
	Close() error
}

// New returns the best available embedder for cfg. It prefers the ONNX
// MiniLM model; when the model cannot be loaded (missing file, no CGO)
// it falls back to the deterministic hash embedder so analysis stays
// functional with reduced semantic quality.
func New(cfg config.EmbeddingConfig, logger *zap.Logger) Embedder {
	emb, err := NewONNXEmbedder(cfg.ModelPath, cfg.Dimensions, cfg.MaxTokens, cfg.CacheSize)
	if err != nil {
		logger.Warn("ONNX embedder unavailable, using deterministic fallback",
			zap.String("model_path", cfg.ModelPath),
			zap.Error(err))
		return NewHashEmbedder(cfg.Dimensions)
	}
	logger.Info("ONNX embedder loaded",
		zap.String("model_path", cfg.ModelPath),
		zap.Int("dimensions", cfg.Dimensions))
	return emb
}
