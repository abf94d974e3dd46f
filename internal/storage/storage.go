// Package storage persists analysis results. A nil Store is legal
// everywhere and simply disables persistence.
package storage

import (
	"context"
	"errors"

	"github.com/hyperjump/hirescope/internal/models"
)

// ErrNotFound is returned when no result exists for an ID or hash.
var ErrNotFound = errors.New("analysis result not found")

// Store defines analysis result persistence operations.
type Store interface {
	SaveResult(ctx context.Context, result *models.AnalysisResult, contentHash string) error
	GetResult(ctx context.Context, id string) (*models.AnalysisResult, error)
	GetResultByHash(ctx context.Context, contentHash string) (*models.AnalysisResult, error)
	ListResults(ctx context.Context, offset, limit int) ([]*models.AnalysisSummary, error)
	DeleteResult(ctx context.Context, id string) error
	CountResults(ctx context.Context) (int64, error)
	Close() error
}
