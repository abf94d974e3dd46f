// Package batch ranks several resumes against one job description
// using a bounded worker pool, and exports the comparison as XLSX.
package batch

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hyperjump/hirescope/internal/analyzer"
	"github.com/hyperjump/hirescope/internal/config"
	"github.com/hyperjump/hirescope/internal/models"
	"github.com/hyperjump/hirescope/pkg/utils"
)

// ErrTooManyFiles is returned when a batch exceeds the file limit.
var ErrTooManyFiles = errors.New("too many files in batch")

// ErrNoFiles is returned for an empty batch.
var ErrNoFiles = errors.New("no files in batch")

// File is one named document submitted for batch analysis.
type File struct {
	Name    string
	Content []byte
}

// Ranker fans batch files out over a bounded pool of analysis workers.
type Ranker struct {
	analyzer *analyzer.Analyzer
	maxFiles int
	workers  int
	logger   *zap.Logger
}

func NewRanker(a *analyzer.Analyzer, cfg config.BatchConfig, logger *zap.Logger) *Ranker {
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	maxFiles := cfg.MaxFiles
	if maxFiles < 1 {
		maxFiles = 1
	}
	return &Ranker{analyzer: a, maxFiles: maxFiles, workers: workers, logger: logger}
}

// Analyze scores every file against jdText. A file that fails to
// extract or score becomes an error entry and never aborts the batch;
// only context cancellation stops the run early. Entries are sorted by
// score descending with the original submission order breaking ties,
// and successful entries get 1-based ranks.
func (r *Ranker) Analyze(ctx context.Context, files []File, jdText string) (*models.BatchResult, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	if len(files) > r.maxFiles {
		return nil, fmt.Errorf("%w: got %d, limit %d", ErrTooManyFiles, len(files), r.maxFiles)
	}

	entries := make([]models.BatchEntry, len(files))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, file := range files {
		g.Go(func() error {
			result, err := r.analyzer.Analyze(gCtx, file.Name, file.Content, jdText)
			if err != nil {
				// Cancellation aborts the whole batch; anything else is
				// isolated to this entry.
				if gCtx.Err() != nil {
					return gCtx.Err()
				}
				r.logger.Warn("batch entry failed",
					zap.String("filename", file.Name),
					zap.Error(err))
				entries[i] = models.BatchEntry{
					Filename: file.Name,
					Status:   models.StatusError,
					Error:    err.Error(),
				}
				return nil
			}
			entries[i] = models.BatchEntry{
				Filename: file.Name,
				Status:   models.StatusOK,
				Score:    result.Score,
				Result:   result,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })

	rank := 1
	stats := models.BatchStats{}
	for i := range entries {
		if entries[i].Status != models.StatusOK {
			stats.Failed++
			continue
		}
		entries[i].Rank = rank
		rank++
		score := entries[i].Score
		if stats.Successful == 0 || score > stats.Highest {
			stats.Highest = score
		}
		if stats.Successful == 0 || score < stats.Lowest {
			stats.Lowest = score
		}
		stats.Average += score
		stats.Successful++
	}
	if stats.Successful > 0 {
		stats.Average = utils.Round2(stats.Average / float64(stats.Successful))
	}

	r.logger.Info("batch analysis complete",
		zap.Int("files", len(files)),
		zap.Int("successful", stats.Successful),
		zap.Int("failed", stats.Failed))
	return &models.BatchResult{Entries: entries, Stats: stats}, nil
}
