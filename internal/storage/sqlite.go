package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hyperjump/hirescope/internal/models"
)

// SQLiteStore implements Store using SQLite. The full result is kept
// as JSON next to the columns the listing and lookup queries need.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database at dbPath and
// initializes the schema. Parent directories are created if missing.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS analyses (
		id TEXT PRIMARY KEY,
		filename TEXT,
		content_hash TEXT,
		score REAL NOT NULL,
		role TEXT,
		result TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);
	CREATE INDEX IF NOT EXISTS idx_analyses_content_hash ON analyses(content_hash);
	`
	_, err := db.Exec(schema)
	return err
}

// SaveResult inserts one analysis result keyed by its ID.
func (s *SQLiteStore) SaveResult(ctx context.Context, result *models.AnalysisResult, contentHash string) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO analyses (id, filename, content_hash, score, role, result, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		result.ID, result.Filename, contentHash, result.Score, result.Breakdown.Role,
		string(payload), time.Now(),
	)
	return err
}

// GetResult returns a stored result by ID.
func (s *SQLiteStore) GetResult(ctx context.Context, id string) (*models.AnalysisResult, error) {
	return s.getBy(ctx, `SELECT result FROM analyses WHERE id = ?`, id)
}

// GetResultByHash returns the most recent result for a content hash.
func (s *SQLiteStore) GetResultByHash(ctx context.Context, contentHash string) (*models.AnalysisResult, error) {
	return s.getBy(ctx,
		`SELECT result FROM analyses WHERE content_hash = ? ORDER BY created_at DESC LIMIT 1`,
		contentHash)
}

func (s *SQLiteStore) getBy(ctx context.Context, query, arg string) (*models.AnalysisResult, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}
	return &result, nil
}

// ListResults returns summaries, newest first.
func (s *SQLiteStore) ListResults(ctx context.Context, offset, limit int) ([]*models.AnalysisSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, filename, score, role, created_at
		 FROM analyses ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*models.AnalysisSummary
	for rows.Next() {
		var sum models.AnalysisSummary
		if err := rows.Scan(&sum.ID, &sum.Filename, &sum.Score, &sum.Role, &sum.CreatedAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, &sum)
	}
	return summaries, rows.Err()
}

// DeleteResult removes a stored result by ID.
func (s *SQLiteStore) DeleteResult(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM analyses WHERE id = ?`, id)
	return err
}

// CountResults returns the number of stored results.
func (s *SQLiteStore) CountResults(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM analyses`).Scan(&count)
	return count, err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
