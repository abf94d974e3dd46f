// Package config provides configuration loading and structs for the HireScope server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug     bool            `yaml:"debug"`
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Batch     BatchConfig     `yaml:"batch"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StorageConfig holds paths for the results database and tips index.
type StorageConfig struct {
	DatabasePath  string `yaml:"database_path"`
	TipsIndexPath string `yaml:"tips_index_path"`
	ExportDir     string `yaml:"export_dir"`
}

// EmbeddingConfig holds ONNX embedder settings.
type EmbeddingConfig struct {
	ModelPath       string `yaml:"model_path"`
	Dimensions      int    `yaml:"dimensions"`
	MaxTokens       int    `yaml:"max_tokens"`
	UseQuantization bool   `yaml:"use_quantization"`
	CacheSize       int    `yaml:"cache_size"`
}

// AnalysisConfig holds parsing and scoring thresholds.
type AnalysisConfig struct {
	SectionThreshold  float64 `yaml:"section_threshold"`  // minimum similarity to accept a header
	SectionMerge      float64 `yaml:"section_merge"`      // similarity at which adjacent headers merge
	SemanticMatchMin  float64 `yaml:"semantic_match_min"` // keyword-to-resume semantic fallback floor
	OCRMinChars       int     `yaml:"ocr_min_chars"`      // below this, PDF extraction falls back to OCR
	MaxKeywords       int     `yaml:"max_keywords"`
	TipsPerCategory   int     `yaml:"tips_per_category"`
	MaxUploadBytes    int64   `yaml:"max_upload_bytes"`
	AnalyzeTimeoutSec int     `yaml:"analyze_timeout_sec"`
	LiveTimeoutSec    int     `yaml:"live_timeout_sec"`
}

// BatchConfig holds batch analysis limits.
type BatchConfig struct {
	MaxFiles   int `yaml:"max_files"`
	Workers    int `yaml:"workers"`
	TimeoutSec int `yaml:"timeout_sec"`
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Storage.DatabasePath = expandPath(cfg.Storage.DatabasePath, configDir)
	cfg.Storage.TipsIndexPath = expandPath(cfg.Storage.TipsIndexPath, configDir)
	cfg.Storage.ExportDir = expandPath(cfg.Storage.ExportDir, configDir)
	cfg.Embedding.ModelPath = expandPath(cfg.Embedding.ModelPath, configDir)

	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
