package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = "/usr/local/var/hirescope/data/db/analyses.db"
	}
	if cfg.Storage.TipsIndexPath == "" {
		cfg.Storage.TipsIndexPath = "/usr/local/var/hirescope/data/indices/tips"
	}
	if cfg.Storage.ExportDir == "" {
		cfg.Storage.ExportDir = "/usr/local/var/hirescope/data/exports"
	}
	if cfg.Embedding.ModelPath == "" {
		cfg.Embedding.ModelPath = "/usr/local/var/hirescope/data/models/all-MiniLM-L6-v2.onnx"
	}
	if cfg.Embedding.Dimensions == 0 {
		cfg.Embedding.Dimensions = 384
	}
	if cfg.Embedding.MaxTokens == 0 {
		cfg.Embedding.MaxTokens = 256
	}
	if cfg.Embedding.CacheSize == 0 {
		cfg.Embedding.CacheSize = 10000
	}
	if cfg.Analysis.SectionThreshold == 0 {
		cfg.Analysis.SectionThreshold = 0.4
	}
	if cfg.Analysis.SectionMerge == 0 {
		cfg.Analysis.SectionMerge = 0.7
	}
	if cfg.Analysis.SemanticMatchMin == 0 {
		cfg.Analysis.SemanticMatchMin = 0.7
	}
	if cfg.Analysis.OCRMinChars == 0 {
		cfg.Analysis.OCRMinChars = 80
	}
	if cfg.Analysis.MaxKeywords == 0 {
		cfg.Analysis.MaxKeywords = 35
	}
	if cfg.Analysis.TipsPerCategory == 0 {
		cfg.Analysis.TipsPerCategory = 3
	}
	if cfg.Analysis.MaxUploadBytes == 0 {
		cfg.Analysis.MaxUploadBytes = 10 << 20
	}
	if cfg.Analysis.AnalyzeTimeoutSec == 0 {
		cfg.Analysis.AnalyzeTimeoutSec = 30
	}
	if cfg.Analysis.LiveTimeoutSec == 0 {
		cfg.Analysis.LiveTimeoutSec = 15
	}
	if cfg.Batch.MaxFiles == 0 {
		cfg.Batch.MaxFiles = 10
	}
	if cfg.Batch.Workers == 0 {
		cfg.Batch.Workers = 4
	}
	if cfg.Batch.TimeoutSec == 0 {
		cfg.Batch.TimeoutSec = 120
	}
}
