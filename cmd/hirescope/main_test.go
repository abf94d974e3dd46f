package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hyperjump/hirescope/internal/cli"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in     string
		want   cli.OutputFormat
		wantOK bool
	}{
		{"text", cli.OutputText, true},
		{"", cli.OutputText, true},
		{"json", cli.OutputJSON, true},
		{"xml", cli.OutputText, false},
	}
	for _, tt := range tests {
		got, ok := parseFormat(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("parseFormat(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestReadJobDescription(t *testing.T) {
	dir := t.TempDir()
	jdPath := filepath.Join(dir, "jd.txt")
	if err := os.WriteFile(jdPath, []byte("from file"), 0600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		inline string
		path   string
		want   string
	}{
		{"inline wins", "inline text", jdPath, "inline text"},
		{"file fallback", "", jdPath, "from file"},
		{"both empty", "", "", ""},
		{"whitespace inline falls through", "   ", jdPath, "from file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readJobDescription(tt.inline, tt.path)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("readJobDescription() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadJobDescription_MissingFile(t *testing.T) {
	if _, err := readJobDescription("", filepath.Join(t.TempDir(), "gone.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadConfig_CwdFallback(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("server:\n  port: 9999\n"), 0600); err != nil {
		t.Fatal(err)
	}
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(orig)

	cfg, resolved, err := loadConfig(defaultConfigPath)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("port = %d, want 9999 from cwd config", cfg.Server.Port)
	}
	if filepath.Base(resolved) != "config.yaml" {
		t.Errorf("resolved path = %q", resolved)
	}
}

func TestLoadConfig_DefaultsWhenMissing(t *testing.T) {
	dir := t.TempDir()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(orig)

	cfg, resolved, err := loadConfig(defaultConfigPath)
	if err != nil {
		t.Fatalf("missing default config should fall back to defaults: %v", err)
	}
	if resolved != "" {
		t.Errorf("resolved = %q, want empty for built-in defaults", resolved)
	}
	if cfg.Server.Port == 0 || cfg.Batch.MaxFiles == 0 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadConfig_ExplicitMissingPathFails(t *testing.T) {
	if _, _, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("explicit missing config path should fail")
	}
}
