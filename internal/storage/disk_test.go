package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiskUsageBytes(t *testing.T) {
	dir := t.TempDir()

	dbFile := filepath.Join(dir, "hirescope.db")
	if err := os.WriteFile(dbFile, make([]byte, 128), 0644); err != nil {
		t.Fatal(err)
	}
	idxDir := filepath.Join(dir, "tips.bleve")
	if err := os.MkdirAll(filepath.Join(idxDir, "store"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(idxDir, "index_meta.json"), make([]byte, 32), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(idxDir, "store", "root.bolt"), make([]byte, 64), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		paths []string
		want  int64
	}{
		{"single file", []string{dbFile}, 128},
		{"directory recursive", []string{idxDir}, 96},
		{"file plus directory", []string{dbFile, idxDir}, 224},
		{"missing path skipped", []string{dbFile, filepath.Join(dir, "gone")}, 128},
		{"empty path skipped", []string{"", dbFile}, 128},
		{"nothing", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DiskUsageBytes(tt.paths...)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("DiskUsageBytes() = %d, want %d", got, tt.want)
			}
		})
	}
}
