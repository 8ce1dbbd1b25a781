package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file")

	if ok, err := FileExists(path); ok || err != nil {
		t.Fatalf("expected missing file, got %v %v", ok, err)
	}
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok, err := FileExists(path); !ok || err != nil {
		t.Fatalf("expected existing file, got %v %v", ok, err)
	}
}

func TestAddress(t *testing.T) {
	if got := Address("", 8080); got != ":8080" {
		t.Fatalf("unexpected address %q", got)
	}
	if got := Address("::1", 80); got != "[::1]:80" {
		t.Fatalf("unexpected address %q", got)
	}
}
