package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "nested", "downloads")

	if err := CreateDirectoryIfNotExists(target); err != nil {
		t.Fatalf("Expected no error creating directory, got %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Expected directory to exist, got %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected a directory")
	}

	// Second call on an existing directory is a no-op
	if err := CreateDirectoryIfNotExists(target); err != nil {
		t.Errorf("Expected no error for existing directory, got %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	dir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if dir == "" {
		t.Error("Expected non-empty downloads directory")
	}

	if filepath.Base(dir) != "Downloads" {
		t.Errorf("Expected path ending in 'Downloads', got %s", dir)
	}
}

func TestOpenDirectoryInManager_MissingDirectory(t *testing.T) {
	err := OpenDirectoryInManager(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestOpenDirectoryInManager_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if err := OpenDirectoryInManager(file); err == nil {
		t.Error("Expected error for non-directory path")
	}
}
