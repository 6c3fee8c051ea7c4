package testutil

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// DiscardLogger returns a logger that drops everything
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// CreateTestFilesystem creates source and destination filesystems for testing
func CreateTestFilesystem() (afero.Fs, afero.Fs) {
	return afero.NewMemMapFs(), afero.NewMemMapFs()
}

// CreateTestFilesystemWithContent creates filesystems with initial content
func CreateTestFilesystemWithContent(files map[string]string) (afero.Fs, afero.Fs) {
	sourceFs, destFs := CreateTestFilesystem()
	for path, content := range files {
		dir := filepath.Dir(path)
		if err := sourceFs.MkdirAll(dir, 0755); err != nil {
			panic(err)
		}
		if err := afero.WriteFile(sourceFs, path, []byte(content), 0644); err != nil {
			panic(err)
		}
	}
	return sourceFs, destFs
}

// ReadFile returns the content of path, failing the test if it is missing
func ReadFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

// AssertFileExists checks if a file exists in the filesystem
func AssertFileExists(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	exists, err := afero.Exists(fs, path)
	if err != nil {
		t.Fatalf("Error checking file existence: %v", err)
	}
	if !exists {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	exists, err := afero.Exists(fs, path)
	if err != nil {
		t.Fatalf("Error checking file existence: %v", err)
	}
	if exists {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertFileContains checks that path holds every one of substrs
func AssertFileContains(t *testing.T, fs afero.Fs, path string, substrs ...string) {
	t.Helper()
	content := ReadFile(t, fs, path)
	for _, s := range substrs {
		if !strings.Contains(content, s) {
			t.Errorf("File %s does not contain %q", path, s)
		}
	}
}

// AssertFileNotContains checks that path holds none of substrs
func AssertFileNotContains(t *testing.T, fs afero.Fs, path string, substrs ...string) {
	t.Helper()
	content := ReadFile(t, fs, path)
	for _, s := range substrs {
		if strings.Contains(content, s) {
			t.Errorf("File %s unexpectedly contains %q", path, s)
		}
	}
}
