package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// WriteFileVFS writes data to path, creating parent directories as needed.
func WriteFileVFS(fs afero.Fs, path string, data []byte) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// EmptyDirVFS removes everything inside dir and leaves dir itself in place.
func EmptyDirVFS(fs afero.Fs, dir string) error {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fs.MkdirAll(dir, 0755)
		}
		return fmt.Errorf("failed to read %s: %w", dir, err)
	}
	for _, e := range entries {
		if err := fs.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return fmt.Errorf("failed to remove %s: %w", e.Name(), err)
		}
	}
	return nil
}

// DirExists reports whether path exists and is a directory.
func DirExists(fs afero.Fs, path string) bool {
	ok, err := afero.DirExists(fs, path)
	return err == nil && ok
}
