package clean

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/Master08s/looks-blog/builder/config"
)

// Run removes the configured output directory and returns the exit code.
func Run(args []string) int {
	start := time.Now()
	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		return 1
	}

	removed, err := Dir(afero.NewOsFs(), cfg.Paths.Output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to clean '%s': %v\n", cfg.Paths.Output, err)
		return 1
	}
	if !removed {
		fmt.Printf("🧹 Nothing to clean, '%s' does not exist\n", cfg.Paths.Output)
		return 0
	}
	fmt.Printf("🧹 Removed '%s' in %v\n", cfg.Paths.Output, time.Since(start))
	return 0
}

// Dir deletes dir from fsys. The directory is first renamed aside so a
// half-finished removal never leaves a partial site under the original
// name. It reports whether anything was removed.
func Dir(fsys afero.Fs, dir string) (bool, error) {
	clean := filepath.Clean(dir)
	if clean == "." || clean == string(filepath.Separator) || clean == ".." {
		return false, fmt.Errorf("refusing to remove %q", dir)
	}
	if exists, err := afero.DirExists(fsys, clean); err != nil || !exists {
		return false, err
	}

	tempPath := filepath.Join(filepath.Dir(clean), fmt.Sprintf("%s_deleting_%d", filepath.Base(clean), time.Now().UnixNano()))
	if err := fsys.Rename(clean, tempPath); err != nil {
		if err := fsys.RemoveAll(clean); err != nil {
			return false, err
		}
		return true, nil
	}
	if err := fsys.RemoveAll(tempPath); err != nil {
		return true, fmt.Errorf("removing %s: %w", tempPath, err)
	}
	return true, nil
}
