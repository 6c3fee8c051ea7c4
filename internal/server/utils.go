package server

import (
	"fmt"
	"path/filepath"
	"strings"
)

// validatePath ensures that the user-provided path is within the base directory
// and prevents path traversal attacks.
func validatePath(baseDir, userPath string) (string, error) {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("invalid base directory: %w", err)
	}

	// Clean the user path to remove any ../ or ./
	cleanPath := filepath.Clean(filepath.FromSlash(userPath))

	absUserPath, err := filepath.Abs(filepath.Join(baseDir, cleanPath))
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}

	relPath, err := filepath.Rel(absBase, absUserPath)
	if err != nil {
		return "", fmt.Errorf("path validation error: %w", err)
	}
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal attempt detected")
	}

	return absUserPath, nil
}

// normalizeRequestPath strips the site's base path from a request path and
// cleans the rest. ok is false when the request lies outside the base path.
func normalizeRequestPath(rawPath, basePath string) (string, bool) {
	if basePath != "" {
		if rawPath != basePath && !strings.HasPrefix(rawPath, basePath+"/") {
			return "", false
		}
		rawPath = strings.TrimPrefix(rawPath, basePath)
	}
	if rawPath == "" {
		rawPath = "/"
	}
	return filepath.ToSlash(filepath.Clean("/" + rawPath)), true
}
