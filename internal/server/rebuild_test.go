package server

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeServeConfig(t *testing.T, path, title, output string) {
	t.Helper()
	content := "site:\n  title: " + title + "\npaths:\n  templates: " + filepath.Join(filepath.Dir(path), "templates") +
		"\n  assets: " + filepath.Join(filepath.Dir(path), "assets") + "\n  output: " + output + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readIndex(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func newTestRebuilder(t *testing.T) (*rebuilder, string, string) {
	t.Helper()
	root := t.TempDir()
	cfgPath := filepath.Join(root, "config.yaml")
	output := filepath.Join(root, "dist")
	writeServeConfig(t, cfgPath, "First Title", output)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	args := []string{"-offline", "-config", cfgPath}
	b, err := newBuilder(args, logger)
	if err != nil {
		t.Fatalf("newBuilder() error = %v", err)
	}
	if _, err := b.Build(context.Background()); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	srv := New(output, b.Context().BasePath, logger)
	return newRebuilder(args, b, srv, logger), cfgPath, output
}

func TestRebuilder_ReloadsConfig(t *testing.T) {
	r, cfgPath, output := newTestRebuilder(t)
	if !strings.Contains(readIndex(t, output), "First Title") {
		t.Fatal("initial build is missing the site title")
	}

	newOutput := filepath.Join(filepath.Dir(cfgPath), "public")
	writeServeConfig(t, cfgPath, "Second Title", newOutput)
	if !r.isSource(cfgPath) {
		t.Fatal("config file is not a watched source")
	}
	if err := r.onChange(context.Background(), cfgPath); err != nil {
		t.Fatalf("onChange() error = %v", err)
	}

	if !strings.Contains(readIndex(t, newOutput), "Second Title") {
		t.Error("rebuild did not pick up the new title")
	}
	if dir, _ := r.srv.site(); dir != newOutput {
		t.Errorf("server dir = %q, want %q", dir, newOutput)
	}
}

func TestRebuilder_TemplateChangeKeepsConfig(t *testing.T) {
	r, cfgPath, output := newTestRebuilder(t)
	before := r.builder()

	// Edited on disk but not the file that changed.
	writeServeConfig(t, cfgPath, "Unsaved Title", output)
	if err := r.onChange(context.Background(), filepath.Join(filepath.Dir(cfgPath), "templates", "post.html")); err != nil {
		t.Fatalf("onChange() error = %v", err)
	}
	if r.builder() != before {
		t.Error("builder replaced for a non-config change")
	}
	if !strings.Contains(readIndex(t, output), "First Title") {
		t.Error("non-config change reloaded the configuration")
	}
}

func TestRebuilder_BadConfigKeepsBuilder(t *testing.T) {
	r, cfgPath, _ := newTestRebuilder(t)
	before := r.builder()

	if err := os.WriteFile(cfgPath, []byte("site: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := r.onChange(context.Background(), cfgPath); err == nil {
		t.Fatal("onChange() succeeded with a broken config file")
	}
	if r.builder() != before {
		t.Error("builder replaced after a failed reload")
	}
}
