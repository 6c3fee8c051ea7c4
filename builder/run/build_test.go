package run

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/Master08s/looks-blog/builder/config"
	"github.com/Master08s/looks-blog/builder/renderer"
	"github.com/Master08s/looks-blog/builder/services/mocks"
	"github.com/Master08s/looks-blog/builder/testutil"
)

func newTestBuilder(t *testing.T, cfg *config.Config, opts ...Option) (*Builder, afero.Fs) {
	t.Helper()
	sourceFs, outFs := testutil.CreateTestFilesystem()
	opts = append([]Option{
		WithSourceFs(sourceFs),
		WithOutputFs(outFs),
		WithClock(testutil.FixedClock(testutil.SampleTime)),
	}, opts...)
	b, err := NewBuilder(cfg, testutil.DiscardLogger(), opts...)
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}
	return b, outFs
}

func TestBuild_FallbackTwoPages(t *testing.T) {
	cfg := testutil.CreateSampleConfig()
	cfg.Build.PostsPerPage = 1
	b, out := newTestBuilder(t, cfg)

	m, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !m.UsedFallback || m.PostsProcessed != 2 || m.Categories != 4 {
		t.Errorf("metrics = %+v", m)
	}

	testutil.AssertFileContains(t, out, "dist/index.html", "欢迎来到 Looks Blog")
	testutil.AssertFileNotContains(t, out, "dist/index.html", "如何使用这个博客系统")
	testutil.AssertFileContains(t, out, "dist/page/2.html", "如何使用这个博客系统")
	testutil.AssertFileNotExists(t, out, "dist/page/3.html")

	cats := testutil.ReadFile(t, out, "dist/categories.html")
	for _, name := range []string{"博客", "介绍", "教程", "使用指南"} {
		if !strings.Contains(cats, ">"+name+"</a><span>1</span>") {
			t.Errorf("categories.html does not list %s with one post", name)
		}
	}

	for _, path := range []string{
		"dist/posts/1.html",
		"dist/posts/2.html",
		"dist/archives.html",
		"dist/search.html",
		"dist/search-data.json",
		"dist/.nojekyll",
	} {
		testutil.AssertFileExists(t, out, path)
	}
	// No site URL means no absolute links to put in feeds.
	testutil.AssertFileNotExists(t, out, "dist/sitemap.xml")
	if m.FilesWritten() == 0 {
		t.Error("no files counted")
	}
}

func TestBuild_UpdatedIndicator(t *testing.T) {
	created := testutil.SampleTime.Add(-48 * time.Hour)
	src := mocks.NewMockIssueSource(
		testutil.CreateSampleIssue(10, "Barely touched", created, created.Add(2*time.Second)),
		testutil.CreateSampleIssue(11, "Edited later", created, created.Add(3600*time.Second)),
	)
	cfg := testutil.CreateSampleConfig()
	cfg.Offline = false
	b, out := newTestBuilder(t, cfg, WithIssueSource(src))

	m, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if m.UsedFallback {
		t.Fatal("unexpected fallback")
	}
	testutil.AssertFileNotContains(t, out, "dist/posts/10.html", `class="updated-badge"`, `class="updated-info`)
	testutil.AssertFileContains(t, out, "dist/posts/11.html", `class="updated-badge"`, `class="updated-info`)
}

func TestBuild_BasePath(t *testing.T) {
	cfg := testutil.CreateSampleConfig()
	cfg.Site.URL = "https://alice.github.io/notes/"
	b, out := newTestBuilder(t, cfg)

	if _, err := b.Build(context.Background()); err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	testutil.AssertFileContains(t, out, "dist/index.html",
		`href="/notes/assets/style.css"`,
		`href="/notes/"`,
		`href="/notes/posts/1.html"`,
		`href="/notes/categories/bo-ke.html"`,
	)
	testutil.AssertFileContains(t, out, "dist/search.html", `fetch('/notes/search-data.json')`)
	testutil.AssertFileContains(t, out, "dist/search-data.json", `"url": "/notes/posts/2.html"`)
	testutil.AssertFileContains(t, out, "dist/sitemap.xml", "<loc>https://alice.github.io/notes/posts/1.html</loc>")
	testutil.AssertFileExists(t, out, "dist/rss.xml")
}

func TestBuild_CopiesAssets(t *testing.T) {
	cfg := testutil.CreateSampleConfig()
	b, out := newTestBuilder(t, cfg)
	_ = afero.WriteFile(b.SourceFs, "assets/style.css", []byte("body { color: red; }"), 0644)

	if _, err := b.Build(context.Background()); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	testutil.AssertFileContains(t, out, "dist/assets/style.css", "color: red")
}

func TestBuild_TemplateErrorKeepsOutput(t *testing.T) {
	cfg := testutil.CreateSampleConfig()
	b, out := newTestBuilder(t, cfg)
	_ = afero.WriteFile(out, "dist/index.html", []byte("previous"), 0644)
	_ = afero.WriteFile(b.SourceFs, "templates/index.html", []byte("{{posts}}"), 0644)

	_, err := b.Build(context.Background())
	if !errors.Is(err, renderer.ErrTemplateMissing) {
		t.Fatalf("Build() error = %v, want ErrTemplateMissing", err)
	}
	if got := testutil.ReadFile(t, out, "dist/index.html"); got != "previous" {
		t.Errorf("output replaced after a failed build: %q", got)
	}
}

func TestBuild_CancelledKeepsOutput(t *testing.T) {
	cfg := testutil.CreateSampleConfig()
	cfg.Offline = false
	src := mocks.NewMockIssueSource()
	src.ListErr = context.Canceled
	b, out := newTestBuilder(t, cfg, WithIssueSource(src))
	_ = afero.WriteFile(out, "dist/index.html", []byte("previous"), 0644)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Build(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Build() error = %v, want context.Canceled", err)
	}
	if got := testutil.ReadFile(t, out, "dist/index.html"); got != "previous" {
		t.Errorf("output replaced after a cancelled build: %q", got)
	}
}

func TestBuild_ReplacesStaleOutput(t *testing.T) {
	cfg := testutil.CreateSampleConfig()
	b, out := newTestBuilder(t, cfg)
	_ = afero.WriteFile(out, "dist/posts/99.html", []byte("old"), 0644)

	if _, err := b.Build(context.Background()); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	testutil.AssertFileNotExists(t, out, "dist/posts/99.html")
}

func TestIsSourcePath(t *testing.T) {
	cfg := testutil.CreateSampleConfig()
	cfg.ConfigFile = "config.yaml"
	b, _ := newTestBuilder(t, cfg)

	tests := []struct {
		path string
		want bool
	}{
		{"templates/index.html", true},
		{"assets/css/site.css", true},
		{"./assets/logo.png", true},
		{"config.yaml", true},
		{"dist/index.html", false},
		{"templates-old/index.html", false},
		{"README.md", false},
	}
	for _, tt := range tests {
		if got := b.IsSourcePath(tt.path); got != tt.want {
			t.Errorf("IsSourcePath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

