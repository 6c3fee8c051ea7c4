package run

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/tdewolff/minify/v2"

	"github.com/Master08s/looks-blog/builder/generators"
	"github.com/Master08s/looks-blog/builder/metrics"
	"github.com/Master08s/looks-blog/builder/renderer"
	"github.com/Master08s/looks-blog/builder/services"
	"github.com/Master08s/looks-blog/builder/utils"
)

// Build executes a single build pass. The site is rendered into memory and
// only replaces the output directory once every page has been generated.
func (b *Builder) Build(ctx context.Context) (*metrics.BuildMetrics, error) {
	m := metrics.NewBuildMetrics()
	fmt.Println("🚀 Starting blog build...")

	tpls, err := renderer.LoadTemplates(b.SourceFs, b.ctx.Paths.Templates, b.ctx.StrictTemplates, b.logger)
	if err != nil {
		return m, fmt.Errorf("failed to load templates: %w", err)
	}

	memFs := afero.NewMemMapFs()
	var mini *minify.M
	if b.ctx.Compress {
		mini = utils.NewMinifier()
	}
	out := generators.Output{Fs: memFs, Dir: renderRoot, Minifier: mini, OnWrite: m.FileWritten}

	// 1. Assets
	assets := services.NewAssetService(b.SourceFs, memFs, b.ctx, renderRoot, m.FileWritten, b.logger)
	if err := m.Phase(&m.AssetTime, func() error { return assets.Build(ctx) }); err != nil {
		return m, err
	}

	// 2. Issues
	var ingest services.IngestResult
	err = m.Phase(&m.IngestTime, func() error {
		var err error
		ingest, err = services.NewIssueService(b.source, b.ctx.Offline, b.logger, b.now).Fetch(ctx)
		return err
	})
	if err != nil {
		return m, err
	}
	m.UsedFallback = ingest.UsedFallback
	m.CommentsFetched = ingest.CommentsFetched

	// 3. Model
	var result *services.PostResult
	err = m.Phase(&m.ModelTime, func() error {
		var err error
		result, err = b.newPostService().Build(ingest.Issues)
		return err
	})
	if err != nil {
		return m, fmt.Errorf("failed to build posts: %w", err)
	}
	m.PostsProcessed = len(result.Posts)
	m.Categories = result.Categories.Len()
	fmt.Printf("📝 Generated %d posts\n", m.PostsProcessed)
	fmt.Printf("🏷️  Found %d categories\n", m.Categories)

	// 4. Pages
	rnd := renderer.New(b.ctx, tpls, b.logger, renderer.WithClock(b.now))
	pages := services.NewRenderService(b.ctx, rnd, out, b.now, b.logger)
	if err := m.Phase(&m.RenderTime, func() error { return pages.Render(result) }); err != nil {
		return m, fmt.Errorf("failed to generate pages: %w", err)
	}

	// 5. Sync
	err = m.Phase(&m.SyncTime, func() error {
		// Past this point the previous site is gone, so stop while it is intact.
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := utils.EmptyDirVFS(b.OutputFs, b.ctx.Paths.Output); err != nil {
			return fmt.Errorf("failed to prepare %s: %w", b.ctx.Paths.Output, err)
		}
		_, err := utils.SyncVFS(ctx, memFs, renderRoot, b.OutputFs, b.ctx.Paths.Output)
		return err
	})
	if err != nil {
		return m, err
	}

	m.RecordEnd()
	return m, nil
}
