package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Master08s/looks-blog/builder/config"
	"github.com/Master08s/looks-blog/builder/generators"
	"github.com/Master08s/looks-blog/builder/renderer"
)

type renderServiceImpl struct {
	ctx    config.BuildContext
	rnd    *renderer.Renderer
	out    generators.Output
	now    func() time.Time
	logger *slog.Logger
}

// NewRenderService writes every page of the site to out.
func NewRenderService(ctx config.BuildContext, rnd *renderer.Renderer, out generators.Output, now func() time.Time, logger *slog.Logger) RenderService {
	return &renderServiceImpl{
		ctx:    ctx,
		rnd:    rnd,
		out:    out,
		now:    now,
		logger: logger,
	}
}

func (s *renderServiceImpl) Render(result *PostResult) error {
	fmt.Println("📄 Generating pages...")
	posts, cats := result.Posts, result.Categories

	fmt.Println("🏠 Generating index page...")
	pages, err := generators.GenerateIndex(s.out, s.rnd, posts, cats, s.ctx.PageSize, s.ctx.BasePath)
	if err != nil {
		return err
	}
	s.logger.Debug("Index pages written", "pages", pages)

	fmt.Println("📝 Generating post pages...")
	if err := generators.GeneratePosts(s.out, s.rnd, posts, cats); err != nil {
		return err
	}

	fmt.Println("🏷️  Generating category pages...")
	if err := generators.GenerateCategories(s.out, s.rnd, cats); err != nil {
		return err
	}

	fmt.Println("📚 Generating archives page...")
	if err := generators.GenerateArchives(s.out, s.rnd, posts); err != nil {
		return fmt.Errorf("archives: %w", err)
	}

	fmt.Println("🔍 Generating search page...")
	if err := generators.GenerateSearch(s.out, s.rnd, posts); err != nil {
		return err
	}

	if err := s.renderFeeds(result); err != nil {
		return err
	}

	return s.out.Write(".nojekyll", nil)
}

// renderFeeds writes sitemap.xml and rss.xml. Both need absolute URLs, so they
// are skipped when no site URL is configured.
func (s *renderServiceImpl) renderFeeds(result *PostResult) error {
	if s.ctx.SiteOrigin() == "" {
		if s.ctx.Features.Sitemap || s.ctx.Features.RSS {
			s.logger.Warn("site.url is not set, skipping sitemap and RSS")
		}
		return nil
	}
	if s.ctx.Features.Sitemap {
		fmt.Println("🗺️  Generating sitemap...")
		if err := generators.GenerateSitemap(s.out, s.ctx, result.Posts, result.Categories, s.now()); err != nil {
			return fmt.Errorf("sitemap: %w", err)
		}
	}
	if s.ctx.Features.RSS {
		fmt.Println("📡 Generating RSS feed...")
		if err := generators.GenerateRSS(s.out, s.ctx, result.Posts); err != nil {
			return fmt.Errorf("rss: %w", err)
		}
	}
	return nil
}
