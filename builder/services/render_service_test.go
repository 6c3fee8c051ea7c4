package services

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/Master08s/looks-blog/builder/config"
	"github.com/Master08s/looks-blog/builder/generators"
	"github.com/Master08s/looks-blog/builder/github"
	"github.com/Master08s/looks-blog/builder/renderer"
)

func setupRenderServiceTest(t *testing.T, ctx config.BuildContext) (RenderService, afero.Fs, *PostResult) {
	t.Helper()

	tpls, err := renderer.LoadTemplates(afero.NewMemMapFs(), "templates", true, discardLogger())
	if err != nil {
		t.Fatalf("LoadTemplates() error = %v", err)
	}
	rnd := renderer.New(ctx, tpls, discardLogger(), renderer.WithClock(fixedNow))

	result, err := newPostService(ctx).Build(github.FallbackIssues(fixedNow()))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	destFs := afero.NewMemMapFs()
	out := generators.Output{Fs: destFs, Dir: "public"}
	return NewRenderService(ctx, rnd, out, fixedNow, discardLogger()), destFs, result
}

func TestRenderService_Render(t *testing.T) {
	ctx := testContext()
	ctx.Features = config.FeaturesConfig{Sitemap: true, RSS: true}
	service, destFs, result := setupRenderServiceTest(t, ctx)

	if err := service.Render(result); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, path := range []string{
		"index.html",
		"posts/1.html",
		"posts/2.html",
		"categories.html",
		"categories/bo-ke.html",
		"archives.html",
		"search.html",
		"search-data.json",
		"sitemap.xml",
		"rss.xml",
		".nojekyll",
	} {
		if ok, _ := afero.Exists(destFs, "public/"+path); !ok {
			t.Errorf("%s was not written", path)
		}
	}
}

func TestRenderService_FeedsNeedSiteURL(t *testing.T) {
	ctx := testContext()
	ctx.Site.URL = ""
	ctx.BasePath = ""
	ctx.Features = config.FeaturesConfig{Sitemap: true, RSS: true}
	service, destFs, result := setupRenderServiceTest(t, ctx)

	if err := service.Render(result); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for _, path := range []string{"sitemap.xml", "rss.xml"} {
		if ok, _ := afero.Exists(destFs, "public/"+path); ok {
			t.Errorf("%s written without a site URL", path)
		}
	}
	if ok, _ := afero.Exists(destFs, "public/index.html"); !ok {
		t.Error("index.html was not written")
	}
}

func TestRenderService_FeatureFlags(t *testing.T) {
	ctx := testContext()
	ctx.Features = config.FeaturesConfig{Sitemap: false, RSS: true}
	service, destFs, result := setupRenderServiceTest(t, ctx)

	if err := service.Render(result); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if ok, _ := afero.Exists(destFs, "public/sitemap.xml"); ok {
		t.Error("sitemap.xml written with the feature off")
	}
	if ok, _ := afero.Exists(destFs, "public/rss.xml"); !ok {
		t.Error("rss.xml missing")
	}
}

