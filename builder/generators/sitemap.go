package generators

import (
	"encoding/xml"
	"time"

	"github.com/Master08s/looks-blog/builder/config"
	"github.com/Master08s/looks-blog/builder/models"
	"github.com/Master08s/looks-blog/builder/utils"
)

// GenerateSitemap writes sitemap.xml with absolute URLs for the index,
// the section pages, every post and every category.
func GenerateSitemap(out Output, ctx config.BuildContext, posts []*models.Post, cats *models.Categories, now time.Time) error {
	origin := ctx.SiteOrigin()
	root := origin + ctx.BasePath

	urls := []models.Url{{Loc: root + "/", LastMod: utils.ISODate(now)}}
	for _, page := range []string{"categories.html", "archives.html", "search.html"} {
		urls = append(urls, models.Url{Loc: root + "/" + page})
	}
	for _, p := range posts {
		urls = append(urls, models.Url{Loc: origin + p.URL, LastMod: utils.ISODate(p.UpdatedAt)})
	}
	for _, c := range cats.All() {
		urls = append(urls, models.Url{Loc: root + "/" + CategoryPath(c.Slug)})
	}

	output, err := xml.MarshalIndent(models.UrlSet{Urls: urls}, "", "  ")
	if err != nil {
		return err
	}
	return out.Write("sitemap.xml", append([]byte(xml.Header), output...))
}
