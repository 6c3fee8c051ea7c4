package generators

import (
	"encoding/xml"
	"time"

	"github.com/Master08s/looks-blog/builder/config"
	"github.com/Master08s/looks-blog/builder/models"
)

// MaxFeedItems caps the number of posts in rss.xml.
const MaxFeedItems = 20

// GenerateRSS writes an RSS 2.0 feed of the newest posts.
func GenerateRSS(out Output, ctx config.BuildContext, posts []*models.Post) error {
	var items []models.Item
	for i, p := range posts {
		if i == MaxFeedItems {
			break
		}
		var cats []string
		for _, l := range p.Labels {
			cats = append(cats, l.Name)
		}
		items = append(items, models.Item{
			Title:       p.Title,
			Link:        p.FullURL,
			Description: p.Excerpt,
			PubDate:     p.CreatedAt.UTC().Format(time.RFC1123Z),
			Guid:        p.FullURL,
			Categories:  cats,
		})
	}
	rss := models.Rss{
		Version: "2.0",
		Channel: models.Channel{
			Title:       ctx.Site.Title,
			Link:        ctx.SiteOrigin() + ctx.BasePath + "/",
			Description: ctx.Site.Description,
			Items:       items,
		},
	}
	output, err := xml.MarshalIndent(rss, "", "  ")
	if err != nil {
		return err
	}
	return out.Write("rss.xml", append([]byte(xml.Header), output...))
}
