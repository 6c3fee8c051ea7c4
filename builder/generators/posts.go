package generators

import (
	"fmt"

	"github.com/Master08s/looks-blog/builder/models"
	"github.com/Master08s/looks-blog/builder/renderer"
)

// PostPath is the site-relative file of a post.
func PostPath(id int) string {
	return fmt.Sprintf("posts/%d.html", id)
}

// GeneratePosts writes one page per post.
func GeneratePosts(out Output, r *renderer.Renderer, posts []*models.Post, cats *models.Categories) error {
	for _, p := range posts {
		if err := out.WritePage(r, PostPath(p.ID), renderer.PostPage(p, cats.All())); err != nil {
			return fmt.Errorf("post %d: %w", p.ID, err)
		}
	}
	return nil
}
