package generators

import (
	"fmt"

	"github.com/Master08s/looks-blog/builder/models"
	"github.com/Master08s/looks-blog/builder/renderer"
)

// CategoryPath is the site-relative file of a category page.
func CategoryPath(slug string) string {
	return "categories/" + slug + ".html"
}

// GenerateCategories writes categories.html and one page per category.
// Distinct names that share a slug write the same file; the later one wins.
func GenerateCategories(out Output, r *renderer.Renderer, cats *models.Categories) error {
	all := cats.All()
	if err := out.WritePage(r, "categories.html", renderer.CategoriesPage(all)); err != nil {
		return fmt.Errorf("categories index: %w", err)
	}
	for _, c := range all {
		if err := out.WritePage(r, CategoryPath(c.Slug), renderer.CategoryPage(c, all)); err != nil {
			return fmt.Errorf("category %q: %w", c.Name, err)
		}
	}
	return nil
}
