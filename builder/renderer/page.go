package renderer

import (
	"github.com/Master08s/looks-blog/builder/models"
)

// PageData is the template context of one page. It is built through the
// per-kind constructors below, so each kind carries exactly its own fields.
type PageData struct {
	kind       PageKind
	posts      []*models.Post
	pagination models.Pagination
	post       *models.Post
	categories []*models.Category
	category   *models.Category
	archives   []models.ArchiveYear
}

func (d PageData) Kind() PageKind { return d.kind }

func IndexPage(posts []*models.Post, pagination models.Pagination, categories []*models.Category) PageData {
	return PageData{kind: PageIndex, posts: posts, pagination: pagination, categories: categories}
}

func PostPage(post *models.Post, categories []*models.Category) PageData {
	return PageData{kind: PagePost, post: post, categories: categories}
}

func CategoriesPage(categories []*models.Category) PageData {
	return PageData{kind: PageCategories, categories: categories}
}

// CategoryPage lists the posts of category, in the category's own order.
func CategoryPage(category *models.Category, categories []*models.Category) PageData {
	return PageData{kind: PageCategory, category: category, posts: category.Posts, categories: categories}
}

func ArchivesPage(years []models.ArchiveYear) PageData {
	return PageData{kind: PageArchives, archives: years}
}

func SearchPage() PageData {
	return PageData{kind: PageSearch}
}
