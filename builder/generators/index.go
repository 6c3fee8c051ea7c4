package generators

import (
	"fmt"

	"github.com/Master08s/looks-blog/builder/models"
	"github.com/Master08s/looks-blog/builder/renderer"
)

// IndexPage is one page of the paginated post list.
type IndexPage struct {
	Path       string
	Posts      []*models.Post
	Pagination models.Pagination
}

// PageCount returns max(1, ceil(posts/pageSize)).
func PageCount(posts, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	if posts == 0 {
		return 1
	}
	return (posts + pageSize - 1) / pageSize
}

// IndexPath is the site-relative file of index page n.
func IndexPath(n int) string {
	if n == 1 {
		return "index.html"
	}
	return fmt.Sprintf("page/%d.html", n)
}

func indexURL(basePath string, n int) string {
	if n == 1 {
		return basePath + "/"
	}
	return fmt.Sprintf("%s/page/%d.html", basePath, n)
}

// Paginate splits posts into index pages of pageSize posts each. There is
// always at least one page.
func Paginate(posts []*models.Post, pageSize int, basePath string) []IndexPage {
	if pageSize < 1 {
		pageSize = 1
	}
	total := PageCount(len(posts), pageSize)
	pages := make([]IndexPage, 0, total)

	for n := 1; n <= total; n++ {
		start := min((n-1)*pageSize, len(posts))
		end := min(start+pageSize, len(posts))

		pg := models.Pagination{Current: n, Total: total}
		if n > 1 {
			pg.PrevLink = `<a href="` + indexURL(basePath, n-1) + `" class="btn">上一页</a>`
		}
		if n < total {
			pg.NextLink = `<a href="` + indexURL(basePath, n+1) + `" class="btn">下一页</a>`
		}

		pages = append(pages, IndexPage{
			Path:       IndexPath(n),
			Posts:      posts[start:end],
			Pagination: pg,
		})
	}
	return pages
}

// GenerateIndex writes index.html and page/{n}.html.
func GenerateIndex(out Output, r *renderer.Renderer, posts []*models.Post, cats *models.Categories, pageSize int, basePath string) (int, error) {
	pages := Paginate(posts, pageSize, basePath)
	for _, p := range pages {
		if err := out.WritePage(r, p.Path, renderer.IndexPage(p.Posts, p.Pagination, cats.All())); err != nil {
			return 0, fmt.Errorf("index page %d: %w", p.Pagination.Current, err)
		}
	}
	return len(pages), nil
}
