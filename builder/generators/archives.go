package generators

import (
	"sort"

	"github.com/Master08s/looks-blog/builder/models"
	"github.com/Master08s/looks-blog/builder/renderer"
)

// GroupArchives buckets posts by UTC year and month of creation. Years are
// returned newest first. Months and the posts inside them keep the order in
// which they were first met in posts.
func GroupArchives(posts []*models.Post) []models.ArchiveYear {
	var years []models.ArchiveYear
	yearIdx := make(map[int]int)

	for _, p := range posts {
		t := p.CreatedAt.UTC()
		yi, ok := yearIdx[t.Year()]
		if !ok {
			yi = len(years)
			yearIdx[t.Year()] = yi
			years = append(years, models.ArchiveYear{Year: t.Year()})
		}
		y := &years[yi]

		mi := -1
		for i := range y.Months {
			if y.Months[i].Month == t.Month() {
				mi = i
				break
			}
		}
		if mi < 0 {
			y.Months = append(y.Months, models.ArchiveMonth{Month: t.Month()})
			mi = len(y.Months) - 1
		}
		y.Months[mi].Posts = append(y.Months[mi].Posts, p)
	}

	sort.SliceStable(years, func(i, j int) bool { return years[i].Year > years[j].Year })
	return years
}

// GenerateArchives writes archives.html.
func GenerateArchives(out Output, r *renderer.Renderer, posts []*models.Post) error {
	return out.WritePage(r, "archives.html", renderer.ArchivesPage(GroupArchives(posts)))
}
