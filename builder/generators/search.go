package generators

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Master08s/looks-blog/builder/models"
	"github.com/Master08s/looks-blog/builder/renderer"
	"github.com/Master08s/looks-blog/builder/utils"
)

// SearchData returns the search-data.json entries for posts, in post order.
func SearchData(posts []*models.Post) []models.SearchEntry {
	entries := make([]models.SearchEntry, 0, len(posts))
	for _, p := range posts {
		labels := make([]models.Label, len(p.Labels))
		copy(labels, p.Labels)
		entries = append(entries, models.SearchEntry{
			ID:        p.ID,
			Title:     p.Title,
			Excerpt:   p.Excerpt,
			URL:       p.URL,
			CreatedAt: utils.ISODate(p.CreatedAt),
			Labels:    labels,
		})
	}
	return entries
}

// EncodeSearchData renders entries as an indented JSON array without HTML
// escaping.
func EncodeSearchData(entries []models.SearchEntry) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// GenerateSearch writes search.html and search-data.json.
func GenerateSearch(out Output, r *renderer.Renderer, posts []*models.Post) error {
	if err := out.WritePage(r, "search.html", renderer.SearchPage()); err != nil {
		return fmt.Errorf("search page: %w", err)
	}
	data, err := EncodeSearchData(SearchData(posts))
	if err != nil {
		return fmt.Errorf("encode search data: %w", err)
	}
	return out.Write("search-data.json", data)
}
