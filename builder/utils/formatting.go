package utils

import (
	"sort"
	"time"

	"github.com/Master08s/looks-blog/builder/models"
)

// DisplayLayout is the fixed zh-CN rendering of timestamps.
const DisplayLayout = "2006年1月2日 15:04"

// SortPosts orders posts newest first. Posts created at the same instant keep
// their input order.
func SortPosts(posts []*models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

// ISODate renders the UTC calendar date of t as YYYY-MM-DD.
func ISODate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// FormatTimestamp renders t in loc using DisplayLayout.
func FormatTimestamp(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DisplayLayout)
}
