// Package testutil provides testing utilities and fixtures
package testutil

import (
	"fmt"
	"time"

	"github.com/Master08s/looks-blog/builder/config"
	"github.com/Master08s/looks-blog/builder/models"
)

// SampleTime is the fixed clock used across build tests.
var SampleTime = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// CreateSampleConfig creates a valid offline Config for testing
func CreateSampleConfig() *config.Config {
	cfg := config.Default()
	cfg.Site.Title = "Test Blog"
	cfg.Site.Author = "Test Author"
	cfg.GitHub.Owner = "alice"
	cfg.GitHub.Repo = "notes"
	cfg.Build.Timezone = "UTC"
	cfg.Offline = true
	return cfg
}

// CreateSampleIssue creates an open issue authored by alice
func CreateSampleIssue(number int, title string, created, updated time.Time, labels ...models.Label) models.Issue {
	if labels == nil {
		labels = []models.Label{}
	}
	return models.Issue{
		Number:        number,
		Title:         title,
		Body:          CreateTestMarkdown(title),
		State:         "open",
		HTMLURL:       fmt.Sprintf("https://github.com/alice/notes/issues/%d", number),
		CommentsURL:   fmt.Sprintf("https://api.github.com/repos/alice/notes/issues/%d/comments", number),
		User:          models.User{Login: "alice", AvatarURL: "https://github.com/alice.png"},
		Labels:        labels,
		CreatedAt:     created,
		UpdatedAt:     updated,
		IssueComments: []models.Comment{},
	}
}

// CreateTestMarkdown creates sample issue body content for testing
func CreateTestMarkdown(title string) string {
	return `# ` + title + `

This is a test post for testing purposes.

## Section 1

Some content here with **bold** and *italic* text.

- List item 1
- List item 2

[Link to example](https://example.com)
`
}
