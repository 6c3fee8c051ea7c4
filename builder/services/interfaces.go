package services

import (
	"context"

	"github.com/Master08s/looks-blog/builder/models"
)

// IssueSource is the read-only view of the issue tracker.
type IssueSource interface {
	ListIssues(ctx context.Context) ([]models.Issue, error)
	ListComments(ctx context.Context, commentsURL string) ([]models.Comment, error)
}

// IngestResult is the outcome of issue ingestion.
type IngestResult struct {
	Issues          []models.Issue
	UsedFallback    bool
	CommentsFetched int
}

// IssueService produces the raw issue sequence a build works from. Fetch
// only fails when ctx is cancelled; every other failure falls back.
type IssueService interface {
	Fetch(ctx context.Context) (IngestResult, error)
}

// PostResult contains the blog model derived from the issues
type PostResult struct {
	Posts      []*models.Post
	Categories *models.Categories
}

// PostService turns raw issues into posts and categories
type PostService interface {
	Build(issues []models.Issue) (*PostResult, error)
}

// AssetService handles static asset copying
type AssetService interface {
	Build(ctx context.Context) error
}

// RenderService writes the pages, search data and feeds of a built model
type RenderService interface {
	Render(result *PostResult) error
}
