package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Master08s/looks-blog/builder/github"
	"github.com/Master08s/looks-blog/builder/models"
)

type issueServiceImpl struct {
	source  IssueSource
	offline bool
	logger  *slog.Logger
	now     func() time.Time
}

// NewIssueService returns an IssueService reading from source. With offline
// set, or when any remote call fails, the built-in sample issues are used.
func NewIssueService(source IssueSource, offline bool, logger *slog.Logger, now func() time.Time) IssueService {
	if now == nil {
		now = time.Now
	}
	return &issueServiceImpl{
		source:  source,
		offline: offline,
		logger:  logger,
		now:     now,
	}
}

func (s *issueServiceImpl) Fetch(ctx context.Context) (IngestResult, error) {
	if err := ctx.Err(); err != nil {
		return IngestResult{}, err
	}
	if s.offline || s.source == nil {
		s.logger.Info("Offline build, using sample posts")
		return s.fallback(), nil
	}

	fmt.Println("📡 Fetching issues from GitHub...")
	issues, comments, err := s.fetchRemote(ctx)
	if err != nil {
		// A cancelled build is not a remote failure.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return IngestResult{}, ctxErr
		}
		s.logger.Warn("Failed to fetch issues, using sample posts", "error", err)
		fmt.Println("🔄 Using sample posts instead...")
		return s.fallback(), nil
	}

	fmt.Printf("📄 Found %d issues\n", len(issues))
	return IngestResult{Issues: issues, CommentsFetched: comments}, nil
}

// fetchRemote is all-or-nothing: one failed comment request discards the
// whole listing.
func (s *issueServiceImpl) fetchRemote(ctx context.Context) ([]models.Issue, int, error) {
	issues, err := s.source.ListIssues(ctx)
	if err != nil {
		return nil, 0, err
	}

	fetched := 0
	for i := range issues {
		if issues[i].Comments == 0 {
			issues[i].IssueComments = []models.Comment{}
			continue
		}
		comments, err := s.source.ListComments(ctx, issues[i].CommentsURL)
		if err != nil {
			return nil, 0, fmt.Errorf("issue #%d: %w", issues[i].Number, err)
		}
		issues[i].IssueComments = comments
		fetched += len(comments)
	}
	return issues, fetched, nil
}

func (s *issueServiceImpl) fallback() IngestResult {
	issues := github.FallbackIssues(s.now())
	n := 0
	for _, is := range issues {
		n += len(is.IssueComments)
	}
	return IngestResult{Issues: issues, UsedFallback: true, CommentsFetched: n}
}
