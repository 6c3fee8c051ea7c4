package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/Master08s/looks-blog/builder/config"
	"github.com/Master08s/looks-blog/builder/models"
	mdParser "github.com/Master08s/looks-blog/builder/parser"
	"github.com/Master08s/looks-blog/builder/utils"
)

// UpdateThreshold is how long after creation an edit must happen for the
// post to count as updated.
const UpdateThreshold = 60 * time.Second

type postServiceImpl struct {
	ctx       config.BuildContext
	md        goldmark.Markdown
	sanitizer *bluemonday.Policy
	logger    *slog.Logger
}

func NewPostService(ctx config.BuildContext, md goldmark.Markdown, logger *slog.Logger) PostService {
	return &postServiceImpl{
		ctx:       ctx,
		md:        md,
		sanitizer: bluemonday.UGCPolicy(),
		logger:    logger,
	}
}

// Build converts issues in their fetched order, assigns category membership
// in that same order and finally sorts the posts newest first.
func (s *postServiceImpl) Build(issues []models.Issue) (*PostResult, error) {
	fmt.Println("🔄 Processing posts...")

	posts := make([]*models.Post, 0, len(issues))
	categories := models.NewCategories()

	for i := range issues {
		post, err := s.buildPost(&issues[i])
		if err != nil {
			return nil, fmt.Errorf("issue #%d: %w", issues[i].Number, err)
		}
		for _, label := range post.Labels {
			categories.Add(label, utils.CategorySlug(label.Name), post)
		}
		posts = append(posts, post)
	}

	utils.SortPosts(posts)

	s.logger.Debug("Built post model", "posts", len(posts), "categories", categories.Len())
	return &PostResult{Posts: posts, Categories: categories}, nil
}

func (s *postServiceImpl) buildPost(issue *models.Issue) (*models.Post, error) {
	doc, err := mdParser.Convert(s.md, issue.Body)
	if err != nil {
		return nil, err
	}

	labels := issue.Labels
	if labels == nil {
		labels = []models.Label{}
	}

	url := fmt.Sprintf("%s/posts/%d.html", s.ctx.BasePath, issue.Number)
	post := &models.Post{
		ID:               issue.Number,
		Title:            issue.Title,
		Content:          doc.HTML,
		Excerpt:          utils.Excerpt(issue.Body, s.ctx.ExcerptLength),
		Author:           issue.User.Login,
		Avatar:           issue.User.AvatarURL,
		CreatedAt:        issue.CreatedAt,
		UpdatedAt:        issue.UpdatedAt,
		IsUpdated:        IsUpdated(issue.CreatedAt, issue.UpdatedAt),
		CreatedFormatted: utils.FormatTimestamp(issue.CreatedAt, s.ctx.Location),
		UpdatedFormatted: utils.FormatTimestamp(issue.UpdatedAt, s.ctx.Location),
		Labels:           labels,
		URL:              url,
		FullURL:          s.ctx.SiteOrigin() + url,
		GitHubURL:        issue.HTMLURL,
		State:            issue.State,
		CommentsCount:    issue.Comments,
		TOC:              doc.TOC,
		ReadingTime:      utils.ReadingTime(doc.PlainText),
	}

	for _, c := range issue.IssueComments {
		rendered, err := mdParser.Convert(s.md, c.Body)
		if err != nil {
			return nil, fmt.Errorf("comment %d: %w", c.ID, err)
		}
		post.Comments = append(post.Comments, models.PostComment{
			Author:    c.User.Login,
			Avatar:    c.User.AvatarURL,
			URL:       c.HTMLURL,
			Created:   c.CreatedAt,
			Formatted: utils.FormatTimestamp(c.CreatedAt, s.ctx.Location),
			HTML:      s.sanitizer.Sanitize(rendered.HTML),
		})
	}

	return post, nil
}

// IsUpdated reports whether updated lies more than UpdateThreshold after created.
func IsUpdated(created, updated time.Time) bool {
	return updated.Sub(created) > UpdateThreshold
}
