// Package renderer turns page contexts into HTML by placeholder substitution.
package renderer

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/Master08s/looks-blog/builder/config"
	"github.com/Master08s/looks-blog/builder/models"
	"github.com/Master08s/looks-blog/builder/utils"
)

var (
	ErrTemplateMissing    = errors.New("template missing")
	ErrUnknownPlaceholder = errors.New("unknown placeholder")
)

type Renderer struct {
	ctx       config.BuildContext
	templates Templates
	logger    *slog.Logger
	now       func() time.Time
	pick      func(n int) int
}

type Option func(*Renderer)

// WithClock sets the clock used for the outdated notice.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// WithPicker sets the source used to choose the outdated-notice phrase. pick
// must return a value in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(r *Renderer) { r.pick = pick }
}

func New(ctx config.BuildContext, templates Templates, logger *slog.Logger, opts ...Option) *Renderer {
	r := &Renderer{
		ctx:       ctx,
		templates: templates,
		logger:    logger,
		now:       time.Now,
		pick:      rand.IntN,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render renders the loaded template of the page's kind.
func (r *Renderer) Render(data PageData) string {
	tpl, ok := r.templates[data.kind]
	if !ok {
		r.logger.Warn("No template loaded", "page", data.kind.String())
	}
	return r.RenderTemplate(tpl, data)
}

// RenderTemplate substitutes the placeholders of data's kind in tpl.
//
// Site, repository and base-path tokens are filled first and the asset
// paths of the result are fixed. Content fragments are inserted after that,
// so they are never path-rewritten. Each stage is a single pass over its
// input: text produced by a substitution is not scanned again, and tokens
// outside the page's families are left as they are.
func (r *Renderer) RenderTemplate(tpl string, data PageData) string {
	html := r.commonReplacer().Replace(tpl)
	html = FixAssetPaths(html, r.ctx.BasePath)

	if pairs := r.contentPairs(data); len(pairs) > 0 {
		html = strings.NewReplacer(pairs...).Replace(html)
	}
	return html
}

func (r *Renderer) commonReplacer() *strings.Replacer {
	s := r.ctx.Site
	return strings.NewReplacer(
		TokSiteTitle, s.Title,
		TokSiteDescription, s.Description,
		TokSiteAuthor, s.Author,
		TokSiteAvatar, s.Avatar,
		TokSiteURL, s.URL,
		TokSiteFavicon, s.Favicon,
		TokGitHubOwner, r.ctx.Owner,
		TokGitHubRepo, r.ctx.Repo,
		TokBaseURL, r.ctx.BasePath,
	)
}

func (r *Renderer) contentPairs(data PageData) []string {
	fams := pageFamilies[data.kind]
	var pairs []string

	if fams&famPosts != 0 {
		pairs = append(pairs, TokPosts, r.postCards(data.posts))
	}
	if fams&famPagination != 0 {
		pg := data.pagination
		pairs = append(pairs,
			TokPaginationCurrent, strconv.Itoa(max(pg.Current, 1)),
			TokPaginationTotal, strconv.Itoa(max(pg.Total, 1)),
			TokPaginationPrevLink, pg.PrevLink,
			TokPaginationNextLink, pg.NextLink,
		)
	}
	if fams&famPost != 0 && data.post != nil {
		pairs = append(pairs, r.postPairs(data.post)...)
	}
	if fams&famCategories != 0 {
		pairs = append(pairs, TokCategories, r.categoryList(data.categories))
	}
	if fams&famArchives != 0 {
		pairs = append(pairs, TokArchives, archiveList(data.archives))
	}
	if fams&famCategory != 0 && data.category != nil {
		c := data.category
		pairs = append(pairs,
			TokCategoryName, utils.EscapeHTML(c.Name),
			TokCategoryColor, c.Color,
			TokCategoryCount, strconv.Itoa(len(c.Posts)),
		)
	}
	return pairs
}

func (r *Renderer) postPairs(p *models.Post) []string {
	return []string{
		TokPostID, strconv.Itoa(p.ID),
		TokPostTitle, utils.EscapeHTML(p.Title),
		TokPostContent, p.Content,
		TokPostExcerpt, utils.EscapeHTML(p.Excerpt),
		TokPostAuthor, utils.EscapeHTML(p.Author),
		TokPostAvatar, p.Avatar,
		TokPostCreatedAt, utils.ISODate(p.CreatedAt),
		TokPostUpdatedAt, utils.ISODate(p.UpdatedAt),
		TokPostCreatedFormatted, p.CreatedFormatted,
		TokPostUpdatedFormatted, p.UpdatedFormatted,
		TokPostURL, p.URL,
		TokPostFullURL, p.FullURL,
		TokPostGitHubURL, p.GitHubURL,
		TokPostState, p.State,
		TokPostCommentsCount, strconv.Itoa(p.CommentsCount),
		TokPostLabels, postLabels(p.Labels),
		TokPostUpdatedBadge, updatedBadge(p),
		TokPostUpdatedInfo, updatedInfo(p),
		TokPostOutdatedNotice, r.outdatedNotice(p),
		TokPostTOC, postTOC(p.TOC),
		TokPostReadingTime, strconv.Itoa(p.ReadingTime),
		TokPostComments, postComments(p.Comments),
	}
}
