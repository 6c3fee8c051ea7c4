package renderer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// PageKind identifies one of the fixed page templates.
type PageKind int

const (
	PageIndex PageKind = iota
	PagePost
	PageCategories
	PageCategory
	PageArchives
	PageSearch
)

// AllPages lists every page kind in template-loading order.
var AllPages = []PageKind{PageIndex, PagePost, PageCategory, PageCategories, PageArchives, PageSearch}

var pageNames = map[PageKind]string{
	PageIndex:      "index",
	PagePost:       "post",
	PageCategories: "categories",
	PageCategory:   "category",
	PageArchives:   "archives",
	PageSearch:     "search",
}

func (k PageKind) String() string {
	if n, ok := pageNames[k]; ok {
		return n
	}
	return fmt.Sprintf("PageKind(%d)", int(k))
}

// TemplateFile is the file name of the template for k.
func (k PageKind) TemplateFile() string {
	return k.String() + ".html"
}

// family is a group of placeholders filled from one part of the page data.
type family uint16

const (
	famSite family = 1 << iota
	famGitHub
	famBaseURL
	famPosts
	famPagination
	famPost
	famCategories
	famCategory
	famArchives
)

const famCommon = famSite | famGitHub | famBaseURL

// pageFamilies is the closed template context of each page kind.
var pageFamilies = map[PageKind]family{
	PageIndex:      famCommon | famPosts | famPagination | famCategories,
	PagePost:       famCommon | famPost | famCategories,
	PageCategories: famCommon | famCategories,
	PageCategory:   famCommon | famCategory | famPosts | famCategories,
	PageArchives:   famCommon | famArchives,
	PageSearch:     famCommon,
}

// Placeholder tokens.
const (
	TokSiteTitle       = "{{site.title}}"
	TokSiteDescription = "{{site.description}}"
	TokSiteAuthor      = "{{site.author}}"
	TokSiteAvatar      = "{{site.avatar}}"
	TokSiteURL         = "{{site.url}}"
	TokSiteFavicon     = "{{site.favicon}}"

	TokGitHubOwner = "{{github.owner}}"
	TokGitHubRepo  = "{{github.repo}}"

	TokBaseURL = "{{baseUrl}}"

	TokPosts = "{{posts}}"

	TokPaginationCurrent  = "{{pagination.current}}"
	TokPaginationTotal    = "{{pagination.total}}"
	TokPaginationPrevLink = "{{pagination.prevLink}}"
	TokPaginationNextLink = "{{pagination.nextLink}}"

	TokPostID               = "{{post.id}}"
	TokPostTitle            = "{{post.title}}"
	TokPostContent          = "{{post.content}}"
	TokPostExcerpt          = "{{post.excerpt}}"
	TokPostAuthor           = "{{post.author}}"
	TokPostAvatar           = "{{post.avatar}}"
	TokPostCreatedAt        = "{{post.created_at}}"
	TokPostUpdatedAt        = "{{post.updated_at}}"
	TokPostCreatedFormatted = "{{post.created_at_formatted}}"
	TokPostUpdatedFormatted = "{{post.updated_at_formatted}}"
	TokPostURL              = "{{post.url}}"
	TokPostFullURL          = "{{post.full_url}}"
	TokPostGitHubURL        = "{{post.github_url}}"
	TokPostState            = "{{post.state}}"
	TokPostCommentsCount    = "{{post.comments_count}}"
	TokPostLabels           = "{{post.labels}}"
	TokPostUpdatedBadge     = "{{post.updated_badge}}"
	TokPostUpdatedInfo      = "{{post.updated_info}}"
	TokPostOutdatedNotice   = "{{post.outdated_notice}}"
	TokPostTOC              = "{{post.toc}}"
	TokPostReadingTime      = "{{post.reading_time}}"
	TokPostComments         = "{{post.comments}}"

	TokCategories = "{{categories}}"

	TokCategoryName  = "{{category.name}}"
	TokCategoryColor = "{{category.color}}"
	TokCategoryCount = "{{category.count}}"

	TokArchives = "{{archives}}"
)

var familyTokens = map[family][]string{
	famSite:       {TokSiteTitle, TokSiteDescription, TokSiteAuthor, TokSiteAvatar, TokSiteURL, TokSiteFavicon},
	famGitHub:     {TokGitHubOwner, TokGitHubRepo},
	famBaseURL:    {TokBaseURL},
	famPosts:      {TokPosts},
	famPagination: {TokPaginationCurrent, TokPaginationTotal, TokPaginationPrevLink, TokPaginationNextLink},
	famPost: {
		TokPostID, TokPostTitle, TokPostContent, TokPostExcerpt, TokPostAuthor, TokPostAvatar,
		TokPostCreatedAt, TokPostUpdatedAt, TokPostCreatedFormatted, TokPostUpdatedFormatted,
		TokPostURL, TokPostFullURL, TokPostGitHubURL, TokPostState, TokPostCommentsCount,
		TokPostLabels, TokPostUpdatedBadge, TokPostUpdatedInfo, TokPostOutdatedNotice,
		TokPostTOC, TokPostReadingTime, TokPostComments,
	},
	famCategories: {TokCategories},
	famCategory:   {TokCategoryName, TokCategoryColor, TokCategoryCount},
	famArchives:   {TokArchives},
}

// Tokens returns the placeholders a template of kind k may use.
func Tokens(k PageKind) []string {
	fams := pageFamilies[k]
	var out []string
	for f := famSite; f <= famArchives; f <<= 1 {
		if fams&f != 0 {
			out = append(out, familyTokens[f]...)
		}
	}
	return out
}

var placeholderRe = regexp.MustCompile(`\{\{[^{}\n]*\}\}`)

// UnknownPlaceholderError lists the placeholders a template uses that its
// page kind does not provide.
type UnknownPlaceholderError struct {
	Kind   PageKind
	Tokens []string
}

func (e *UnknownPlaceholderError) Error() string {
	return fmt.Sprintf("%s: unknown placeholders %s", e.Kind.TemplateFile(), strings.Join(e.Tokens, ", "))
}

func (e *UnknownPlaceholderError) Unwrap() error {
	return ErrUnknownPlaceholder
}

// Validate checks every {{...}} placeholder in tpl against the closed token
// set of kind. It returns an *UnknownPlaceholderError naming each unknown
// placeholder once, or nil.
func Validate(tpl string, kind PageKind) error {
	allowed := make(map[string]bool)
	for _, t := range Tokens(kind) {
		allowed[t] = true
	}

	seen := make(map[string]bool)
	var unknown []string
	for _, m := range placeholderRe.FindAllString(tpl, -1) {
		if allowed[m] || seen[m] {
			continue
		}
		seen[m] = true
		unknown = append(unknown, m)
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return &UnknownPlaceholderError{Kind: kind, Tokens: unknown}
}
