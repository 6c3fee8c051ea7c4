// defines the data structures shared by ingestion, rendering and generators
package models

import (
	"encoding/xml"
	"time"
)

// --- GitHub REST payloads ---

type User struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// Label is an issue label. Color is six hex digits without the leading '#'.
type Label struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type Comment struct {
	ID        int64     `json:"id"`
	User      User      `json:"user"`
	Body      string    `json:"body"`
	HTMLURL   string    `json:"html_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Issue is one entry of the repository issue listing. The API lists pull
// requests as issues too; those carry a non-nil PullRequest.
type Issue struct {
	Number      int             `json:"number"`
	Title       string          `json:"title"`
	Body        string          `json:"body"`
	State       string          `json:"state"`
	HTMLURL     string          `json:"html_url"`
	CommentsURL string          `json:"comments_url"`
	User        User            `json:"user"`
	Labels      []Label         `json:"labels"`
	Comments    int             `json:"comments"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	PullRequest *PullRequestRef `json:"pull_request,omitempty"`

	// Filled by the ingestor, not part of the listing payload.
	IssueComments []Comment `json:"-"`
}

type PullRequestRef struct {
	URL string `json:"url"`
}

// --- Blog model ---

type TOCEntry struct {
	ID    string
	Text  string
	Level int
}

// PostComment is an issue comment prepared for display.
type PostComment struct {
	Author    string
	Avatar    string
	URL       string
	Created   time.Time
	Formatted string
	HTML      string
}

// Post is the blog-level projection of one issue.
type Post struct {
	ID               int
	Title            string
	Content          string // rendered HTML, inserted unescaped
	Excerpt          string
	Author           string
	Avatar           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	IsUpdated        bool
	CreatedFormatted string
	UpdatedFormatted string
	Labels           []Label
	URL              string
	FullURL          string
	GitHubURL        string
	State            string
	CommentsCount    int

	TOC         []TOCEntry
	ReadingTime int
	Comments    []PostComment
}

// Category is a label bucket. Posts keep the order in which they were assigned.
type Category struct {
	Name  string
	Slug  string
	Color string
	Posts []*Post
}

// Categories is an insertion-ordered label index: iteration follows the order
// in which each label was first seen.
type Categories struct {
	list  []*Category
	index map[string]int
}

func NewCategories() *Categories {
	return &Categories{index: make(map[string]int)}
}

// Add appends post to the bucket named by label, creating the bucket (with the
// label's color) on first sight.
func (c *Categories) Add(label Label, slug string, post *Post) *Category {
	if i, ok := c.index[label.Name]; ok {
		cat := c.list[i]
		// A post carrying the same label twice is still one member.
		if n := len(cat.Posts); n == 0 || cat.Posts[n-1] != post {
			cat.Posts = append(cat.Posts, post)
		}
		return cat
	}
	cat := &Category{Name: label.Name, Slug: slug, Color: label.Color, Posts: []*Post{post}}
	c.index[label.Name] = len(c.list)
	c.list = append(c.list, cat)
	return cat
}

func (c *Categories) Get(name string) (*Category, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.list[i], true
}

// All returns the categories in first-sight order.
func (c *Categories) All() []*Category {
	return c.list
}

func (c *Categories) Len() int {
	return len(c.list)
}

// Pagination describes one index page.
type Pagination struct {
	Current  int
	Total    int
	PrevLink string
	NextLink string
}

type ArchiveMonth struct {
	Month time.Month
	Posts []*Post
}

type ArchiveYear struct {
	Year   int
	Months []ArchiveMonth
}

// Count returns the number of posts in the year.
func (y ArchiveYear) Count() int {
	n := 0
	for _, m := range y.Months {
		n += len(m.Posts)
	}
	return n
}

// SearchEntry is one element of search-data.json.
type SearchEntry struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Excerpt   string  `json:"excerpt"`
	URL       string  `json:"url"`
	CreatedAt string  `json:"created_at"`
	Labels    []Label `json:"labels"`
}

// --- Sitemap Structures ---

type UrlSet struct {
	XMLName xml.Name `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 urlset"`
	Urls    []Url    `xml:"url"`
}

type Url struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// --- RSS Structures ---

type Rss struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel Channel  `xml:"channel"`
}

type Channel struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Items       []Item `xml:"item"`
}

type Item struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate"`
	Guid        string   `xml:"guid"`
	Categories  []string `xml:"category,omitempty"`
}
