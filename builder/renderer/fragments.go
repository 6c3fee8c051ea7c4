package renderer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Master08s/looks-blog/builder/models"
	"github.com/Master08s/looks-blog/builder/utils"
)

// StaleAfter is the age past which a post page carries the outdated notice.
const StaleAfter = 30 * 24 * time.Hour

// stalePhrases are the tips shown in the outdated notice.
var stalePhrases = []string{
	"时过境迁",
	"沧海桑田",
	"天翻地覆",
	"水流花落",
	"斗转星移",
	"物是人非",
	"时移世易",
	"物换星移",
	"春去秋来",
}

func (r *Renderer) postCards(posts []*models.Post) string {
	if len(posts) == 0 {
		return r.emptyPosts()
	}
	var b strings.Builder
	for _, p := range posts {
		b.WriteString(`<a href="`)
		b.WriteString(p.URL)
		b.WriteString(`" class="index-post-card hover:shadow-card text-black transition duration-300">`)
		b.WriteString(`<div class="post mx-4 my-4 flex flex-col gap-2">`)
		b.WriteString(`<div class="textc-primary font-serif font-semibold" style="font-size: 1.2rem">`)
		b.WriteString(utils.EscapeHTML(p.Title))
		b.WriteString(`</div><div style="font-size: 0.9rem" class="text-gray">`)
		b.WriteString(utils.EscapeHTML(p.Excerpt))
		b.WriteString(`</div><div class="flex items-center justify-between" style="font-size: 0.8rem">`)
		b.WriteString(`<time class="text-gray">`)
		b.WriteString(utils.ISODate(p.CreatedAt))
		b.WriteString(`</time><div class="flex gap-2">`)
		for _, l := range p.Labels {
			fmt.Fprintf(&b, `<span class="category" style="background-color: #%s20; color: #%s">%s</span>`,
				l.Color, l.Color, utils.EscapeHTML(l.Name))
		}
		b.WriteString("</div></div></div></a>\n")
	}
	return b.String()
}

func (r *Renderer) emptyPosts() string {
	return `<div class="empty-posts text-center py-12"><p class="text-gray mb-4">还没有文章</p>` +
		`<a href="` + r.ctx.IssueURL() + `" class="btn" target="_blank" rel="noopener noreferrer">写第一篇文章</a></div>`
}

func postLabels(labels []models.Label) string {
	if len(labels) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="post-labels">`)
	for _, l := range labels {
		fmt.Fprintf(&b, `<span class="category" style="background-color: #%s20; color: #%s; border: 1px solid #%s40">%s</span>`,
			l.Color, l.Color, l.Color, utils.EscapeHTML(l.Name))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func updatedBadge(p *models.Post) string {
	if !p.IsUpdated {
		return ""
	}
	return `<span class="updated-badge" title="` + p.UpdatedFormatted + `">已更新</span>`
}

func updatedInfo(p *models.Post) string {
	if !p.IsUpdated {
		return ""
	}
	return `<div class="updated-info text-gray" style="font-size: 0.8rem">更新于 <time id="post-update-time" datetime="` +
		p.UpdatedAt.UTC().Format(time.RFC3339) + `">` + p.UpdatedFormatted + `</time></div>`
}

// outdatedNotice returns the stale-content tip for posts older than
// StaleAfter at the renderer's clock, or "".
func (r *Renderer) outdatedNotice(p *models.Post) string {
	age := r.now().Sub(p.CreatedAt)
	if age <= StaleAfter {
		return ""
	}
	days := int(age / (24 * time.Hour))
	phrase := stalePhrases[r.pick(len(stalePhrases))]
	return `<div class="outdated-notice" id="post-time-tips"><span id="post-time-tips-span">本文发布于 ` +
		strconv.Itoa(days) + ` 天前，其中的信息可能已经` + phrase + `</span></div>`
}

func postTOC(entries []models.TOCEntry) string {
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<nav class="post-toc"><ul>`)
	for _, e := range entries {
		fmt.Fprintf(&b, `<li class="toc-level-%d"><a href="#%s">%s</a></li>`,
			e.Level, e.ID, utils.EscapeHTML(e.Text))
	}
	b.WriteString(`</ul></nav>`)
	return b.String()
}

func postComments(comments []models.PostComment) string {
	if len(comments) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<section class="post-comments">`)
	for _, c := range comments {
		b.WriteString(`<div class="comment">`)
		b.WriteString(`<div class="comment-meta flex items-center gap-2">`)
		if c.Avatar != "" {
			fmt.Fprintf(&b, `<img class="comment-avatar" src="%s" alt="%s" loading="lazy">`,
				c.Avatar, utils.EscapeHTML(c.Author))
		}
		if c.URL != "" {
			fmt.Fprintf(&b, `<a href="%s" class="comment-author" target="_blank" rel="noopener noreferrer">%s</a>`,
				c.URL, utils.EscapeHTML(c.Author))
		} else {
			fmt.Fprintf(&b, `<span class="comment-author">%s</span>`, utils.EscapeHTML(c.Author))
		}
		fmt.Fprintf(&b, `<time class="text-gray" datetime="%s">%s</time>`,
			c.Created.UTC().Format(time.RFC3339), c.Formatted)
		b.WriteString(`</div><div class="comment-body">`)
		b.WriteString(c.HTML)
		b.WriteString(`</div></div>`)
	}
	b.WriteString(`</section>`)
	return b.String()
}

func (r *Renderer) categoryList(cats []*models.Category) string {
	var b strings.Builder
	for _, c := range cats {
		fmt.Fprintf(&b, `<span class="card-small"><span class="icon-[material-symbols--folder-outline-rounded] iconify-inline"></span>`+
			`<a class="text-black" href="%s/categories/%s.html">%s</a><span>%d</span></span>`+"\n",
			r.ctx.BasePath, c.Slug, utils.EscapeHTML(c.Name), len(c.Posts))
	}
	return b.String()
}

func archiveList(years []models.ArchiveYear) string {
	var b strings.Builder
	for _, y := range years {
		fmt.Fprintf(&b, `<div class="year-group"><h2 class="text-xl font-bold mb-4">%d 年 (%d 篇)</h2><div class="space-y-2 ml-4">`,
			y.Year, y.Count())
		for _, m := range y.Months {
			for _, p := range m.Posts {
				fmt.Fprintf(&b, `<div class="flex items-center justify-between py-2 border-b border-gray-200">`+
					`<a href="%s" class="text-blue-600 hover:text-blue-800">%s</a><time class="text-sm text-gray-500">%s</time></div>`,
					p.URL, utils.EscapeHTML(p.Title), utils.ISODate(p.CreatedAt))
			}
		}
		b.WriteString("</div></div>\n")
	}
	return b.String()
}
