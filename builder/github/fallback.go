package github

import (
	"time"

	"github.com/Master08s/looks-blog/builder/models"
)

var sampleAuthor = models.User{
	Login:     "Master08s",
	AvatarURL: "https://github.com/Master08s.png",
}

// FallbackIssues is the built-in sample dataset used whenever the issue
// listing cannot be fetched. Issue 1 is stamped now, issue 2 one day earlier.
func FallbackIssues(now time.Time) []models.Issue {
	yesterday := now.Add(-24 * time.Hour)
	return []models.Issue{
		{
			Number:    1,
			Title:     "欢迎来到 Looks Blog",
			Body:      "# 欢迎来到 Looks Blog\n\n这是一个基于 GitHub Issues 的博客系统。\n\n## 特性\n\n- 使用 GitHub Issues 作为博客文章\n- 自动部署到 GitHub Pages\n- 支持标签分类\n- 响应式设计\n\n开始写作吧！",
			State:     "open",
			HTMLURL:   "https://github.com/Master08s/looks-blog/issues/1",
			User:      sampleAuthor,
			CreatedAt: now,
			UpdatedAt: now,
			Labels: []models.Label{
				{Name: "博客", Color: "0075ca"},
				{Name: "介绍", Color: "7057ff"},
			},
			Comments:      0,
			IssueComments: []models.Comment{},
		},
		{
			Number:    2,
			Title:     "如何使用这个博客系统",
			Body:      "# 如何使用这个博客系统\n\n## 创建文章\n\n1. 在 GitHub 仓库中创建新的 Issue\n2. 使用 Markdown 格式写作\n3. 添加标签作为分类\n4. 发布后会自动生成博客文章\n\n## 管理评论\n\nIssue 的评论会自动显示为文章评论。",
			State:     "open",
			HTMLURL:   "https://github.com/Master08s/looks-blog/issues/2",
			User:      sampleAuthor,
			CreatedAt: yesterday,
			UpdatedAt: yesterday,
			Labels: []models.Label{
				{Name: "教程", Color: "a2eeef"},
				{Name: "使用指南", Color: "d73a4a"},
			},
			Comments: 1,
			IssueComments: []models.Comment{
				{
					User:      sampleAuthor,
					ID:        1,
					Body:      "这是一个示例评论。",
					HTMLURL:   "https://github.com/Master08s/looks-blog/issues/2#issuecomment-1",
					CreatedAt: now,
				},
			},
		},
	}
}
