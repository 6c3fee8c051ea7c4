package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	_ "time/tzdata"
)

// BuildContext is the read-only view of the configuration that one build
// works against. It is derived once from Config and passed by value.
type BuildContext struct {
	Site            SiteConfig
	Owner           string
	Repo            string
	Token           string
	APIURL          string
	PageSize        int
	ExcerptLength   int
	BasePath        string
	Location        *time.Location
	Compress        bool
	StrictTemplates bool
	Offline         bool
	Features        FeaturesConfig
	Paths           PathsConfig
}

// Context derives the BuildContext. It fails only when the configured
// timezone cannot be loaded.
func (c *Config) Context() (BuildContext, error) {
	loc, err := time.LoadLocation(c.Build.Timezone)
	if err != nil {
		return BuildContext{}, fmt.Errorf("invalid timezone %q: %w", c.Build.Timezone, err)
	}
	return BuildContext{
		Site:            c.Site,
		Owner:           c.GitHub.Owner,
		Repo:            c.GitHub.Repo,
		Token:           c.GitHub.Token,
		APIURL:          c.GitHub.APIURL,
		PageSize:        c.Build.PostsPerPage,
		ExcerptLength:   c.Build.ExcerptLength,
		BasePath:        DeriveBasePath(c.Site.URL, c.GitHub.Owner, c.GitHub.Repo),
		Location:        loc,
		Compress:        c.Build.Compress,
		StrictTemplates: c.Build.StrictTemplates,
		Offline:         c.Offline,
		Features:        c.Features,
		Paths:           c.Paths,
	}, nil
}

// DeriveBasePath returns the path prefix every generated link carries.
// Root deployments get "". A site URL that is not an absolute URL falls back
// to "/{repo}" for project pages (repo differs from owner) and "" otherwise.
func DeriveBasePath(siteURL, owner, repo string) string {
	if siteURL == "" {
		return ""
	}
	u, err := url.Parse(siteURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		if repo != "" && repo != owner {
			return "/" + repo
		}
		return ""
	}
	if u.Path == "" || u.Path == "/" {
		return ""
	}
	return strings.TrimSuffix(u.Path, "/")
}

// SiteOrigin returns scheme://host of the site URL, or "" when the URL is not absolute.
func (b BuildContext) SiteOrigin() string {
	u, err := url.Parse(b.Site.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// IssueURL is the "new issue" page of the source repository.
func (b BuildContext) IssueURL() string {
	return fmt.Sprintf("https://github.com/%s/%s/issues/new", b.Owner, b.Repo)
}
