package config

import (
	"strings"
)

// BuildConfig contains the tunable build parameters
type BuildConfig struct {
	PostsPerPage    int    `yaml:"postsPerPage"`    // Posts per index page (default: 10)
	ExcerptLength   int    `yaml:"excerptLength"`   // Excerpt length in characters (default: 200)
	Timezone        string `yaml:"timezone"`        // Zone used for formatted timestamps (default: Asia/Shanghai)
	Compress        bool   `yaml:"compress"`        // Minify output and downscale images
	StrictTemplates bool   `yaml:"strictTemplates"` // Fail on unknown placeholders (default: true)
}

const (
	defaultPostsPerPage  = 10
	defaultExcerptLength = 200
	defaultTimezone      = "Asia/Shanghai"
)

// Default returns the configuration used when no config file is present
func Default() *Config {
	return &Config{
		Site: SiteConfig{
			Title:       "Looks Blog",
			Description: "A blog powered by GitHub Issues",
		},
		GitHub: GitHubConfig{
			APIURL: "https://api.github.com",
		},
		Build: BuildConfig{
			PostsPerPage:    defaultPostsPerPage,
			ExcerptLength:   defaultExcerptLength,
			Timezone:        defaultTimezone,
			StrictTemplates: true,
		},
		Features: FeaturesConfig{
			Sitemap: true,
			RSS:     true,
		},
		Paths: PathsConfig{
			Templates: "templates",
			Assets:    "assets",
			Output:    "dist",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// validate fills defaults and raises sizes below one to one
func (c *Config) validate() {
	if c.Build.PostsPerPage < 1 {
		c.Build.PostsPerPage = 1
	}
	if c.Build.ExcerptLength < 1 {
		c.Build.ExcerptLength = 1
	}
	if strings.TrimSpace(c.Build.Timezone) == "" {
		c.Build.Timezone = defaultTimezone
	}

	c.GitHub.APIURL = strings.TrimSuffix(c.GitHub.APIURL, "/")
	if c.GitHub.APIURL == "" {
		c.GitHub.APIURL = "https://api.github.com"
	}

	if c.Paths.Templates == "" {
		c.Paths.Templates = "templates"
	}
	if c.Paths.Assets == "" {
		c.Paths.Assets = "assets"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "dist"
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
		c.Log.Level = strings.ToLower(c.Log.Level)
	default:
		c.Log.Level = "info"
	}
	if c.Log.Format != "json" {
		c.Log.Format = "text"
	}
}
