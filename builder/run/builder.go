package run

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/Master08s/looks-blog/builder/config"
	"github.com/Master08s/looks-blog/builder/github"
	mdParser "github.com/Master08s/looks-blog/builder/parser"
	"github.com/Master08s/looks-blog/builder/services"
)

// renderRoot is the directory inside the in-memory filesystem that holds the
// site until it is synced to the output directory.
const renderRoot = "site"

// Builder maintains the state for site builds
type Builder struct {
	cfg    *config.Config
	ctx    config.BuildContext
	logger *slog.Logger
	now    func() time.Time
	source services.IssueSource

	// SourceFs holds templates and assets. OutputFs receives the synced site.
	SourceFs afero.Fs
	OutputFs afero.Fs
}

type Option func(*Builder)

// WithIssueSource replaces the GitHub client.
func WithIssueSource(src services.IssueSource) Option {
	return func(b *Builder) { b.source = src }
}

func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

func WithSourceFs(fs afero.Fs) Option {
	return func(b *Builder) { b.SourceFs = fs }
}

func WithOutputFs(fs afero.Fs) Option {
	return func(b *Builder) { b.OutputFs = fs }
}

// NewBuilder initializes a new site builder
func NewBuilder(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Builder, error) {
	ctx, err := cfg.Context()
	if err != nil {
		return nil, err
	}

	b := &Builder{
		cfg:      cfg,
		ctx:      ctx,
		logger:   logger,
		now:      time.Now,
		SourceFs: afero.NewOsFs(),
		OutputFs: afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.source == nil {
		httpClient := &http.Client{Timeout: 30 * time.Second}
		b.source = github.NewClient(ctx.APIURL, ctx.Owner, ctx.Repo, ctx.Token, httpClient, logger)
	}
	return b, nil
}

// Config returns the builder's configuration
func (b *Builder) Config() *config.Config {
	return b.cfg
}

// Context returns the derived build context
func (b *Builder) Context() config.BuildContext {
	return b.ctx
}

// IsSourcePath reports whether a change to path affects the generated site.
func (b *Builder) IsSourcePath(path string) bool {
	p := filepath.ToSlash(filepath.Clean(path))
	if b.cfg.ConfigFile != "" && p == filepath.ToSlash(filepath.Clean(b.cfg.ConfigFile)) {
		return true
	}
	for _, dir := range []string{b.ctx.Paths.Templates, b.ctx.Paths.Assets} {
		d := filepath.ToSlash(filepath.Clean(dir))
		if p == d || strings.HasPrefix(p, d+"/") {
			return true
		}
	}
	return false
}

func (b *Builder) newPostService() services.PostService {
	return services.NewPostService(b.ctx, mdParser.New(b.ctx.BasePath), b.logger)
}
