package server

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/Master08s/looks-blog/builder/config"
	"github.com/Master08s/looks-blog/builder/run"
)

// rebuilder owns the builder used by serve. A change to the config file
// reloads the configuration before the next build.
type rebuilder struct {
	args   []string
	logger *slog.Logger
	srv    *Server

	mu sync.Mutex
	b  *run.Builder
}

func newBuilder(args []string, logger *slog.Logger) (*run.Builder, error) {
	cfg, err := config.Load(args)
	if err != nil {
		return nil, err
	}
	return run.NewBuilder(cfg, logger)
}

func newRebuilder(args []string, b *run.Builder, srv *Server, logger *slog.Logger) *rebuilder {
	return &rebuilder{args: args, b: b, srv: srv, logger: logger}
}

func (r *rebuilder) builder() *run.Builder {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.b
}

func (r *rebuilder) isSource(path string) bool {
	return r.builder().IsSourcePath(path)
}

func (r *rebuilder) isConfigFile(path string) bool {
	file := r.builder().Config().ConfigFile
	return file != "" && filepath.Clean(path) == filepath.Clean(file)
}

// onChange rebuilds the site after name changed and tells browsers to
// reload. A failed rebuild keeps the previous site and builder.
func (r *rebuilder) onChange(ctx context.Context, name string) error {
	if r.isConfigFile(name) {
		b, err := newBuilder(r.args, r.logger)
		if err != nil {
			return fmt.Errorf("failed to reload %s: %w", name, err)
		}
		old := r.builder().Context()
		bctx := b.Context()
		if old.Paths.Templates != bctx.Paths.Templates || old.Paths.Assets != bctx.Paths.Assets {
			r.logger.Warn("Source paths changed, restart serve to watch them")
		}
		r.mu.Lock()
		r.b = b
		r.mu.Unlock()
		r.srv.SetSite(bctx.Paths.Output, bctx.BasePath)
		fmt.Println("⚙️  Configuration reloaded")
	}

	m, err := r.builder().Build(ctx)
	if err != nil {
		return err
	}
	m.Print()
	r.srv.Reload()
	return nil
}
