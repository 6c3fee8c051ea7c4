package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/Master08s/looks-blog/builder/config"
	"github.com/Master08s/looks-blog/builder/run"
	"github.com/Master08s/looks-blog/builder/utils"
	"github.com/Master08s/looks-blog/internal/watch"
)

const (
	defaultHost = "localhost"
	defaultPort = "2604"
)

// reloadScript is appended to every served HTML page.
const reloadScript = `<script>new EventSource("/events").onmessage=function(e){if(e.data==="reload")location.reload()}</script>`

// gzipResponseWriter compresses the body. The gzip stream is started on the
// first write so bodiless responses stay empty.
type gzipResponseWriter struct {
	http.ResponseWriter
	gz     *gzip.Writer
	noBody bool
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if w.noBody {
		return w.ResponseWriter.Write(b)
	}
	if w.gz == nil {
		w.gz = gzip.NewWriter(w.ResponseWriter)
	}
	return w.gz.Write(b)
}

func (w *gzipResponseWriter) WriteHeader(code int) {
	w.Header().Del("Content-Length")
	if code == http.StatusNotModified || code == http.StatusNoContent {
		w.noBody = true
		w.Header().Del("Content-Encoding")
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *gzipResponseWriter) close() error {
	if w.noBody {
		return nil
	}
	if w.gz == nil {
		w.gz = gzip.NewWriter(w.ResponseWriter)
	}
	return w.gz.Close()
}

func gzipHandler(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Encoding")
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next(w, r)
			return
		}
		w.Header().Set("Content-Encoding", "gzip")
		gzw := &gzipResponseWriter{ResponseWriter: w}
		defer func() { _ = gzw.close() }()
		next(gzw, r)
	}
}

// Server serves a built site from disk under the site's base path.
type Server struct {
	logger *slog.Logger
	hub    *hub

	mu       sync.RWMutex
	dir      string
	basePath string
}

func New(dir, basePath string, logger *slog.Logger) *Server {
	return &Server{dir: dir, basePath: basePath, logger: logger, hub: newHub()}
}

// SetSite points the server at a new output directory and base path.
func (s *Server) SetSite(dir, basePath string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dir, s.basePath = dir, basePath
}

func (s *Server) site() (dir, basePath string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir, s.basePath
}

// Reload tells connected browsers to refresh.
func (s *Server) Reload() {
	s.logger.Debug("Reloading browsers", "clients", s.hub.count())
	s.hub.broadcast()
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/events", s.hub.handleSSE)
	mux.HandleFunc("/", gzipHandler(s.serveFile))
	return mux
}

func (s *Server) serveFile(w http.ResponseWriter, r *http.Request) {
	dir, basePath := s.site()
	if basePath != "" && r.URL.Path == "/" {
		http.Redirect(w, r, basePath+"/", http.StatusFound)
		return
	}

	reqPath, ok := normalizeRequestPath(r.URL.Path, basePath)
	if !ok {
		http.NotFound(w, r)
		return
	}

	fullPath, err := validatePath(dir, reqPath)
	if err != nil {
		http.Error(w, "403 - Forbidden: Invalid path", http.StatusForbidden)
		return
	}

	info, err := os.Stat(fullPath)
	if err == nil && info.IsDir() {
		fullPath = filepath.Join(fullPath, "index.html")
		info, err = os.Stat(fullPath)
	}
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
		} else {
			s.logger.Warn("Failed to stat file", "path", fullPath, "error", err)
			http.Error(w, "500 - Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	if strings.HasSuffix(fullPath, ".html") {
		content, err := os.ReadFile(fullPath)
		if err != nil {
			http.Error(w, "500 - Internal Server Error", http.StatusInternalServerError)
			return
		}
		page := injectReload(content)
		etag := `"` + utils.ContentHash(page)[:16] + `"`
		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "no-cache")
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
		return
	}

	f, err := os.Open(fullPath)
	if err != nil {
		http.Error(w, "500 - Internal Server Error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = f.Close() }()
	w.Header().Set("Cache-Control", "public, max-age=60")
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

func injectReload(page []byte) []byte {
	i := bytes.LastIndex(page, []byte("</body>"))
	if i < 0 {
		return append(page, reloadScript...)
	}
	out := make([]byte, 0, len(page)+len(reloadScript))
	out = append(out, page[:i]...)
	out = append(out, reloadScript...)
	return append(out, page[i:]...)
}

// splitServeArgs takes the -host and -port flags out of args and leaves the
// rest for the build configuration.
func splitServeArgs(args []string) (host, port string, rest []string) {
	host, port = defaultHost, defaultPort
	for i := 0; i < len(args); i++ {
		name, value, hasValue := strings.Cut(strings.TrimLeft(args[i], "-"), "=")
		if !strings.HasPrefix(args[i], "-") || (name != "host" && name != "port") {
			rest = append(rest, args[i])
			continue
		}
		if !hasValue && i+1 < len(args) {
			i++
			value = args[i]
		}
		if name == "host" {
			host = value
		} else {
			port = value
		}
	}
	return host, port, rest
}

// Run builds the site, serves it and rebuilds whenever templates, assets or
// the config file change. It returns the process exit code.
func Run(args []string) int {
	host, port, rest := splitServeArgs(args)

	cfg, err := config.Load(rest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		return 1
	}
	logger := utils.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	b, err := run.NewBuilder(cfg, logger)
	if err != nil {
		logger.Error("Invalid configuration", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if m, err := b.Build(ctx); err != nil {
		logger.Error("Initial build failed", "error", err)
	} else {
		m.Print()
	}

	bctx := b.Context()
	srv := New(bctx.Paths.Output, bctx.BasePath, logger)
	rb := newRebuilder(rest, b, srv, logger)

	paths := []string{bctx.Paths.Templates, bctx.Paths.Assets}
	if cfg.ConfigFile != "" {
		paths = append(paths, cfg.ConfigFile)
	}
	w, err := watch.New(paths, logger, func(e watch.Event) {
		fmt.Printf("🔄 %s changed, rebuilding...\n", e.Name)
		if err := rb.onChange(ctx, e.Name); err != nil {
			logger.Error("Rebuild failed", "error", err)
		}
	})
	if err != nil {
		logger.Warn("Failed to create file watcher", "error", err)
	} else {
		w.Filter = rb.isSource
		go w.Start(ctx)
	}

	addr := net.JoinHostPort(host, port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		// Cancels open /events streams on shutdown.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		fmt.Println("\n🛑 Shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", "error", err)
		}
	}()

	fmt.Printf("🌐 Serving on http://%s%s/\n", addr, bctx.BasePath)
	if host == "0.0.0.0" {
		fmt.Println("   (Accessible on your local network)")
	}
	fmt.Println("   (Auto-reload enabled via /events)")

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server error", "error", err)
		return 1
	}
	fmt.Println("✅ Server stopped.")
	return 0
}
