package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
)

func TestNormalizeRequestPath(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		basePath string
		want     string
		wantOK   bool
	}{
		{"root", "/", "", "/", true},
		{"post", "/posts/1.html", "", "/posts/1.html", true},
		{"dot segments", "/a/../posts/./1.html", "", "/posts/1.html", true},
		{"base path root", "/blog", "/blog", "/", true},
		{"base path slash", "/blog/", "/blog", "/", true},
		{"base path file", "/blog/assets/style.css", "/blog", "/assets/style.css", true},
		{"outside base path", "/other/index.html", "/blog", "", false},
		{"prefix lookalike", "/blogger/index.html", "/blog", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normalizeRequestPath(tt.raw, tt.basePath)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("normalizeRequestPath(%q, %q) = %q, %v; want %q, %v", tt.raw, tt.basePath, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	base := t.TempDir()
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"file", "/index.html", false},
		{"nested", "/posts/1.html", false},
		{"root", "/", false},
		{"traversal is contained", "/../../etc/passwd", false},
		{"relative escape", "../secret", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validatePath(base, tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err == nil && !strings.HasPrefix(got, base) {
				t.Errorf("validatePath(%q) = %q, escapes %q", tt.path, got, base)
			}
		})
	}
}

func TestSplitServeArgs(t *testing.T) {
	host, port, rest := splitServeArgs([]string{"-port", "8080", "-offline", "--host=0.0.0.0", "-config", "c.yaml"})
	if host != "0.0.0.0" || port != "8080" {
		t.Errorf("host, port = %q, %q", host, port)
	}
	if want := []string{"-offline", "-config", "c.yaml"}; !reflect.DeepEqual(rest, want) {
		t.Errorf("rest = %v, want %v", rest, want)
	}

	host, port, rest = splitServeArgs(nil)
	if host != defaultHost || port != defaultPort || len(rest) != 0 {
		t.Errorf("defaults = %q, %q, %v", host, port, rest)
	}
}

func newTestServer(t *testing.T, basePath string) (*Server, string) {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"index.html":       "<html><body><h1>Home</h1></body></html>",
		"posts/1.html":     "<html><body>post</body></html>",
		"assets/style.css": "body { color: red; }",
	}
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(dir, basePath, logger), dir
}

func TestHandler_ServesFiles(t *testing.T) {
	srv, _ := newTestServer(t, "/blog")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"index under base path", "/blog/", http.StatusOK, "<h1>Home</h1>"},
		{"post", "/blog/posts/1.html", http.StatusOK, "post"},
		{"asset", "/blog/assets/style.css", http.StatusOK, "color: red"},
		{"missing", "/blog/posts/2.html", http.StatusNotFound, "404"},
		{"outside base path", "/posts/1.html", http.StatusNotFound, ""},
		{"root redirects", "/", http.StatusFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := client.Get(ts.URL + tt.path)
			if err != nil {
				t.Fatal(err)
			}
			defer func() { _ = resp.Body.Close() }()
			body, _ := io.ReadAll(resp.Body)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if !strings.Contains(string(body), tt.wantBody) {
				t.Errorf("body = %q, want it to contain %q", body, tt.wantBody)
			}
		})
	}
}

func TestHandler_InjectsReloadScript(t *testing.T) {
	srv, _ := newTestServer(t, "")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts/1.html", nil))

	body := rec.Body.String()
	if !strings.Contains(body, reloadScript+"</body>") {
		t.Errorf("reload script not injected before </body>: %q", body)
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-cache" {
		t.Errorf("Cache-Control = %q", got)
	}

	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}
	req := httptest.NewRequest(http.MethodGet, "/posts/1.html", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusNotModified {
		t.Errorf("conditional request status = %d, want 304", rec.Code)
	}
}

func TestHandler_Gzip(t *testing.T) {
	srv, _ := newTestServer(t, "")
	req := httptest.NewRequest(http.MethodGet, "/assets/style.css", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("Content-Encoding = %q", rec.Header().Get("Content-Encoding"))
	}
	zr, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	body, err := io.ReadAll(zr)
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != "body { color: red; }" {
		t.Errorf("body = %q", body)
	}
}

func TestHandler_NotModifiedWithGzip(t *testing.T) {
	srv, _ := newTestServer(t, "")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/index.html", nil))
	etag := rec.Header().Get("ETag")

	req := httptest.NewRequest(http.MethodGet, "/index.html", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotModified {
		t.Fatalf("status = %d, want 304", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("304 body = %q, want empty", rec.Body.Bytes())
	}
	if got := rec.Header().Get("Content-Encoding"); got != "" {
		t.Errorf("Content-Encoding = %q on 304", got)
	}
}

func TestReload_NotifiesClients(t *testing.T) {
	srv, _ := newTestServer(t, "")
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/events", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = resp.Body.Close() }()

	buf := make([]byte, 64)
	n, err := resp.Body.Read(buf)
	if err != nil || !strings.Contains(string(buf[:n]), "connected") {
		t.Fatalf("first event = %q, %v", buf[:n], err)
	}

	for srv.hub.count() == 0 {
		time.Sleep(10 * time.Millisecond)
	}
	srv.Reload()

	n, err = resp.Body.Read(buf)
	if err != nil || !strings.Contains(string(buf[:n]), "reload") {
		t.Errorf("second event = %q, %v", buf[:n], err)
	}
}
