// Package github is a minimal client for the GitHub REST endpoints the blog
// is built from: the repository issue listing and per-issue comments.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/Master08s/looks-blog/builder/models"
)

const (
	DefaultAPIURL = "https://api.github.com"
	userAgent     = "looks-blog"
	acceptHeader  = "application/vnd.github.v3+json"
	maxErrorBody  = 512
)

var (
	ErrUnexpectedStatus  = errors.New("unexpected status from GitHub")
	ErrMissingRepository = errors.New("github owner and repo must be configured")
)

// Client talks to one repository.
type Client struct {
	apiURL     string
	owner      string
	repo       string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient returns a client for owner/repo. An empty token means
// unauthenticated requests; a nil httpClient means http.DefaultClient.
func NewClient(apiURL, owner, repo, token string, httpClient *http.Client, logger *slog.Logger) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		apiURL:     strings.TrimSuffix(apiURL, "/"),
		owner:      owner,
		repo:       repo,
		token:      token,
		httpClient: httpClient,
		logger:     logger,
	}
}

// ListIssues returns the first page (up to 100) of open issues opened by the
// repository owner, newest first. Pull requests are dropped.
func (c *Client) ListIssues(ctx context.Context) ([]models.Issue, error) {
	if c.owner == "" || c.repo == "" {
		return nil, ErrMissingRepository
	}

	q := url.Values{}
	q.Set("state", "open")
	q.Set("creator", c.owner)
	q.Set("sort", "created")
	q.Set("direction", "desc")
	q.Set("per_page", "100")
	endpoint := fmt.Sprintf("%s/repos/%s/%s/issues?%s",
		c.apiURL, url.PathEscape(c.owner), url.PathEscape(c.repo), q.Encode())

	var all []models.Issue
	if err := c.getJSON(ctx, endpoint, &all); err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}

	issues := make([]models.Issue, 0, len(all))
	for _, is := range all {
		if is.PullRequest != nil {
			continue
		}
		issues = append(issues, is)
	}
	return issues, nil
}

// ListComments fetches the comments behind an issue's comments_url.
func (c *Client) ListComments(ctx context.Context, commentsURL string) ([]models.Comment, error) {
	if commentsURL == "" {
		return nil, errors.New("issue has no comments url")
	}
	var comments []models.Comment
	if err := c.getJSON(ctx, commentsURL, &comments); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if remaining := resp.Header.Get("X-RateLimit-Remaining"); remaining != "" {
		c.logger.Debug("GitHub rate limit", "remaining", remaining, "url", endpoint)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: %s: %s", ErrUnexpectedStatus, resp.Status, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
