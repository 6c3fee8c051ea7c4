package mocks

import (
	"context"
	"sync"

	"github.com/Master08s/looks-blog/builder/models"
)

// MockIssueSource is a mock implementation of services.IssueSource
type MockIssueSource struct {
	Issues   []models.Issue
	Comments map[string][]models.Comment

	ListErr    error
	CommentErr error

	mu           sync.Mutex
	CommentCalls []string
	CallCount    map[string]int
}

// NewMockIssueSource creates a mock serving issues and no comments
func NewMockIssueSource(issues ...models.Issue) *MockIssueSource {
	return &MockIssueSource{
		Issues:    issues,
		Comments:  make(map[string][]models.Comment),
		CallCount: make(map[string]int),
	}
}

func (m *MockIssueSource) recordCall(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CallCount == nil {
		m.CallCount = make(map[string]int)
	}
	m.CallCount[method]++
}

// ListIssues returns a copy of Issues, or ListErr
func (m *MockIssueSource) ListIssues(ctx context.Context) ([]models.Issue, error) {
	m.recordCall("ListIssues")
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]models.Issue, len(m.Issues))
	copy(out, m.Issues)
	return out, nil
}

// ListComments returns Comments[commentsURL], or CommentErr
func (m *MockIssueSource) ListComments(ctx context.Context, commentsURL string) ([]models.Comment, error) {
	m.recordCall("ListComments")
	m.mu.Lock()
	m.CommentCalls = append(m.CommentCalls, commentsURL)
	m.mu.Unlock()
	if m.CommentErr != nil {
		return nil, m.CommentErr
	}
	return m.Comments[commentsURL], nil
}
