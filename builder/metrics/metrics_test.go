package metrics

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestNewBuildMetrics(t *testing.T) {
	m := NewBuildMetrics()

	if m.StartTime.IsZero() {
		t.Error("StartTime should be set")
	}
	if !m.EndTime.IsZero() {
		t.Error("EndTime should be zero initially")
	}
	if m.PostsProcessed != 0 || m.FilesWritten() != 0 {
		t.Errorf("counters should start at 0, got posts=%d files=%d", m.PostsProcessed, m.FilesWritten())
	}
}

func TestTotalDuration(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*BuildMetrics)
		expected func(time.Duration) bool
	}{
		{
			name: "returns elapsed time when end not set",
			setup: func(m *BuildMetrics) {
				m.StartTime = time.Now().Add(-time.Second)
			},
			expected: func(d time.Duration) bool {
				return d >= time.Second
			},
		},
		{
			name: "returns total duration when end is set",
			setup: func(m *BuildMetrics) {
				m.StartTime = time.Now().Add(-5 * time.Second)
				m.EndTime = m.StartTime.Add(5 * time.Second)
			},
			expected: func(d time.Duration) bool {
				return d == 5*time.Second
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewBuildMetrics()
			tt.setup(m)
			if d := m.TotalDuration(); !tt.expected(d) {
				t.Errorf("TotalDuration() = %v, unexpected value", d)
			}
		})
	}
}

func TestPhase(t *testing.T) {
	m := NewBuildMetrics()
	wantErr := errors.New("boom")

	err := m.Phase(&m.RenderTime, func() error {
		time.Sleep(5 * time.Millisecond)
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("Phase() error = %v, want %v", err, wantErr)
	}
	if m.RenderTime < 5*time.Millisecond {
		t.Errorf("RenderTime = %v, want at least 5ms", m.RenderTime)
	}
}

func TestFileWritten_Concurrent(t *testing.T) {
	m := NewBuildMetrics()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.FileWritten("x")
		}()
	}
	wg.Wait()
	if m.FilesWritten() != 50 {
		t.Errorf("FilesWritten() = %d, want 50", m.FilesWritten())
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*BuildMetrics)
		contains []string
	}{
		{
			name:     "empty build",
			setup:    func(m *BuildMetrics) {},
			contains: []string{"Built 0 posts", "0 categories", "0 files", "source: GitHub"},
		},
		{
			name: "fallback build",
			setup: func(m *BuildMetrics) {
				m.PostsProcessed = 2
				m.Categories = 4
				m.UsedFallback = true
				m.FileWritten("index.html")
			},
			contains: []string{"Built 2 posts", "4 categories", "1 files", "source: fallback"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewBuildMetrics()
			tt.setup(m)

			result := m.String()
			if !strings.HasPrefix(result, "📊 Built") {
				t.Errorf("String() = %q, should start with emoji and 'Built'", result)
			}
			for _, expected := range tt.contains {
				if !strings.Contains(result, expected) {
					t.Errorf("String() = %q, should contain %q", result, expected)
				}
			}
		})
	}
}
