package utils

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		limit int
		want  string
	}{
		{"short text untouched", "hello", 10, "hello"},
		{"exact limit untouched", "abcde", 5, "abcde"},
		{"truncated with suffix", "abcdefgh", 5, "abcde..."},
		{"markdown stripped", "# Title\n**bold** `code` [link]", 100, "Title\nbold code link"},
		{"trimmed after strip", "  ## \n", 10, ""},
		{"counts characters not bytes", "欢迎来到博客系统", 4, "欢迎来到..."},
		{"empty body", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Excerpt(tt.body, tt.limit); got != tt.want {
				t.Errorf("Excerpt(%q, %d) = %q, want %q", tt.body, tt.limit, got, tt.want)
			}
		})
	}
}

func TestExcerpt_LengthBound(t *testing.T) {
	body := strings.Repeat("这是一段很长的文字。", 50)
	for _, limit := range []int{1, 10, 200} {
		got := Excerpt(body, limit)
		if n := utf8.RuneCountInString(got); n != limit+3 {
			t.Errorf("limit %d: excerpt has %d characters, want %d", limit, n, limit+3)
		}
		if !strings.HasSuffix(got, "...") {
			t.Errorf("limit %d: excerpt %q lacks suffix", limit, got)
		}
	}
}

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`<script>alert("x")</script>`, "&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;"},
		{"Tom & Jerry's", "Tom &amp; Jerry&#39;s"},
		{"plain", "plain"},
		{"&amp;", "&amp;amp;"},
	}
	for _, tt := range tests {
		if got := EscapeHTML(tt.in); got != tt.want {
			t.Errorf("EscapeHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeHTML_NoRawMetacharacters(t *testing.T) {
	got := EscapeHTML(`a<b>c"d'e&f`)
	for _, c := range []string{"<", ">", `"`, "'"} {
		if strings.Contains(got, c) {
			t.Errorf("escaped output %q still contains %q", got, c)
		}
	}
}

func TestReadingTime(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 1},
		{"few words", "hello world", 1},
		{"400 words", strings.Repeat("word ", 400), 2},
		{"600 han", strings.Repeat("字", 600), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReadingTime(tt.text); got != tt.want {
				t.Errorf("ReadingTime() = %d, want %d", got, tt.want)
			}
		})
	}
}
