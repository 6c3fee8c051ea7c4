package utils

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// excerptStripper drops the Markdown punctuation that reads badly in a summary.
var excerptStripper = strings.NewReplacer("#", "", "*", "", "`", "", "[", "", "]", "")

// Excerpt strips Markdown punctuation from body, trims it and cuts it to
// limit characters, appending "..." only when something was cut.
func Excerpt(body string, limit int) string {
	plain := strings.TrimSpace(excerptStripper.Replace(body))
	if limit < 0 || utf8.RuneCountInString(plain) <= limit {
		return plain
	}
	runes := []rune(plain)
	return string(runes[:limit]) + "..."
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes the five HTML-significant characters.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// ReadingTime estimates minutes to read plain text: Han characters at 300
// per minute, other words at 200 per minute. Never less than one minute.
func ReadingTime(text string) int {
	var han, words int
	inWord := false
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Han, r):
			han++
			inWord = false
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if !inWord {
				words++
				inWord = true
			}
		default:
			inWord = false
		}
	}
	minutes := int(math.Ceil(float64(han)/300 + float64(words)/200))
	if minutes < 1 {
		return 1
	}
	return minutes
}
