package utils

import (
	"strings"
	"unicode"

	"github.com/gosimple/slug"
	"github.com/mozillazg/go-pinyin"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

var pinyinArgs = pinyin.NewArgs()

// CategorySlug turns a label name into a deterministic, URL-safe file name.
// Han characters become toneless pinyin syllables joined by '-'; everything
// else goes through the generic slugger. Names with nothing transliterable
// get a stable hash-based slug so that they still produce a page.
func CategorySlug(name string) string {
	folded := norm.NFC.String(width.Fold.String(name))

	var b strings.Builder
	for _, r := range folded {
		if unicode.Is(unicode.Han, r) {
			if py := pinyin.SinglePinyin(r, pinyinArgs); len(py) > 0 {
				b.WriteByte(' ')
				b.WriteString(py[0])
				b.WriteByte(' ')
				continue
			}
		}
		b.WriteRune(r)
	}

	s := slug.Make(b.String())
	if s == "" {
		return "category-" + ShortHash(name)
	}
	return s
}
