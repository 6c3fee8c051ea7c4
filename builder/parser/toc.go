package parser

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/Master08s/looks-blog/builder/models"
)

var tocKey = parser.NewContextKey()

func GetTOC(pc parser.Context) []models.TOCEntry {
	if v := pc.Get(tocKey); v != nil {
		return v.([]models.TOCEntry)
	}
	return nil
}

// TOCTransformer records h2-h6 headings. The h1 of an issue body usually
// repeats the title, so it is left out.
type TOCTransformer struct{}

func (t *TOCTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	var toc []models.TOCEntry

	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != ast.KindHeading {
			return ast.WalkContinue, nil
		}
		heading := n.(*ast.Heading)
		if heading.Level < 2 || heading.Level > 6 {
			return ast.WalkContinue, nil
		}

		var headerText strings.Builder
		_ = ast.Walk(heading, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
			if entering && child.Kind() == ast.KindText {
				headerText.Write(child.(*ast.Text).Segment.Value(reader.Source()))
			}
			return ast.WalkContinue, nil
		})

		if id, ok := heading.AttributeString("id"); ok {
			if b, ok := id.([]byte); ok {
				toc = append(toc, models.TOCEntry{
					ID:    string(b),
					Text:  headerText.String(),
					Level: heading.Level,
				})
			}
		}
		return ast.WalkSkipChildren, nil
	})

	pc.Set(tocKey, toc)
}
