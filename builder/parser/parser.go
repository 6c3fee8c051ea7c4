// Configures the markdown parser used for issue bodies and comments
package parser

import (
	"bytes"
	"fmt"
	"strings"

	chroma_html "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/Master08s/looks-blog/builder/models"
)

func codeBlockWrapper(w util.BufWriter, c highlighting.CodeBlockContext, entering bool) {
	if entering {
		langBytes, _ := c.Language()
		lang := string(langBytes)
		if lang == "" {
			lang = "text"
		}
		_, _ = w.WriteString(`<div class="code-wrapper" data-lang="` + lang + `">`)
	} else {
		_, _ = w.WriteString(`</div>`)
	}
}

// New creates the Goldmark converter: GitHub-flavored Markdown, single line
// breaks kept as <br>, raw HTML passed through, highlighted code blocks.
// basePath is prefixed to root-relative link and image targets.
func New(basePath string) goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(
					chroma_html.TabWidth(4),
				),
				highlighting.WithWrapperRenderer(codeBlockWrapper),
			),
		),
		goldmark.WithParserOptions(
			parser.WithASTTransformers(
				util.Prioritized(&LinkTransformer{BasePath: basePath}, 100),
				util.Prioritized(&TOCTransformer{}, 200),
			),
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithUnsafe(),
		),
	)
}

// Document is the result of converting one Markdown source.
type Document struct {
	HTML      string
	TOC       []models.TOCEntry
	PlainText string
}

// Convert parses and renders source, collecting the table of contents and
// the plain text along the way.
func Convert(md goldmark.Markdown, source string) (Document, error) {
	src := []byte(source)
	pc := parser.NewContext()
	doc := md.Parser().Parse(text.NewReader(src), parser.WithContext(pc))

	var buf bytes.Buffer
	if err := md.Renderer().Render(&buf, src, doc); err != nil {
		return Document{}, fmt.Errorf("failed to render markdown: %w", err)
	}
	return Document{
		HTML:      buf.String(),
		TOC:       GetTOC(pc),
		PlainText: ExtractPlainText(doc, src),
	}, nil
}

// ExtractPlainText walks the AST and returns a clean string of all text content
func ExtractPlainText(node ast.Node, source []byte) string {
	var out strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.Kind() {
		case ast.KindText:
			t := n.(*ast.Text)
			out.Write(t.Segment.Value(source))
			out.WriteString(" ")
		case ast.KindCodeBlock, ast.KindFencedCodeBlock:
			l := n.Lines().Len()
			for i := 0; i < l; i++ {
				line := n.Lines().At(i)
				out.Write(line.Value(source))
			}
			out.WriteString(" ")
		case ast.KindHeading:
			out.WriteString("\n")
		}
		return ast.WalkContinue, nil
	})
	return out.String()
}
