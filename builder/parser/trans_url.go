package parser

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// LinkTransformer opens external links in a new tab, lazy-loads images and
// prefixes root-relative targets with the site base path.
type LinkTransformer struct {
	BasePath string
}

func (t *LinkTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch target := n.(type) {
		case *ast.Link:
			target.Destination = t.processDestination(target, target.Destination)
		case *ast.Image:
			target.Destination = t.processDestination(target, target.Destination)
			target.SetAttribute([]byte("loading"), []byte("lazy"))
		}
		return ast.WalkContinue, nil
	})
}

func (t *LinkTransformer) processDestination(n ast.Node, dest []byte) []byte {
	href := string(dest)

	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		if _, isLink := n.(*ast.Link); isLink {
			n.SetAttribute([]byte("target"), []byte("_blank"))
			n.SetAttribute([]byte("rel"), []byte("noopener noreferrer"))
		}
		return dest
	}

	// Protocol-relative and already prefixed targets stay as they are.
	if t.BasePath != "" && strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "//") &&
		href != t.BasePath && !strings.HasPrefix(href, t.BasePath+"/") {
		return []byte(t.BasePath + href)
	}
	return dest
}
