package ingestion

import (
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// markdownParser is shared across extractions; goldmark parsers are
// stateless between Parse calls.
var markdownParser = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// extractMarkdown splits a markdown file into heading-delimited sections.
// Each section's text starts with its heading line so the heading stays
// attached to the content it introduces. Content before the first heading
// becomes its own section.
func extractMarkdown(path string) ([]Page, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, nil
	}

	doc := markdownParser.Parser().Parse(text.NewReader(raw))

	var (
		pages   []Page
		heading string
		body    strings.Builder
	)

	flush := func() {
		content := strings.TrimSpace(body.String())
		body.Reset()
		if content == "" {
			return
		}
		if heading != "" {
			content = heading + "\n" + content
		}
		pages = append(pages, Page{Text: content, Number: len(pages)})
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			flush()
			heading = nodeText(node, raw)
			return ast.WalkSkipChildren, nil

		case *ast.Paragraph, *ast.List, *ast.ListItem, *ast.Blockquote:
			if body.Len() > 0 && !strings.HasSuffix(body.String(), "\n") {
				body.WriteString("\n")
			}
			return ast.WalkContinue, nil

		case *ast.Text:
			body.Write(node.Segment.Value(raw))
			return ast.WalkContinue, nil

		case *ast.String:
			body.Write(node.Value)
			return ast.WalkContinue, nil

		case *ast.FencedCodeBlock:
			writeBlockLines(&body, node.Lines(), raw)
			return ast.WalkSkipChildren, nil

		case *ast.CodeBlock:
			writeBlockLines(&body, node.Lines(), raw)
			return ast.WalkSkipChildren, nil

		default:
			kind := n.Kind().String()
			if strings.Contains(kind, "TableRow") || strings.Contains(kind, "TableHeader") {
				if body.Len() > 0 && !strings.HasSuffix(body.String(), "\n") {
					body.WriteString("\n")
				}
				body.WriteString(tableRowText(n, raw))
				body.WriteString("\n")
				return ast.WalkSkipChildren, nil
			}
			return ast.WalkContinue, nil
		}
	})

	flush()

	if len(pages) == 0 && heading != "" {
		pages = append(pages, Page{Text: heading, Number: 0})
	}
	return pages, nil
}

// writeBlockLines appends the raw source lines of a code block.
func writeBlockLines(body *strings.Builder, lines *text.Segments, source []byte) {
	if body.Len() > 0 && !strings.HasSuffix(body.String(), "\n") {
		body.WriteString("\n")
	}
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		body.Write(seg.Value(source))
	}
}

// nodeText collects the plain text under a node.
func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := node.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(source))
		case *ast.String:
			b.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// tableRowText renders one table row as pipe-separated cells.
func tableRowText(row ast.Node, source []byte) string {
	var b strings.Builder
	cells := 0
	_ = ast.Walk(row, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if strings.Contains(node.Kind().String(), "TableCell") {
			if cells > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(nodeText(node, source))
			cells++
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
