// Package markup reduces collaborator Markdown to plain text for fixed
// layout documents.
package markup

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var (
	md          = goldmark.New()
	blankLines  = regexp.MustCompile(`\n{3,}`)
	listOrdinal = regexp.MustCompile(`^(\d+)([.)])`)
)

// Characters that can open Markdown syntax. Code literals escape them so
// that a later parse reads them as text.
const syntaxChars = "\\`*_#<>[]-+!=~|&"

// Flatten parses src as CommonMark and returns its text content. Emphasis,
// links, and headings keep only their text, list items become "- " lines,
// code keeps its literal lines with Markdown syntax backslash-escaped, and
// blocks are separated by one blank line. Flatten is pure, and flattening
// its own output returns it unchanged.
func Flatten(src string) string {
	source := []byte(src)
	doc := md.Parser().Parse(text.NewReader(source))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			switch n.Kind() {
			case ast.KindDocument, ast.KindTextBlock:
			case ast.KindListItem, ast.KindList:
				b.WriteByte('\n')
			default:
				if n.Type() == ast.TypeBlock {
					b.WriteString("\n\n")
				}
			}
			return ast.WalkContinue, nil
		}

		switch n := n.(type) {
		case *ast.Text:
			b.Write(n.Segment.Value(source))
			if n.SoftLineBreak() || n.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.String:
			b.Write(n.Value)
		case *ast.AutoLink:
			b.Write(n.URL(source))
			return ast.WalkSkipChildren, nil
		case *ast.ListItem:
			b.WriteString("- ")
		case *ast.CodeSpan:
			var code strings.Builder
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					code.Write(t.Segment.Value(source))
				}
			}
			b.WriteString(escape(strings.ReplaceAll(code.String(), "\n", " ")))
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock, *ast.FencedCodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				line := strings.TrimRight(string(seg.Value(source)), "\r\n")
				b.WriteString(escape(strings.TrimLeft(line, " \t")))
				b.WriteByte('\n')
			}
			return ast.WalkSkipChildren, nil
		case *ast.HTMLBlock, *ast.RawHTML, *ast.ThematicBreak:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return normalize(b.String())
}

// escape backslash-escapes Markdown syntax in a code literal. Leading
// indentation is dropped by the caller since it would read as a code block.
func escape(code string) string {
	var b strings.Builder
	for _, r := range code {
		if strings.ContainsRune(syntaxChars, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return listOrdinal.ReplaceAllString(b.String(), `$1\$2`)
}

func normalize(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	s = strings.Join(lines, "\n")
	s = blankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
