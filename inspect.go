// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package docemit

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Heading is a single markdown heading
type Heading struct {
	Level int
	Text  string
}

// Outline is the heading structure of a markdown document
type Outline struct {
	// Title is the text of the first level 1 heading, if any
	Title    string
	Headings []Heading
}

// Inspect parses payload as markdown and returns its outline
//
// Fenced code blocks (mermaid diagrams included) are skipped by the parser,
// so comment lines starting with # inside them are not mistaken for headings.
func Inspect(payload string) Outline {
	src := []byte(payload)
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(src))

	var outline Outline
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		t := strings.TrimSpace(string(h.Text(src)))
		if h.Level == 1 && outline.Title == "" {
			outline.Title = t
		}
		outline.Headings = append(outline.Headings, Heading{Level: h.Level, Text: t})
		return ast.WalkSkipChildren, nil
	})

	return outline
}

// String renders the outline as an indented list
func (o Outline) String() string {
	var sb strings.Builder
	for i, h := range o.Headings {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.Repeat("  ", max(h.Level-1, 0)))
		sb.WriteString("- ")
		sb.WriteString(h.Text)
	}
	return sb.String()
}
