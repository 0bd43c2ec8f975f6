// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package cmd

import (
	"fmt"
	"strings"

	"github.com/coopcredit/docemit"
	configv0 "github.com/coopcredit/docemit/config/v0"
)

// DocumentList is a printable summary of the catalog
type DocumentList []DocumentListEntry

// DocumentListEntry is a single row of a DocumentList
type DocumentListEntry struct {
	Name        string
	Title       string
	Destination string
}

// NewDocumentList builds a list of documents, resolving destinations against cfg
func NewDocumentList(docs docemit.Documents, cfg *configv0.Config) DocumentList {
	list := make(DocumentList, 0, len(docs))
	for _, doc := range docs {
		dest := doc.Path
		if cfg != nil {
			if p, ok := cfg.Destination(doc.Name); ok {
				dest = p
			}
		}
		list = append(list, DocumentListEntry{
			Name:        doc.Name,
			Title:       docemit.Inspect(doc.Payload).Title,
			Destination: dest,
		})
	}
	return list
}

// String renders one document per line
func (l DocumentList) String() string {
	longest := 0
	for _, e := range l {
		longest = max(longest, len(e.Name))
	}

	lines := make([]string, 0, len(l))
	for _, e := range l {
		name := Green.Render(fmt.Sprintf("%-*s", longest, e.Name))
		lines = append(lines, fmt.Sprintf("- %s  %s %s", name, e.Title, FaintStyle.Render("-> "+e.Destination)))
	}
	return strings.Join(lines, "\n")
}
