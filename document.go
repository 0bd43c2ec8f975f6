// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package docemit

import (
	"cmp"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"
)

// DefaultDocumentName is the document emitted when none is specified
const DefaultDocumentName = "architecture-hexagonal"

//go:embed docs/*.md
var embedded embed.FS

// defaultPaths maps a document name to where it lands relative to the project root
var defaultPaths = map[string]string{
	"architecture-hexagonal": "docs/diagrams/architecture-hexagonal.md",
}

// Document is a named, immutable markdown payload
type Document struct {
	Name    string
	Path    string
	Payload string
}

// Documents is a list of documents ordered by name
type Documents []Document

// Names returns the name of every document
func (d Documents) Names() []string {
	names := make([]string, 0, len(d))
	for _, doc := range d {
		names = append(names, doc.Name)
	}
	return names
}

var catalogOnce = sync.OnceValues(func() (Documents, error) {
	return loadCatalog(embedded)
})

// Catalog returns every built-in document
func Catalog() (Documents, error) {
	docs, err := catalogOnce()
	if err != nil {
		return nil, err
	}
	return slices.Clone(docs), nil
}

// Lookup returns the built-in document with the given name
func Lookup(name string) (Document, error) {
	docs, err := catalogOnce()
	if err != nil {
		return Document{}, err
	}
	for _, doc := range docs {
		if doc.Name == name {
			return doc, nil
		}
	}
	return Document{}, fmt.Errorf("document %q not found, available: %s", name, strings.Join(docs.Names(), ", "))
}

func loadCatalog(fsys fs.FS) (Documents, error) {
	matches, err := fs.Glob(fsys, "docs/*.md")
	if err != nil {
		return nil, err
	}

	docs := make(Documents, 0, len(matches))
	for _, m := range matches {
		b, err := fs.ReadFile(fsys, m)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded document %q: %w", m, err)
		}
		if len(b) == 0 {
			return nil, fmt.Errorf("embedded document %q is empty", m)
		}

		name := strings.TrimSuffix(path.Base(m), ".md")
		p, ok := defaultPaths[name]
		if !ok {
			p = path.Join("docs", name+".md")
		}

		docs = append(docs, Document{
			Name:    name,
			Path:    p,
			Payload: string(b),
		})
	}

	slices.SortFunc(docs, func(a, b Document) int {
		return cmp.Compare(a.Name, b.Name)
	})

	return docs, nil
}
