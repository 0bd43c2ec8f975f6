// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package main provides the entry point for the application.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/coopcredit/docemit"
	configv0 "github.com/coopcredit/docemit/config/v0"
)

// SchemaFileName is where the config schema is written, relative to the repo root
const SchemaFileName = "docemit.schema.json"

func run(ctx context.Context, fsys afero.Fs, root string) error {
	schema := configv0.Schema()

	b, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return err
	}

	emitter := docemit.NewEmitter(docemit.WithFS(fsys))
	return emitter.Emit(ctx, string(b)+"\n", filepath.Join(root, SchemaFileName))
}

// main is the entry point for the application
func main() {
	// usage: `go run gen/main.go`
	if err := run(context.Background(), afero.NewOsFs(), ""); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
