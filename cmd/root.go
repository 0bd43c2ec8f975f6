// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package cmd provides the root command for the docemit CLI.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/coopcredit/docemit"
	"github.com/coopcredit/docemit/config"
	configv0 "github.com/coopcredit/docemit/config/v0"
)

// ErrStale is returned by --check when the destination does not hold the document
var ErrStale = errors.New("document is out of date")

// NewRootCmd creates the root command for the docemit CLI.
func NewRootCmd() *cobra.Command {
	var (
		level      string
		ver        bool
		list       bool
		outline    bool
		preview    bool
		dry        bool
		check      bool
		output     string
		document   string
		dir        string
		configPath string
		mode       = config.DefaultFileMode // VarP does not allow you to set a default value
	)

	var cfg *configv0.Config // cfg is not set via CLI flag

	fsys := afero.NewOsFs()

	// closure initializer
	loadConfig := func(cmd *cobra.Command) error {
		var p string
		switch {
		case cmd.Flags().Changed("config"):
			p = os.ExpandEnv(configPath)
		case os.Getenv(config.EnvConfigPath) != "":
			p = os.Getenv(config.EnvConfigPath)
		default:
			configDir, err := config.DefaultDirectory()
			if err != nil {
				return err
			}
			p = filepath.Join(configDir, config.DefaultFileName)
			if _, err := fsys.Stat(p); errors.Is(err, fs.ErrNotExist) {
				cfg = configv0.LoadDefaultConfig()
				return nil
			}
		}

		f, err := fsys.Open(p)
		if err != nil {
			return fmt.Errorf("failed to open config file: %w", err)
		}
		defer f.Close()
		cfg, err = configv0.LoadConfig(f)
		if err != nil {
			return fmt.Errorf("failed to load config file: %w", err)
		}

		// default < cfg < flags
		if !cmd.Flags().Changed("file-mode") {
			mode = cfg.FileMode
		}

		return nil
	}

	root := &cobra.Command{
		Use:   "docemit",
		Short: "Write embedded architecture documentation to disk",
		Long: `Write embedded architecture documentation to disk.

The document is written verbatim to its destination, creating missing parent
directories and replacing whatever was there before.`,
		Example: `
docemit

docemit -o docs/diagrams/architecture-hexagonal.md

docemit --check

docemit --list
`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if dir != "" {
				if err := os.Chdir(dir); err != nil {
					return err
				}
			}

			return loadConfig(cmd)
		},
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := log.ParseLevel(level)
			if err != nil {
				return err
			}
			logger := log.FromContext(cmd.Context())
			logger.SetLevel(l)

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := log.FromContext(ctx)
			out := cmd.OutOrStdout()

			if ver {
				bi, ok := debug.ReadBuildInfo()
				if !ok {
					return fmt.Errorf("version information not available")
				}
				switch bi.Main.Path {
				case "github.com/coopcredit/docemit":
					fmt.Fprintln(out, bi.Main.Version)
				default:
					for _, dep := range bi.Deps {
						if dep.Path == "github.com/coopcredit/docemit" {
							fmt.Fprintln(out, dep.Version)
							break
						}
					}
				}
				return nil
			}

			if list {
				docs, err := docemit.Catalog()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, "Available documents:")
				fmt.Fprintln(out, NewDocumentList(docs, cfg))
				return nil
			}

			doc, err := docemit.Lookup(document)
			if err != nil {
				return err
			}

			if outline {
				fmt.Fprintln(out, docemit.Inspect(doc.Payload))
				return nil
			}

			if preview {
				return docemit.Render(out, doc.Payload)
			}

			dest := doc.Path
			if p, ok := cfg.Destination(doc.Name); ok {
				dest = p
			}
			if cmd.Flags().Changed("output") {
				dest = output
			}
			dest = os.ExpandEnv(dest)

			emitter := docemit.NewEmitter(
				docemit.WithFS(fsys),
				docemit.WithFileMode(mode.Perm()),
			)

			switch {
			case dry:
				return emitter.DryRun(ctx, doc.Payload, dest)
			case check:
				status, err := emitter.Check(ctx, doc.Payload, dest)
				if err != nil {
					return err
				}
				if status != docemit.StatusCurrent {
					return fmt.Errorf("%w: %s is %s", ErrStale, dest, status)
				}
				logger.Info("up to date", "document", doc.Name, "path", dest)
				return nil
			}

			logger.Debug("emitting", "document", doc.Name, "path", dest, "mode", mode.String())
			if err := emitter.Emit(ctx, doc.Payload, dest); err != nil {
				return err
			}
			logger.Info("wrote", "document", doc.Name, "path", dest)

			return nil
		},
	}

	root.Flags().StringVarP(&level, "log-level", "l", "info", "Set log level")
	_ = root.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{log.DebugLevel.String(), log.InfoLevel.String(), log.WarnLevel.String(), log.ErrorLevel.String(), log.FatalLevel.String()}, cobra.ShellCompDirectiveNoFileComp
	})
	root.Flags().BoolVarP(&ver, "version", "V", false, "Print version number and exit")
	root.Flags().BoolVar(&list, "list", false, "Print list of available documents and exit")
	root.Flags().BoolVar(&outline, "outline", false, "Print the heading outline of the document and exit")
	root.Flags().BoolVar(&preview, "preview", false, "Render the document to the terminal instead of writing it")
	root.Flags().BoolVar(&dry, "dry-run", false, "Don't actually write anything; just print")
	root.Flags().BoolVar(&check, "check", false, "Fail if the destination does not already hold the document")
	root.MarkFlagsMutuallyExclusive("list", "outline", "preview", "dry-run", "check")
	root.Flags().StringVarP(&output, "output", "o", "", "Write the document to this path instead of its default destination")
	_ = root.MarkFlagFilename("output", "md")
	root.Flags().StringVarP(&document, "document", "d", docemit.DefaultDocumentName, "Name of the document to emit")
	_ = root.RegisterFlagCompletionFunc("document", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		docs, err := docemit.Catalog()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		names := make([]string, 0, len(docs))
		for _, doc := range docs {
			names = append(names, doc.Name+"\t"+docemit.Inspect(doc.Payload).Title)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	root.Flags().VarP(&mode, "file-mode", "m", "Permission for a newly created document, in octal")
	root.Flags().StringVarP(&dir, "directory", "C", "", "Change to directory before doing anything")
	_ = root.MarkFlagDirname("directory")
	root.Flags().StringVarP(&configPath, "config", "", "${HOME}/.docemit/config.yaml", "Path to docemit config file") // mirrors config.DefaultDirectory
	_ = root.MarkFlagFilename("config", "yaml", "yml")

	return root
}

// Main executes the root command for the docemit CLI.
//
// It returns 0 on success, 1 on failure and logs any errors.
func Main() int {
	cli := NewRootCmd()

	ctx := context.Background()

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer cancel()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	logger.SetStyles(DefaultStyles())

	ctx = log.WithContext(ctx, logger)
	_, err := cli.ExecuteContextC(ctx)
	if err != nil {
		logger.Error(err)
	}
	return ParseExitCode(err)
}

// ParseExitCode calculates the exit code from a given error
//
// 0 - the error was nil
// 1 - there was some error
func ParseExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
