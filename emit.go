// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package docemit writes embedded documentation to the filesystem.
package docemit

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// DefaultFileMode is the permission applied to newly created documents
const DefaultFileMode fs.FileMode = 0o644

// DefaultDirMode is the permission applied to created parent directories
const DefaultDirMode fs.FileMode = 0o755

var (
	// ErrEmptyPayload is returned when asked to emit an empty payload
	ErrEmptyPayload = errors.New("payload must not be empty")
	// ErrInvalidPath is returned when the destination is not a usable path
	ErrInvalidPath = errors.New("invalid destination path")
	// ErrIsDirectory is wrapped by an IOError when the destination is an existing directory
	ErrIsDirectory = errors.New("destination is a directory")
)

// IOError is the single failure kind surfaced by filesystem operations
//
// Op names the step that failed (mkdir, stat, open, write, close, read)
type IOError struct {
	Op   string
	Path string
	Err  error
}

var _ error = &IOError{}

// Error returns a human readable description of the failure
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *IOError) Unwrap() error {
	return e.Err
}

// Emitter writes payloads to destinations on a filesystem
type Emitter struct {
	fsys afero.Fs
	mode fs.FileMode
}

// EmitterOption configures an Emitter
type EmitterOption func(*Emitter)

// WithFS sets the filesystem to write to
func WithFS(fsys afero.Fs) EmitterOption {
	return func(e *Emitter) {
		e.fsys = fsys
	}
}

// WithFileMode sets the permission used when a destination is created
func WithFileMode(mode fs.FileMode) EmitterOption {
	return func(e *Emitter) {
		e.mode = mode
	}
}

// NewEmitter creates a new emitter, defaulting to the OS filesystem
func NewEmitter(opts ...EmitterOption) *Emitter {
	e := &Emitter{}
	for _, opt := range opts {
		opt(e)
	}
	if e.fsys == nil {
		e.fsys = afero.NewOsFs()
	}
	if e.mode == 0 {
		e.mode = DefaultFileMode
	}
	return e
}

// Emit writes payload to dest, truncating any existing content
//
// Missing parent directories are created. A destination that is an existing
// directory is rejected before anything is opened. A failed write may leave a
// truncated file behind.
func (e *Emitter) Emit(ctx context.Context, payload, dest string) (err error) {
	logger := log.FromContext(ctx)

	if payload == "" {
		return ErrEmptyPayload
	}
	if err := ValidatePath(dest); err != nil {
		return err
	}
	if hasTrailingSeparator(dest) {
		return e.directoryTargetError(dest)
	}

	dir := filepath.Dir(dest)
	parent, err := e.fsys.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("creating parent directory", "dir", dir)
		if err := e.fsys.MkdirAll(dir, DefaultDirMode); err != nil {
			return &IOError{Op: "mkdir", Path: dir, Err: err}
		}
	case err != nil:
		return &IOError{Op: "stat", Path: dir, Err: err}
	case !parent.IsDir():
		return &IOError{Op: "mkdir", Path: dir, Err: syscall.ENOTDIR}
	}

	fi, err := e.fsys.Stat(dest)
	switch {
	case err == nil && fi.IsDir():
		return &IOError{Op: "open", Path: dest, Err: ErrIsDirectory}
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return &IOError{Op: "stat", Path: dest, Err: err}
	}

	f, err := e.fsys.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, e.mode)
	if err != nil {
		return &IOError{Op: "open", Path: dest, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: dest, Err: cerr}
		}
	}()

	n, err := f.WriteString(payload)
	if err != nil {
		return &IOError{Op: "write", Path: dest, Err: err}
	}

	logger.Debug("emitted", "path", dest, "bytes", n)
	return nil
}

// directoryTargetError classifies a destination that ends in a separator
//
// Such a path can only ever name a directory, so nothing is created for it.
func (e *Emitter) directoryTargetError(dest string) error {
	fi, err := e.fsys.Stat(filepath.Clean(dest))
	switch {
	case err == nil && fi.IsDir():
		return &IOError{Op: "open", Path: dest, Err: ErrIsDirectory}
	case err == nil:
		return &IOError{Op: "open", Path: dest, Err: syscall.ENOTDIR}
	case errors.Is(err, fs.ErrNotExist):
		return &IOError{Op: "open", Path: dest, Err: syscall.EISDIR}
	default:
		return &IOError{Op: "stat", Path: dest, Err: err}
	}
}

func hasTrailingSeparator(p string) bool {
	return strings.HasSuffix(p, "/") || strings.HasSuffix(p, string(filepath.Separator))
}

// ValidatePath reports whether p is a syntactically usable destination
//
// Whitespace is a legal file name, only the empty string and NUL bytes are rejected.
func ValidatePath(p string) error {
	switch {
	case p == "":
		return fmt.Errorf("%w: path is empty", ErrInvalidPath)
	case strings.ContainsRune(p, 0):
		return fmt.Errorf("%w: path %q contains a NUL byte", ErrInvalidPath, p)
	}
	return nil
}
