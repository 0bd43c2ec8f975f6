// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package docemit

import (
	"bytes"
	"context"
	"errors"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// CheckStatus describes how a file on disk relates to a payload
type CheckStatus string

const (
	// StatusCurrent means the destination holds exactly the payload
	StatusCurrent CheckStatus = "current"
	// StatusStale means the destination exists with different content
	StatusStale CheckStatus = "stale"
	// StatusMissing means the destination does not exist
	StatusMissing CheckStatus = "missing"
)

// Check compares the file at dest against payload without modifying anything
func (e *Emitter) Check(ctx context.Context, payload, dest string) (CheckStatus, error) {
	logger := log.FromContext(ctx)

	if err := ValidatePath(dest); err != nil {
		return "", err
	}

	fi, err := e.fsys.Stat(dest)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return StatusMissing, nil
		}
		return "", &IOError{Op: "stat", Path: dest, Err: err}
	}
	if fi.IsDir() {
		return "", &IOError{Op: "read", Path: dest, Err: ErrIsDirectory}
	}

	// a size mismatch is enough, no need to read the file
	if fi.Size() != int64(len(payload)) {
		logger.Debug("size mismatch", "path", dest, "expected", len(payload), "got", fi.Size())
		return StatusStale, nil
	}

	b, err := afero.ReadFile(e.fsys, dest)
	if err != nil {
		return "", &IOError{Op: "read", Path: dest, Err: err}
	}

	if !bytes.Equal(b, []byte(payload)) {
		return StatusStale, nil
	}
	return StatusCurrent, nil
}
