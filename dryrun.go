// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package docemit

import (
	"context"

	"github.com/charmbracelet/log"
)

// DryRun logs what Emit would do with the same arguments, without writing
func (e *Emitter) DryRun(ctx context.Context, payload, dest string) error {
	logger := log.FromContext(ctx)

	if payload == "" {
		return ErrEmptyPayload
	}

	status, err := e.Check(ctx, payload, dest)
	if err != nil {
		return err
	}

	action := "overwrite"
	switch status {
	case StatusMissing:
		action = "create"
	case StatusCurrent:
		action = "unchanged"
	}

	logger.Info("dry run", "path", dest, "action", action, "bytes", len(payload))
	printPayload(logger, payload)
	return nil
}
