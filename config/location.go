// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package config

import (
	"os"
	"path/filepath"
)

// DefaultFileName is the default file name for the config file
const DefaultFileName = "config.yaml"

// EnvConfigPath names the environment variable that points at a config file
const EnvConfigPath = "DOCEMIT_CONFIG"

// DefaultDirectory returns the default directory for docemit configuration ($HOME/.docemit)
//
// Currently this relies upon the $HOME environment variable being set
func DefaultDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".docemit"), nil
}
