// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package config provides system-level configuration for docemit
package config

import (
	"fmt"
	"io/fs"
	"regexp"
	"strconv"

	"github.com/invopop/jsonschema"
	"github.com/spf13/pflag"
)

// FileMode is the permission applied to emitted documents, written in octal
type FileMode fs.FileMode

var _ pflag.Value = (*FileMode)(nil)

// DefaultFileMode is the file mode used when none is specified
const DefaultFileMode FileMode = 0o644

// FileModePattern matches the accepted textual forms of a FileMode
const FileModePattern = "^(0o|0)?[0-7]{3}$"

// String implements the pflag.Value and fmt.Stringer interfaces
func (m *FileMode) String() string {
	return fmt.Sprintf("%04o", uint32(*m))
}

// Set implements the pflag.Value interface
func (m *FileMode) Set(value string) error {
	mode, err := ParseFileMode(value)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Type implements the pflag.Value interface
func (m *FileMode) Type() string {
	return "mode"
}

// Perm returns the mode as an fs.FileMode
func (m FileMode) Perm() fs.FileMode {
	return fs.FileMode(m).Perm()
}

var fileModeRegex = regexp.MustCompile(FileModePattern)

// ParseFileMode parses an octal permission such as 644, 0644 or 0o644
//
// The accepted forms are exactly those matched by FileModePattern, so a flag
// and a config file agree on what is valid.
func ParseFileMode(value string) (FileMode, error) {
	if !fileModeRegex.MatchString(value) {
		return 0, fmt.Errorf("invalid file mode: %s", value)
	}

	digits := value[len(value)-3:]
	n, err := strconv.ParseUint(digits, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid file mode: %s", value)
	}
	return FileMode(n), nil
}

// JSONSchemaExtend extends the JSON schema for FileMode
func (FileMode) JSONSchemaExtend(schema *jsonschema.Schema) {
	schema.Type = "string"
	schema.Pattern = FileModePattern
	schema.Description = "Octal permission for emitted documents (e.g. \"0644\")"
}
