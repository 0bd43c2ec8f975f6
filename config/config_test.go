// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package config

import (
	"io/fs"
	"regexp"
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileMode(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		assert.Equal(t, FileMode(0o644), DefaultFileMode)
		assert.Equal(t, fs.FileMode(0o644), DefaultFileMode.Perm())
	})

	t.Run("pflag value interface", func(t *testing.T) {
		mode := DefaultFileMode
		assert.Equal(t, "0644", mode.String())
		assert.Equal(t, "mode", mode.Type())

		require.NoError(t, mode.Set("600"))
		assert.Equal(t, FileMode(0o600), mode)
		assert.Equal(t, "0600", mode.String())

		err := mode.Set("999")
		require.EqualError(t, err, "invalid file mode: 999")
		assert.Equal(t, FileMode(0o600), mode, "mode should remain unchanged after invalid set")

		var flagValue pflag.Value = &mode
		assert.NotNil(t, flagValue)
	})

	t.Run("parse", func(t *testing.T) {
		testCases := []struct {
			value       string
			expected    FileMode
			expectedErr string
		}{
			{value: "644", expected: 0o644},
			{value: "0644", expected: 0o644},
			{value: "0o640", expected: 0o640},
			{value: "0755", expected: 0o755},
			{value: "000", expected: 0},
			{value: "", expectedErr: "invalid file mode: "},
			{value: "64", expectedErr: "invalid file mode: 64"},
			{value: "1644", expectedErr: "invalid file mode: 1644"},
			{value: "0o1644", expectedErr: "invalid file mode: 0o1644"},
			{value: "0o0644", expectedErr: "invalid file mode: 0o0644"},
			{value: "00644", expectedErr: "invalid file mode: 00644"},
			{value: " 644", expectedErr: "invalid file mode:  644"},
			{value: "rw-r--r--", expectedErr: "invalid file mode: rw-r--r--"},
			{value: "0x1a4", expectedErr: "invalid file mode: 0x1a4"},
		}

		for _, tc := range testCases {
			t.Run(tc.value, func(t *testing.T) {
				mode, err := ParseFileMode(tc.value)
				if tc.expectedErr != "" {
					require.EqualError(t, err, tc.expectedErr)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tc.expected, mode)
			})
		}
	})

	t.Run("parser agrees with pattern", func(t *testing.T) {
		pattern := regexp.MustCompile(FileModePattern)
		for _, value := range []string{"644", "0644", "0o644", "0o0644", "00644", "0644 ", "0o64", "1644", "0o", ""} {
			_, err := ParseFileMode(value)
			assert.Equal(t, pattern.MatchString(value), err == nil, value)
		}
	})

	t.Run("json schema", func(t *testing.T) {
		schema := &jsonschema.Schema{}
		FileMode(0).JSONSchemaExtend(schema)
		assert.Equal(t, "string", schema.Type)
		assert.Equal(t, FileModePattern, schema.Pattern)
		assert.NotEmpty(t, schema.Description)
	})
}
