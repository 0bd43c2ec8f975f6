// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package docemit

import (
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	var buf strings.Builder

	require.NoError(t, Render(&buf, "# Title\n\nBody text."))

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Body text.")

	// not a terminal
	styled, width := terminalInfo(&buf)
	assert.False(t, styled)
	assert.Equal(t, DefaultWrapWidth, width)
}

func TestPrintPayload(t *testing.T) {
	t.Setenv("NO_COLOR", "true")

	var buf strings.Builder
	printPayload(log.New(&buf), "# Title\n\nBody text.\n")
	assert.Equal(t, "  # Title\n  \n  Body text.\n", buf.String())
}

func TestDryRun(t *testing.T) {
	t.Setenv("NO_COLOR", "true")

	const payload = "# Title\n\nBody text."

	testCases := []struct {
		name        string
		files       map[string]string
		payload     string
		dest        string
		expected    string
		expectedErr string
	}{
		{
			name:     "create",
			payload:  payload,
			dest:     "x/doc.md",
			expected: "INFO dry run path=x/doc.md action=create bytes=19\n  # Title\n  \n  Body text.\n",
		},
		{
			name:     "overwrite",
			files:    map[string]string{"x/doc.md": "old"},
			payload:  payload,
			dest:     "x/doc.md",
			expected: "INFO dry run path=x/doc.md action=overwrite bytes=19\n",
		},
		{
			name:     "unchanged",
			files:    map[string]string{"x/doc.md": payload},
			payload:  payload,
			dest:     "x/doc.md",
			expected: "INFO dry run path=x/doc.md action=unchanged bytes=19\n",
		},
		{
			name:        "empty payload",
			dest:        "x/doc.md",
			expectedErr: "payload must not be empty",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			for name, content := range tc.files {
				require.NoError(t, afero.WriteFile(fsys, name, []byte(content), 0o644))
			}

			var buf strings.Builder
			ctx := log.WithContext(t.Context(), log.New(&buf))

			err := NewEmitter(WithFS(afero.NewReadOnlyFs(fsys))).DryRun(ctx, tc.payload, tc.dest)
			if tc.expectedErr != "" {
				require.EqualError(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(buf.String(), tc.expected), buf.String())

			_, err = fsys.Stat("x/doc.md")
			if len(tc.files) == 0 {
				require.Error(t, err, "dry run must not write")
			}
		})
	}
}
