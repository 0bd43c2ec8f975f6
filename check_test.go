// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package docemit

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	const payload = "# Title\n\nBody text."

	testCases := []struct {
		name        string
		files       map[string]string
		dirs        []string
		dest        string
		expected    CheckStatus
		expectedErr string
	}{
		{
			name:     "missing",
			dest:     "out/doc.md",
			expected: StatusMissing,
		},
		{
			name:     "current",
			files:    map[string]string{"doc.md": payload},
			dest:     "doc.md",
			expected: StatusCurrent,
		},
		{
			name:     "stale with different size",
			files:    map[string]string{"doc.md": "# Title\n"},
			dest:     "doc.md",
			expected: StatusStale,
		},
		{
			name:     "stale with same size",
			files:    map[string]string{"doc.md": "# Tetle\n\nBody text."},
			dest:     "doc.md",
			expected: StatusStale,
		},
		{
			name:        "directory",
			dirs:        []string{"doc.md"},
			dest:        "doc.md",
			expectedErr: "read doc.md: destination is a directory",
		},
		{
			name:        "invalid path",
			dest:        "",
			expectedErr: "invalid destination path: path is empty",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			for name, content := range tc.files {
				require.NoError(t, afero.WriteFile(fsys, name, []byte(content), 0o644))
			}
			for _, dir := range tc.dirs {
				require.NoError(t, fsys.MkdirAll(dir, 0o755))
			}

			// checking must never write, a read only view proves it
			e := NewEmitter(WithFS(afero.NewReadOnlyFs(fsys)))
			status, err := e.Check(t.Context(), payload, tc.dest)

			if tc.expectedErr != "" {
				require.EqualError(t, err, tc.expectedErr)
				assert.Empty(t, status)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		})
	}
}

func TestCheckAfterEmit(t *testing.T) {
	fsys := afero.NewMemMapFs()
	e := NewEmitter(WithFS(fsys))

	doc, err := Lookup(DefaultDocumentName)
	require.NoError(t, err)

	status, err := e.Check(t.Context(), doc.Payload, doc.Path)
	require.NoError(t, err)
	assert.Equal(t, StatusMissing, status)

	require.NoError(t, e.Emit(t.Context(), doc.Payload, doc.Path))

	status, err = e.Check(t.Context(), doc.Payload, doc.Path)
	require.NoError(t, err)
	assert.Equal(t, StatusCurrent, status)

	require.NoError(t, e.Emit(t.Context(), "# Something else", doc.Path))

	status, err = e.Check(t.Context(), doc.Payload, doc.Path)
	require.NoError(t, err)
	assert.Equal(t, StatusStale, status)
}
