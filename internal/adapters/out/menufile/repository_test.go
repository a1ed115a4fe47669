package menufile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"barista/internal/adapters/out/menufile"
	"barista/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validMenu = `
items:
  - id: c1
    name: café au lait
    durationSeconds: 4
  - id: c2
    name: espresso
    durationSeconds: 2
`

func TestLoad(t *testing.T) {
	t.Run("should load items in file order", func(t *testing.T) {
		repo, err := menufile.Load(strings.NewReader(validMenu))
		require.NoError(t, err)

		items, err := repo.GetAll(t.Context())

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "c1", items[0].ID())
		assert.Equal(t, "café au lait", items[0].Name())
		assert.Equal(t, 4, items[0].DurationSeconds())
		assert.Equal(t, "c2", items[1].ID())
	})

	t.Run("should find an item by id", func(t *testing.T) {
		repo, err := menufile.Load(strings.NewReader(validMenu))
		require.NoError(t, err)

		item, err := repo.Get(t.Context(), "c2")

		require.NoError(t, err)
		assert.Equal(t, "espresso", item.Name())
	})

	t.Run("should report an unknown id", func(t *testing.T) {
		repo, err := menufile.Load(strings.NewReader(validMenu))
		require.NoError(t, err)

		_, err = repo.Get(t.Context(), "c3")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	testCases := []struct {
		name     string
		input    string
		expected error
		contains string
	}{
		{
			name:     "non-positive duration",
			input:    "items:\n  - id: c1\n    name: latte\n    durationSeconds: 0\n",
			expected: errs.ErrValueIsInvalid,
			contains: "item 0",
		},
		{
			name:     "missing name",
			input:    "items:\n  - id: c1\n    durationSeconds: 3\n",
			expected: errs.ErrValueIsRequired,
			contains: "name",
		},
		{
			name:     "duplicate id",
			input:    "items:\n  - {id: c1, name: a, durationSeconds: 1}\n  - {id: c1, name: b, durationSeconds: 2}\n",
			expected: errs.ErrValueIsInvalid,
			contains: `"c1"`,
		},
		{
			name:     "no items",
			input:    "items: []\n",
			expected: errs.ErrValueIsRequired,
			contains: "menu items",
		},
	}
	for _, tc := range testCases {
		t.Run("should reject "+tc.name, func(t *testing.T) {
			_, err := menufile.Load(strings.NewReader(tc.input))

			require.ErrorIs(t, err, tc.expected)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}

	t.Run("should reject unknown fields", func(t *testing.T) {
		_, err := menufile.Load(strings.NewReader("items:\n  - id: c1\n    name: a\n    duration: 4\n"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "duration")
	})

	t.Run("should reject an empty document", func(t *testing.T) {
		_, err := menufile.Load(strings.NewReader(""))

		require.EqualError(t, err, "menu is empty")
	})
}

func TestOpen(t *testing.T) {
	t.Run("should read a file from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "menu.yaml")
		require.NoError(t, os.WriteFile(path, []byte(validMenu), 0o600))

		repo, err := menufile.Open(path)

		require.NoError(t, err)
		items, _ := repo.GetAll(t.Context())
		assert.Len(t, items, 2)
	})

	t.Run("should fail for a missing file", func(t *testing.T) {
		_, err := menufile.Open(filepath.Join(t.TempDir(), "nope.yaml"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
