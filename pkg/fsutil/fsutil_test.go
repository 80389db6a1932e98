package fsutil

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient() (*AferoClient, afero.Fs) {
	fs := afero.NewMemMapFs()
	return NewAferoClient(fs), fs
}

func TestListDir(t *testing.T) {
	c, fs := newClient()
	require.NoError(t, afero.WriteFile(fs, "/dir/a", []byte("x"), 0o644))
	require.NoError(t, fs.MkdirAll("/dir/sub", 0o755))

	entries, err := c.ListDir("/dir")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byPath := map[string]bool{}
	for _, e := range entries {
		byPath[e.Path] = e.IsDir
	}
	assert.False(t, byPath["/dir/a"])
	assert.True(t, byPath["/dir/sub"])
}

func TestDeleteMissingPathIsNoError(t *testing.T) {
	c, _ := newClient()
	assert.NoError(t, c.Delete("/nope", false))
	assert.NoError(t, c.Delete("/nope", true))
}

func TestDeleteRecursive(t *testing.T) {
	c, fs := newClient()
	require.NoError(t, afero.WriteFile(fs, "/dir/sub/a", []byte("x"), 0o644))

	require.NoError(t, c.Delete("/dir", true))
	exists, err := c.Exists("/dir")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRenameAndCreateDir(t *testing.T) {
	c, fs := newClient()
	require.NoError(t, afero.WriteFile(fs, "/staging/part-0", []byte("rows"), 0o644))

	require.NoError(t, c.CreateDir("/final"))
	// creating an existing dir is fine
	require.NoError(t, c.CreateDir("/final"))
	require.NoError(t, c.Rename("/staging/part-0", "/final/part-0"))

	data, err := afero.ReadFile(fs, "/final/part-0")
	require.NoError(t, err)
	assert.Equal(t, "rows", string(data))
}
