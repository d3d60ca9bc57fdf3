package discover

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentHashIsStableAndSensitive(t *testing.T) {
	h1, err := ContentHash([]byte("module m; endmodule"))
	require.NoError(t, err)
	h2, err := ContentHash([]byte("module m; endmodule"))
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	h3, err := ContentHash([]byte("module n; endmodule"))
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3)
}

func TestCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()

	c, err := OpenCache(dir)
	require.NoError(t, err)

	hash, err := ContentHash([]byte("x"))
	require.NoError(t, err)

	assert.False(t, c.Unchanged("a.v", hash))
	c.Remember("a.v", hash)
	assert.True(t, c.Unchanged("a.v", hash))

	require.NoError(t, c.Save())

	reopened, err := OpenCache(dir)
	require.NoError(t, err)
	assert.True(t, reopened.Unchanged("a.v", hash))
}

func TestDisabledCacheIsAlwaysAMiss(t *testing.T) {
	c, err := OpenCache("")
	require.NoError(t, err)
	hash, _ := ContentHash([]byte("x"))
	c.Remember("a.v", hash)
	assert.False(t, c.Unchanged("a.v", hash))
}

func TestOpenCacheUsesFixedFileName(t *testing.T) {
	dir := t.TempDir()
	c, err := OpenCache(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "svtags-cache.json"), c.path)
}
