package icons

import (
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNames verifies the bundled artwork is present.
func TestNames(t *testing.T) {
	names := Names()
	assert.Contains(t, names, "pin")
	assert.Contains(t, names, "sos")
	assert.Contains(t, names, "chat")
	assert.Contains(t, names, "weather")
	assert.Contains(t, names, "plane")
	assert.Contains(t, names, "phone")
}

// TestPathRendersPNG verifies an icon rasterizes to a decodable PNG of
// the requested size.
func TestPathRendersPNG(t *testing.T) {
	cache, err := NewCache(t.TempDir())
	require.NoError(t, err)

	path, err := cache.Path("pin", 64)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())
}

// TestPathIsCached verifies repeated lookups return the same file.
func TestPathIsCached(t *testing.T) {
	cache, err := NewCache(t.TempDir())
	require.NoError(t, err)

	first, err := cache.Path("sos", 32)
	require.NoError(t, err)
	second, err := cache.Path("sos", 32)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// A different size renders a different file.
	other, err := cache.Path("sos", 48)
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

// TestPathUnknownIcon verifies unknown names error.
func TestPathUnknownIcon(t *testing.T) {
	cache, err := NewCache(t.TempDir())
	require.NoError(t, err)

	_, err = cache.Path("nope", 32)
	assert.Error(t, err)
}

// TestPathInvalidSize verifies non-positive sizes error.
func TestPathInvalidSize(t *testing.T) {
	cache, err := NewCache(t.TempDir())
	require.NoError(t, err)

	_, err = cache.Path("pin", 0)
	assert.Error(t, err)
}

// TestNewCacheTempDir verifies the empty-dir form creates a directory.
func TestNewCacheTempDir(t *testing.T) {
	cache, err := NewCache("")
	require.NoError(t, err)
	defer os.RemoveAll(cache.Dir())

	info, err := os.Stat(cache.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
