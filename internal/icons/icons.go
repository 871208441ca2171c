// Package icons rasterizes the bundled SVG artwork into PNG files.
// SDL textures are loaded from file paths, so each icon is rendered
// once per size into a cache directory and referenced by path.
package icons

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/*.svg
var assetFS embed.FS

// Cache renders embedded SVGs to PNGs on demand and remembers the
// resulting paths.
type Cache struct {
	dir string

	mu       sync.Mutex
	rendered map[string]string
}

// NewCache creates a cache rooted at dir. An empty dir uses a fresh
// per-process temp directory.
func NewCache(dir string) (*Cache, error) {
	if dir == "" {
		tmp, err := os.MkdirTemp("", "travelbuddy-icons-")
		if err != nil {
			return nil, fmt.Errorf("icons: create cache dir: %w", err)
		}
		dir = tmp
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("icons: create cache dir: %w", err)
	}
	return &Cache{dir: dir, rendered: make(map[string]string)}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

// Names lists the bundled icon names, sorted.
func Names() []string {
	entries, err := assetFS.ReadDir("assets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		names = append(names, name[:len(name)-len(".svg")])
	}
	sort.Strings(names)
	return names
}

// Path returns the PNG path for the named icon at the given pixel size,
// rasterizing it on first use. Unknown names and bad sizes error.
func (c *Cache) Path(name string, size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("icons: invalid size %d", size)
	}
	key := fmt.Sprintf("%s_%d", name, size)

	c.mu.Lock()
	defer c.mu.Unlock()
	if path, ok := c.rendered[key]; ok {
		return path, nil
	}

	data, err := assetFS.ReadFile("assets/" + name + ".svg")
	if err != nil {
		return "", fmt.Errorf("icons: unknown icon %q", name)
	}

	path := filepath.Join(c.dir, key+".png")
	if err := renderPNG(data, size, path); err != nil {
		return "", err
	}
	c.rendered[key] = path
	return path, nil
}

func renderPNG(svg []byte, size int, path string) error {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return fmt.Errorf("icons: parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("icons: write png: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, rgba); err != nil {
		return fmt.Errorf("icons: encode png: %w", err)
	}
	return nil
}
