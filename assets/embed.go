package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DefaultTileset is the embedded tileset used when no path is configured.
const DefaultTileset = "tileset.png"

//go:embed tileset.png
var assetsFS embed.FS

// DecodeImage decodes a png, bmp or webp image.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("assets: decode: %w", err)
	}
	return img, nil
}

func decodeEmbedded(path string) (image.Image, error) {
	b, err := assetsFS.ReadFile(cleanAssetPath(path))
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	return DecodeImage(bytes.NewReader(b))
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", path, err)
	}
	defer f.Close()
	return DecodeImage(f)
}

// cleanAssetPath maps an assets-relative path to its name in the
// embedded FS.
func cleanAssetPath(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "assets/")
}
