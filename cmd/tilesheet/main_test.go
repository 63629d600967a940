package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/milk9111/tileview/viewport"
)

func TestSheetLayout(t *testing.T) {
	w, h := SheetSize(8, 6)
	if w != 284 || h != 252 {
		t.Fatalf("size = %dx%d, want 284x252", w, h)
	}
	src := viewport.SourceRect()
	o := TileOrigin(viewport.SourceCol, viewport.SourceRow)
	if o != src.Min {
		t.Fatalf("origin of source cell = %v, want %v", o, src.Min)
	}
}

func TestGenerateSheetPixels(t *testing.T) {
	img := GenerateSheet(8, 6)
	cases := []struct {
		name string
		p    image.Point
		want color.RGBA
	}{
		{"header", image.Pt(10, 10), color.RGBA{32, 32, 40, 0xff}},
		{"gap", image.Pt(33, 100), color.RGBA{}},
		{"tile_fill", image.Pt(40, 150), TileColor(1, 3)},
		{"tile_border", image.Pt(36, 148), color.RGBA{TileColor(1, 3).R / 2, TileColor(1, 3).G / 2, TileColor(1, 3).B / 2, 0xff}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := img.RGBAAt(c.p.X, c.p.Y); got != c.want {
				t.Fatalf("pixel %v = %v, want %v", c.p, got, c.want)
			}
		})
	}
}

// The embedded tileset is produced by this tool; keep them in sync.
func TestEmbeddedTilesetMatches(t *testing.T) {
	b, err := os.ReadFile("../../assets/tileset.png")
	if err != nil {
		t.Fatalf("read embedded tileset: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := GenerateSheet(8, 6)
	if decoded.Bounds() != want.Bounds() {
		t.Fatalf("bounds = %v, want %v", decoded.Bounds(), want.Bounds())
	}
	for y := 0; y < want.Bounds().Dy(); y += 7 {
		for x := 0; x < want.Bounds().Dx(); x += 5 {
			got := color.NRGBAModel.Convert(decoded.At(x, y)).(color.NRGBA)
			exp := want.RGBAAt(x, y)
			if got.A != exp.A || (exp.A != 0 && (got.R != exp.R || got.G != exp.G || got.B != exp.B)) {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, exp)
			}
		}
	}
}
