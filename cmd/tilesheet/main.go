// Command tilesheet writes a placeholder tileset in the layout tileview
// crops from: a header band, then a grid of square tiles separated by
// gaps.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/milk9111/tileview/viewport"
	"github.com/rs/zerolog/log"
)

func main() {
	out := flag.String("o", "assets/tileset.png", "output PNG path")
	cols := flag.Int("cols", 8, "tile columns")
	rows := flag.Int("rows", 6, "tile rows")
	flag.Parse()

	img := GenerateSheet(*cols, *rows)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal().Err(err).Str("path", *out).Msg("create tileset")
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		log.Fatal().Err(err).Str("path", *out).Msg("encode tileset")
	}
	if err := f.Close(); err != nil {
		log.Fatal().Err(err).Str("path", *out).Msg("close tileset")
	}
	b := img.Bounds()
	log.Info().Str("path", *out).Int("width", b.Dx()).Int("height", b.Dy()).Msg("wrote tileset")
}

// SheetSize returns the pixel size of a cols x rows sheet.
func SheetSize(cols, rows int) (int, int) {
	step := viewport.TileSize + viewport.SourceGap
	return cols*step - viewport.SourceGap, viewport.SourceTop + rows*step - viewport.SourceGap
}

// TileOrigin returns the top-left pixel of tile (col, row).
func TileOrigin(col, row int) image.Point {
	step := viewport.TileSize + viewport.SourceGap
	return image.Pt(col*step, viewport.SourceTop+row*step)
}

// TileColor is the fill of tile (col, row); its border is half as bright.
func TileColor(col, row int) color.RGBA {
	return color.RGBA{
		R: uint8(60 + (col*29)%180),
		G: uint8(60 + (row*47)%180),
		B: uint8(90 + ((col+row)*23)%150),
		A: 0xff,
	}
}

// GenerateSheet draws the sheet. Gaps stay transparent.
func GenerateSheet(cols, rows int) *image.RGBA {
	w, h := SheetSize(cols, rows)
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	header := color.RGBA{32, 32, 40, 0xff}
	draw.Draw(img, image.Rect(0, 0, w, viewport.SourceTop), &image.Uniform{header}, image.Point{}, draw.Src)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			fill := TileColor(col, row)
			border := color.RGBA{fill.R / 2, fill.G / 2, fill.B / 2, 0xff}
			o := TileOrigin(col, row)
			r := image.Rect(o.X, o.Y, o.X+viewport.TileSize, o.Y+viewport.TileSize)
			draw.Draw(img, r, &image.Uniform{border}, image.Point{}, draw.Src)
			draw.Draw(img, r.Inset(1), &image.Uniform{fill}, image.Point{}, draw.Src)
		}
	}
	return img
}
