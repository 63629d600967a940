// Package canvas is an offscreen ebiten image that the viewport paints
// onto and the game presents every frame.
package canvas

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tileview/viewport"
)

// Canvas implements viewport.Surface.
type Canvas struct {
	img *ebiten.Image
}

var _ viewport.Surface = (*Canvas)(nil)

func New(width, height int) *Canvas {
	return &Canvas{img: ebiten.NewImage(width, height)}
}

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// ClearRect resets the pixels inside r to transparent.
func (c *Canvas) ClearRect(r image.Rectangle) {
	r = r.Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	if sub, ok := c.img.SubImage(r).(*ebiten.Image); ok {
		sub.Clear()
	}
}

// DrawImageRegion copies src of img onto dst, scaling as needed. Images
// that are not *ebiten.Image (including nil) draw nothing.
func (c *Canvas) DrawImageRegion(img viewport.Image, src, dst image.Rectangle) {
	tiles, ok := img.(*ebiten.Image)
	if !ok || tiles == nil {
		return
	}
	p, ok := place(tiles.Bounds(), src, dst)
	if !ok {
		return
	}
	sub, ok := tiles.SubImage(p.src).(*ebiten.Image)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(p.scaleX, p.scaleY)
	op.GeoM.Translate(p.x, p.y)
	c.img.DrawImage(sub, op)
}

// Present draws the canvas onto the screen at the origin.
func (c *Canvas) Present(screen *ebiten.Image) {
	screen.DrawImage(c.img, nil)
}

// placement is a source crop and the transform that maps it onto the
// destination.
type placement struct {
	src            image.Rectangle
	scaleX, scaleY float64
	x, y           float64
}

// place clips src to the image bounds and moves the destination by the
// same proportion, so a partially out-of-range crop still lands where the
// in-range pixels belong.
func place(bounds, src, dst image.Rectangle) (placement, bool) {
	if src.Empty() || dst.Empty() {
		return placement{}, false
	}
	clipped := src.Intersect(bounds)
	if clipped.Empty() {
		return placement{}, false
	}
	sx := float64(dst.Dx()) / float64(src.Dx())
	sy := float64(dst.Dy()) / float64(src.Dy())
	return placement{
		src:    clipped,
		scaleX: sx,
		scaleY: sy,
		x:      float64(dst.Min.X) + float64(clipped.Min.X-src.Min.X)*sx,
		y:      float64(dst.Min.Y) + float64(clipped.Min.Y-src.Min.Y)*sy,
	}, true
}
