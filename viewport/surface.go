package viewport

import "image"

// Image is a tile source usable for region copies. *ebiten.Image
// satisfies it.
type Image interface {
	Bounds() image.Rectangle
}

// Surface is the 2D drawing context the renderer paints onto.
type Surface interface {
	Size() (w, h int)
	ClearRect(r image.Rectangle)
	// DrawImageRegion copies src of img, scaled to dst. A nil img is a
	// no-op.
	DrawImageRegion(img Image, src, dst image.Rectangle)
}

// InputSource delivers pointer events in absolute surface coordinates.
type InputSource interface {
	OnPointerDown(fn func(x, y int))
	OnPointerMove(fn func(x, y int))
	OnPointerUp(fn func())
	OnPointerLeave(fn func())
}

// ImageSource is an asynchronously loaded image. Image returns nil until
// the ready handlers have fired, and forever if loading failed.
type ImageSource interface {
	OnReady(fn func())
	Image() Image
}
