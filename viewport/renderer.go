// Package viewport keeps the pan offset of a tile view in step with
// pointer drags and repaints the view onto a Surface.
package viewport

import (
	"fmt"
	"image"
)

// State is the drag state of a Renderer.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Offset is the pan translation applied to everything drawn.
type Offset struct {
	X, Y int
}

// Renderer owns the viewer state. All methods must be called from the
// single goroutine that dispatches input and image events.
type Renderer struct {
	surface Surface
	tiles   ImageSource

	state  State
	offset Offset
	// last pointer position; only meaningful while Dragging
	lastX, lastY int

	mapData  [][]int
	repaints int
}

// NewRenderer creates an idle renderer at offset (0,0). mapData is kept
// as given; a nil mapData selects DefaultMap.
func NewRenderer(surface Surface, mapData [][]int) *Renderer {
	if mapData == nil {
		mapData = DefaultMap
	}
	return &Renderer{
		surface: surface,
		mapData: cloneMap(mapData),
	}
}

// Attach registers the renderer's handlers with the input and image
// sources. Either may be nil.
func (r *Renderer) Attach(in InputSource, tiles ImageSource) {
	if in != nil {
		in.OnPointerDown(r.OnPointerDown)
		in.OnPointerMove(r.OnPointerMove)
		in.OnPointerUp(r.OnPointerUp)
		in.OnPointerLeave(r.OnPointerLeave)
	}
	if tiles != nil {
		r.tiles = tiles
		tiles.OnReady(r.OnImageReady)
	}
}

// OnImageReady paints the first frame once the tileset has loaded.
func (r *Renderer) OnImageReady() {
	r.Repaint()
}

// OnPointerDown starts a drag anchored at (x, y) regardless of the
// current state or which button was pressed.
func (r *Renderer) OnPointerDown(x, y int) {
	switch r.state {
	case Idle, Dragging:
		r.state = Dragging
		r.lastX, r.lastY = x, y
	}
}

// OnPointerMove pans by the distance moved since the last pointer
// position while dragging, then repaints.
func (r *Renderer) OnPointerMove(x, y int) {
	switch r.state {
	case Idle:
	case Dragging:
		r.offset.X += x - r.lastX
		r.offset.Y += y - r.lastY
		r.lastX, r.lastY = x, y
		r.Repaint()
	}
}

// OnPointerUp ends a drag.
func (r *Renderer) OnPointerUp() {
	r.endDrag()
}

// OnPointerLeave ends a drag when the pointer leaves the surface.
func (r *Renderer) OnPointerLeave() {
	r.endDrag()
}

func (r *Renderer) endDrag() {
	switch r.state {
	case Idle:
	case Dragging:
		r.state = Idle
	}
}

// Repaint clears the whole surface and draws the tile pattern.
//
// Every iteration copies the same source cell to the same destination,
// so only the final draw is visible. Map data is not consulted.
func (r *Renderer) Repaint() {
	if r.surface == nil {
		return
	}
	r.repaints++

	w, h := r.surface.Size()
	r.surface.ClearRect(image.Rect(0, 0, w, h))

	var img Image
	if r.tiles != nil {
		img = r.tiles.Image()
	}
	for i := 0; i < DrawsPerRepaint; i++ {
		r.surface.DrawImageRegion(img, SourceRect(), DestRect(r.offset))
	}
}

// Offset returns the current pan offset.
func (r *Renderer) Offset() Offset { return r.offset }

// State returns the current drag state.
func (r *Renderer) State() State { return r.state }

// Anchor returns the last pointer position and whether a drag is active.
func (r *Renderer) Anchor() (x, y int, ok bool) {
	if r.state != Dragging {
		return 0, 0, false
	}
	return r.lastX, r.lastY, true
}

// MapData returns a copy of the map grid.
func (r *Renderer) MapData() [][]int { return cloneMap(r.mapData) }

// Repaints returns how many times the surface has been repainted.
func (r *Renderer) Repaints() int { return r.repaints }
