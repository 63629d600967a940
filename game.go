package main

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/tileview/assets"
	"github.com/milk9111/tileview/canvas"
	"github.com/milk9111/tileview/config"
	"github.com/milk9111/tileview/input"
	"github.com/milk9111/tileview/viewport"
)

// Game presents the viewport's canvas. Painting happens only when the
// tileset becomes ready or a drag moves the view; Draw just copies the
// last painted canvas to the screen.
type Game struct {
	width, height int
	debug         bool
	frames        int

	canvas *canvas.Canvas
	mouse  *input.Mouse
	tiles  *assets.Loader
	view   *viewport.Renderer
}

func NewGame(cfg config.Config, mapData [][]int) *Game {
	w, h := cfg.Window.Width, cfg.Window.Height
	cv := canvas.New(w, h)
	mouse := input.NewMouse(w, h)
	tiles := assets.NewLoader(cfg.Tileset)

	view := viewport.NewRenderer(cv, mapData)
	view.Attach(mouse, tiles)

	return &Game{
		width:  w,
		height: h,
		debug:  cfg.Debug,
		canvas: cv,
		mouse:  mouse,
		tiles:  tiles,
		view:   view,
	}
}

// Start kicks off the tileset load.
func (g *Game) Start(ctx context.Context) {
	g.tiles.Start(ctx)
}

func (g *Game) Update() error {
	g.frames++
	step(g.tiles, g.mouse, g.mouse.Sample())
	return nil
}

type poller interface {
	Poll()
}

// step advances one frame. The tileset is polled first so its ready
// repaint lands before any pointer event of the same frame.
func step(tiles poller, mouse *input.Mouse, snap input.Snapshot) {
	tiles.Poll()
	mouse.Dispatch(snap)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Present(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, g.debugLine(ebiten.ActualFPS()))
	}
}

func (g *Game) debugLine(fps float64) string {
	off := g.view.Offset()
	return fmt.Sprintf("offset: %d,%d  state: %s  repaints: %d  frames: %d  FPS: %.2f",
		off.X, off.Y, g.view.State(), g.view.Repaints(), g.frames, fps)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
