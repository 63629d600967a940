package viewport

import "image"

// Tile geometry. Every drawn tile is cropped from the same cell of the
// tileset: column SourceCol, row SourceRow, in a grid of TileSize cells
// separated by SourceGap pixels below a SourceTop pixel header band.
const (
	TileSize  = 32
	SourceCol = 1
	SourceRow = 3
	SourceGap = 4
	SourceTop = 40

	// DrawsPerRepaint is the number of draw calls issued by one repaint.
	DrawsPerRepaint = 16
)

// Tile type IDs found in map data.
const (
	TileFloor = 0
	TileWall  = 1
	TileMark  = 2
)

// DefaultMap is the built-in 5x5 map.
var DefaultMap = [][]int{
	{1, 1, 1, 1, 1},
	{1, 0, 0, 0, 1},
	{1, 0, 2, 0, 1},
	{1, 0, 0, 0, 1},
	{1, 1, 1, 1, 1},
}

// SourceRect returns the tileset region copied by every draw.
func SourceRect() image.Rectangle {
	sx := SourceGap*SourceCol + TileSize*SourceCol
	sy := SourceTop + SourceGap*SourceRow + TileSize*SourceRow
	return image.Rect(sx, sy, sx+TileSize, sy+TileSize)
}

// DestRect returns where a tile lands on the surface for the given pan
// offset. It does not depend on any loop index.
func DestRect(off Offset) image.Rectangle {
	dx := off.X + TileSize
	dy := off.Y + TileSize
	return image.Rect(dx, dy, dx+TileSize, dy+TileSize)
}

func cloneMap(m [][]int) [][]int {
	out := make([][]int, len(m))
	for i, row := range m {
		out[i] = append([]int(nil), row...)
	}
	return out
}
