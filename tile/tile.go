/*
Package tile generates the sprite sheet used by the minesweeper board.

The sheet is a single row of 32 by 32 pixel tiles, one per tile kind, in the
order hidden, revealed, bomb. Each tile is a solid colour so the sheet is 96
by 32 pixels exactly.
*/
package tile

const (
	// Size is the width and height of a single tile in pixels
	Size = 32

	// Width and Height are the dimensions of the whole sheet in pixels
	Width  = Size * numKinds
	Height = Size
)

// Generate returns the pixel grid for the sheet. Every pixel in column x
// takes the colour of tile x / Size.
func Generate() Grid {
	g := make(Grid, Height)
	for y := range g {
		row := make([]Pixel, Width)
		for x := range row {
			row[x] = Kind(x / Size).Color()
		}
		g[y] = row
	}
	return g
}
