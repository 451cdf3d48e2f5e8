package tile

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Pixel is a single non-premultiplied RGBA value
type Pixel = color.NRGBA

// Grid is a row-major pixel grid, top row first. Every row must be the same
// length.
type Grid [][]Pixel

var errEmpty = errors.New("tile: grid has no pixels")

// Width returns the length of the first row, or zero for an empty grid
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows
func (g Grid) Height() int {
	return len(g)
}

// Validate checks the grid is non-empty and rectangular
func (g Grid) Validate() error {
	if g.Height() == 0 || g.Width() == 0 {
		return errEmpty
	}
	for y, row := range g {
		if len(row) != len(g[0]) {
			return fmt.Errorf("tile: row %d has %d pixels, expected %d", y, len(row), len(g[0]))
		}
	}
	return nil
}

// Image copies the grid into an image with its top-left corner at (0, 0)
func (g Grid) Image() (*image.NRGBA, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	m := image.NewNRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	for y, row := range g {
		for x, p := range row {
			m.SetNRGBA(x, y, p)
		}
	}
	return m, nil
}

// FromImage builds a grid from any image, converting each pixel to
// non-premultiplied RGBA
func FromImage(m image.Image) Grid {
	b := m.Bounds()
	g := make(Grid, b.Dy())
	for y := range g {
		row := make([]Pixel, b.Dx())
		for x := range row {
			row[x] = color.NRGBAModel.Convert(m.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
		}
		g[y] = row
	}
	return g
}
