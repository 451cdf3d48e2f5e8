package tile

import (
	"image"
	"image/color"
)

// Kind identifies one of the tiles on the sheet. The value is also the
// tile's index from the left edge.
type Kind int

const (
	Hidden Kind = iota
	Revealed
	Bomb
	numKinds = iota
)

var kinds = [numKinds]struct {
	name  string
	color color.NRGBA
}{
	Hidden:   {"hidden", color.NRGBA{R: 128, G: 128, B: 128, A: 255}},
	Revealed: {"revealed", color.NRGBA{R: 192, G: 192, B: 192, A: 255}},
	Bomb:     {"bomb", color.NRGBA{R: 255, G: 0, B: 0, A: 255}},
}

// Kinds returns every tile kind in sheet order
func Kinds() []Kind {
	k := make([]Kind, numKinds)
	for i := range k {
		k[i] = Kind(i)
	}
	return k
}

func (k Kind) valid() bool {
	return k >= 0 && k < numKinds
}

// Color returns the fill colour of the tile. It panics if k is not a known
// kind.
func (k Kind) Color() color.NRGBA {
	return kinds[k].color
}

// Rect returns the bounds of the tile within the sheet, which is where the
// game copies it from when drawing a cell.
func (k Kind) Rect() image.Rectangle {
	return image.Rect(int(k)*Size, 0, int(k)*Size+Size, Size)
}

func (k Kind) String() string {
	if !k.valid() {
		return "unknown"
	}
	return kinds[k].name
}
