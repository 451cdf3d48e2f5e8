/*
Package minetiles writes the tile sprite sheet used by the minesweeper game.
*/
package minetiles

import (
	"io"
	"log"
)

// Filename is the name the game expects the sheet to be saved as
const Filename = "tiles.png"

// Generator writes the sprite sheet to disk
type Generator struct {
	logger *log.Logger
}

// New returns a Generator that logs to logger. A nil logger discards
// everything.
func New(logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Generator{
		logger: logger,
	}
}
