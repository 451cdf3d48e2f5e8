package minetiles

import (
	"fmt"
	"os"

	"github.com/bodgit/minetiles/png"
	"github.com/bodgit/minetiles/tile"
)

// Generate writes the sprite sheet to file, replacing it if it already
// exists. A failed write may leave a truncated file behind.
func (g *Generator) Generate(file string) (err error) {
	m, err := tile.Generate().Image()
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err = png.Encode(f, m); err != nil {
		return fmt.Errorf("unable to encode %s: %w", file, err)
	}

	info, err := f.Stat()
	if err != nil {
		return err
	}

	g.logger.Printf("Wrote \"%s\", %dx%d, %d bytes\n", file, m.Rect.Dx(), m.Rect.Dy(), info.Size())

	return nil
}
