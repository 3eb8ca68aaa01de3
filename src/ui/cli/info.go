// Package clic holds the headless commands that share the core with the GUI.
package clic

import (
	"context"
	"fmt"
	"io"

	"slicepuzzle/src/loader"
	"slicepuzzle/src/puzzle"
)

type Info struct {
	Locator      string
	Format       string
	ImageW       int
	ImageH       int
	Grid         puzzle.Grid
	TileW, TileH float64
	Corners      []puzzle.Tile
}

// Inspect loads the image and cuts it without a display.
func Inspect(ctx context.Context, ld *loader.Loader, locator string, grid puzzle.Grid) (Info, error) {
	img, format, err := ld.LoadSync(ctx, locator)
	if err != nil {
		return Info{}, err
	}
	b := img.Bounds()
	tiles := puzzle.BuildSolved(grid, float64(b.Dx()), float64(b.Dy()))
	if len(tiles) == 0 {
		return Info{}, fmt.Errorf("invalid grid %dx%d", grid.Rows, grid.Cols)
	}
	last := len(tiles) - 1
	info := Info{
		Locator: locator,
		Format:  format,
		ImageW:  b.Dx(),
		ImageH:  b.Dy(),
		Grid:    grid,
		TileW:   tiles[0].Width,
		TileH:   tiles[0].Height,
		Corners: []puzzle.Tile{tiles[0], tiles[grid.Cols-1], tiles[last-grid.Cols+1], tiles[last]},
	}
	return info, nil
}

func (i Info) Print(w io.Writer) {
	fmt.Fprintf(w, "image:  %s (%s)\n", i.Locator, i.Format)
	fmt.Fprintf(w, "size:   %dx%d\n", i.ImageW, i.ImageH)
	fmt.Fprintf(w, "grid:   %d rows x %d cols = %d tiles\n", i.Grid.Rows, i.Grid.Cols, i.Grid.Count())
	fmt.Fprintf(w, "tile:   %gx%g\n", i.TileW, i.TileH)
	for _, t := range i.Corners {
		fmt.Fprintf(w, "solved: row %d col %d at (%g, %g)\n", t.Row, t.Col, t.PosX, t.PosY)
	}
}
