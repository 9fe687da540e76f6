package segment

import (
	"fmt"
	"image"
	"image/color"
)

// Label identifies which color group a pixel belongs to.
type Label uint8

const (
	Background Label = iota
	Group1
	Group2
)

func (l Label) String() string {
	switch l {
	case Background:
		return "background"
	case Group1:
		return "group1"
	case Group2:
		return "group2"
	}
	return fmt.Sprintf("label(%d)", uint8(l))
}

// Grid holds one Label per pixel. Coordinates are relative to the image
// origin, so (0,0) is always the top-left cell.
type Grid struct {
	width  int
	height int
	cells  []Label // row-major
}

// NewGrid returns an all-background grid.
func NewGrid(width, height int) *Grid {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("segment: negative grid size %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Label, width*height),
	}
}

func (g *Grid) Width() int { return g.width }
func (g *Grid) Height() int { return g.height }

// At returns the label at (x, y). Out-of-range coordinates are Background.
func (g *Grid) At(x, y int) Label {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return Background
	}
	return g.cells[y*g.width+x]
}

// Set assigns a label to (x, y). Out-of-range coordinates are ignored.
func (g *Grid) Set(x, y int, l Label) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	g.cells[y*g.width+x] = l
}

// Count returns the number of cells carrying l.
func (g *Grid) Count(l Label) int {
	n := 0
	for _, c := range g.cells {
		if c == l {
			n++
		}
	}
	return n
}

// Points returns the coordinates of every cell carrying l, ordered column by
// column (x outer, y inner).
func (g *Grid) Points(l Label) []image.Point {
	points := make([]image.Point, 0)
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if g.cells[y*g.width+x] == l {
				points = append(points, image.Point{X: x, Y: y})
			}
		}
	}
	return points
}

// Render paints the grid as an image, one pixel per cell, using bg for
// Background and c1/c2 for the two groups.
func (g *Grid) Render(bg, c1, c2 color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := bg
			switch g.cells[y*g.width+x] {
			case Group1:
				c = c1
			case Group2:
				c = c2
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
