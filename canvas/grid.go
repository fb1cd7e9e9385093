package canvas

import (
	"image"
	"image/color"
)

// Grid is a square buffer of RGBA cells stored row by row.
//
// Grid implements image.Image so the rendering backend can upload it as a
// texture directly.
type Grid struct {
	side int
	bg   color.RGBA
	pix  []color.RGBA
	rev  uint64
}

// NewGrid returns a side x side grid filled with bg.
func NewGrid(side int, bg color.RGBA) *Grid {
	side = max(side, 0)
	g := &Grid{
		side: side,
		bg:   bg,
		pix:  make([]color.RGBA, side*side),
	}
	g.fill()
	return g
}

func (g *Grid) Side() int              { return g.side }
func (g *Grid) Background() color.RGBA { return g.bg }

// Rev changes every time a cell is written.
func (g *Grid) Rev() uint64 { return g.rev }

// Pixels returns the backing cells, row-major. Callers must not modify it.
func (g *Grid) Pixels() []color.RGBA { return g.pix }

func (g *Grid) inBounds(col, row int) bool {
	return col >= 0 && col < g.side && row >= 0 && row < g.side
}

// Cell returns the color at (col, row) and whether the cell exists.
func (g *Grid) Cell(col, row int) (color.RGBA, bool) {
	if !g.inBounds(col, row) {
		return color.RGBA{}, false
	}
	return g.pix[row*g.side+col], true
}

// Paint sets (col, row) to c. Coordinates outside the grid are ignored and
// Paint returns false.
func (g *Grid) Paint(col, row int, c color.RGBA) bool {
	if !g.inBounds(col, row) {
		return false
	}
	g.pix[row*g.side+col] = c
	g.rev++
	return true
}

// Clear resets every cell to the background color.
func (g *Grid) Clear() {
	g.fill()
	g.rev++
}

func (g *Grid) fill() {
	for i := range g.pix {
		g.pix[i] = g.bg
	}
}

func (g *Grid) ColorModel() color.Model { return color.RGBAModel }

func (g *Grid) Bounds() image.Rectangle { return image.Rect(0, 0, g.side, g.side) }

func (g *Grid) At(x, y int) color.Color {
	c, _ := g.Cell(x, y)
	return c
}
