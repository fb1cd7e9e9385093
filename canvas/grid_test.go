package canvas

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"
)

func TestNewGridFill(t *testing.T) {
	g := NewGrid(4, colornames.Black)
	assert.Equal(t, 4, g.Side())
	assert.Len(t, g.Pixels(), 16)
	for _, c := range g.Pixels() {
		assert.Equal(t, colornames.Black, c)
	}
	assert.Equal(t, image.Rect(0, 0, 4, 4), g.Bounds())
}

func TestGridPaintBounds(t *testing.T) {
	g := NewGrid(3, colornames.Black)
	assert.True(t, g.Paint(2, 1, colornames.White))
	c, ok := g.Cell(2, 1)
	assert.True(t, ok)
	assert.Equal(t, colornames.White, c)
	assert.Equal(t, color.Color(colornames.White), g.At(2, 1))

	rev := g.Rev()
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {3, 3}} {
		assert.False(t, g.Paint(p[0], p[1], colornames.Red), "cell %v", p)
	}
	assert.Equal(t, rev, g.Rev())

	_, ok = g.Cell(3, 0)
	assert.False(t, ok)
}

func TestGridClearIdempotent(t *testing.T) {
	g := NewGrid(5, colornames.Black)
	g.Paint(0, 0, colornames.White)
	g.Paint(4, 4, colornames.White)

	g.Clear()
	once := append([]color.RGBA(nil), g.Pixels()...)
	g.Clear()
	assert.Equal(t, once, g.Pixels())
	for _, c := range once {
		assert.Equal(t, colornames.Black, c)
	}
}

func TestGridNegativeSide(t *testing.T) {
	g := NewGrid(-2, colornames.Black)
	assert.Zero(t, g.Side())
	assert.False(t, g.Paint(0, 0, colornames.White))
}
