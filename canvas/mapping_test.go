package canvas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"
)

func TestMapWindowToCell(t *testing.T) {
	origin := Point{X: 10, Y: 10}
	tests := []struct {
		name     string
		p        Point
		policy   OffCanvasPolicy
		col, row int
	}{
		{"first cell", Point{X: 28, Y: 46}, RejectOffCanvas, 0, 0},
		{"origin", Point{X: 10, Y: 10}, RejectOffCanvas, 0, 0},
		{"interior", Point{X: 10 + 36.75*3.5, Y: 10 + 36.75*7}, RejectOffCanvas, 3, 7},
		{"past far edge", Point{X: 10 + 36.75*24, Y: 20}, RejectOffCanvas, 24, 0},
		{"left of origin rejected", Point{X: 5, Y: 5}, RejectOffCanvas, -1, -1},
		{"far left rejected", Point{X: -40, Y: 20}, RejectOffCanvas, -2, 0},
		{"left of origin folded", Point{X: 5, Y: 5}, FoldNegative, 0, 0},
		{"far left folded", Point{X: -40, Y: 20}, FoldNegative, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row := MapWindowToCell(tt.p, origin, 36.75, tt.policy)
			assert.Equal(t, tt.col, col)
			assert.Equal(t, tt.row, row)
		})
	}
}

func TestMapWindowToCellDegenerate(t *testing.T) {
	col, row := MapWindowToCell(Point{X: 50, Y: 50}, Point{}, 0, RejectOffCanvas)
	assert.Equal(t, -1, col)
	assert.Equal(t, -1, row)

	col, row = MapWindowToCell(Point{X: math.NaN(), Y: math.Inf(1)}, Point{}, 1, RejectOffCanvas)
	assert.Equal(t, -1, col)
	assert.Equal(t, math.MaxInt32, row)
}

func TestMapThenPaintOutsideIsNoop(t *testing.T) {
	g := NewGrid(24, colornames.Black)
	origin := Point{X: 10, Y: 10}
	for _, p := range []Point{
		{X: 10 + 36.75*24, Y: 100},
		{X: 100, Y: 10 + 36.75*30},
		{X: 2, Y: 100},
		{X: 5000, Y: -5000},
	} {
		col, row := MapWindowToCell(p, origin, 36.75, RejectOffCanvas)
		assert.False(t, g.Paint(col, row, colornames.White), "point %v", p)
	}
	assert.Zero(t, g.Rev())
	for _, c := range g.Pixels() {
		assert.Equal(t, colornames.Black, c)
	}
}

func TestOffCanvasPolicyString(t *testing.T) {
	assert.Equal(t, "reject", RejectOffCanvas.String())
	assert.Equal(t, "fold", FoldNegative.String())
	assert.Equal(t, "unknown", OffCanvasPolicy(9).String())
}
