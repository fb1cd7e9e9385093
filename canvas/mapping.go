package canvas

import "math"

// OffCanvasPolicy decides what happens to pointer positions left of or above
// the canvas origin.
type OffCanvasPolicy int

const (
	// RejectOffCanvas maps such positions to negative cells, which every
	// grid operation ignores.
	RejectOffCanvas OffCanvasPolicy = iota
	// FoldNegative mirrors negative offsets back onto the grid, so motion
	// just past the top or left edge lands on the edge cells.
	FoldNegative
)

func (p OffCanvasPolicy) String() string {
	switch p {
	case RejectOffCanvas:
		return "reject"
	case FoldNegative:
		return "fold"
	}
	return "unknown"
}

// MapWindowToCell converts a window position into grid indices. The result
// may lie outside the grid; callers rely on the grid's own bounds checks.
func MapWindowToCell(p, origin Point, cellSize float64, policy OffCanvasPolicy) (col, row int) {
	if !(cellSize > 0) {
		return -1, -1
	}
	fx := (p.X - origin.X) / cellSize
	fy := (p.Y - origin.Y) / cellSize
	if policy == FoldNegative {
		fx, fy = math.Abs(fx), math.Abs(fy)
	}
	return toIndex(fx), toIndex(fy)
}

func toIndex(f float64) int {
	f = math.Floor(f)
	switch {
	case math.IsNaN(f):
		return -1
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}
