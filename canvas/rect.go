package canvas

// Rect is an axis-aligned rectangle. It contains points on its near edges
// and excludes points on its far edges.
type Rect struct {
	Min, Max Point
}

// RectFromSize returns the rectangle at pos with the given width and height.
func RectFromSize(pos Point, w, h float64) Rect {
	return Rect{Min: pos, Max: Point{X: pos.X + w, Y: pos.Y + h}}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Contains reports whether p lies in [Min, Max) on both axes.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X &&
		p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Inset shrinks r by d on every side; a negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X + d, Y: r.Min.Y + d},
		Max: Point{X: r.Max.X - d, Y: r.Max.Y - d},
	}
}
