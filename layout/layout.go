// Package layout computes positions for stacked sidebar widgets.
//
// Arrangement emits trailing edges: the position recorded for a widget is the
// far edge of the span it occupies along the stacking axis. Use LeadingEdges to
// turn that into top-left anchors.
package layout

// Point is a position in window space.
type Point struct {
	X, Y float64
}

// Kind identifies the variant held by a Widget.
type Kind int

const (
	KindSpacer Kind = iota
	KindTextButton
)

// TextButton is the layout view of a labelled button: its measured content
// size, without padding.
type TextButton struct {
	Label  string
	Width  float64
	Height float64
}

// Spacer reserves empty space. Unset dimensions count as 0.
type Spacer struct {
	x, y       float64
	hasX, hasY bool
}

// NewSpacer returns a spacer with neither dimension set.
func NewSpacer() Spacer {
	return Spacer{}
}

func (s Spacer) WithX(x float64) Spacer {
	s.x, s.hasX = x, true
	return s
}

func (s Spacer) WithY(y float64) Spacer {
	s.y, s.hasY = y, true
	return s
}

func (s Spacer) WithPosition(x, y float64) Spacer {
	return s.WithX(x).WithY(y)
}

// Size returns the spacer dimensions, defaulting unset ones to 0.
func (s Spacer) Size() (float64, float64) {
	var w, h float64
	if s.hasX {
		w = s.x
	}
	if s.hasY {
		h = s.y
	}
	return w, h
}

// Widget is either a TextButton or a Spacer.
type Widget struct {
	kind   Kind
	button TextButton
	spacer Spacer
}

func NewTextButton(b TextButton) Widget {
	return Widget{kind: KindTextButton, button: b}
}

func NewSpacerWidget(s Spacer) Widget {
	return Widget{kind: KindSpacer, spacer: s}
}

func (w Widget) Kind() Kind {
	return w.kind
}

// SizeOf returns the width and height of a widget.
func SizeOf(w Widget) (float64, float64) {
	switch w.kind {
	case KindTextButton:
		return w.button.Width, w.button.Height
	default:
		return w.spacer.Size()
	}
}

// ArrangeHorizontally stacks widgets left to right. Entry i is the cumulative
// width of widgets 0..i paired with the height of widget i.
func ArrangeHorizontally(widgets []Widget) []Point {
	positions := make([]Point, 0, len(widgets))
	x := 0.0
	for _, w := range widgets {
		width, height := SizeOf(w)
		x += width
		positions = append(positions, Point{X: x, Y: height})
	}
	return positions
}

// ArrangeVertically stacks widgets top to bottom. Entry i is the width of
// widget i paired with the cumulative height of widgets 0..i.
func ArrangeVertically(widgets []Widget) []Point {
	positions := make([]Point, 0, len(widgets))
	y := 0.0
	for _, w := range widgets {
		width, height := SizeOf(w)
		y += height
		positions = append(positions, Point{X: width, Y: y})
	}
	return positions
}

// Axis selects the stacking direction for LeadingEdges.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// LeadingEdges converts the output of an arrangement along axis into the
// offset where each widget starts. The result is only meaningful along axis.
func LeadingEdges(widgets []Widget, trailing []Point, axis Axis) []float64 {
	n := min(len(widgets), len(trailing))
	edges := make([]float64, n)
	for i := 0; i < n; i++ {
		w, h := SizeOf(widgets[i])
		if axis == Horizontal {
			edges[i] = trailing[i].X - w
		} else {
			edges[i] = trailing[i].Y - h
		}
	}
	return edges
}
