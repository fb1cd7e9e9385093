package canvas

import (
	"image/color"

	"github.com/ha1tch/rix3l/layout"
)

// ButtonID identifies the action a button triggers.
type ButtonID string

const (
	ClearButton ButtonID = "clear"
	LabelButton ButtonID = "label"
)

// Button is a padded text label that highlights while the pointer is over it.
// Its content size is measured once at construction.
type Button struct {
	id       ButtonID
	label    string
	fontSize int
	pos      Point
	content  Point
	padding  Point

	fill, hoverFill, text color.RGBA
	hover                 bool
}

// NewButton measures label at fontSize and returns a button anchored at pos.
func NewButton(id ButtonID, label string, fontSize int, pos, padding Point, measure Measure, theme Theme) *Button {
	w, h := measure(label, fontSize)
	return &Button{
		id:        id,
		label:     label,
		fontSize:  fontSize,
		pos:       pos,
		content:   Point{X: max(w, 0), Y: max(h, 0)},
		padding:   Point{X: max(padding.X, 0), Y: max(padding.Y, 0)},
		fill:      theme.ButtonFill,
		hoverFill: theme.ButtonHover,
		text:      theme.ButtonText,
	}
}

func (b *Button) ID() ButtonID          { return b.id }
func (b *Button) Label() string         { return b.label }
func (b *Button) FontSize() int         { return b.fontSize }
func (b *Button) Pos() Point            { return b.pos }
func (b *Button) ContentSize() Point    { return b.content }
func (b *Button) Padding() Point        { return b.padding }
func (b *Button) TextColor() color.RGBA { return b.text }
func (b *Button) Hovered() bool         { return b.hover }

// Fill is the current background color, which follows the hover state.
func (b *Button) Fill() color.RGBA {
	if b.hover {
		return b.hoverFill
	}
	return b.fill
}

// MoveTo re-anchors the button.
func (b *Button) MoveTo(p Point) {
	b.pos = p
}

// Bounds is the clickable box: content plus padding on both sides.
func (b *Button) Bounds() Rect {
	return RectFromSize(b.pos,
		b.content.X+2*b.padding.X,
		b.content.Y+2*b.padding.Y)
}

// TextPos is where the label's top-left corner is drawn.
func (b *Button) TextPos() Point {
	return Point{X: b.pos.X + b.padding.X, Y: b.pos.Y + b.padding.Y}
}

func (b *Button) Contains(p Point) bool {
	return b.Bounds().Contains(p)
}

// Widget returns the button as seen by the layout engine.
func (b *Button) Widget() layout.Widget {
	return layout.NewTextButton(layout.TextButton{
		Label:  b.label,
		Width:  b.content.X,
		Height: b.content.Y,
	})
}

func (b *Button) setHover(p Point) {
	b.hover = b.Contains(p)
}
