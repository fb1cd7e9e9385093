// Package scene turns controller state into an ordered list of draw
// commands. The rendering backend executes them in order.
package scene

import (
	"image/color"

	"github.com/ha1tch/rix3l/canvas"
)

// Kind is the type of a draw command.
type Kind int

const (
	FilledRect Kind = iota
	TexturedBlit
	TextBlit
)

func (k Kind) String() string {
	switch k {
	case FilledRect:
		return "rect"
	case TexturedBlit:
		return "blit"
	case TextBlit:
		return "text"
	}
	return "unknown"
}

// Texture names a texture owned by the backend.
type Texture int

const (
	TextureNone Texture = iota
	TextureGrid
)

// Command is one draw operation. For TexturedBlit, Rect is the destination
// and the whole texture is stretched into it. For TextBlit, Rect.Min is the
// top-left corner of the text.
type Command struct {
	Kind     Kind
	Rect     canvas.Rect
	Color    color.RGBA
	Texture  Texture
	Text     string
	FontSize int
}

func rect(r canvas.Rect, c color.RGBA) Command {
	return Command{Kind: FilledRect, Rect: r, Color: c}
}

// Build returns the draw commands for the current state of c.
func Build(c *canvas.Controller) []Command {
	cfg := c.Config()
	theme := cfg.Theme
	canvasBounds := cfg.CanvasBounds()
	cell := cfg.CellSize()

	var cmds []Command
	cmds = append(cmds, rect(canvas.RectFromSize(canvas.Point{},
		float64(cfg.WindowWidth), float64(cfg.WindowHeight)), theme.Window))

	border := theme.BorderOutside
	if c.Pointer().InsideCanvas {
		border = theme.BorderInside
	}
	cmds = append(cmds, rect(canvasBounds.Inset(-1), border))
	cmds = append(cmds, Command{Kind: TexturedBlit, Rect: canvasBounds, Color: color.RGBA{255, 255, 255, 255}, Texture: TextureGrid})

	for i := 0; i < cfg.SideLength; i++ {
		off := float64(i) * cell
		cmds = append(cmds,
			rect(canvas.Rect{
				Min: canvas.Point{X: canvasBounds.Min.X + off, Y: canvasBounds.Min.Y},
				Max: canvas.Point{X: canvasBounds.Min.X + off + 1, Y: canvasBounds.Max.Y},
			}, theme.Gridline),
			rect(canvas.Rect{
				Min: canvas.Point{X: canvasBounds.Min.X, Y: canvasBounds.Min.Y + off},
				Max: canvas.Point{X: canvasBounds.Max.X, Y: canvasBounds.Min.Y + off + 1},
			}, theme.Gridline),
		)
	}

	if col, row, ok := c.ActiveCell(); ok {
		x := canvasBounds.Min.X + float64(col)*cell
		y := canvasBounds.Min.Y + float64(row)*cell
		cmds = append(cmds, rect(canvas.Rect{
			Min: canvas.Point{X: x + 1, Y: y + 1},
			Max: canvas.Point{X: x + cell, Y: y + cell},
		}, theme.ActiveCell))
	}

	sep := float64(cfg.WindowHeight)
	cmds = append(cmds, rect(canvas.Rect{
		Min: canvas.Point{X: sep, Y: canvasBounds.Min.Y},
		Max: canvas.Point{X: sep + 2, Y: canvasBounds.Max.Y},
	}, theme.Separator))

	for _, b := range c.Buttons() {
		cmds = append(cmds,
			rect(b.Bounds(), b.Fill()),
			Command{
				Kind:     TextBlit,
				Rect:     canvas.Rect{Min: b.TextPos(), Max: b.TextPos()},
				Color:    b.TextColor(),
				Text:     b.Label(),
				FontSize: b.FontSize(),
			},
		)
	}

	preview := cfg.PreviewBounds()
	cmds = append(cmds,
		rect(preview.Inset(-1), theme.PreviewBorder),
		Command{Kind: TexturedBlit, Rect: preview, Color: color.RGBA{255, 255, 255, 255}, Texture: TextureGrid},
	)
	return cmds
}
