package canvas

import (
	"errors"
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/ha1tch/rix3l/layout"
)

// Point is a position in window space.
type Point = layout.Point

// Theme holds the named colors used by the canvas and sidebar.
type Theme struct {
	Background    color.RGBA // empty cell
	Paint         color.RGBA // painted cell
	Window        color.RGBA
	BorderInside  color.RGBA
	BorderOutside color.RGBA
	Gridline      color.RGBA
	ActiveCell    color.RGBA
	Separator     color.RGBA
	PreviewBorder color.RGBA
	ButtonFill    color.RGBA
	ButtonHover   color.RGBA
	ButtonText    color.RGBA
}

// DefaultTheme returns the stock black-and-white theme.
func DefaultTheme() Theme {
	return Theme{
		Background:    colornames.Black,
		Paint:         colornames.White,
		Window:        colornames.Black,
		BorderInside:  colornames.Lime,
		BorderOutside: colornames.Red,
		Gridline:      color.RGBA{25, 25, 25, 255},
		ActiveCell:    colornames.White,
		Separator:     colornames.White,
		PreviewBorder: colornames.Gray,
		ButtonFill:    colornames.White,
		ButtonHover:   colornames.Gray,
		ButtonText:    colornames.Black,
	}
}

// Config describes the fixed window geometry.
type Config struct {
	Title        string
	WindowWidth  int
	WindowHeight int

	// SideLength is the number of cells along each edge of the grid.
	SideLength   int
	CanvasOrigin Point
	// ViewportLen is the on-screen edge length of the canvas.
	ViewportLen float64

	PreviewOrigin Point
	PreviewLen    float64

	SidebarX      float64
	FontSize      int
	ButtonPadding Point
	ButtonGap     float64

	OffCanvas OffCanvasPolicy
	Theme     Theme
}

// DefaultConfig returns the configuration of the stock 1400x900 window.
func DefaultConfig() Config {
	const (
		width  = 1400
		height = 900
	)
	return Config{
		Title:         "Rix3l",
		WindowWidth:   width,
		WindowHeight:  height,
		SideLength:    24,
		CanvasOrigin:  Point{X: 10, Y: 10},
		ViewportLen:   height - 20,
		PreviewOrigin: Point{X: 910, Y: 10},
		PreviewLen:    400,
		SidebarX:      910,
		FontSize:      22,
		ButtonPadding: Point{X: 10, Y: 10},
		ButtonGap:     20,
		OffCanvas:     RejectOffCanvas,
		Theme:         DefaultTheme(),
	}
}

// CellSize is the on-screen edge length of one cell.
func (c Config) CellSize() float64 {
	if c.SideLength <= 0 {
		return 0
	}
	return c.ViewportLen / float64(c.SideLength)
}

// CanvasBounds is the region of the window that accepts painting.
func (c Config) CanvasBounds() Rect {
	return RectFromSize(c.CanvasOrigin, c.ViewportLen, c.ViewportLen)
}

// PreviewBounds is the region of the scaled preview.
func (c Config) PreviewBounds() Rect {
	return RectFromSize(c.PreviewOrigin, c.PreviewLen, c.PreviewLen)
}

var errNonPositive = errors.New("must be positive")

// Validate reports the first setting that cannot produce a usable window.
func (c Config) Validate() error {
	switch {
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("window size %dx%d: %w", c.WindowWidth, c.WindowHeight, errNonPositive)
	case c.SideLength <= 0:
		return fmt.Errorf("side length %d: %w", c.SideLength, errNonPositive)
	case c.ViewportLen <= 0:
		return fmt.Errorf("viewport length %g: %w", c.ViewportLen, errNonPositive)
	case c.PreviewLen <= 0:
		return fmt.Errorf("preview length %g: %w", c.PreviewLen, errNonPositive)
	case c.FontSize <= 0:
		return fmt.Errorf("font size %d: %w", c.FontSize, errNonPositive)
	case c.ButtonPadding.X < 0 || c.ButtonPadding.Y < 0:
		return fmt.Errorf("button padding %v: must not be negative", c.ButtonPadding)
	}
	return nil
}
