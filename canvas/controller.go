// Package canvas holds the pixel grid and turns pointer input into paint and
// clear operations. It performs no drawing itself.
package canvas

import (
	"log/slog"
)

// Controller owns the grid, the pointer and the sidebar buttons of one
// window. It is not safe for concurrent use.
type Controller struct {
	cfg     Config
	grid    *Grid
	pointer PointerState
	buttons []*Button
}

// New returns a controller with a background-filled grid.
func New(cfg Config, buttons []*Button) *Controller {
	return &Controller{
		cfg:     cfg,
		grid:    NewGrid(cfg.SideLength, cfg.Theme.Background),
		pointer: PointerState{Pos: Point{X: -1, Y: -1}},
		buttons: buttons,
	}
}

func (c *Controller) Config() Config        { return c.cfg }
func (c *Controller) Grid() *Grid           { return c.grid }
func (c *Controller) Pointer() PointerState { return c.pointer }
func (c *Controller) Buttons() []*Button    { return c.buttons }

// UpdatePointer moves the pointer to p, recomputing whether it is inside the
// canvas and which buttons it hovers. Down is left unchanged.
func (c *Controller) UpdatePointer(p Point) PointerState {
	c.pointer.Pos = p
	c.pointer.InsideCanvas = c.cfg.CanvasBounds().Contains(p)
	for _, b := range c.buttons {
		b.setHover(p)
	}
	return c.pointer
}

// CellAt maps a window position to grid indices using the configured
// off-canvas policy.
func (c *Controller) CellAt(p Point) (col, row int) {
	return MapWindowToCell(p, c.cfg.CanvasOrigin, c.cfg.CellSize(), c.cfg.OffCanvas)
}

// ActiveCell returns the cell under the pointer, if any.
func (c *Controller) ActiveCell() (col, row int, ok bool) {
	col, row = c.CellAt(c.pointer.Pos)
	_, ok = c.grid.Cell(col, row)
	return col, row, ok
}

// PaintCell sets (col, row) to the paint color. Out-of-range cells are a
// no-op and return false.
func (c *Controller) PaintCell(col, row int) bool {
	return c.grid.Paint(col, row, c.cfg.Theme.Paint)
}

// ClearGrid resets every cell to the background.
func (c *Controller) ClearGrid() {
	c.grid.Clear()
	slog.Debug("canvas cleared", "side", c.grid.Side())
}

// HandleButtonActivation reports the button activated by a release that
// followed a press. It returns false unless wasDown is set, the pointer is
// now up and outside the canvas, and a highlighted button is under it.
func HandleButtonActivation(buttons []*Button, pointer PointerState, wasDown bool) (ButtonID, bool) {
	if !wasDown || pointer.Down || pointer.InsideCanvas {
		return "", false
	}
	for _, b := range buttons {
		if b.Hovered() {
			return b.ID(), true
		}
	}
	return "", false
}

// Apply processes one tick of input in arrival order: the pointer move, then
// the button edge. While the left button is held inside the canvas the cell
// under the pointer is painted; positions between samples are not filled in.
// A completed click on a sidebar button runs its action and its id is
// returned.
func (c *Controller) Apply(f Frame) (ButtonID, bool) {
	if f.Moved != nil {
		c.UpdatePointer(*f.Moved)
	}

	wasDown := c.pointer.Down
	released := false
	if f.Button != nil && f.Button.Mouse == MouseLeft {
		switch f.Button.State {
		case Pressed:
			c.pointer.Down = true
		case Released:
			c.pointer.Down = false
			released = wasDown
		}
	}

	if c.pointer.Down && c.pointer.InsideCanvas {
		c.PaintCell(c.CellAt(c.pointer.Pos))
	}

	if !released {
		return "", false
	}
	id, ok := HandleButtonActivation(c.buttons, c.pointer, wasDown)
	if ok {
		c.dispatch(id)
	}
	return id, ok
}

func (c *Controller) dispatch(id ButtonID) {
	slog.Debug("button activated", "button", string(id))
	switch id {
	case ClearButton:
		c.ClearGrid()
	}
}
