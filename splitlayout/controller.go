package splitlayout

import (
	tea "charm.land/bubbletea/v2"

	"github.com/tealayout/splitpane/geom"
)

// Controller tracks one divider: its offset from the anchoring edge, the
// divider thickness and the current hover/drag interaction.
//
// Value, MinValue and Border may be mutated directly between updates;
// Orientation must not change after construction.
type Controller struct {
	// Value is the current offset of the divider from its edge.
	Value float64
	// MinValue is the smallest offset the divider can be dragged to.
	MinValue float64
	// Border is the thickness of the divider line.
	Border float64
	// Orientation is the edge the divider anchors to.
	Orientation Orientation

	hover    bool
	dragging bool
}

// NewController returns a divider controller anchored to the given edge.
func NewController(value, minValue, border float64, orientation Orientation) *Controller {
	return &Controller{
		Value:       value,
		MinValue:    minValue,
		Border:      border,
		Orientation: orientation,
	}
}

// Dragging reports whether the divider is currently being dragged.
func (c *Controller) Dragging() bool { return c.dragging }

// State derives the interaction state from the hover and dragging flags.
func (c *Controller) State() State {
	switch {
	case c.hover && c.dragging:
		return StateDrag
	case c.hover:
		return StateHover
	case c.dragging:
		return StateDragNotFollowing
	}
	return StateInactive
}

// Update processes one bubbletea message. rect is the bounded layout
// area, win the cross-axis window for this divider and maxValue the
// largest offset the owning layout allows this tick. Pointer positions
// are mapped into local space through the inverse of tf before use.
// Messages other than mouse motion, left press and left release are
// ignored.
func (c *Controller) Update(win Window, maxValue float64, rect geom.Rect, tf geom.Affine, msg tea.Msg) {
	switch msg := msg.(type) {
	case tea.MouseMotionMsg:
		pos := tf.ApplyInverse(geom.Vec{X: float64(msg.X), Y: float64(msg.Y)})
		if c.dragging {
			c.drag(pos, maxValue, rect)
		}
		c.hover = c.LineRect(win, rect).Contains(pos)
	case tea.MouseClickMsg:
		if msg.Button == tea.MouseLeft && c.hover {
			c.dragging = true
		}
	case tea.MouseReleaseMsg:
		if msg.Button == tea.MouseLeft {
			c.dragging = false
		}
	}
}

// drag recomputes Value from the pointer position in local space. The
// minimum bound is applied before the maximum, so when the layout is too
// small to honor both, Value ends up at maxValue even though that is
// below MinValue.
func (c *Controller) drag(pos geom.Vec, maxValue float64, rect geom.Rect) {
	switch c.Orientation {
	case Left:
		c.Value = geom.Clamp(pos.X-rect.X-0.5*c.Border, c.MinValue, maxValue)
	case Right:
		c.Value = geom.Clamp(rect.X+rect.W-pos.X-0.5*c.Border, c.MinValue, maxValue)
	case Top:
		c.Value = geom.Clamp(pos.Y-rect.Y-0.5*c.Border, c.MinValue, maxValue)
	case Bottom:
		c.Value = geom.Clamp(rect.Y+rect.H-pos.Y-0.5*c.Border, c.MinValue, maxValue)
	}
}

// LineRect returns the divider's hit and draw rectangle within rect. The
// line spans the cross axis from win.Start to win.End short of the far
// edge, offset along the main axis by Value, with thickness Border.
func (c *Controller) LineRect(win Window, rect geom.Rect) geom.Rect {
	switch c.Orientation {
	case Left:
		return geom.Rect{
			X: rect.X + c.Value,
			Y: rect.Y + win.Start,
			W: c.Border,
			H: rect.H - win.Start - win.End,
		}
	case Right:
		return geom.Rect{
			X: rect.X + rect.W - c.Value - c.Border,
			Y: rect.Y + win.Start,
			W: c.Border,
			H: rect.H - win.Start - win.End,
		}
	case Top:
		return geom.Rect{
			X: rect.X + win.Start,
			Y: rect.Y + c.Value,
			W: rect.W - win.Start - win.End,
			H: c.Border,
		}
	default: // Bottom
		return geom.Rect{
			X: rect.X + win.Start,
			Y: rect.Y + rect.H - c.Value - c.Border,
			W: rect.W - win.Start - win.End,
			H: c.Border,
		}
	}
}
