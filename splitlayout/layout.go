package splitlayout

import (
	"math"

	tea "charm.land/bubbletea/v2"

	"github.com/tealayout/splitpane/geom"
)

// LayoutController composes four divider controllers into a five-region
// layout and resolves the constraints between them: opposing dividers
// may not overlap each other or shrink the center below its minimum.
type LayoutController struct {
	Left   *Controller
	Right  *Controller
	Top    *Controller
	Bottom *Controller

	centerMinSize geom.Vec
	locked        EdgeSet
	dragging      EdgeSet
}

// NewLayoutController builds the four divider controllers from settings.
func NewLayoutController(s Settings) *LayoutController {
	locked := NoEdges
	if s.Left.Lock {
		locked = locked.With(Left)
	}
	if s.Right.Lock {
		locked = locked.With(Right)
	}
	if s.Top.Lock {
		locked = locked.With(Top)
	}
	if s.Bottom.Lock {
		locked = locked.With(Bottom)
	}
	return &LayoutController{
		Left:          NewController(s.Left.Value, s.Left.MinValue, s.Border, Left),
		Right:         NewController(s.Right.Value, s.Right.MinValue, s.Border, Right),
		Top:           NewController(s.Top.Value, s.Top.MinValue, s.Border, Top),
		Bottom:        NewController(s.Bottom.Value, s.Bottom.MinValue, s.Border, Bottom),
		centerMinSize: s.CenterMinSize,
		locked:        locked,
	}
}

// Update routes one bubbletea message to the unlocked dividers. Once a
// drag is in progress only the dragged divider sees further messages, so
// a fast-moving pointer cannot grab a second divider mid-drag. Each
// divider's maximum value leaves room for the opposing divider and the
// center minimum.
func (lc *LayoutController) Update(rect geom.Rect, tf geom.Affine, msg tea.Msg) {
	bounds := lc.Bounds(rect)

	if lc.receives(Top) {
		maxValue := bounds.H - lc.Bottom.Value - lc.centerMinSize.Y -
			lc.Top.Border - lc.Bottom.Border
		lc.Top.Update(lc.TopBottomWindow(), maxValue, bounds, tf, msg)
	}
	if lc.receives(Bottom) {
		maxValue := bounds.H - lc.Top.Value - lc.centerMinSize.Y -
			lc.Bottom.Border - lc.Top.Border
		lc.Bottom.Update(lc.TopBottomWindow(), maxValue, bounds, tf, msg)
	}
	if lc.receives(Left) {
		maxValue := bounds.W - lc.Right.Value - lc.centerMinSize.X -
			lc.Left.Border - lc.Right.Border
		lc.Left.Update(lc.LeftRightWindow(PurposeEvent), maxValue, bounds, tf, msg)
	}
	if lc.receives(Right) {
		maxValue := bounds.W - lc.Left.Value - lc.centerMinSize.X -
			lc.Right.Border - lc.Left.Border
		lc.Right.Update(lc.LeftRightWindow(PurposeEvent), maxValue, bounds, tf, msg)
	}

	lc.dragging = NoEdges
	if lc.Top.Dragging() {
		lc.dragging = lc.dragging.With(Top)
	}
	if lc.Bottom.Dragging() {
		lc.dragging = lc.dragging.With(Bottom)
	}
	if lc.Left.Dragging() {
		lc.dragging = lc.dragging.With(Left)
	}
	if lc.Right.Dragging() {
		lc.dragging = lc.dragging.With(Right)
	}
}

// receives reports whether the divider at o should see messages this
// tick: it must be unlocked, and while a drag is in progress only the
// dragged divider receives anything.
func (lc *LayoutController) receives(o Orientation) bool {
	if lc.locked.Contains(o) {
		return false
	}
	return lc.dragging.Empty() || lc.dragging.Contains(o)
}

// LeftRightWindow returns the cross-axis window for the left and right
// dividers. The drawing window is inset past the top and bottom borders;
// the event window stops at the top and bottom dividers' values so the
// corner regions stay reachable.
func (lc *LayoutController) LeftRightWindow(p Purpose) Window {
	if p == PurposeDraw {
		return Window{
			Start: lc.Top.Value + lc.Top.Border,
			End:   lc.Bottom.Value + lc.Bottom.Border,
		}
	}
	return Window{
		Start: lc.Top.Value,
		End:   lc.Bottom.Value,
	}
}

// TopBottomWindow returns the cross-axis window for the top and bottom
// dividers. They always span the full width.
func (lc *LayoutController) TopBottomWindow() Window {
	return Window{}
}

// Rectangles returns the divider line rectangles [left, right, top,
// bottom] using the drawing window.
func (lc *LayoutController) Rectangles(rect geom.Rect) [4]geom.Rect {
	bounds := lc.Bounds(rect)
	tb := lc.TopBottomWindow()
	lr := lc.LeftRightWindow(PurposeDraw)
	return [4]geom.Rect{
		lc.Left.LineRect(lr, bounds),
		lc.Right.LineRect(lr, bounds),
		lc.Top.LineRect(tb, bounds),
		lc.Bottom.LineRect(tb, bounds),
	}
}

// States returns the divider states [left, right, top, bottom].
func (lc *LayoutController) States() [4]State {
	return [4]State{
		lc.Left.State(),
		lc.Right.State(),
		lc.Top.State(),
		lc.Bottom.State(),
	}
}

// PanelRectangles partitions the bounded area into the five panels
// [left, right, top, bottom, center]. The left and right panels span the
// vertical band between the top and bottom dividers; the top and bottom
// panels span the full width; the center fills what remains after
// subtracting all four values and borders.
func (lc *LayoutController) PanelRectangles(rect geom.Rect) [5]geom.Rect {
	bounds := lc.Bounds(rect)
	sideY := bounds.Y + lc.Top.Value + lc.Top.Border
	sideH := bounds.H - lc.Top.Value - lc.Top.Border -
		lc.Bottom.Value - lc.Bottom.Border
	return [5]geom.Rect{
		{X: bounds.X, Y: sideY, W: lc.Left.Value, H: sideH},
		{X: bounds.X + bounds.W - lc.Right.Value, Y: sideY, W: lc.Right.Value, H: sideH},
		{X: bounds.X, Y: bounds.Y, W: bounds.W, H: lc.Top.Value},
		{X: bounds.X, Y: bounds.Y + bounds.H - lc.Bottom.Value, W: bounds.W, H: lc.Bottom.Value},
		{
			X: bounds.X + lc.Left.Value + lc.Left.Border,
			Y: sideY,
			W: bounds.W - lc.Right.Value - lc.Right.Border -
				lc.Left.Value - lc.Left.Border,
			H: sideH,
		},
	}
}

// MinSize is the smallest size the layout currently occupies. It uses
// the dividers' current values rather than their minimums, so a
// shrinking window does not snap dividers away from their on-screen
// positions.
func (lc *LayoutController) MinSize() geom.Vec {
	return geom.Vec{
		X: lc.Left.Value + lc.Left.Border + lc.Right.Value + lc.Right.Border +
			lc.centerMinSize.X,
		Y: lc.Top.Value + lc.Top.Border + lc.Bottom.Value + lc.Bottom.Border +
			lc.centerMinSize.Y,
	}
}

// Bounds floors rect to MinSize so panels never request negative space.
func (lc *LayoutController) Bounds(rect geom.Rect) geom.Rect {
	min := lc.MinSize()
	return geom.Rect{
		X: rect.X,
		Y: rect.Y,
		W: math.Max(rect.W, min.X),
		H: math.Max(rect.H, min.Y),
	}
}

// CenterMinSize returns the minimum size of the center panel.
func (lc *LayoutController) CenterMinSize() geom.Vec {
	return lc.centerMinSize
}

// Locked returns the set of locked edges.
func (lc *LayoutController) Locked() EdgeSet { return lc.locked }

// SetLocked replaces the set of locked edges. A newly locked divider
// keeps its current value; any drag or hover it had in progress is
// cancelled so it cannot hold the drag-exclusivity claim forever.
func (lc *LayoutController) SetLocked(edges EdgeSet) {
	for _, c := range []*Controller{lc.Left, lc.Right, lc.Top, lc.Bottom} {
		if edges.Contains(c.Orientation) && !lc.locked.Contains(c.Orientation) {
			c.hover = false
			c.dragging = false
			lc.dragging = lc.dragging.Without(c.Orientation)
		}
	}
	lc.locked = edges
}
