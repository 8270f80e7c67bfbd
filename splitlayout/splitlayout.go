// Package splitlayout implements a five-region split layout: four
// draggable divider lines anchored to the window edges carve out left,
// right, top and bottom panels around a center panel.
//
// A LayoutController owns one Controller per edge, routes bubbletea
// mouse messages to them and answers geometry queries for rendering.
// The host event loop calls Update once per message, then reads
// Rectangles, PanelRectangles and States to draw the frame.
package splitlayout

// Orientation names the window edge a divider anchors to.
type Orientation uint8

const (
	// Left splits from the left edge of the parent panel.
	Left Orientation = iota
	// Right splits from the right edge of the parent panel.
	Right
	// Top splits from the top edge of the parent panel.
	Top
	// Bottom splits from the bottom edge of the parent panel.
	Bottom
)

func (o Orientation) String() string {
	switch o {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return "unknown"
}

// State is the interaction state of a single divider, derived from its
// hover and dragging flags.
type State uint8

const (
	// StateInactive: the pointer is elsewhere and no drag is in progress.
	StateInactive State = iota
	// StateHover: the pointer is over the divider line.
	StateHover
	// StateDrag: the divider is being dragged and the pointer is on it.
	StateDrag
	// StateDragNotFollowing: the button is still held but the pointer has
	// left the divider line, typically because the value hit a bound.
	StateDragNotFollowing
)

func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateHover:
		return "hover"
	case StateDrag:
		return "drag"
	case StateDragNotFollowing:
		return "drag-not-following"
	}
	return "unknown"
}

// EdgeSet is a set of edges. Sets combine with bitwise OR.
type EdgeSet uint8

const (
	EdgeLeft EdgeSet = 1 << iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// NoEdges is the empty set.
const NoEdges EdgeSet = 0

func edge(o Orientation) EdgeSet {
	switch o {
	case Left:
		return EdgeLeft
	case Right:
		return EdgeRight
	case Top:
		return EdgeTop
	case Bottom:
		return EdgeBottom
	}
	return NoEdges
}

// Contains reports whether the set includes the edge o.
func (s EdgeSet) Contains(o Orientation) bool { return s&edge(o) != 0 }

// With returns the set with o added.
func (s EdgeSet) With(o Orientation) EdgeSet { return s | edge(o) }

// Without returns the set with o removed.
func (s EdgeSet) Without(o Orientation) EdgeSet { return s &^ edge(o) }

// Empty reports whether no edges are in the set.
func (s EdgeSet) Empty() bool { return s == NoEdges }

// Window is the pair of cross-axis insets applied to a divider line: the
// line starts Start in from one edge of the bounds and stops End short
// of the opposite edge.
type Window struct {
	Start float64
	End   float64
}

// Purpose selects the cross-axis window policy for the left and right
// dividers. Hit-testing keeps the window generous so drags near the
// corners still reach the divider; drawing insets the line past the top
// and bottom borders so it does not overlap them.
type Purpose uint8

const (
	// PurposeDraw insets left/right dividers past the top/bottom borders.
	PurposeDraw Purpose = iota
	// PurposeEvent lets left/right dividers reach into the corner regions.
	PurposeEvent
)
