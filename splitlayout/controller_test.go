package splitlayout

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/tealayout/splitpane/geom"
)

func motion(x, y int) tea.Msg {
	return tea.MouseMotionMsg{X: x, Y: y}
}

func press(x, y int) tea.Msg {
	return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func release(x, y int) tea.Msg {
	return tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func TestControllerStateTable(t *testing.T) {
	tests := []struct {
		name     string
		hover    bool
		dragging bool
		want     State
	}{
		{"inactive", false, false, StateInactive},
		{"hover", true, false, StateHover},
		{"drag", true, true, StateDrag},
		{"drag_not_following", false, true, StateDragNotFollowing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(50, 50, 2, Left)
			c.hover = tt.hover
			c.dragging = tt.dragging
			assert.Equal(t, tt.want, c.State())
		})
	}
}

func TestControllerHover(t *testing.T) {
	c := NewController(50, 50, 2, Left)
	rect := geom.Rect{W: 400, H: 300}
	tf := geom.Identity()

	// Divider line is [50, 52) horizontally.
	c.Update(Window{}, 336, rect, tf, motion(51, 150))
	assert.Equal(t, StateHover, c.State())

	c.Update(Window{}, 336, rect, tf, motion(200, 150))
	assert.Equal(t, StateInactive, c.State())
}

func TestControllerPressRequiresHover(t *testing.T) {
	c := NewController(50, 50, 2, Left)
	rect := geom.Rect{W: 400, H: 300}
	tf := geom.Identity()

	c.Update(Window{}, 336, rect, tf, press(51, 150))
	assert.False(t, c.Dragging(), "press without hover must not start a drag")

	c.Update(Window{}, 336, rect, tf, motion(51, 150))
	c.Update(Window{}, 336, rect, tf, press(51, 150))
	assert.True(t, c.Dragging())
}

func TestControllerReleaseAlwaysStops(t *testing.T) {
	c := NewController(50, 50, 2, Left)
	rect := geom.Rect{W: 400, H: 300}
	tf := geom.Identity()

	c.Update(Window{}, 336, rect, tf, motion(51, 150))
	c.Update(Window{}, 336, rect, tf, press(51, 150))
	// Drag past the maximum: the divider stops following the pointer.
	c.Update(Window{}, 336, rect, tf, motion(390, 150))
	assert.Equal(t, StateDragNotFollowing, c.State())

	// Release stops the drag even though the pointer is off the line.
	c.Update(Window{}, 336, rect, tf, release(390, 150))
	assert.False(t, c.Dragging())
	assert.Equal(t, StateInactive, c.State())
}

func TestControllerDragFormulas(t *testing.T) {
	rect := geom.Rect{W: 400, H: 300}
	tests := []struct {
		name        string
		orientation Orientation
		hoverAt     [2]int
		dragTo      [2]int
		want        float64
	}{
		// value = pos.x - rect.x - border/2
		{"left", Left, [2]int{51, 150}, [2]int{120, 150}, 119},
		// value = rect.x + rect.w - pos.x - border/2
		{"right", Right, [2]int{349, 150}, [2]int{320, 150}, 79},
		// value = pos.y - rect.y - border/2
		{"top", Top, [2]int{200, 51}, [2]int{200, 80}, 79},
		// value = rect.y + rect.h - pos.y - border/2
		{"bottom", Bottom, [2]int{200, 249}, [2]int{200, 220}, 79},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(50, 50, 2, tt.orientation)
			tf := geom.Identity()
			c.Update(Window{}, 200, rect, tf, motion(tt.hoverAt[0], tt.hoverAt[1]))
			assert.Equal(t, StateHover, c.State())
			c.Update(Window{}, 200, rect, tf, press(tt.hoverAt[0], tt.hoverAt[1]))
			c.Update(Window{}, 200, rect, tf, motion(tt.dragTo[0], tt.dragTo[1]))
			assert.Equal(t, tt.want, c.Value)
		})
	}
}

func TestControllerClamping(t *testing.T) {
	c := NewController(50, 50, 2, Left)
	rect := geom.Rect{W: 400, H: 300}
	tf := geom.Identity()
	c.dragging = true

	c.Update(Window{}, 336, rect, tf, motion(10, 150))
	assert.Equal(t, 50.0, c.Value, "value must not fall below MinValue")

	c.Update(Window{}, 336, rect, tf, motion(390, 150))
	assert.Equal(t, 336.0, c.Value, "value must not exceed maxValue")
}

func TestControllerClampInversion(t *testing.T) {
	// When the layout is too small, maxValue drops below MinValue. The
	// minimum is applied first, so the maximum wins and the stated
	// value >= MinValue invariant is knowingly violated.
	c := NewController(50, 50, 2, Left)
	c.dragging = true
	rect := geom.Rect{W: 400, H: 300}

	c.Update(Window{}, 20, rect, geom.Identity(), motion(200, 150))
	assert.Equal(t, 20.0, c.Value)
	assert.Less(t, c.Value, c.MinValue)
}

func TestControllerIgnoresOtherInput(t *testing.T) {
	c := NewController(50, 50, 2, Left)
	rect := geom.Rect{W: 400, H: 300}
	tf := geom.Identity()

	c.Update(Window{}, 336, rect, tf, motion(51, 150))
	c.Update(Window{}, 336, rect, tf, tea.MouseClickMsg{X: 51, Y: 150, Button: tea.MouseRight})
	assert.False(t, c.Dragging(), "only the left button starts a drag")

	c.Update(Window{}, 336, rect, tf, press(51, 150))
	c.Update(Window{}, 336, rect, tf, tea.MouseReleaseMsg{X: 51, Y: 150, Button: tea.MouseRight})
	assert.True(t, c.Dragging(), "only the left button stops a drag")

	before := c.Value
	c.Update(Window{}, 336, rect, tf, tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Equal(t, before, c.Value)
	assert.True(t, c.Dragging())
}

func TestControllerPointerTransform(t *testing.T) {
	// The host view is scaled 2x and offset by (100, 50); the raw
	// pointer at (108, 56) is (4, 3) in local space, which is on the
	// divider line [3, 5).
	c := NewController(3, 0, 2, Left)
	rect := geom.Rect{W: 100, H: 100}
	tf := geom.Translate(100, 50).Mul(geom.Scale(2, 2))

	c.Update(Window{}, 90, rect, tf, motion(108, 56))
	assert.Equal(t, StateHover, c.State())
}

func TestControllerLineRect(t *testing.T) {
	rect := geom.Rect{X: 5, Y: 7, W: 400, H: 300}
	win := Window{Start: 10, End: 20}
	tests := []struct {
		name        string
		orientation Orientation
		want        geom.Rect
	}{
		{"left", Left, geom.Rect{X: 55, Y: 17, W: 2, H: 270}},
		{"right", Right, geom.Rect{X: 353, Y: 17, W: 2, H: 270}},
		{"top", Top, geom.Rect{X: 15, Y: 57, W: 370, H: 2}},
		{"bottom", Bottom, geom.Rect{X: 15, Y: 255, W: 370, H: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(50, 50, 2, tt.orientation)
			assert.Equal(t, tt.want, c.LineRect(win, rect))
		})
	}
}
