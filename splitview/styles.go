package splitview

import (
	"charm.land/lipgloss/v2"

	"github.com/tealayout/splitpane/splitlayout"
)

// Styles holds the render styles for every region of the view.
type Styles struct {
	Side     lipgloss.Style
	Bar      lipgloss.Style
	Center   lipgloss.Style
	Backdrop lipgloss.Style
	Status   lipgloss.Style

	DividerInactive     lipgloss.Style
	DividerHover        lipgloss.Style
	DividerDrag         lipgloss.Style
	DividerNotFollowing lipgloss.Style
	DividerLocked       lipgloss.Style
}

// DefaultStyles is a gray scheme with a light warning tint for a
// divider that has stopped following the pointer.
func DefaultStyles() Styles {
	return Styles{
		Side:     lipgloss.NewStyle().Background(lipgloss.Color("#e6e6e6")),
		Bar:      lipgloss.NewStyle().Background(lipgloss.Color("#b3b3b3")),
		Center:   lipgloss.NewStyle().Background(lipgloss.Color("#333333")),
		Backdrop: lipgloss.NewStyle(),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),

		DividerInactive:     lipgloss.NewStyle().Background(lipgloss.Color("#808080")),
		DividerHover:        lipgloss.NewStyle().Background(lipgloss.Color("#cccccc")),
		DividerDrag:         lipgloss.NewStyle().Background(lipgloss.Color("#999999")),
		DividerNotFollowing: lipgloss.NewStyle().Background(lipgloss.Color("#ffcccc")),
		DividerLocked:       lipgloss.NewStyle().Background(lipgloss.Color("#5f5f5f")),
	}
}

func (s Styles) divider(state splitlayout.State) lipgloss.Style {
	switch state {
	case splitlayout.StateHover:
		return s.DividerHover
	case splitlayout.StateDrag:
		return s.DividerDrag
	case splitlayout.StateDragNotFollowing:
		return s.DividerNotFollowing
	}
	return s.DividerInactive
}
