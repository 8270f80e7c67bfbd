package splitlayout

import "github.com/tealayout/splitpane/geom"

// EdgeSettings configures one divider at construction time.
type EdgeSettings struct {
	// Value is the divider's initial offset from its edge.
	Value float64
	// MinValue is the smallest offset the divider can be dragged to.
	MinValue float64
	// Lock excludes the divider from event handling entirely.
	Lock bool
}

// Settings is the construction-time configuration for a
// LayoutController. It is passed by value and not retained.
type Settings struct {
	// Border is the divider thickness shared by all four dividers.
	Border float64
	// CenterMinSize is the minimum size of the center panel.
	CenterMinSize geom.Vec

	Left   EdgeSettings
	Right  EdgeSettings
	Top    EdgeSettings
	Bottom EdgeSettings
}

// DefaultSettings returns settings with every divider resting at
// minValue and a 1x1 center minimum.
func DefaultSettings(border, minValue float64) Settings {
	e := EdgeSettings{Value: minValue, MinValue: minValue}
	return Settings{
		Border:        border,
		CenterMinSize: geom.Vec{X: 1, Y: 1},
		Left:          e,
		Right:         e,
		Top:           e,
		Bottom:        e,
	}
}

// Edge returns the settings for the divider at o.
func (s Settings) Edge(o Orientation) EdgeSettings {
	return *s.edge(o)
}

// WithEdge returns a copy of s with the given divider's value and
// minimum replaced.
func (s Settings) WithEdge(o Orientation, value, minValue float64) Settings {
	e := s.edge(o)
	e.Value = value
	e.MinValue = minValue
	return s
}

// WithLocked returns a copy of s with the given divider locked at a
// fixed value.
func (s Settings) WithLocked(o Orientation, value float64) Settings {
	e := s.edge(o)
	e.Value = value
	e.MinValue = value
	e.Lock = true
	return s
}

func (s *Settings) edge(o Orientation) *EdgeSettings {
	switch o {
	case Left:
		return &s.Left
	case Right:
		return &s.Right
	case Top:
		return &s.Top
	default:
		return &s.Bottom
	}
}
