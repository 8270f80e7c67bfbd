package splitlayout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tealayout/splitpane/geom"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings(2, 100)

	assert.Equal(t, 2.0, s.Border)
	assert.Equal(t, geom.Vec{X: 1, Y: 1}, s.CenterMinSize)
	for _, o := range []Orientation{Left, Right, Top, Bottom} {
		e := s.Edge(o)
		assert.Equal(t, 100.0, e.Value, o.String())
		assert.Equal(t, 100.0, e.MinValue, o.String())
		assert.False(t, e.Lock, o.String())
	}
}

func TestSettingsWithEdge(t *testing.T) {
	s := DefaultSettings(2, 100).WithEdge(Right, 150, 60)

	assert.Equal(t, EdgeSettings{Value: 150, MinValue: 60}, s.Edge(Right))
	// Other edges keep their defaults.
	assert.Equal(t, EdgeSettings{Value: 100, MinValue: 100}, s.Edge(Left))
	assert.Equal(t, EdgeSettings{Value: 100, MinValue: 100}, s.Edge(Top))
}

func TestSettingsWithLocked(t *testing.T) {
	s := DefaultSettings(2, 100).WithLocked(Top, 40)

	assert.Equal(t, EdgeSettings{Value: 40, MinValue: 40, Lock: true}, s.Edge(Top))

	lc := NewLayoutController(s)
	assert.Equal(t, NoEdges.With(Top), lc.Locked())
}

func TestSettingsAreCopies(t *testing.T) {
	base := DefaultSettings(2, 100)
	_ = base.WithEdge(Left, 10, 5)

	assert.Equal(t, EdgeSettings{Value: 100, MinValue: 100}, base.Edge(Left),
		"WithEdge must not mutate the receiver")
}
