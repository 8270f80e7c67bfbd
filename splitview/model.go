// Package splitview is a ready-made bubbletea model around a
// splitlayout.LayoutController: it feeds mouse messages to the layout
// and renders the five panels and four divider lines, with the divider
// color keyed to its interaction state.
package splitview

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tealayout/splitpane/geom"
	"github.com/tealayout/splitpane/splitlayout"
)

// margin is the empty border kept around the layout, in cells.
const margin = 1

var orientations = []splitlayout.Orientation{
	splitlayout.Left,
	splitlayout.Right,
	splitlayout.Top,
	splitlayout.Bottom,
}

type keyMap struct {
	Quit       key.Binding
	Reset      key.Binding
	MinSize    key.Binding
	LockLeft   key.Binding
	LockRight  key.Binding
	LockTop    key.Binding
	LockBottom key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		MinSize:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "min size")),
		LockLeft:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "lock left")),
		LockRight:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "lock right")),
		LockTop:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "lock top")),
		LockBottom: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "lock bottom")),
	}
}

// Model owns a layout controller and renders it as a full-screen view.
type Model struct {
	Styles Styles

	settings    splitlayout.Settings
	layout      *splitlayout.LayoutController
	keys        keyMap
	width       int
	height      int
	showMinSize bool
}

// New returns a model built from settings. The settings are kept so the
// layout can be reset to them later.
func New(settings splitlayout.Settings) *Model {
	return &Model{
		Styles:   DefaultStyles(),
		settings: settings,
		layout:   splitlayout.NewLayoutController(settings),
		keys:     defaultKeyMap(),
	}
}

// Layout exposes the underlying layout controller.
func (m *Model) Layout() *splitlayout.LayoutController {
	return m.layout
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return tea.Quit
		case key.Matches(msg, m.keys.Reset):
			m.layout = splitlayout.NewLayoutController(m.settings)
		case key.Matches(msg, m.keys.MinSize):
			m.showMinSize = !m.showMinSize
		case key.Matches(msg, m.keys.LockLeft):
			m.toggleLock(splitlayout.Left)
		case key.Matches(msg, m.keys.LockRight):
			m.toggleLock(splitlayout.Right)
		case key.Matches(msg, m.keys.LockTop):
			m.toggleLock(splitlayout.Top)
		case key.Matches(msg, m.keys.LockBottom):
			m.toggleLock(splitlayout.Bottom)
		}
	case tea.MouseMsg:
		m.layout.Update(m.layoutRect(), geom.Identity(), msg)
	}
	return nil
}

func (m *Model) toggleLock(o splitlayout.Orientation) {
	locked := m.layout.Locked()
	if locked.Contains(o) {
		locked = locked.Without(o)
	} else {
		locked = locked.With(o)
	}
	m.layout.SetLocked(locked)
}

// layoutRect is the window area handed to the layout: the full terminal
// minus the margin and the status line.
func (m *Model) layoutRect() geom.Rect {
	return geom.Rect{
		X: margin,
		Y: margin,
		W: float64(m.width) - 2*margin,
		H: float64(m.height) - 2*margin - 1,
	}
}

func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	rect := m.layoutRect()
	f := frame{
		lines:  m.layout.Rectangles(rect),
		panels: m.layout.PanelRectangles(rect),
	}
	// Resolve one style per region up front so runs can compare indices.
	f.styles = [styleCount]lipgloss.Style{
		m.Styles.Backdrop, m.Styles.Side, m.Styles.Bar, m.Styles.Center,
	}
	for i, state := range m.layout.States() {
		if m.layout.Locked().Contains(orientations[i]) {
			f.styles[styleDividerBase+i] = m.Styles.DividerLocked
		} else {
			f.styles[styleDividerBase+i] = m.Styles.divider(state)
		}
	}

	var sb strings.Builder
	for y := 0; y < m.height-1; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		m.renderRow(&sb, y, &f)
	}
	sb.WriteByte('\n')
	sb.WriteString(m.statusLine())
	return sb.String()
}

const (
	styleBackdrop = iota
	styleSide
	styleBar
	styleCenter
	styleDividerBase // four divider slots, one per orientation
	styleCount       = styleDividerBase + 4
)

// frame is the per-View snapshot of the layout geometry and the style
// resolved for each region.
type frame struct {
	lines  [4]geom.Rect
	panels [5]geom.Rect
	styles [styleCount]lipgloss.Style
}

// renderRow writes one terminal row, batching runs of equally styled
// cells into single Render calls.
func (m *Model) renderRow(sb *strings.Builder, y int, f *frame) {
	var run strings.Builder
	runStyle := -1
	for x := 0; x < m.width; x++ {
		p := geom.Vec{X: float64(x) + 0.5, Y: float64(y) + 0.5}
		style, ch := f.cell(p)
		if run.Len() > 0 && style != runStyle {
			sb.WriteString(f.styles[runStyle].Render(run.String()))
			run.Reset()
		}
		runStyle = style
		run.WriteRune(ch)
	}
	if run.Len() > 0 {
		sb.WriteString(f.styles[runStyle].Render(run.String()))
	}
}

// cell classifies the point at a cell center: divider lines win over
// panels, panels over the backdrop.
func (f *frame) cell(p geom.Vec) (int, rune) {
	for i, line := range f.lines {
		if !line.Contains(p) {
			continue
		}
		ch := '│'
		if orientations[i] == splitlayout.Top || orientations[i] == splitlayout.Bottom {
			ch = '─'
		}
		return styleDividerBase + i, ch
	}
	switch {
	case f.panels[0].Contains(p) || f.panels[1].Contains(p):
		return styleSide, ' '
	case f.panels[2].Contains(p) || f.panels[3].Contains(p):
		return styleBar, ' '
	case f.panels[4].Contains(p):
		return styleCenter, ' '
	}
	return styleBackdrop, ' '
}

func (m *Model) statusLine() string {
	var parts []string
	if locked := m.layout.Locked(); !locked.Empty() {
		var names []string
		for _, o := range orientations {
			if locked.Contains(o) {
				names = append(names, o.String())
			}
		}
		parts = append(parts, "locked: "+strings.Join(names, ","))
	}
	if m.showMinSize {
		min := m.layout.MinSize()
		parts = append(parts, fmt.Sprintf("min %gx%g", min.X, min.Y))
	}
	parts = append(parts, "1-4 lock  m min  r reset  q quit")
	return m.Styles.Status.Render(strings.Join(parts, "  "))
}
