// splitdemo is an interactive showcase for the splitview widget: drag
// the four divider lines with the mouse, lock them with the number
// keys, and watch the five panels reflow.
package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/tealayout/splitpane/config"
	"github.com/tealayout/splitpane/splitview"
)

var _ tea.Model = (*app)(nil)

type app struct {
	view *splitview.Model
}

func (a *app) Init() tea.Cmd {
	return a.view.Init()
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.view.Update(msg)
}

// View runs on the alternate screen with all-motion mouse reporting;
// divider hover needs motion events while no button is pressed.
func (a *app) View() tea.View {
	v := tea.NewView(a.view.View())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p := tea.NewProgram(&app{view: splitview.New(settings)})
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
