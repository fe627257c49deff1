package navigation

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Command is the effect produced by dispatching a key within the current
// view: switch to another view, quit, or do nothing.
type Command interface {
	isCommand()
}

type SwitchTo struct {
	ViewID string
}

type Quit struct{}

type Noop struct{}

func (SwitchTo) isCommand() {}
func (Quit) isCommand()     {}
func (Noop) isCommand()     {}

type NavigateMsg struct {
	To string
}

func Navigate(to string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{To: to}
	}
}

type ClearErrorMsg struct{}

const errorDisplayDuration = 4 * time.Second

// ClearErrorAfterDelay schedules the transient error area to be wiped.
func ClearErrorAfterDelay() tea.Cmd {
	return tea.Tick(errorDisplayDuration, func(time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}
