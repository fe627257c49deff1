package app

import (
	"fmt"
	"strings"

	"github.com/astrolul/tinydaw/internal/dispatch"
	"github.com/astrolul/tinydaw/internal/navigation"
	"github.com/astrolul/tinydaw/internal/services"
	"github.com/astrolul/tinydaw/internal/ui"
	"github.com/astrolul/tinydaw/internal/view"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type RouterModel struct {
	registry   *view.Registry
	dispatcher *dispatch.Dispatcher
	keys       ui.KeyMap
	theme      ui.Theme
	help       help.Model

	commandInput textinput.Model
	commandMode  bool

	width  int
	height int

	displayedErr error
}

func NewRouterModel(registry *view.Registry) RouterModel {
	commandInput := textinput.New()
	commandInput.Cursor.SetMode(cursor.CursorStatic)
	commandInput.Prompt = ":"

	return RouterModel{
		registry:     registry,
		dispatcher:   dispatch.New(registry),
		keys:         ui.DefaultKeyMap(),
		theme:        ui.DefaultTheme(),
		help:         help.New(),
		commandInput: commandInput,
	}
}

func (m RouterModel) Init() tea.Cmd {
	return nil
}

func (m RouterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case navigation.NavigateMsg:
		return m.applyCommand(navigation.SwitchTo{ViewID: msg.To})

	case navigation.ClearErrorMsg:
		m.displayedErr = nil
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.commandMode {
			return m.updateCommandInput(msg)
		}

		switch {
		case key.Matches(msg, m.keys.ForceQuit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Command):
			m.commandMode = true
			m.commandInput.Focus()
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		return m.applyCommand(m.dispatcher.HandleKey(msg.String()))
	}

	return m, nil
}

func (m RouterModel) View() string {
	current := m.dispatcher.Current()

	frame := ui.Frame{
		Width:      m.width,
		Height:     m.height,
		Title:      titleLine,
		Label:      current.Label(),
		LabelStyle: m.theme.LabelStyle(current.Color()),
		HelpLine:   ui.HelpLine(current),
	}

	switch {
	case m.commandMode:
		frame.Status = m.commandInput.View()
	case m.displayedErr != nil:
		frame.Status = m.theme.ErrorStyle().Render(m.displayedErr.Error())
	default:
		if dbg, ok := services.Shared().Get("debug"); ok && dbg == true {
			frame.Status = "[" + current.ID() + "]"
		}
	}

	if m.help.ShowAll {
		frame.Extra = m.help.View(m.keys)
	}

	return frame.Render()
}

// CurrentViewID exposes the dispatcher's current view for callers outside
// the update loop.
func (m RouterModel) CurrentViewID() string {
	return m.dispatcher.CurrentID()
}

// applyCommand runs cmd through the dispatcher. An unknown view id is
// recoverable: it is logged, shown transiently, and the current view
// stays put.
func (m RouterModel) applyCommand(cmd navigation.Command) (tea.Model, tea.Cmd) {
	quit, err := m.dispatcher.Apply(cmd)
	if err != nil {
		_ = services.Logger().Error(fmt.Sprintf("dispatch: %v", err))
		m.displayedErr = err
		return m, navigation.ClearErrorAfterDelay()
	}
	if quit {
		return m, tea.Quit
	}

	_ = services.Logger().Debug(fmt.Sprintf("current view: %s", m.dispatcher.CurrentID()))
	return m, nil
}

func (m RouterModel) updateCommandInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.commandMode = false
		m.commandInput.Reset()
		m.commandInput.Blur()
		return m, nil

	case tea.KeyEnter:
		raw := m.commandInput.Value()
		m.commandMode = false
		m.commandInput.Reset()
		m.commandInput.Blur()
		return m.executeCommand(raw)
	}

	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return m, cmd
}

func (m RouterModel) executeCommand(raw string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return m, nil
	}

	switch fields[0] {
	case "q", "quit":
		return m.applyCommand(navigation.Quit{})

	case "view":
		if len(fields) != 2 {
			m.displayedErr = fmt.Errorf("usage: view <%s>", strings.Join(m.registry.IDs(), "|"))
			return m, navigation.ClearErrorAfterDelay()
		}
		return m.applyCommand(navigation.SwitchTo{ViewID: fields[1]})
	}

	m.displayedErr = fmt.Errorf("unknown command: %s", raw)
	return m, navigation.ClearErrorAfterDelay()
}
