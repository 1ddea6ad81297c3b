package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/hexcalc/internal/convert"
	"github.com/agbru/hexcalc/internal/input"
)

// maxHistory bounds the number of past conversions kept on screen.
const maxHistory = 128

// Model is the root bubbletea model for the interactive converter.
type Model struct {
	input   textinput.Model
	help    help.Model
	keymap  KeyMap
	history []convert.Record
	errMsg  string
	width   int
	height  int
	version string
}

// NewModel creates the interactive converter model.
func NewModel(version string) Model {
	ti := textinput.New()
	ti.Placeholder = "decimal values, e.g. 283 285 -1"
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Focus()

	return Model{
		input:   ti,
		help:    help.New(),
		keymap:  DefaultKeyMap(),
		version: version,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and terminal resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Clear):
			m.history = nil
			m.errMsg = ""
			return m, nil
		case key.Matches(msg, m.keymap.Submit):
			return m.submit(), nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit parses the entered tokens and appends their records to the history.
func (m Model) submit() Model {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m
	}

	values, err := input.ParseArgs(strings.Fields(text))
	if err != nil {
		m.errMsg = err.Error()
		return m
	}

	m.errMsg = ""
	m.history = append(m.history, convert.Convert(values)...)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
	m.input.SetValue("")
	return m
}

// historyHeight returns the number of history lines that fit on screen.
func (m Model) historyHeight() int {
	// Title, input box, error line, help line, and panel borders.
	h := m.height - 8
	if h < 3 {
		h = 3
	}
	return h
}

// View renders the converter: title, history panel, input, and help.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("hexcalc %s — interactive converter", m.version)))
	b.WriteString("\n")

	visible := m.history
	if limit := m.historyHeight(); len(visible) > limit {
		visible = visible[len(visible)-limit:]
	}
	var lines []string
	if len(visible) == 0 {
		lines = append(lines, dimStyle.Render("no conversions yet"))
	}
	for _, r := range visible {
		lines = append(lines, recordStyle.Render(r.String()))
	}
	b.WriteString(panelStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")

	b.WriteString(inputStyle.Render(m.input.View()))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keymap))
	b.WriteString("\n")

	return b.String()
}
