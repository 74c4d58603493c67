package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/tasklist/internal/app"
	"github.com/dori/tasklist/internal/model"
	"github.com/dori/tasklist/internal/store"
	"github.com/dori/tasklist/internal/ui/theme"
)

// mode is the prompt the full-screen view is waiting on
type mode int

const (
	modeMenu mode = iota
	modeAddTitle
	modeStatusTask
	modeStatusValue
	modeRemoveTask
)

// Model is the bubbletea model for the full-screen mode
type Model struct {
	app    *app.App
	keys   KeyMap
	help   help.Model
	input  textinput.Model
	styles theme.Styles

	mode    mode
	pending int // task chosen for a status change

	statusMsg string
	errorMsg  string

	saved    bool
	quitting bool
}

// NewModel creates the full-screen model
func NewModel(application *app.App, th theme.Theme) Model {
	ti := textinput.New()
	ti.CharLimit = 256

	styles := theme.NewStyles(lipgloss.DefaultRenderer(), th)
	h := help.New()
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc
	h.Styles.FullKey = styles.HelpKey
	h.Styles.FullDesc = styles.HelpDesc

	m := Model{
		app:    application,
		keys:   DefaultKeyMap(),
		help:   h,
		input:  ti,
		styles: styles,
	}
	if application.FileErr != nil {
		m.errorMsg = msgFileErr(application.FileErr)
	}
	return m
}

// Saved reports whether the session ended with a successful save
func (m Model) Saved() bool {
	return m.saved
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.mode != modeMenu {
			return m.updateInput(msg)
		}
		m.statusMsg = ""
		m.errorMsg = ""
		return m.updateMenu(msg)
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.View):
		if m.app.Store.Len() == 0 {
			m.statusMsg = msgNoTasks
		}

	case key.Matches(msg, m.keys.Add):
		return m.startPrompt(modeAddTitle, "Task title")

	case key.Matches(msg, m.keys.Edit):
		if err := m.app.Store.Edit(0, ""); errors.Is(err, store.ErrNotImplemented) {
			m.statusMsg = msgNotEditable
		}

	case key.Matches(msg, m.keys.Status):
		if m.app.Store.Len() == 0 {
			m.statusMsg = msgNoStatusTasks
			return m, nil
		}
		return m.startPrompt(modeStatusTask, "Task number")

	case key.Matches(msg, m.keys.Remove):
		if m.app.Store.Len() == 0 {
			m.statusMsg = msgNoTasks
			return m, nil
		}
		return m.startPrompt(modeRemoveTask, "Task number")

	case key.Matches(msg, m.keys.Exit):
		if err := m.app.Save(); err != nil {
			m.errorMsg = msgSaveErr(err)
			return m, nil
		}
		m.saved = true
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m = m.endPrompt()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		value := strings.TrimSpace(m.input.Value())
		return m.submit(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) startPrompt(md mode, placeholder string) (tea.Model, tea.Cmd) {
	m.mode = md
	m.input.Reset()
	m.input.Placeholder = placeholder
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) endPrompt() Model {
	m.mode = modeMenu
	m.pending = 0
	m.input.Reset()
	m.input.Blur()
	return m
}

// submit applies the value typed at the current prompt
func (m Model) submit(value string) (tea.Model, tea.Cmd) {
	current, pending := m.mode, m.pending
	m = m.endPrompt()

	if current == modeAddTitle {
		t, err := m.app.Store.Add(value)
		if err != nil {
			m.errorMsg = addErrMessage(err)
			return m, nil
		}
		m.statusMsg = msgAdded(t)
		return m, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		m.errorMsg = msgBadNumber
		return m, nil
	}

	switch current {
	case modeStatusTask:
		// out-of-range positions are ignored silently
		if _, err := m.app.Store.Get(n); err != nil {
			return m, nil
		}
		next, cmd := m.startPrompt(modeStatusValue, "Status number")
		nm := next.(Model)
		nm.pending = n
		return nm, cmd

	case modeStatusValue:
		status, ok := model.StatusAt(n)
		if !ok {
			return m, nil
		}
		t, err := m.app.SetStatus(pending, status)
		if err != nil {
			return m, nil
		}
		m.statusMsg = msgStatusUpdated(t)

	case modeRemoveTask:
		t, err := m.app.Store.Remove(n)
		if err != nil {
			return m, nil
		}
		m.statusMsg = msgRemoved(t)
	}

	return m, nil
}

// View renders the model
func (m Model) View() string {
	if m.quitting {
		if m.saved {
			return m.styles.Success.Render(msgGoodbye) + "\n"
		}
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(menuHeader))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Panel.Render(m.renderTasks()))
	b.WriteString("\n")

	if m.mode == modeStatusValue {
		b.WriteString(formatStatuses(m.styles))
		b.WriteString("\n")
	}

	if m.mode != modeMenu {
		b.WriteString(m.promptLabel())
		b.WriteString("\n")
		b.WriteString(m.styles.Input.Render(m.input.View()))
		b.WriteString("\n")
	} else {
		for _, a := range Actions() {
			fmt.Fprintf(&b, "%s %s\n", m.styles.MenuKey.Render(fmt.Sprintf("%d.", int(a))), a)
		}
	}

	b.WriteString("\n")
	switch {
	case m.errorMsg != "":
		b.WriteString(m.styles.Error.Render(m.errorMsg))
	case m.statusMsg != "":
		b.WriteString(m.styles.Success.Render(m.statusMsg))
	}
	b.WriteString("\n")

	if m.mode != modeMenu {
		b.WriteString(m.help.View(inputHelp{keys: m.keys}))
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

func (m Model) renderTasks() string {
	seq, err := m.app.Store.View()
	if err != nil {
		return m.styles.Label.Render(msgNoTasks)
	}

	var lines []string
	for pos, t := range seq {
		lines = append(lines, formatTask(m.styles, pos, t))
	}
	return strings.Join(lines, "\n")
}

func (m Model) promptLabel() string {
	switch m.mode {
	case modeAddTitle:
		return strings.TrimSpace(promptTitle)
	case modeStatusTask:
		return strings.TrimSpace(promptStatusTask)
	case modeStatusValue:
		return strings.TrimSpace(promptStatusValue)
	case modeRemoveTask:
		return strings.TrimSpace(promptRemoveTask)
	}
	return ""
}
