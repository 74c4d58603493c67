package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the full-screen mode
type KeyMap struct {
	View   key.Binding
	Add    key.Binding
	Edit   key.Binding
	Status key.Binding
	Remove key.Binding
	Exit   key.Binding

	Confirm key.Binding
	Cancel  key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		View: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "view"),
		),
		Add: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "edit"),
		),
		Status: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "status"),
		),
		Remove: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "remove"),
		),
		Exit: key.NewBinding(
			key.WithKeys("6"),
			key.WithHelp("6", "save & exit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit without saving"),
		),
	}
}

// ShortHelp returns keybindings for the short help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.View, k.Add, k.Edit, k.Status, k.Remove, k.Exit, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.View, k.Add, k.Edit},
		{k.Status, k.Remove, k.Exit},
		{k.Confirm, k.Cancel, k.Quit},
	}
}

// inputHelp is shown while a prompt is open
type inputHelp struct {
	keys KeyMap
}

func (h inputHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.Confirm, h.keys.Cancel, h.keys.Quit}
}

func (h inputHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
