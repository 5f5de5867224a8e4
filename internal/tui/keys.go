package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	ForceQuit    key.Binding
	Quit         key.Binding
	Up           key.Binding
	Down         key.Binding
	SwitchPane   key.Binding
	Add          key.Binding
	Complete     key.Binding
	Delete       key.Binding
	ClearHistory key.Binding
	Detail       key.Binding
	Help         key.Binding
}

var keys = keyMap{
	ForceQuit:    key.NewBinding(key.WithKeys("ctrl+c")),
	Quit:         key.NewBinding(key.WithKeys("q", keyEsc), key.WithHelp("q", "quit")),
	Up:           key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/up", "move up")),
	Down:         key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/down", "move down")),
	SwitchPane:   key.NewBinding(key.WithKeys("tab", "h", "l", "left", "right"), key.WithHelp("tab", "pending / history")),
	Add:          key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add task")),
	Complete:     key.NewBinding(key.WithKeys(" ", "space", "c"), key.WithHelp("space/c", "complete task")),
	Delete:       key.NewBinding(key.WithKeys("d", "D", "delete"), key.WithHelp("d", "delete task")),
	ClearHistory: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear history")),
	Detail:       key.NewBinding(key.WithKeys(keyEnter), key.WithHelp("enter", "task details")),
	Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
}

// help lists the bindings shown on the help screen.
func (k keyMap) help() []key.Binding {
	return []key.Binding{
		k.Add, k.Complete, k.Delete, k.ClearHistory,
		k.Up, k.Down, k.SwitchPane, k.Detail, k.Help, k.Quit,
	}
}
