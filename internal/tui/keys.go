package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Up        key.Binding
	Down      key.Binding
	High      key.Binding
	Medium    key.Binding
	Low       key.Binding
	Clear     key.Binding
	Next      key.Binding
	Prev      key.Binding
	Toggle    key.Binding
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Dismiss   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		High:      key.NewBinding(key.WithKeys("h", "3"), key.WithHelp("h", "high")),
		Medium:    key.NewBinding(key.WithKeys("m", "2"), key.WithHelp("m", "medium")),
		Low:       key.NewBinding(key.WithKeys("l", "1"), key.WithHelp("l", "low")),
		Clear:     key.NewBinding(key.WithKeys("x", "backspace", "delete"), key.WithHelp("x", "clear")),
		Next:      key.NewBinding(key.WithKeys("n", "enter", "right"), key.WithHelp("n", "next project")),
		Prev:      key.NewBinding(key.WithKeys("p", "left"), key.WithHelp("p", "previous project")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "fund")),
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		Dismiss:   key.NewBinding(key.WithKeys("enter", "esc", "q"), key.WithHelp("enter", "close")),
	}
}

// helpLine renders "[k] desc" pairs the way the footer shows them.
func helpLine(bindings ...key.Binding) string {
	out := ""
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if out != "" {
			out += "  "
		}
		out += "[" + h.Key + "] " + h.Desc
	}
	return out
}
