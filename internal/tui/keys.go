package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the key bindings of every screen
type keyMap struct {
	Quit   key.Binding
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	New    key.Binding
	Reload key.Binding
	Back   key.Binding
	Submit key.Binding
	Team   key.Binding
	Edit   key.Binding
	Remove key.Binding
	Delete key.Binding

	// Modal
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Dismiss key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "sair")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "acima")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "abaixo")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "abrir turma")),
		New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "criar nova turma")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recarregar")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "voltar")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirmar")),
		Team:   key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "trocar time")),
		Edit:   key.NewBinding(key.WithKeys("a", "i"), key.WithHelp("a", "adicionar pessoa")),
		Remove: key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remover pessoa")),
		Delete: key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "remover turma")),

		Left:    key.NewBinding(key.WithKeys("left", "h", "shift+tab")),
		Right:   key.NewBinding(key.WithKeys("right", "l", "tab")),
		Confirm: key.NewBinding(key.WithKeys("enter")),
		Dismiss: key.NewBinding(key.WithKeys("esc")),
	}
}
