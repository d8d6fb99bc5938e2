package tui

import "github.com/charmbracelet/bubbles/key"

type pickerKeyMap struct {
	NextCategory key.Binding
	PrevCategory key.Binding
	Up           key.Binding
	Down         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Home         key.Binding
	End          key.Binding
	Select       key.Binding
	Interact     key.Binding
	Quit         key.Binding
}

func defaultPickerKeys() pickerKeyMap {
	return pickerKeyMap{
		NextCategory: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next category")),
		PrevCategory: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev category")),
		Up:           key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		// home/end stay with the search input's cursor.
		Home: key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "first")),
		End:  key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "last")),
		Select:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Interact:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "allow interaction")),
		Quit:         key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextCategory, k.Up, k.Down, k.Select, k.Interact, k.Quit}
}

// FullHelp lists every binding.
func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextCategory, k.PrevCategory, k.Select, k.Interact, k.Quit},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
	}
}
