package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Run    key.Binding
	Pause  key.Binding
	Reset  key.Binding
	Back   key.Binding
	Fwd    key.Binding
	Faster key.Binding
	Slower key.Binding
	Input  key.Binding
	Bars   key.Binding
	Deck   key.Binding
	Preset key.Binding
	Theme  key.Binding
	Exit   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Run:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Pause:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Back:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "step back")),
		Fwd:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "step")),
		Faster: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		Slower: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
		Input:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "edit values")),
		Bars:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bars")),
		Deck:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "theory")),
		Preset: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preset")),
		Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Exit:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Pause, k.Reset, k.Back, k.Fwd, k.Input, k.Deck, k.Exit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run, k.Pause, k.Reset, k.Back, k.Fwd},
		{k.Faster, k.Slower, k.Input, k.Preset},
		{k.Bars, k.Deck, k.Theme, k.Help},
		{k.Exit, k.Quit},
	}
}

// menuKeys is the help shown on the lesson menu.
type menuKeys struct{ keyMap }

func (k menuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Run, k.Theme, k.Quit}
}

func (k menuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
