package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the mixer understands. Help output is generated
// from it.
type keyMap struct {
	NextTab    key.Binding
	PrevTab    key.Binding
	Up         key.Binding
	Down       key.Binding
	ToggleSel  key.Binding
	TogglePlay key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	Mute       key.Binding
	Solo       key.Binding
	SelectAll  key.Binding
	ClearSel   key.Binding
	MasterPlay key.Binding
	MasterUp   key.Binding
	MasterDown key.Binding
	MasterMute key.Binding
	MasterMax  key.Binding
	ResetAll   key.Binding
	Filter     key.Binding
	Timer      key.Binding
	Presets    key.Binding
	SavePreset key.Binding
	CopyMix    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTab:    key.NewBinding(key.WithKeys("tab", "]"), key.WithHelp("tab", "next category")),
		PrevTab:    key.NewBinding(key.WithKeys("shift+tab", "["), key.WithHelp("shift+tab", "prev category")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		ToggleSel:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "select/deselect")),
		TogglePlay: key.NewBinding(key.WithKeys("enter", "p"), key.WithHelp("enter", "play/stop sound")),
		VolumeUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "louder")),
		VolumeDown: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "quieter")),
		Mute:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute sound")),
		Solo:       key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "solo sound")),
		SelectAll:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		ClearSel:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear selection")),
		MasterPlay: key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "play/pause mix")),
		MasterUp:   key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "master louder")),
		MasterDown: key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "master quieter")),
		MasterMute: key.NewBinding(key.WithKeys("M"), key.WithHelp("M", "master mute")),
		MasterMax:  key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "master full")),
		ResetAll:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset all")),
		Filter:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "find sound")),
		Timer:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "timer")),
		Presets:    key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "presets")),
		SavePreset: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save preset")),
		CopyMix:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy mix")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleSel, k.TogglePlay, k.MasterPlay, k.Timer, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab, k.Filter},
		{k.ToggleSel, k.TogglePlay, k.VolumeUp, k.VolumeDown, k.Mute, k.Solo},
		{k.MasterPlay, k.MasterUp, k.MasterDown, k.MasterMute, k.MasterMax},
		{k.SelectAll, k.ClearSel, k.ResetAll, k.SavePreset, k.Presets},
		{k.Timer, k.CopyMix, k.Help, k.Quit},
	}
}
