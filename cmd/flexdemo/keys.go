package main

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the demo's keybindings. Structural keys reshape the
// container through the ReactiveNode; data keys only update the
// existing subtree.
type keyMap struct {
	Axis       key.Binding
	Cross      key.Binding
	Main       key.Binding
	Fill       key.Binding
	Spacers    key.Binding
	SpacerUp   key.Binding
	SpacerDown key.Binding
	FixMinor   key.Binding
	FixMajor   key.Binding
	Debug      key.Binding

	Enabled    key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding

	Help key.Binding
	Quit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Axis:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "row/column")),
		Cross:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cross align")),
		Main:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "main align")),
		Fill:       key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fill main axis")),
		Spacers:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "spacer mode")),
		SpacerUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "spacer size up")),
		SpacerDown: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "spacer size down")),
		FixMinor:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "fix minor axis")),
		FixMajor:   key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "fix major axis")),
		Debug:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "debug overlay")),
		Enabled:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "toggle demo")),
		VolumeUp:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "volume up")),
		VolumeDown: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "volume down")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Axis, k.Cross, k.Main, k.Spacers, k.Debug, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Axis, k.Cross, k.Main, k.Fill},
		{k.Spacers, k.SpacerUp, k.SpacerDown, k.FixMinor, k.FixMajor, k.Debug},
		{k.Enabled, k.VolumeUp, k.VolumeDown, k.Quit},
	}
}
