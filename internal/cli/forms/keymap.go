package forms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

// KeyMap returns the default huh keymap with esc added to quit
func KeyMap() *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	keymap.Quit = key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "cancel"),
	)

	return keymap
}
