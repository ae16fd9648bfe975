// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up    key.Binding
	down  key.Binding
	enter key.Binding
	esc   key.Binding
	quit  key.Binding
	eof   key.Binding
	clear key.Binding
	yes   key.Binding
	no    key.Binding
}

var keys = keyMap{
	up:    key.NewBinding(key.WithKeys("up", "ctrl+p")),
	down:  key.NewBinding(key.WithKeys("down", "ctrl+n")),
	enter: key.NewBinding(key.WithKeys("enter", "ctrl+j")),
	esc:   key.NewBinding(key.WithKeys("esc")),
	quit:  key.NewBinding(key.WithKeys("ctrl+c")),
	eof:   key.NewBinding(key.WithKeys("ctrl+d")),
	clear: key.NewBinding(key.WithKeys("ctrl+l")),
	yes:   key.NewBinding(key.WithKeys("y", "Y")),
	no:    key.NewBinding(key.WithKeys("n", "N")),
}
