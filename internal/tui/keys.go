// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	capture  key.Binding
	switchCm key.Binding
	sync     key.Binding
	download key.Binding
	share    key.Binding
	delete   key.Binding
	copy     key.Binding
	info     key.Binding
	esc      key.Binding
	quit     key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev")),
	down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
	capture:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "capture")),
	switchCm: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "switch camera")),
	sync:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "sync")),
	download: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "download")),
	share:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "share")),
	delete:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
	copy:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "copy path")),
	info:     key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "about")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	yes:      key.NewBinding(key.WithKeys("y", "enter")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
