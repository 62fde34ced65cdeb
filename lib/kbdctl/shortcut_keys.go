package kbdctl

import (
	"github.com/learnopengl/learnopengl/lib/log"
)

// Key uses GLFW's key codes.
type Key int

const (
	KeyEscape Key = 256
)

// Keyboard is polled once per frame.
type Keyboard interface {
	KeyDown(key Key) bool
	SetShouldClose(value bool)
}

// ProcessInput requests the window to close while Escape is held. It
// reports whether it did so.
func ProcessInput(kb Keyboard) bool {
	if kb.KeyDown(KeyEscape) {
		log.Module("kbdctl").Debug("escape pressed, closing")
		kb.SetShouldClose(true)
		return true
	}
	return false
}
