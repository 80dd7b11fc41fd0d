// Package renderer defines the presentation boundary of the game.
package renderer

import (
	"darkstation/pkg/engine/input"
	"darkstation/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleFloor
	StyleRemembered
	StyleDoor
	StyleVent
	StyleAirlock
	StylePickup
	StylePlayer
	StyleDrone
	StyleDroneAlert
	StyleTurret
	StyleDisabled
	StyleAim
	StyleDenied
	StyleSubtle
)

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init initializes the renderer (colors etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame: status, map, messages and prompt
	RenderFrame(g *state.Game)

	// GetIntent blocks for a key press and maps it through the bindings
	GetIntent() (input.Intent, error)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)

	// GetViewportSize returns the current viewport dimensions (rows, cols)
	GetViewportSize() (rows, cols int)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the current renderer's display
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(g *state.Game) {
	if Current != nil {
		Current.RenderFrame(g)
	}
}

// ShowMessage displays a message with the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
