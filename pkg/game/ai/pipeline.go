package ai

import (
	"darkstation/pkg/game/state"
)

// Run executes perception, decision and movement for every drone, in that order
func Run(g *state.Game) {
	percepts := Perceive(g)
	Decide(g, percepts)
	Move(g, percepts)
}
