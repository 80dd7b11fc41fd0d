package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"darkstation/pkg/engine/world"
	"darkstation/pkg/game/combat"
	"darkstation/pkg/game/config"
	"darkstation/pkg/game/state"
)

// MovePlayer moves the player one cell. An actor with stats in the way is
// attacked instead. Returns true if a turn was taken; bumping into anything
// that cannot be entered costs nothing.
func MovePlayer(g *state.Game, d world.Direction) bool {
	player := g.Player
	if player == nil || player.Dead {
		return false
	}

	dest := player.Pos.Step(d)
	if !g.Grid.IsValidPosition(dest.X, dest.Y) {
		return false
	}

	if target := g.ActorAt(dest); target != nil && target.HasStats() {
		combat.ResolveAttack(g, player, target)
		return true
	}

	if !g.Grid.AtPoint(dest).Walkable() {
		g.AddCombat(gotext.Get("You bump into the wall."))
		return false
	}

	player.Pos = dest
	if g.Grid.AtPoint(dest).IsVent() {
		logMessage(g, "You squeeze into the vent.")
	}
	return true
}

// Peek looks down a corridor without moving, revealing up to the configured
// range or the first opaque cell. Returns true if a turn was taken.
func Peek(g *state.Game, d world.Direction) bool {
	if g.Player == nil || g.Player.Dead || !d.IsValid() {
		return false
	}
	ray := world.PeekRay(g.Grid, g.Player.Pos, d, g.Config.Get(config.PlayerPeekRange))
	g.Reveal(ray)
	logMessage(g, "You peek %s.", d.String())
	return true
}

// logMessage adds a translated, formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(gotext.Get(msg, a...))
}
