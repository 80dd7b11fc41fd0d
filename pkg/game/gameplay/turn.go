package gameplay

import (
	"github.com/sirupsen/logrus"

	"darkstation/pkg/engine/logger"
	"darkstation/pkg/engine/world"
	"darkstation/pkg/game/ai"
	"darkstation/pkg/game/combat"
	"darkstation/pkg/game/config"
	"darkstation/pkg/game/state"
)

// AdvanceTurn runs one full turn: turrets fire, drones perceive, decide and
// move, then the player's view is refreshed. The turn counter advances and
// the win/lose rules are checked. Finished games do not advance.
func AdvanceTurn(g *state.Game) {
	if g.Status != state.StatusRunning {
		return
	}

	runTurrets(g)
	ai.Run(g)
	RefreshVisibility(g)

	removed := g.RemoveDead()
	g.Turn++
	checkRules(g)

	logger.Component("gameplay").WithFields(logrus.Fields{
		"turn":    g.Turn,
		"hp":      g.Player.HP(),
		"removed": removed,
		"status":  g.Status.String(),
	}).Debug("Turn advanced.")
}

// runTurrets lets every turret shoot at the player if it has a clear line
func runTurrets(g *state.Game) {
	player := g.Player
	rangeLimit := g.Config.Get(config.TurretRange)

	for _, turret := range g.Turrets() {
		if turret.Disabled {
			if turret.TickDisabled() {
				logMessage(g, "A turret powers back on!")
			}
			continue
		}
		if player == nil || player.Dead {
			continue
		}
		if world.CanSee(g.Grid, turret.Pos, player.Pos, rangeLimit) {
			combat.ResolveAttack(g, turret, player)
		}
	}
}

// RefreshVisibility recomputes the player's field of view and adds it to the
// explored overlay
func RefreshVisibility(g *state.Game) {
	if g.Player == nil {
		return
	}
	radius := g.Config.Get(config.PlayerFOVRadius)
	g.UpdateVisibility(world.ComputeFOV(g.Grid, g.Player.Pos.X, g.Player.Pos.Y, radius))
}

func checkRules(g *state.Game) {
	if g.Rules == nil {
		return
	}
	status, err := g.Rules.Outcome(g)
	if err != nil {
		logger.Component("gameplay").WithError(err).Warn("Rule evaluation failed.")
		return
	}
	if status == g.Status {
		return
	}
	g.Status = status
	switch status {
	case state.StatusWon:
		logMessage(g, "The airlock cycles. You made it off the station.")
	case state.StatusLost:
		logMessage(g, "Your vision fades. The station claims another scavenger.")
	}
	logger.Component("gameplay").WithField("turn", g.Turn).Infof("Game over: %s.", status)
}
