// Package combat resolves attacks between actors.
package combat

import (
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"darkstation/pkg/engine/logger"
	"darkstation/pkg/game/config"
	"darkstation/pkg/game/entities"
	"darkstation/pkg/game/state"
)

// ResolveAttack rolls one melee attack. It returns true on a hit.
// A player hiding on a vent is immune, and an attack where either side has no
// stats is rejected; both cases return false before any roll is made.
func ResolveAttack(g *state.Game, attacker, defender *entities.Actor) bool {
	if defender.IsPlayer() && g.Grid.AtPoint(defender.Pos).IsVent() {
		return false
	}
	if !attacker.HasStats() || !defender.HasStats() {
		return false
	}

	sides := g.Config.Get(config.DiceSides)
	if sides < 1 {
		sides = 1
	}
	roll := g.Rng.Intn(sides) + 1
	defense := g.Config.Get(config.BaseDefense) + defender.Stats.Evasion
	hit := roll+attacker.Stats.Attack > defense

	logger.Component("combat").WithFields(logrus.Fields{
		"attacker": attacker.Name(),
		"defender": defender.Name(),
		"roll":     roll,
		"defense":  defense,
		"hit":      hit,
	}).Debug("Attack resolved.")

	if !hit {
		report(g, gotext.Get("%s misses %s.", attacker.Name(), defender.Name()))
		return false
	}

	damage := g.Config.Get(config.MeleeDamage)
	report(g, gotext.Get("%s hits %s for %d damage.", attacker.Name(), defender.Name(), damage))
	ApplyDamage(g, defender, damage)
	return true
}

// ApplyDamage replaces the defender's stats with reduced hp and marks it dead
// at zero or below. Hp may go negative.
func ApplyDamage(g *state.Game, defender *entities.Actor, damage int) {
	if !defender.HasStats() {
		return
	}
	defender.ReplaceStats(defender.Stats.WithHP(defender.Stats.HP - damage))
	if defender.Stats.HP > 0 {
		return
	}

	defender.Dead = true
	report(g, gotext.Get("The %s is destroyed.", defender.Name()))
	logger.Component("combat").WithField("actor", defender.ID).Info("Actor destroyed.")
}

// report writes a line to both the message log and the combat log
func report(g *state.Game, msg string) {
	g.AddMessage(msg)
	g.AddCombat(msg)
}
