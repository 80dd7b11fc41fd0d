package combat

import (
	"github.com/leonelquinteros/gotext"

	"darkstation/pkg/engine/world"
	"darkstation/pkg/game/config"
	"darkstation/pkg/game/entities"
	"darkstation/pkg/game/state"
)

// Fire shoots the player's pistol in direction d. It returns true if a turn
// was spent. Without an equipped pistol or ammo nothing is consumed and no
// noise is made.
func Fire(g *state.Game, d world.Direction) bool {
	shooter := g.Player
	if shooter == nil || shooter.Dead || !d.IsValid() {
		return false
	}
	if !shooter.Armed() {
		g.AddMessage(gotext.Get("Pistol not equipped."))
		return false
	}
	if !shooter.Inventory.Take(entities.ItemAmmo) {
		g.AddMessage(gotext.Get("Click. Out of ammo."))
		return false
	}

	dx, dy := d.Delta()
	rangeLimit := g.Config.Get(config.RangedRange)
	damage := g.Config.Get(config.RangedDamage)

	g.AimRay = g.AimRay[:0]
	outcome := gotext.Get("The shot went into the darkness.")
	var target *entities.Actor
	p := shooter.Pos
	for i := 0; i < rangeLimit; i++ {
		p = p.Add(dx, dy)
		if !g.Grid.IsValidPosition(p.X, p.Y) {
			break
		}
		g.AimRay = append(g.AimRay, p)

		if a := g.ActorAt(p); a != nil && !a.IsPlayer() && a.HasStats() {
			target = a
			outcome = gotext.Get("You hit the %s for %d damage!", a.Name(), damage)
			break
		}
		if t := g.Grid.AtPoint(p); !t.Transparent() {
			outcome = gotext.Get("The shot hit a %s.", t.String())
			break
		}
	}

	if target != nil {
		report(g, outcome)
		ApplyDamage(g, target, damage)
	} else {
		g.AddMessage(outcome)
	}

	g.EmitNoise(shooter.Pos, g.Config.Get(config.NoiseGunfire))
	return true
}
