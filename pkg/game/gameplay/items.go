package gameplay

import (
	"github.com/zyedidia/generic/mapset"

	"darkstation/pkg/engine/world"
	"darkstation/pkg/game/config"
	"darkstation/pkg/game/entities"
	"darkstation/pkg/game/state"
)

// UseMedGel heals the player, capped at max hp. Returns true if a turn was taken.
func UseMedGel(g *state.Game) bool {
	player := g.Player
	if player == nil || player.Dead || !player.HasStats() {
		return false
	}
	if player.Inventory.Count(entities.ItemMedGel) <= 0 {
		logMessage(g, "You don't have any Med-gels.")
		return false
	}
	if player.Stats.HP >= player.Stats.MaxHP {
		logMessage(g, "You are already at full health.")
		return false
	}

	player.Inventory.Take(entities.ItemMedGel)
	hp := min(player.Stats.HP+g.Config.Get(config.MedGelHeal), player.Stats.MaxHP)
	player.ReplaceStats(player.Stats.WithHP(hp))
	logMessage(g, "You used a Med-gel and recovered some HP.")
	return true
}

// ToggleWeapon switches between the pistol and bump attacks. It never takes a turn.
func ToggleWeapon(g *state.Game) {
	player := g.Player
	if player == nil || player.Dead {
		return
	}
	if player.Weapon == entities.WeaponPistol {
		player.Weapon = entities.WeaponDefault
		logMessage(g, "Switched to default mode.")
		return
	}
	if player.Inventory.Count(entities.ItemPistol) <= 0 {
		logMessage(g, "You don't have a pistol.")
		return
	}
	player.Weapon = entities.WeaponPistol
	logMessage(g, "Pistol equipped.")
}

// UseEMP detonates an EMP charge at target, disabling every turret and drone
// within the configured radius. Returns true if a turn was taken.
func UseEMP(g *state.Game, target world.Point) bool {
	player := g.Player
	if player == nil || player.Dead {
		return false
	}
	if !player.Inventory.Take(entities.ItemEMPCharge) {
		logMessage(g, "You don't have any EMP charges.")
		return false
	}
	logMessage(g, "You used an EMP charge.")

	radius := g.Config.Get(config.EMPRadius)
	turns := g.Config.Get(config.EMPTurns)
	hit := mapset.New[int]()
	for _, a := range g.Actors {
		if a.Dead || a.IsPlayer() {
			continue
		}
		if a.Pos.DistSq(target) <= radius*radius {
			a.Disable(turns)
			if a.Behavior != nil {
				a.Behavior.ClearPath()
			}
			hit.Put(a.ID)
		}
	}
	if hit.Size() > 0 {
		logMessage(g, "An enemy system was disabled!")
	}
	return true
}
