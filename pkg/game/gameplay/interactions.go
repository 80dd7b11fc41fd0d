package gameplay

import (
	"darkstation/pkg/engine/world"
	"darkstation/pkg/game/config"
	"darkstation/pkg/game/entities"
	"darkstation/pkg/game/state"
)

// Interact picks up items under the player, otherwise uses a crate or terminal
// the player is standing on, otherwise handles the first interactable
// neighbour in north, east, south, west order.
// Returns true if a turn was taken.
func Interact(g *state.Game) bool {
	player := g.Player
	if player == nil || player.Dead {
		return false
	}

	if PickUpItemsOnFloor(g) {
		return true
	}
	if interactAt(g, player.Pos) {
		return true
	}

	for _, d := range world.AllDirections() {
		if interactAt(g, player.Pos.Step(d)) {
			return true
		}
	}

	logMessage(g, "There is nothing to interact with here.")
	return false
}

// PickUpItemsOnFloor moves every carryable pickup on the player's cell into
// the inventory. Returns true if anything was picked up.
func PickUpItemsOnFloor(g *state.Game) bool {
	picked := false
	for _, pk := range g.PickupsAt(g.Player.Pos) {
		info := pk.Info()
		if !info.Carryable {
			continue
		}
		g.Player.Inventory.Add(info.Item, 1)
		g.RemovePickup(pk)
		logMessage(g, "You picked up a %s.", info.Name)
		picked = true
	}
	return picked
}

func interactAt(g *state.Game, p world.Point) bool {
	switch g.Grid.AtPoint(p) {
	case world.TileDoorClosed:
		g.Grid.SetPoint(p, world.TileDoorOpen)
		logMessage(g, "You open the door.")
		g.EmitNoise(p, g.Config.Get(config.NoiseDoor))
		return true
	case world.TileBulkheadClosed:
		logMessage(g, "The bulkhead is sealed tight. It won't budge.")
		g.EmitNoise(p, g.Config.Get(config.NoiseBulkhead))
		return true
	}

	for _, pk := range g.PickupsAt(p) {
		switch pk.Kind {
		case entities.PickupCrate:
			salvageCrate(g, pk)
			return true
		case entities.PickupTerminal:
			useTerminal(g, pk)
			return true
		}
	}
	return false
}

func salvageCrate(g *state.Game, crate *entities.Pickup) {
	g.RemovePickup(crate)
	g.CratesCollected++
	logMessage(g, "You salvaged parts from the crate. (%d/%d)", g.CratesCollected, g.Config.Get(config.WinConditionCrate))

	if g.Rng.Intn(100) < g.Config.Get(config.CrateAmmoChance) {
		bonus := g.Config.Get(config.CrateAmmoBonus)
		g.Player.Inventory.Add(entities.ItemAmmo, bonus)
		logMessage(g, "You found a spare pistol magazine! [+%d Ammo]", bonus)
	}
}

func useTerminal(g *state.Game, terminal *entities.Pickup) {
	if terminal.Used {
		logMessage(g, "The terminal screen is idle.")
		return
	}

	logMessage(g, "Terminal: %s", terminal.Lore)
	if g.Rng.Intn(100) < g.Config.Get(config.TerminalHintPct) {
		giveTerminalHint(g, terminal.Pos)
	} else {
		logMessage(g, "The terminal's diagnostic scan finds nothing of interest.")
	}
	terminal.Used = true
}
