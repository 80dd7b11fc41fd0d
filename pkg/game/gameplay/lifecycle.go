// Package gameplay provides the turn controller and the player's actions.
package gameplay

import (
	"github.com/sirupsen/logrus"

	"darkstation/pkg/engine/logger"
	"darkstation/pkg/engine/world"
	"darkstation/pkg/game/config"
	"darkstation/pkg/game/entities"
	"darkstation/pkg/game/generator"
	"darkstation/pkg/game/state"
)

// terminalLore is the pool of log entries terminals are loaded with
var terminalLore = []string{
	"Log 481: The drones are getting smarter...",
	"Log 502: Turret calibration drifted again. Maintenance says it's fine.",
	"Log 517: Someone keeps crawling around in the vents at night.",
	"Log 530: Evacuation order received. Airlock cycling is manual only.",
}

// NewGame generates a level from the seed and places the player, adversaries
// and pickups. A nil cfg uses the defaults.
func NewGame(seed int64, cfg config.Table) *state.Game {
	g := state.NewGame(seed, cfg)
	cfg = g.Config

	gen := &generator.BSPGenerator{
		Crates:    cfg.Get(config.GenCrates),
		Terminals: cfg.Get(config.GenTerminals),
		Bulkheads: cfg.Get(config.GenBulkheads),
		Vents:     cfg.Get(config.GenVents),
	}
	level := gen.Generate(g.Rng, cfg.Get(config.MapWidth), cfg.Get(config.MapHeight))
	g.SetGrid(level.Grid)
	g.Rooms = level.Rooms
	g.Rules = DefaultRules()

	placePlayer(g, level.Start)
	placeAdversariesAndItems(g, level)

	for _, p := range level.Crates {
		g.AddPickup(&entities.Pickup{ID: g.NextID(), Kind: entities.PickupCrate, Pos: p})
	}
	for _, p := range level.Terminals {
		lore := terminalLore[g.Rng.Intn(len(terminalLore))]
		g.AddPickup(&entities.Pickup{ID: g.NextID(), Kind: entities.PickupTerminal, Pos: p, Lore: lore})
	}

	RefreshVisibility(g)

	logMessage(g, "Welcome aboard the station.")
	logMessage(g, "Salvage %d crates and return to the airlock.", cfg.Get(config.WinConditionCrate))

	logger.Component("gameplay").WithFields(logrus.Fields{
		"seed":    seed,
		"rooms":   len(g.Rooms),
		"drones":  len(g.Drones()),
		"turrets": len(g.Turrets()),
		"pickups": len(g.Pickups),
	}).Info("New game started.")

	return g
}

func placePlayer(g *state.Game, start world.Point) {
	cfg := g.Config
	player := entities.NewPlayer(g.NextID(), start, entities.Stats{
		HP:      cfg.Get(config.PlayerHP),
		MaxHP:   cfg.Get(config.PlayerMaxHP),
		Attack:  cfg.Get(config.PlayerAttack),
		Evasion: cfg.Get(config.PlayerEvasion),
	})
	player.Inventory.Add(entities.ItemEMPCharge, cfg.Get(config.PlayerEMPCharge))
	player.Inventory.Add(entities.ItemMedGel, cfg.Get(config.PlayerMedGel))
	player.Inventory.Add(entities.ItemAmmo, cfg.Get(config.PlayerAmmo))
	player.Inventory.Add(entities.ItemPistol, cfg.Get(config.PlayerPistol))
	if player.Inventory.Count(entities.ItemPistol) > 0 {
		player.Weapon = entities.WeaponPistol
	}
	g.AddActor(player)
}

// placeAdversariesAndItems walks the shuffled rooms other than the start room,
// one room per placement: drones, turrets, med-gels, then EMP charges.
// Rooms are reused in order once every room has been visited.
func placeAdversariesAndItems(g *state.Game, level *generator.Level) {
	var rooms []generator.Room
	for _, r := range level.Rooms {
		if !r.Contains(level.Start) {
			rooms = append(rooms, r)
		}
	}
	if len(rooms) == 0 {
		logger.Component("gameplay").Warn("No rooms besides the start room, nothing placed.")
		return
	}
	g.Rng.Shuffle(len(rooms), func(i, j int) {
		rooms[i], rooms[j] = rooms[j], rooms[i]
	})

	cfg := g.Config
	next := 0
	spot := func() (world.Point, bool) {
		r := rooms[next%len(rooms)]
		next++
		return freeSpot(g, r)
	}

	droneStats := entities.Stats{
		HP:      cfg.Get(config.DroneHP),
		MaxHP:   cfg.Get(config.DroneMaxHP),
		Attack:  cfg.Get(config.DroneAttack),
		Evasion: cfg.Get(config.DroneEvasion),
	}
	for i := 0; i < cfg.Get(config.DroneCount); i++ {
		if p, ok := spot(); ok {
			g.AddActor(entities.NewDrone(g.NextID(), p, droneStats))
		}
	}

	turretStats := entities.Stats{
		HP:      cfg.Get(config.TurretHP),
		MaxHP:   cfg.Get(config.TurretMaxHP),
		Attack:  cfg.Get(config.TurretAttack),
		Evasion: cfg.Get(config.TurretEvasion),
	}
	for i := 0; i < cfg.Get(config.TurretCount); i++ {
		if p, ok := spot(); ok {
			g.AddActor(entities.NewTurret(g.NextID(), p, turretStats))
		}
	}

	for i := 0; i < cfg.Get(config.MedGelCount); i++ {
		if p, ok := spot(); ok {
			g.AddPickup(&entities.Pickup{ID: g.NextID(), Kind: entities.PickupMedGel, Pos: p})
		}
	}
	for i := 0; i < cfg.Get(config.EMPChargeCount); i++ {
		if p, ok := spot(); ok {
			g.AddPickup(&entities.Pickup{ID: g.NextID(), Kind: entities.PickupEMPCharge, Pos: p})
		}
	}
}

// freeSpot returns the room center if it is open floor with no actor on it,
// otherwise the first such cell of the room interior
func freeSpot(g *state.Game, r generator.Room) (world.Point, bool) {
	open := func(p world.Point) bool {
		return g.Grid.AtPoint(p) == world.TileFloor && g.ActorAt(p) == nil
	}
	if c := r.Center(); open(c) {
		return c, true
	}
	for y := r.Y + 1; y < r.Y+r.Height-1; y++ {
		for x := r.X + 1; x < r.X+r.Width-1; x++ {
			if p := world.Pt(x, y); open(p) {
				return p, true
			}
		}
	}
	return world.Point{}, false
}
