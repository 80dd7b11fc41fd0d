package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"darkstation/pkg/engine/world"
	"darkstation/pkg/game/config"
	"darkstation/pkg/game/entities"
	"darkstation/pkg/game/state"
)

func newCombatGame(t *testing.T, seed int64, rows ...string) *state.Game {
	t.Helper()
	g := state.NewGame(seed, config.Defaults())
	grid, err := world.ParseGrid(rows...)
	require.NoError(t, err)
	g.SetGrid(grid)
	return g
}

func corridor(t *testing.T, seed int64) *state.Game {
	return newCombatGame(t, seed,
		"##########",
		"#.......v#",
		"##########",
	)
}

func armedPlayer(g *state.Game, at world.Point, ammo int) *entities.Actor {
	player := entities.NewPlayer(g.NextID(), at, entities.Stats{HP: 5})
	player.Inventory.Add(entities.ItemPistol, 1)
	player.Inventory.Add(entities.ItemAmmo, ammo)
	player.Weapon = entities.WeaponPistol
	g.AddActor(player)
	return player
}

func TestResolveAttack_GuaranteedHit(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := corridor(t, seed)
		attacker := entities.NewDrone(g.NextID(), world.Pt(1, 1), entities.Stats{HP: 5, MaxHP: 5, Attack: 100})
		defender := entities.NewDrone(g.NextID(), world.Pt(2, 1), entities.Stats{HP: 50, MaxHP: 50, Evasion: 0})

		for i := 0; i < 10; i++ {
			assert.True(t, ResolveAttack(g, attacker, defender))
		}
		assert.Equal(t, 40, defender.HP())
		assert.Len(t, g.CombatLog, 10)
	}
}

func TestResolveAttack_GuaranteedMiss(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := corridor(t, seed)
		attacker := entities.NewDrone(g.NextID(), world.Pt(1, 1), entities.Stats{HP: 5, MaxHP: 5, Attack: 0})
		defender := entities.NewDrone(g.NextID(), world.Pt(2, 1), entities.Stats{HP: 5, MaxHP: 5, Evasion: 100})

		for i := 0; i < 10; i++ {
			assert.False(t, ResolveAttack(g, attacker, defender))
		}
		assert.Equal(t, 5, defender.HP())
		assert.Equal(t, "Drone misses Drone.", g.CombatLog[len(g.CombatLog)-1])
	}
}

func TestResolveAttack_PlayerOnVentIsImmune(t *testing.T) {
	g := corridor(t, 3)
	player := entities.NewPlayer(g.NextID(), world.Pt(8, 1), entities.Stats{HP: 1, MaxHP: 1})
	g.AddActor(player)
	drone := entities.NewDrone(g.NextID(), world.Pt(7, 1), entities.Stats{HP: 1, Attack: 1000})

	for i := 0; i < 20; i++ {
		assert.False(t, ResolveAttack(g, drone, player))
	}
	assert.Equal(t, 1, player.HP())
	assert.False(t, player.Dead)
	assert.Empty(t, g.CombatLog, "no roll is made")
}

func TestResolveAttack_MissingStats(t *testing.T) {
	g := corridor(t, 1)
	attacker := &entities.Actor{Kind: entities.KindDrone}
	defender := entities.NewDrone(g.NextID(), world.Pt(2, 1), entities.Stats{HP: 1})

	assert.False(t, ResolveAttack(g, attacker, defender))
	assert.False(t, ResolveAttack(g, defender, attacker))
	assert.Empty(t, g.Messages)
}

func TestResolveAttack_KillsAndReplacesStats(t *testing.T) {
	g := corridor(t, 1)
	attacker := entities.NewDrone(g.NextID(), world.Pt(1, 1), entities.Stats{HP: 5, Attack: 100})
	defender := entities.NewTurret(g.NextID(), world.Pt(2, 1), entities.Stats{HP: 1, MaxHP: 6})
	before := defender.Stats

	require.True(t, ResolveAttack(g, attacker, defender))
	assert.True(t, defender.Dead)
	assert.Equal(t, 0, defender.HP())
	assert.Equal(t, 1, before.HP, "stats are replaced, not mutated")
	assert.Equal(t, "The Turret is destroyed.", g.Messages[len(g.Messages)-1])
}

func TestFire_OutOfAmmo(t *testing.T) {
	g := corridor(t, 1)
	player := armedPlayer(g, world.Pt(1, 1), 0)
	drone := entities.NewDrone(g.NextID(), world.Pt(3, 1), entities.Stats{HP: 4})
	g.AddActor(drone)

	assert.False(t, Fire(g, world.East))
	assert.Equal(t, 0, player.Inventory.Count(entities.ItemAmmo))
	assert.Equal(t, 4, drone.HP())
	assert.Empty(t, g.Noise)
	assert.Equal(t, "Click. Out of ammo.", g.Messages[len(g.Messages)-1])
}

func TestFire_HitsFirstTarget(t *testing.T) {
	g := corridor(t, 1)
	player := armedPlayer(g, world.Pt(1, 1), 2)
	near := entities.NewDrone(g.NextID(), world.Pt(3, 1), entities.Stats{HP: 4})
	far := entities.NewDrone(g.NextID(), world.Pt(4, 1), entities.Stats{HP: 4})
	g.AddActor(near)
	g.AddActor(far)

	assert.True(t, Fire(g, world.East))
	assert.Equal(t, 1, player.Inventory.Count(entities.ItemAmmo))
	assert.Equal(t, 2, near.HP())
	assert.Equal(t, 4, far.HP())
	assert.Equal(t, []world.Point{world.Pt(2, 1), world.Pt(3, 1)}, g.AimRay)
	assert.Equal(t, []state.NoiseEvent{{At: world.Pt(1, 1), Radius: 12}}, g.Noise)
	assert.Contains(t, g.CombatLog, "You hit the Drone for 2 damage!")
}

func TestFire_HitsWall(t *testing.T) {
	g := corridor(t, 1)
	player := armedPlayer(g, world.Pt(1, 1), 1)

	assert.True(t, Fire(g, world.North))
	assert.Equal(t, 0, player.Inventory.Count(entities.ItemAmmo))
	assert.Contains(t, g.Messages[len(g.Messages)-1], "hit a wall")
	assert.Len(t, g.Noise, 1)
}

func TestFire_IntoDarkness(t *testing.T) {
	g := newCombatGame(t, 1,
		"###########",
		"#.........#",
		"###########",
	)
	player := armedPlayer(g, world.Pt(1, 1), 1)

	assert.True(t, Fire(g, world.East))
	assert.Len(t, g.AimRay, 6)
	assert.Equal(t, "The shot went into the darkness.", g.Messages[len(g.Messages)-1])
	assert.Equal(t, 0, player.Inventory.Count(entities.ItemAmmo))
}

func TestFire_RequiresEquippedPistol(t *testing.T) {
	tests := []struct {
		name  string
		setup func(p *entities.Actor)
	}{
		{"default mode", func(p *entities.Actor) { p.Weapon = entities.WeaponDefault }},
		{"no pistol carried", func(p *entities.Actor) { p.Inventory.Take(entities.ItemPistol) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := corridor(t, 1)
			player := armedPlayer(g, world.Pt(1, 1), 3)
			tt.setup(player)
			drone := entities.NewDrone(g.NextID(), world.Pt(3, 1), entities.Stats{HP: 4})
			g.AddActor(drone)

			assert.False(t, Fire(g, world.East))
			assert.Equal(t, 3, player.Inventory.Count(entities.ItemAmmo))
			assert.Equal(t, 4, drone.HP())
			assert.Empty(t, g.Noise)
			assert.Empty(t, g.AimRay)
			assert.Equal(t, "Pistol not equipped.", g.Messages[len(g.Messages)-1])
		})
	}
}
