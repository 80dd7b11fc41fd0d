package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"darkstation/pkg/engine/world"
	"darkstation/pkg/game/config"
	"darkstation/pkg/game/entities"
	"darkstation/pkg/game/state"
)

func newAIGame(t *testing.T, rows ...string) *state.Game {
	t.Helper()
	g := state.NewGame(7, config.Defaults())
	grid, err := world.ParseGrid(rows...)
	require.NoError(t, err)
	g.SetGrid(grid)
	return g
}

func addPlayer(g *state.Game, x, y int) *entities.Actor {
	p := entities.NewPlayer(g.NextID(), world.Pt(x, y), entities.Stats{HP: 10, MaxHP: 10, Attack: 2, Evasion: 2})
	g.AddActor(p)
	return p
}

func addDrone(g *state.Game, x, y int) *entities.Actor {
	d := entities.NewDrone(g.NextID(), world.Pt(x, y), entities.Stats{HP: 4, MaxHP: 4, Attack: 1, Evasion: 1})
	g.AddActor(d)
	return d
}

func TestPerceive_WallBlocksVision(t *testing.T) {
	g := newAIGame(t,
		"#######",
		"#..#..#",
		"#######",
	)
	addPlayer(g, 1, 1)
	drone := addDrone(g, 5, 1)

	percepts := Perceive(g)
	require.Len(t, percepts, 1)
	assert.False(t, percepts[0].CanSeePlayer)
	assert.Nil(t, percepts[0].LastKnown)

	g.Grid.Set(3, 1, world.TileFloor)
	percepts = Perceive(g)
	require.Len(t, percepts, 1)
	assert.True(t, percepts[0].CanSeePlayer)
	assert.Equal(t, world.Pt(1, 1), *percepts[0].LastKnown)
	assert.Equal(t, drone, percepts[0].Drone)
}

func TestPerceive_VisionRange(t *testing.T) {
	g := newAIGame(t,
		"##############",
		"#............#",
		"##############",
	)
	g.Config[config.VisionRange] = 3
	addPlayer(g, 1, 1)
	addDrone(g, 5, 1)

	assert.False(t, Perceive(g)[0].CanSeePlayer)
	g.Config[config.VisionRange] = 4
	assert.True(t, Perceive(g)[0].CanSeePlayer)
}

func TestPerceive_HearingClearsNoise(t *testing.T) {
	g := newAIGame(t,
		"##########",
		"#...#....#",
		"##########",
	)
	addPlayer(g, 1, 1)
	near := addDrone(g, 6, 1)
	far := addDrone(g, 8, 1)
	g.EmitNoise(world.Pt(3, 1), 3)

	percepts := Perceive(g)
	require.Len(t, percepts, 2)
	assert.Equal(t, near, percepts[0].Drone)
	require.NotNil(t, percepts[0].HeardNoise)
	assert.Equal(t, world.Pt(3, 1), *percepts[0].HeardNoise)
	assert.Nil(t, percepts[1].HeardNoise, "out of radius")
	assert.Equal(t, far, percepts[1].Drone)
	assert.Empty(t, g.Noise)

	percepts = Perceive(g)
	assert.Nil(t, percepts[0].HeardNoise, "noise lasts one pass")
}

func TestPerceive_DisabledDroneReboots(t *testing.T) {
	g := newAIGame(t,
		"#####",
		"#...#",
		"#####",
	)
	addPlayer(g, 1, 1)
	drone := addDrone(g, 3, 1)
	drone.Disable(2)

	assert.Empty(t, Perceive(g))
	assert.Empty(t, Perceive(g))
	assert.Equal(t, "A drone reboots.", g.Messages[len(g.Messages)-1])
	assert.Len(t, Perceive(g), 1)
}

func TestDecide_PatrolToChase(t *testing.T) {
	g := newAIGame(t,
		"######",
		"#....#",
		"######",
	)
	addPlayer(g, 1, 1)
	drone := addDrone(g, 4, 1)

	Decide(g, Perceive(g))
	assert.Equal(t, entities.StateChase, drone.Behavior.State)
	require.NotNil(t, drone.Behavior.Target)
	assert.Equal(t, world.Pt(1, 1), *drone.Behavior.Target)
}

func TestDecide_PatrolToInvestigate(t *testing.T) {
	g := newAIGame(t,
		"#######",
		"#..#..#",
		"#######",
	)
	addPlayer(g, 1, 1)
	drone := addDrone(g, 5, 1)
	g.EmitNoise(world.Pt(2, 1), 6)

	Decide(g, Perceive(g))
	assert.Equal(t, entities.StateInvestigate, drone.Behavior.State)
	assert.Equal(t, world.Pt(2, 1), *drone.Behavior.Target)
}

func TestDecide_ChaseToSearch(t *testing.T) {
	g := newAIGame(t,
		"######",
		"#....#",
		"######",
	)
	drone := addDrone(g, 4, 1)
	drone.Behavior.State = entities.StateChase
	drone.Behavior.SetTarget(world.Pt(1, 1))

	Decide(g, []Perception{{Drone: drone}})
	assert.Equal(t, entities.StateSearch, drone.Behavior.State)
	assert.Equal(t, 5, drone.Behavior.SearchTurns)
	assert.Equal(t, world.Pt(1, 1), *drone.Behavior.Target)
}

func TestDecide_ChaseToCampVentToPatrol(t *testing.T) {
	g := newAIGame(t,
		"######",
		"#...v#",
		"######",
	)
	drone := addDrone(g, 1, 1)
	b := drone.Behavior
	b.State = entities.StateChase
	b.SetTarget(world.Pt(3, 1))
	b.Path = []world.Point{world.Pt(2, 1), world.Pt(3, 1)}

	Decide(g, []Perception{{Drone: drone}})
	assert.Equal(t, entities.StateCampVent, b.State)
	assert.Equal(t, world.Pt(4, 1), *b.Target)
	assert.Equal(t, 3, b.CampTurns)
	assert.False(t, b.HasPath())

	for i := 0; i < 2; i++ {
		Decide(g, []Perception{{Drone: drone}})
		assert.Equal(t, entities.StateCampVent, b.State)
	}
	Decide(g, []Perception{{Drone: drone}})
	assert.Equal(t, entities.StatePatrol, b.State)
	assert.Nil(t, b.Target)
}

func TestDecide_CampSeesPlayer(t *testing.T) {
	g := newAIGame(t,
		"######",
		"#...v#",
		"######",
	)
	drone := addDrone(g, 1, 1)
	b := drone.Behavior
	b.State = entities.StateCampVent
	b.SetTarget(world.Pt(4, 1))
	b.CampTurns = 2

	Decide(g, []Perception{{Drone: drone, CanSeePlayer: true, LastKnown: world.Pt(3, 1).Ptr()}})
	assert.Equal(t, entities.StateChase, b.State)
	assert.Equal(t, 0, b.CampTurns)
	assert.Equal(t, world.Pt(3, 1), *b.Target)
}

func TestDecide_InvestigateArrives(t *testing.T) {
	g := newAIGame(t,
		"#####",
		"#...#",
		"#####",
	)
	drone := addDrone(g, 2, 1)
	drone.Behavior.State = entities.StateInvestigate
	drone.Behavior.SetTarget(world.Pt(2, 1))

	Decide(g, []Perception{{Drone: drone}})
	assert.Equal(t, entities.StateSearch, drone.Behavior.State)
	assert.Equal(t, 5, drone.Behavior.SearchTurns)
}

func TestDecide_SearchOutcomes(t *testing.T) {
	g := newAIGame(t,
		"#######",
		"#.....#",
		"#######",
	)

	t.Run("timer expires", func(t *testing.T) {
		drone := addDrone(g, 1, 1)
		drone.Behavior.State = entities.StateSearch
		drone.Behavior.SetTarget(world.Pt(5, 1))
		drone.Behavior.SearchTurns = 2

		Decide(g, []Perception{{Drone: drone}})
		assert.Equal(t, entities.StateSearch, drone.Behavior.State)
		assert.Equal(t, 1, drone.Behavior.SearchTurns)
		Decide(g, []Perception{{Drone: drone}})
		assert.Equal(t, entities.StatePatrol, drone.Behavior.State)
		assert.Nil(t, drone.Behavior.Target)
	})

	t.Run("reached target", func(t *testing.T) {
		drone := addDrone(g, 3, 1)
		drone.Behavior.State = entities.StateSearch
		drone.Behavior.SetTarget(world.Pt(3, 1))
		drone.Behavior.SearchTurns = 5

		Decide(g, []Perception{{Drone: drone}})
		assert.Equal(t, entities.StatePatrol, drone.Behavior.State)
	})

	t.Run("sees player", func(t *testing.T) {
		drone := addDrone(g, 3, 1)
		drone.Behavior.State = entities.StateSearch
		drone.Behavior.SearchTurns = 5

		Decide(g, []Perception{{Drone: drone, CanSeePlayer: true, LastKnown: world.Pt(5, 1).Ptr()}})
		assert.Equal(t, entities.StateChase, drone.Behavior.State)
		assert.Equal(t, world.Pt(5, 1), *drone.Behavior.Target)
	})
}

func TestMove_PatrolAvoidsOccupiedAndVents(t *testing.T) {
	g := newAIGame(t,
		"#######",
		"#.....#",
		"#######",
	)
	addDrone(g, 1, 1)
	drone := addDrone(g, 2, 1)

	for seed := int64(0); seed < 10; seed++ {
		drone.Pos = world.Pt(2, 1)
		g.Rng.Seed(seed)
		Move(g, []Perception{{Drone: drone}})
		assert.Equal(t, world.Pt(3, 1), drone.Pos)
	}

	g.Grid.Set(3, 1, world.TileVent)
	drone.Pos = world.Pt(2, 1)
	Move(g, []Perception{{Drone: drone}})
	assert.Equal(t, world.Pt(2, 1), drone.Pos, "boxed in drones stay put")
}

func TestMove_CampNeverMoves(t *testing.T) {
	g := newAIGame(t,
		"#####",
		"#..v#",
		"#####",
	)
	drone := addDrone(g, 1, 1)
	drone.Behavior.State = entities.StateCampVent
	drone.Behavior.SetTarget(world.Pt(3, 1))

	Move(g, []Perception{{Drone: drone}})
	assert.Equal(t, world.Pt(1, 1), drone.Pos)
}

func TestMove_ChaseStepsTowardPlayer(t *testing.T) {
	g := newAIGame(t,
		"#######",
		"#.....#",
		"#######",
	)
	addPlayer(g, 1, 1)
	drone := addDrone(g, 5, 1)

	Run(g)
	assert.Equal(t, entities.StateChase, drone.Behavior.State)
	assert.Equal(t, world.Pt(4, 1), drone.Pos)
}

func TestMove_ChaseAttacksBlockingPlayer(t *testing.T) {
	g := newAIGame(t,
		"#####",
		"#...#",
		"#####",
	)
	player := addPlayer(g, 1, 1)
	drone := addDrone(g, 2, 1)
	drone.Stats.Attack = 100

	Run(g)
	assert.Equal(t, world.Pt(2, 1), drone.Pos, "attacks instead of moving")
	assert.Equal(t, 9, player.HP())
	assert.False(t, drone.Behavior.HasPath())
}

func TestMove_NeverPathsThroughVents(t *testing.T) {
	g := newAIGame(t,
		"#######",
		"#..v..#",
		"#######",
	)
	drone := addDrone(g, 1, 1)
	drone.Behavior.State = entities.StateInvestigate
	drone.Behavior.SetTarget(world.Pt(5, 1))

	for i := 0; i < 5; i++ {
		Move(g, []Perception{{Drone: drone}})
	}
	assert.Equal(t, world.Pt(1, 1), drone.Pos)
	assert.False(t, drone.Behavior.HasPath())
}

func TestMove_BlockedByDroneClearsPath(t *testing.T) {
	g := newAIGame(t,
		"######",
		"#....#",
		"######",
	)
	addDrone(g, 2, 1)
	drone := addDrone(g, 1, 1)
	drone.Behavior.State = entities.StateInvestigate
	drone.Behavior.SetTarget(world.Pt(4, 1))

	Move(g, []Perception{{Drone: drone}})
	assert.Equal(t, world.Pt(1, 1), drone.Pos)
	assert.False(t, drone.Behavior.HasPath())
}

func TestRun_Deterministic(t *testing.T) {
	rows := []string{
		"##########",
		"#........#",
		"#..####..#",
		"#........#",
		"##########",
	}
	play := func() []world.Point {
		g := newAIGame(t, rows...)
		addPlayer(g, 1, 1)
		for _, x := range []int{4, 6, 8} {
			d := addDrone(g, x, 3)
			d.Behavior.State = entities.StatePatrol
		}
		g.Grid.Set(1, 2, world.TileWall)
		var trail []world.Point
		for i := 0; i < 25; i++ {
			Run(g)
			for _, d := range g.Drones() {
				trail = append(trail, d.Pos)
			}
		}
		return trail
	}
	assert.Equal(t, play(), play())
}
