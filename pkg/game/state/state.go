package state

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"darkstation/pkg/engine/world"
	"darkstation/pkg/game/config"
	"darkstation/pkg/game/entities"
	"darkstation/pkg/game/generator"
)

// Status is the game-level outcome
type Status int

const (
	StatusRunning Status = iota
	StatusWon
	StatusLost
	StatusQuit
)

// String returns the status name
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	case StatusQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Rules decides whether a running game has been won or lost
type Rules interface {
	Outcome(g *Game) (Status, error)
}

// NoiseEvent is a sound heard by drones for exactly one perception pass
type NoiseEvent struct {
	At     world.Point
	Radius int
}

// maxLogLines bounds the message and combat logs
const maxLogLines = 64

// Game represents the whole simulation state for one run.
// All randomness comes from Rng so a seed reproduces a run.
type Game struct {
	Seed   int64
	Rng    *rand.Rand
	Config config.Table

	Grid  *world.Grid
	Rooms []generator.Room

	// Actors are processed in slice order every turn
	Actors  []*entities.Actor
	Player  *entities.Actor
	Pickups []*entities.Pickup

	Noise []NoiseEvent

	Messages  []string
	CombatLog []string

	Visible  *world.Mask
	Explored *world.Mask
	AimRay   []world.Point

	Turn            int
	CratesCollected int
	Status          Status
	Rules           Rules

	nextID int
}

// NewGame creates an empty game with a seeded RNG and the given configuration
func NewGame(seed int64, cfg config.Table) *Game {
	if cfg == nil {
		cfg = config.Defaults()
	}
	return &Game{
		Seed:     seed,
		Rng:      rand.New(rand.NewSource(seed)),
		Config:   cfg,
		Messages: make([]string, 0),
	}
}

// SetGrid installs the map and resets the visibility overlays
func (g *Game) SetGrid(grid *world.Grid) {
	g.Grid = grid
	g.Visible = world.NewMask(grid.Width(), grid.Height())
	g.Explored = world.NewMask(grid.Width(), grid.Height())
}

// NextID returns a fresh identifier for an actor or pickup
func (g *Game) NextID() int {
	g.nextID++
	return g.nextID
}

// AddActor appends an actor and remembers the player
func (g *Game) AddActor(a *entities.Actor) {
	g.Actors = append(g.Actors, a)
	if a.IsPlayer() {
		g.Player = a
	}
}

// AddPickup appends a pickup
func (g *Game) AddPickup(p *entities.Pickup) {
	g.Pickups = append(g.Pickups, p)
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = appendBounded(g.Messages, msg)
}

// AddCombat adds a line to the combat log
func (g *Game) AddCombat(msg string) {
	g.CombatLog = appendBounded(g.CombatLog, msg)
}

func appendBounded(log []string, msg string) []string {
	log = append(log, msg)
	if len(log) > maxLogLines {
		log = log[len(log)-maxLogLines:]
	}
	return log
}

// RecentMessages returns up to n of the newest messages, oldest first
func (g *Game) RecentMessages(n int) []string {
	if len(g.Messages) <= n {
		return g.Messages
	}
	return g.Messages[len(g.Messages)-n:]
}

// EmitNoise queues a noise event for the next perception pass
func (g *Game) EmitNoise(at world.Point, radius int) {
	g.Noise = append(g.Noise, NoiseEvent{At: at, Radius: radius})
}

// ActorAt returns the first live actor at p, or nil
func (g *Game) ActorAt(p world.Point) *entities.Actor {
	for _, a := range g.Actors {
		if !a.Dead && a.Pos == p {
			return a
		}
	}
	return nil
}

// Occupied returns the positions of every live actor
func (g *Game) Occupied() mapset.Set[world.Point] {
	cells := mapset.New[world.Point]()
	for _, a := range g.Actors {
		if !a.Dead {
			cells.Put(a.Pos)
		}
	}
	return cells
}

// Drones returns the live mobile adversaries in processing order
func (g *Game) Drones() []*entities.Actor {
	var out []*entities.Actor
	for _, a := range g.Actors {
		if !a.Dead && a.IsDrone() {
			out = append(out, a)
		}
	}
	return out
}

// Turrets returns the live turrets in processing order
func (g *Game) Turrets() []*entities.Actor {
	var out []*entities.Actor
	for _, a := range g.Actors {
		if !a.Dead && a.IsTurret() {
			out = append(out, a)
		}
	}
	return out
}

// RemoveDead drops dead non-player actors and returns how many were removed
func (g *Game) RemoveDead() int {
	kept := g.Actors[:0]
	removed := 0
	for _, a := range g.Actors {
		if a.Dead && !a.IsPlayer() {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	for i := len(kept); i < len(g.Actors); i++ {
		g.Actors[i] = nil
	}
	g.Actors = kept
	return removed
}

// PickupsAt returns every pickup at p
func (g *Game) PickupsAt(p world.Point) []*entities.Pickup {
	var out []*entities.Pickup
	for _, pk := range g.Pickups {
		if pk.Pos == p {
			out = append(out, pk)
		}
	}
	return out
}

// RemovePickup removes a pickup from the map
func (g *Game) RemovePickup(target *entities.Pickup) {
	for i, pk := range g.Pickups {
		if pk == target {
			g.Pickups = append(g.Pickups[:i], g.Pickups[i+1:]...)
			return
		}
	}
}

// UpdateVisibility replaces the visible set and adds it to the explored overlay
func (g *Game) UpdateVisibility(mask *world.Mask) {
	g.Visible = mask
	if g.Explored == nil {
		g.Explored = world.NewMask(g.Grid.Width(), g.Grid.Height())
	}
	g.Explored.Union(mask)
}

// Reveal marks cells visible and explored without recomputing the field of view
func (g *Game) Reveal(points []world.Point) {
	for _, p := range points {
		g.Visible.Mark(p.X, p.Y)
		g.Explored.Mark(p.X, p.Y)
	}
}

// PlayerOnVent returns true if the player is hiding in a vent
func (g *Game) PlayerOnVent() bool {
	return g.Player != nil && g.Grid.AtPoint(g.Player.Pos).IsVent()
}
