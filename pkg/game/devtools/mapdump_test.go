package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"darkstation/pkg/engine/world"
	"darkstation/pkg/game/entities"
	"darkstation/pkg/game/state"
)

func dumpGame(t *testing.T) *state.Game {
	t.Helper()
	g := state.NewGame(7, nil)
	grid, err := world.ParseGrid(
		"######",
		"#A..v#",
		"######",
	)
	require.NoError(t, err)
	g.SetGrid(grid)
	g.AddActor(entities.NewPlayer(g.NextID(), world.Pt(1, 1), entities.Stats{HP: 10, MaxHP: 10}))
	g.AddActor(entities.NewDrone(g.NextID(), world.Pt(3, 1), entities.Stats{HP: 4, MaxHP: 4}))
	g.AddPickup(&entities.Pickup{ID: g.NextID(), Kind: entities.PickupCrate, Pos: world.Pt(2, 1)})
	g.Reveal([]world.Point{world.Pt(0, 1), world.Pt(1, 1), world.Pt(2, 1)})
	return g
}

func TestWriteMapDump(t *testing.T) {
	g := dumpGame(t)

	var buf bytes.Buffer
	require.NoError(t, WriteMapDump(&buf, g))
	out := buf.String()

	assert.Contains(t, out, "seed: 7\n")
	assert.Contains(t, out, "player: 1,1 hp: 10\n")
	assert.Contains(t, out, "player.hp: 10\n")
	assert.Contains(t, out, "\n#@$   \n", "explored map hides unexplored cells")
	assert.Contains(t, out, "\n#@$dv#\n", "full map shows everything")
	assert.Contains(t, out, "kind: Drone x: 3 y: 1 hp: 4 dead: false disabled: false state: PATROL target: none path_len: 0")
	assert.Contains(t, out, `name: "Salvage crate" x: 2 y: 1`)
	assert.True(t, strings.HasSuffix(out, "=== END MAP DUMP ===\n"))
}

func TestWriteMapDump_NoGrid(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteMapDump(&buf, state.NewGame(1, nil)))
}

func TestDumpMapToFile(t *testing.T) {
	g := dumpGame(t)
	path, err := DumpMapToFile(g, filepath.Join(t.TempDir(), MapDumpFilename))
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := MapDump(g)
	require.NoError(t, err)
	assert.Equal(t, want, string(data))
}
