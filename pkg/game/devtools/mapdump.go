// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"

	"darkstation/pkg/engine/world"
	"darkstation/pkg/game/entities"
	"darkstation/pkg/game/state"
)

// MapDumpFilename is the default dump file name
const MapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a cell.
// If revealedOnly is true, unexplored cells return a space.
func cellSymbol(g *state.Game, p world.Point, revealedOnly bool) rune {
	if revealedOnly && (g.Explored == nil || !g.Explored.Visible(p.X, p.Y)) {
		return ' '
	}
	if g.Player != nil && g.Player.Pos == p {
		return '@'
	}
	if a := g.ActorAt(p); a != nil {
		switch a.Kind {
		case entities.KindDrone:
			return 'd'
		case entities.KindTurret:
			return 'T'
		}
	}
	if pickups := g.PickupsAt(p); len(pickups) > 0 {
		return []rune(pickups[0].Info().Icon)[0]
	}
	return world.Glyph(g.Grid.AtPoint(p))
}

// writeMapGrid writes the grid with actor and pickup overlays
func writeMapGrid(w io.Writer, g *state.Game, revealedOnly bool) {
	for y := 0; y < g.Grid.Height(); y++ {
		row := make([]rune, g.Grid.Width())
		for x := range row {
			row[x] = cellSymbol(g, world.Pt(x, y), revealedOnly)
		}
		fmt.Fprintln(w, string(row))
	}
}

// WriteMapDump writes a full debug dump: metadata, legend, explored map,
// full map, actors and pickups. The format is sections of key: value lines.
func WriteMapDump(w io.Writer, g *state.Game) error {
	if g.Grid == nil {
		return fmt.Errorf("no grid")
	}

	fmt.Fprintln(w, "=== MAP DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "seed: %d\n", g.Seed)
	fmt.Fprintf(w, "turn: %d\n", g.Turn)
	fmt.Fprintf(w, "status: %s\n", g.Status)
	fmt.Fprintf(w, "width: %d\n", g.Grid.Width())
	fmt.Fprintf(w, "height: %d\n", g.Grid.Height())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, origin top-left)\n")
	if g.Player != nil {
		fmt.Fprintf(w, "player: %d,%d hp: %d\n", g.Player.Pos.X, g.Player.Pos.Y, g.Player.HP())
	}
	fmt.Fprintf(w, "crates_collected: %d\n", g.CratesCollected)
	fmt.Fprintf(w, "rooms: %d\n", len(g.Rooms))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Config ---")
	for _, key := range g.Config.Keys() {
		fmt.Fprintf(w, "%s: %d\n", key, g.Config[key])
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "# = wall  . = floor  + = closed door  ' = open door  = = bulkhead  _ = open bulkhead  A = airlock  v = vent  @ = player  d = drone  T = turret  $ = crate  & = terminal  m = med-gel  e = EMP charge")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (explored cells only) ---")
	writeMapGrid(w, g, true)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (full layout) ---")
	writeMapGrid(w, g, false)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Actors:")
	for _, a := range g.Actors {
		line := fmt.Sprintf("  id: %d kind: %s x: %d y: %d hp: %d dead: %v disabled: %v", a.ID, a.Kind, a.Pos.X, a.Pos.Y, a.HP(), a.Dead, a.Disabled)
		if b := a.Behavior; b != nil {
			target := "none"
			if b.Target != nil {
				target = fmt.Sprintf("%d,%d", b.Target.X, b.Target.Y)
			}
			line += fmt.Sprintf(" state: %s target: %s path_len: %d", b.State, target, len(b.Path))
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Pickups:")
	for _, pk := range g.Pickups {
		fmt.Fprintf(w, "  id: %d name: %q x: %d y: %d used: %v\n", pk.ID, pk.Info().Name, pk.Pos.X, pk.Pos.Y, pk.Used)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "=== END MAP DUMP ===")
	return nil
}

// MapDump returns the dump as a string
func MapDump(g *state.Game) (string, error) {
	var buf bytes.Buffer
	if err := WriteMapDump(&buf, g); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// DumpMapToFile writes the dump to path and returns the absolute path
func DumpMapToFile(g *state.Game, path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create map dump: %w", err)
	}
	defer f.Close()

	if err := WriteMapDump(f, g); err != nil {
		return "", err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}

// CopyMapDump places the dump on the system clipboard
func CopyMapDump(g *state.Game) error {
	dump, err := MapDump(g)
	if err != nil {
		return err
	}
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard not available on this system")
	}
	if err := clipboard.WriteAll(dump); err != nil {
		return fmt.Errorf("copy map dump: %w", err)
	}
	return nil
}
