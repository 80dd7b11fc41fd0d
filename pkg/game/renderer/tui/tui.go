package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"darkstation/pkg/engine/input"
	"darkstation/pkg/engine/terminal"
	"darkstation/pkg/engine/world"
	"darkstation/pkg/game/config"
	"darkstation/pkg/game/entities"
	"darkstation/pkg/game/renderer"
	"darkstation/pkg/game/state"
)

// Icon constants for the station
const (
	PlayerIcon  = "@"
	DroneIcon   = "d"
	TurretIcon  = "T"
	AimIcon     = "*"
	IconVoid    = " "
	IconUnknown = "?"
)

// Viewport margins and minimum sizes
const (
	ViewportMinRows = 9
	ViewportMinCols = 21
	// Status (2) + messages pane (header + 5 messages) + combat (header + 3) + prompt (2)
	ViewportTopMargin = 15
	messageLines      = 5
	combatLines       = 3
)

// dynamicGet is used for runtime translation key lookups.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	styles map[renderer.TextStyle]color.Style
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a TUI renderer writing to w
func NewWithWriter(w io.Writer) *TUIRenderer {
	return &TUIRenderer{out: w}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.styles = map[renderer.TextStyle]color.Style{
		renderer.StyleWall:       {color.FgGray},
		renderer.StyleFloor:      {color.FgWhite},
		renderer.StyleRemembered: {color.FgDarkGray},
		renderer.StyleDoor:       {color.FgYellow, color.OpBold},
		renderer.StyleVent:       {color.FgCyan},
		renderer.StyleAirlock:    {color.FgGreen, color.OpBold},
		renderer.StylePickup:     {color.FgMagenta, color.OpBold},
		renderer.StylePlayer:     {color.FgGreen, color.BgBlack, color.OpBold},
		renderer.StyleDrone:      {color.FgRed},
		renderer.StyleDroneAlert: {color.FgLightRed, color.OpBold},
		renderer.StyleTurret:     {color.FgRed, color.OpBold},
		renderer.StyleDisabled:   {color.FgBlue},
		renderer.StyleAim:        {color.FgYellow},
		renderer.StyleDenied:     {color.FgRed, color.OpBold},
		renderer.StyleSubtle:     {color.FgGray, color.OpBold},
	}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	terminal.Clear(t.out)
}

// GetIntent reads one key from the terminal and returns a high-level Intent.
func (t *TUIRenderer) GetIntent() (input.Intent, error) {
	code, err := input.ReadKey()
	if err != nil {
		return input.Intent{}, err
	}
	raw := input.RawInput{
		Device: input.DeviceTerminal,
		Code:   code,
	}
	return input.MapToIntent(input.NewDebouncedInput(raw)), nil
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if s, ok := t.styles[style]; ok {
		return s.Sprint(text)
	}
	return text
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// GetViewportSize returns the viewport dimensions based on terminal size
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	termWidth, termHeight := terminal.GetSize()

	cols = termWidth - 2
	rows = termHeight - ViewportTopMargin

	if cols < ViewportMinCols {
		cols = ViewportMinCols
	}
	if rows < ViewportMinRows {
		rows = ViewportMinRows
	}

	// Keep odd for centering
	if rows%2 == 0 {
		rows--
	}
	if cols%2 == 0 {
		cols--
	}
	return rows, cols
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	t.printStatusBar(g)
	t.printMap(g)
	t.printPane(dynamicGet("Messages"), g.RecentMessages(messageLines))
	t.printPane(dynamicGet("Combat"), tail(g.CombatLog, combatLines))
	fmt.Fprint(t.out, "\n> ")
}

func (t *TUIRenderer) printStatusBar(g *state.Game) {
	p := g.Player
	if p == nil {
		return
	}
	maxHP := 0
	if p.HasStats() {
		maxHP = p.Stats.MaxHP
	}
	hp := fmt.Sprintf("%d/%d", p.HP(), maxHP)
	if p.HP()*3 <= maxHP {
		hp = t.StyleText(hp, renderer.StyleDenied)
	}
	fmt.Fprintf(t.out, "%s %d  %s %s  %s %d  %s %d  %s %d  %s %d/%d  %s %s\n\n",
		dynamicGet("Turn"), g.Turn,
		dynamicGet("HP"), hp,
		dynamicGet("Ammo"), p.Inventory.Count(entities.ItemAmmo),
		dynamicGet("Med-gel"), p.Inventory.Count(entities.ItemMedGel),
		dynamicGet("EMP"), p.Inventory.Count(entities.ItemEMPCharge),
		dynamicGet("Crates"), g.CratesCollected, g.Config.Get(config.WinConditionCrate),
		dynamicGet("Weapon"), dynamicGet(p.Weapon.String()),
	)
}

// printMap draws the viewport centered on the player, clamped to the grid
func (t *TUIRenderer) printMap(g *state.Game) {
	rows, cols := t.GetViewportSize()
	rows = min(rows, g.Grid.Height())
	cols = min(cols, g.Grid.Width())

	center := world.Point{}
	if g.Player != nil {
		center = g.Player.Pos
	}
	x0 := clamp(center.X-cols/2, 0, g.Grid.Width()-cols)
	y0 := clamp(center.Y-rows/2, 0, g.Grid.Height()-rows)

	aim := make(map[world.Point]bool, len(g.AimRay))
	for _, p := range g.AimRay {
		aim[p] = true
	}

	var b strings.Builder
	for y := y0; y < y0+rows; y++ {
		for x := x0; x < x0+cols; x++ {
			b.WriteString(t.renderCell(g, world.Pt(x, y), aim))
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(t.out, b.String())
}

// renderCell returns the string representation of a cell
func (t *TUIRenderer) renderCell(g *state.Game, p world.Point, aim map[world.Point]bool) string {
	visible := g.Visible != nil && g.Visible.Visible(p.X, p.Y)
	explored := g.Explored != nil && g.Explored.Visible(p.X, p.Y)
	if !visible && !explored {
		return IconVoid
	}

	if g.Player != nil && g.Player.Pos == p {
		return t.StyleText(PlayerIcon, renderer.StylePlayer)
	}

	if visible {
		if a := g.ActorAt(p); a != nil {
			return t.renderActor(a)
		}
		if aim[p] {
			return t.StyleText(AimIcon, renderer.StyleAim)
		}
	}

	if pickups := g.PickupsAt(p); len(pickups) > 0 {
		icon := pickups[0].Info().Icon
		if !visible {
			return t.StyleText(icon, renderer.StyleRemembered)
		}
		return t.StyleText(icon, renderer.StylePickup)
	}

	tile := g.Grid.AtPoint(p)
	glyph := string(world.Glyph(tile))
	if !visible {
		return t.StyleText(glyph, renderer.StyleRemembered)
	}
	return t.StyleText(glyph, tileStyle(tile))
}

func (t *TUIRenderer) renderActor(a *entities.Actor) string {
	switch {
	case a.IsTurret() && a.Disabled:
		return t.StyleText(TurretIcon, renderer.StyleDisabled)
	case a.IsTurret():
		return t.StyleText(TurretIcon, renderer.StyleTurret)
	case a.Disabled:
		return t.StyleText(DroneIcon, renderer.StyleDisabled)
	case a.Behavior != nil && a.Behavior.State != entities.StatePatrol:
		return t.StyleText(strings.ToUpper(DroneIcon), renderer.StyleDroneAlert)
	case a.IsDrone():
		return t.StyleText(DroneIcon, renderer.StyleDrone)
	default:
		return IconUnknown
	}
}

func tileStyle(tile world.Tile) renderer.TextStyle {
	switch {
	case tile == world.TileWall:
		return renderer.StyleWall
	case tile.IsDoor():
		return renderer.StyleDoor
	case tile.IsVent():
		return renderer.StyleVent
	case tile == world.TileAirlock:
		return renderer.StyleAirlock
	default:
		return renderer.StyleFloor
	}
}

func (t *TUIRenderer) printPane(title string, lines []string) {
	fmt.Fprintf(t.out, "\n%s\n", t.StyleText("-- "+title+" --", renderer.StyleSubtle))
	for _, line := range lines {
		fmt.Fprintln(t.out, line)
	}
}

func tail(lines []string, n int) []string {
	if len(lines) <= n {
		return lines
	}
	return lines[len(lines)-n:]
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
