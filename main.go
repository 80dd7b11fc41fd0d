package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/leonelquinteros/gotext"

	"darkstation/pkg/engine/input"
	"darkstation/pkg/engine/logger"
	"darkstation/pkg/engine/terminal"
	"darkstation/pkg/engine/world"
	"darkstation/pkg/game/config"
	"darkstation/pkg/game/devtools"
	"darkstation/pkg/game/gameplay"
	"darkstation/pkg/game/renderer"
	"darkstation/pkg/game/renderer/tui"
	"darkstation/pkg/game/state"
)

// overrides collects repeated -set key=value flags
type overrides []string

func (o *overrides) String() string {
	return strings.Join(*o, ",")
}

func (o *overrides) Set(v string) error {
	*o = append(*o, v)
	return nil
}

// bindOverrides collects repeated -bind action=key flags
type bindOverrides []string

func (b *bindOverrides) String() string {
	return strings.Join(*b, ",")
}

func (b *bindOverrides) Set(v string) error {
	*b = append(*b, v)
	return nil
}

func main() {
	seed := flag.Int64("seed", 0, "Level seed (0 picks one from the clock)")
	configPath := flag.String("config", "", "Properties file with tuning values")
	winRule := flag.String("win", "", "Win condition expression (default: "+gameplay.DefaultWinRule+")")
	loseRule := flag.String("lose", "", "Lose condition expression (default: "+gameplay.DefaultLoseRule+")")
	locale := flag.String("locale", "en_US", "Message catalogue language")
	locales := flag.String("locales", "", "Directory holding message catalogues")
	dump := flag.Bool("dump", false, "Write the generated map dump and exit")
	copyDump := flag.Bool("copy", false, "Also copy the map dump to the clipboard")
	var sets overrides
	flag.Var(&sets, "set", "Override a tuning value, key=value (repeatable)")
	var binds bindOverrides
	flag.Var(&binds, "bind", "Rebind an action, e.g. fire=x (repeatable)")
	flag.Parse()

	closer, err := logger.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if err := run(*seed, *configPath, sets, binds, *winRule, *loseRule, *locale, *locales, *dump, *copyDump); err != nil {
		logger.Log.WithError(err).Error("Exiting.")
		fmt.Fprintf(os.Stderr, "darkstation: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
}

func run(seed int64, configPath string, sets overrides, binds bindOverrides, winRule, loseRule, locale, locales string, dump, copyDump bool) error {
	cfg := config.Defaults()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	for _, s := range sets {
		if err := cfg.Set(s); err != nil {
			return fmt.Errorf("-set: %w", err)
		}
	}

	for _, b := range binds {
		name, code, ok := strings.Cut(b, "=")
		action, known := input.ParseAction(name)
		if !ok || !known || code == "" {
			return fmt.Errorf("-bind %q: expected action=key", b)
		}
		input.SetSingleBinding(action, strings.ToLower(code))
	}

	rules, err := gameplay.CompileRules(winRule, loseRule)
	if err != nil {
		return err
	}

	if locales != "" {
		gotext.Configure(locales, locale, "default")
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := gameplay.NewGame(seed, cfg)
	g.Rules = rules

	if dump || copyDump {
		return writeDump(g, copyDump)
	}

	if !terminal.IsInteractive() {
		logger.Log.Warn("stdout is not a terminal, frames will be written as plain text")
	}
	return play(g)
}

func writeDump(g *state.Game, copyDump bool) error {
	path, err := devtools.DumpMapToFile(g, devtools.MapDumpFilename)
	if err != nil {
		return err
	}
	fmt.Println(gotext.Get("Map dumped to %s", path))
	if copyDump {
		if err := devtools.CopyMapDump(g); err != nil {
			return err
		}
		fmt.Println(gotext.Get("Map dump copied to the clipboard."))
	}
	return nil
}

func play(g *state.Game) error {
	r := tui.New()
	renderer.SetRenderer(r)
	renderer.Init()

	for g.Status == state.StatusRunning {
		renderer.Clear()
		renderer.RenderFrame(g)

		intent, err := r.GetIntent()
		if errors.Is(err, input.ErrInterrupted) {
			g.Status = state.StatusQuit
			break
		}
		if err != nil {
			return err
		}

		if intent.Action.NeedsDirection() {
			intent.Dir, err = promptDirection()
			if err != nil {
				continue
			}
		}
		if intent.Action.NeedsTarget() {
			intent.Target, err = promptTarget(g)
			if err != nil {
				continue
			}
		}

		gameplay.ProcessIntent(g, intent)
	}

	renderer.Clear()
	renderer.RenderFrame(g)
	switch g.Status {
	case state.StatusWon:
		renderer.ShowMessage(gotext.Get("You escaped after %d turns.", g.Turn))
	case state.StatusLost:
		renderer.ShowMessage(gotext.Get("Game over after %d turns.", g.Turn))
	default:
		renderer.ShowMessage(gotext.Get("Goodbye."))
	}
	return nil
}

func promptDirection() (world.Direction, error) {
	renderer.ShowMessage(gotext.Get("Direction? (w/a/s/d or arrows)"))
	code, err := input.ReadKey()
	if err != nil {
		return world.North, err
	}
	d, ok := world.ParseDirection(code)
	if !ok {
		return world.North, fmt.Errorf("not a direction: %q", code)
	}
	return d, nil
}

func promptTarget(g *state.Game) (world.Point, error) {
	renderer.ShowMessage(gotext.Get("Target x,y (empty for your own position):"))
	line, err := input.GetInput()
	if err != nil {
		return world.Point{}, err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return g.Player.Pos, nil
	}
	xs, ys, ok := strings.Cut(line, ",")
	if !ok {
		return world.Point{}, fmt.Errorf("expected x,y: %q", line)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return world.Point{}, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return world.Point{}, err
	}
	return world.Pt(x, y), nil
}
