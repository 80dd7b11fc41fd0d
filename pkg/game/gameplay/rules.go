package gameplay

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"darkstation/pkg/engine/world"
	"darkstation/pkg/game/config"
	"darkstation/pkg/game/entities"
	"darkstation/pkg/game/state"
)

// Default rule sources
const (
	DefaultWinRule  = "OnAirlock && Crates >= CratesRequired"
	DefaultLoseRule = "HP <= 0"
)

// RuleEnv is the view of the game that win and lose expressions see
type RuleEnv struct {
	HP             int
	MaxHP          int
	Ammo           int
	Crates         int
	CratesRequired int
	Turn           int
	OnAirlock      bool
	OnVent         bool
	DronesLeft     int
}

// NewRuleEnv snapshots g for rule evaluation
func NewRuleEnv(g *state.Game) RuleEnv {
	env := RuleEnv{
		Crates:         g.CratesCollected,
		CratesRequired: g.Config.Get(config.WinConditionCrate),
		Turn:           g.Turn,
		DronesLeft:     len(g.Drones()),
	}
	if p := g.Player; p != nil {
		env.HP = p.HP()
		if p.HasStats() {
			env.MaxHP = p.Stats.MaxHP
		}
		env.Ammo = p.Inventory.Count(entities.ItemAmmo)
		tile := g.Grid.AtPoint(p.Pos)
		env.OnAirlock = tile == world.TileAirlock
		env.OnVent = tile.IsVent()
	}
	return env
}

// Rules holds the compiled win and lose conditions
type Rules struct {
	WinSrc  string
	LoseSrc string
	win     *vm.Program
	lose    *vm.Program
}

// CompileRules compiles boolean win and lose expressions over RuleEnv.
// Empty sources fall back to the defaults.
func CompileRules(winSrc, loseSrc string) (*Rules, error) {
	if winSrc == "" {
		winSrc = DefaultWinRule
	}
	if loseSrc == "" {
		loseSrc = DefaultLoseRule
	}

	win, err := expr.Compile(winSrc, expr.Env(RuleEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile win rule %q: %w", winSrc, err)
	}
	lose, err := expr.Compile(loseSrc, expr.Env(RuleEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile lose rule %q: %w", loseSrc, err)
	}
	return &Rules{WinSrc: winSrc, LoseSrc: loseSrc, win: win, lose: lose}, nil
}

// DefaultRules returns the built-in rules. The sources are constants, so a
// compile failure is a programming error.
func DefaultRules() *Rules {
	r, err := CompileRules(DefaultWinRule, DefaultLoseRule)
	if err != nil {
		panic(err)
	}
	return r
}

// Outcome evaluates the rules. Losing is checked before winning.
func (r *Rules) Outcome(g *state.Game) (state.Status, error) {
	env := NewRuleEnv(g)

	lost, err := run(r.lose, env)
	if err != nil {
		return g.Status, fmt.Errorf("lose rule: %w", err)
	}
	if lost {
		return state.StatusLost, nil
	}

	won, err := run(r.win, env)
	if err != nil {
		return g.Status, fmt.Errorf("win rule: %w", err)
	}
	if won {
		return state.StatusWon, nil
	}
	return state.StatusRunning, nil
}

func run(program *vm.Program, env RuleEnv) (bool, error) {
	result, err := vm.Run(program, env)
	if err != nil {
		return false, err
	}
	match, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("rule returned %T, want bool", result)
	}
	return match, nil
}
