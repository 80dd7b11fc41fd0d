// Package config provides the flat key to integer tuning table used by the game.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/magiconair/properties"

	"darkstation/pkg/engine/logger"
)

// Keys used by the simulation
const (
	MapWidth  = "map.width"
	MapHeight = "map.height"

	PlayerHP          = "player.hp"
	PlayerMaxHP       = "player.maxHp"
	PlayerAttack      = "player.atk"
	PlayerEvasion     = "player.ev"
	PlayerFOVRadius   = "player.fov_radius"
	PlayerPeekRange   = "player.peek_range"
	PlayerAmmo        = "player.inventory.ammo"
	PlayerMedGel      = "player.inventory.med_gel"
	PlayerEMPCharge   = "player.inventory.emp_charge"
	PlayerPistol      = "player.inventory.pistol"
	DroneCount        = "enemies.drones.count"
	DroneHP           = "enemies.drones.hp"
	DroneMaxHP        = "enemies.drones.maxHp"
	DroneAttack       = "enemies.drones.atk"
	DroneEvasion      = "enemies.drones.ev"
	TurretCount       = "enemies.turrets.count"
	TurretHP          = "enemies.turrets.hp"
	TurretMaxHP       = "enemies.turrets.maxHp"
	TurretAttack      = "enemies.turrets.atk"
	TurretEvasion     = "enemies.turrets.ev"
	TurretRange       = "enemies.turrets.range"
	MedGelCount       = "items.med_gel.count"
	MedGelHeal        = "items.med_gel.heal"
	EMPChargeCount    = "items.emp_charge.count"
	EMPRadius         = "items.emp.radius"
	EMPTurns          = "items.emp.turns"
	DiceSides         = "combat.dice_sides"
	BaseDefense       = "combat.base_defense"
	MeleeDamage       = "combat.melee_damage"
	RangedDamage      = "combat.ranged_damage"
	RangedRange       = "combat.ranged_range"
	VisionRange       = "ai.vision_range"
	SearchTurns       = "ai.search_turns"
	CampTurns         = "ai.camp_turns"
	NoiseDoor         = "noise.door"
	NoiseBulkhead     = "noise.bulkhead"
	NoiseGunfire      = "noise.gunfire"
	GenCrates         = "generator.crates"
	GenTerminals      = "generator.terminals"
	GenBulkheads      = "generator.bulkheads"
	GenVents          = "generator.vents"
	CrateAmmoChance   = "items.crate.ammo_chance_pct"
	CrateAmmoBonus    = "items.crate.ammo_bonus"
	TerminalHintPct   = "items.terminal.hint_chance_pct"
	WinConditionCrate = "game.win_condition.crates"
)

// ErrUnknownKey is returned when a file or override names a key with no default
var ErrUnknownKey = errors.New("unknown config key")

// ErrBadValue is returned when a value is not an integer
var ErrBadValue = errors.New("config value is not an integer")

// Table is a flat key to integer configuration table
type Table map[string]int

var defaults = Table{
	MapWidth:  60,
	MapHeight: 30,

	PlayerHP:        10,
	PlayerMaxHP:     10,
	PlayerAttack:    2,
	PlayerEvasion:   2,
	PlayerFOVRadius: 8,
	PlayerPeekRange: 6,
	PlayerAmmo:      6,
	PlayerMedGel:    1,
	PlayerEMPCharge: 1,
	PlayerPistol:    1,

	DroneCount:    4,
	DroneHP:       4,
	DroneMaxHP:    4,
	DroneAttack:   1,
	DroneEvasion:  1,
	TurretCount:   2,
	TurretHP:      6,
	TurretMaxHP:   6,
	TurretAttack:  2,
	TurretEvasion: 0,
	TurretRange:   6,

	MedGelCount:    2,
	MedGelHeal:     4,
	EMPChargeCount: 1,
	EMPRadius:      3,
	EMPTurns:       5,

	DiceSides:    20,
	BaseDefense:  10,
	MeleeDamage:  1,
	RangedDamage: 2,
	RangedRange:  6,

	VisionRange: 10,
	SearchTurns: 5,
	CampTurns:   3,

	NoiseDoor:     6,
	NoiseBulkhead: 3,
	NoiseGunfire:  12,

	GenCrates:    3,
	GenTerminals: 2,
	GenBulkheads: 2,
	GenVents:     4,

	CrateAmmoChance: 10,
	CrateAmmoBonus:  2,
	TerminalHintPct: 50,

	WinConditionCrate: 3,
}

// Defaults returns a fresh copy of the default table
func Defaults() Table {
	t := make(Table, len(defaults))
	for k, v := range defaults {
		t[k] = v
	}
	return t
}

// Get returns the value for key, or 0 if the key is missing
func (t Table) Get(key string) int {
	v, ok := t[key]
	if !ok {
		logger.Component("config").WithField("key", key).Warn("Missing config key, using 0.")
	}
	return v
}

// Clone returns an independent copy of the table
func (t Table) Clone() Table {
	c := make(Table, len(t))
	for k, v := range t {
		c[k] = v
	}
	return c
}

// Keys returns the table keys in sorted order
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set applies a single "key=value" override
func (t Table) Set(assignment string) error {
	key, value, ok := strings.Cut(assignment, "=")
	if !ok {
		return fmt.Errorf("override %q: expected key=value: %w", assignment, ErrBadValue)
	}
	return t.assign(strings.TrimSpace(key), strings.TrimSpace(value))
}

func (t Table) assign(key, value string) error {
	if _, known := defaults[key]; !known {
		return fmt.Errorf("%q: %w", key, ErrUnknownKey)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%q = %q: %w", key, value, ErrBadValue)
	}
	t[key] = n
	return nil
}

// Parse reads a Java-style properties stream over t. Both "=" and ":"
// separators, "#" and "!" comments and continuation lines are accepted.
func (t Table) Parse(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read properties: %w", err)
	}
	props, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadValue, err)
	}
	for _, key := range props.Keys() {
		value, _ := props.Get(key)
		if err := t.assign(key, strings.TrimSpace(value)); err != nil {
			return err
		}
	}
	return nil
}

// Load returns the defaults overlaid with the properties file at path
func Load(path string) (Table, error) {
	t := Defaults()
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := t.Parse(f); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return t, nil
}
