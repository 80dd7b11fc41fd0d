package gameplay

import (
	"strings"

	engineinput "darkstation/pkg/engine/input"
	"darkstation/pkg/engine/world"
	"darkstation/pkg/game/combat"
	"darkstation/pkg/game/devtools"
	"darkstation/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
// If the intent takes a turn the rest of the station acts before it returns.
func ProcessIntent(g *state.Game, intent engineinput.Intent) bool {
	if g.Status != state.StatusRunning {
		return false
	}

	taken := false
	switch intent.Action {
	case engineinput.ActionNone:
		logMessage(g, "Unknown command. Press ? for help.")
		return false

	case engineinput.ActionQuit:
		g.Status = state.StatusQuit
		return false

	case engineinput.ActionHelp:
		showHelp(g)
		return false

	case engineinput.ActionMapDump:
		path, err := devtools.DumpMapToFile(g, devtools.MapDumpFilename)
		if err != nil {
			logMessage(g, "Map dump failed: %v", err)
		} else {
			logMessage(g, "Map dumped to %s", path)
		}
		return false

	case engineinput.ActionToggleWeapon:
		ToggleWeapon(g)
		return false

	case engineinput.ActionPeek:
		taken = Peek(g, intent.Dir)

	case engineinput.ActionMoveNorth:
		taken = MovePlayer(g, world.North)
	case engineinput.ActionMoveEast:
		taken = MovePlayer(g, world.East)
	case engineinput.ActionMoveSouth:
		taken = MovePlayer(g, world.South)
	case engineinput.ActionMoveWest:
		taken = MovePlayer(g, world.West)

	case engineinput.ActionWait:
		taken = true
	case engineinput.ActionInteract:
		taken = Interact(g)
	case engineinput.ActionUseMedGel:
		taken = UseMedGel(g)
	case engineinput.ActionUseEMP:
		taken = UseEMP(g, intent.Target)
	case engineinput.ActionFire:
		taken = Fire(g, intent.Dir)
	}

	if taken {
		AdvanceTurn(g)
	}
	return taken
}

// Fire shoots the player's pistol. Returns true if a turn was taken.
func Fire(g *state.Game, d world.Direction) bool {
	return combat.Fire(g, d)
}

func showHelp(g *state.Game) {
	order := []engineinput.Action{
		engineinput.ActionMoveNorth, engineinput.ActionMoveSouth,
		engineinput.ActionMoveWest, engineinput.ActionMoveEast,
		engineinput.ActionWait, engineinput.ActionInteract,
		engineinput.ActionUseMedGel, engineinput.ActionUseEMP,
		engineinput.ActionPeek, engineinput.ActionToggleWeapon,
		engineinput.ActionFire,
		engineinput.ActionMapDump, engineinput.ActionQuit,
	}
	byAction := engineinput.GetBindingsByAction()
	parts := make([]string, 0, len(order))
	for _, a := range order {
		codes := byAction[a]
		if len(codes) == 0 {
			continue
		}
		parts = append(parts, strings.Join(codes, "/")+" "+engineinput.ActionName(a))
	}
	logMessage(g, "Keys: %s", strings.Join(parts, ", "))
}
