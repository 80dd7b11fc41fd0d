package entities

import (
	"darkstation/pkg/engine/world"
)

// Inventory item names
const (
	ItemAmmo      = "ammo"
	ItemMedGel    = "med-gel"
	ItemEMPCharge = "emp-charge"
	ItemPistol    = "pistol"
)

// Inventory holds carried item counts by name
type Inventory map[string]int

// Count returns how many of item are carried
func (inv Inventory) Count(item string) int {
	return inv[item]
}

// Add adds n of item
func (inv Inventory) Add(item string, n int) {
	inv[item] += n
}

// Take removes one of item. Returns false if none are carried.
func (inv Inventory) Take(item string) bool {
	if inv[item] <= 0 {
		return false
	}
	inv[item]--
	return true
}

// PickupKind identifies a non-combat object placed on the map
type PickupKind int

const (
	PickupMedGel PickupKind = iota
	PickupEMPCharge
	PickupCrate
	PickupTerminal
)

// PickupInfo contains display and inventory information for each pickup kind
type PickupInfo struct {
	Name      string
	Icon      string
	Item      string // Inventory item granted on pickup, empty if not carryable
	Carryable bool
}

// PickupTypes maps pickup kinds to their information
var PickupTypes = map[PickupKind]PickupInfo{
	PickupMedGel: {
		Name:      "Med-gel",
		Icon:      "m",
		Item:      ItemMedGel,
		Carryable: true,
	},
	PickupEMPCharge: {
		Name:      "EMP charge",
		Icon:      "e",
		Item:      ItemEMPCharge,
		Carryable: true,
	},
	PickupCrate: {
		Name: "Salvage crate",
		Icon: "$",
	},
	PickupTerminal: {
		Name: "Terminal",
		Icon: "&",
	},
}

// Pickup is an object on the map. Pickups never block movement.
type Pickup struct {
	ID   int
	Kind PickupKind
	Pos  world.Point

	// Terminal state
	Lore string
	Used bool
}

// Info returns the type information for the pickup
func (p *Pickup) Info() PickupInfo {
	return PickupTypes[p.Kind]
}
