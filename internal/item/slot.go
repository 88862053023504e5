package item

// Slot is the equipment slot an item occupies when equipped.
type Slot string

// Equipment slots.
const (
	SlotNone     Slot = "NONE"
	SlotHead     Slot = "HEAD"
	SlotNecklace Slot = "NECKLACE"
	SlotTorso    Slot = "TORSO"
	SlotLegs     Slot = "LEGS"
	SlotBoots    Slot = "BOOTS"
	SlotGloves   Slot = "GLOVES"
	SlotRing     Slot = "RING"
	SlotMainHand Slot = "MAINHAND"
	SlotOffHand  Slot = "OFFHAND"
	SlotBackpack Slot = "BACKPACK"
	SlotAmmo     Slot = "AMMO"
	SlotPocket   Slot = "POCKET"
)

// Slots lists every valid slot in display order.
var Slots = []Slot{ //nolint:gochecknoglobals
	SlotNone,
	SlotHead,
	SlotNecklace,
	SlotTorso,
	SlotLegs,
	SlotBoots,
	SlotGloves,
	SlotRing,
	SlotMainHand,
	SlotOffHand,
	SlotBackpack,
	SlotAmmo,
	SlotPocket,
}

// Valid reports whether s is part of the closed slot set.
func (s Slot) Valid() bool {
	for _, known := range Slots {
		if s == known {
			return true
		}
	}

	return false
}

func (s Slot) String() string {
	return string(s)
}
