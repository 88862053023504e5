package item

import "encoding/json"

// Item is a game item as exchanged over the API and in upload files.
type Item struct {
	ID            string   `json:"id"            validate:"required"`
	Name          string   `json:"name"          validate:"required"`
	Description   string   `json:"description"   validate:"required"`
	StackSize     int      `json:"stackSize"     validate:"min=1"`
	EquipableSlot Slot     `json:"equipableSlot" validate:"slot"`
	Targettable   bool     `json:"targettable"`
	Consumable    bool     `json:"consumable"`
	Effects       *Effects `json:"effects"       validate:"required"`
}

// Effects holds the gameplay modifiers attached to an item.
// All groups are optional, but a valid item carries at least one of them.
type Effects struct {
	Attributes    *Attributes               `json:"attributes,omitzero"`
	Proficiencies map[string]ProficiencySet `json:"proficiencies,omitzero"`
	Inventory     *Inventory                `json:"inventory,omitzero"`
	Vitals        *Vitals                   `json:"vitals,omitzero"`
}

// IsEmpty reports whether no effect group is set.
func (e *Effects) IsEmpty() bool {
	return e == nil ||
		e.Attributes == nil &&
			e.Proficiencies == nil &&
			e.Inventory == nil &&
			e.Vitals == nil
}

// Attributes are flat stat modifiers.
type Attributes struct {
	Strength float64 `json:"strength"`
}

// Proficiency is a single skill level.
type Proficiency struct {
	Level int `json:"level"`
}

// ProficiencySet groups the skill proficiencies granted under one key.
type ProficiencySet struct {
	Swords    *Proficiency `json:"swords,omitzero"`
	ShortArms *Proficiency `json:"shortArms,omitzero"`
	LongArms  *Proficiency `json:"longArms,omitzero"`
	Daggers   *Proficiency `json:"daggers,omitzero"`
	Special   *Proficiency `json:"special,omitzero"`
	Bows      *Proficiency `json:"bows,omitzero"`
	Crossbows *Proficiency `json:"crossbows,omitzero"`
	Thrown    *Proficiency `json:"thrown,omitzero"`
	Pistols   *Proficiency `json:"pistols,omitzero"`
	SMGs      *Proficiency `json:"smgs,omitzero"`
	Rifles    *Proficiency `json:"rifles,omitzero"`
	Shotguns  *Proficiency `json:"shotguns,omitzero"`
	Spells    *Proficiency `json:"spells,omitzero"`
	Miracles  *Proficiency `json:"miracles,omitzero"`
	Summoning *Proficiency `json:"summoning,omitzero"`
	Gadgets   *Proficiency `json:"gadgets,omitzero"`
	Nanotech  *Proficiency `json:"nanotech,omitzero"`
	Drones    *Proficiency `json:"drones,omitzero"`
}

// Inventory grants extra carrying capacity and bundled items.
// Items is opaque: entries are kept exactly as uploaded, numbers included.
type Inventory struct {
	Slots int               `json:"slots"`
	Items []json.RawMessage `json:"items" validate:"required"`
}

// Gauge is a vital with optional current and max values.
type Gauge struct {
	Current *float64 `json:"current,omitzero"`
	Max     *float64 `json:"max,omitzero"`
}

// Stamina only tracks its current value.
type Stamina struct {
	Current float64 `json:"current"`
}

// Vitals are modifiers of the character's vital pools.
type Vitals struct {
	Health  *Gauge   `json:"health,omitzero"`
	Shields *Gauge   `json:"shields,omitzero"`
	Barrier *Gauge   `json:"barrier,omitzero"`
	Stamina *Stamina `json:"stamina,omitzero"`
}
