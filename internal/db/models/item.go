// Package models contains database model definitions.
package models

// Item is the stored row of a game item.
// Effects holds the serialized effects JSON; it is nil for rows written without effects.
type Item struct {
	ID            string  `gorm:"primaryKey;size:191"`
	Name          string  `gorm:"size:255;not null"`
	Description   string  `gorm:"type:text;not null"`
	StackSize     int     `gorm:"not null;default:1"`
	EquipableSlot string  `gorm:"size:20;not null"`
	Targettable   bool    `gorm:"not null"`
	Consumable    bool    `gorm:"not null"`
	Effects       *string `gorm:"type:text"`
}
