// Package item provides the database operations for game items.
package item

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/GameItem-Admin/GameItem-Admin/internal/db/models"
)

const (
	idQueryPattern = "id = ?"
)

// ConflictPolicy decides what Upsert does with a row whose id already exists.
type ConflictPolicy string

const (
	// OnConflictIgnore keeps the stored row untouched.
	OnConflictIgnore ConflictPolicy = "ignore"
	// OnConflictOverwrite replaces every column of the stored row.
	OnConflictOverwrite ConflictPolicy = "overwrite"
)

// Valid reports whether p is a known policy.
func (p ConflictPolicy) Valid() bool {
	return p == OnConflictIgnore || p == OnConflictOverwrite
}

// Outcome is the effect an Upsert had on the table.
type Outcome string

const (
	// OutcomeInserted means a new row was written.
	OutcomeInserted Outcome = "inserted"
	// OutcomeUpdated means an existing row was overwritten.
	OutcomeUpdated Outcome = "updated"
	// OutcomeSkipped means the id existed and the row was left as is.
	OutcomeSkipped Outcome = "skipped"
)

var (
	// ErrItemNotFound is returned when an item is not found.
	ErrItemNotFound = errors.New("item not found")
	// ErrItemIDEmpty is returned when an item id is empty.
	ErrItemIDEmpty = errors.New("item id cannot be empty")
	// ErrUnknownPolicy is returned for an unsupported conflict policy.
	ErrUnknownPolicy = errors.New("unknown conflict policy")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves an item by its id.
func Get(db *gorm.DB, id string) (*models.Item, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if id == "" {
		return nil, ErrItemIDEmpty
	}

	var row models.Item
	result := db.Where(idQueryPattern, id).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, result.Error
	}

	return &row, nil
}

// GetAll retrieves every stored item. The order is whatever the database returns.
func GetAll(db *gorm.DB) ([]models.Item, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	rows := make([]models.Item, 0)
	result := db.Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

// Count returns the number of stored items.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	if err := db.Model(&models.Item{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// Upsert writes row keyed on its id.
// With OnConflictIgnore an existing row is not modified.
func Upsert(db *gorm.DB, row *models.Item, policy ConflictPolicy) (Outcome, error) {
	if db == nil {
		return "", ErrDBNil
	}
	if row == nil || row.ID == "" {
		return "", ErrItemIDEmpty
	}
	if !policy.Valid() {
		return "", ErrUnknownPolicy
	}

	var existing int64
	if err := db.Model(&models.Item{}).Where(idQueryPattern, row.ID).Count(&existing).Error; err != nil {
		return "", err
	}

	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}
	if policy == OnConflictOverwrite {
		onConflict = clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}
	}

	result := db.Clauses(onConflict).Create(row)
	if result.Error != nil {
		return "", result.Error
	}

	switch {
	case existing > 0 && policy == OnConflictOverwrite:
		return OutcomeUpdated, nil
	case existing > 0, result.RowsAffected == 0:
		// a concurrent upload may have inserted the id since the count
		return OutcomeSkipped, nil
	default:
		return OutcomeInserted, nil
	}
}
