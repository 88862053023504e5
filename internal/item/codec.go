package item

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/GameItem-Admin/GameItem-Admin/internal/db/models"
)

// ToPersisted converts a wire item into its database row.
// Effects is stored as its canonical JSON text; nil effects become NULL.
func ToPersisted(it Item) (models.Item, error) {
	row := models.Item{
		ID:            it.ID,
		Name:          it.Name,
		Description:   it.Description,
		StackSize:     it.StackSize,
		EquipableSlot: it.EquipableSlot.String(),
		Targettable:   it.Targettable,
		Consumable:    it.Consumable,
	}

	if it.Effects != nil {
		encoded, err := json.Marshal(it.Effects)
		if err != nil {
			return models.Item{}, fmt.Errorf("encode effects of item %s: %w", it.ID, err)
		}

		text := string(encoded)
		row.Effects = &text
	}

	return row, nil
}

// ToWire converts a database row back into a wire item.
// A NULL, empty or JSON null effects column yields nil effects.
func ToWire(row models.Item) (Item, error) {
	it := Item{
		ID:            row.ID,
		Name:          row.Name,
		Description:   row.Description,
		StackSize:     row.StackSize,
		EquipableSlot: Slot(row.EquipableSlot),
		Targettable:   row.Targettable,
		Consumable:    row.Consumable,
	}

	if row.Effects == nil {
		return it, nil
	}

	text := bytes.TrimSpace([]byte(*row.Effects))
	if len(text) == 0 || bytes.Equal(text, []byte("null")) {
		return it, nil
	}

	var effects Effects
	if err := json.Unmarshal(text, &effects); err != nil {
		return Item{}, fmt.Errorf("%w: item %s: %w", ErrCorruptEffects, row.ID, err)
	}

	it.Effects = &effects

	return it, nil
}

// ToWireAll converts every row, failing on the first corrupt one.
func ToWireAll(rows []models.Item) ([]Item, error) {
	out := make([]Item, 0, len(rows))

	for _, row := range rows {
		it, err := ToWire(row)
		if err != nil {
			return nil, err
		}

		out = append(out, it)
	}

	return out, nil
}

// DecodeBatch splits an uploaded document into candidate records.
// A top level array yields its elements in order; any other JSON value
// is a single candidate.
func DecodeBatch(data []byte) ([]json.RawMessage, error) {
	// tolerate a UTF-8 byte order mark written by some editors
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")))

	if !json.Valid(trimmed) {
		return nil, ErrDecode
	}

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var candidates []json.RawMessage
		if err := json.Unmarshal(trimmed, &candidates); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}

		return candidates, nil
	}

	return []json.RawMessage{json.RawMessage(trimmed)}, nil
}
