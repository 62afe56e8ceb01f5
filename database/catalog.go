package database

import (
	"errors"

	"gorm.io/gorm"
)

// Catalog procedures. Every mutation of game_items (and its inventory row)
// goes through these four functions, which write the change and its audit
// entry inside one transaction. Nothing else in the application writes to
// either table, so a mutation can never skip the log.

// GameItemInput carries the caller-supplied fields for a new catalog entry
type GameItemInput struct {
	Name        string
	Platform    string
	Genre       *string
	ReleaseYear string
	Description string
	UnitsSold   int
}

// GameItemMatch is the expected current state an update or delete must find
// before it may touch the row. Matching guards against acting on values the
// caller read before another writer changed them.
type GameItemMatch struct {
	Name      string
	Platform  string
	UnitsSold int
}

// CreateGame inserts a new catalog entry with its inventory row and returns
// the assigned id. Any failure rolls the whole insert back and surfaces as a
// *CreationError; no partial row is left behind.
func CreateGame(actor string, input GameItemInput) (uint, error) {
	var id uint
	err := DB.Transaction(func(tx *gorm.DB) error {
		game := GameItem{
			Name:        input.Name,
			Platform:    input.Platform,
			Genre:       input.Genre,
			ReleaseYear: input.ReleaseYear,
			Description: input.Description,
		}
		if err := tx.Create(&game).Error; err != nil {
			return err
		}

		inventory := Inventory{GameID: game.ID, UnitsSold: input.UnitsSold}
		if err := tx.Create(&inventory).Error; err != nil {
			return err
		}

		if err := appendAuditEntry(tx, AuditActionInsert, game.ID, actor); err != nil {
			return err
		}

		id = game.ID
		return nil
	})
	if err != nil {
		return 0, &CreationError{Err: classifyError(err)}
	}
	return id, nil
}

// GetGame returns the catalog entry with its inventory, or (nil, nil) when
// no such id exists. Absence is a reportable outcome, not an error.
func GetGame(id uint) (*GameItem, error) {
	var game GameItem
	err := DB.Preload("Inventory").First(&game, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// UpdateGame overwrites name, platform and units sold for one catalog entry.
// The expected values are compared inside the transaction; when they no
// longer match the row, nothing changes and ErrPreconditionFailed surfaces.
func UpdateGame(actor string, id uint, expected, updated GameItemMatch) error {
	err := DB.Transaction(func(tx *gorm.DB) error {
		// Conditional writes carry the expected values in their WHERE clause,
		// so the match and the overwrite land in the same statement.
		res := tx.Model(&GameItem{}).
			Where("id = ? AND name = ? AND platform = ?", id, expected.Name, expected.Platform).
			Updates(map[string]interface{}{
				"name":     updated.Name,
				"platform": updated.Platform,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &PreconditionError{Op: "update"}
		}

		res = tx.Model(&Inventory{}).
			Where("game_id = ? AND units_sold = ?", id, expected.UnitsSold).
			Update("units_sold", updated.UnitsSold)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &PreconditionError{Op: "update"}
		}

		return appendAuditEntry(tx, AuditActionUpdate, id, actor)
	})
	return classifyError(err)
}

// DeleteGame removes one catalog entry under the same expected-state match
// as UpdateGame. The inventory row goes first so the foreign key holds.
func DeleteGame(actor string, id uint, expected GameItemMatch) error {
	err := DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("game_id = ? AND units_sold = ?", id, expected.UnitsSold).
			Delete(&Inventory{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &PreconditionError{Op: "deletion"}
		}

		res = tx.Where("id = ? AND name = ? AND platform = ?", id, expected.Name, expected.Platform).
			Delete(&GameItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &PreconditionError{Op: "deletion"}
		}

		return appendAuditEntry(tx, AuditActionDelete, id, actor)
	})
	return classifyError(err)
}

// appendAuditEntry writes the audit row inside the caller's transaction so a
// failed append fails the mutation with it.
func appendAuditEntry(tx *gorm.DB, action string, recordID uint, actor string) error {
	entry := AuditLogEntry{
		TableName: AuditTableGameItem,
		Action:    action,
		RecordID:  recordID,
		Actor:     actor,
	}
	return tx.Create(&entry).Error
}
