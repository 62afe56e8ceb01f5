package database

import (
	"fmt"

	"gorm.io/gorm"
)

// RestockGame adjusts a game's shelf count by delta units and, when price is
// non-nil, reprices it. The floor check rides in the WHERE clause so a
// concurrent adjustment cannot drive the stock below zero.
func RestockGame(gameID uint, delta int, price *float64) error {
	updates := map[string]interface{}{
		"units_on_hand": gorm.Expr("units_on_hand + ?", delta),
	}
	if price != nil {
		updates["price"] = *price
	}

	err := DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Inventory{}).
			Where("game_id = ? AND units_on_hand + ? >= 0", gameID, delta).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var inv Inventory
			if err := tx.First(&inv, "game_id = ?", gameID).Error; err != nil {
				return err
			}
			return fmt.Errorf("%w: units on hand cannot go below zero", ErrConstraintViolation)
		}
		return nil
	})
	return classifyError(err)
}

// RecordSale moves qty units from on-hand to sold for one game. The stock
// check rides in the WHERE clause so a concurrent sale cannot oversell.
func RecordSale(gameID uint, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: sale quantity must be positive", ErrConstraintViolation)
	}

	err := DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Inventory{}).
			Where("game_id = ? AND units_on_hand >= ?", gameID, qty).
			Updates(map[string]interface{}{
				"units_on_hand": gorm.Expr("units_on_hand - ?", qty),
				"units_sold":    gorm.Expr("units_sold + ?", qty),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: insufficient stock for game %d", ErrConstraintViolation, gameID)
		}
		return nil
	})
	return classifyError(err)
}
