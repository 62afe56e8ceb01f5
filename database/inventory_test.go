package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRestockAndSell(t *testing.T) {
	setupTestDB(t)

	id := createTestGame(t, "Stardew Valley", "Switch", 0)
	require.NoError(t, RestockGame(id, 10, floatPtr(39.99)))
	require.NoError(t, RecordSale(id, 3))

	game, err := GetGame(id)
	require.NoError(t, err)
	require.NotNil(t, game)
	require.NotNil(t, game.Inventory)
	assert.Equal(t, 7, game.Inventory.UnitsOnHand)
	assert.Equal(t, 3, game.Inventory.UnitsSold)
	assert.InDelta(t, 39.99, game.Inventory.Price, 0.001)
}

func TestRecordSaleInsufficientStock(t *testing.T) {
	setupTestDB(t)

	id := createTestGame(t, "Hades", "Switch", 0)
	require.NoError(t, RestockGame(id, 2, floatPtr(24.99)))

	err := RecordSale(id, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConstraintViolation)

	game, err := GetGame(id)
	require.NoError(t, err)
	require.NotNil(t, game.Inventory)
	assert.Equal(t, 2, game.Inventory.UnitsOnHand)
	assert.Equal(t, 0, game.Inventory.UnitsSold)
}

func TestRecordSaleRejectsNonPositiveQuantity(t *testing.T) {
	setupTestDB(t)

	id := createTestGame(t, "Celeste", "PC", 0)

	assert.ErrorIs(t, RecordSale(id, 0), ErrConstraintViolation)
	assert.ErrorIs(t, RecordSale(id, -1), ErrConstraintViolation)
}

func TestRestockCannotGoNegative(t *testing.T) {
	setupTestDB(t)

	id := createTestGame(t, "Undertale", "PC", 0)
	require.NoError(t, RestockGame(id, 5, floatPtr(9.99)))

	err := RestockGame(id, -8, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConstraintViolation)

	game, err := GetGame(id)
	require.NoError(t, err)
	assert.Equal(t, 5, game.Inventory.UnitsOnHand)
}

func TestRestockAppliesDeltaInPlace(t *testing.T) {
	setupTestDB(t)

	id := createTestGame(t, "Portal 2", "PC", 0)
	require.NoError(t, RestockGame(id, 5, floatPtr(19.99)))
	require.NoError(t, RestockGame(id, 3, nil))
	require.NoError(t, RestockGame(id, -4, nil))

	game, err := GetGame(id)
	require.NoError(t, err)
	require.NotNil(t, game.Inventory)
	assert.Equal(t, 4, game.Inventory.UnitsOnHand)
	assert.InDelta(t, 19.99, game.Inventory.Price, 0.001)
}

func TestRestockUnknownGame(t *testing.T) {
	setupTestDB(t)

	err := RestockGame(4242, 5, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
