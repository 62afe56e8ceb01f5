package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testActor = "tester@gamevault.local"

func createTestGame(t *testing.T, name, platform string, unitsSold int) uint {
	t.Helper()
	id, err := CreateGame(testActor, GameItemInput{
		Name:        name,
		Platform:    platform,
		Genre:       strPtr("RPG"),
		ReleaseYear: "1998",
		Description: "test game",
		UnitsSold:   unitsSold,
	})
	require.NoError(t, err)
	require.NotZero(t, id)
	return id
}

func TestCreateGameRoundTrip(t *testing.T) {
	setupTestDB(t)

	id, err := CreateGame(testActor, GameItemInput{
		Name:        "Ocarina of Time",
		Platform:    "N64",
		Genre:       strPtr("Adventure"),
		ReleaseYear: "1998",
		Description: "classic",
		UnitsSold:   3,
	})
	require.NoError(t, err)

	game, err := GetGame(id)
	require.NoError(t, err)
	require.NotNil(t, game)
	assert.Equal(t, "Ocarina of Time", game.Name)
	assert.Equal(t, "N64", game.Platform)
	require.NotNil(t, game.Genre)
	assert.Equal(t, "Adventure", *game.Genre)
	assert.Equal(t, "1998", game.ReleaseYear)
	require.NotNil(t, game.Inventory)
	assert.Equal(t, 3, game.Inventory.UnitsSold)
	assert.Equal(t, 0, game.Inventory.UnitsOnHand)

	assert.EqualValues(t, 1, countAuditEntries(t, AuditActionInsert, id))
}

func TestCreateGameAssignsUniqueIDs(t *testing.T) {
	setupTestDB(t)

	first := createTestGame(t, "Game A", "PS2", 0)
	second := createTestGame(t, "Game B", "PS2", 0)

	assert.NotEqual(t, first, second)
	assert.Greater(t, second, first)
}

func TestCreateGameFailureLeavesNoPartialRow(t *testing.T) {
	setupTestDB(t)

	// A negative initial units-sold violates the inventory CHECK constraint
	// after the game row has already been inserted, so the whole create must
	// unwind.
	_, err := CreateGame(testActor, GameItemInput{
		Name:      "Half Written",
		Platform:  "PS2",
		UnitsSold: -1,
	})
	require.Error(t, err)

	var creationErr *CreationError
	assert.ErrorAs(t, err, &creationErr)

	var games, inventories, entries int64
	require.NoError(t, DB.Model(&GameItem{}).Count(&games).Error)
	require.NoError(t, DB.Model(&Inventory{}).Count(&inventories).Error)
	require.NoError(t, DB.Model(&AuditLogEntry{}).Count(&entries).Error)
	assert.Zero(t, games)
	assert.Zero(t, inventories)
	assert.Zero(t, entries)
}

func TestGetGameAbsent(t *testing.T) {
	setupTestDB(t)

	game, err := GetGame(9999)
	require.NoError(t, err)
	assert.Nil(t, game)
}

func TestUpdateGameMatch(t *testing.T) {
	setupTestDB(t)

	id := createTestGame(t, "Secret of Mana", "SNES", 0)

	err := UpdateGame(testActor, id,
		GameItemMatch{Name: "Secret of Mana", Platform: "SNES", UnitsSold: 0},
		GameItemMatch{Name: "Secret of Mana", Platform: "SNES", UnitsSold: 4})
	require.NoError(t, err)

	game, err := GetGame(id)
	require.NoError(t, err)
	require.NotNil(t, game)
	require.NotNil(t, game.Inventory)
	assert.Equal(t, 4, game.Inventory.UnitsSold)

	assert.EqualValues(t, 1, countAuditEntries(t, AuditActionUpdate, id))
}

func TestUpdateGameStaleValuesLeaveRowUnchanged(t *testing.T) {
	setupTestDB(t)

	id := createTestGame(t, "Secret of Mana", "SNES", 0)

	err := UpdateGame(testActor, id,
		GameItemMatch{Name: "Secret of Mana", Platform: "SNES", UnitsSold: 7},
		GameItemMatch{Name: "Renamed", Platform: "SNES", UnitsSold: 8})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPreconditionFailed)
	assert.Contains(t, err.Error(), "no matching record found for update")

	game, err := GetGame(id)
	require.NoError(t, err)
	require.NotNil(t, game)
	assert.Equal(t, "Secret of Mana", game.Name)
	require.NotNil(t, game.Inventory)
	assert.Equal(t, 0, game.Inventory.UnitsSold)

	assert.EqualValues(t, 0, countAuditEntries(t, AuditActionUpdate, id))
}

func TestDeleteGameMatch(t *testing.T) {
	setupTestDB(t)

	id := createTestGame(t, "Earthbound", "SNES", 2)

	err := DeleteGame(testActor, id, GameItemMatch{Name: "Earthbound", Platform: "SNES", UnitsSold: 2})
	require.NoError(t, err)

	game, err := GetGame(id)
	require.NoError(t, err)
	assert.Nil(t, game)

	assert.EqualValues(t, 1, countAuditEntries(t, AuditActionDelete, id))
}

func TestDeleteGameStaleValues(t *testing.T) {
	setupTestDB(t)

	id := createTestGame(t, "Earthbound", "SNES", 2)

	err := DeleteGame(testActor, id, GameItemMatch{Name: "Earthbound", Platform: "Genesis", UnitsSold: 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPreconditionFailed)
	assert.Contains(t, err.Error(), "no matching record found for deletion")

	// Both rows survive the rolled-back delete
	game, err := GetGame(id)
	require.NoError(t, err)
	require.NotNil(t, game)
	require.NotNil(t, game.Inventory)

	assert.EqualValues(t, 0, countAuditEntries(t, AuditActionDelete, id))
}

func TestAuditEntryFields(t *testing.T) {
	setupTestDB(t)

	id := createTestGame(t, "Chrono Cross", "PS1", 0)

	var entry AuditLogEntry
	require.NoError(t, DB.Where("record_id = ?", id).First(&entry).Error)
	assert.Equal(t, "Game_item", entry.TableName)
	assert.Equal(t, AuditActionInsert, entry.Action)
	assert.Equal(t, id, entry.RecordID)
	assert.Equal(t, testActor, entry.Actor)
	assert.False(t, entry.CreatedAt.IsZero())
}

// The full catalog lifecycle: create, read back, update once, then observe a
// second update against the old values fail because the row moved on.
func TestCatalogLifecycle(t *testing.T) {
	setupTestDB(t)

	id, err := CreateGame(testActor, GameItemInput{
		Name:        "Chrono Trigger",
		Platform:    "SNES",
		Genre:       strPtr("RPG"),
		ReleaseYear: "1995",
		Description: "time-travel RPG",
		UnitsSold:   0,
	})
	require.NoError(t, err)

	game, err := GetGame(id)
	require.NoError(t, err)
	require.NotNil(t, game)
	assert.Equal(t, "Chrono Trigger", game.Name)

	err = UpdateGame(testActor, id,
		GameItemMatch{Name: "Chrono Trigger", Platform: "SNES", UnitsSold: 0},
		GameItemMatch{Name: "Chrono Trigger", Platform: "SNES", UnitsSold: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 1, countAuditEntries(t, AuditActionUpdate, id))

	// Same expected values again: units sold is now 1, so the match fails
	err = UpdateGame(testActor, id,
		GameItemMatch{Name: "Chrono Trigger", Platform: "SNES", UnitsSold: 0},
		GameItemMatch{Name: "Chrono Trigger", Platform: "SNES", UnitsSold: 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPreconditionFailed)
	assert.EqualValues(t, 1, countAuditEntries(t, AuditActionUpdate, id))
}
