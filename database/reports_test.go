package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameSalesReportExcludesUnsoldGames(t *testing.T) {
	setupTestDB(t)

	unsold := createTestGame(t, "Shelf Warmer", "PS5", 0)
	sold := createTestGame(t, "Chrono Trigger", "SNES", 5)
	require.NoError(t, RestockGame(sold, 10, floatPtr(59.99)))

	report, err := GameSalesReport()
	require.NoError(t, err)

	require.Len(t, report, 1)
	row := report[0]
	assert.Equal(t, sold, row.GameID)
	assert.NotEqual(t, unsold, row.GameID)
	assert.Equal(t, "Chrono Trigger", row.Name)
	assert.Equal(t, "SNES", row.Platform)
	assert.Equal(t, 5, row.UnitsSold)
	assert.InDelta(t, 59.99, row.Price, 0.001)
	assert.InDelta(t, 299.95, row.TotalRevenue, 0.001)
}

func TestGameSalesReportReflectsNewSales(t *testing.T) {
	setupTestDB(t)

	id := createTestGame(t, "Metroid Prime", "GameCube", 0)
	require.NoError(t, RestockGame(id, 4, floatPtr(49.99)))

	report, err := GameSalesReport()
	require.NoError(t, err)
	assert.Empty(t, report)

	require.NoError(t, RecordSale(id, 2))

	report, err = GameSalesReport()
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, 2, report[0].UnitsSold)
	assert.InDelta(t, 99.98, report[0].TotalRevenue, 0.001)
}

func TestEmployeePaymentHistory(t *testing.T) {
	setupTestDB(t)

	employee := Employee{FirstName: "Alice", LastName: "Nguyen", DateOfBirth: time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, DB.Create(&employee).Error)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, AssignPayRate(employee.ID, "Sales Associate", 15.50, start))
	require.NoError(t, AssignPayRate(employee.ID, "Shift Lead", 19.25, start.AddDate(1, 0, 0)))

	history, err := EmployeePaymentHistory()
	require.NoError(t, err)
	require.Len(t, history, 2)

	first, second := history[0], history[1]
	assert.Equal(t, employee.ID, first.EmployeeID)
	assert.Equal(t, "Alice Nguyen", first.FullName)
	assert.Equal(t, "Sales Associate", first.Position)
	assert.InDelta(t, 15.50, first.Wage, 0.001)
	require.NotNil(t, first.EndDate)

	assert.Equal(t, "Shift Lead", second.Position)
	assert.InDelta(t, 19.25, second.Wage, 0.001)
	assert.Nil(t, second.EndDate)
}

func TestEmployeePaymentHistoryEmptyWithoutRates(t *testing.T) {
	setupTestDB(t)

	employee := Employee{FirstName: "Bo", LastName: "Larsen", DateOfBirth: time.Date(1985, 7, 2, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, DB.Create(&employee).Error)

	history, err := EmployeePaymentHistory()
	require.NoError(t, err)
	assert.Empty(t, history)
}
