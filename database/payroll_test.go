package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestEmployee(t *testing.T) uint {
	t.Helper()
	employee := Employee{
		FirstName:   "Dana",
		LastName:    "Okafor",
		DateOfBirth: time.Date(1992, 11, 5, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, DB.Create(&employee).Error)
	return employee.ID
}

func countOpenRates(t *testing.T, employeeID uint) int64 {
	t.Helper()
	var count int64
	err := DB.Model(&PayRate{}).
		Where("employee_id = ? AND end_date IS NULL", employeeID).
		Count(&count).Error
	require.NoError(t, err)
	return count
}

func TestAssignPayRateClosesOpenRate(t *testing.T) {
	setupTestDB(t)

	id := createTestEmployee(t)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, AssignPayRate(id, "Cashier", 14.00, start))
	require.NoError(t, AssignPayRate(id, "Keyholder", 16.50, start.AddDate(0, 6, 0)))

	var rates []PayRate
	require.NoError(t, DB.Where("employee_id = ?", id).Order("start_date").Find(&rates).Error)
	require.Len(t, rates, 2)

	require.NotNil(t, rates[0].EndDate)
	assert.WithinDuration(t, start.AddDate(0, 6, 0), *rates[0].EndDate, time.Second)
	assert.Nil(t, rates[1].EndDate)

	assert.EqualValues(t, 1, countOpenRates(t, id))
}

func TestEndPayRate(t *testing.T) {
	setupTestDB(t)

	id := createTestEmployee(t)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, AssignPayRate(id, "Cashier", 14.00, start))

	require.NoError(t, EndPayRate(id, start.AddDate(0, 3, 0)))
	assert.EqualValues(t, 0, countOpenRates(t, id))
}

func TestEndPayRateWithoutOpenRate(t *testing.T) {
	setupTestDB(t)

	id := createTestEmployee(t)

	err := EndPayRate(id, time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPreconditionFailed)
}

func TestAssignPayRateUnknownEmployee(t *testing.T) {
	setupTestDB(t)

	err := AssignPayRate(777, "Cashier", 14.00, time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReferentialIntegrity)
}
