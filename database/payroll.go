package database

import (
	"time"

	"gorm.io/gorm"
)

// AssignPayRate gives an employee a new position and wage starting at start.
// Any currently open rate is closed at the same instant, so at most one rate
// per employee ever has a null end date.
func AssignPayRate(employeeID uint, position string, wage float64, start time.Time) error {
	err := DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&PayRate{}).
			Where("employee_id = ? AND end_date IS NULL", employeeID).
			Update("end_date", start).Error; err != nil {
			return err
		}

		rate := PayRate{
			EmployeeID: employeeID,
			StartDate:  start,
			HourlyWage: wage,
			Position:   position,
		}
		return tx.Create(&rate).Error
	})
	return classifyError(err)
}

// EndPayRate closes an employee's open rate at end. Fails with
// ErrPreconditionFailed when the employee has no open rate.
func EndPayRate(employeeID uint, end time.Time) error {
	res := DB.Model(&PayRate{}).
		Where("employee_id = ? AND end_date IS NULL", employeeID).
		Update("end_date", end)
	if res.Error != nil {
		return classifyError(res.Error)
	}
	if res.RowsAffected == 0 {
		return &PreconditionError{Op: "pay rate closure"}
	}
	return nil
}
