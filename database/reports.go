package database

import (
	"database/sql"
	"time"
)

// GameSalesRow mirrors one row of vw_game_sales_report
type GameSalesRow struct {
	GameID       uint    `json:"game_id"`
	Name         string  `json:"name"`
	Platform     string  `json:"platform"`
	UnitsSold    int     `json:"units_sold"`
	Price        float64 `json:"price"`
	TotalRevenue float64 `json:"total_revenue"`
}

// PaymentHistoryRow mirrors one row of vw_employee_payment_history
type PaymentHistoryRow struct {
	EmployeeID uint       `json:"employee_id"`
	FullName   string     `json:"full_name"`
	Position   string     `json:"position"`
	Wage       float64    `json:"wage"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
}

// GameSalesReport returns every stocked game with at least one recorded
// sale, with total revenue = units sold × price. Games with no sales are
// excluded by the view.
func GameSalesReport() ([]GameSalesRow, error) {
	rows, err := ReportDB.Query(
		`SELECT game_id, name, platform, units_sold, price, total_revenue
		 FROM vw_game_sales_report
		 ORDER BY game_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := []GameSalesRow{}
	for rows.Next() {
		var r GameSalesRow
		if err := rows.Scan(&r.GameID, &r.Name, &r.Platform, &r.UnitsSold, &r.Price, &r.TotalRevenue); err != nil {
			return nil, err
		}
		report = append(report, r)
	}
	return report, rows.Err()
}

// EmployeePaymentHistory returns every employee's pay periods, current and
// historical. An open period has a nil end date.
func EmployeePaymentHistory() ([]PaymentHistoryRow, error) {
	rows, err := ReportDB.Query(
		`SELECT employee_id, full_name, position, wage, start_date, end_date
		 FROM vw_employee_payment_history
		 ORDER BY employee_id, start_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []PaymentHistoryRow{}
	for rows.Next() {
		var r PaymentHistoryRow
		var end sql.NullTime
		if err := rows.Scan(&r.EmployeeID, &r.FullName, &r.Position, &r.Wage, &r.StartDate, &end); err != nil {
			return nil, err
		}
		if end.Valid {
			r.EndDate = &end.Time
		}
		history = append(history, r)
	}
	return history, rows.Err()
}
