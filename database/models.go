package database

import (
	"time"

	"gorm.io/gorm"
)

// Address is a standalone mailing address. Customers reference addresses but
// never own them; an address referenced by any customer cannot be deleted.
type Address struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Street string `gorm:"size:100;not null" json:"street"`
	City   string `gorm:"size:50;not null" json:"city"`
	State  string `gorm:"size:2;not null" json:"state"`
	Zip    string `gorm:"size:10;not null" json:"zip"`
}

// Employee represents a store employee
type Employee struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName   string    `gorm:"size:50;not null" json:"first_name"`
	LastName    string    `gorm:"size:50;not null" json:"last_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	PayRates    []PayRate `gorm:"foreignKey:EmployeeID" json:"pay_rates,omitempty"`
}

// PayRate is one period of an employee's pay history, keyed by employee and
// start date. A null end date marks the currently active rate; the payroll
// procedures keep at most one rate open per employee.
type PayRate struct {
	EmployeeID uint       `gorm:"primaryKey" json:"employee_id"`
	StartDate  time.Time  `gorm:"primaryKey" json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
	HourlyWage float64    `gorm:"not null" json:"hourly_wage"`
	Position   string     `gorm:"size:50;not null" json:"position"`
}

// GameItem is a catalog entry. All mutation of this table goes through the
// catalog procedures in catalog.go so every change lands in the audit log.
type GameItem struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"size:100;not null" json:"name"`
	Platform    string     `gorm:"size:50;not null" json:"platform"`
	Genre       *string    `gorm:"size:50" json:"genre"`
	ReleaseYear string     `gorm:"size:4" json:"release_year"`
	Description string     `gorm:"type:text" json:"description"`
	Inventory   *Inventory `gorm:"foreignKey:GameID" json:"inventory,omitempty"`
}

// Inventory tracks stock and sales for one game, keyed by the game's id
type Inventory struct {
	GameID      uint    `gorm:"primaryKey" json:"game_id"`
	UnitsOnHand int     `gorm:"not null;default:0;check:units_on_hand >= 0" json:"units_on_hand"`
	UnitsSold   int     `gorm:"not null;default:0;check:units_sold >= 0" json:"units_sold"`
	Price       float64 `gorm:"not null;default:0" json:"price"`
}

// Customer represents a store customer with a required mailing address
type Customer struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string    `gorm:"size:50;not null" json:"first_name"`
	LastName  string    `gorm:"size:50;not null" json:"last_name"`
	AddressID uint      `gorm:"not null" json:"address_id"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Address   Address   `gorm:"foreignKey:AddressID" json:"address"`
	Invoices  []Invoice `gorm:"foreignKey:CustomerID" json:"invoices,omitempty"`
}

// Invoice records one sale to a customer. Invoices are immutable once
// created: no update or delete path exists.
type Invoice struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID uint      `gorm:"not null" json:"customer_id"`
	ItemCount  int       `gorm:"not null" json:"item_count"`
	Subtotal   float64   `gorm:"not null" json:"subtotal"`
	Tax        float64   `gorm:"not null" json:"tax"`
	CreatedAt  time.Time `json:"created_at"`
}

// User is a staff login account
type User struct {
	gorm.Model
	Name         string `json:"name"`
	Email        string `gorm:"size:100;uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// User roles. The manager role is the one granted the catalog CRUD
// procedures; clerks record sales and invoices.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleClerk   = "clerk"
)
