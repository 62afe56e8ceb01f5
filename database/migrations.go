package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
)

// RunMigrations runs all database migrations
func RunMigrations() error {
	log.Println("Running database migrations...")

	// AutoMigrate will create tables if they don't exist
	if err := DB.AutoMigrate(
		&User{},
		&Address{},
		&Employee{},
		&PayRate{},
		&GameItem{},
		&Inventory{},
		&Customer{},
		&Invoice{},
		&AuditLogEntry{},
	); err != nil {
		log.Printf("Migration failed: %v", err)
		return err
	}

	if err := CreateReportViews(); err != nil {
		log.Printf("View creation failed: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// CreateReportViews (re)creates the two read-only reporting views. Both are
// recomputed on every query; nothing is materialized.
func CreateReportViews() error {
	stmts := []string{
		`DROP VIEW IF EXISTS vw_game_sales_report`,
		`CREATE VIEW vw_game_sales_report AS
		 SELECT g.id AS game_id,
		        g.name AS name,
		        g.platform AS platform,
		        i.units_sold AS units_sold,
		        i.price AS price,
		        i.units_sold * i.price AS total_revenue
		 FROM game_items g
		 JOIN inventories i ON i.game_id = g.id
		 WHERE i.units_sold > 0`,
		`DROP VIEW IF EXISTS vw_employee_payment_history`,
		`CREATE VIEW vw_employee_payment_history AS
		 SELECT e.id AS employee_id,
		        e.first_name || ' ' || e.last_name AS full_name,
		        p.position AS position,
		        p.hourly_wage AS wage,
		        p.start_date AS start_date,
		        p.end_date AS end_date
		 FROM employees e
		 JOIN pay_rates p ON p.employee_id = e.id`,
	}

	for _, stmt := range stmts {
		if err := DB.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedDefaultAdmin creates a default admin if none exists
func SeedDefaultAdmin() {
	var count int64
	if err := DB.Model(&User{}).Where("role = ?", RoleAdmin).Count(&count).Error; err != nil {
		log.Printf("❌ Failed to check existing admin: %v", err)
		return
	}

	if count == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Failed to hash default admin password: %v", err)
			return
		}

		admin := User{
			Name:         "Store Admin",
			Email:        "admin@gamevault.local",
			PasswordHash: string(hash),
			Role:         RoleAdmin,
		}

		if err := DB.Create(&admin).Error; err != nil {
			log.Printf("❌ Failed to create admin: %v", err)
		} else {
			log.Println("✅ Default admin user created successfully.")
		}
	} else {
		log.Println("ℹ️ Admin user already exists.")
	}
}
