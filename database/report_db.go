package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"gamevault/config"
)

// ReportDB is the raw SQL connection used to query the reporting views
var ReportDB *sql.DB

// InitReportDB opens the database/sql connection for the reporting layer
func InitReportDB() error {
	var err error

	switch config.AppConfig.DBDriver {
	case "postgres":
		connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=require",
			config.AppConfig.DBHost,
			config.AppConfig.DBPort,
			config.AppConfig.DBUser,
			config.AppConfig.DBPassword,
			config.AppConfig.DBName)

		ReportDB, err = sql.Open("postgres", connStr)
		if err != nil {
			log.Printf("Failed to connect to PostgreSQL report database: %v", err)
			return err
		}

	case "sqlite", "sqlite3":
		ReportDB, err = sql.Open("sqlite3", config.AppConfig.DBPath+"?_foreign_keys=on")
		if err != nil {
			log.Printf("Failed to connect to SQLite report database: %v", err)
			return err
		}

	default:
		return fmt.Errorf("unsupported database driver: %s", config.AppConfig.DBDriver)
	}

	if err = ReportDB.Ping(); err != nil {
		log.Printf("Failed to ping report database: %v", err)
		return err
	}

	log.Println("Report database connection established successfully")
	return nil
}

// CloseReportDB closes the report database connection
func CloseReportDB() error {
	if ReportDB != nil {
		return ReportDB.Close()
	}
	return nil
}
