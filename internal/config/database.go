package config

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// SetupDatabase initializes the database connection
func SetupDatabase(cfg *Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	// Create tables if they don't exist
	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}

// createTables creates the necessary tables in the database
func createTables(db *sqlx.DB) error {
	// Create properties table
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS properties (
			id VARCHAR(36) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			type VARCHAR(10) NOT NULL,
			purchase_date TIMESTAMP NOT NULL,
			tenant_name VARCHAR(255) NOT NULL DEFAULT '',
			monthly_rent_amount NUMERIC(20,4) NOT NULL DEFAULT 0,
			rent_due_day INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Create ledger_entries table
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS ledger_entries (
			id VARCHAR(36) PRIMARY KEY,
			property_id VARCHAR(36) NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
			date TIMESTAMP NOT NULL,
			description TEXT NOT NULL,
			type VARCHAR(10) NOT NULL,
			amount NUMERIC(20,4) NOT NULL CHECK (amount > 0),
			category VARCHAR(64) NOT NULL DEFAULT '',
			payment_method VARCHAR(10) NOT NULL DEFAULT '',
			counterparty VARCHAR(255) NOT NULL DEFAULT '',
			linked_document_id VARCHAR(64) NOT NULL DEFAULT '',
			linked_image_id VARCHAR(64) NOT NULL DEFAULT '',
			attachment TEXT NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT '',
			is_opening_balance BOOLEAN NOT NULL DEFAULT FALSE,
			is_locked BOOLEAN NOT NULL DEFAULT FALSE,
			version BIGINT NOT NULL DEFAULT 1,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Create daily_logs table
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS daily_logs (
			id VARCHAR(36) PRIMARY KEY,
			date TIMESTAMP NOT NULL UNIQUE,
			opening_cash NUMERIC(20,4) NOT NULL DEFAULT 0,
			closing_cash NUMERIC(20,4) NOT NULL DEFAULT 0,
			total_expenses NUMERIC(20,4) NOT NULL DEFAULT 0,
			is_locked BOOLEAN NOT NULL DEFAULT FALSE,
			version BIGINT NOT NULL DEFAULT 1,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Create daily_log_banks table
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS daily_log_banks (
			log_id VARCHAR(36) NOT NULL REFERENCES daily_logs(id) ON DELETE CASCADE,
			bank_name VARCHAR(255) NOT NULL,
			opening_amount NUMERIC(20,4) NOT NULL DEFAULT 0,
			closing_amount NUMERIC(20,4) NOT NULL DEFAULT 0,
			usage_amount NUMERIC(20,4) NOT NULL DEFAULT 0,
			PRIMARY KEY (log_id, bank_name)
		)
	`)
	if err != nil {
		return err
	}

	// Create daily_expenses table
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS daily_expenses (
			id VARCHAR(36) PRIMARY KEY,
			log_id VARCHAR(36) NOT NULL REFERENCES daily_logs(id) ON DELETE CASCADE,
			property_id VARCHAR(36) NOT NULL DEFAULT '',
			description TEXT NOT NULL,
			amount NUMERIC(20,4) NOT NULL CHECK (amount > 0),
			payment_method VARCHAR(10) NOT NULL,
			bank_name VARCHAR(255) NOT NULL DEFAULT '',
			cash_amount NUMERIC(20,4) NOT NULL DEFAULT 0,
			bank_amount NUMERIC(20,4) NOT NULL DEFAULT 0,
			is_pending BOOLEAN NOT NULL DEFAULT FALSE,
			position INTEGER NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return err
	}

	// Create banks table
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS banks (
			id VARCHAR(36) PRIMARY KEY,
			name VARCHAR(255) UNIQUE NOT NULL,
			account_number VARCHAR(64) NOT NULL DEFAULT '',
			branch_name VARCHAR(255) NOT NULL DEFAULT '',
			account_type VARCHAR(64) NOT NULL DEFAULT '',
			balance NUMERIC(20,4) NOT NULL DEFAULT 0,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Create indexes for better performance
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_ledger_entries_property ON ledger_entries(property_id)",
		"CREATE INDEX IF NOT EXISTS idx_ledger_entries_property_date ON ledger_entries(property_id, date)",
		"CREATE INDEX IF NOT EXISTS idx_daily_expenses_log ON daily_expenses(log_id)",
	}

	for _, idx := range indexes {
		_, err = db.Exec(idx)
		if err != nil {
			log.Printf("Warning: Failed to create index: %v", err)
			// Don't return error here, indexes are not critical
		}
	}

	return nil
}
