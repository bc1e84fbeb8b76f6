package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA timezone = 'UTC'",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Sold properties with their full commission breakdown
		CREATE TABLE IF NOT EXISTS property (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			address VARCHAR(255) NOT NULL,
			sale_price FLOAT NOT NULL,
			commission_percentage FLOAT NOT NULL,
			gst_inclusive BOOLEAN NOT NULL DEFAULT TRUE,
			gross_commission_inc_gst FLOAT NOT NULL,
			gross_commission_ex_gst FLOAT NOT NULL,
			marketing_levy FLOAT NOT NULL DEFAULT 0,
			marketing_levy_type VARCHAR(10) NOT NULL DEFAULT 'percentage',
			marketing_levy_value FLOAT NOT NULL DEFAULT 0,
			franchise_fee FLOAT NOT NULL DEFAULT 0,
			franchise_fee_type VARCHAR(10) NOT NULL DEFAULT 'percentage',
			franchise_fee_value FLOAT NOT NULL DEFAULT 0,
			transaction_fee FLOAT NOT NULL DEFAULT 0,
			transaction_fee_type VARCHAR(10) NOT NULL DEFAULT 'fixed',
			transaction_fee_value FLOAT NOT NULL DEFAULT 0,
			other_fees FLOAT NOT NULL DEFAULT 0,
			net_commission FLOAT NOT NULL DEFAULT 0,
			gross_commission_per_agent FLOAT NOT NULL DEFAULT 0,
			sale_price_per_agent FLOAT NOT NULL DEFAULT 0,
			agent_count INTEGER NOT NULL DEFAULT 1,
			settlement_date DATE NOT NULL,
			financial_year VARCHAR(7) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'settled',
			client_name VARCHAR(100),
			property_type VARCHAR(20) NOT NULL DEFAULT 'house',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Active listings
		CREATE TABLE IF NOT EXISTS listing (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			address VARCHAR(255) NOT NULL,
			estimated_sale_price FLOAT NOT NULL DEFAULT 0,
			commission_percentage FLOAT NOT NULL DEFAULT 0,
			estimated_commission FLOAT NOT NULL DEFAULT 0,
			listed_date DATE,
			status VARCHAR(20) NOT NULL DEFAULT 'active',
			client_name VARCHAR(100),
			property_type VARCHAR(20) NOT NULL DEFAULT 'house',
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Prospecting pipeline
		CREATE TABLE IF NOT EXISTS pipeline (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			address VARCHAR(255) NOT NULL,
			estimated_sale_price FLOAT NOT NULL DEFAULT 0,
			commission_percentage FLOAT NOT NULL DEFAULT 0,
			estimated_commission FLOAT NOT NULL DEFAULT 0,
			probability INTEGER NOT NULL DEFAULT 50,
			expected_settlement DATE,
			stage VARCHAR(20) NOT NULL DEFAULT 'appraised',
			client_name VARCHAR(100),
			notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Business expenses
		CREATE TABLE IF NOT EXISTS expense (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			description VARCHAR(255),
			amount FLOAT NOT NULL,
			expense_date DATE NOT NULL,
			category VARCHAR(20) NOT NULL DEFAULT 'other',
			tax_deductible BOOLEAN NOT NULL DEFAULT TRUE,
			financial_year VARCHAR(7) NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Singleton user settings
		CREATE TABLE IF NOT EXISTS user_settings (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			region VARCHAR(20) NOT NULL DEFAULT 'australia',
			gci_goal FLOAT NOT NULL DEFAULT 0,
			default_commission_percentage FLOAT NOT NULL DEFAULT 1.98,
			marketing_levy_type VARCHAR(10) NOT NULL DEFAULT 'percentage',
			marketing_levy_value FLOAT NOT NULL DEFAULT 1,
			franchise_fee_type VARCHAR(10) NOT NULL DEFAULT 'percentage',
			franchise_fee_value FLOAT NOT NULL DEFAULT 6,
			transaction_fee_type VARCHAR(10) NOT NULL DEFAULT 'fixed',
			transaction_fee_value FLOAT NOT NULL DEFAULT 0
		);
	`

	_, err := db.Exec(schema)
	return err
}
