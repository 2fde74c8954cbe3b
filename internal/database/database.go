package database

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// Open initializes the embedded store at the given path (":memory:" in
// tests), verifies the connection and bootstraps the schema.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// sqlite allows a single writer; keeping one pooled connection also
	// keeps :memory: databases alive across queries.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// createTables is idempotent; release_date is stored as the ISO string it
// arrived with so it is echoed back unreformatted and still orders correctly.
func createTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS brands (
		name         TEXT PRIMARY KEY,
		year_founded INTEGER,
		street       TEXT,
		city         TEXT,
		state        TEXT,
		postal_code  TEXT,
		country      TEXT
	);
	CREATE TABLE IF NOT EXISTS products (
		product_id       TEXT PRIMARY KEY,
		product_name     TEXT NOT NULL,
		brand_name       TEXT REFERENCES brands(name),
		category_name    TEXT,
		description_text TEXT,
		price            REAL,
		currency         TEXT,
		processor        TEXT,
		memory           TEXT,
		release_date     TEXT,
		average_rating   REAL,
		rating_count     INTEGER
	);`

	_, err := db.Exec(schema)
	return err
}
