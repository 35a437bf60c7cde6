package sqlite

import (
	"database/sql"
	"fmt"
)

// schema sets up the database on startup. Tables are created in foreign key
// order: packages before customers, invoices before invoice_items.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    active INTEGER NOT NULL DEFAULT 0,
    is_admin INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS packages (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    amount REAL NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS customers (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    phone1 TEXT NOT NULL,
    phone2 TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    location TEXT NOT NULL DEFAULT '',
    ip TEXT NOT NULL DEFAULT '',
    mac_address TEXT NOT NULL DEFAULT '',
    package_id TEXT,
    total_earnings REAL NOT NULL DEFAULT 0,
    accrued_amount REAL NOT NULL DEFAULT 0,
    last_payment INTEGER,
    is_disconnected INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (package_id) REFERENCES packages(id) ON DELETE RESTRICT
);

CREATE TABLE IF NOT EXISTS invoices (
    id TEXT PRIMARY KEY,
    number TEXT NOT NULL UNIQUE,
    date INTEGER NOT NULL,
    due_date INTEGER,
    po_number TEXT NOT NULL DEFAULT '',
    bill_to TEXT NOT NULL,
    notes TEXT NOT NULL DEFAULT '',
    terms TEXT NOT NULL DEFAULT '',
    tax_percent REAL NOT NULL DEFAULT 0,
    discount REAL NOT NULL DEFAULT 0,
    shipping REAL NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS invoice_items (
    invoice_id TEXT NOT NULL,
    item_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    quantity REAL NOT NULL,
    unit_cost REAL NOT NULL,
    PRIMARY KEY (invoice_id, item_id),
    FOREIGN KEY (invoice_id) REFERENCES invoices(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS assets (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    belongs_to TEXT NOT NULL,
    type TEXT NOT NULL,
    mac_address TEXT NOT NULL DEFAULT '',
    location TEXT NOT NULL,
    purpose TEXT NOT NULL DEFAULT '',
    price REAL NOT NULL DEFAULT 0,
    is_for_company INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS password_resets (
    token_hash TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    expires_at INTEGER NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_customers_package_id ON customers(package_id);
CREATE INDEX IF NOT EXISTS idx_customers_created_at ON customers(created_at);
CREATE INDEX IF NOT EXISTS idx_invoices_created_at ON invoices(created_at);
CREATE INDEX IF NOT EXISTS idx_password_resets_user_id ON password_resets(user_id);
`

// addedColumns lists columns introduced after a table was first shipped.
// CREATE TABLE IF NOT EXISTS leaves older databases without them. backfill
// runs once, right after the column is added.
var addedColumns = []struct {
	table, column, definition, backfill string
}{
	// Operators predating activation keep full access.
	{"users", "active", "INTEGER NOT NULL DEFAULT 0", "UPDATE users SET active = 1"},
	{"users", "is_admin", "INTEGER NOT NULL DEFAULT 0", "UPDATE users SET is_admin = 1"},
}

// runMigrations executes the schema setup and adds missing columns.
func runMigrations(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return err
	}

	for _, c := range addedColumns {
		exists, err := hasColumn(db, c.table, c.column)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", c.table, c.column, c.definition)
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to add %s.%s: %w", c.table, c.column, err)
		}
		if c.backfill != "" {
			if _, err := db.Exec(c.backfill); err != nil {
				return fmt.Errorf("failed to backfill %s.%s: %w", c.table, c.column, err)
			}
		}
	}
	return nil
}

func hasColumn(db *sql.DB, table, column string) (bool, error) {
	rows, err := db.Query("SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		return false, fmt.Errorf("failed to inspect %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}
