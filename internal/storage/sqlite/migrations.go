package sqlite

import "database/sql"

// schema holds the single key-value table. Values are JSON documents and
// are always replaced whole.
const schema = `
CREATE TABLE IF NOT EXISTS device_kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
