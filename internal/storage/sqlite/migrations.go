package sqlite

import "database/sql"

// schema sets up the database on startup.
// Amounts are stored as decimal text so no precision is lost to REAL.
const schema = `
CREATE TABLE IF NOT EXISTS people (
    id INTEGER PRIMARY KEY,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    money TEXT NOT NULL DEFAULT '0',
    difference TEXT NOT NULL DEFAULT '0.0'
);

CREATE INDEX IF NOT EXISTS idx_people_position ON people(position);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
