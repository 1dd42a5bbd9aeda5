package sqlite

import "database/sql"

// schema mirrors the PostgreSQL migrations. rowid / AUTOINCREMENT ids keep
// insertion order for listing.
const schema = `
CREATE TABLE IF NOT EXISTS player_groups (
    group_name TEXT PRIMARY KEY,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS players (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    group_name  TEXT NOT NULL,
    player_name TEXT NOT NULL,
    team        TEXT NOT NULL CHECK (team IN ('Time A', 'Time B')),
    created_at  INTEGER NOT NULL,
    UNIQUE (group_name, player_name),
    FOREIGN KEY (group_name) REFERENCES player_groups(group_name) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_players_group_team ON players(group_name, team);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
