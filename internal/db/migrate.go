package db

import (
	"database/sql"
	"fmt"
	"time"
)

// migration is one schema step. Steps are applied in order, once each, and
// recorded in schema_migrations.
type migration struct {
	version    int
	name       string
	statements []string
}

var migrations = []migration{
	{
		version: 1,
		name:    "plan history",
		statements: []string{
			`CREATE TABLE plans (
				id            TEXT PRIMARY KEY,
				name          TEXT NOT NULL DEFAULT '',
				fingerprint   TEXT NOT NULL,
				land_cents    REAL NOT NULL CHECK(land_cents > 0),
				family_size   INTEGER NOT NULL CHECK(family_size >= 1),
				budget        INTEGER NOT NULL CHECK(budget > 0),
				orientation   TEXT NOT NULL,
				preferences   TEXT NOT NULL DEFAULT '',
				house_type    TEXT NOT NULL
				              CHECK(house_type IN ('1BHK','2BHK','3BHK','Duplex','Villa')),
				tier          TEXT NOT NULL CHECK(tier IN ('Economy','Standard','Premium')),
				budget_fit    TEXT NOT NULL CHECK(budget_fit IN ('UnderBudget','OnBudget','OverBudget')),
				total_cost    INTEGER NOT NULL CHECK(total_cost >= 0),
				built_up_sqft REAL NOT NULL,
				modifiers     TEXT NOT NULL DEFAULT '',
				created_at    TEXT NOT NULL
			)`,
			`CREATE TABLE plan_floors (
				plan_id        TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
				floor_index    INTEGER NOT NULL CHECK(floor_index >= 0),
				usable_sqft    REAL NOT NULL,
				allocated_sqft REAL NOT NULL,
				PRIMARY KEY (plan_id, floor_index)
			)`,
			`CREATE TABLE plan_rooms (
				plan_id     TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
				seq         INTEGER NOT NULL,
				name        TEXT NOT NULL,
				kind        TEXT NOT NULL,
				floor_index INTEGER NOT NULL CHECK(floor_index >= 0),
				width_ft    REAL NOT NULL CHECK(width_ft > 0),
				length_ft   REAL NOT NULL CHECK(length_ft > 0),
				PRIMARY KEY (plan_id, seq)
			)`,
			`CREATE TABLE plan_cost_lines (
				plan_id  TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
				seq      INTEGER NOT NULL,
				category TEXT NOT NULL,
				amount   INTEGER NOT NULL CHECK(amount >= 0),
				PRIMARY KEY (plan_id, seq)
			)`,
			`CREATE INDEX idx_plans_created ON plans(created_at)`,
			`CREATE INDEX idx_plans_fingerprint ON plans(fingerprint)`,
		},
	},
	{
		version: 2,
		name:    "render output",
		statements: []string{
			`ALTER TABLE plans ADD COLUMN render_path TEXT`,
			`ALTER TABLE plans ADD COLUMN rendered_at TEXT`,
		},
	},
}

// Migrate applies every migration newer than the recorded schema version.
// Each step runs in its own transaction.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version    INTEGER PRIMARY KEY,
		name       TEXT NOT NULL,
		applied_at TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("creating schema_migrations: %w", err)
	}

	current, err := SchemaVersion(db)
	if err != nil {
		return err
	}
	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if err := apply(db, m); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
	}
	return nil
}

// SchemaVersion returns the highest applied migration version, 0 if none.
func SchemaVersion(db *sql.DB) (int, error) {
	var v sql.NullInt64
	if err := db.QueryRow(`SELECT MAX(version) FROM schema_migrations`).Scan(&v); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return int(v.Int64), nil
}

// LatestVersion is the version a fully migrated database reports.
func LatestVersion() int {
	return migrations[len(migrations)-1].version
}

func apply(db *sql.DB, m migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	for _, stmt := range m.statements {
		if _, err := tx.Exec(stmt); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	if _, err := tx.Exec(`INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, ?)`,
		m.version, m.name, time.Now().UTC().Format(time.RFC3339)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
