package database

import (
	"database/sql"
	"errors"
	"fmt"

	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
)

// MigrationRunner enforces the destructive schema evolution policy: the
// expected schema version is compared against the one stored in the database,
// and on mismatch every table is dropped so the current schema can be
// recreated from scratch. Old rows are not migrated.
type MigrationRunner struct {
	db      *sql.DB
	version int
}

func NewMigrationRunner(db *sql.DB, version int) *MigrationRunner {
	return &MigrationRunner{
		db:      db,
		version: version,
	}
}

// StoredVersion reads the schema version recorded in the database. The second
// return value is false when no version has been recorded yet.
func (mr *MigrationRunner) StoredVersion() (int, bool, error) {
	if _, err := mr.db.Exec(
		"CREATE TABLE IF NOT EXISTS schema_info (version INTEGER NOT NULL)",
	); err != nil {
		return 0, false, fmt.Errorf("failed to create schema_info table: %w", err)
	}

	var version int
	err := mr.db.QueryRow("SELECT version FROM schema_info LIMIT 1").Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read schema version: %w", err)
	}

	return version, true, nil
}

// EnsureSchemaVersion applies the version policy. It returns true when a
// mismatch forced the stored data to be dropped.
func (mr *MigrationRunner) EnsureSchemaVersion() (bool, error) {
	stored, found, err := mr.StoredVersion()
	if err != nil {
		return false, err
	}

	if found && stored == mr.version {
		return false, nil
	}

	dropped := false
	if found && stored != mr.version {
		if err := mr.dropAll(); err != nil {
			return false, err
		}
		dropped = true
	}

	if err := mr.recordVersion(); err != nil {
		return dropped, err
	}

	return dropped, nil
}

func (mr *MigrationRunner) dropAll() error {
	driver, err := migratesqlite.WithInstance(mr.db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create sqlite migration driver: %w", err)
	}

	if err := driver.Drop(); err != nil {
		return fmt.Errorf("failed to drop database: %w", err)
	}

	return nil
}

func (mr *MigrationRunner) recordVersion() error {
	if _, err := mr.db.Exec(
		"CREATE TABLE IF NOT EXISTS schema_info (version INTEGER NOT NULL)",
	); err != nil {
		return fmt.Errorf("failed to create schema_info table: %w", err)
	}

	if _, err := mr.db.Exec("DELETE FROM schema_info"); err != nil {
		return fmt.Errorf("failed to clear schema_info: %w", err)
	}

	if _, err := mr.db.Exec("INSERT INTO schema_info (version) VALUES (?)", mr.version); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}

	return nil
}
