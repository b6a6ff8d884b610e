package database

import (
	"fmt"
	"strings"

	"finance-tracker/internal/config"
	"finance-tracker/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

// BuildDSN produces the sqlite DSN for the configured path. Foreign key
// enforcement is off by default in sqlite and must be requested per
// connection; cascade deletes depend on it.
func BuildDSN(path string) string {
	if path == ":memory:" {
		return "file::memory:?cache=shared&_foreign_keys=on"
	}
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(BuildDSN(cfg.Path)), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// sqlite serializes writers; a single connection avoids SQLITE_BUSY
	// under concurrent handlers.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Transaction{},
		&models.Template{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_name ON users(name)",
		"CREATE INDEX IF NOT EXISTS idx_categories_user_id ON categories(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_user_id ON transactions(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_category_id ON transactions(category_id)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_timestamp ON transactions(timestamp)",
		"CREATE INDEX IF NOT EXISTS idx_transaction_templates_user_id ON transaction_templates(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_transaction_templates_category_id ON transaction_templates(category_id)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// Initialize opens the store, applies the destructive schema-version policy
// and creates the current schema.
func Initialize(cfg *config.DatabaseConfig, log *logrus.Logger) (*DB, error) {
	db, err := New(cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	runner := NewMigrationRunner(sqlDB, cfg.SchemaVersion)
	dropped, err := runner.EnsureSchemaVersion()
	if err != nil {
		return nil, fmt.Errorf("schema version check failed: %w", err)
	}
	if dropped {
		log.WithField("schema_version", cfg.SchemaVersion).
			Warn("schema version mismatch, stored data dropped and recreated")
	}

	if err := db.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := db.CreateIndexes(); err != nil {
		return nil, err
	}

	log.WithField("path", cfg.Path).Info("database initialized")

	return db, nil
}
