package db

import (
	"context"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"taskmanager/internal/config"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS tasks (
  seq         INTEGER PRIMARY KEY AUTOINCREMENT,
  id          TEXT NOT NULL UNIQUE,
  title       TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  status      TEXT NOT NULL DEFAULT 'pending',
  created_at  DATETIME NOT NULL
);
`

const mysqlSchema = `
CREATE TABLE IF NOT EXISTS tasks (
  seq         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
  id          CHAR(36) NOT NULL UNIQUE,
  title       VARCHAR(255) NOT NULL,
  description MEDIUMTEXT NOT NULL,
  status      ENUM('pending', 'in-progress', 'completed') NOT NULL DEFAULT 'pending',
  created_at  DATETIME(6) NOT NULL
);
`

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	switch conf.StoreDriver {
	case config.StoreDriverMySQL:
		return connectMySQL(conf)
	case config.StoreDriverSQLite:
		return ConnectSQLite(conf.SqlitePath)
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", conf.StoreDriver)
	}
}

func connectMySQL(conf *config.Config) (*sqlx.DB, error) {
	params := conf.DbParams
	if params == "" {
		params = "parseTime=true&multiStatements=true"
	}

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// ConnectSQLite opens a SQLite database at path (":memory:" is accepted).
func ConnectSQLite(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// A single connection keeps :memory: databases shared and avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	return db, nil
}

// EnsureSchema creates the tasks table for the connected driver.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	schema := sqliteSchema
	if db.DriverName() == "mysql" {
		schema = mysqlSchema
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create tasks schema: %w", err)
	}
	return nil
}
