package database

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Connect opens the SQLite database at path with foreign keys enabled and
// verifies the connection.
func Connect(path string) (*sqlx.DB, error) {
	return sqlx.Connect("sqlite3", "file:"+path+"?_foreign_keys=on")
}

// Migrate runs all pending migrations from migrationsRoot against the
// database at path. A no-change result is not an error.
func Migrate(path string, migrationsRoot string) error {
	mig, err := migrate.New("file://"+migrationsRoot, "sqlite3://"+path)
	if err != nil {
		return err
	}
	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
