package daos

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"ezelectronics/database"
)

// newTestDB opens a unique in-memory database per test to avoid cross-test
// collisions.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Connect("sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	db.MustExec(database.Schema)
	return db
}
