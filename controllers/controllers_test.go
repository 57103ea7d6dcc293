package controllers

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"ezelectronics/daos"
	"ezelectronics/database"
	"ezelectronics/models"
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

func newControllers(t *testing.T) (*UserController, *ProductController, *CartController, *ReviewController) {
	t.Helper()
	db := newTestDB(t)
	users := NewUserController(daos.NewUserDAO(db))
	products := NewProductController(daos.NewProductDAO(db))
	carts := NewCartController(daos.NewCartDAO(db), products)
	reviews := NewReviewController(daos.NewReviewDAO(db))
	return users, products, carts, reviews
}

func customer(username string) models.User {
	return models.User{Username: username, Role: models.RoleCustomer}
}
