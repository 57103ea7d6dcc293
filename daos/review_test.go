package daos

import (
	"errors"
	"testing"

	"ezelectronics/models"
	"ezelectronics/utils"
)

func TestAddReview(t *testing.T) {
	db := newTestDB(t)
	reviews := NewReviewDAO(db)
	products := NewProductDAO(db)
	seedProduct(t, products, "X", 5, 100)

	var notFound *models.ProductNotFoundError
	if err := reviews.AddReview("missing", "alice", 5, utils.Today(), "great"); !errors.As(err, &notFound) {
		t.Fatalf("expected ProductNotFoundError, got %v", err)
	}

	if err := reviews.AddReview("X", "alice", 4, utils.Today(), "solid"); err != nil {
		t.Fatalf("add review: %v", err)
	}
	var existing *models.ExistingReviewError
	if err := reviews.AddReview("X", "alice", 5, utils.Today(), "again"); !errors.As(err, &existing) {
		t.Fatalf("expected ExistingReviewError, got %v", err)
	}

	// Another user may review the same product.
	if err := reviews.AddReview("X", "bob", 2, utils.Today(), "meh"); err != nil {
		t.Fatalf("second reviewer: %v", err)
	}

	list, err := reviews.GetProductReviews("X")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(list))
	}
}

func TestDeleteReviews(t *testing.T) {
	db := newTestDB(t)
	reviews := NewReviewDAO(db)
	products := NewProductDAO(db)
	seedProduct(t, products, "X", 5, 100)

	if err := reviews.AddReview("X", "alice", 4, utils.Today(), "solid"); err != nil {
		t.Fatalf("add review: %v", err)
	}
	if err := reviews.AddReview("X", "bob", 2, utils.Today(), "meh"); err != nil {
		t.Fatalf("add review: %v", err)
	}

	var noReview *models.NoReviewProductError
	if err := reviews.DeleteReview("X", "carol"); !errors.As(err, &noReview) {
		t.Fatalf("expected NoReviewProductError, got %v", err)
	}
	var notFound *models.ProductNotFoundError
	if err := reviews.DeleteReview("missing", "alice"); !errors.As(err, &notFound) {
		t.Fatalf("expected ProductNotFoundError, got %v", err)
	}

	if err := reviews.DeleteReview("X", "alice"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, err := reviews.GetProductReviews("X")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].User != "bob" {
		t.Fatalf("unexpected reviews: %+v", list)
	}

	if err := reviews.DeleteReviewsOfProduct("X"); err != nil {
		t.Fatalf("delete all of product: %v", err)
	}
	list, err = reviews.GetProductReviews("X")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no reviews, got %d", len(list))
	}
}
