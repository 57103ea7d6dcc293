package daos

import (
	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"ezelectronics/models"
)

var reviewColumns = []string{"model", "username", "score", "date", "comment"}

type ReviewDAO struct {
	db *sqlx.DB
}

func NewReviewDAO(db *sqlx.DB) *ReviewDAO {
	return &ReviewDAO{db: db}
}

// AddReview inserts a review for the product by the user. The product must
// exist and each user may review a model at most once.
func (d *ReviewDAO) AddReview(model, username string, score int, date, comment string) error {
	if _, err := getProduct(d.db, model); err != nil {
		return err
	}

	query, args, err := QB.Insert("reviews").
		Columns(reviewColumns...).
		Values(model, username, score, date, comment).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := d.db.Exec(query, args...); err != nil {
		if isUniqueConstraint(err) {
			return &models.ExistingReviewError{}
		}
		return err
	}
	return nil
}

func (d *ReviewDAO) GetProductReviews(model string) ([]models.ProductReview, error) {
	reviews := []models.ProductReview{}
	query, args, err := QB.Select(reviewColumns...).From("reviews").
		Where(squirrel.Eq{"model": model}).
		ToSql()
	if err != nil {
		return nil, err
	}
	if err := d.db.Select(&reviews, query, args...); err != nil {
		return nil, err
	}
	return reviews, nil
}

// DeleteReview removes the user's review of the product. The product must
// exist and the user must have reviewed it.
func (d *ReviewDAO) DeleteReview(model, username string) error {
	if _, err := getProduct(d.db, model); err != nil {
		return err
	}

	query, args, err := QB.Delete("reviews").
		Where(squirrel.Eq{"model": model, "username": username}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := d.db.Exec(query, args...)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return &models.NoReviewProductError{}
	}
	return nil
}

// DeleteReviewsOfProduct removes every review of an existing product.
func (d *ReviewDAO) DeleteReviewsOfProduct(model string) error {
	if _, err := getProduct(d.db, model); err != nil {
		return err
	}

	query, args, err := QB.Delete("reviews").Where(squirrel.Eq{"model": model}).ToSql()
	if err != nil {
		return err
	}
	_, err = d.db.Exec(query, args...)
	return err
}

func (d *ReviewDAO) DeleteAllReviews() error {
	query, _, err := QB.Delete("reviews").ToSql()
	if err != nil {
		return err
	}
	_, err = d.db.Exec(query)
	return err
}
