package controllers

import (
	"ezelectronics/daos"
	"ezelectronics/models"
	"ezelectronics/utils"
)

type ReviewController struct {
	dao *daos.ReviewDAO
}

func NewReviewController(dao *daos.ReviewDAO) *ReviewController {
	return &ReviewController{dao: dao}
}

// AddReview records the user's review of the product, dated today.
func (c *ReviewController) AddReview(model string, user models.User, score int, comment string) error {
	return c.dao.AddReview(model, user.Username, score, utils.Today(), comment)
}

func (c *ReviewController) GetProductReviews(model string) ([]models.ProductReview, error) {
	return c.dao.GetProductReviews(model)
}

func (c *ReviewController) DeleteReview(model string, user models.User) error {
	return c.dao.DeleteReview(model, user.Username)
}

func (c *ReviewController) DeleteReviewsOfProduct(model string) error {
	return c.dao.DeleteReviewsOfProduct(model)
}

func (c *ReviewController) DeleteAllReviews() error {
	return c.dao.DeleteAllReviews()
}
