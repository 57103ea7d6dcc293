// Package controllers holds the use-case layer: each controller orchestrates
// DAO calls for one entity, applies the business rules (default dates, role
// rules, quantity arithmetic) and returns typed domain errors. Controllers
// receive a pre-authenticated models.User where the rule depends on the
// caller; HTTP concerns stay in the handlers package.
package controllers

import (
	"time"

	"ezelectronics/daos"
	"ezelectronics/models"
	"ezelectronics/utils"
)

type ProductController struct {
	dao *daos.ProductDAO
}

func NewProductController(dao *daos.ProductDAO) *ProductController {
	return &ProductController{dao: dao}
}

// RegisterProducts adds a new product to the catalog. arrivalDate defaults
// to today and must be a well-formed, non-future date.
func (c *ProductController) RegisterProducts(model string, category models.Category, quantity int, details string, sellingPrice float64, arrivalDate string) error {
	if arrivalDate == "" {
		arrivalDate = utils.Today()
	}
	parsed, err := time.Parse(utils.DateLayout, arrivalDate)
	if err != nil {
		return &models.DateError{}
	}
	if parsed.Format(utils.DateLayout) > utils.Today() {
		return &models.DateError{}
	}
	return c.dao.RegisterProducts(model, category, quantity, details, sellingPrice, arrivalDate)
}

func (c *ProductController) ChangeProductQuantity(model string, newQuantity int, changeDate string) (int, error) {
	return c.dao.ChangeProductQuantity(model, newQuantity, changeDate)
}

func (c *ProductController) SellProduct(model string, quantity int, sellingDate string) (int, error) {
	return c.dao.SellProduct(model, quantity, sellingDate)
}

func (c *ProductController) GetProducts(grouping string, category models.Category, model string) ([]models.Product, error) {
	return c.dao.GetProducts(grouping, category, model)
}

func (c *ProductController) GetAvailableProducts(grouping string, category models.Category, model string) ([]models.Product, error) {
	return c.dao.GetAvailableProducts(grouping, category, model)
}

func (c *ProductController) DeleteProduct(model string) error {
	return c.dao.DeleteProduct(model)
}

func (c *ProductController) DeleteAllProducts() error {
	return c.dao.DeleteAllProducts()
}
