package daos

import (
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"ezelectronics/models"
	"ezelectronics/utils"
)

var productColumns = []string{"model", "category", "selling_price", "arrival_date", "details", "quantity"}

type ProductDAO struct {
	db *sqlx.DB
}

func NewProductDAO(db *sqlx.DB) *ProductDAO {
	return &ProductDAO{db: db}
}

// Grouping values accepted by GetProducts and GetAvailableProducts.
const (
	GroupingNone     = ""
	GroupingCategory = "category"
	GroupingModel    = "model"
)

// RegisterProducts inserts a new product. arrivalDate must already be
// validated and defaulted by the caller.
func (d *ProductDAO) RegisterProducts(model string, category models.Category, quantity int, details string, sellingPrice float64, arrivalDate string) error {
	query, args, err := QB.Insert("products").
		Columns(productColumns...).
		Values(model, category, sellingPrice, arrivalDate, details, quantity).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := d.db.Exec(query, args...); err != nil {
		if isUniqueConstraint(err) {
			return &models.ProductAlreadyExistsError{}
		}
		return err
	}
	return nil
}

func getProduct(q sqlx.Queryer, model string) (models.Product, error) {
	var product models.Product
	query, args, err := QB.Select(productColumns...).From("products").
		Where(squirrel.Eq{"model": model}).
		ToSql()
	if err != nil {
		return product, err
	}
	if err := sqlx.Get(q, &product, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return product, &models.ProductNotFoundError{}
		}
		return product, err
	}
	return product, nil
}

func setProductQuantity(e sqlx.Execer, model string, quantity int) error {
	query, args, err := QB.Update("products").
		Set("quantity", quantity).
		Where(squirrel.Eq{"model": model}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = e.Exec(query, args...)
	return err
}

// ChangeProductQuantity adds newQuantity units to the product's stock and
// returns the resulting level. changeDate defaults to today and must not be
// in the future or precede the product's arrival date.
func (d *ProductDAO) ChangeProductQuantity(model string, newQuantity int, changeDate string) (int, error) {
	if changeDate == "" {
		changeDate = utils.Today()
	}
	if err := validDate(changeDate); err != nil {
		return 0, err
	}

	tx, err := d.db.Beginx()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	product, err := getProduct(tx, model)
	if err != nil {
		return 0, err
	}
	if changeDate < product.ArrivalDate {
		return 0, &models.DateError{}
	}

	updated := product.Quantity + newQuantity
	if err := setProductQuantity(tx, model, updated); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return updated, nil
}

// SellProduct decrements the product's stock by quantity and returns the new
// level. sellingDate defaults to today and must not be in the future or
// precede the product's arrival date.
func (d *ProductDAO) SellProduct(model string, quantity int, sellingDate string) (int, error) {
	if sellingDate == "" {
		sellingDate = utils.Today()
	}
	if err := validDate(sellingDate); err != nil {
		return 0, err
	}

	tx, err := d.db.Beginx()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	product, err := getProduct(tx, model)
	if err != nil {
		return 0, err
	}
	if sellingDate < product.ArrivalDate {
		return 0, &models.DateError{}
	}
	if product.Quantity == 0 {
		return 0, &models.EmptyProductStockError{}
	}
	if product.Quantity < quantity {
		return 0, &models.LowProductStockError{}
	}

	updated := product.Quantity - quantity
	if err := setProductQuantity(tx, model, updated); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return updated, nil
}

// GetProducts lists products filtered by grouping: all of them, one
// category, or a single model. A model filter that matches nothing is an
// error; an empty category is not.
func (d *ProductDAO) GetProducts(grouping string, category models.Category, model string) ([]models.Product, error) {
	return d.listProducts(grouping, category, model, false)
}

// GetAvailableProducts behaves like GetProducts restricted to products with
// stock. A model filter still requires the product to exist, even when its
// stock is zero.
func (d *ProductDAO) GetAvailableProducts(grouping string, category models.Category, model string) ([]models.Product, error) {
	return d.listProducts(grouping, category, model, true)
}

func (d *ProductDAO) listProducts(grouping string, category models.Category, model string, onlyAvailable bool) ([]models.Product, error) {
	if grouping == GroupingModel {
		// Existence check first so a known model with zero stock lists as
		// empty instead of erroring.
		if _, err := getProduct(d.db, model); err != nil {
			return nil, err
		}
	}

	sel := QB.Select(productColumns...).From("products")
	switch grouping {
	case GroupingCategory:
		sel = sel.Where(squirrel.Eq{"category": category})
	case GroupingModel:
		sel = sel.Where(squirrel.Eq{"model": model})
	}
	if onlyAvailable {
		sel = sel.Where(squirrel.Gt{"quantity": 0})
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, err
	}
	products := []models.Product{}
	if err := d.db.Select(&products, query, args...); err != nil {
		return nil, err
	}
	return products, nil
}

func (d *ProductDAO) DeleteProduct(model string) error {
	query, args, err := QB.Delete("products").Where(squirrel.Eq{"model": model}).ToSql()
	if err != nil {
		return err
	}
	res, err := d.db.Exec(query, args...)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return &models.ProductNotFoundError{}
	}
	return nil
}

func (d *ProductDAO) DeleteAllProducts() error {
	query, _, err := QB.Delete("products").ToSql()
	if err != nil {
		return err
	}
	_, err = d.db.Exec(query)
	return err
}
