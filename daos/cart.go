package daos

import (
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"ezelectronics/models"
)

var (
	cartColumns     = []string{"id", "customer", "paid", "payment_date", "total"}
	cartItemColumns = []string{"id_cart", "model", "quantity", "category", "price"}
)

type CartDAO struct {
	db *sqlx.DB
}

func NewCartDAO(db *sqlx.DB) *CartDAO {
	return &CartDAO{db: db}
}

func unpaidCart(q sqlx.Queryer, username string) (models.Cart, error) {
	var cart models.Cart
	query, args, err := QB.Select(cartColumns...).From("carts").
		Where(squirrel.Eq{"customer": username, "paid": false}).
		ToSql()
	if err != nil {
		return cart, err
	}
	err = sqlx.Get(q, &cart, query, args...)
	return cart, err
}

func cartProducts(q sqlx.Queryer, cartID uuid.UUID) ([]models.ProductInCart, error) {
	items := []models.ProductInCart{}
	query, args, err := QB.Select(cartItemColumns...).From("productInCart").
		Where(squirrel.Eq{"id_cart": cartID}).
		ToSql()
	if err != nil {
		return nil, err
	}
	if err := sqlx.Select(q, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// recomputeTotal rewrites the cart's stored total from its line items. It
// runs in the same transaction as the mutation that made it stale.
func recomputeTotal(e sqlx.Execer, cartID uuid.UUID) error {
	query, args, err := QB.Update("carts").
		Set("total", squirrel.Expr(
			"(SELECT COALESCE(SUM(price * quantity), 0) FROM productInCart WHERE id_cart = ?)", cartID)).
		Where(squirrel.Eq{"id": cartID}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = e.Exec(query, args...)
	return err
}

// productAvailable reports whether the product exists with stock > 0.
func productAvailable(q sqlx.Queryer, model string) (bool, error) {
	var quantity int
	query, args, err := QB.Select("quantity").From("products").
		Where(squirrel.Eq{"model": model}).
		ToSql()
	if err != nil {
		return false, err
	}
	if err := sqlx.Get(q, &quantity, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return quantity > 0, nil
}

// GetCart returns the current unpaid cart for username with its line items,
// creating an empty unpaid cart when none exists.
func (d *CartDAO) GetCart(username string) (models.Cart, error) {
	tx, err := d.db.Beginx()
	if err != nil {
		return models.Cart{}, err
	}
	defer tx.Rollback()

	cart, err := unpaidCart(tx, username)
	if errors.Is(err, sql.ErrNoRows) {
		cart = models.Cart{ID: uuid.New(), Customer: username}
		if err := insertCart(tx, cart); err != nil {
			return models.Cart{}, err
		}
	} else if err != nil {
		return models.Cart{}, err
	}

	items, err := cartProducts(tx, cart.ID)
	if err != nil {
		return models.Cart{}, err
	}
	cart.Products = items

	if err := tx.Commit(); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

func insertCart(e sqlx.Execer, cart models.Cart) error {
	query, args, err := QB.Insert("carts").
		Columns(cartColumns...).
		Values(cart.ID, cart.Customer, cart.Paid, cart.PaymentDate, cart.Total).
		ToSql()
	if err != nil {
		return err
	}
	_, err = e.Exec(query, args...)
	return err
}

// CreateUserCart inserts a new empty unpaid cart for username.
func (d *CartDAO) CreateUserCart(username string) error {
	return insertCart(d.db, models.Cart{ID: uuid.New(), Customer: username})
}

// GetCartID returns the id of the current unpaid cart.
func (d *CartDAO) GetCartID(username string) (uuid.UUID, error) {
	var id uuid.UUID
	query, args, err := QB.Select("id").From("carts").
		Where(squirrel.Eq{"customer": username, "paid": false}).
		ToSql()
	if err != nil {
		return id, err
	}
	if err := d.db.Get(&id, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return id, &models.CartNotFoundError{}
		}
		return id, err
	}
	return id, nil
}

// CheckProductQuantity reports whether the product can be added to a cart:
// false when it does not exist or has zero stock.
func (d *CartDAO) CheckProductQuantity(model string) (bool, error) {
	return productAvailable(d.db, model)
}

// UpdateAddOneUnitProductToCart increments an existing line item by one unit
// and recomputes the cart total in the same transaction.
func (d *CartDAO) UpdateAddOneUnitProductToCart(cartID uuid.UUID, model string) error {
	tx, err := d.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	available, err := productAvailable(tx, model)
	if err != nil {
		return err
	}
	if !available {
		return &models.ProductInCartError{}
	}

	query, args, err := QB.Update("productInCart").
		Set("quantity", squirrel.Expr("quantity + 1")).
		Where(squirrel.Eq{"id_cart": cartID, "model": model}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(query, args...); err != nil {
		return err
	}
	if err := recomputeTotal(tx, cartID); err != nil {
		return err
	}
	return tx.Commit()
}

// AddNewProductToCart inserts a one-unit line item with the given price and
// category snapshot and recomputes the cart total in the same transaction.
func (d *CartDAO) AddNewProductToCart(cartID uuid.UUID, model string, category models.Category, price float64) error {
	tx, err := d.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	available, err := productAvailable(tx, model)
	if err != nil {
		return err
	}
	if !available {
		return &models.ProductInCartError{}
	}

	query, args, err := QB.Insert("productInCart").
		Columns(cartItemColumns...).
		Values(cartID, model, 1, category, price).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(query, args...); err != nil {
		return err
	}
	if err := recomputeTotal(tx, cartID); err != nil {
		return err
	}
	return tx.Commit()
}

// UpdateCart recomputes the cart's stored total from its line items.
func (d *CartDAO) UpdateCart(cartID uuid.UUID) error {
	return recomputeTotal(d.db, cartID)
}

func (d *CartDAO) GetCartProducts(cartID uuid.UUID) ([]models.ProductInCart, error) {
	return cartProducts(d.db, cartID)
}

// NotEmptyCart fails with CartNotFoundError when the cart does not exist and
// with EmptyCartError when its total is zero.
func (d *CartDAO) NotEmptyCart(cartID uuid.UUID) error {
	var total float64
	query, args, err := QB.Select("total").From("carts").
		Where(squirrel.Eq{"id": cartID}).
		ToSql()
	if err != nil {
		return err
	}
	if err := d.db.Get(&total, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.CartNotFoundError{}
		}
		return err
	}
	if total == 0 {
		return &models.EmptyCartError{}
	}
	return nil
}

type itemAvailability struct {
	Model     string `db:"model"`
	Requested int    `db:"requested"`
	Available int    `db:"available"`
}

// ProductAvailability checks every line item against live stock: each one
// must request no more than the available quantity, which must be positive.
func (d *CartDAO) ProductAvailability(cartID uuid.UUID) error {
	query, args, err := QB.Select(
		"productInCart.model AS model",
		"productInCart.quantity AS requested",
		"COALESCE(products.quantity, 0) AS available").
		From("productInCart").
		LeftJoin("products ON products.model = productInCart.model").
		Where(squirrel.Eq{"id_cart": cartID}).
		ToSql()
	if err != nil {
		return err
	}
	rows := []itemAvailability{}
	if err := d.db.Select(&rows, query, args...); err != nil {
		return err
	}
	for _, row := range rows {
		if row.Available == 0 || row.Requested > row.Available {
			return &models.ProductInCartError{}
		}
	}
	return nil
}

// CheckoutCart marks the cart paid on paymentDate and decrements the stock
// of every line item's product. The whole checkout runs in one transaction:
// a failed decrement rolls back the paid flag and every earlier decrement.
func (d *CartDAO) CheckoutCart(cartID uuid.UUID, paymentDate string) error {
	tx, err := d.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	items, err := cartProducts(tx, cartID)
	if err != nil {
		return err
	}

	query, args, err := QB.Update("carts").
		Set("paid", true).
		Set("payment_date", paymentDate).
		Where(squirrel.Eq{"id": cartID}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(query, args...); err != nil {
		return err
	}

	for _, item := range items {
		product, err := getProduct(tx, item.Model)
		if err != nil {
			return err
		}
		if product.Quantity == 0 {
			return &models.EmptyProductStockError{}
		}
		if product.Quantity < item.Quantity {
			return &models.LowProductStockError{}
		}
		if err := setProductQuantity(tx, item.Model, product.Quantity-item.Quantity); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// GetCustomerCarts returns the paid carts of username, line items included.
func (d *CartDAO) GetCustomerCarts(username string) ([]models.Cart, error) {
	query, args, err := QB.Select(cartColumns...).From("carts").
		Where(squirrel.Eq{"customer": username, "paid": true}).
		ToSql()
	if err != nil {
		return nil, err
	}
	carts := []models.Cart{}
	if err := d.db.Select(&carts, query, args...); err != nil {
		return nil, err
	}
	for i := range carts {
		items, err := cartProducts(d.db, carts[i].ID)
		if err != nil {
			return nil, err
		}
		carts[i].Products = items
	}
	return carts, nil
}

// DeleteProductFromCart removes the line item entirely and recomputes the
// cart total.
func (d *CartDAO) DeleteProductFromCart(cartID uuid.UUID, model string) error {
	tx, err := d.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query, args, err := QB.Delete("productInCart").
		Where(squirrel.Eq{"id_cart": cartID, "model": model}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := tx.Exec(query, args...)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return &models.ProductNotInCartError{}
	}
	if err := recomputeTotal(tx, cartID); err != nil {
		return err
	}
	return tx.Commit()
}

// UpdateRemoveOneUnitProductToCart decrements the line item by one unit and
// recomputes the cart total.
func (d *CartDAO) UpdateRemoveOneUnitProductToCart(cartID uuid.UUID, model string) error {
	tx, err := d.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query, args, err := QB.Update("productInCart").
		Set("quantity", squirrel.Expr("quantity - 1")).
		Where(squirrel.Eq{"id_cart": cartID, "model": model}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := tx.Exec(query, args...)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return &models.ProductNotInCartError{}
	}
	if err := recomputeTotal(tx, cartID); err != nil {
		return err
	}
	return tx.Commit()
}

// ClearCart deletes every line item and resets the cart total to zero.
func (d *CartDAO) ClearCart(cartID uuid.UUID) error {
	tx, err := d.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query, args, err := QB.Delete("productInCart").
		Where(squirrel.Eq{"id_cart": cartID}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(query, args...); err != nil {
		return err
	}
	if err := recomputeTotal(tx, cartID); err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteAllCarts removes every cart and line item for every user.
func (d *CartDAO) DeleteAllCarts() error {
	tx, err := d.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	itemsQuery, _, err := QB.Delete("productInCart").ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(itemsQuery); err != nil {
		return err
	}
	cartsQuery, _, err := QB.Delete("carts").ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(cartsQuery); err != nil {
		return err
	}
	return tx.Commit()
}

// GetAllCarts returns every cart of every user, line items included.
func (d *CartDAO) GetAllCarts() ([]models.Cart, error) {
	query, _, err := QB.Select(cartColumns...).From("carts").ToSql()
	if err != nil {
		return nil, err
	}
	carts := []models.Cart{}
	if err := d.db.Select(&carts, query); err != nil {
		return nil, err
	}
	for i := range carts {
		items, err := cartProducts(d.db, carts[i].ID)
		if err != nil {
			return nil, err
		}
		carts[i].Products = items
	}
	return carts, nil
}
