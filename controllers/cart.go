package controllers

import (
	"errors"

	"ezelectronics/daos"
	"ezelectronics/models"
	"ezelectronics/utils"
)

type CartController struct {
	carts    *daos.CartDAO
	products *ProductController
}

func NewCartController(carts *daos.CartDAO, products *ProductController) *CartController {
	return &CartController{carts: carts, products: products}
}

// AddToCart puts one unit of the product in the user's current cart: an
// existing line item gains a unit, otherwise a new line item is created with
// a snapshot of the product's current price and category. An unknown model
// fails with ProductNotInCartError.
func (c *CartController) AddToCart(user models.User, model string) error {
	cart, err := c.carts.GetCart(user.Username)
	if err != nil {
		return err
	}

	for _, item := range cart.Products {
		if item.Model == model {
			return c.carts.UpdateAddOneUnitProductToCart(cart.ID, model)
		}
	}

	products, err := c.products.GetProducts(daos.GroupingModel, "", model)
	if err != nil {
		var notFound *models.ProductNotFoundError
		if errors.As(err, &notFound) {
			return &models.ProductNotInCartError{}
		}
		return err
	}
	if len(products) == 0 {
		return &models.ProductNotInCartError{}
	}
	product := products[0]
	return c.carts.AddNewProductToCart(cart.ID, model, product.Category, product.SellingPrice)
}

func (c *CartController) GetCart(user models.User) (models.Cart, error) {
	return c.carts.GetCart(user.Username)
}

// CheckoutCart pays the user's current cart: the cart must exist, must not
// be empty, and every line item must be satisfiable by live stock. On
// success the cart is marked paid with today's date and every product's
// stock is decremented, all in one transaction.
func (c *CartController) CheckoutCart(user models.User) error {
	cartID, err := c.carts.GetCartID(user.Username)
	if err != nil {
		return err
	}
	if err := c.carts.NotEmptyCart(cartID); err != nil {
		return err
	}
	if err := c.carts.ProductAvailability(cartID); err != nil {
		return err
	}
	return c.carts.CheckoutCart(cartID, utils.Today())
}

func (c *CartController) GetCustomerCarts(user models.User) ([]models.Cart, error) {
	return c.carts.GetCustomerCarts(user.Username)
}

// RemoveProductFromCart takes one unit of the product out of the current
// cart, deleting the line item when it held a single unit. An empty cart
// fails with CartNotFoundError; a model absent from the catalog or from the
// cart fails with ProductNotInCartError.
func (c *CartController) RemoveProductFromCart(user models.User, model string) error {
	cart, err := c.carts.GetCart(user.Username)
	if err != nil {
		return err
	}
	if len(cart.Products) == 0 {
		return &models.CartNotFoundError{}
	}

	if _, err := c.products.GetProducts(daos.GroupingModel, "", model); err != nil {
		var notFound *models.ProductNotFoundError
		if errors.As(err, &notFound) {
			return &models.ProductNotInCartError{}
		}
		return err
	}

	for _, item := range cart.Products {
		if item.Model == model {
			if item.Quantity == 1 {
				return c.carts.DeleteProductFromCart(cart.ID, model)
			}
			return c.carts.UpdateRemoveOneUnitProductToCart(cart.ID, model)
		}
	}
	return &models.ProductNotInCartError{}
}

// ClearCart empties the user's current cart; a cart with no line items
// fails with CartNotFoundError.
func (c *CartController) ClearCart(user models.User) error {
	cart, err := c.carts.GetCart(user.Username)
	if err != nil {
		return err
	}
	if len(cart.Products) == 0 {
		return &models.CartNotFoundError{}
	}
	return c.carts.ClearCart(cart.ID)
}

func (c *CartController) DeleteAllCarts() error {
	return c.carts.DeleteAllCarts()
}

func (c *CartController) GetAllCarts() ([]models.Cart, error) {
	return c.carts.GetAllCarts()
}
