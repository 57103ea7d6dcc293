package controllers

import (
	"errors"
	"testing"

	"ezelectronics/daos"
	"ezelectronics/models"
)

// Register product X with stock 5 at price 100; two adds make a single line
// item of quantity 2 and total 200; checkout pays the cart and leaves stock
// at 3.
func TestCartLifecycle(t *testing.T) {
	_, products, carts, _ := newControllers(t)
	user := customer("alice")

	if err := products.RegisterProducts("X", models.CategorySmartphone, 5, "", 100, ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := carts.AddToCart(user, "X"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	cart, err := carts.GetCart(user)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if cart.Total != 100 || len(cart.Products) != 1 || cart.Products[0].Quantity != 1 {
		t.Fatalf("unexpected cart after first add: %+v", cart)
	}

	if err := carts.AddToCart(user, "X"); err != nil {
		t.Fatalf("second add: %v", err)
	}
	cart, err = carts.GetCart(user)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if cart.Total != 200 || cart.Products[0].Quantity != 2 {
		t.Fatalf("unexpected cart after second add: %+v", cart)
	}

	if err := carts.CheckoutCart(user); err != nil {
		t.Fatalf("checkout: %v", err)
	}

	listed, err := products.GetProducts(daos.GroupingModel, "", "X")
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if listed[0].Quantity != 3 {
		t.Fatalf("expected stock 3 after checkout, got %d", listed[0].Quantity)
	}

	history, err := carts.GetCustomerCarts(user)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || !history[0].Paid || history[0].Total != 200 {
		t.Fatalf("unexpected history: %+v", history)
	}
}

func TestAddToCartUnknownModel(t *testing.T) {
	_, _, carts, _ := newControllers(t)

	var notInCart *models.ProductNotInCartError
	if err := carts.AddToCart(customer("alice"), "missing"); !errors.As(err, &notInCart) {
		t.Fatalf("expected ProductNotInCartError, got %v", err)
	}
}

func TestCheckoutFailures(t *testing.T) {
	_, products, carts, _ := newControllers(t)
	user := customer("alice")

	// No cart at all.
	var cartNotFound *models.CartNotFoundError
	if err := carts.CheckoutCart(user); !errors.As(err, &cartNotFound) {
		t.Fatalf("expected CartNotFoundError, got %v", err)
	}

	// A cart with no line items has total 0.
	if _, err := carts.GetCart(user); err != nil {
		t.Fatalf("get cart: %v", err)
	}
	var emptyCart *models.EmptyCartError
	if err := carts.CheckoutCart(user); !errors.As(err, &emptyCart) {
		t.Fatalf("expected EmptyCartError, got %v", err)
	}

	// Line item quantity above live stock.
	if err := products.RegisterProducts("X", models.CategorySmartphone, 2, "", 100, ""); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := carts.AddToCart(user, "X"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := carts.AddToCart(user, "X"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := products.SellProduct("X", 1, ""); err != nil {
		t.Fatalf("sell: %v", err)
	}
	var inCart *models.ProductInCartError
	if err := carts.CheckoutCart(user); !errors.As(err, &inCart) {
		t.Fatalf("expected ProductInCartError, got %v", err)
	}
}

func TestRemoveProductFromCart(t *testing.T) {
	_, products, carts, _ := newControllers(t)
	user := customer("alice")

	if err := products.RegisterProducts("X", models.CategorySmartphone, 5, "", 100, ""); err != nil {
		t.Fatalf("register X: %v", err)
	}
	if err := products.RegisterProducts("Y", models.CategoryLaptop, 5, "", 900, ""); err != nil {
		t.Fatalf("register Y: %v", err)
	}

	// Empty cart: nothing to remove.
	var cartNotFound *models.CartNotFoundError
	if err := carts.RemoveProductFromCart(user, "X"); !errors.As(err, &cartNotFound) {
		t.Fatalf("expected CartNotFoundError, got %v", err)
	}

	if err := carts.AddToCart(user, "X"); err != nil {
		t.Fatalf("add X: %v", err)
	}
	if err := carts.AddToCart(user, "X"); err != nil {
		t.Fatalf("add X: %v", err)
	}
	if err := carts.AddToCart(user, "Y"); err != nil {
		t.Fatalf("add Y: %v", err)
	}

	// Quantity 2 decrements to 1; quantity 1 deletes the line item.
	if err := carts.RemoveProductFromCart(user, "X"); err != nil {
		t.Fatalf("remove X: %v", err)
	}
	if err := carts.RemoveProductFromCart(user, "X"); err != nil {
		t.Fatalf("remove X again: %v", err)
	}

	// X is gone but Y remains, so this is "not in cart", not "no cart".
	var notInCart *models.ProductNotInCartError
	if err := carts.RemoveProductFromCart(user, "X"); !errors.As(err, &notInCart) {
		t.Fatalf("expected ProductNotInCartError, got %v", err)
	}

	cart, err := carts.GetCart(user)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(cart.Products) != 1 || cart.Products[0].Model != "Y" || cart.Total != 900 {
		t.Fatalf("unexpected cart: %+v", cart)
	}

	// Removing the last line item empties the cart entirely.
	if err := carts.RemoveProductFromCart(user, "Y"); err != nil {
		t.Fatalf("remove Y: %v", err)
	}
	if err := carts.RemoveProductFromCart(user, "Y"); !errors.As(err, &cartNotFound) {
		t.Fatalf("expected CartNotFoundError on empty cart, got %v", err)
	}
}

func TestClearCartRoundTrip(t *testing.T) {
	_, products, carts, _ := newControllers(t)
	user := customer("alice")

	var cartNotFound *models.CartNotFoundError
	if err := carts.ClearCart(user); !errors.As(err, &cartNotFound) {
		t.Fatalf("expected CartNotFoundError, got %v", err)
	}

	if err := products.RegisterProducts("X", models.CategorySmartphone, 5, "", 100, ""); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := carts.AddToCart(user, "X"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := carts.ClearCart(user); err != nil {
		t.Fatalf("clear: %v", err)
	}

	cart, err := carts.GetCart(user)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(cart.Products) != 0 || cart.Total != 0 {
		t.Fatalf("cart not cleared: %+v", cart)
	}
}
