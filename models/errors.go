package models

import (
	"errors"
	"net/http"
)

// Domain errors carry the HTTP status the handler layer replies with. DAOs
// and controllers return them for expected business failures; anything else
// bubbling up is treated as an infrastructure error (503).

type StatusError interface {
	error
	Status() int
}

// StatusOf maps an error to its HTTP status, defaulting to 503 for
// unexpected database or infrastructure failures.
func StatusOf(err error) int {
	var se StatusError
	if errors.As(err, &se) {
		return se.Status()
	}
	return http.StatusServiceUnavailable
}

type UserNotFoundError struct{}

func (e *UserNotFoundError) Error() string { return "The user does not exist" }
func (e *UserNotFoundError) Status() int   { return http.StatusNotFound }

type UserAlreadyExistsError struct{}

func (e *UserAlreadyExistsError) Error() string { return "The username already exists" }
func (e *UserAlreadyExistsError) Status() int   { return http.StatusConflict }

type UserNotAdminError struct{}

func (e *UserNotAdminError) Error() string { return "This operation can be performed only by an admin" }
func (e *UserNotAdminError) Status() int   { return http.StatusUnauthorized }

type UserIsAdminError struct{}

func (e *UserIsAdminError) Error() string { return "Admins cannot be deleted" }
func (e *UserIsAdminError) Status() int   { return http.StatusUnauthorized }

type ProductNotFoundError struct{}

func (e *ProductNotFoundError) Error() string { return "Product not found" }
func (e *ProductNotFoundError) Status() int   { return http.StatusNotFound }

type ProductAlreadyExistsError struct{}

func (e *ProductAlreadyExistsError) Error() string { return "The product already exists" }
func (e *ProductAlreadyExistsError) Status() int   { return http.StatusConflict }

type EmptyProductStockError struct{}

func (e *EmptyProductStockError) Error() string { return "Product stock is empty" }
func (e *EmptyProductStockError) Status() int   { return http.StatusConflict }

type LowProductStockError struct{}

func (e *LowProductStockError) Error() string {
	return "Product stock cannot satisfy the requested quantity"
}
func (e *LowProductStockError) Status() int { return http.StatusConflict }

type DateError struct{}

func (e *DateError) Error() string { return "Input date is not compatible with the current date" }
func (e *DateError) Status() int   { return http.StatusBadRequest }

type CartNotFoundError struct{}

func (e *CartNotFoundError) Error() string { return "Cart not found" }
func (e *CartNotFoundError) Status() int   { return http.StatusNotFound }

// ProductInCartError doubles as "product unavailable" and "insufficient
// stock for a line item": both surface as a 409 at the API boundary.
type ProductInCartError struct{}

func (e *ProductInCartError) Error() string { return "Product already in cart" }
func (e *ProductInCartError) Status() int   { return http.StatusConflict }

// ProductNotInCartError doubles as "product not in the current cart" and
// "product does not exist in the catalog": both surface as a 404.
type ProductNotInCartError struct{}

func (e *ProductNotInCartError) Error() string { return "Product not in cart" }
func (e *ProductNotInCartError) Status() int   { return http.StatusNotFound }

type EmptyCartError struct{}

func (e *EmptyCartError) Error() string { return "Cart is empty" }
func (e *EmptyCartError) Status() int   { return http.StatusBadRequest }

type ExistingReviewError struct{}

func (e *ExistingReviewError) Error() string { return "You have already reviewed this product" }
func (e *ExistingReviewError) Status() int   { return http.StatusConflict }

type NoReviewProductError struct{}

func (e *NoReviewProductError) Error() string { return "You have not reviewed this product" }
func (e *NoReviewProductError) Status() int   { return http.StatusNotFound }
