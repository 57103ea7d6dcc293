// Package handlers is the HTTP boundary: request decoding, authentication
// and role guards, and the mapping of typed domain errors onto status codes.
// Everything below it works with plain domain objects.
package handlers

import (
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"

	"ezelectronics/auth"
	"ezelectronics/controllers"
	"ezelectronics/daos"
	"ezelectronics/models"
	"ezelectronics/utils"
)

type Handlers struct {
	Users    *controllers.UserController
	Products *controllers.ProductController
	Carts    *controllers.CartController
	Reviews  *controllers.ReviewController
}

// New wires DAOs and controllers over the shared database handle.
func New(db *sqlx.DB) *Handlers {
	products := controllers.NewProductController(daos.NewProductDAO(db))
	return &Handlers{
		Users:    controllers.NewUserController(daos.NewUserDAO(db)),
		Products: products,
		Carts:    controllers.NewCartController(daos.NewCartDAO(db), products),
		Reviews:  controllers.NewReviewController(daos.NewReviewDAO(db)),
	}
}

// currentUser resolves the caller from the bearer token.
func (h *Handlers) currentUser(r *http.Request) (models.User, error) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return models.User{}, &models.UserNotFoundError{}
	}
	username, err := auth.ValidateToken(token)
	if err != nil {
		return models.User{}, err
	}
	return h.Users.GetUser(username)
}

func (h *Handlers) requireUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, err := h.currentUser(r)
	if err != nil {
		utils.HandleError(w, http.StatusUnauthorized, "Unauthenticated user")
		return models.User{}, false
	}
	return user, true
}

func (h *Handlers) requireRole(w http.ResponseWriter, r *http.Request, roles ...models.Role) (models.User, bool) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return models.User{}, false
	}
	for _, role := range roles {
		if user.Role == role {
			return user, true
		}
	}
	utils.HandleError(w, http.StatusUnauthorized, "User does not have the required role")
	return models.User{}, false
}

// respondError translates a domain error into its HTTP reply.
func respondError(w http.ResponseWriter, err error) {
	utils.HandleError(w, models.StatusOf(err), err.Error())
}
