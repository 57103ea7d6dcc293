package handlers

import (
	"encoding/json"
	"net/http"

	"ezelectronics/models"
	"ezelectronics/utils"
)

func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireRole(w, r, models.RoleCustomer)
	if !ok {
		return
	}
	cart, err := h.Carts.GetCart(user)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, cart)
}

type addToCartRequest struct {
	Model string `json:"model"`
}

func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireRole(w, r, models.RoleCustomer)
	if !ok {
		return
	}
	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.HandleError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Model == "" {
		utils.HandleError(w, http.StatusUnprocessableEntity, "Model is required")
		return
	}

	if err := h.Carts.AddToCart(user, req.Model); err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, map[string]string{
		"message": "Product added to cart",
	})
}

func (h *Handlers) CheckoutCart(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireRole(w, r, models.RoleCustomer)
	if !ok {
		return
	}
	if err := h.Carts.CheckoutCart(user); err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, map[string]string{
		"message": "Cart checked out",
	})
}

func (h *Handlers) GetCartHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireRole(w, r, models.RoleCustomer)
	if !ok {
		return
	}
	carts, err := h.Carts.GetCustomerCarts(user)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, carts)
}

func (h *Handlers) RemoveProductFromCart(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireRole(w, r, models.RoleCustomer)
	if !ok {
		return
	}
	if err := h.Carts.RemoveProductFromCart(user, r.PathValue("model")); err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, map[string]string{
		"message": "Product removed from cart",
	})
}

func (h *Handlers) ClearCart(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireRole(w, r, models.RoleCustomer)
	if !ok {
		return
	}
	if err := h.Carts.ClearCart(user); err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, map[string]string{
		"message": "Cart cleared",
	})
}

func (h *Handlers) GetAllCarts(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, models.RoleAdmin, models.RoleManager); !ok {
		return
	}
	carts, err := h.Carts.GetAllCarts()
	if err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, carts)
}

func (h *Handlers) DeleteAllCarts(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, models.RoleAdmin, models.RoleManager); !ok {
		return
	}
	if err := h.Carts.DeleteAllCarts(); err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, map[string]string{
		"message": "Carts deleted successfully",
	})
}
