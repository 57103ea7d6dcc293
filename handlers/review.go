package handlers

import (
	"encoding/json"
	"net/http"

	"ezelectronics/models"
	"ezelectronics/utils"
)

type addReviewRequest struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

func (h *Handlers) AddReview(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireRole(w, r, models.RoleCustomer)
	if !ok {
		return
	}
	var req addReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.HandleError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Score < 1 || req.Score > 5 {
		utils.HandleError(w, http.StatusUnprocessableEntity, "Score must be between 1 and 5")
		return
	}
	if req.Comment == "" {
		utils.HandleError(w, http.StatusUnprocessableEntity, "Comment is required")
		return
	}

	if err := h.Reviews.AddReview(r.PathValue("model"), user, req.Score, req.Comment); err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, map[string]string{
		"message": "Review added successfully",
	})
}

func (h *Handlers) GetProductReviews(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireUser(w, r); !ok {
		return
	}
	reviews, err := h.Reviews.GetProductReviews(r.PathValue("model"))
	if err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, reviews)
}

func (h *Handlers) DeleteReview(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireRole(w, r, models.RoleCustomer)
	if !ok {
		return
	}
	if err := h.Reviews.DeleteReview(r.PathValue("model"), user); err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, map[string]string{
		"message": "Review deleted successfully",
	})
}

func (h *Handlers) DeleteReviewsOfProduct(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, models.RoleAdmin, models.RoleManager); !ok {
		return
	}
	if err := h.Reviews.DeleteReviewsOfProduct(r.PathValue("model")); err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, map[string]string{
		"message": "Reviews deleted successfully",
	})
}

func (h *Handlers) DeleteAllReviews(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, models.RoleAdmin, models.RoleManager); !ok {
		return
	}
	if err := h.Reviews.DeleteAllReviews(); err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, map[string]string{
		"message": "Reviews deleted successfully",
	})
}
