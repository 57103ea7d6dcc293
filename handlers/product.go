package handlers

import (
	"encoding/json"
	"net/http"

	"ezelectronics/daos"
	"ezelectronics/models"
	"ezelectronics/utils"
)

type registerProductsRequest struct {
	Model        string          `json:"model"`
	Category     models.Category `json:"category"`
	Quantity     int             `json:"quantity"`
	Details      string          `json:"details"`
	SellingPrice float64         `json:"sellingPrice"`
	ArrivalDate  string          `json:"arrivalDate"`
}

func (h *Handlers) RegisterProducts(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, models.RoleManager, models.RoleAdmin); !ok {
		return
	}
	var req registerProductsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.HandleError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Model == "" || req.Quantity < 1 || req.SellingPrice <= 0 {
		utils.HandleError(w, http.StatusUnprocessableEntity, "Model, a positive quantity and a positive selling price are required")
		return
	}
	if !req.Category.Valid() {
		utils.HandleError(w, http.StatusUnprocessableEntity, "Category must be Smartphone, Laptop or Appliance")
		return
	}

	if err := h.Products.RegisterProducts(req.Model, req.Category, req.Quantity, req.Details, req.SellingPrice, req.ArrivalDate); err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, map[string]string{
		"message": "Products registered successfully",
	})
}

type changeQuantityRequest struct {
	Quantity   int    `json:"quantity"`
	ChangeDate string `json:"changeDate"`
}

func (h *Handlers) ChangeProductQuantity(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, models.RoleManager, models.RoleAdmin); !ok {
		return
	}
	var req changeQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.HandleError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Quantity < 1 {
		utils.HandleError(w, http.StatusUnprocessableEntity, "Quantity must be at least 1")
		return
	}

	quantity, err := h.Products.ChangeProductQuantity(r.PathValue("model"), req.Quantity, req.ChangeDate)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, map[string]int{"quantity": quantity})
}

type sellProductRequest struct {
	Quantity    int    `json:"quantity"`
	SellingDate string `json:"sellingDate"`
}

func (h *Handlers) SellProduct(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, models.RoleManager, models.RoleAdmin); !ok {
		return
	}
	var req sellProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.HandleError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Quantity < 1 {
		utils.HandleError(w, http.StatusUnprocessableEntity, "Quantity must be at least 1")
		return
	}

	quantity, err := h.Products.SellProduct(r.PathValue("model"), req.Quantity, req.SellingDate)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, map[string]int{"quantity": quantity})
}

// productFilter validates the grouping/category/model query combination:
// no grouping allows no filter; grouping=category requires a valid category
// and no model; grouping=model requires a model and no category.
func productFilter(r *http.Request) (grouping string, category models.Category, model string, ok bool) {
	grouping = r.URL.Query().Get("grouping")
	category = models.Category(r.URL.Query().Get("category"))
	model = r.URL.Query().Get("model")

	switch grouping {
	case daos.GroupingNone:
		ok = category == "" && model == ""
	case daos.GroupingCategory:
		ok = category.Valid() && model == ""
	case daos.GroupingModel:
		ok = category == "" && model != ""
	}
	return grouping, category, model, ok
}

func (h *Handlers) GetProducts(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, models.RoleManager, models.RoleAdmin); !ok {
		return
	}
	grouping, category, model, ok := productFilter(r)
	if !ok {
		utils.HandleError(w, http.StatusUnprocessableEntity, "Invalid grouping parameters")
		return
	}
	products, err := h.Products.GetProducts(grouping, category, model)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, products)
}

func (h *Handlers) GetAvailableProducts(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireUser(w, r); !ok {
		return
	}
	grouping, category, model, ok := productFilter(r)
	if !ok {
		utils.HandleError(w, http.StatusUnprocessableEntity, "Invalid grouping parameters")
		return
	}
	products, err := h.Products.GetAvailableProducts(grouping, category, model)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, products)
}

func (h *Handlers) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, models.RoleManager, models.RoleAdmin); !ok {
		return
	}
	if err := h.Products.DeleteProduct(r.PathValue("model")); err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, map[string]string{
		"message": "Product deleted successfully",
	})
}

func (h *Handlers) DeleteAllProducts(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, models.RoleManager, models.RoleAdmin); !ok {
		return
	}
	if err := h.Products.DeleteAllProducts(); err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, map[string]string{
		"message": "Products deleted successfully",
	})
}
