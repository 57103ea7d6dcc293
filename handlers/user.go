package handlers

import (
	"encoding/json"
	"net/http"

	"ezelectronics/models"
	"ezelectronics/utils"
)

type createUserRequest struct {
	Username string      `json:"username"`
	Name     string      `json:"name"`
	Surname  string      `json:"surname"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// CreateUser registers a new account. Registration is open: no token is
// required, matching the public signup of the store.
func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.HandleError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Name == "" || req.Surname == "" || req.Password == "" {
		utils.HandleError(w, http.StatusUnprocessableEntity, "Make sure you fill all fields")
		return
	}
	if !req.Role.Valid() {
		utils.HandleError(w, http.StatusUnprocessableEntity, "Role must be Customer, Manager or Admin")
		return
	}

	if err := h.Users.CreateUser(req.Username, req.Name, req.Surname, req.Password, req.Role); err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, map[string]string{
		"message": "User created successfully",
	})
}

func (h *Handlers) GetUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, models.RoleAdmin); !ok {
		return
	}
	users, err := h.Users.GetUsers()
	if err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, users)
}

func (h *Handlers) GetUsersByRole(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, models.RoleAdmin); !ok {
		return
	}
	role := models.Role(r.PathValue("role"))
	if !role.Valid() {
		utils.HandleError(w, http.StatusUnprocessableEntity, "Role must be Customer, Manager or Admin")
		return
	}
	users, err := h.Users.GetUsersByRole(role)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, users)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	user, err := h.Users.GetUserByUsername(caller, r.PathValue("username"))
	if err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, user)
}

type updateUserRequest struct {
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Address   string `json:"address"`
	Birthdate string `json:"birthdate"`
}

func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.HandleError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Surname == "" || req.Address == "" || req.Birthdate == "" {
		utils.HandleError(w, http.StatusUnprocessableEntity, "Make sure you fill all fields")
		return
	}

	user, err := h.Users.UpdateUserInfo(caller, req.Name, req.Surname, req.Address, req.Birthdate, r.PathValue("username"))
	if err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, user)
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	if err := h.Users.DeleteUser(caller, r.PathValue("username")); err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, map[string]string{
		"message": "User deleted successfully",
	})
}

func (h *Handlers) DeleteAllUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, models.RoleAdmin); !ok {
		return
	}
	if err := h.Users.DeleteAll(); err != nil {
		respondError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, map[string]string{
		"message": "Users deleted successfully",
	})
}
