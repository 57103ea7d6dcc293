package handlers

import (
	"encoding/json"
	"net/http"

	"ezelectronics/auth"
	"ezelectronics/utils"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks the credentials and returns a bearer token with the user.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.HandleError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		utils.HandleError(w, http.StatusUnprocessableEntity, "Username and password are required")
		return
	}

	user, err := h.Users.Login(req.Username, req.Password)
	if err != nil {
		utils.HandleError(w, http.StatusUnauthorized, "Incorrect username and/or password")
		return
	}

	token, err := auth.GenerateToken(user.Username)
	if err != nil {
		utils.HandleError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.SendJSONResponse(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// CurrentSession returns the authenticated user.
func (h *Handlers) CurrentSession(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, user)
}

// Logout exists for API symmetry; tokens are stateless, the client just
// discards its copy.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireUser(w, r); !ok {
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, map[string]string{
		"message": "Logged out",
	})
}
