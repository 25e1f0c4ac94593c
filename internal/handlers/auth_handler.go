package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"revenueBack/internal/models"
	"revenueBack/internal/services"
)

type AuthHandler struct {
	Service *services.AuthService
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		errorJSON(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	resp, err := h.Service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			errorJSON(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Login failed")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
