package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"revenueBack/internal/models"
	"revenueBack/internal/services"
)

type UserHandler struct {
	Service *services.UserService
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.GetAllUsers(r.Context())
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	user, err := h.Service.GetUserByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			errorJSON(w, http.StatusNotFound, "User not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := user.Validate(); len(details) > 0 {
		validationError(w, details)
		return
	}

	created, err := h.Service.CreateUser(r.Context(), user)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateUsername) {
			errorJSON(w, http.StatusBadRequest, "Username already taken")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	var updates models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := updates.Validate(); len(details) > 0 {
		validationError(w, details)
		return
	}

	updated, err := h.Service.UpdateUser(r.Context(), id, updates)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			errorJSON(w, http.StatusNotFound, "User not found")
			return
		}
		if errors.Is(err, models.ErrDuplicateUsername) {
			errorJSON(w, http.StatusBadRequest, "Username already taken")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Failed to update user")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if err := h.Service.DeleteUser(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			errorJSON(w, http.StatusNotFound, "User not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
