package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"revenueBack/internal/models"
	"revenueBack/internal/services"
)

type BusinessHandler struct {
	Service *services.BusinessService
}

func (h *BusinessHandler) RegisterBusiness(w http.ResponseWriter, r *http.Request) {
	var reg models.BusinessRegistration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := reg.Validate(); len(details) > 0 {
		validationError(w, details)
		return
	}

	created, err := h.Service.RegisterBusiness(r.Context(), reg)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateRegistration) {
			errorJSON(w, http.StatusBadRequest, "Registration number already exists")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Failed to register business")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *BusinessHandler) GetRegistrations(w http.ResponseWriter, r *http.Request) {
	registrations, err := h.Service.GetAllRegistrations(r.Context())
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch registrations")
		return
	}
	writeJSON(w, http.StatusOK, registrations)
}

func (h *BusinessHandler) GetRegistrationByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	reg, err := h.Service.GetRegistrationByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrRegistrationNotFound) {
			errorJSON(w, http.StatusNotFound, "Registration not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch registration")
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

func (h *BusinessHandler) UpdateRegistrationStatus(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	var req models.UpdateRegistrationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := req.Validate(); len(details) > 0 {
		validationError(w, details)
		return
	}

	updated, err := h.Service.UpdateRegistrationStatus(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, models.ErrRegistrationNotFound) {
			errorJSON(w, http.StatusNotFound, "Registration not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Failed to update registration")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *BusinessHandler) DeleteRegistration(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if err := h.Service.DeleteRegistration(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrRegistrationNotFound) {
			errorJSON(w, http.StatusNotFound, "Registration not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Failed to delete registration")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
