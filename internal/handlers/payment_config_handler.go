package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"revenueBack/internal/models"
	"revenueBack/internal/services"
)

type PaymentConfigHandler struct {
	Service *services.PaymentConfigService
}

func (h *PaymentConfigHandler) GetConfigurations(w http.ResponseWriter, r *http.Request) {
	configs, err := h.Service.GetAllConfigurations(r.Context())
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch configurations")
		return
	}
	writeJSON(w, http.StatusOK, configs)
}

func (h *PaymentConfigHandler) CreateConfiguration(w http.ResponseWriter, r *http.Request) {
	var config models.PaymentConfiguration
	if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := config.Validate(); len(details) > 0 {
		validationError(w, details)
		return
	}

	created, err := h.Service.CreateConfiguration(r.Context(), config)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Failed to create configuration")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *PaymentConfigHandler) UpdateConfiguration(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	var updates models.PaymentConfigurationUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := updates.Validate(); len(details) > 0 {
		validationError(w, details)
		return
	}

	updated, err := h.Service.UpdateConfiguration(r.Context(), id, updates)
	if err != nil {
		if errors.Is(err, models.ErrConfigurationNotFound) {
			errorJSON(w, http.StatusNotFound, "Configuration not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Failed to update configuration")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *PaymentConfigHandler) DeleteConfiguration(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if err := h.Service.DeleteConfiguration(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrConfigurationNotFound) {
			errorJSON(w, http.StatusNotFound, "Configuration not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Failed to delete configuration")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
