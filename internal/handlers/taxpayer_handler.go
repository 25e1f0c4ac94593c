package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"revenueBack/internal/models"
	"revenueBack/internal/services"
)

type TaxpayerHandler struct {
	Service *services.TaxpayerService
}

func (h *TaxpayerHandler) GetTaxpayers(w http.ResponseWriter, r *http.Request) {
	taxpayers, err := h.Service.GetAllTaxpayers(r.Context())
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch taxpayers")
		return
	}
	writeJSON(w, http.StatusOK, taxpayers)
}

func (h *TaxpayerHandler) GetTaxpayerByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	taxpayer, err := h.Service.GetTaxpayerByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrTaxpayerNotFound) {
			errorJSON(w, http.StatusNotFound, "Taxpayer not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch taxpayer")
		return
	}
	writeJSON(w, http.StatusOK, taxpayer)
}

func (h *TaxpayerHandler) CreateTaxpayer(w http.ResponseWriter, r *http.Request) {
	var taxpayer models.Taxpayer
	if err := json.NewDecoder(r.Body).Decode(&taxpayer); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := taxpayer.Validate(); len(details) > 0 {
		validationError(w, details)
		return
	}

	created, err := h.Service.CreateTaxpayer(r.Context(), taxpayer)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Failed to create taxpayer")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *TaxpayerHandler) UpdateTaxpayer(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	var updates models.TaxpayerUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := updates.Validate(); len(details) > 0 {
		validationError(w, details)
		return
	}

	updated, err := h.Service.UpdateTaxpayer(r.Context(), id, updates)
	if err != nil {
		if errors.Is(err, models.ErrTaxpayerNotFound) {
			errorJSON(w, http.StatusNotFound, "Taxpayer not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Failed to update taxpayer")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *TaxpayerHandler) DeleteTaxpayer(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if err := h.Service.DeleteTaxpayer(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrTaxpayerNotFound) {
			errorJSON(w, http.StatusNotFound, "Taxpayer not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Failed to delete taxpayer")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
