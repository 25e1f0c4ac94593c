package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"revenueBack/internal/models"
	"revenueBack/internal/services"
)

type PaymentHandler struct {
	Service       *services.PaymentService
	ConfigService *services.PaymentConfigService
}

// ProcessPayment runs the public pay-now flow.
func (h *PaymentHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req models.ProcessPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := req.Validate(); len(details) > 0 {
		validationError(w, details)
		return
	}

	resp, err := h.Service.ProcessPayment(r.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			errorJSON(w, http.StatusNotFound, "Revenue category not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Payment processing failed")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// VerifyPayment looks up a payment by reference code. A miss is a 200
// with found:false, not a 404.
func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := req.Validate(); len(details) > 0 {
		validationError(w, details)
		return
	}

	result, err := h.Service.VerifyPayment(r.Context(), req.RRR)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Verification failed")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GetPaymentMethods resolves the enabled methods for a category; with
// no categoryId it returns the global defaults.
func (h *PaymentHandler) GetPaymentMethods(w http.ResponseWriter, r *http.Request) {
	categoryID := r.URL.Query().Get("categoryId")
	methods, err := h.ConfigService.EnabledPaymentMethods(r.Context(), categoryID)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch payment methods")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"methods": methods})
}

func (h *PaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Service.GetEnrichedPayments(r.Context())
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch payments")
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

func (h *PaymentHandler) GetPaymentByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	payment, err := h.Service.GetPaymentByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrPaymentNotFound) {
			errorJSON(w, http.StatusNotFound, "Payment not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch payment")
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	var updates models.PaymentUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := updates.Validate(); len(details) > 0 {
		validationError(w, details)
		return
	}

	updated, err := h.Service.UpdatePayment(r.Context(), id, updates)
	if err != nil {
		if errors.Is(err, models.ErrPaymentNotFound) {
			errorJSON(w, http.StatusNotFound, "Payment not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Failed to update payment")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *PaymentHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if err := h.Service.DeletePayment(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrPaymentNotFound) {
			errorJSON(w, http.StatusNotFound, "Payment not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Failed to delete payment")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
