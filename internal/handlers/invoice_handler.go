package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"revenueBack/internal/models"
	"revenueBack/internal/services"
)

type InvoiceHandler struct {
	Service *services.InvoiceService
}

func (h *InvoiceHandler) GetInvoices(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.Service.GetEnrichedInvoices(r.Context())
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch invoices")
		return
	}
	writeJSON(w, http.StatusOK, invoices)
}

func (h *InvoiceHandler) GetInvoiceByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	invoice, err := h.Service.GetInvoiceByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrInvoiceNotFound) {
			errorJSON(w, http.StatusNotFound, "Invoice not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch invoice")
		return
	}
	writeJSON(w, http.StatusOK, invoice)
}

func (h *InvoiceHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var invoice models.Invoice
	if err := json.NewDecoder(r.Body).Decode(&invoice); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := invoice.Validate(); len(details) > 0 {
		validationError(w, details)
		return
	}

	created, err := h.Service.CreateInvoice(r.Context(), invoice)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Failed to create invoice")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *InvoiceHandler) UpdateInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	var req models.UpdateInvoiceStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := req.Validate(); len(details) > 0 {
		validationError(w, details)
		return
	}

	updated, err := h.Service.UpdateInvoiceStatus(r.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, models.ErrInvoiceNotFound) {
			errorJSON(w, http.StatusNotFound, "Invoice not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Failed to update invoice")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *InvoiceHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if err := h.Service.DeleteInvoice(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrInvoiceNotFound) {
			errorJSON(w, http.StatusNotFound, "Invoice not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Failed to delete invoice")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
