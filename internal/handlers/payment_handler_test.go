package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"revenueBack/internal/services"
	"revenueBack/internal/storage"
)

func newPaymentHandler() *PaymentHandler {
	store := storage.NewMemoryStore()
	return &PaymentHandler{
		Service:       &services.PaymentService{Store: store, Gateway: &services.MockGateway{}},
		ConfigService: &services.PaymentConfigService{Store: store},
	}
}

func TestProcessPaymentHandler(t *testing.T) {
	t.Run("processes a valid request", func(t *testing.T) {
		h := newPaymentHandler()
		body := `{"categoryId":"rc1","amount":"15000.00","paymentMethod":"card","payerName":"Test Payer","payerEmail":"payer@email.com","payerPhone":"+234 800 000 0000"}`
		req := httptest.NewRequest(http.MethodPost, "/api/payments/process", strings.NewReader(body))
		rr := httptest.NewRecorder()

		h.ProcessPayment(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
		}
		var resp struct {
			RRR string `json:"rrr"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(resp.RRR) != 12 {
			t.Fatalf("expected 12-digit reference, got %q", resp.RRR)
		}
	})

	t.Run("unknown category returns 404 with error body", func(t *testing.T) {
		h := newPaymentHandler()
		body := `{"categoryId":"missing","amount":"100.00","paymentMethod":"card","payerName":"Test","payerEmail":"t@e.com","payerPhone":"1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/payments/process", strings.NewReader(body))
		rr := httptest.NewRecorder()

		h.ProcessPayment(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Fatalf("expected %d, got %d", http.StatusNotFound, rr.Code)
		}
		var resp map[string]string
		json.NewDecoder(rr.Body).Decode(&resp)
		if resp["error"] != "Revenue category not found" {
			t.Fatalf("unexpected error body %v", resp)
		}
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		h := newPaymentHandler()
		req := httptest.NewRequest(http.MethodPost, "/api/payments/process", strings.NewReader(`{}`))
		rr := httptest.NewRecorder()

		h.ProcessPayment(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected %d, got %d", http.StatusBadRequest, rr.Code)
		}
		var resp struct {
			Error   string `json:"error"`
			Details []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"details"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Error != "Validation failed" || len(resp.Details) == 0 {
			t.Fatalf("unexpected validation body %+v", resp)
		}
	})
}

func TestVerifyPaymentHandler(t *testing.T) {
	t.Run("known reference", func(t *testing.T) {
		h := newPaymentHandler()
		req := httptest.NewRequest(http.MethodPost, "/api/payments/verify", strings.NewReader(`{"rrr":"240200000001"}`))
		rr := httptest.NewRecorder()

		h.VerifyPayment(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected %d, got %d", http.StatusOK, rr.Code)
		}
		var resp struct {
			Found         bool   `json:"found"`
			InvoiceNumber string `json:"invoiceNumber"`
		}
		json.NewDecoder(rr.Body).Decode(&resp)
		if !resp.Found || resp.InvoiceNumber != "INV-2024-0001" {
			t.Fatalf("unexpected response %+v", resp)
		}
	})

	t.Run("unknown reference is a 200 miss", func(t *testing.T) {
		h := newPaymentHandler()
		req := httptest.NewRequest(http.MethodPost, "/api/payments/verify", strings.NewReader(`{"rrr":"999999999999"}`))
		rr := httptest.NewRecorder()

		h.VerifyPayment(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected %d, got %d", http.StatusOK, rr.Code)
		}
		var resp map[string]interface{}
		json.NewDecoder(rr.Body).Decode(&resp)
		if resp["found"] != false {
			t.Fatalf("expected found:false, got %v", resp)
		}
	})
}

func TestGetPaymentMethodsHandler(t *testing.T) {
	h := newPaymentHandler()
	req := httptest.NewRequest(http.MethodGet, "/api/payment-methods?categoryId=rc1", nil)
	rr := httptest.NewRecorder()

	h.GetPaymentMethods(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rr.Code)
	}
	var resp struct {
		Methods []string `json:"methods"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Methods) != 3 {
		t.Fatalf("expected 3 enabled methods from the global defaults, got %v", resp.Methods)
	}
}
