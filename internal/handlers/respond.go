package handlers

import (
	"encoding/json"
	"net/http"

	"revenueBack/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorJSON(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func validationError(w http.ResponseWriter, details []models.FieldError) {
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":   "Validation failed",
		"details": details,
	})
}
