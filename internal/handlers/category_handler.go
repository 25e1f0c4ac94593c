package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"revenueBack/internal/models"
	"revenueBack/internal/services"
)

type CategoryHandler struct {
	Service *services.CategoryService
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.GetAllCategories(r.Context())
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	category, err := h.Service.GetCategoryByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			errorJSON(w, http.StatusNotFound, "Category not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch category")
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var category models.RevenueCategory
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := category.Validate(); len(details) > 0 {
		validationError(w, details)
		return
	}

	created, err := h.Service.CreateCategory(r.Context(), category)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Failed to create category")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	var updates models.RevenueCategoryUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := updates.Validate(); len(details) > 0 {
		validationError(w, details)
		return
	}

	updated, err := h.Service.UpdateCategory(r.Context(), id, updates)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			errorJSON(w, http.StatusNotFound, "Category not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Failed to update category")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if err := h.Service.DeleteCategory(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			errorJSON(w, http.StatusNotFound, "Category not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
