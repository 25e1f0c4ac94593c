package handlers

import (
	"net/http"

	"revenueBack/internal/services"
)

type ReportHandler struct {
	Service *services.ReportService
}

func (h *ReportHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.DashboardStats(r.Context())
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch dashboard stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *ReportHandler) GetRevenueByDepartment(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.RevenueByDepartment(r.Context())
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch revenue by department")
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *ReportHandler) GetRevenueBySource(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.RevenueBySource(r.Context())
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch revenue by source")
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *ReportHandler) GetMonthlyTrends(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.MonthlyTrends(r.Context())
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Failed to fetch monthly trends")
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	department := r.URL.Query().Get("department")
	if department == "" {
		department = "all"
	}

	report, err := h.Service.GenerateReport(r.Context(), department)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Failed to generate report")
		return
	}
	writeJSON(w, http.StatusOK, report)
}
