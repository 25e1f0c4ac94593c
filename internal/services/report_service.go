package services

import (
	"context"
	"math/rand"
	"strings"

	"github.com/shopspring/decimal"

	"revenueBack/internal/models"
	"revenueBack/internal/storage"
)

type ReportService struct {
	Store storage.Storage
}

type DashboardStats struct {
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	TotalInvoices      int             `json:"totalInvoices"`
	SuccessfulPayments int             `json:"successfulPayments"`
	TotalTaxpayers     int             `json:"totalTaxpayers"`
}

type DepartmentRevenue struct {
	Department string `json:"department"`
	Amount     int64  `json:"amount"`
}

type SourceRevenue struct {
	Name       string `json:"name"`
	Value      int64  `json:"value"`
	Percentage int64  `json:"percentage"`
}

type MonthlyTrend struct {
	Month    string `json:"month"`
	Revenue  int64  `json:"revenue"`
	Payments int64  `json:"payments"`
}

type ReportBreakdown struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

type Report struct {
	TotalCollections  int64             `json:"totalCollections"`
	TotalTransactions int               `json:"totalTransactions"`
	SuccessRate       int64             `json:"successRate"`
	Breakdown         []ReportBreakdown `json:"breakdown"`
}

func (s *ReportService) DashboardStats(ctx context.Context) (DashboardStats, error) {
	payments, err := s.Store.GetAllPayments(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	invoices, err := s.Store.GetAllInvoices(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	taxpayers, err := s.Store.GetAllTaxpayers(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	total := decimal.Zero
	successful := 0
	for _, p := range payments {
		if p.Status == models.PaymentStatusSuccessful {
			total = total.Add(p.Amount)
			successful++
		}
	}

	return DashboardStats{
		TotalRevenue:       total,
		TotalInvoices:      len(invoices),
		SuccessfulPayments: successful,
		TotalTaxpayers:     len(taxpayers),
	}, nil
}

// successfulByInvoice indexes the first successful payment per invoice.
func successfulByInvoice(payments []models.Payment) map[string]models.Payment {
	byInvoice := make(map[string]models.Payment)
	for _, p := range payments {
		if p.Status != models.PaymentStatusSuccessful {
			continue
		}
		if _, ok := byInvoice[p.InvoiceID]; !ok {
			byInvoice[p.InvoiceID] = p
		}
	}
	return byInvoice
}

func (s *ReportService) RevenueByDepartment(ctx context.Context) ([]DepartmentRevenue, error) {
	categories, invoices, payments, err := s.loadJoinSet(ctx)
	if err != nil {
		return nil, err
	}

	categoryByID := make(map[string]models.RevenueCategory, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = c
	}
	paid := successfulByInvoice(payments)

	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)
	for _, invoice := range invoices {
		payment, ok := paid[invoice.ID]
		if !ok {
			continue
		}
		category, ok := categoryByID[invoice.CategoryID]
		if !ok {
			continue
		}
		dept := category.Department
		if _, seen := totals[dept]; !seen {
			order = append(order, dept)
		}
		totals[dept] = totals[dept].Add(payment.Amount)
	}

	data := make([]DepartmentRevenue, 0, len(order))
	for _, dept := range order {
		// The chart labels only fit the first word of the department.
		data = append(data, DepartmentRevenue{
			Department: strings.SplitN(dept, " ", 2)[0],
			Amount:     totals[dept].Round(0).IntPart(),
		})
	}
	return data, nil
}

func (s *ReportService) RevenueBySource(ctx context.Context) ([]SourceRevenue, error) {
	categories, invoices, payments, err := s.loadJoinSet(ctx)
	if err != nil {
		return nil, err
	}

	categoryByID := make(map[string]models.RevenueCategory, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = c
	}
	paid := successfulByInvoice(payments)

	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)
	grand := decimal.Zero
	for _, invoice := range invoices {
		payment, ok := paid[invoice.ID]
		if !ok {
			continue
		}
		category, ok := categoryByID[invoice.CategoryID]
		if !ok {
			continue
		}
		if _, seen := totals[category.Name]; !seen {
			order = append(order, category.Name)
		}
		totals[category.Name] = totals[category.Name].Add(payment.Amount)
		grand = grand.Add(payment.Amount)
	}

	if len(order) > 5 {
		order = order[:5]
	}
	data := make([]SourceRevenue, 0, len(order))
	hundred := decimal.NewFromInt(100)
	for _, name := range order {
		value := totals[name]
		percentage := int64(0)
		if !grand.IsZero() {
			percentage = value.Mul(hundred).Div(grand).Round(0).IntPart()
		}
		data = append(data, SourceRevenue{
			Name:       name,
			Value:      value.Round(0).IntPart(),
			Percentage: percentage,
		})
	}
	return data, nil
}

// MonthlyTrends fabricates a six-month series; there is no historical
// rollup table to draw from yet.
func (s *ReportService) MonthlyTrends(ctx context.Context) ([]MonthlyTrend, error) {
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}
	data := make([]MonthlyTrend, 0, len(months))
	for i, month := range months {
		data = append(data, MonthlyTrend{
			Month:    month,
			Revenue:  int64(150000 + rand.Intn(100000) + i*20000),
			Payments: int64(25 + rand.Intn(15) + i*3),
		})
	}
	return data, nil
}

// GenerateReport aggregates collections, optionally filtered by
// department ("all" passes everything through).
func (s *ReportService) GenerateReport(ctx context.Context, department string) (Report, error) {
	categories, invoices, payments, err := s.loadJoinSet(ctx)
	if err != nil {
		return Report{}, err
	}

	totalCollections := decimal.Zero
	successful := 0
	for _, p := range payments {
		if p.Status == models.PaymentStatusSuccessful {
			totalCollections = totalCollections.Add(p.Amount)
			successful++
		}
	}
	successRate := int64(0)
	if len(payments) > 0 {
		successRate = decimal.NewFromInt(int64(successful)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(len(payments)))).
			Round(0).IntPart()
	}

	categoryByID := make(map[string]models.RevenueCategory, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = c
	}
	paid := successfulByInvoice(payments)

	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)
	for _, invoice := range invoices {
		payment, ok := paid[invoice.ID]
		if !ok {
			continue
		}
		category, ok := categoryByID[invoice.CategoryID]
		if !ok {
			continue
		}
		if department != "all" && department != strings.ToLower(category.Department) {
			continue
		}
		if _, seen := totals[category.Name]; !seen {
			order = append(order, category.Name)
		}
		totals[category.Name] = totals[category.Name].Add(payment.Amount)
	}

	if len(order) > 10 {
		order = order[:10]
	}
	breakdown := make([]ReportBreakdown, 0, len(order))
	for _, name := range order {
		breakdown = append(breakdown, ReportBreakdown{Category: name, Amount: totals[name]})
	}

	return Report{
		TotalCollections:  totalCollections.Round(0).IntPart(),
		TotalTransactions: len(payments),
		SuccessRate:       successRate,
		Breakdown:         breakdown,
	}, nil
}

func (s *ReportService) loadJoinSet(ctx context.Context) ([]models.RevenueCategory, []models.Invoice, []models.Payment, error) {
	categories, err := s.Store.GetAllRevenueCategories(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	invoices, err := s.Store.GetAllInvoices(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	payments, err := s.Store.GetAllPayments(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return categories, invoices, payments, nil
}
