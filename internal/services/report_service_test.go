package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"revenueBack/internal/storage"
)

func TestDashboardStats(t *testing.T) {
	svc := &ReportService{Store: storage.NewMemoryStore()}

	stats, err := svc.DashboardStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stats.TotalRevenue.Equal(decimal.RequireFromString("60000.00")) {
		t.Fatalf("expected total revenue 60000.00, got %s", stats.TotalRevenue)
	}
	if stats.TotalInvoices != 5 {
		t.Fatalf("expected 5 invoices, got %d", stats.TotalInvoices)
	}
	if stats.SuccessfulPayments != 3 {
		t.Fatalf("expected 3 successful payments, got %d", stats.SuccessfulPayments)
	}
	if stats.TotalTaxpayers != 5 {
		t.Fatalf("expected 5 taxpayers, got %d", stats.TotalTaxpayers)
	}
}

func TestRevenueByDepartment(t *testing.T) {
	svc := &ReportService{Store: storage.NewMemoryStore()}

	data, err := svc.RevenueByDepartment(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	totals := make(map[string]int64, len(data))
	for _, d := range data {
		totals[d.Department] = d.Amount
	}
	// Labels carry only the first word of the department name.
	if totals["Trade"] != 40000 {
		t.Fatalf("expected Trade 40000, got %d", totals["Trade"])
	}
	if totals["Transport"] != 20000 {
		t.Fatalf("expected Transport 20000, got %d", totals["Transport"])
	}
	if len(totals) != 2 {
		t.Fatalf("expected 2 departments with collections, got %v", totals)
	}
}

func TestRevenueBySource(t *testing.T) {
	svc := &ReportService{Store: storage.NewMemoryStore()}

	data, err := svc.RevenueBySource(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) != 3 {
		t.Fatalf("expected 3 sources, got %d", len(data))
	}

	totals := make(map[string]SourceRevenue, len(data))
	sum := int64(0)
	for _, d := range data {
		totals[d.Name] = d
		sum += d.Value
	}
	if sum != 60000 {
		t.Fatalf("expected values to sum to 60000, got %d", sum)
	}
	if got := totals["Market Stall Permit"]; got.Value != 15000 || got.Percentage != 25 {
		t.Fatalf("expected Market Stall Permit 15000 at 25%%, got %+v", got)
	}
	if got := totals["Business Registration Fee"]; got.Value != 25000 {
		t.Fatalf("expected Business Registration Fee 25000, got %+v", got)
	}
}

func TestMonthlyTrends(t *testing.T) {
	svc := &ReportService{Store: storage.NewMemoryStore()}

	data, err := svc.MonthlyTrends(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) != 6 {
		t.Fatalf("expected a 6-month series, got %d", len(data))
	}
	if data[0].Month != "Jan" || data[5].Month != "Jun" {
		t.Fatalf("unexpected months %s..%s", data[0].Month, data[5].Month)
	}
	for _, d := range data {
		if d.Revenue <= 0 || d.Payments <= 0 {
			t.Fatalf("expected positive figures, got %+v", d)
		}
	}
}

func TestGenerateReport(t *testing.T) {
	ctx := context.Background()

	t.Run("all departments", func(t *testing.T) {
		svc := &ReportService{Store: storage.NewMemoryStore()}
		report, err := svc.GenerateReport(ctx, "all")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.TotalCollections != 60000 {
			t.Fatalf("expected 60000, got %d", report.TotalCollections)
		}
		if report.TotalTransactions != 3 {
			t.Fatalf("expected 3 transactions, got %d", report.TotalTransactions)
		}
		if report.SuccessRate != 100 {
			t.Fatalf("expected 100%% success rate, got %d", report.SuccessRate)
		}
		if len(report.Breakdown) != 3 {
			t.Fatalf("expected 3 breakdown rows, got %d", len(report.Breakdown))
		}
	})

	t.Run("filtered by department", func(t *testing.T) {
		svc := &ReportService{Store: storage.NewMemoryStore()}
		report, err := svc.GenerateReport(ctx, "trade & commerce")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(report.Breakdown) != 2 {
			t.Fatalf("expected 2 breakdown rows, got %d", len(report.Breakdown))
		}
	})

	t.Run("department without collections", func(t *testing.T) {
		svc := &ReportService{Store: storage.NewMemoryStore()}
		report, err := svc.GenerateReport(ctx, "health services")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(report.Breakdown) != 0 {
			t.Fatalf("expected empty breakdown, got %d rows", len(report.Breakdown))
		}
	})
}
