package storage

import (
	"time"

	"github.com/shopspring/decimal"

	"revenueBack/internal/models"
)

// Dataset is the demo fixture loaded into the memory store on startup
// and into Postgres when the server runs with -seed.
type Dataset struct {
	Users          []models.User
	Taxpayers      []models.Taxpayer
	Categories     []models.RevenueCategory
	Invoices       []models.Invoice
	Payments       []models.Payment
	Registrations  []models.BusinessRegistration
	Configurations []models.PaymentConfiguration
}

func strPtr(s string) *string { return &s }

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func datetime(value string) time.Time {
	t, _ := time.Parse("2006-01-02T15:04:05", value)
	return t
}

func amount(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// DemoData returns the demo dataset: 4 users covering every role,
// 5 taxpayers, 8 revenue categories, 5 invoices, 3 payments,
// 3 business registrations and the 4 global payment configurations.
// Demo accounts use a fixed password and must not survive into a real
// deployment.
func DemoData() Dataset {
	return Dataset{
		Users: []models.User{
			{ID: "1", Username: "citizen1", Password: "password123", FullName: "John Okafor", Email: "john.okafor@email.com", Phone: "+234 803 123 4567", Role: models.RoleCitizen},
			{ID: "2", Username: "admin1", Password: "password123", FullName: "Ada Nwosu", Email: "ada.nwosu@abuaodual.gov.ng", Phone: "+234 805 987 6543", Role: models.RoleAdmin},
			{ID: "3", Username: "finance1", Password: "password123", FullName: "Emeka Eze", Email: "emeka.eze@abuaodual.gov.ng", Phone: "+234 807 234 5678", Role: models.RoleFinanceOfficer},
			{ID: "4", Username: "auditor1", Password: "password123", FullName: "Ngozi Obi", Email: "ngozi.obi@abuaodual.gov.ng", Phone: "+234 809 876 5432", Role: models.RoleAuditor},
		},
		Taxpayers: []models.Taxpayer{
			{ID: "tp1", TaxpayerID: "ABU-IND-2024-0001", Type: models.TaxpayerIndividual, FullName: "Chidi Nnamdi", Email: "chidi.nnamdi@email.com", Phone: "+234 802 111 2222", Address: "123 Main Street, Abua Town", CreatedAt: date("2024-01-15")},
			{ID: "tp2", TaxpayerID: "ABU-BUS-2024-0001", Type: models.TaxpayerBusiness, FullName: "Blessing Udo", Email: "info@udostores.com", Phone: "+234 803 222 3333", Address: "45 Market Road, Odual", BusinessName: strPtr("Udo General Stores Ltd"), BusinessType: strPtr("Retail Trade"), RegistrationNumber: strPtr("RC-1234567"), CreatedAt: date("2024-01-20")},
			{ID: "tp3", TaxpayerID: "ABU-IND-2024-0002", Type: models.TaxpayerIndividual, FullName: "Amaka Johnson", Email: "amaka.j@email.com", Phone: "+234 805 333 4444", Address: "78 River View Estate, Abua", CreatedAt: date("2024-02-01")},
			{ID: "tp4", TaxpayerID: "ABU-BUS-2024-0002", Type: models.TaxpayerBusiness, FullName: "Olu Williams", Email: "contact@swiftlogistics.ng", Phone: "+234 807 444 5555", Address: "12 Industrial Layout, Odual", BusinessName: strPtr("Swift Logistics Services"), BusinessType: strPtr("Transportation"), RegistrationNumber: strPtr("RC-2345678"), CreatedAt: date("2024-02-10")},
			{ID: "tp5", TaxpayerID: "ABU-BUS-2024-0003", Type: models.TaxpayerBusiness, FullName: "Grace Okon", Email: "grace@okonhospitality.com", Phone: "+234 809 555 6666", Address: "90 Beach Road, Abua", BusinessName: strPtr("Okon Hospitality & Suites"), BusinessType: strPtr("Hospitality"), RegistrationNumber: strPtr("RC-3456789"), CreatedAt: date("2024-02-15")},
		},
		Categories: []models.RevenueCategory{
			{ID: "rc1", Name: "Market Stall Permit", Description: "Annual permit for market stall operation", Department: "Trade & Commerce", Amount: amount("15000.00"), IsActive: 1},
			{ID: "rc2", Name: "Business Registration Fee", Description: "One-time business registration with LGA", Department: "Trade & Commerce", Amount: amount("25000.00"), IsActive: 1},
			{ID: "rc3", Name: "Health Certificate Fee", Description: "Annual health certificate for food vendors", Department: "Health Services", Amount: amount("5000.00"), IsActive: 1},
			{ID: "rc4", Name: "Building Approval Fee", Description: "Fee for building plan approval", Department: "Environment", Amount: amount("50000.00"), IsActive: 1},
			{ID: "rc5", Name: "Vehicle Park Levy", Description: "Annual commercial vehicle parking levy", Department: "Transport & Works", Amount: amount("20000.00"), IsActive: 1},
			{ID: "rc6", Name: "Waste Management Fee", Description: "Monthly waste collection service", Department: "Environment", Amount: amount("3000.00"), IsActive: 1},
			{ID: "rc7", Name: "Land Use Charge", Description: "Annual land use charge for commercial properties", Department: "Agriculture", Amount: amount("35000.00"), IsActive: 1},
			{ID: "rc8", Name: "Signage Permit", Description: "Permit for commercial signage installation", Department: "Environment", Amount: amount("10000.00"), IsActive: 1},
		},
		Invoices: []models.Invoice{
			{ID: "inv1", InvoiceNumber: "INV-2024-0001", TaxpayerID: "tp1", CategoryID: "rc1", Amount: amount("15000.00"), Status: models.InvoiceStatusPaid, DueDate: date("2024-03-01"), CreatedAt: date("2024-02-01"), Description: "Market Stall Permit - Q1 2024"},
			{ID: "inv2", InvoiceNumber: "INV-2024-0002", TaxpayerID: "tp2", CategoryID: "rc2", Amount: amount("25000.00"), Status: models.InvoiceStatusPaid, DueDate: date("2024-03-15"), CreatedAt: date("2024-02-15"), Description: "Business Registration Fee"},
			{ID: "inv3", InvoiceNumber: "INV-2024-0003", TaxpayerID: "tp3", CategoryID: "rc6", Amount: amount("3000.00"), Status: models.InvoiceStatusPending, DueDate: date("2024-04-01"), CreatedAt: date("2024-03-01"), Description: "Waste Management Fee - March 2024"},
			{ID: "inv4", InvoiceNumber: "INV-2024-0004", TaxpayerID: "tp4", CategoryID: "rc5", Amount: amount("20000.00"), Status: models.InvoiceStatusPaid, DueDate: date("2024-03-20"), CreatedAt: date("2024-02-20"), Description: "Vehicle Park Levy - 2024"},
			{ID: "inv5", InvoiceNumber: "INV-2024-0005", TaxpayerID: "tp5", CategoryID: "rc7", Amount: amount("35000.00"), Status: models.InvoiceStatusPending, DueDate: date("2024-04-10"), CreatedAt: date("2024-03-10"), Description: "Land Use Charge - 2024"},
		},
		Payments: []models.Payment{
			{ID: "pay1", RRR: "240200000001", InvoiceID: "inv1", TaxpayerID: "tp1", Amount: amount("15000.00"), PaymentMethod: models.MethodCard, Status: models.PaymentStatusSuccessful, TransactionDate: datetime("2024-02-05T10:30:00"), PayerName: "Chidi Nnamdi", PayerEmail: "chidi.nnamdi@email.com", PayerPhone: "+234 802 111 2222"},
			{ID: "pay2", RRR: "240200000002", InvoiceID: "inv2", TaxpayerID: "tp2", Amount: amount("25000.00"), PaymentMethod: models.MethodBankTransfer, Status: models.PaymentStatusSuccessful, TransactionDate: datetime("2024-02-18T14:15:00"), PayerName: "Blessing Udo", PayerEmail: "info@udostores.com", PayerPhone: "+234 803 222 3333"},
			{ID: "pay3", RRR: "240200000003", InvoiceID: "inv4", TaxpayerID: "tp4", Amount: amount("20000.00"), PaymentMethod: models.MethodCard, Status: models.PaymentStatusSuccessful, TransactionDate: datetime("2024-02-25T16:45:00"), PayerName: "Olu Williams", PayerEmail: "contact@swiftlogistics.ng", PayerPhone: "+234 807 444 5555"},
		},
		Registrations: []models.BusinessRegistration{
			{ID: "br1", BusinessName: "Amadi Ventures", BusinessType: "sole_proprietorship", RegistrationNumber: "BN-2024-1001", TaxID: strPtr("TIN-445566"), Address: "7 Creek Lane", City: "Abua", State: "Rivers", ContactPerson: "Grace Amadi", ContactEmail: "grace.amadi@business.com", ContactPhone: "+234 805 333 4444", Status: models.RegistrationStatusPending, SubmittedAt: date("2024-03-01")},
			{ID: "br2", BusinessName: "Odual Agro Supplies", BusinessType: "partnership", RegistrationNumber: "BN-2024-1002", Address: "22 Farm Settlement Road", City: "Odual", State: "Rivers", ContactPerson: "Tamuno Briggs", ContactEmail: "tamuno@odualagro.ng", ContactPhone: "+234 806 222 1111", Status: models.RegistrationStatusApproved, SubmittedAt: date("2024-02-12"), ReviewedAt: timePtr(date("2024-02-20")), ReviewedBy: strPtr("2")},
			{ID: "br3", BusinessName: "Riverside Prints Ltd", BusinessType: "limited_liability", RegistrationNumber: "BN-2024-1003", Address: "3 Jetty Close", City: "Abua", State: "Rivers", ContactPerson: "Ibim Harry", ContactEmail: "ibim@riversideprints.com", ContactPhone: "+234 809 111 0000", Status: models.RegistrationStatusRejected, RejectionReason: strPtr("Incomplete documentation"), SubmittedAt: date("2024-02-25"), ReviewedAt: timePtr(date("2024-03-05")), ReviewedBy: strPtr("2")},
		},
		Configurations: []models.PaymentConfiguration{
			{ID: "pc1", PaymentMethod: models.MethodCard, IsEnabled: 1, UpdatedAt: date("2024-01-01")},
			{ID: "pc2", PaymentMethod: models.MethodBankTransfer, IsEnabled: 1, UpdatedAt: date("2024-01-01")},
			{ID: "pc3", PaymentMethod: models.MethodUSSD, IsEnabled: 1, UpdatedAt: date("2024-01-01")},
			{ID: "pc4", PaymentMethod: models.MethodMobileMoney, IsEnabled: 0, UpdatedAt: date("2024-01-01")},
		},
	}
}

func timePtr(t time.Time) *time.Time { return &t }
