package storage

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"revenueBack/internal/models"
)

// MemoryStore keeps every collection in process memory. It is the
// default backend when no database URL is configured and starts out
// seeded with the demo dataset. A single RWMutex guards all maps; the
// request volume this backend exists for does not justify finer locking.
type MemoryStore struct {
	mu sync.RWMutex

	users         map[string]models.User
	taxpayers     map[string]models.Taxpayer
	categories    map[string]models.RevenueCategory
	invoices      map[string]models.Invoice
	payments      map[string]models.Payment
	registrations map[string]models.BusinessRegistration
	configs       map[string]models.PaymentConfiguration

	taxpayerSeq atomic.Int64
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		users:         make(map[string]models.User),
		taxpayers:     make(map[string]models.Taxpayer),
		categories:    make(map[string]models.RevenueCategory),
		invoices:      make(map[string]models.Invoice),
		payments:      make(map[string]models.Payment),
		registrations: make(map[string]models.BusinessRegistration),
		configs:       make(map[string]models.PaymentConfiguration),
	}
	s.seed()
	return s
}

func (s *MemoryStore) seed() {
	data := DemoData()
	for _, u := range data.Users {
		s.users[u.ID] = u
	}
	for _, t := range data.Taxpayers {
		s.taxpayers[t.ID] = t
	}
	for _, c := range data.Categories {
		s.categories[c.ID] = c
	}
	for _, i := range data.Invoices {
		s.invoices[i.ID] = i
	}
	for _, p := range data.Payments {
		s.payments[p.ID] = p
	}
	for _, r := range data.Registrations {
		s.registrations[r.ID] = r
	}
	for _, c := range data.Configurations {
		s.configs[c.ID] = c
	}
	s.taxpayerSeq.Store(int64(len(s.taxpayers)))
}

// Users

func (s *MemoryStore) GetUser(ctx context.Context, id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return u, nil
}

func (s *MemoryStore) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, models.ErrUserNotFound
}

func (s *MemoryStore) GetAllUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	return users, nil
}

func (s *MemoryStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return models.User{}, models.ErrDuplicateUsername
		}
	}
	user.ID = uuid.NewString()
	s.users[user.ID] = user
	return user, nil
}

func (s *MemoryStore) UpdateUser(ctx context.Context, id string, updates models.UserUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	if updates.Username != nil {
		u.Username = *updates.Username
	}
	if updates.Password != nil {
		u.Password = *updates.Password
	}
	if updates.FullName != nil {
		u.FullName = *updates.FullName
	}
	if updates.Email != nil {
		u.Email = *updates.Email
	}
	if updates.Phone != nil {
		u.Phone = *updates.Phone
	}
	if updates.Role != nil {
		u.Role = *updates.Role
	}
	s.users[id] = u
	return u, nil
}

func (s *MemoryStore) DeleteUser(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return false, nil
	}
	delete(s.users, id)
	return true, nil
}

// Taxpayers

func (s *MemoryStore) GetTaxpayer(ctx context.Context, id string) (models.Taxpayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.taxpayers[id]
	if !ok {
		return models.Taxpayer{}, models.ErrTaxpayerNotFound
	}
	return t, nil
}

func (s *MemoryStore) GetTaxpayerByTaxpayerID(ctx context.Context, taxpayerID string) (models.Taxpayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.taxpayers {
		if t.TaxpayerID == taxpayerID {
			return t, nil
		}
	}
	return models.Taxpayer{}, models.ErrTaxpayerNotFound
}

func (s *MemoryStore) GetAllTaxpayers(ctx context.Context) ([]models.Taxpayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	taxpayers := make([]models.Taxpayer, 0, len(s.taxpayers))
	for _, t := range s.taxpayers {
		taxpayers = append(taxpayers, t)
	}
	return taxpayers, nil
}

func (s *MemoryStore) CreateTaxpayer(ctx context.Context, taxpayer models.Taxpayer) (models.Taxpayer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	taxpayer.ID = uuid.NewString()
	taxpayer.CreatedAt = time.Now()
	s.taxpayers[taxpayer.ID] = taxpayer
	return taxpayer, nil
}

func (s *MemoryStore) UpdateTaxpayer(ctx context.Context, id string, updates models.TaxpayerUpdate) (models.Taxpayer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.taxpayers[id]
	if !ok {
		return models.Taxpayer{}, models.ErrTaxpayerNotFound
	}
	if updates.TaxpayerID != nil {
		t.TaxpayerID = *updates.TaxpayerID
	}
	if updates.Type != nil {
		t.Type = *updates.Type
	}
	if updates.FullName != nil {
		t.FullName = *updates.FullName
	}
	if updates.Email != nil {
		t.Email = *updates.Email
	}
	if updates.Phone != nil {
		t.Phone = *updates.Phone
	}
	if updates.Address != nil {
		t.Address = *updates.Address
	}
	if updates.BusinessName != nil {
		t.BusinessName = updates.BusinessName
	}
	if updates.BusinessType != nil {
		t.BusinessType = updates.BusinessType
	}
	if updates.RegistrationNumber != nil {
		t.RegistrationNumber = updates.RegistrationNumber
	}
	s.taxpayers[id] = t
	return t, nil
}

func (s *MemoryStore) DeleteTaxpayer(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.taxpayers[id]; !ok {
		return false, nil
	}
	delete(s.taxpayers, id)
	return true, nil
}

func (s *MemoryStore) NextTaxpayerSequence(ctx context.Context) (int64, error) {
	return s.taxpayerSeq.Add(1), nil
}

// Revenue categories

func (s *MemoryStore) GetRevenueCategory(ctx context.Context, id string) (models.RevenueCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	if !ok {
		return models.RevenueCategory{}, models.ErrCategoryNotFound
	}
	return c, nil
}

func (s *MemoryStore) GetAllRevenueCategories(ctx context.Context) ([]models.RevenueCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	categories := make([]models.RevenueCategory, 0, len(s.categories))
	for _, c := range s.categories {
		categories = append(categories, c)
	}
	return categories, nil
}

func (s *MemoryStore) CreateRevenueCategory(ctx context.Context, category models.RevenueCategory) (models.RevenueCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	category.ID = uuid.NewString()
	s.categories[category.ID] = category
	return category, nil
}

func (s *MemoryStore) UpdateRevenueCategory(ctx context.Context, id string, updates models.RevenueCategoryUpdate) (models.RevenueCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[id]
	if !ok {
		return models.RevenueCategory{}, models.ErrCategoryNotFound
	}
	if updates.Name != nil {
		c.Name = *updates.Name
	}
	if updates.Description != nil {
		c.Description = *updates.Description
	}
	if updates.Department != nil {
		c.Department = *updates.Department
	}
	if updates.Amount != nil {
		c.Amount = *updates.Amount
	}
	if updates.IsActive != nil {
		c.IsActive = *updates.IsActive
	}
	s.categories[id] = c
	return c, nil
}

func (s *MemoryStore) DeleteRevenueCategory(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[id]; !ok {
		return false, nil
	}
	delete(s.categories, id)
	return true, nil
}

// Invoices

func (s *MemoryStore) GetInvoice(ctx context.Context, id string) (models.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.invoices[id]
	if !ok {
		return models.Invoice{}, models.ErrInvoiceNotFound
	}
	return i, nil
}

func (s *MemoryStore) GetInvoiceByNumber(ctx context.Context, invoiceNumber string) (models.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, i := range s.invoices {
		if i.InvoiceNumber == invoiceNumber {
			return i, nil
		}
	}
	return models.Invoice{}, models.ErrInvoiceNotFound
}

func (s *MemoryStore) GetAllInvoices(ctx context.Context) ([]models.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	invoices := make([]models.Invoice, 0, len(s.invoices))
	for _, i := range s.invoices {
		invoices = append(invoices, i)
	}
	return invoices, nil
}

func (s *MemoryStore) CreateInvoice(ctx context.Context, invoice models.Invoice) (models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	invoice.ID = uuid.NewString()
	invoice.CreatedAt = time.Now()
	s.invoices[invoice.ID] = invoice
	return invoice, nil
}

func (s *MemoryStore) UpdateInvoiceStatus(ctx context.Context, id string, status string) (models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.invoices[id]
	if !ok {
		return models.Invoice{}, models.ErrInvoiceNotFound
	}
	i.Status = status
	s.invoices[id] = i
	return i, nil
}

func (s *MemoryStore) DeleteInvoice(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.invoices[id]; !ok {
		return false, nil
	}
	delete(s.invoices, id)
	return true, nil
}

// Payments

func (s *MemoryStore) GetPayment(ctx context.Context, id string) (models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.payments[id]
	if !ok {
		return models.Payment{}, models.ErrPaymentNotFound
	}
	return p, nil
}

func (s *MemoryStore) GetPaymentByRRR(ctx context.Context, rrr string) (models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.payments {
		if p.RRR == rrr {
			return p, nil
		}
	}
	return models.Payment{}, models.ErrPaymentNotFound
}

func (s *MemoryStore) GetAllPayments(ctx context.Context) ([]models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payments := make([]models.Payment, 0, len(s.payments))
	for _, p := range s.payments {
		payments = append(payments, p)
	}
	return payments, nil
}

func (s *MemoryStore) CreatePayment(ctx context.Context, payment models.Payment) (models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payment.ID = uuid.NewString()
	payment.TransactionDate = time.Now()
	s.payments[payment.ID] = payment
	return payment, nil
}

func (s *MemoryStore) UpdatePayment(ctx context.Context, id string, updates models.PaymentUpdate) (models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[id]
	if !ok {
		return models.Payment{}, models.ErrPaymentNotFound
	}
	if updates.RRR != nil {
		p.RRR = *updates.RRR
	}
	if updates.InvoiceID != nil {
		p.InvoiceID = *updates.InvoiceID
	}
	if updates.TaxpayerID != nil {
		p.TaxpayerID = *updates.TaxpayerID
	}
	if updates.Amount != nil {
		p.Amount = *updates.Amount
	}
	if updates.PaymentMethod != nil {
		p.PaymentMethod = *updates.PaymentMethod
	}
	if updates.Status != nil {
		p.Status = *updates.Status
	}
	if updates.PayerName != nil {
		p.PayerName = *updates.PayerName
	}
	if updates.PayerEmail != nil {
		p.PayerEmail = *updates.PayerEmail
	}
	if updates.PayerPhone != nil {
		p.PayerPhone = *updates.PayerPhone
	}
	s.payments[id] = p
	return p, nil
}

func (s *MemoryStore) DeletePayment(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.payments[id]; !ok {
		return false, nil
	}
	delete(s.payments, id)
	return true, nil
}

// Business registrations

func (s *MemoryStore) GetBusinessRegistration(ctx context.Context, id string) (models.BusinessRegistration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.registrations[id]
	if !ok {
		return models.BusinessRegistration{}, models.ErrRegistrationNotFound
	}
	return r, nil
}

func (s *MemoryStore) GetBusinessRegistrationByNumber(ctx context.Context, registrationNumber string) (models.BusinessRegistration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.registrations {
		if r.RegistrationNumber == registrationNumber {
			return r, nil
		}
	}
	return models.BusinessRegistration{}, models.ErrRegistrationNotFound
}

func (s *MemoryStore) GetAllBusinessRegistrations(ctx context.Context) ([]models.BusinessRegistration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	registrations := make([]models.BusinessRegistration, 0, len(s.registrations))
	for _, r := range s.registrations {
		registrations = append(registrations, r)
	}
	return registrations, nil
}

func (s *MemoryStore) CreateBusinessRegistration(ctx context.Context, registration models.BusinessRegistration) (models.BusinessRegistration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	registration.ID = uuid.NewString()
	registration.SubmittedAt = time.Now()
	if registration.Status == "" {
		registration.Status = models.RegistrationStatusPending
	}
	s.registrations[registration.ID] = registration
	return registration, nil
}

func (s *MemoryStore) UpdateBusinessRegistrationStatus(ctx context.Context, id string, status string, rejectionReason, reviewedBy *string) (models.BusinessRegistration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.registrations[id]
	if !ok {
		return models.BusinessRegistration{}, models.ErrRegistrationNotFound
	}
	r.Status = status
	if rejectionReason != nil {
		r.RejectionReason = rejectionReason
	}
	if reviewedBy != nil {
		r.ReviewedBy = reviewedBy
	}
	now := time.Now()
	r.ReviewedAt = &now
	s.registrations[id] = r
	return r, nil
}

func (s *MemoryStore) DeleteBusinessRegistration(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.registrations[id]; !ok {
		return false, nil
	}
	delete(s.registrations, id)
	return true, nil
}

// Payment configurations

func (s *MemoryStore) GetPaymentConfiguration(ctx context.Context, id string) (models.PaymentConfiguration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.configs[id]
	if !ok {
		return models.PaymentConfiguration{}, models.ErrConfigurationNotFound
	}
	return c, nil
}

func (s *MemoryStore) GetAllPaymentConfigurations(ctx context.Context) ([]models.PaymentConfiguration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	configs := make([]models.PaymentConfiguration, 0, len(s.configs))
	for _, c := range s.configs {
		configs = append(configs, c)
	}
	return configs, nil
}

func (s *MemoryStore) GetPaymentConfigurationsByCategory(ctx context.Context, categoryID string) ([]models.PaymentConfiguration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	configs := make([]models.PaymentConfiguration, 0)
	for _, c := range s.configs {
		if categoryID == "" {
			if c.CategoryID == nil || *c.CategoryID == "" {
				configs = append(configs, c)
			}
		} else if c.CategoryID != nil && *c.CategoryID == categoryID {
			configs = append(configs, c)
		}
	}
	return configs, nil
}

func (s *MemoryStore) CreatePaymentConfiguration(ctx context.Context, config models.PaymentConfiguration) (models.PaymentConfiguration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	config.ID = uuid.NewString()
	config.UpdatedAt = time.Now()
	s.configs[config.ID] = config
	return config, nil
}

func (s *MemoryStore) UpdatePaymentConfiguration(ctx context.Context, id string, updates models.PaymentConfigurationUpdate) (models.PaymentConfiguration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.configs[id]
	if !ok {
		return models.PaymentConfiguration{}, models.ErrConfigurationNotFound
	}
	if updates.CategoryID != nil {
		c.CategoryID = updates.CategoryID
	}
	if updates.PaymentMethod != nil {
		c.PaymentMethod = *updates.PaymentMethod
	}
	if updates.IsEnabled != nil {
		c.IsEnabled = *updates.IsEnabled
	}
	if updates.UpdatedBy != nil {
		c.UpdatedBy = updates.UpdatedBy
	}
	c.UpdatedAt = time.Now()
	s.configs[id] = c
	return c, nil
}

func (s *MemoryStore) DeletePaymentConfiguration(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.configs[id]; !ok {
		return false, nil
	}
	delete(s.configs, id)
	return true, nil
}
