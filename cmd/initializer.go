package main

import (
	"database/sql"
	"log"
	"time"

	"revenueBack/internal/config"
	"revenueBack/internal/handlers"
	"revenueBack/internal/services"
	"revenueBack/internal/storage"
)

type application struct {
	errorLog             *log.Logger
	infoLog              *log.Logger
	jwtSecret            string
	store                storage.Storage
	authHandler          *handlers.AuthHandler
	userHandler          *handlers.UserHandler
	taxpayerHandler      *handlers.TaxpayerHandler
	categoryHandler      *handlers.CategoryHandler
	invoiceHandler       *handlers.InvoiceHandler
	paymentHandler       *handlers.PaymentHandler
	paymentConfigHandler *handlers.PaymentConfigHandler
	businessHandler      *handlers.BusinessHandler
	reportHandler        *handlers.ReportHandler
}

func initializeApp(store storage.Storage, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Services
	authService := &services.AuthService{Store: store, JWTSecret: cfg.Auth.JWTSecret}
	userService := &services.UserService{Store: store}
	taxpayerService := &services.TaxpayerService{Store: store}
	categoryService := &services.CategoryService{Store: store}
	invoiceService := &services.InvoiceService{Store: store}
	paymentService := &services.PaymentService{Store: store, Gateway: &services.MockGateway{Delay: 2 * time.Second}}
	paymentConfigService := &services.PaymentConfigService{Store: store}
	businessService := &services.BusinessService{Store: store}
	reportService := &services.ReportService{Store: store}

	// Handlers
	authHandler := &handlers.AuthHandler{Service: authService}
	userHandler := &handlers.UserHandler{Service: userService}
	taxpayerHandler := &handlers.TaxpayerHandler{Service: taxpayerService}
	categoryHandler := &handlers.CategoryHandler{Service: categoryService}
	invoiceHandler := &handlers.InvoiceHandler{Service: invoiceService}
	paymentHandler := &handlers.PaymentHandler{Service: paymentService, ConfigService: paymentConfigService}
	paymentConfigHandler := &handlers.PaymentConfigHandler{Service: paymentConfigService}
	businessHandler := &handlers.BusinessHandler{Service: businessService}
	reportHandler := &handlers.ReportHandler{Service: reportService}

	return &application{
		errorLog:             errorLog,
		infoLog:              infoLog,
		jwtSecret:            cfg.Auth.JWTSecret,
		store:                store,
		authHandler:          authHandler,
		userHandler:          userHandler,
		taxpayerHandler:      taxpayerHandler,
		categoryHandler:      categoryHandler,
		invoiceHandler:       invoiceHandler,
		paymentHandler:       paymentHandler,
		paymentConfigHandler: paymentConfigHandler,
		businessHandler:      businessHandler,
		reportHandler:        reportHandler,
	}
}

// openStore picks the backend from the database URL: Postgres when one
// is configured, the seeded in-memory store otherwise.
func openStore(dsn string, infoLog *log.Logger) (storage.Storage, func(), error) {
	if dsn == "" {
		infoLog.Println("No DATABASE_URL set, using in-memory store with demo data")
		return storage.NewMemoryStore(), func() {}, nil
	}

	db, err := openDB(dsn)
	if err != nil {
		return nil, nil, err
	}
	infoLog.Println("Connected to Postgres")
	return &storage.PostgresStore{DB: db}, func() { db.Close() }, nil
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	return db, nil
}
