package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/commishhq/commission-tracker-backend/internal/api"
	"github.com/commishhq/commission-tracker-backend/internal/config"
	"github.com/commishhq/commission-tracker-backend/internal/database"
	"github.com/commishhq/commission-tracker-backend/internal/repository"
	"github.com/commishhq/commission-tracker-backend/internal/retry"
	"github.com/commishhq/commission-tracker-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	propertyRepo := repository.NewPropertyRepository(db)
	listingRepo := repository.NewListingRepository(db)
	pipelineRepo := repository.NewPipelineRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	fyRegion := cfg.Import.FinancialYearRegion

	// Create services
	systemService := service.NewSystemService(db)
	settingsService := service.NewSettingsService(settingsRepo)
	propertyService := service.NewPropertyService(propertyRepo, settingsService, fyRegion)
	listingService := service.NewListingService(listingRepo, propertyService, settingsService)
	pipelineService := service.NewPipelineService(pipelineRepo, settingsService, listingService)
	expenseService := service.NewExpenseService(expenseRepo, fyRegion)
	importService := service.NewImportService(propertyRepo, settingsService, fyRegion, retry.DefaultPolicy())
	dashboardService := service.NewDashboardService(propertyService, expenseService, pipelineService, settingsService, fyRegion)

	// Create router
	router := api.NewRouter(api.Services{
		System:    systemService,
		Property:  propertyService,
		Listing:   listingService,
		Pipeline:  pipelineService,
		Expense:   expenseService,
		Settings:  settingsService,
		Import:    importService,
		Dashboard: dashboardService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
