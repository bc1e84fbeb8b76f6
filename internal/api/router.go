package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/commishhq/commission-tracker-backend/internal/api/handlers"
	custommiddleware "github.com/commishhq/commission-tracker-backend/internal/api/middleware"
	"github.com/commishhq/commission-tracker-backend/internal/config"
	"github.com/commishhq/commission-tracker-backend/internal/service"
)

// Services bundles the service dependencies the router needs.
type Services struct {
	System    *service.SystemService
	Property  *service.PropertyService
	Listing   *service.ListingService
	Pipeline  *service.PipelineService
	Expense   *service.ExpenseService
	Settings  *service.SettingsService
	Import    *service.ImportService
	Dashboard *service.DashboardService
}

// NewRouter creates and configures the HTTP router
func NewRouter(services Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(services.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/property", func(r chi.Router) {
			propertyHandler := handlers.NewPropertyHandler(services.Property)
			r.Get("/", propertyHandler.Properties)
			r.Post("/", propertyHandler.CreateProperty)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", propertyHandler.Property)
				r.Put("/", propertyHandler.UpdateProperty)
				r.Delete("/", propertyHandler.DeleteProperty)
			})
		})

		r.Route("/listing", func(r chi.Router) {
			listingHandler := handlers.NewListingHandler(services.Listing)
			r.Get("/", listingHandler.Listings)
			r.Post("/", listingHandler.CreateListing)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", listingHandler.Listing)
				r.Put("/", listingHandler.UpdateListing)
				r.Delete("/", listingHandler.DeleteListing)
				r.Post("/sold", listingHandler.MarkSold)
			})
		})

		r.Route("/pipeline", func(r chi.Router) {
			pipelineHandler := handlers.NewPipelineHandler(services.Pipeline)
			r.Get("/", pipelineHandler.Opportunities)
			r.Post("/", pipelineHandler.CreateOpportunity)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", pipelineHandler.Opportunity)
				r.Put("/", pipelineHandler.UpdateOpportunity)
				r.Delete("/", pipelineHandler.DeleteOpportunity)
				r.Post("/convert", pipelineHandler.ConvertToListing)
			})
		})

		r.Route("/expense", func(r chi.Router) {
			expenseHandler := handlers.NewExpenseHandler(services.Expense)
			r.Get("/", expenseHandler.Expenses)
			r.Post("/", expenseHandler.CreateExpense)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", expenseHandler.UpdateExpense)
				r.Delete("/", expenseHandler.DeleteExpense)
			})
		})

		r.Route("/settings", func(r chi.Router) {
			settingsHandler := handlers.NewSettingsHandler(services.Settings)
			r.Get("/", settingsHandler.Settings)
			r.Put("/", settingsHandler.UpdateSettings)
		})

		r.Route("/imports", func(r chi.Router) {
			importHandler := handlers.NewImportHandler(services.Import)
			// Imports rewrite the property store in bulk; require the shared
			// key when one is configured.
			if cfg.APIKey != "" {
				r.Use(custommiddleware.APIKeyMiddleware)
			}
			r.Post("/preview", importHandler.Preview)
			r.Post("/commit", importHandler.Commit)
		})

		r.Route("/dashboard", func(r chi.Router) {
			dashboardHandler := handlers.NewDashboardHandler(services.Dashboard)
			r.Get("/summary", dashboardHandler.Summary)
			r.Get("/financial-years", dashboardHandler.FinancialYears)
		})
	})

	return r
}
