package testutil

import (
	"database/sql"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/commishhq/commission-tracker-backend/internal/dateutil"
	"github.com/commishhq/commission-tracker-backend/internal/repository"
	"github.com/commishhq/commission-tracker-backend/internal/retry"
	"github.com/commishhq/commission-tracker-backend/internal/service"
)

func NewTestSettingsService(t *testing.T, db *sql.DB) *service.SettingsService {
	t.Helper()

	settingsRepo := repository.NewSettingsRepository(db)

	return service.NewSettingsService(settingsRepo)
}

func NewTestPropertyService(t *testing.T, db *sql.DB) *service.PropertyService {
	t.Helper()

	propertyRepo := repository.NewPropertyRepository(db)
	settingsService := NewTestSettingsService(t, db)

	return service.NewPropertyService(
		propertyRepo,
		settingsService,
		dateutil.Australia,
	)
}

func NewTestListingService(t *testing.T, db *sql.DB) *service.ListingService {
	t.Helper()

	listingRepo := repository.NewListingRepository(db)
	propertyService := NewTestPropertyService(t, db)
	settingsService := NewTestSettingsService(t, db)

	return service.NewListingService(
		listingRepo,
		propertyService,
		settingsService,
	)
}

func NewTestPipelineService(t *testing.T, db *sql.DB) *service.PipelineService {
	t.Helper()

	pipelineRepo := repository.NewPipelineRepository(db)
	settingsService := NewTestSettingsService(t, db)
	listingService := NewTestListingService(t, db)

	return service.NewPipelineService(
		pipelineRepo,
		settingsService,
		listingService,
	)
}

func NewTestExpenseService(t *testing.T, db *sql.DB) *service.ExpenseService {
	t.Helper()

	expenseRepo := repository.NewExpenseRepository(db)

	return service.NewExpenseService(expenseRepo, dateutil.Australia)
}

// NewTestImportService creates an ImportService with a fast retry policy so
// tests exercising the retry path do not sleep for real backoff intervals.
func NewTestImportService(t *testing.T, db *sql.DB) *service.ImportService {
	t.Helper()

	propertyRepo := repository.NewPropertyRepository(db)
	settingsService := NewTestSettingsService(t, db)

	policy := retry.DefaultPolicy()
	policy.BaseDelay = time.Millisecond

	return service.NewImportService(
		propertyRepo,
		settingsService,
		dateutil.Australia,
		policy,
	)
}

func NewTestDashboardService(t *testing.T, db *sql.DB) *service.DashboardService {
	t.Helper()

	propertyService := NewTestPropertyService(t, db)
	expenseService := NewTestExpenseService(t, db)
	pipelineService := NewTestPipelineService(t, db)
	settingsService := NewTestSettingsService(t, db)

	return service.NewDashboardService(
		propertyService,
		expenseService,
		pipelineService,
		settingsService,
		dateutil.Australia,
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeAddress generates a unique street address for testing.
//
// Example usage:
//
//	address := testutil.MakeAddress("Smith Street")
//	// Returns: "42 Smith Street AB12CD"
func MakeAddress(base string) string {
	if base == "" {
		base = "Test Street"
	}
	//nolint:gosec // G404: Using math/rand for test data generation is acceptable
	number := rand.Intn(199) + 1
	return fmt.Sprintf("%d %s %s", number, base, randomAlphanumeric(6))
}

// MakeClientName generates a unique client name for testing.
//
// Example usage:
//
//	name := testutil.MakeClientName("Jordan")
//	// Returns: "Jordan XYZ789"
func MakeClientName(base string) string {
	if base == "" {
		base = "Client"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
