package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrPropertyNotFound indicates that a sold property with the given ID does not exist.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrListingNotFound indicates that an active listing with the given ID does not exist.
	ErrListingNotFound = errors.New("listing not found")

	// ErrPipelineNotFound indicates that a pipeline opportunity with the given ID does not exist.
	ErrPipelineNotFound = errors.New("pipeline opportunity not found")

	// ErrExpenseNotFound indicates that an expense record with the given ID does not exist.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrSettingsNotFound indicates that user settings have not been stored yet.
	ErrSettingsNotFound = errors.New("user settings not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidSortKey indicates that a list sort key does not name a sortable column.
	ErrInvalidSortKey = errors.New("invalid sort key")

	// ErrInvalidCommitMode indicates an unknown import commit decision.
	ErrInvalidCommitMode = errors.New("invalid import commit mode")
)

// Import errors cover the CSV import run lifecycle.
var (
	// ErrNoDataRows indicates the CSV contained a header but no data rows,
	// or no rows at all. Terminal for the import run.
	ErrNoDataRows = errors.New("the CSV file appears to be empty or in an invalid format")

	// ErrNoValidRows indicates that every data row was filtered out
	// (blank listing, zero sale price, or summary rows). Terminal for the run.
	ErrNoValidRows = errors.New("no valid property records found in the CSV")
)

// Transport/persistence errors represent record store failures.
var (
	// ErrRateLimited indicates a transient record store rejection. Callers
	// retry these through retry.Policy; once exhausted the error propagates
	// as a terminal failure for the run.
	ErrRateLimited = errors.New("too many requests, wait and retry")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
// These errors indicate that an operation failed, but not due to missing entities or validation issues.
var (
	ErrFailedToRetrieveProperties = errors.New("failed to retrieve properties")
	ErrFailedToRetrieveProperty   = errors.New("failed to retrieve property")
	ErrFailedToRetrieveListings   = errors.New("failed to retrieve listings")
	ErrFailedToRetrievePipeline   = errors.New("failed to retrieve pipeline opportunities")
	ErrFailedToRetrieveExpenses   = errors.New("failed to retrieve expenses")
	ErrFailedToRetrieveSettings   = errors.New("failed to retrieve user settings")
	ErrFailedToImportProperties   = errors.New("failed to import properties")
	ErrFailedToGetSummary         = errors.New("failed to get dashboard summary")
	ErrFailedToGetVersionInfo     = errors.New("failed to get version information")
)
