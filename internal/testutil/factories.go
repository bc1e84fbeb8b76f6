package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/commishhq/commission-tracker-backend/internal/model"
)

// PropertyBuilder provides a fluent interface for creating test properties.
//
// Example usage:
//
//	// Simple creation with defaults
//	property := testutil.NewProperty().Build(t, db)
//
//	// Customized property
//	property := testutil.NewProperty().
//	    WithAddress("12 Smith Street, Suburb").
//	    WithSalePrice(850000).
//	    WithSettlementDate("2024-03-05").
//	    Build(t, db)
type PropertyBuilder struct {
	ID                    string
	Address               string
	SalePrice             float64
	CommissionPercentage  float64
	GrossCommissionIncGST float64
	GrossCommissionExGST  float64
	NetCommission         float64
	SettlementDate        string
	FinancialYear         string
	Status                string
	PropertyType          string
	ClientName            string
	AgentCount            int
}

// NewProperty creates a PropertyBuilder with sensible defaults.
func NewProperty() *PropertyBuilder {
	return &PropertyBuilder{
		ID:                    MakeID(),
		Address:               MakeAddress("Test Street"),
		SalePrice:             500000,
		CommissionPercentage:  2.5,
		GrossCommissionIncGST: 12500,
		GrossCommissionExGST:  11363.64,
		NetCommission:         10000,
		SettlementDate:        "2024-08-15",
		FinancialYear:         "2024-25",
		Status:                model.StatusSettled,
		PropertyType:          model.TypeHouse,
		ClientName:            "Test Client",
		AgentCount:            1,
	}
}

// WithID sets a custom ID.
func (b *PropertyBuilder) WithID(id string) *PropertyBuilder {
	b.ID = id
	return b
}

// WithAddress sets a custom address.
func (b *PropertyBuilder) WithAddress(address string) *PropertyBuilder {
	b.Address = address
	return b
}

// WithSalePrice sets a custom sale price.
func (b *PropertyBuilder) WithSalePrice(price float64) *PropertyBuilder {
	b.SalePrice = price
	return b
}

// WithCommission sets the gross commission figures.
func (b *PropertyBuilder) WithCommission(incGST, exGST, net float64) *PropertyBuilder {
	b.GrossCommissionIncGST = incGST
	b.GrossCommissionExGST = exGST
	b.NetCommission = net
	return b
}

// WithSettlementDate sets a custom settlement date (YYYY-MM-DD).
func (b *PropertyBuilder) WithSettlementDate(date string) *PropertyBuilder {
	b.SettlementDate = date
	return b
}

// WithFinancialYear sets a custom financial year label.
func (b *PropertyBuilder) WithFinancialYear(fy string) *PropertyBuilder {
	b.FinancialYear = fy
	return b
}

// WithStatus sets a custom status.
func (b *PropertyBuilder) WithStatus(status string) *PropertyBuilder {
	b.Status = status
	return b
}

// Build creates the property in the database and returns it.
func (b *PropertyBuilder) Build(t *testing.T, db *sql.DB) model.Property {
	t.Helper()

	query := `
		INSERT INTO property (
			id, address, sale_price, commission_percentage, gst_inclusive,
			gross_commission_inc_gst, gross_commission_ex_gst,
			marketing_levy, marketing_levy_type, marketing_levy_value,
			franchise_fee, franchise_fee_type, franchise_fee_value,
			transaction_fee, transaction_fee_type, transaction_fee_value,
			other_fees, net_commission,
			gross_commission_per_agent, sale_price_per_agent, agent_count,
			settlement_date, financial_year, status, client_name, property_type, created_at
		)
		VALUES (?, ?, ?, ?, 1, ?, ?, 0, 'percentage', 1, 0, 'percentage', 6, 0, 'fixed', 0, 0, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	settlement, err := time.Parse("2006-01-02", b.SettlementDate)
	if err != nil {
		t.Fatalf("Invalid settlement date %q: %v", b.SettlementDate, err)
	}
	createdAt := time.Now().UTC()

	_, err = db.Exec(query,
		b.ID, b.Address, b.SalePrice, b.CommissionPercentage,
		b.GrossCommissionIncGST, b.GrossCommissionExGST,
		b.NetCommission,
		b.GrossCommissionExGST, b.SalePrice, b.AgentCount,
		b.SettlementDate, b.FinancialYear, b.Status, b.ClientName, b.PropertyType,
		createdAt.Format("2006-01-02T15:04:05Z07:00"),
	)
	if err != nil {
		t.Fatalf("Failed to create test property: %v", err)
	}

	return model.Property{
		ID:                      b.ID,
		Address:                 b.Address,
		SalePrice:               b.SalePrice,
		CommissionPercentage:    b.CommissionPercentage,
		GSTInclusive:            true,
		GrossCommissionIncGST:   b.GrossCommissionIncGST,
		GrossCommissionExGST:    b.GrossCommissionExGST,
		MarketingLevyType:       model.FeePercentage,
		MarketingLevyValue:      1,
		FranchiseFeeType:        model.FeePercentage,
		FranchiseFeeValue:       6,
		TransactionFeeType:      model.FeeFixed,
		NetCommission:           b.NetCommission,
		GrossCommissionPerAgent: b.GrossCommissionExGST,
		SalePricePerAgent:       b.SalePrice,
		AgentCount:              b.AgentCount,
		SettlementDate:          settlement,
		FinancialYear:           b.FinancialYear,
		Status:                  b.Status,
		ClientName:              b.ClientName,
		PropertyType:            b.PropertyType,
		CreatedAt:               createdAt,
	}
}

// ListingBuilder provides a fluent interface for creating test listings.
type ListingBuilder struct {
	ID                   string
	Address              string
	EstimatedSalePrice   float64
	CommissionPercentage float64
	EstimatedCommission  float64
	ListedDate           string
	Status               string
}

// NewListing creates a ListingBuilder with sensible defaults.
func NewListing() *ListingBuilder {
	return &ListingBuilder{
		ID:                   MakeID(),
		Address:              MakeAddress("Listing Street"),
		EstimatedSalePrice:   600000,
		CommissionPercentage: 2,
		EstimatedCommission:  12000,
		ListedDate:           "2024-07-01",
		Status:               model.ListingActive,
	}
}

// WithAddress sets a custom address.
func (b *ListingBuilder) WithAddress(address string) *ListingBuilder {
	b.Address = address
	return b
}

// WithStatus sets a custom status.
func (b *ListingBuilder) WithStatus(status string) *ListingBuilder {
	b.Status = status
	return b
}

// Build creates the listing in the database and returns it.
func (b *ListingBuilder) Build(t *testing.T, db *sql.DB) model.Listing {
	t.Helper()

	query := `
		INSERT INTO listing (
			id, address, estimated_sale_price, commission_percentage,
			estimated_commission, listed_date, status, client_name,
			property_type, notes, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, '', 'house', '', ?)
	`

	listed, err := time.Parse("2006-01-02", b.ListedDate)
	if err != nil {
		t.Fatalf("Invalid listed date %q: %v", b.ListedDate, err)
	}
	createdAt := time.Now().UTC()

	_, err = db.Exec(query,
		b.ID, b.Address, b.EstimatedSalePrice, b.CommissionPercentage,
		b.EstimatedCommission, b.ListedDate, b.Status,
		createdAt.Format("2006-01-02T15:04:05Z07:00"),
	)
	if err != nil {
		t.Fatalf("Failed to create test listing: %v", err)
	}

	return model.Listing{
		ID:                   b.ID,
		Address:              b.Address,
		EstimatedSalePrice:   b.EstimatedSalePrice,
		CommissionPercentage: b.CommissionPercentage,
		EstimatedCommission:  b.EstimatedCommission,
		ListedDate:           listed,
		Status:               b.Status,
		PropertyType:         model.TypeHouse,
		CreatedAt:            createdAt,
	}
}

// PipelineBuilder provides a fluent interface for creating test pipeline
// opportunities.
type PipelineBuilder struct {
	ID                   string
	Address              string
	EstimatedSalePrice   float64
	CommissionPercentage float64
	EstimatedCommission  float64
	Probability          int
	ExpectedSettlement   string
	Stage                string
}

// NewPipelineOpportunity creates a PipelineBuilder with sensible defaults.
func NewPipelineOpportunity() *PipelineBuilder {
	return &PipelineBuilder{
		ID:                   MakeID(),
		Address:              MakeAddress("Pipeline Street"),
		EstimatedSalePrice:   700000,
		CommissionPercentage: 2,
		EstimatedCommission:  14000,
		Probability:          50,
		ExpectedSettlement:   "2025-03-01",
		Stage:                model.StageAppraised,
	}
}

// WithProbability sets a custom closing probability.
func (b *PipelineBuilder) WithProbability(probability int) *PipelineBuilder {
	b.Probability = probability
	return b
}

// WithStage sets a custom stage.
func (b *PipelineBuilder) WithStage(stage string) *PipelineBuilder {
	b.Stage = stage
	return b
}

// Build creates the opportunity in the database and returns it.
func (b *PipelineBuilder) Build(t *testing.T, db *sql.DB) model.PipelineOpportunity {
	t.Helper()

	query := `
		INSERT INTO pipeline (
			id, address, estimated_sale_price, commission_percentage,
			estimated_commission, probability, expected_settlement, stage,
			client_name, notes, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, '', '', ?)
	`

	expected, err := time.Parse("2006-01-02", b.ExpectedSettlement)
	if err != nil {
		t.Fatalf("Invalid expected settlement %q: %v", b.ExpectedSettlement, err)
	}
	createdAt := time.Now().UTC()

	_, err = db.Exec(query,
		b.ID, b.Address, b.EstimatedSalePrice, b.CommissionPercentage,
		b.EstimatedCommission, b.Probability, b.ExpectedSettlement, b.Stage,
		createdAt.Format("2006-01-02T15:04:05Z07:00"),
	)
	if err != nil {
		t.Fatalf("Failed to create test pipeline opportunity: %v", err)
	}

	return model.PipelineOpportunity{
		ID:                   b.ID,
		Address:              b.Address,
		EstimatedSalePrice:   b.EstimatedSalePrice,
		CommissionPercentage: b.CommissionPercentage,
		EstimatedCommission:  b.EstimatedCommission,
		Probability:          b.Probability,
		ExpectedSettlement:   expected,
		Stage:                b.Stage,
		CreatedAt:            createdAt,
	}
}

// ExpenseBuilder provides a fluent interface for creating test expenses.
type ExpenseBuilder struct {
	ID            string
	Description   string
	Amount        float64
	ExpenseDate   string
	Category      string
	FinancialYear string
}

// NewExpense creates an ExpenseBuilder with sensible defaults.
func NewExpense() *ExpenseBuilder {
	return &ExpenseBuilder{
		ID:            MakeID(),
		Description:   "Test expense",
		Amount:        250,
		ExpenseDate:   "2024-08-01",
		Category:      model.ExpenseMarketing,
		FinancialYear: "2024-25",
	}
}

// WithAmount sets a custom amount.
func (b *ExpenseBuilder) WithAmount(amount float64) *ExpenseBuilder {
	b.Amount = amount
	return b
}

// WithFinancialYear sets a custom financial year label.
func (b *ExpenseBuilder) WithFinancialYear(fy string) *ExpenseBuilder {
	b.FinancialYear = fy
	return b
}

// Build creates the expense in the database and returns it.
func (b *ExpenseBuilder) Build(t *testing.T, db *sql.DB) model.Expense {
	t.Helper()

	query := `
		INSERT INTO expense (
			id, description, amount, expense_date, category,
			tax_deductible, financial_year, created_at
		)
		VALUES (?, ?, ?, ?, ?, 1, ?, ?)
	`

	expenseDate, err := time.Parse("2006-01-02", b.ExpenseDate)
	if err != nil {
		t.Fatalf("Invalid expense date %q: %v", b.ExpenseDate, err)
	}
	createdAt := time.Now().UTC()

	_, err = db.Exec(query,
		b.ID, b.Description, b.Amount, b.ExpenseDate, b.Category,
		b.FinancialYear,
		createdAt.Format("2006-01-02T15:04:05Z07:00"),
	)
	if err != nil {
		t.Fatalf("Failed to create test expense: %v", err)
	}

	return model.Expense{
		ID:            b.ID,
		Description:   b.Description,
		Amount:        b.Amount,
		ExpenseDate:   expenseDate,
		Category:      b.Category,
		TaxDeductible: true,
		FinancialYear: b.FinancialYear,
		CreatedAt:     createdAt,
	}
}

// Convenience functions

// CreateProperty creates a property with the given address and default values.
//
// Example usage:
//
//	property := testutil.CreateProperty(t, db, "12 Smith Street, Suburb")
func CreateProperty(t *testing.T, db *sql.DB, address string) model.Property {
	t.Helper()
	return NewProperty().WithAddress(address).Build(t, db)
}
