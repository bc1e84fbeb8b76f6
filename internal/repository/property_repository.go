package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/commishhq/commission-tracker-backend/internal/apperrors"
	"github.com/commishhq/commission-tracker-backend/internal/model"
)

// PropertyRepository provides data access methods for the property table.
// It is the record store behind both the CRUD endpoints and the CSV import
// reconciler.
type PropertyRepository struct {
	db *sql.DB
}

// NewPropertyRepository creates a new PropertyRepository with the provided database connection.
func NewPropertyRepository(db *sql.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

var propertySortable = map[string]bool{
	"settlement_date": true,
	"sale_price":      true,
	"net_commission":  true,
	"financial_year":  true,
	"address":         true,
	"created_at":      true,
}

const propertyColumns = `
	id, address, sale_price, commission_percentage, gst_inclusive,
	gross_commission_inc_gst, gross_commission_ex_gst,
	marketing_levy, marketing_levy_type, marketing_levy_value,
	franchise_fee, franchise_fee_type, franchise_fee_value,
	transaction_fee, transaction_fee_type, transaction_fee_value,
	other_fees, net_commission,
	gross_commission_per_agent, sale_price_per_agent, agent_count,
	settlement_date, financial_year, status, client_name, property_type, created_at
`

// List retrieves all properties ordered by the given sort key. A leading '-'
// on the key sorts descending; an empty key defaults to newest settlement
// first.
func (r *PropertyRepository) List(sortKey string) ([]model.Property, error) {
	order, err := orderClause(sortKey, "-settlement_date", propertySortable)
	if err != nil {
		return nil, err
	}

	query := "SELECT " + propertyColumns + " FROM property " + order

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, wrapStoreErr(fmt.Errorf("failed to query property table: %w", err))
	}
	defer rows.Close()

	properties := []model.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating property table: %w", err)
	}

	return properties, nil
}

// ListByFinancialYear retrieves all properties attributed to the given
// financial year, newest settlement first.
func (r *PropertyRepository) ListByFinancialYear(financialYear string) ([]model.Property, error) {
	query := "SELECT " + propertyColumns + " FROM property WHERE financial_year = ? ORDER BY settlement_date DESC"

	rows, err := r.db.Query(query, financialYear)
	if err != nil {
		return nil, wrapStoreErr(fmt.Errorf("failed to query property table: %w", err))
	}
	defer rows.Close()

	properties := []model.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating property table: %w", err)
	}

	return properties, nil
}

// Get retrieves a single property by ID.
func (r *PropertyRepository) Get(id string) (model.Property, error) {
	query := "SELECT " + propertyColumns + " FROM property WHERE id = ?"

	row := r.db.QueryRow(query, id)
	p, err := scanProperty(row)
	if err == sql.ErrNoRows {
		return model.Property{}, apperrors.ErrPropertyNotFound
	}
	if err != nil {
		return model.Property{}, err
	}
	return p, nil
}

// Create inserts a new property record.
func (r *PropertyRepository) Create(ctx context.Context, p *model.Property) error {
	query := `
		INSERT INTO property (` + propertyColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Address, p.SalePrice, p.CommissionPercentage, p.GSTInclusive,
		p.GrossCommissionIncGST, p.GrossCommissionExGST,
		p.MarketingLevy, p.MarketingLevyType, p.MarketingLevyValue,
		p.FranchiseFee, p.FranchiseFeeType, p.FranchiseFeeValue,
		p.TransactionFee, p.TransactionFeeType, p.TransactionFeeValue,
		p.OtherFees, p.NetCommission,
		p.GrossCommissionPerAgent, p.SalePricePerAgent, p.AgentCount,
		p.SettlementDate.Format("2006-01-02"), p.FinancialYear, p.Status, p.ClientName, p.PropertyType,
		p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	)
	if err != nil {
		return wrapStoreErr(fmt.Errorf("failed to insert property: %w", err))
	}
	return nil
}

// Update replaces all mutable fields of an existing property.
// Returns ErrPropertyNotFound if the ID does not exist.
func (r *PropertyRepository) Update(ctx context.Context, id string, p *model.Property) error {
	query := `
		UPDATE property SET
			address = ?, sale_price = ?, commission_percentage = ?, gst_inclusive = ?,
			gross_commission_inc_gst = ?, gross_commission_ex_gst = ?,
			marketing_levy = ?, marketing_levy_type = ?, marketing_levy_value = ?,
			franchise_fee = ?, franchise_fee_type = ?, franchise_fee_value = ?,
			transaction_fee = ?, transaction_fee_type = ?, transaction_fee_value = ?,
			other_fees = ?, net_commission = ?,
			gross_commission_per_agent = ?, sale_price_per_agent = ?, agent_count = ?,
			settlement_date = ?, financial_year = ?, status = ?, client_name = ?, property_type = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		p.Address, p.SalePrice, p.CommissionPercentage, p.GSTInclusive,
		p.GrossCommissionIncGST, p.GrossCommissionExGST,
		p.MarketingLevy, p.MarketingLevyType, p.MarketingLevyValue,
		p.FranchiseFee, p.FranchiseFeeType, p.FranchiseFeeValue,
		p.TransactionFee, p.TransactionFeeType, p.TransactionFeeValue,
		p.OtherFees, p.NetCommission,
		p.GrossCommissionPerAgent, p.SalePricePerAgent, p.AgentCount,
		p.SettlementDate.Format("2006-01-02"), p.FinancialYear, p.Status, p.ClientName, p.PropertyType,
		id,
	)
	if err != nil {
		return wrapStoreErr(fmt.Errorf("failed to update property: %w", err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPropertyNotFound
	}
	return nil
}

// Delete removes a property by ID.
// Returns ErrPropertyNotFound if the ID no longer exists; callers
// reconciling against a possibly-already-deleted record treat that as
// non-fatal.
func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM property WHERE id = ?", id)
	if err != nil {
		return wrapStoreErr(fmt.Errorf("failed to delete property: %w", err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPropertyNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(row rowScanner) (model.Property, error) {
	var p model.Property
	var settlementStr, createdAtStr string
	var clientName sql.NullString

	err := row.Scan(
		&p.ID, &p.Address, &p.SalePrice, &p.CommissionPercentage, &p.GSTInclusive,
		&p.GrossCommissionIncGST, &p.GrossCommissionExGST,
		&p.MarketingLevy, &p.MarketingLevyType, &p.MarketingLevyValue,
		&p.FranchiseFee, &p.FranchiseFeeType, &p.FranchiseFeeValue,
		&p.TransactionFee, &p.TransactionFeeType, &p.TransactionFeeValue,
		&p.OtherFees, &p.NetCommission,
		&p.GrossCommissionPerAgent, &p.SalePricePerAgent, &p.AgentCount,
		&settlementStr, &p.FinancialYear, &p.Status, &clientName, &p.PropertyType, &createdAtStr,
	)
	if err == sql.ErrNoRows {
		return model.Property{}, err
	}
	if err != nil {
		return model.Property{}, fmt.Errorf("failed to scan property table results: %w", err)
	}

	p.SettlementDate, err = ParseTime(settlementStr)
	if err != nil {
		return model.Property{}, fmt.Errorf("failed to parse settlement date: %w", err)
	}
	p.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Property{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if clientName.Valid {
		p.ClientName = clientName.String
	}

	return p, nil
}
