package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/commishhq/commission-tracker-backend/internal/model"
)

// settingsRowID is the fixed primary key of the single user_settings row.
// Settings are a singleton; Save upserts against this ID.
const settingsRowID = "default"

// SettingsRepository provides data access methods for the user_settings table.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository with the provided database connection.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get retrieves the user settings row, falling back to the built-in
// defaults when no row has been saved yet.
func (r *SettingsRepository) Get() (model.UserSettings, error) {
	query := `
		SELECT region, gci_goal, default_commission_percentage,
			marketing_levy_type, marketing_levy_value,
			franchise_fee_type, franchise_fee_value,
			transaction_fee_type, transaction_fee_value
		FROM user_settings WHERE id = ?
	`

	var s model.UserSettings
	err := r.db.QueryRow(query, settingsRowID).Scan(
		&s.Region, &s.GCIGoal, &s.DefaultCommissionPercentage,
		&s.MarketingLevyType, &s.MarketingLevyValue,
		&s.FranchiseFeeType, &s.FranchiseFeeValue,
		&s.TransactionFeeType, &s.TransactionFeeValue,
	)
	if err == sql.ErrNoRows {
		return model.DefaultUserSettings(), nil
	}
	if err != nil {
		return model.UserSettings{}, wrapStoreErr(fmt.Errorf("failed to query user_settings table: %w", err))
	}
	return s, nil
}

// Save upserts the user settings row.
func (r *SettingsRepository) Save(ctx context.Context, s *model.UserSettings) error {
	query := `
		INSERT INTO user_settings (
			id, region, gci_goal, default_commission_percentage,
			marketing_levy_type, marketing_levy_value,
			franchise_fee_type, franchise_fee_value,
			transaction_fee_type, transaction_fee_value
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			region = excluded.region,
			gci_goal = excluded.gci_goal,
			default_commission_percentage = excluded.default_commission_percentage,
			marketing_levy_type = excluded.marketing_levy_type,
			marketing_levy_value = excluded.marketing_levy_value,
			franchise_fee_type = excluded.franchise_fee_type,
			franchise_fee_value = excluded.franchise_fee_value,
			transaction_fee_type = excluded.transaction_fee_type,
			transaction_fee_value = excluded.transaction_fee_value
	`

	_, err := r.db.ExecContext(ctx, query,
		settingsRowID, s.Region, s.GCIGoal, s.DefaultCommissionPercentage,
		s.MarketingLevyType, s.MarketingLevyValue,
		s.FranchiseFeeType, s.FranchiseFeeValue,
		s.TransactionFeeType, s.TransactionFeeValue,
	)
	if err != nil {
		return wrapStoreErr(fmt.Errorf("failed to save user settings: %w", err))
	}
	return nil
}
