package request

// UpdateSettingsRequest carries a partial settings update; only non-nil
// fields are applied to the stored settings row.
type UpdateSettingsRequest struct {
	Region                      *string  `json:"region"`
	GCIGoal                     *float64 `json:"gci_goal"`
	DefaultCommissionPercentage *float64 `json:"default_commission_percentage"`
	MarketingLevyType           *string  `json:"marketing_levy_type"`
	MarketingLevyValue          *float64 `json:"marketing_levy_value"`
	FranchiseFeeType            *string  `json:"franchise_fee_type"`
	FranchiseFeeValue           *float64 `json:"franchise_fee_value"`
	TransactionFeeType          *string  `json:"transaction_fee_type"`
	TransactionFeeValue         *float64 `json:"transaction_fee_value"`
}
