package model

// UserSettings holds the single-operator configuration used as defaults for
// new records: the region (drives financial-year periods and import date
// parsing), the default fee schedule, and the annual GCI goal.
type UserSettings struct {
	Region                      string  `json:"region"`
	GCIGoal                     float64 `json:"gci_goal"`
	DefaultCommissionPercentage float64 `json:"default_commission_percentage"`

	MarketingLevyType  FeeType `json:"marketing_levy_type"`
	MarketingLevyValue float64 `json:"marketing_levy_value"`

	FranchiseFeeType  FeeType `json:"franchise_fee_type"`
	FranchiseFeeValue float64 `json:"franchise_fee_value"`

	TransactionFeeType  FeeType `json:"transaction_fee_type"`
	TransactionFeeValue float64 `json:"transaction_fee_value"`
}

// DefaultUserSettings returns the settings applied before the operator has
// saved any: Australian region, 1% marketing levy, 6% franchise fee, no
// transaction fee, 1.98% default commission.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		Region:                      "australia",
		GCIGoal:                     0,
		DefaultCommissionPercentage: 1.98,
		MarketingLevyType:           FeePercentage,
		MarketingLevyValue:          1,
		FranchiseFeeType:            FeePercentage,
		FranchiseFeeValue:           6,
		TransactionFeeType:          FeeFixed,
		TransactionFeeValue:         0,
	}
}
