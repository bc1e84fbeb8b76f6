package request

// CreatePropertyRequest carries a new settled-sale record. Fee settings and
// commission percentage are optional; omitted values fall back to the saved
// user settings.
type CreatePropertyRequest struct {
	Address              string   `json:"address"`
	SalePrice            float64  `json:"sale_price"`
	CommissionPercentage *float64 `json:"commission_percentage"`
	GSTInclusive         *bool    `json:"gst_inclusive"`
	MarketingLevyType    *string  `json:"marketing_levy_type"`
	MarketingLevyValue   *float64 `json:"marketing_levy_value"`
	FranchiseFeeType     *string  `json:"franchise_fee_type"`
	FranchiseFeeValue    *float64 `json:"franchise_fee_value"`
	TransactionFeeType   *string  `json:"transaction_fee_type"`
	TransactionFeeValue  *float64 `json:"transaction_fee_value"`
	OtherFees            float64  `json:"other_fees"`
	AgentCount           *int     `json:"agent_count"`
	SettlementDate       string   `json:"settlement_date"`
	Status               string   `json:"status"`
	ClientName           string   `json:"client_name"`
	PropertyType         string   `json:"property_type"`
}

// UpdatePropertyRequest carries a partial update; only non-nil fields are
// applied. The commission breakdown is recomputed after the update.
type UpdatePropertyRequest struct {
	Address              *string  `json:"address"`
	SalePrice            *float64 `json:"sale_price"`
	CommissionPercentage *float64 `json:"commission_percentage"`
	GSTInclusive         *bool    `json:"gst_inclusive"`
	MarketingLevyType    *string  `json:"marketing_levy_type"`
	MarketingLevyValue   *float64 `json:"marketing_levy_value"`
	FranchiseFeeType     *string  `json:"franchise_fee_type"`
	FranchiseFeeValue    *float64 `json:"franchise_fee_value"`
	TransactionFeeType   *string  `json:"transaction_fee_type"`
	TransactionFeeValue  *float64 `json:"transaction_fee_value"`
	OtherFees            *float64 `json:"other_fees"`
	AgentCount           *int     `json:"agent_count"`
	SettlementDate       *string  `json:"settlement_date"`
	Status               *string  `json:"status"`
	ClientName           *string  `json:"client_name"`
	PropertyType         *string  `json:"property_type"`
}
