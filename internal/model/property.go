package model

import "time"

// FeeType distinguishes how a fee schedule entry is applied: as a percentage
// of the GST-exclusive gross commission, or as a fixed currency amount.
type FeeType string

// Valid fee types.
const (
	FeePercentage FeeType = "percentage"
	FeeFixed      FeeType = "fixed"
)

// Valid property statuses. Unknown statuses from imports map to settled.
const (
	StatusSettled     = "settled"
	StatusConditional = "conditional"
	StatusPending     = "pending"
)

// Valid property types. Unknown types from imports map to house.
const (
	TypeHouse      = "house"
	TypeApartment  = "apartment"
	TypeTownhouse  = "townhouse"
	TypeLand       = "land"
	TypeCommercial = "commercial"
)

// Property represents a sold property with its full commission breakdown.
// The derived figures (gross/net commission, fee amounts, per-agent splits)
// are computed by the commission package and stored denormalized so the
// display layer never recomputes them.
type Property struct {
	ID                   string  `json:"id"`
	Address              string  `json:"address"`
	SalePrice            float64 `json:"sale_price"`
	CommissionPercentage float64 `json:"commission_percentage"`
	GSTInclusive         bool    `json:"gst_inclusive"`

	GrossCommissionIncGST float64 `json:"gross_commission_inc_gst"`
	GrossCommissionExGST  float64 `json:"gross_commission_ex_gst"`

	MarketingLevy      float64 `json:"marketing_levy"`
	MarketingLevyType  FeeType `json:"marketing_levy_type"`
	MarketingLevyValue float64 `json:"marketing_levy_value"`

	FranchiseFee      float64 `json:"franchise_fee"`
	FranchiseFeeType  FeeType `json:"franchise_fee_type"`
	FranchiseFeeValue float64 `json:"franchise_fee_value"`

	TransactionFee      float64 `json:"transaction_fee"`
	TransactionFeeType  FeeType `json:"transaction_fee_type"`
	TransactionFeeValue float64 `json:"transaction_fee_value"`

	OtherFees     float64 `json:"other_fees"`
	NetCommission float64 `json:"net_commission"`

	GrossCommissionPerAgent float64 `json:"gross_commission_per_agent"`
	SalePricePerAgent       float64 `json:"sale_price_per_agent"`
	AgentCount              int     `json:"agent_count"`

	SettlementDate time.Time `json:"settlement_date"`
	FinancialYear  string    `json:"financial_year"`
	Status         string    `json:"status"`
	ClientName     string    `json:"client_name"`
	PropertyType   string    `json:"property_type"`
	CreatedAt      time.Time `json:"created_at"`
}
