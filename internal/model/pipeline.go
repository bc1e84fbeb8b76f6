package model

import "time"

// Valid pipeline stages, in order of progression toward listing.
const (
	StageAppraised = "appraised"
	StageNurturing = "nurturing"
	StageListed    = "listed"
	StageLost      = "lost"
)

// PipelineOpportunity represents a prospective sale that may convert into a
// listing. EstimatedCommission stores the full GST-inclusive amount; the
// weighted figures multiply it by the closing probability.
type PipelineOpportunity struct {
	ID                   string    `json:"id"`
	Address              string    `json:"address"`
	EstimatedSalePrice   float64   `json:"estimated_sale_price"`
	CommissionPercentage float64   `json:"commission_percentage"`
	EstimatedCommission  float64   `json:"estimated_commission"`
	Probability          int       `json:"probability"`
	WeightedValue        float64   `json:"weighted_value"`
	ExpectedSettlement   time.Time `json:"expected_settlement"`
	Stage                string    `json:"stage"`
	ClientName           string    `json:"client_name"`
	Notes                string    `json:"notes"`
	CreatedAt            time.Time `json:"created_at"`
}
