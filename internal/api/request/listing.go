package request

type CreateListingRequest struct {
	Address              string   `json:"address"`
	EstimatedSalePrice   float64  `json:"estimated_sale_price"`
	CommissionPercentage *float64 `json:"commission_percentage"`
	ListedDate           string   `json:"listed_date"`
	Status               string   `json:"status"`
	ClientName           string   `json:"client_name"`
	PropertyType         string   `json:"property_type"`
	Notes                string   `json:"notes"`
}

type UpdateListingRequest struct {
	Address              *string  `json:"address"`
	EstimatedSalePrice   *float64 `json:"estimated_sale_price"`
	CommissionPercentage *float64 `json:"commission_percentage"`
	ListedDate           *string  `json:"listed_date"`
	Status               *string  `json:"status"`
	ClientName           *string  `json:"client_name"`
	PropertyType         *string  `json:"property_type"`
	Notes                *string  `json:"notes"`
}

// MarkListingSoldRequest converts a listing into a settled-sale record.
// SalePrice is the final contract price; SettlementDate the settled date.
type MarkListingSoldRequest struct {
	SalePrice            float64  `json:"sale_price"`
	CommissionPercentage *float64 `json:"commission_percentage"`
	SettlementDate       string   `json:"settlement_date"`
	AgentCount           *int     `json:"agent_count"`
}
