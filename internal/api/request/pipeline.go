package request

type CreatePipelineRequest struct {
	Address              string   `json:"address"`
	EstimatedSalePrice   float64  `json:"estimated_sale_price"`
	CommissionPercentage *float64 `json:"commission_percentage"`
	Probability          *int     `json:"probability"`
	ExpectedSettlement   string   `json:"expected_settlement"`
	Stage                string   `json:"stage"`
	ClientName           string   `json:"client_name"`
	Notes                string   `json:"notes"`
}

type UpdatePipelineRequest struct {
	Address              *string  `json:"address"`
	EstimatedSalePrice   *float64 `json:"estimated_sale_price"`
	CommissionPercentage *float64 `json:"commission_percentage"`
	Probability          *int     `json:"probability"`
	ExpectedSettlement   *string  `json:"expected_settlement"`
	Stage                *string  `json:"stage"`
	ClientName           *string  `json:"client_name"`
	Notes                *string  `json:"notes"`
}
