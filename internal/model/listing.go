package model

import "time"

// Valid listing statuses.
const (
	ListingActive     = "active"
	ListingUnderOffer = "under_offer"
	ListingWithdrawn  = "withdrawn"
	ListingSold       = "sold"
)

// Listing represents an actively listed property that has not yet sold.
// EstimatedCommission is the GST-inclusive figure derived from the estimated
// sale price and commission percentage; it is recomputed on every write.
type Listing struct {
	ID                   string    `json:"id"`
	Address              string    `json:"address"`
	EstimatedSalePrice   float64   `json:"estimated_sale_price"`
	CommissionPercentage float64   `json:"commission_percentage"`
	EstimatedCommission  float64   `json:"estimated_commission"`
	ListedDate           time.Time `json:"listed_date"`
	Status               string    `json:"status"`
	ClientName           string    `json:"client_name"`
	PropertyType         string    `json:"property_type"`
	Notes                string    `json:"notes"`
	CreatedAt            time.Time `json:"created_at"`
}
