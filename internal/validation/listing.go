package validation

import (
	"fmt"
	"strings"

	"github.com/commishhq/commission-tracker-backend/internal/api/request"
)

var ValidListingStatus = map[string]bool{
	"active": true, "under_offer": true, "withdrawn": true, "sold": true,
}

func ValidateCreateListing(req request.CreateListingRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Address) == "" {
		errors["address"] = "address is required"
	} else if len(req.Address) > 255 {
		errors["address"] = "address must be 255 characters or less"
	}
	if req.EstimatedSalePrice < 0 {
		errors["estimatedSalePrice"] = "estimated sale price cannot be negative"
	}
	if req.CommissionPercentage != nil && (*req.CommissionPercentage < 0 || *req.CommissionPercentage > 100) {
		errors["commissionPercentage"] = "commission percentage must be between 0 and 100"
	}
	if req.ListedDate != "" && !ValidDate(req.ListedDate) {
		errors["listedDate"] = "listed date must be in YYYY-MM-DD format"
	}
	if req.Status != "" && !ValidListingStatus[req.Status] {
		errors["status"] = fmt.Sprintf("invalid status: %s", req.Status)
	}
	if req.PropertyType != "" && !ValidPropertyType[req.PropertyType] {
		errors["propertyType"] = fmt.Sprintf("invalid property type: %s", req.PropertyType)
	}
	if len(req.ClientName) > 100 {
		errors["clientName"] = "client name must be 100 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateListing(req request.UpdateListingRequest) error {
	errors := make(map[string]string)

	if req.Address != nil {
		if strings.TrimSpace(*req.Address) == "" {
			errors["address"] = "address is required"
		} else if len(*req.Address) > 255 {
			errors["address"] = "address must be 255 characters or less"
		}
	}
	if req.EstimatedSalePrice != nil && *req.EstimatedSalePrice < 0 {
		errors["estimatedSalePrice"] = "estimated sale price cannot be negative"
	}
	if req.CommissionPercentage != nil && (*req.CommissionPercentage < 0 || *req.CommissionPercentage > 100) {
		errors["commissionPercentage"] = "commission percentage must be between 0 and 100"
	}
	if req.ListedDate != nil && !ValidDate(*req.ListedDate) {
		errors["listedDate"] = "listed date must be in YYYY-MM-DD format"
	}
	if req.Status != nil && !ValidListingStatus[*req.Status] {
		errors["status"] = fmt.Sprintf("invalid status: %s", *req.Status)
	}
	if req.PropertyType != nil && !ValidPropertyType[*req.PropertyType] {
		errors["propertyType"] = fmt.Sprintf("invalid property type: %s", *req.PropertyType)
	}
	if req.ClientName != nil && len(*req.ClientName) > 100 {
		errors["clientName"] = "client name must be 100 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateMarkListingSold(req request.MarkListingSoldRequest) error {
	errors := make(map[string]string)

	if req.SalePrice <= 0 {
		errors["salePrice"] = "sale price must be greater than zero"
	}
	if req.CommissionPercentage != nil && (*req.CommissionPercentage < 0 || *req.CommissionPercentage > 100) {
		errors["commissionPercentage"] = "commission percentage must be between 0 and 100"
	}
	if strings.TrimSpace(req.SettlementDate) == "" {
		errors["settlementDate"] = "settlement date is required"
	} else if !ValidDate(req.SettlementDate) {
		errors["settlementDate"] = "settlement date must be in YYYY-MM-DD format"
	}
	if req.AgentCount != nil && *req.AgentCount < 1 {
		errors["agentCount"] = "agent count must be at least 1"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
