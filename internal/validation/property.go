package validation

import (
	"fmt"
	"strings"

	"github.com/commishhq/commission-tracker-backend/internal/api/request"
)

var ValidPropertyStatus = map[string]bool{
	"settled": true, "conditional": true, "pending": true,
}

var ValidPropertyType = map[string]bool{
	"house": true, "apartment": true, "townhouse": true, "land": true, "commercial": true,
}

var ValidFeeType = map[string]bool{
	"percentage": true, "fixed": true,
}

func ValidateCreateProperty(req request.CreatePropertyRequest) error {
	errors := make(map[string]string)

	// Required field
	if strings.TrimSpace(req.Address) == "" {
		errors["address"] = "address is required"
	} else if len(req.Address) > 255 {
		errors["address"] = "address must be 255 characters or less"
	}

	if req.SalePrice < 0 {
		errors["salePrice"] = "sale price cannot be negative"
	}
	if req.CommissionPercentage != nil && (*req.CommissionPercentage < 0 || *req.CommissionPercentage > 100) {
		errors["commissionPercentage"] = "commission percentage must be between 0 and 100"
	}

	if strings.TrimSpace(req.SettlementDate) == "" {
		errors["settlementDate"] = "settlement date is required"
	} else if !ValidDate(req.SettlementDate) {
		errors["settlementDate"] = "settlement date must be in YYYY-MM-DD format"
	}

	validateFeeInput(errors, "marketingLevy", req.MarketingLevyType, req.MarketingLevyValue)
	validateFeeInput(errors, "franchiseFee", req.FranchiseFeeType, req.FranchiseFeeValue)
	validateFeeInput(errors, "transactionFee", req.TransactionFeeType, req.TransactionFeeValue)

	if req.OtherFees < 0 {
		errors["otherFees"] = "other fees cannot be negative"
	}
	if req.AgentCount != nil && *req.AgentCount < 1 {
		errors["agentCount"] = "agent count must be at least 1"
	}

	// optional
	if req.Status != "" && !ValidPropertyStatus[req.Status] {
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

func ValidateUpdateProperty(req request.UpdatePropertyRequest) error {
	errors := make(map[string]string)

	if req.Address != nil {
		if strings.TrimSpace(*req.Address) == "" {
			errors["address"] = "address is required"
		} else if len(*req.Address) > 255 {
			errors["address"] = "address must be 255 characters or less"
		}
	}
	if req.SalePrice != nil && *req.SalePrice < 0 {
		errors["salePrice"] = "sale price cannot be negative"
	}
	if req.CommissionPercentage != nil && (*req.CommissionPercentage < 0 || *req.CommissionPercentage > 100) {
		errors["commissionPercentage"] = "commission percentage must be between 0 and 100"
	}
	if req.SettlementDate != nil && !ValidDate(*req.SettlementDate) {
		errors["settlementDate"] = "settlement date must be in YYYY-MM-DD format"
	}

	validateFeeInput(errors, "marketingLevy", req.MarketingLevyType, req.MarketingLevyValue)
	validateFeeInput(errors, "franchiseFee", req.FranchiseFeeType, req.FranchiseFeeValue)
	validateFeeInput(errors, "transactionFee", req.TransactionFeeType, req.TransactionFeeValue)

	if req.OtherFees != nil && *req.OtherFees < 0 {
		errors["otherFees"] = "other fees cannot be negative"
	}
	if req.AgentCount != nil && *req.AgentCount < 1 {
		errors["agentCount"] = "agent count must be at least 1"
	}
	if req.Status != nil && !ValidPropertyStatus[*req.Status] {
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

func validateFeeInput(errors map[string]string, field string, feeType *string, feeValue *float64) {
	if feeType != nil && !ValidFeeType[*feeType] {
		errors[field+"Type"] = fmt.Sprintf("invalid fee type: %s", *feeType)
	}
	if feeValue != nil && *feeValue < 0 {
		errors[field+"Value"] = "fee value cannot be negative"
	}
}
