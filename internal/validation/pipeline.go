package validation

import (
	"fmt"
	"strings"

	"github.com/commishhq/commission-tracker-backend/internal/api/request"
)

var ValidPipelineStage = map[string]bool{
	"appraised": true, "nurturing": true, "listed": true, "lost": true,
}

func ValidateCreatePipeline(req request.CreatePipelineRequest) error {
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
	if req.Probability != nil && (*req.Probability < 0 || *req.Probability > 100) {
		errors["probability"] = "probability must be between 0 and 100"
	}
	if req.ExpectedSettlement != "" && !ValidDate(req.ExpectedSettlement) {
		errors["expectedSettlement"] = "expected settlement must be in YYYY-MM-DD format"
	}
	if req.Stage != "" && !ValidPipelineStage[req.Stage] {
		errors["stage"] = fmt.Sprintf("invalid stage: %s", req.Stage)
	}
	if len(req.ClientName) > 100 {
		errors["clientName"] = "client name must be 100 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdatePipeline(req request.UpdatePipelineRequest) error {
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
	if req.Probability != nil && (*req.Probability < 0 || *req.Probability > 100) {
		errors["probability"] = "probability must be between 0 and 100"
	}
	if req.ExpectedSettlement != nil && !ValidDate(*req.ExpectedSettlement) {
		errors["expectedSettlement"] = "expected settlement must be in YYYY-MM-DD format"
	}
	if req.Stage != nil && !ValidPipelineStage[*req.Stage] {
		errors["stage"] = fmt.Sprintf("invalid stage: %s", *req.Stage)
	}
	if req.ClientName != nil && len(*req.ClientName) > 100 {
		errors["clientName"] = "client name must be 100 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
