package validation

import (
	"fmt"

	"github.com/commishhq/commission-tracker-backend/internal/api/request"
)

var ValidRegion = map[string]bool{
	"australia": true, "new_zealand": true, "uk": true, "usa": true, "canada": true,
}

func ValidateUpdateSettings(req request.UpdateSettingsRequest) error {
	errors := make(map[string]string)

	if req.Region != nil && !ValidRegion[*req.Region] {
		errors["region"] = fmt.Sprintf("invalid region: %s", *req.Region)
	}
	if req.GCIGoal != nil && *req.GCIGoal < 0 {
		errors["gciGoal"] = "GCI goal cannot be negative"
	}
	if req.DefaultCommissionPercentage != nil && (*req.DefaultCommissionPercentage < 0 || *req.DefaultCommissionPercentage > 100) {
		errors["defaultCommissionPercentage"] = "commission percentage must be between 0 and 100"
	}

	validateFeeInput(errors, "marketingLevy", req.MarketingLevyType, req.MarketingLevyValue)
	validateFeeInput(errors, "franchiseFee", req.FranchiseFeeType, req.FranchiseFeeValue)
	validateFeeInput(errors, "transactionFee", req.TransactionFeeType, req.TransactionFeeValue)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
