package service

import (
	"context"

	"github.com/commishhq/commission-tracker-backend/internal/api/request"
	"github.com/commishhq/commission-tracker-backend/internal/model"
	"github.com/commishhq/commission-tracker-backend/internal/repository"
)

// SettingsService handles user settings business logic. Settings are a
// singleton: reads fall back to built-in defaults until the operator saves.
type SettingsService struct {
	settingsRepo *repository.SettingsRepository
}

// NewSettingsService creates a new SettingsService with the provided repository dependency.
func NewSettingsService(settingsRepo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings retrieves the current user settings.
func (s *SettingsService) GetSettings() (model.UserSettings, error) {
	return s.settingsRepo.Get()
}

// UpdateSettings applies the non-nil fields of the request to the stored
// settings and persists the result.
func (s *SettingsService) UpdateSettings(ctx context.Context, req request.UpdateSettingsRequest) (model.UserSettings, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		return model.UserSettings{}, err
	}

	if req.Region != nil {
		settings.Region = *req.Region
	}
	if req.GCIGoal != nil {
		settings.GCIGoal = *req.GCIGoal
	}
	if req.DefaultCommissionPercentage != nil {
		settings.DefaultCommissionPercentage = *req.DefaultCommissionPercentage
	}
	if req.MarketingLevyType != nil {
		settings.MarketingLevyType = model.FeeType(*req.MarketingLevyType)
	}
	if req.MarketingLevyValue != nil {
		settings.MarketingLevyValue = *req.MarketingLevyValue
	}
	if req.FranchiseFeeType != nil {
		settings.FranchiseFeeType = model.FeeType(*req.FranchiseFeeType)
	}
	if req.FranchiseFeeValue != nil {
		settings.FranchiseFeeValue = *req.FranchiseFeeValue
	}
	if req.TransactionFeeType != nil {
		settings.TransactionFeeType = model.FeeType(*req.TransactionFeeType)
	}
	if req.TransactionFeeValue != nil {
		settings.TransactionFeeValue = *req.TransactionFeeValue
	}

	if err := s.settingsRepo.Save(ctx, &settings); err != nil {
		return model.UserSettings{}, err
	}
	return settings, nil
}
