package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/commishhq/commission-tracker-backend/internal/api/request"
	"github.com/commishhq/commission-tracker-backend/internal/commission"
	"github.com/commishhq/commission-tracker-backend/internal/model"
	"github.com/commishhq/commission-tracker-backend/internal/repository"
)

// PipelineService handles prospecting-pipeline business logic. Weighted
// values are derived on read from the estimated commission and closing
// probability; they are never stored.
type PipelineService struct {
	pipelineRepo    *repository.PipelineRepository
	settingsService *SettingsService
	listingService  *ListingService
}

// NewPipelineService creates a new PipelineService with the provided dependencies.
func NewPipelineService(
	pipelineRepo *repository.PipelineRepository,
	settingsService *SettingsService,
	listingService *ListingService,
) *PipelineService {
	return &PipelineService{
		pipelineRepo:    pipelineRepo,
		settingsService: settingsService,
		listingService:  listingService,
	}
}

// GetAllOpportunities retrieves all pipeline opportunities with weighted
// values populated.
func (s *PipelineService) GetAllOpportunities(sortKey string) ([]model.PipelineOpportunity, error) {
	opportunities, err := s.pipelineRepo.List(sortKey)
	if err != nil {
		return nil, err
	}
	for i := range opportunities {
		weigh(&opportunities[i])
	}
	return opportunities, nil
}

// GetOpportunity retrieves a single pipeline opportunity by ID.
func (s *PipelineService) GetOpportunity(opportunityID string) (model.PipelineOpportunity, error) {
	o, err := s.pipelineRepo.Get(opportunityID)
	if err != nil {
		return model.PipelineOpportunity{}, err
	}
	weigh(&o)
	return o, nil
}

// CreateOpportunity persists a new pipeline opportunity. Probability
// defaults to 50 and the commission percentage to the saved default.
func (s *PipelineService) CreateOpportunity(ctx context.Context, req request.CreatePipelineRequest) (model.PipelineOpportunity, error) {
	settings, err := s.settingsService.GetSettings()
	if err != nil {
		return model.PipelineOpportunity{}, err
	}

	commissionPct := settings.DefaultCommissionPercentage
	if req.CommissionPercentage != nil {
		commissionPct = *req.CommissionPercentage
	}
	probability := 50
	if req.Probability != nil {
		probability = *req.Probability
	}

	expectedSettlement := time.Now().UTC()
	if req.ExpectedSettlement != "" {
		expectedSettlement, err = time.Parse("2006-01-02", req.ExpectedSettlement)
		if err != nil {
			return model.PipelineOpportunity{}, err
		}
	}

	stage := req.Stage
	if stage == "" {
		stage = model.StageAppraised
	}

	o := model.PipelineOpportunity{
		ID:                   uuid.New().String(),
		Address:              req.Address,
		EstimatedSalePrice:   req.EstimatedSalePrice,
		CommissionPercentage: commissionPct,
		EstimatedCommission:  commission.EstimatedCommission(req.EstimatedSalePrice, commissionPct),
		Probability:          probability,
		ExpectedSettlement:   expectedSettlement,
		Stage:                stage,
		ClientName:           req.ClientName,
		Notes:                req.Notes,
		CreatedAt:            time.Now().UTC(),
	}

	if err := s.pipelineRepo.Create(ctx, &o); err != nil {
		return model.PipelineOpportunity{}, err
	}
	weigh(&o)
	return o, nil
}

// UpdateOpportunity applies the non-nil fields of the request to an existing
// opportunity and recomputes the estimated commission.
func (s *PipelineService) UpdateOpportunity(ctx context.Context, opportunityID string, req request.UpdatePipelineRequest) (model.PipelineOpportunity, error) {
	o, err := s.pipelineRepo.Get(opportunityID)
	if err != nil {
		return model.PipelineOpportunity{}, err
	}

	if req.Address != nil {
		o.Address = *req.Address
	}
	if req.EstimatedSalePrice != nil {
		o.EstimatedSalePrice = *req.EstimatedSalePrice
	}
	if req.CommissionPercentage != nil {
		o.CommissionPercentage = *req.CommissionPercentage
	}
	if req.Probability != nil {
		o.Probability = *req.Probability
	}
	if req.ExpectedSettlement != nil {
		expectedSettlement, err := time.Parse("2006-01-02", *req.ExpectedSettlement)
		if err != nil {
			return model.PipelineOpportunity{}, err
		}
		o.ExpectedSettlement = expectedSettlement
	}
	if req.Stage != nil {
		o.Stage = *req.Stage
	}
	if req.ClientName != nil {
		o.ClientName = *req.ClientName
	}
	if req.Notes != nil {
		o.Notes = *req.Notes
	}
	o.EstimatedCommission = commission.EstimatedCommission(o.EstimatedSalePrice, o.CommissionPercentage)

	if err := s.pipelineRepo.Update(ctx, opportunityID, &o); err != nil {
		return model.PipelineOpportunity{}, err
	}
	weigh(&o)
	return o, nil
}

// DeleteOpportunity removes a pipeline opportunity by ID.
func (s *PipelineService) DeleteOpportunity(ctx context.Context, opportunityID string) error {
	return s.pipelineRepo.Delete(ctx, opportunityID)
}

// ConvertToListing promotes a pipeline opportunity into an active listing
// and moves the opportunity to the listed stage.
func (s *PipelineService) ConvertToListing(ctx context.Context, opportunityID string) (model.Listing, error) {
	o, err := s.pipelineRepo.Get(opportunityID)
	if err != nil {
		return model.Listing{}, err
	}

	l, err := s.listingService.CreateListing(ctx, request.CreateListingRequest{
		Address:              o.Address,
		EstimatedSalePrice:   o.EstimatedSalePrice,
		CommissionPercentage: &o.CommissionPercentage,
		ClientName:           o.ClientName,
		Notes:                o.Notes,
	})
	if err != nil {
		return model.Listing{}, err
	}

	o.Stage = model.StageListed
	if err := s.pipelineRepo.Update(ctx, opportunityID, &o); err != nil {
		return model.Listing{}, err
	}
	return l, nil
}

func weigh(o *model.PipelineOpportunity) {
	o.WeightedValue = commission.WeightedValue(o.EstimatedCommission, o.Probability)
}
