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

// ListingService handles active-listing business logic. The estimated
// commission is recomputed on every write from the estimated sale price and
// percentage.
type ListingService struct {
	listingRepo     *repository.ListingRepository
	propertyService *PropertyService
	settingsService *SettingsService
}

// NewListingService creates a new ListingService with the provided dependencies.
func NewListingService(
	listingRepo *repository.ListingRepository,
	propertyService *PropertyService,
	settingsService *SettingsService,
) *ListingService {
	return &ListingService{
		listingRepo:     listingRepo,
		propertyService: propertyService,
		settingsService: settingsService,
	}
}

// GetAllListings retrieves all listings ordered by the given sort key.
func (s *ListingService) GetAllListings(sortKey string) ([]model.Listing, error) {
	return s.listingRepo.List(sortKey)
}

// GetListing retrieves a single listing by ID.
func (s *ListingService) GetListing(listingID string) (model.Listing, error) {
	return s.listingRepo.Get(listingID)
}

// CreateListing persists a new active listing. An omitted commission
// percentage falls back to the saved default; an omitted listed date
// defaults to today.
func (s *ListingService) CreateListing(ctx context.Context, req request.CreateListingRequest) (model.Listing, error) {
	settings, err := s.settingsService.GetSettings()
	if err != nil {
		return model.Listing{}, err
	}

	commissionPct := settings.DefaultCommissionPercentage
	if req.CommissionPercentage != nil {
		commissionPct = *req.CommissionPercentage
	}

	listedDate := time.Now().UTC()
	if req.ListedDate != "" {
		listedDate, err = time.Parse("2006-01-02", req.ListedDate)
		if err != nil {
			return model.Listing{}, err
		}
	}

	status := req.Status
	if status == "" {
		status = model.ListingActive
	}
	propertyType := req.PropertyType
	if propertyType == "" {
		propertyType = model.TypeHouse
	}

	l := model.Listing{
		ID:                   uuid.New().String(),
		Address:              req.Address,
		EstimatedSalePrice:   req.EstimatedSalePrice,
		CommissionPercentage: commissionPct,
		EstimatedCommission:  commission.EstimatedCommission(req.EstimatedSalePrice, commissionPct),
		ListedDate:           listedDate,
		Status:               status,
		ClientName:           req.ClientName,
		PropertyType:         propertyType,
		Notes:                req.Notes,
		CreatedAt:            time.Now().UTC(),
	}

	if err := s.listingRepo.Create(ctx, &l); err != nil {
		return model.Listing{}, err
	}
	return l, nil
}

// UpdateListing applies the non-nil fields of the request to an existing
// listing and recomputes the estimated commission.
func (s *ListingService) UpdateListing(ctx context.Context, listingID string, req request.UpdateListingRequest) (model.Listing, error) {
	l, err := s.listingRepo.Get(listingID)
	if err != nil {
		return model.Listing{}, err
	}

	if req.Address != nil {
		l.Address = *req.Address
	}
	if req.EstimatedSalePrice != nil {
		l.EstimatedSalePrice = *req.EstimatedSalePrice
	}
	if req.CommissionPercentage != nil {
		l.CommissionPercentage = *req.CommissionPercentage
	}
	if req.ListedDate != nil {
		listedDate, err := time.Parse("2006-01-02", *req.ListedDate)
		if err != nil {
			return model.Listing{}, err
		}
		l.ListedDate = listedDate
	}
	if req.Status != nil {
		l.Status = *req.Status
	}
	if req.ClientName != nil {
		l.ClientName = *req.ClientName
	}
	if req.PropertyType != nil {
		l.PropertyType = *req.PropertyType
	}
	if req.Notes != nil {
		l.Notes = *req.Notes
	}
	l.EstimatedCommission = commission.EstimatedCommission(l.EstimatedSalePrice, l.CommissionPercentage)

	if err := s.listingRepo.Update(ctx, listingID, &l); err != nil {
		return model.Listing{}, err
	}
	return l, nil
}

// DeleteListing removes a listing by ID.
func (s *ListingService) DeleteListing(ctx context.Context, listingID string) error {
	return s.listingRepo.Delete(ctx, listingID)
}

// MarkSold converts a listing into a settled-sale record. The listing's
// address, client, and property type carry over; the final contract price
// and settlement date come from the request. The listing itself is marked
// sold, not deleted, so the listing history survives the conversion.
func (s *ListingService) MarkSold(ctx context.Context, listingID string, req request.MarkListingSoldRequest) (model.Property, error) {
	l, err := s.listingRepo.Get(listingID)
	if err != nil {
		return model.Property{}, err
	}

	commissionPct := l.CommissionPercentage
	if req.CommissionPercentage != nil {
		commissionPct = *req.CommissionPercentage
	}

	p, err := s.propertyService.CreateProperty(ctx, request.CreatePropertyRequest{
		Address:              l.Address,
		SalePrice:            req.SalePrice,
		CommissionPercentage: &commissionPct,
		AgentCount:           req.AgentCount,
		SettlementDate:       req.SettlementDate,
		Status:               model.StatusSettled,
		ClientName:           l.ClientName,
		PropertyType:         l.PropertyType,
	})
	if err != nil {
		return model.Property{}, err
	}

	l.Status = model.ListingSold
	if err := s.listingRepo.Update(ctx, listingID, &l); err != nil {
		return model.Property{}, err
	}
	return p, nil
}
