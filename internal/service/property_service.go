package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/commishhq/commission-tracker-backend/internal/api/request"
	"github.com/commishhq/commission-tracker-backend/internal/commission"
	"github.com/commishhq/commission-tracker-backend/internal/dateutil"
	"github.com/commishhq/commission-tracker-backend/internal/model"
	"github.com/commishhq/commission-tracker-backend/internal/repository"
)

// PropertyService handles sold-property business logic. The commission
// breakdown is always computed server-side from the raw inputs; clients
// never submit derived figures.
type PropertyService struct {
	propertyRepo    *repository.PropertyRepository
	settingsService *SettingsService
	fyRegion        dateutil.Region
}

// NewPropertyService creates a new PropertyService with the provided dependencies.
// fyRegion sets the financial-year convention used to attribute settlements.
func NewPropertyService(
	propertyRepo *repository.PropertyRepository,
	settingsService *SettingsService,
	fyRegion dateutil.Region,
) *PropertyService {
	return &PropertyService{
		propertyRepo:    propertyRepo,
		settingsService: settingsService,
		fyRegion:        fyRegion,
	}
}

// GetAllProperties retrieves all properties ordered by the given sort key.
func (s *PropertyService) GetAllProperties(sortKey string) ([]model.Property, error) {
	return s.propertyRepo.List(sortKey)
}

// GetPropertiesByFinancialYear retrieves the properties attributed to one
// financial year.
func (s *PropertyService) GetPropertiesByFinancialYear(financialYear string) ([]model.Property, error) {
	return s.propertyRepo.ListByFinancialYear(financialYear)
}

// GetProperty retrieves a single property by ID.
func (s *PropertyService) GetProperty(propertyID string) (model.Property, error) {
	return s.propertyRepo.Get(propertyID)
}

// CreateProperty builds a property from the request, filling omitted fee
// settings and commission percentage from the saved user settings, computes
// the commission breakdown, and persists the record.
func (s *PropertyService) CreateProperty(ctx context.Context, req request.CreatePropertyRequest) (model.Property, error) {
	settings, err := s.settingsService.GetSettings()
	if err != nil {
		return model.Property{}, err
	}

	settlement, err := time.Parse("2006-01-02", req.SettlementDate)
	if err != nil {
		return model.Property{}, err
	}

	commissionPct := settings.DefaultCommissionPercentage
	if req.CommissionPercentage != nil {
		commissionPct = *req.CommissionPercentage
	}
	gstInclusive := true
	if req.GSTInclusive != nil {
		gstInclusive = *req.GSTInclusive
	}
	agentCount := 1
	if req.AgentCount != nil {
		agentCount = *req.AgentCount
	}

	marketingLevy := resolveFee(req.MarketingLevyType, req.MarketingLevyValue, settings.MarketingLevyType, settings.MarketingLevyValue)
	franchiseFee := resolveFee(req.FranchiseFeeType, req.FranchiseFeeValue, settings.FranchiseFeeType, settings.FranchiseFeeValue)
	transactionFee := resolveFee(req.TransactionFeeType, req.TransactionFeeValue, settings.TransactionFeeType, settings.TransactionFeeValue)

	status := req.Status
	if status == "" {
		status = model.StatusSettled
	}
	propertyType := req.PropertyType
	if propertyType == "" {
		propertyType = model.TypeHouse
	}

	p := model.Property{
		ID:                   uuid.New().String(),
		Address:              req.Address,
		SalePrice:            req.SalePrice,
		CommissionPercentage: commissionPct,
		GSTInclusive:         gstInclusive,

		MarketingLevyType:  marketingLevy.Type,
		MarketingLevyValue: marketingLevy.Value,

		FranchiseFeeType:  franchiseFee.Type,
		FranchiseFeeValue: franchiseFee.Value,

		TransactionFeeType:  transactionFee.Type,
		TransactionFeeValue: transactionFee.Value,

		OtherFees:  req.OtherFees,
		AgentCount: agentCount,

		SettlementDate: settlement,
		FinancialYear:  dateutil.FinancialYearForDate(settlement, s.fyRegion),
		Status:         status,
		ClientName:     req.ClientName,
		PropertyType:   propertyType,
		CreatedAt:      time.Now().UTC(),
	}
	applyBreakdown(&p)

	if err := s.propertyRepo.Create(ctx, &p); err != nil {
		return model.Property{}, err
	}
	return p, nil
}

// UpdateProperty applies the non-nil fields of the request to an existing
// property, recomputes the commission breakdown, and persists the result.
func (s *PropertyService) UpdateProperty(ctx context.Context, propertyID string, req request.UpdatePropertyRequest) (model.Property, error) {
	p, err := s.propertyRepo.Get(propertyID)
	if err != nil {
		return model.Property{}, err
	}

	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.SalePrice != nil {
		p.SalePrice = *req.SalePrice
	}
	if req.CommissionPercentage != nil {
		p.CommissionPercentage = *req.CommissionPercentage
	}
	if req.GSTInclusive != nil {
		p.GSTInclusive = *req.GSTInclusive
	}
	if req.MarketingLevyType != nil {
		p.MarketingLevyType = model.FeeType(*req.MarketingLevyType)
	}
	if req.MarketingLevyValue != nil {
		p.MarketingLevyValue = *req.MarketingLevyValue
	}
	if req.FranchiseFeeType != nil {
		p.FranchiseFeeType = model.FeeType(*req.FranchiseFeeType)
	}
	if req.FranchiseFeeValue != nil {
		p.FranchiseFeeValue = *req.FranchiseFeeValue
	}
	if req.TransactionFeeType != nil {
		p.TransactionFeeType = model.FeeType(*req.TransactionFeeType)
	}
	if req.TransactionFeeValue != nil {
		p.TransactionFeeValue = *req.TransactionFeeValue
	}
	if req.OtherFees != nil {
		p.OtherFees = *req.OtherFees
	}
	if req.AgentCount != nil {
		p.AgentCount = *req.AgentCount
	}
	if req.SettlementDate != nil {
		settlement, err := time.Parse("2006-01-02", *req.SettlementDate)
		if err != nil {
			return model.Property{}, err
		}
		p.SettlementDate = settlement
		p.FinancialYear = dateutil.FinancialYearForDate(settlement, s.fyRegion)
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.ClientName != nil {
		p.ClientName = *req.ClientName
	}
	if req.PropertyType != nil {
		p.PropertyType = *req.PropertyType
	}
	applyBreakdown(&p)

	if err := s.propertyRepo.Update(ctx, propertyID, &p); err != nil {
		return model.Property{}, err
	}
	return p, nil
}

// DeleteProperty removes a property by ID.
func (s *PropertyService) DeleteProperty(ctx context.Context, propertyID string) error {
	return s.propertyRepo.Delete(ctx, propertyID)
}

// applyBreakdown recomputes the derived commission figures from the
// property's raw inputs.
func applyBreakdown(p *model.Property) {
	b := commission.ComputeBreakdown(commission.Input{
		SalePrice:            p.SalePrice,
		CommissionPercentage: p.CommissionPercentage,
		GSTInclusive:         p.GSTInclusive,
		MarketingLevy:        commission.Fee{Type: p.MarketingLevyType, Value: p.MarketingLevyValue},
		FranchiseFee:         commission.Fee{Type: p.FranchiseFeeType, Value: p.FranchiseFeeValue},
		TransactionFee:       commission.Fee{Type: p.TransactionFeeType, Value: p.TransactionFeeValue},
		OtherFees:            p.OtherFees,
		AgentCount:           p.AgentCount,
	})
	p.GrossCommissionIncGST = b.GrossCommissionIncGST
	p.GrossCommissionExGST = b.GrossCommissionExGST
	p.MarketingLevy = b.MarketingLevy
	p.FranchiseFee = b.FranchiseFee
	p.TransactionFee = b.TransactionFee
	p.NetCommission = b.NetCommission
	p.GrossCommissionPerAgent = b.GrossCommissionPerAgent
	p.SalePricePerAgent = b.SalePricePerAgent
}

func resolveFee(reqType *string, reqValue *float64, defType model.FeeType, defValue float64) commission.Fee {
	fee := commission.Fee{Type: defType, Value: defValue}
	if reqType != nil {
		fee.Type = model.FeeType(*reqType)
	}
	if reqValue != nil {
		fee.Value = *reqValue
	}
	return fee
}
