package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/commishhq/commission-tracker-backend/internal/dateutil"
	"github.com/commishhq/commission-tracker-backend/internal/model"
)

// DashboardService aggregates the headline figures for one financial year.
// The underlying datasets are independent, so they are loaded concurrently.
type DashboardService struct {
	propertyService *PropertyService
	expenseService  *ExpenseService
	pipelineService *PipelineService
	settingsService *SettingsService
	fyRegion        dateutil.Region
}

// NewDashboardService creates a new DashboardService with the provided dependencies.
func NewDashboardService(
	propertyService *PropertyService,
	expenseService *ExpenseService,
	pipelineService *PipelineService,
	settingsService *SettingsService,
	fyRegion dateutil.Region,
) *DashboardService {
	return &DashboardService{
		propertyService: propertyService,
		expenseService:  expenseService,
		pipelineService: pipelineService,
		settingsService: settingsService,
		fyRegion:        fyRegion,
	}
}

// GetSummary computes the dashboard summary for the given financial year.
// An empty year selects the current financial year. Gross GCI and net
// commission count settled sales only; pipeline figures are not filtered by
// year because they represent future opportunities.
func (s *DashboardService) GetSummary(ctx context.Context, financialYear string) (model.DashboardSummary, error) {
	if financialYear == "" {
		financialYear = dateutil.CurrentFinancialYear(s.fyRegion, time.Now())
	}

	var (
		properties    []model.Property
		expenses      []model.Expense
		opportunities []model.PipelineOpportunity
		settings      model.UserSettings
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		properties, err = s.propertyService.GetPropertiesByFinancialYear(financialYear)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.expenseService.GetExpensesByFinancialYear(financialYear)
		return err
	})
	g.Go(func() error {
		var err error
		opportunities, err = s.pipelineService.GetAllOpportunities("")
		return err
	})
	g.Go(func() error {
		var err error
		settings, err = s.settingsService.GetSettings()
		return err
	})
	if err := g.Wait(); err != nil {
		return model.DashboardSummary{}, err
	}

	summary := model.DashboardSummary{
		FinancialYear: financialYear,
		GCIGoal:       settings.GCIGoal,
	}

	for _, p := range properties {
		if p.Status != model.StatusSettled {
			continue
		}
		summary.SettledCount++
		summary.GrossGCI += p.GrossCommissionIncGST
		summary.NetCommission += p.NetCommission
	}
	for _, e := range expenses {
		summary.TotalExpenses += e.Amount
	}
	summary.NetIncome = summary.NetCommission - summary.TotalExpenses

	for _, o := range opportunities {
		if o.Stage == model.StageLost {
			continue
		}
		summary.PipelineWeightedValue += o.WeightedValue
	}

	if settings.GCIGoal > 0 {
		summary.GCIGoalProgress = summary.GrossGCI / settings.GCIGoal * 100
	}

	return summary, nil
}

// GetFinancialYearOptions returns the selectable financial-year labels,
// newest first.
func (s *DashboardService) GetFinancialYearOptions(count int) []string {
	return dateutil.FinancialYearOptions(s.fyRegion, time.Now(), count)
}
