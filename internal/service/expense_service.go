package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/commishhq/commission-tracker-backend/internal/api/request"
	"github.com/commishhq/commission-tracker-backend/internal/dateutil"
	"github.com/commishhq/commission-tracker-backend/internal/model"
	"github.com/commishhq/commission-tracker-backend/internal/repository"
)

// ExpenseService handles expense business logic. Expenses are attributed to
// the financial year their date falls in; the year is rederived whenever the
// date changes.
type ExpenseService struct {
	expenseRepo *repository.ExpenseRepository
	fyRegion    dateutil.Region
}

// NewExpenseService creates a new ExpenseService with the provided repository dependency.
func NewExpenseService(expenseRepo *repository.ExpenseRepository, fyRegion dateutil.Region) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo, fyRegion: fyRegion}
}

// GetAllExpenses retrieves all expenses ordered by the given sort key.
func (s *ExpenseService) GetAllExpenses(sortKey string) ([]model.Expense, error) {
	return s.expenseRepo.List(sortKey)
}

// GetExpensesByFinancialYear retrieves the expenses attributed to one
// financial year.
func (s *ExpenseService) GetExpensesByFinancialYear(financialYear string) ([]model.Expense, error) {
	return s.expenseRepo.ListByFinancialYear(financialYear)
}

// GetExpense retrieves a single expense by ID.
func (s *ExpenseService) GetExpense(expenseID string) (model.Expense, error) {
	return s.expenseRepo.Get(expenseID)
}

// CreateExpense persists a new expense attributed to the financial year of
// its date.
func (s *ExpenseService) CreateExpense(ctx context.Context, req request.CreateExpenseRequest) (model.Expense, error) {
	expenseDate, err := time.Parse("2006-01-02", req.ExpenseDate)
	if err != nil {
		return model.Expense{}, err
	}

	category := req.Category
	if category == "" {
		category = model.ExpenseOther
	}
	taxDeductible := true
	if req.TaxDeductible != nil {
		taxDeductible = *req.TaxDeductible
	}

	e := model.Expense{
		ID:            uuid.New().String(),
		Description:   req.Description,
		Amount:        req.Amount,
		ExpenseDate:   expenseDate,
		Category:      category,
		TaxDeductible: taxDeductible,
		FinancialYear: dateutil.FinancialYearForDate(expenseDate, s.fyRegion),
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.expenseRepo.Create(ctx, &e); err != nil {
		return model.Expense{}, err
	}
	return e, nil
}

// UpdateExpense applies the non-nil fields of the request to an existing
// expense.
func (s *ExpenseService) UpdateExpense(ctx context.Context, expenseID string, req request.UpdateExpenseRequest) (model.Expense, error) {
	e, err := s.expenseRepo.Get(expenseID)
	if err != nil {
		return model.Expense{}, err
	}

	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Amount != nil {
		e.Amount = *req.Amount
	}
	if req.ExpenseDate != nil {
		expenseDate, err := time.Parse("2006-01-02", *req.ExpenseDate)
		if err != nil {
			return model.Expense{}, err
		}
		e.ExpenseDate = expenseDate
		e.FinancialYear = dateutil.FinancialYearForDate(expenseDate, s.fyRegion)
	}
	if req.Category != nil {
		e.Category = *req.Category
	}
	if req.TaxDeductible != nil {
		e.TaxDeductible = *req.TaxDeductible
	}

	if err := s.expenseRepo.Update(ctx, expenseID, &e); err != nil {
		return model.Expense{}, err
	}
	return e, nil
}

// DeleteExpense removes an expense by ID.
func (s *ExpenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	return s.expenseRepo.Delete(ctx, expenseID)
}
