package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/commishhq/commission-tracker-backend/internal/api/request"
	"github.com/commishhq/commission-tracker-backend/internal/apperrors"
	"github.com/commishhq/commission-tracker-backend/internal/model"
	"github.com/commishhq/commission-tracker-backend/internal/testutil"
)

// TestExpenseService_CreateExpense tests expense creation.
//
// WHY: Expenses feed the net-income figure per financial year. Attributing
// one to the wrong year shifts reported income between tax years.
func TestExpenseService_CreateExpense(t *testing.T) {
	t.Run("attributes the expense to its date's financial year", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestExpenseService(t, db)

		cases := []struct {
			date string
			want string
		}{
			{"2024-08-01", "2024-25"},
			{"2024-03-01", "2023-24"},
		}

		for _, tc := range cases {
			// Execute
			e, err := svc.CreateExpense(context.Background(), request.CreateExpenseRequest{
				Description: "Signboard printing",
				Amount:      250,
				ExpenseDate: tc.date,
				Category:    model.ExpenseMarketing,
			})

			// Assert
			if err != nil {
				t.Fatalf("CreateExpense(%s) returned unexpected error: %v", tc.date, err)
			}
			if e.FinancialYear != tc.want {
				t.Errorf("Date %s: expected financial year %s, got %s", tc.date, tc.want, e.FinancialYear)
			}
		}
	})

	t.Run("defaults category and tax deductibility", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestExpenseService(t, db)

		// Execute
		e, err := svc.CreateExpense(context.Background(), request.CreateExpenseRequest{
			Description: "Misc",
			Amount:      100,
			ExpenseDate: "2024-08-01",
		})

		// Assert
		if err != nil {
			t.Fatalf("CreateExpense() returned unexpected error: %v", err)
		}
		if e.Category != model.ExpenseOther {
			t.Errorf("Expected default category other, got %q", e.Category)
		}
		if !e.TaxDeductible {
			t.Error("Expected tax deductible by default")
		}
	})
}

// TestExpenseService_UpdateExpense tests partial updates.
func TestExpenseService_UpdateExpense(t *testing.T) {
	t.Run("rederives the financial year when the date changes", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestExpenseService(t, db)

		created, err := svc.CreateExpense(context.Background(), request.CreateExpenseRequest{
			Description: "Signboard printing",
			Amount:      250,
			ExpenseDate: "2024-08-01",
		})
		if err != nil {
			t.Fatalf("CreateExpense() returned unexpected error: %v", err)
		}

		// Execute
		updated, err := svc.UpdateExpense(context.Background(), created.ID, request.UpdateExpenseRequest{
			ExpenseDate: ptrString("2024-03-01"),
		})

		// Assert
		if err != nil {
			t.Fatalf("UpdateExpense() returned unexpected error: %v", err)
		}
		if updated.FinancialYear != "2023-24" {
			t.Errorf("Expected rederived financial year 2023-24, got %s", updated.FinancialYear)
		}
	})

	t.Run("returns ErrExpenseNotFound for unknown ID", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestExpenseService(t, db)

		// Execute
		_, err := svc.UpdateExpense(context.Background(), testutil.MakeID(), request.UpdateExpenseRequest{})

		// Assert
		if !errors.Is(err, apperrors.ErrExpenseNotFound) {
			t.Errorf("Expected ErrExpenseNotFound, got %v", err)
		}
	})
}

// TestExpenseService_GetExpensesByFinancialYear tests year filtering.
func TestExpenseService_GetExpensesByFinancialYear(t *testing.T) {
	t.Run("returns only matching financial year", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestExpenseService(t, db)

		testutil.NewExpense().WithFinancialYear("2024-25").Build(t, db)
		testutil.NewExpense().WithFinancialYear("2023-24").Build(t, db)

		// Execute
		expenses, err := svc.GetExpensesByFinancialYear("2024-25")

		// Assert
		if err != nil {
			t.Fatalf("GetExpensesByFinancialYear() returned unexpected error: %v", err)
		}
		if len(expenses) != 1 {
			t.Errorf("Expected 1 expense, got %d", len(expenses))
		}
	})
}
