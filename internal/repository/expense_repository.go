package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/commishhq/commission-tracker-backend/internal/apperrors"
	"github.com/commishhq/commission-tracker-backend/internal/model"
)

// ExpenseRepository provides data access methods for the expense table.
type ExpenseRepository struct {
	db *sql.DB
}

// NewExpenseRepository creates a new ExpenseRepository with the provided database connection.
func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

var expenseSortable = map[string]bool{
	"expense_date":   true,
	"amount":         true,
	"category":       true,
	"financial_year": true,
	"created_at":     true,
}

const expenseColumns = `
	id, description, amount, expense_date, category, tax_deductible, financial_year, created_at
`

// List retrieves all expenses ordered by the given sort key
// (newest expense first by default).
func (r *ExpenseRepository) List(sortKey string) ([]model.Expense, error) {
	order, err := orderClause(sortKey, "-expense_date", expenseSortable)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query("SELECT " + expenseColumns + " FROM expense " + order)
	if err != nil {
		return nil, wrapStoreErr(fmt.Errorf("failed to query expense table: %w", err))
	}
	defer rows.Close()

	return collectExpenses(rows)
}

// ListByFinancialYear retrieves all expenses attributed to the given
// financial year, newest first.
func (r *ExpenseRepository) ListByFinancialYear(financialYear string) ([]model.Expense, error) {
	rows, err := r.db.Query(
		"SELECT "+expenseColumns+" FROM expense WHERE financial_year = ? ORDER BY expense_date DESC",
		financialYear,
	)
	if err != nil {
		return nil, wrapStoreErr(fmt.Errorf("failed to query expense table: %w", err))
	}
	defer rows.Close()

	return collectExpenses(rows)
}

// Get retrieves a single expense by ID.
func (r *ExpenseRepository) Get(id string) (model.Expense, error) {
	row := r.db.QueryRow("SELECT "+expenseColumns+" FROM expense WHERE id = ?", id)
	e, err := scanExpense(row)
	if err == sql.ErrNoRows {
		return model.Expense{}, apperrors.ErrExpenseNotFound
	}
	if err != nil {
		return model.Expense{}, err
	}
	return e, nil
}

// Create inserts a new expense record.
func (r *ExpenseRepository) Create(ctx context.Context, e *model.Expense) error {
	query := `
		INSERT INTO expense (` + expenseColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.Description, e.Amount, e.ExpenseDate.Format("2006-01-02"),
		e.Category, e.TaxDeductible, e.FinancialYear,
		e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	)
	if err != nil {
		return wrapStoreErr(fmt.Errorf("failed to insert expense: %w", err))
	}
	return nil
}

// Update replaces all mutable fields of an existing expense.
func (r *ExpenseRepository) Update(ctx context.Context, id string, e *model.Expense) error {
	query := `
		UPDATE expense SET
			description = ?, amount = ?, expense_date = ?, category = ?,
			tax_deductible = ?, financial_year = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		e.Description, e.Amount, e.ExpenseDate.Format("2006-01-02"), e.Category,
		e.TaxDeductible, e.FinancialYear,
		id,
	)
	if err != nil {
		return wrapStoreErr(fmt.Errorf("failed to update expense: %w", err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}

// Delete removes an expense by ID.
func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM expense WHERE id = ?", id)
	if err != nil {
		return wrapStoreErr(fmt.Errorf("failed to delete expense: %w", err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}

func collectExpenses(rows *sql.Rows) ([]model.Expense, error) {
	expenses := []model.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense table: %w", err)
	}

	return expenses, nil
}

func scanExpense(row rowScanner) (model.Expense, error) {
	var e model.Expense
	var expenseDateStr, createdAtStr string
	var description sql.NullString

	err := row.Scan(
		&e.ID, &description, &e.Amount, &expenseDateStr,
		&e.Category, &e.TaxDeductible, &e.FinancialYear, &createdAtStr,
	)
	if err == sql.ErrNoRows {
		return model.Expense{}, err
	}
	if err != nil {
		return model.Expense{}, fmt.Errorf("failed to scan expense table results: %w", err)
	}

	e.ExpenseDate, err = ParseTime(expenseDateStr)
	if err != nil {
		return model.Expense{}, fmt.Errorf("failed to parse expense date: %w", err)
	}
	e.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Expense{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if description.Valid {
		e.Description = description.String
	}

	return e, nil
}
