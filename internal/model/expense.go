package model

import "time"

// Valid expense categories.
const (
	ExpenseMarketing    = "marketing"
	ExpenseVehicle      = "vehicle"
	ExpenseOffice       = "office"
	ExpenseProfessional = "professional"
	ExpenseOther        = "other"
)

// Expense represents a business expense attributed to a financial year.
type Expense struct {
	ID            string    `json:"id"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	ExpenseDate   time.Time `json:"expense_date"`
	Category      string    `json:"category"`
	TaxDeductible bool      `json:"tax_deductible"`
	FinancialYear string    `json:"financial_year"`
	CreatedAt     time.Time `json:"created_at"`
}
