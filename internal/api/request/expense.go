package request

type CreateExpenseRequest struct {
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	ExpenseDate   string  `json:"expense_date"`
	Category      string  `json:"category"`
	TaxDeductible *bool   `json:"tax_deductible"`
}

type UpdateExpenseRequest struct {
	Description   *string  `json:"description"`
	Amount        *float64 `json:"amount"`
	ExpenseDate   *string  `json:"expense_date"`
	Category      *string  `json:"category"`
	TaxDeductible *bool    `json:"tax_deductible"`
}
