package validation

import (
	"fmt"
	"strings"

	"github.com/commishhq/commission-tracker-backend/internal/api/request"
)

var ValidExpenseCategory = map[string]bool{
	"marketing": true, "vehicle": true, "office": true, "professional": true, "other": true,
}

func ValidateCreateExpense(req request.CreateExpenseRequest) error {
	errors := make(map[string]string)

	if req.Amount <= 0 {
		errors["amount"] = "amount must be greater than zero"
	}
	if strings.TrimSpace(req.ExpenseDate) == "" {
		errors["expenseDate"] = "expense date is required"
	} else if !ValidDate(req.ExpenseDate) {
		errors["expenseDate"] = "expense date must be in YYYY-MM-DD format"
	}
	if req.Category != "" && !ValidExpenseCategory[req.Category] {
		errors["category"] = fmt.Sprintf("invalid category: %s", req.Category)
	}
	if len(req.Description) > 255 {
		errors["description"] = "description must be 255 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateExpense(req request.UpdateExpenseRequest) error {
	errors := make(map[string]string)

	if req.Amount != nil && *req.Amount <= 0 {
		errors["amount"] = "amount must be greater than zero"
	}
	if req.ExpenseDate != nil && !ValidDate(*req.ExpenseDate) {
		errors["expenseDate"] = "expense date must be in YYYY-MM-DD format"
	}
	if req.Category != nil && !ValidExpenseCategory[*req.Category] {
		errors["category"] = fmt.Sprintf("invalid category: %s", *req.Category)
	}
	if req.Description != nil && len(*req.Description) > 255 {
		errors["description"] = "description must be 255 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
