package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/commishhq/commission-tracker-backend/internal/api/request"
	"github.com/commishhq/commission-tracker-backend/internal/api/response"
	"github.com/commishhq/commission-tracker-backend/internal/apperrors"
	"github.com/commishhq/commission-tracker-backend/internal/service"
	"github.com/commishhq/commission-tracker-backend/internal/validation"
)

// ExpenseHandler handles HTTP requests for expense endpoints.
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler with the provided service dependency.
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
	}
}

// Expenses handles GET requests to retrieve all expenses.
// The optional "financial_year" query parameter filters by year.
//
// Endpoint: GET /api/expense
// Response: 200 OK with array of Expense
// Error: 400 Bad Request if the sort key is not sortable
// Error: 500 Internal Server Error if retrieval fails
func (h *ExpenseHandler) Expenses(w http.ResponseWriter, r *http.Request) {
	var err error
	var expenses interface{}

	if fy := r.URL.Query().Get("financial_year"); fy != "" {
		expenses, err = h.expenseService.GetExpensesByFinancialYear(fy)
	} else {
		expenses, err = h.expenseService.GetAllExpenses(r.URL.Query().Get("sort"))
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidSortKey) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidSortKey.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveExpenses.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, expenses)
}

// CreateExpense handles POST requests to create a new expense.
//
// Endpoint: POST /api/expense
// Request Body: CreateExpenseRequest
// Response: 201 Created with Expense
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateExpenseRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateExpense(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	expense, err := h.expenseService.CreateExpense(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create expense", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, expense)
}

// UpdateExpense handles PUT requests to update an existing expense.
//
// Endpoint: PUT /api/expense/{uuid}
// Request Body: UpdateExpenseRequest (all fields optional)
// Response: 200 OK with updated Expense
// Error: 404 Not Found if the expense does not exist
// Error: 500 Internal Server Error if update fails
func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateExpenseRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateExpense(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	expense, err := h.expenseService.UpdateExpense(r.Context(), expenseID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrExpenseNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrExpenseNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update expense", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, expense)
}

// DeleteExpense handles DELETE requests to remove an expense.
//
// Endpoint: DELETE /api/expense/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if the expense does not exist
// Error: 500 Internal Server Error if deletion fails
func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "uuid")

	err := h.expenseService.DeleteExpense(r.Context(), expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrExpenseNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrExpenseNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete expense", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
