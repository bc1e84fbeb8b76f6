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

// PropertyHandler handles HTTP requests for sold-property endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the propertyService.
type PropertyHandler struct {
	propertyService *service.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler with the provided service dependency.
func NewPropertyHandler(propertyService *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
	}
}

// Properties handles GET requests to retrieve all properties.
// The optional "sort" query parameter orders the result; a leading '-'
// sorts descending. The optional "financial_year" parameter filters by year.
//
// Endpoint: GET /api/property
// Response: 200 OK with array of Property
// Error: 400 Bad Request if the sort key is not sortable
// Error: 500 Internal Server Error if retrieval fails
func (h *PropertyHandler) Properties(w http.ResponseWriter, r *http.Request) {
	var err error
	var properties interface{}

	if fy := r.URL.Query().Get("financial_year"); fy != "" {
		properties, err = h.propertyService.GetPropertiesByFinancialYear(fy)
	} else {
		properties, err = h.propertyService.GetAllProperties(r.URL.Query().Get("sort"))
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidSortKey) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidSortKey.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveProperties.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, properties)
}

// Property handles GET requests to retrieve a single property.
//
// Endpoint: GET /api/property/{uuid}
// Response: 200 OK with Property
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if the property does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *PropertyHandler) Property(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "uuid")

	property, err := h.propertyService.GetProperty(propertyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPropertyNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveProperties.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, property)
}

// CreateProperty handles POST requests to create a new property.
// The commission breakdown is computed server-side; the request carries raw
// inputs only.
//
// Endpoint: POST /api/property
// Request Body: CreatePropertyRequest
// Response: 201 Created with Property
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreatePropertyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateProperty(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	property, err := h.propertyService.CreateProperty(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create property", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, property)
}

// UpdateProperty handles PUT requests to update an existing property.
// All fields are optional; the breakdown is recomputed after the update.
//
// Endpoint: PUT /api/property/{uuid}
// Request Body: UpdatePropertyRequest
// Response: 200 OK with updated Property
// Error: 400 Bad Request if the ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if the property does not exist
// Error: 500 Internal Server Error if update fails
func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdatePropertyRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateProperty(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	property, err := h.propertyService.UpdateProperty(r.Context(), propertyID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPropertyNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update property", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, property)
}

// DeleteProperty handles DELETE requests to remove a property.
//
// Endpoint: DELETE /api/property/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if the ID is invalid (validated by middleware)
// Error: 404 Not Found if the property does not exist
// Error: 500 Internal Server Error if deletion fails
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "uuid")

	err := h.propertyService.DeleteProperty(r.Context(), propertyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPropertyNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPropertyNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete property", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
