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

// PipelineHandler handles HTTP requests for prospecting-pipeline endpoints.
type PipelineHandler struct {
	pipelineService *service.PipelineService
}

// NewPipelineHandler creates a new PipelineHandler with the provided service dependency.
func NewPipelineHandler(pipelineService *service.PipelineService) *PipelineHandler {
	return &PipelineHandler{
		pipelineService: pipelineService,
	}
}

// Opportunities handles GET requests to retrieve all pipeline opportunities.
// Weighted values are populated on every returned opportunity.
//
// Endpoint: GET /api/pipeline
// Response: 200 OK with array of PipelineOpportunity
// Error: 400 Bad Request if the sort key is not sortable
// Error: 500 Internal Server Error if retrieval fails
func (h *PipelineHandler) Opportunities(w http.ResponseWriter, r *http.Request) {
	opportunities, err := h.pipelineService.GetAllOpportunities(r.URL.Query().Get("sort"))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidSortKey) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidSortKey.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePipeline.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, opportunities)
}

// Opportunity handles GET requests to retrieve a single pipeline opportunity.
//
// Endpoint: GET /api/pipeline/{uuid}
// Response: 200 OK with PipelineOpportunity
// Error: 404 Not Found if the opportunity does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *PipelineHandler) Opportunity(w http.ResponseWriter, r *http.Request) {
	opportunityID := chi.URLParam(r, "uuid")

	opportunity, err := h.pipelineService.GetOpportunity(opportunityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPipelineNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPipelineNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePipeline.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, opportunity)
}

// CreateOpportunity handles POST requests to create a new pipeline opportunity.
//
// Endpoint: POST /api/pipeline
// Request Body: CreatePipelineRequest
// Response: 201 Created with PipelineOpportunity
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *PipelineHandler) CreateOpportunity(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreatePipelineRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreatePipeline(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	opportunity, err := h.pipelineService.CreateOpportunity(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create pipeline opportunity", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, opportunity)
}

// UpdateOpportunity handles PUT requests to update an existing opportunity.
//
// Endpoint: PUT /api/pipeline/{uuid}
// Request Body: UpdatePipelineRequest (all fields optional)
// Response: 200 OK with updated PipelineOpportunity
// Error: 404 Not Found if the opportunity does not exist
// Error: 500 Internal Server Error if update fails
func (h *PipelineHandler) UpdateOpportunity(w http.ResponseWriter, r *http.Request) {
	opportunityID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdatePipelineRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdatePipeline(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	opportunity, err := h.pipelineService.UpdateOpportunity(r.Context(), opportunityID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrPipelineNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPipelineNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update pipeline opportunity", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, opportunity)
}

// DeleteOpportunity handles DELETE requests to remove an opportunity.
//
// Endpoint: DELETE /api/pipeline/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if the opportunity does not exist
// Error: 500 Internal Server Error if deletion fails
func (h *PipelineHandler) DeleteOpportunity(w http.ResponseWriter, r *http.Request) {
	opportunityID := chi.URLParam(r, "uuid")

	err := h.pipelineService.DeleteOpportunity(r.Context(), opportunityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPipelineNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPipelineNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete pipeline opportunity", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// ConvertToListing handles POST requests to promote an opportunity into an
// active listing. The opportunity moves to the listed stage.
//
// Endpoint: POST /api/pipeline/{uuid}/convert
// Response: 201 Created with the new Listing
// Error: 404 Not Found if the opportunity does not exist
// Error: 500 Internal Server Error if conversion fails
func (h *PipelineHandler) ConvertToListing(w http.ResponseWriter, r *http.Request) {
	opportunityID := chi.URLParam(r, "uuid")

	listing, err := h.pipelineService.ConvertToListing(r.Context(), opportunityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPipelineNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPipelineNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to convert opportunity", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, listing)
}
