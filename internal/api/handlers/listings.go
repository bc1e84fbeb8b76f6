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

// ListingHandler handles HTTP requests for active-listing endpoints.
type ListingHandler struct {
	listingService *service.ListingService
}

// NewListingHandler creates a new ListingHandler with the provided service dependency.
func NewListingHandler(listingService *service.ListingService) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
	}
}

// Listings handles GET requests to retrieve all listings.
//
// Endpoint: GET /api/listing
// Response: 200 OK with array of Listing
// Error: 400 Bad Request if the sort key is not sortable
// Error: 500 Internal Server Error if retrieval fails
func (h *ListingHandler) Listings(w http.ResponseWriter, r *http.Request) {
	listings, err := h.listingService.GetAllListings(r.URL.Query().Get("sort"))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidSortKey) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidSortKey.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveListings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, listings)
}

// Listing handles GET requests to retrieve a single listing.
//
// Endpoint: GET /api/listing/{uuid}
// Response: 200 OK with Listing
// Error: 404 Not Found if the listing does not exist
// Error: 500 Internal Server Error if retrieval fails
func (h *ListingHandler) Listing(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "uuid")

	listing, err := h.listingService.GetListing(listingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrListingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrListingNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveListings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, listing)
}

// CreateListing handles POST requests to create a new listing.
//
// Endpoint: POST /api/listing
// Request Body: CreateListingRequest
// Response: 201 Created with Listing
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *ListingHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateListingRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateListing(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	listing, err := h.listingService.CreateListing(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create listing", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, listing)
}

// UpdateListing handles PUT requests to update an existing listing.
//
// Endpoint: PUT /api/listing/{uuid}
// Request Body: UpdateListingRequest (all fields optional)
// Response: 200 OK with updated Listing
// Error: 404 Not Found if the listing does not exist
// Error: 500 Internal Server Error if update fails
func (h *ListingHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateListingRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateListing(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	listing, err := h.listingService.UpdateListing(r.Context(), listingID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrListingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrListingNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update listing", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, listing)
}

// DeleteListing handles DELETE requests to remove a listing.
//
// Endpoint: DELETE /api/listing/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if the listing does not exist
// Error: 500 Internal Server Error if deletion fails
func (h *ListingHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "uuid")

	err := h.listingService.DeleteListing(r.Context(), listingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrListingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrListingNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete listing", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// MarkSold handles POST requests to convert a listing into a settled sale.
// The listing is marked sold and a property record is created from it.
//
// Endpoint: POST /api/listing/{uuid}/sold
// Request Body: MarkListingSoldRequest
// Response: 201 Created with the new Property
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the listing does not exist
// Error: 500 Internal Server Error if conversion fails
func (h *ListingHandler) MarkSold(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.MarkListingSoldRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateMarkListingSold(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	property, err := h.listingService.MarkSold(r.Context(), listingID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrListingNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrListingNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to mark listing as sold", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, property)
}
