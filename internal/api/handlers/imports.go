package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/commishhq/commission-tracker-backend/internal/api/request"
	"github.com/commishhq/commission-tracker-backend/internal/api/response"
	"github.com/commishhq/commission-tracker-backend/internal/apperrors"
	"github.com/commishhq/commission-tracker-backend/internal/model"
	"github.com/commishhq/commission-tracker-backend/internal/service"
	"github.com/commishhq/commission-tracker-backend/internal/validation"
)

// Uploaded exports are small; a year of sales fits well under a megabyte.
const maxImportSize = 10 << 20

// ImportHandler handles HTTP requests for the CSV import endpoints.
type ImportHandler struct {
	importService *service.ImportService
}

// NewImportHandler creates a new ImportHandler with the provided service dependency.
func NewImportHandler(importService *service.ImportService) *ImportHandler {
	return &ImportHandler{
		importService: importService,
	}
}

// Preview handles POST requests to parse and duplicate-check a CSV export.
// The file arrives either as a multipart form field named "file" or as the
// raw request body. The response carries the full classified payload, which
// the caller echoes back to Commit together with a decision.
//
// Endpoint: POST /api/imports/preview
// Response: 200 OK with ImportPreview (state awaiting_user_decision)
// Error: 400 Bad Request if the file is empty or contains no valid rows
// Error: 500 Internal Server Error if the duplicate check fails
func (h *ImportHandler) Preview(w http.ResponseWriter, r *http.Request) {
	csvText, err := readImportFile(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "failed to read import file", err.Error())
		return
	}

	preview, err := h.importService.Preview(r.Context(), csvText, logProgress)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoDataRows) || errors.Is(err, apperrors.ErrNoValidRows) {
			response.RespondError(w, http.StatusBadRequest, preview.Message, err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, preview.Message, err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, preview)
}

// Commit handles POST requests to resolve a previewed import.
//
// Endpoint: POST /api/imports/commit
// Request Body: CommitImportRequest (mode plus the echoed preview payload)
// Response: 200 OK with ImportResult
// Error: 400 Bad Request if the mode is unknown or the payload is invalid
// Error: 500 Internal Server Error if saving fails part way through
func (h *ImportHandler) Commit(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CommitImportRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCommitImport(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	result, err := h.importService.Commit(r.Context(), req, logProgress)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCommitMode) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidCommitMode.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToImportProperties.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}

// readImportFile extracts the CSV text from a multipart "file" field when
// present, otherwise from the raw request body.
func readImportFile(r *http.Request) (string, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxImportSize)

	if err := r.ParseMultipartForm(maxImportSize); err == nil {
		file, _, err := r.FormFile("file")
		if err == nil {
			defer file.Close()
			data, err := io.ReadAll(file)
			if err != nil {
				return "", err
			}
			return string(data), nil
		}
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func logProgress(state model.ImportRunState, message string) {
	log.Printf("import %s: %s", state, message)
}
