package validation

import (
	"fmt"

	"github.com/commishhq/commission-tracker-backend/internal/api/request"
	"github.com/commishhq/commission-tracker-backend/internal/apperrors"
)

var ValidCommitMode = map[string]bool{
	"skip_duplicates": true, "replace_all": true, "cancel": true,
}

// ValidateCommitImport checks the commit mode and the echoed preview payload.
func ValidateCommitImport(req request.CommitImportRequest) error {
	if !ValidCommitMode[req.Mode] {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidCommitMode, req.Mode)
	}

	errors := make(map[string]string)
	for i, d := range req.Duplicates {
		if d.Existing.ID == "" {
			errors[fmt.Sprintf("duplicates[%d]", i)] = "existing record ID is required"
		}
	}
	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
