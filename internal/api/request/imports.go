package request

import "github.com/commishhq/commission-tracker-backend/internal/model"

// CommitImportRequest resolves a previewed import. The preview payload is
// echoed back by the caller; the reconciler holds no state between the
// preview and commit calls.
type CommitImportRequest struct {
	Mode       string                 `json:"mode"`
	Duplicates []model.DuplicateMatch `json:"duplicates"`
	NewRecords []model.ImportRecord   `json:"new_records"`
	AllRecords []model.ImportRecord   `json:"all_records"`
}
