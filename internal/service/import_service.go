package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/commishhq/commission-tracker-backend/internal/agentbox"
	"github.com/commishhq/commission-tracker-backend/internal/api/request"
	"github.com/commishhq/commission-tracker-backend/internal/apperrors"
	"github.com/commishhq/commission-tracker-backend/internal/commission"
	"github.com/commishhq/commission-tracker-backend/internal/dateutil"
	"github.com/commishhq/commission-tracker-backend/internal/model"
	"github.com/commishhq/commission-tracker-backend/internal/repository"
	"github.com/commishhq/commission-tracker-backend/internal/retry"
)

// Two records refer to the same sale when their prices differ by less than
// a dollar (and address and settlement date agree).
const duplicatePriceTolerance = 1.0

// ProgressFunc receives state transitions during an import run. Callers that
// do not care pass nil.
type ProgressFunc func(state model.ImportRunState, message string)

// ImportService reconciles AgentBox CSV exports against the property store.
//
// An import is two calls. Preview parses, normalizes, and duplicate-checks
// the export, returning the full classified payload. Commit receives that
// payload back together with the operator's decision and applies it. The
// service holds no state between the calls, so a preview can be abandoned
// at no cost.
type ImportService struct {
	propertyRepo    *repository.PropertyRepository
	settingsService *SettingsService
	fyRegion        dateutil.Region
	retryPolicy     retry.Policy
	now             func() time.Time
}

// NewImportService creates a new ImportService with the provided dependencies.
// fyRegion sets the financial-year convention applied to imported rows.
func NewImportService(
	propertyRepo *repository.PropertyRepository,
	settingsService *SettingsService,
	fyRegion dateutil.Region,
	retryPolicy retry.Policy,
) *ImportService {
	return &ImportService{
		propertyRepo:    propertyRepo,
		settingsService: settingsService,
		fyRegion:        fyRegion,
		retryPolicy:     retryPolicy,
		now:             time.Now,
	}
}

// Preview runs the parse, normalize, and duplicate-check phases over a raw
// CSV export. Rows that are malformed, summary lines, or fail the sanity
// check are counted in SkippedRows, never imported silently wrong.
//
// Returns the run parked in awaiting_user_decision; the operator resolves it
// through Commit.
func (s *ImportService) Preview(ctx context.Context, csvText string, progress ProgressFunc) (model.ImportPreview, error) {
	notify(progress, model.ImportParsing, "parsing CSV export")

	rows := agentbox.ParseCSV(csvText)
	if len(rows) == 0 {
		return errorPreview("the file contains no data rows"), apperrors.ErrNoDataRows
	}

	valid, dropped := agentbox.FilterRows(rows)
	if len(valid) == 0 {
		return errorPreview("no valid property rows found in the file"), apperrors.ErrNoValidRows
	}

	notify(progress, model.ImportValidating, fmt.Sprintf("validating %d rows", len(valid)))

	settings, err := s.settingsService.GetSettings()
	if err != nil {
		return errorPreview("failed to load user settings"), err
	}

	records := make([]model.ImportRecord, 0, len(valid))
	skipped := dropped
	for _, row := range valid {
		record := agentbox.NormalizeRow(row, settings, s.fyRegion, s.now())
		if err := sanityCheck(record.Property); err != nil {
			skipped++
			continue
		}
		records = append(records, record)
	}
	if len(records) == 0 {
		return errorPreview("no valid property rows found in the file"), apperrors.ErrNoValidRows
	}

	notify(progress, model.ImportChecking, "checking for duplicates")

	var existing []model.Property
	err = s.retryPolicy.Do(ctx, func(ctx context.Context) error {
		var listErr error
		existing, listErr = s.propertyRepo.List("")
		return listErr
	})
	if err != nil {
		return errorPreview("failed to load existing records"), err
	}

	duplicates := []model.DuplicateMatch{}
	newRecords := []model.ImportRecord{}
	for _, record := range records {
		if match, found := findDuplicate(record, existing); found {
			duplicates = append(duplicates, model.DuplicateMatch{Existing: match, Incoming: record})
		} else {
			newRecords = append(newRecords, record)
		}
	}

	message := fmt.Sprintf("ready to import %d new records", len(newRecords))
	if len(duplicates) > 0 {
		message = fmt.Sprintf("found %d duplicates and %d new records", len(duplicates), len(newRecords))
	}
	notify(progress, model.ImportAwaitingDecision, message)

	return model.ImportPreview{
		State:       model.ImportAwaitingDecision,
		Message:     message,
		Duplicates:  duplicates,
		NewRecords:  newRecords,
		AllRecords:  records,
		SkippedRows: skipped,
	}, nil
}

// Commit resolves a previewed import with the operator's decision.
//
// skip_duplicates saves the new records only. replace_all deletes each
// matched existing record (tolerating ones already gone) and then saves
// every record from the preview. cancel persists nothing.
func (s *ImportService) Commit(ctx context.Context, req request.CommitImportRequest, progress ProgressFunc) (model.ImportResult, error) {
	switch req.Mode {
	case model.CommitCancel:
		return model.ImportResult{
			State:   model.ImportIdle,
			Message: "import cancelled",
			Skipped: len(req.AllRecords),
		}, nil

	case model.CommitSkipDuplicates:
		notify(progress, model.ImportSaving, fmt.Sprintf("saving %d new records", len(req.NewRecords)))

		created, err := s.saveRecords(ctx, req.NewRecords)
		if err != nil {
			return errorResult(created, 0), err
		}

		message := fmt.Sprintf("imported %d records, skipped %d duplicates", created, len(req.Duplicates))
		notify(progress, model.ImportSuccess, message)
		return model.ImportResult{
			State:   model.ImportSuccess,
			Message: message,
			Created: created,
			Skipped: len(req.Duplicates),
		}, nil

	case model.CommitReplaceAll:
		notify(progress, model.ImportSaving, fmt.Sprintf("replacing %d records", len(req.Duplicates)))

		deleted := 0
		for _, dup := range req.Duplicates {
			err := s.retryPolicy.Do(ctx, func(ctx context.Context) error {
				return s.propertyRepo.Delete(ctx, dup.Existing.ID)
			})
			// A record deleted out from under the import is already in the
			// desired state.
			if err != nil && !errors.Is(err, apperrors.ErrPropertyNotFound) {
				return errorResult(0, deleted), err
			}
			if err == nil {
				deleted++
			}
		}

		created, err := s.saveRecords(ctx, req.AllRecords)
		if err != nil {
			return errorResult(created, deleted), err
		}

		message := fmt.Sprintf("imported %d records, replaced %d existing", created, deleted)
		notify(progress, model.ImportSuccess, message)
		return model.ImportResult{
			State:   model.ImportSuccess,
			Message: message,
			Created: created,
			Deleted: deleted,
		}, nil

	default:
		return model.ImportResult{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidCommitMode, req.Mode)
	}
}

// saveRecords persists records one at a time, each with its own retry
// budget, and returns how many were created.
func (s *ImportService) saveRecords(ctx context.Context, records []model.ImportRecord) (int, error) {
	created := 0
	for _, record := range records {
		p := record.Property
		p.ID = uuid.New().String()
		p.CreatedAt = s.now().UTC()

		err := s.retryPolicy.Do(ctx, func(ctx context.Context) error {
			return s.propertyRepo.Create(ctx, &p)
		})
		if err != nil {
			return created, fmt.Errorf("%w: stopped after %d of %d records: %v",
				apperrors.ErrFailedToImportProperties, created, len(records), err)
		}
		created++
	}
	return created, nil
}

// findDuplicate reports whether an incoming record matches an existing one:
// same address ignoring case and whitespace runs, same settlement date, and
// sale price within a dollar.
func findDuplicate(record model.ImportRecord, existing []model.Property) (model.Property, bool) {
	address := normalizeAddress(record.Property.Address)
	date := record.Property.SettlementDate.Format("2006-01-02")
	for _, p := range existing {
		if normalizeAddress(p.Address) != address {
			continue
		}
		if p.SettlementDate.Format("2006-01-02") != date {
			continue
		}
		if math.Abs(p.SalePrice-record.Property.SalePrice) < duplicatePriceTolerance {
			return p, true
		}
	}
	return model.Property{}, false
}

func normalizeAddress(address string) string {
	return strings.Join(strings.Fields(strings.ToLower(address)), " ")
}

// sanityCheck rejects rows whose figures a strict breakdown would refuse,
// so corrupted export lines are counted instead of stored with wrong
// numbers.
func sanityCheck(p model.Property) error {
	_, err := commission.ComputeBreakdownStrict(commission.Input{
		SalePrice:            p.SalePrice,
		CommissionPercentage: p.CommissionPercentage,
		GSTInclusive:         p.GSTInclusive,
		MarketingLevy:        commission.Fee{Type: p.MarketingLevyType, Value: p.MarketingLevyValue},
		FranchiseFee:         commission.Fee{Type: p.FranchiseFeeType, Value: p.FranchiseFeeValue},
		TransactionFee:       commission.Fee{Type: p.TransactionFeeType, Value: p.TransactionFeeValue},
		OtherFees:            p.OtherFees,
		AgentCount:           p.AgentCount,
	})
	return err
}

func notify(progress ProgressFunc, state model.ImportRunState, message string) {
	if progress != nil {
		progress(state, message)
	}
}

func errorPreview(message string) model.ImportPreview {
	return model.ImportPreview{State: model.ImportError, Message: message}
}

func errorResult(created, deleted int) model.ImportResult {
	return model.ImportResult{
		State:   model.ImportError,
		Message: "import failed part way through; re-run the preview to reconcile",
		Created: created,
		Deleted: deleted,
	}
}
