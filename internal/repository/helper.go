package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/commishhq/commission-tracker-backend/internal/apperrors"
)

// ParseTime parses a date string in "2006-01-02" or RFC3339 format.
// Note: mirrors validation.ParseTime — both are intentionally kept local to avoid cross-layer imports.
func ParseTime(str string) (time.Time, error) {
	returnTime, err := time.Parse("2006-01-02", str)
	if err != nil {
		returnTime, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse date: %w", err)
		}
	}
	return returnTime.UTC(), nil
}

// wrapStoreErr classifies record store failures. SQLite busy/locked errors
// are the store's rate-limiting signal; they are wrapped as ErrRateLimited
// so retry.Policy can distinguish them from permanent failures.
func wrapStoreErr(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "SQLITE_LOCKED") || strings.Contains(msg, "database is locked") {
		return fmt.Errorf("%w: %v", apperrors.ErrRateLimited, err)
	}
	return err
}

// orderClause translates a list sort key into an ORDER BY clause.
// A leading '-' means descending. Keys are checked against the table's
// sortable column whitelist; unknown keys are rejected rather than
// interpolated.
func orderClause(sortKey, fallback string, sortable map[string]bool) (string, error) {
	if sortKey == "" {
		sortKey = fallback
	}
	direction := "ASC"
	column := sortKey
	if strings.HasPrefix(sortKey, "-") {
		direction = "DESC"
		column = sortKey[1:]
	}
	if !sortable[column] {
		return "", fmt.Errorf("%w: %s", apperrors.ErrInvalidSortKey, sortKey)
	}
	return fmt.Sprintf("ORDER BY %s %s", column, direction), nil
}
