package service

import (
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/commishhq/commission-tracker-backend/internal/database"
	"github.com/commishhq/commission-tracker-backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{
		db: db,
	}
}

// VersionInfo reports the application version and the applied schema version.
type VersionInfo struct {
	AppVersion    string `json:"app_version"`
	SchemaVersion int64  `json:"schema_version"`
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion returns the application version and the current migration
// version of the database schema.
func (s *SystemService) CheckVersion() (VersionInfo, error) {
	schemaVersion, err := goose.GetDBVersion(s.db)
	if err != nil {
		return VersionInfo{}, err
	}
	return VersionInfo{
		AppVersion:    version.Version,
		SchemaVersion: schemaVersion,
	}, nil
}
