package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/commishhq/commission-tracker-backend/internal/apperrors"
	"github.com/commishhq/commission-tracker-backend/internal/model"
)

// PipelineRepository provides data access methods for the pipeline table.
type PipelineRepository struct {
	db *sql.DB
}

// NewPipelineRepository creates a new PipelineRepository with the provided database connection.
func NewPipelineRepository(db *sql.DB) *PipelineRepository {
	return &PipelineRepository{db: db}
}

var pipelineSortable = map[string]bool{
	"expected_settlement":  true,
	"estimated_sale_price": true,
	"probability":          true,
	"stage":                true,
	"created_at":           true,
}

const pipelineColumns = `
	id, address, estimated_sale_price, commission_percentage, estimated_commission,
	probability, expected_settlement, stage, client_name, notes, created_at
`

// List retrieves all pipeline opportunities ordered by the given sort key
// (soonest expected settlement first by default). Weighted values are
// derived on scan; they are not stored.
func (r *PipelineRepository) List(sortKey string) ([]model.PipelineOpportunity, error) {
	order, err := orderClause(sortKey, "expected_settlement", pipelineSortable)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query("SELECT " + pipelineColumns + " FROM pipeline " + order)
	if err != nil {
		return nil, wrapStoreErr(fmt.Errorf("failed to query pipeline table: %w", err))
	}
	defer rows.Close()

	opportunities := []model.PipelineOpportunity{}
	for rows.Next() {
		o, err := scanPipeline(rows)
		if err != nil {
			return nil, err
		}
		opportunities = append(opportunities, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pipeline table: %w", err)
	}

	return opportunities, nil
}

// Get retrieves a single pipeline opportunity by ID.
func (r *PipelineRepository) Get(id string) (model.PipelineOpportunity, error) {
	row := r.db.QueryRow("SELECT "+pipelineColumns+" FROM pipeline WHERE id = ?", id)
	o, err := scanPipeline(row)
	if err == sql.ErrNoRows {
		return model.PipelineOpportunity{}, apperrors.ErrPipelineNotFound
	}
	if err != nil {
		return model.PipelineOpportunity{}, err
	}
	return o, nil
}

// Create inserts a new pipeline opportunity.
func (r *PipelineRepository) Create(ctx context.Context, o *model.PipelineOpportunity) error {
	query := `
		INSERT INTO pipeline (
			id, address, estimated_sale_price, commission_percentage, estimated_commission,
			probability, expected_settlement, stage, client_name, notes, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		o.ID, o.Address, o.EstimatedSalePrice, o.CommissionPercentage, o.EstimatedCommission,
		o.Probability, o.ExpectedSettlement.Format("2006-01-02"), o.Stage, o.ClientName, o.Notes,
		o.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	)
	if err != nil {
		return wrapStoreErr(fmt.Errorf("failed to insert pipeline opportunity: %w", err))
	}
	return nil
}

// Update replaces all mutable fields of an existing opportunity.
func (r *PipelineRepository) Update(ctx context.Context, id string, o *model.PipelineOpportunity) error {
	query := `
		UPDATE pipeline SET
			address = ?, estimated_sale_price = ?, commission_percentage = ?,
			estimated_commission = ?, probability = ?, expected_settlement = ?,
			stage = ?, client_name = ?, notes = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		o.Address, o.EstimatedSalePrice, o.CommissionPercentage,
		o.EstimatedCommission, o.Probability, o.ExpectedSettlement.Format("2006-01-02"),
		o.Stage, o.ClientName, o.Notes,
		id,
	)
	if err != nil {
		return wrapStoreErr(fmt.Errorf("failed to update pipeline opportunity: %w", err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPipelineNotFound
	}
	return nil
}

// Delete removes a pipeline opportunity by ID.
func (r *PipelineRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM pipeline WHERE id = ?", id)
	if err != nil {
		return wrapStoreErr(fmt.Errorf("failed to delete pipeline opportunity: %w", err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPipelineNotFound
	}
	return nil
}

func scanPipeline(row rowScanner) (model.PipelineOpportunity, error) {
	var o model.PipelineOpportunity
	var settlementStr, createdAtStr string
	var clientName, notes sql.NullString

	err := row.Scan(
		&o.ID, &o.Address, &o.EstimatedSalePrice, &o.CommissionPercentage, &o.EstimatedCommission,
		&o.Probability, &settlementStr, &o.Stage, &clientName, &notes, &createdAtStr,
	)
	if err == sql.ErrNoRows {
		return model.PipelineOpportunity{}, err
	}
	if err != nil {
		return model.PipelineOpportunity{}, fmt.Errorf("failed to scan pipeline table results: %w", err)
	}

	o.ExpectedSettlement, err = ParseTime(settlementStr)
	if err != nil {
		return model.PipelineOpportunity{}, fmt.Errorf("failed to parse expected settlement: %w", err)
	}
	o.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.PipelineOpportunity{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if clientName.Valid {
		o.ClientName = clientName.String
	}
	if notes.Valid {
		o.Notes = notes.String
	}

	return o, nil
}
