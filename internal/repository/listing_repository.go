package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/commishhq/commission-tracker-backend/internal/apperrors"
	"github.com/commishhq/commission-tracker-backend/internal/model"
)

// ListingRepository provides data access methods for the listing table.
type ListingRepository struct {
	db *sql.DB
}

// NewListingRepository creates a new ListingRepository with the provided database connection.
func NewListingRepository(db *sql.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

var listingSortable = map[string]bool{
	"listed_date":          true,
	"estimated_sale_price": true,
	"address":              true,
	"status":               true,
	"created_at":           true,
}

const listingColumns = `
	id, address, estimated_sale_price, commission_percentage, estimated_commission,
	listed_date, status, client_name, property_type, notes, created_at
`

// List retrieves all listings ordered by the given sort key
// (newest listed first by default).
func (r *ListingRepository) List(sortKey string) ([]model.Listing, error) {
	order, err := orderClause(sortKey, "-listed_date", listingSortable)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query("SELECT " + listingColumns + " FROM listing " + order)
	if err != nil {
		return nil, wrapStoreErr(fmt.Errorf("failed to query listing table: %w", err))
	}
	defer rows.Close()

	listings := []model.Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating listing table: %w", err)
	}

	return listings, nil
}

// Get retrieves a single listing by ID.
func (r *ListingRepository) Get(id string) (model.Listing, error) {
	row := r.db.QueryRow("SELECT "+listingColumns+" FROM listing WHERE id = ?", id)
	l, err := scanListing(row)
	if err == sql.ErrNoRows {
		return model.Listing{}, apperrors.ErrListingNotFound
	}
	if err != nil {
		return model.Listing{}, err
	}
	return l, nil
}

// Create inserts a new listing record.
func (r *ListingRepository) Create(ctx context.Context, l *model.Listing) error {
	query := `
		INSERT INTO listing (` + listingColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		l.ID, l.Address, l.EstimatedSalePrice, l.CommissionPercentage, l.EstimatedCommission,
		l.ListedDate.Format("2006-01-02"), l.Status, l.ClientName, l.PropertyType, l.Notes,
		l.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	)
	if err != nil {
		return wrapStoreErr(fmt.Errorf("failed to insert listing: %w", err))
	}
	return nil
}

// Update replaces all mutable fields of an existing listing.
func (r *ListingRepository) Update(ctx context.Context, id string, l *model.Listing) error {
	query := `
		UPDATE listing SET
			address = ?, estimated_sale_price = ?, commission_percentage = ?,
			estimated_commission = ?, listed_date = ?, status = ?,
			client_name = ?, property_type = ?, notes = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		l.Address, l.EstimatedSalePrice, l.CommissionPercentage,
		l.EstimatedCommission, l.ListedDate.Format("2006-01-02"), l.Status,
		l.ClientName, l.PropertyType, l.Notes,
		id,
	)
	if err != nil {
		return wrapStoreErr(fmt.Errorf("failed to update listing: %w", err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrListingNotFound
	}
	return nil
}

// Delete removes a listing by ID.
func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM listing WHERE id = ?", id)
	if err != nil {
		return wrapStoreErr(fmt.Errorf("failed to delete listing: %w", err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrListingNotFound
	}
	return nil
}

func scanListing(row rowScanner) (model.Listing, error) {
	var l model.Listing
	var listedStr, createdAtStr string
	var clientName, notes sql.NullString

	err := row.Scan(
		&l.ID, &l.Address, &l.EstimatedSalePrice, &l.CommissionPercentage, &l.EstimatedCommission,
		&listedStr, &l.Status, &clientName, &l.PropertyType, &notes, &createdAtStr,
	)
	if err == sql.ErrNoRows {
		return model.Listing{}, err
	}
	if err != nil {
		return model.Listing{}, fmt.Errorf("failed to scan listing table results: %w", err)
	}

	l.ListedDate, err = ParseTime(listedStr)
	if err != nil {
		return model.Listing{}, fmt.Errorf("failed to parse listed date: %w", err)
	}
	l.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Listing{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if clientName.Valid {
		l.ClientName = clientName.String
	}
	if notes.Valid {
		l.Notes = notes.String
	}

	return l, nil
}
