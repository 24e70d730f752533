package listing

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const listingColumns = `id, make, model, year, price, mileage, condition, transmission,
	fuel_type, body_type, exterior_color, interior_color, description, features,
	image_url, location, vin, created_at, updated_at`

// Store reads and writes listings in a SQL database. Queries use $n placeholders,
// which both pgx and sqlite3 accept.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (Listing, error) {
	var (
		l        Listing
		cond     string
		features string
		vin      sql.NullString
	)
	err := row.Scan(
		&l.ID, &l.Make, &l.Model, &l.Year, &l.Price, &l.Mileage, &cond, &l.Transmission,
		&l.FuelType, &l.BodyType, &l.ExteriorColor, &l.InteriorColor, &l.Description, &features,
		&l.ImageURL, &l.Location, &vin, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return Listing{}, err
	}

	l.Condition = Condition(cond)
	if vin.Valid && vin.String != "" {
		v := vin.String
		l.VIN = &v
	}
	l.Features = []string{}
	if features != "" {
		if err := json.Unmarshal([]byte(features), &l.Features); err != nil {
			return Listing{}, fmt.Errorf("listing %s: bad features column: %w", l.ID, err)
		}
	}
	return l, nil
}

// ListNewestFirst returns every listing ordered by creation time, newest first.
func (s *Store) ListNewestFirst(ctx context.Context) ([]Listing, error) {
	query := "SELECT " + listingColumns + " FROM listings ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying listings: %w", err)
	}
	defer rows.Close()

	listings := []Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating listings: %w", err)
	}
	return listings, nil
}

// Get returns a single listing or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Listing, error) {
	query := "SELECT " + listingColumns + " FROM listings WHERE id = $1"

	l, err := scanListing(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Listing{}, ErrNotFound
	}
	if err != nil {
		return Listing{}, fmt.Errorf("error getting listing %s: %w", id, err)
	}
	return l, nil
}

// Insert validates and stores a listing, assigning an ID and timestamps when
// they are unset. It returns the stored listing.
func (s *Store) Insert(ctx context.Context, l Listing) (Listing, error) {
	if err := l.Validate(); err != nil {
		return Listing{}, err
	}

	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = s.now().UTC()
	}
	if l.UpdatedAt.IsZero() {
		l.UpdatedAt = l.CreatedAt
	}
	// sqlite keeps timestamps as text and orders them as strings, so every
	// stored time shares one zone.
	l.CreatedAt = l.CreatedAt.UTC()
	l.UpdatedAt = l.UpdatedAt.UTC()
	if l.Features == nil {
		l.Features = []string{}
	}

	features, err := json.Marshal(l.Features)
	if err != nil {
		return Listing{}, fmt.Errorf("error encoding features: %w", err)
	}

	var vin sql.NullString
	if l.VIN != nil && *l.VIN != "" {
		vin = sql.NullString{String: *l.VIN, Valid: true}
	}

	query := `INSERT INTO listings (` + listingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err = s.db.ExecContext(ctx, query,
		l.ID, l.Make, l.Model, l.Year, l.Price, l.Mileage, string(l.Condition), l.Transmission,
		l.FuelType, l.BodyType, l.ExteriorColor, l.InteriorColor, l.Description, string(features),
		l.ImageURL, l.Location, vin, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return Listing{}, fmt.Errorf("error inserting listing %s: %w", l.Title(), err)
	}
	return l, nil
}

// DeleteAll removes every listing. Used by the seed command's reset flag.
func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM listings")
	if err != nil {
		return 0, fmt.Errorf("error deleting listings: %w", err)
	}
	return res.RowsAffected()
}

// distinctColumns whitelists the columns Distinct may read.
var distinctColumns = map[string]bool{
	"make":      true,
	"body_type": true,
	"fuel_type": true,
}

// Distinct returns the sorted distinct non-empty values of a filterable column.
func (s *Store) Distinct(ctx context.Context, column string) ([]string, error) {
	if !distinctColumns[column] {
		return nil, fmt.Errorf("column %q is not filterable", column)
	}

	query := fmt.Sprintf("SELECT DISTINCT %[1]s FROM listings WHERE %[1]s <> '' ORDER BY %[1]s", column)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying distinct %s: %w", column, err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("error scanning distinct %s: %w", column, err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
