package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SukaMajuu/hris2-sub001/internal/domain/schedule"
	"github.com/SukaMajuu/hris2-sub001/internal/pkg/database"
)

type locationRepository struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) schedule.LocationRepository {
	return &locationRepository{db: db}
}

// GetByID implements schedule.LocationRepository.
func (r *locationRepository) GetByID(ctx context.Context, id int64) (schedule.Location, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address_detail, latitude, longitude, radius_m
		FROM locations
		WHERE id = $1
	`

	var loc schedule.Location
	err := q.QueryRow(ctx, query, id).Scan(
		&loc.ID, &loc.Name, &loc.AddressDetail, &loc.Latitude, &loc.Longitude, &loc.RadiusM,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Location{}, schedule.ErrLocationNotFound
		}
		return schedule.Location{}, fmt.Errorf("failed to get location by ID: %w", err)
	}

	return loc, nil
}

// List implements schedule.LocationRepository.
func (r *locationRepository) List(ctx context.Context) ([]schedule.Location, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address_detail, latitude, longitude, radius_m
		FROM locations
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer rows.Close()

	var locations []schedule.Location
	for rows.Next() {
		var loc schedule.Location
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.AddressDetail, &loc.Latitude, &loc.Longitude, &loc.RadiusM); err != nil {
			return nil, fmt.Errorf("failed to scan location row: %w", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate location rows: %w", err)
	}

	return locations, nil
}
