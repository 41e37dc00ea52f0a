package schedule

import "context"

type WorkScheduleRepository interface {
	// Create persists a new work schedule with its details
	Create(ctx context.Context, ws WorkSchedule) (WorkSchedule, error)

	// GetByID retrieves a work schedule with its details and location snapshots
	GetByID(ctx context.Context, id string) (WorkSchedule, error)

	// Update replaces the schedule head and upserts its details;
	// deletedDetailIDs are removed in the same transaction
	Update(ctx context.Context, ws WorkSchedule, deletedDetailIDs []int64) (WorkSchedule, error)

	// List retrieves work schedules with filters and pagination
	List(ctx context.Context, filter WorkScheduleFilter) ([]WorkSchedule, int64, error)

	// Delete removes a work schedule and its details
	Delete(ctx context.Context, id string) error
}

type LocationRepository interface {
	// GetByID retrieves a geofence location by ID
	GetByID(ctx context.Context, id int64) (Location, error)

	// List retrieves all locations
	List(ctx context.Context) ([]Location, error)
}
