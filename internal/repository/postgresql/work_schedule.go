package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/SukaMajuu/hris2-sub001/internal/domain/schedule"
	"github.com/SukaMajuu/hris2-sub001/internal/pkg/database"
)

type workScheduleRepository struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepository{db: db}
}

const uniqueViolationCode = "23505"

// Create implements schedule.WorkScheduleRepository. The head and its
// details are written in one transaction.
func (r *workScheduleRepository) Create(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := ContextWithTx(ctx, tx)
		q := GetQuerier(txCtx, r.db)

		ws.ID = uuid.NewString()

		query := `
			INSERT INTO work_schedules (id, name, work_type)
			VALUES ($1, $2, $3)
			RETURNING created_at, updated_at
		`
		err := q.QueryRow(txCtx, query, ws.ID, ws.Name, ws.WorkType).
			Scan(&ws.CreatedAt, &ws.UpdatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
				return schedule.ErrWorkScheduleNameExists
			}
			return fmt.Errorf("failed to create work schedule: %w", err)
		}

		for i := range ws.Details {
			if err := r.upsertDetail(txCtx, ws.ID, &ws.Details[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return schedule.WorkSchedule{}, err
	}

	return ws, nil
}

// GetByID implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) GetByID(ctx context.Context, id string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, work_type, created_at, updated_at
		FROM work_schedules
		WHERE id = $1
	`

	var ws schedule.WorkSchedule
	err := q.QueryRow(ctx, query, id).Scan(&ws.ID, &ws.Name, &ws.WorkType, &ws.CreatedAt, &ws.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkSchedule{}, schedule.ErrWorkScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule by ID: %w", err)
	}

	details, err := r.listDetails(ctx, id)
	if err != nil {
		return schedule.WorkSchedule{}, err
	}
	ws.Details = details

	return ws, nil
}

// Update implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) Update(ctx context.Context, ws schedule.WorkSchedule, deletedDetailIDs []int64) (schedule.WorkSchedule, error) {
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := ContextWithTx(ctx, tx)
		q := GetQuerier(txCtx, r.db)

		query := `
			UPDATE work_schedules SET
				name = $2,
				work_type = $3,
				updated_at = NOW()
			WHERE id = $1
			RETURNING created_at, updated_at
		`
		err := q.QueryRow(txCtx, query, ws.ID, ws.Name, ws.WorkType).
			Scan(&ws.CreatedAt, &ws.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return schedule.ErrWorkScheduleNotFound
			}
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
				return schedule.ErrWorkScheduleNameExists
			}
			return fmt.Errorf("failed to update work schedule: %w", err)
		}

		for _, detailID := range deletedDetailIDs {
			if _, err := q.Exec(txCtx,
				`DELETE FROM work_schedule_details WHERE id = $1 AND work_schedule_id = $2`,
				detailID, ws.ID,
			); err != nil {
				return fmt.Errorf("failed to delete work schedule detail: %w", err)
			}
		}

		for i := range ws.Details {
			if err := r.upsertDetail(txCtx, ws.ID, &ws.Details[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return schedule.WorkSchedule{}, err
	}

	return ws, nil
}

// List implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) List(ctx context.Context, filter schedule.WorkScheduleFilter) ([]schedule.WorkSchedule, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Name != nil && *filter.Name != "" {
		baseWhere += fmt.Sprintf(" AND name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}
	if filter.WorkType != nil && *filter.WorkType != "" {
		baseWhere += fmt.Sprintf(" AND work_type = $%d", argIdx)
		args = append(args, *filter.WorkType)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM work_schedules WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count work schedules: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	listQuery := `
		SELECT id, name, work_type, created_at, updated_at
		FROM work_schedules
		WHERE ` + baseWhere + `
		ORDER BY name
		LIMIT $` + fmt.Sprint(argIdx) + ` OFFSET $` + fmt.Sprint(argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list work schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.WorkSchedule
	for rows.Next() {
		var ws schedule.WorkSchedule
		if err := rows.Scan(&ws.ID, &ws.Name, &ws.WorkType, &ws.CreatedAt, &ws.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan work schedule row: %w", err)
		}
		schedules = append(schedules, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate work schedule rows: %w", err)
	}

	for i := range schedules {
		details, err := r.listDetails(ctx, schedules[i].ID)
		if err != nil {
			return nil, 0, err
		}
		schedules[i].Details = details
	}

	return schedules, total, nil
}

// Delete implements schedule.WorkScheduleRepository. Details cascade via the
// foreign key.
func (r *workScheduleRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete work schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrWorkScheduleNotFound
	}

	return nil
}

// upsertDetail inserts a new detail (ID 0) or updates a saved one in place.
func (r *workScheduleRepository) upsertDetail(ctx context.Context, scheduleID string, det *schedule.WorkScheduleDetail) error {
	q := GetQuerier(ctx, r.db)

	if det.ID == 0 {
		query := `
			INSERT INTO work_schedule_details (
				work_schedule_id, worktype_detail, work_days,
				checkin_start, checkin_end, break_start, break_end,
				checkout_start, checkout_end, location_id, is_active
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
			) RETURNING id
		`
		err := q.QueryRow(ctx, query,
			scheduleID, det.WorktypeDetail, det.WorkDays,
			det.CheckInStart, det.CheckInEnd, det.BreakStart, det.BreakEnd,
			det.CheckOutStart, det.CheckOutEnd, det.LocationID, det.IsActive,
		).Scan(&det.ID)
		if err != nil {
			return fmt.Errorf("failed to insert work schedule detail: %w", err)
		}
		return nil
	}

	query := `
		UPDATE work_schedule_details SET
			worktype_detail = $3,
			work_days = $4,
			checkin_start = $5,
			checkin_end = $6,
			break_start = $7,
			break_end = $8,
			checkout_start = $9,
			checkout_end = $10,
			location_id = $11,
			is_active = $12
		WHERE id = $1 AND work_schedule_id = $2
	`
	if _, err := q.Exec(ctx, query,
		det.ID, scheduleID, det.WorktypeDetail, det.WorkDays,
		det.CheckInStart, det.CheckInEnd, det.BreakStart, det.BreakEnd,
		det.CheckOutStart, det.CheckOutEnd, det.LocationID, det.IsActive,
	); err != nil {
		return fmt.Errorf("failed to update work schedule detail: %w", err)
	}
	return nil
}

// listDetails loads a schedule's details with their location snapshots.
func (r *workScheduleRepository) listDetails(ctx context.Context, scheduleID string) ([]schedule.WorkScheduleDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			d.id, d.worktype_detail, d.work_days,
			d.checkin_start, d.checkin_end, d.break_start, d.break_end,
			d.checkout_start, d.checkout_end, d.location_id, d.is_active,
			l.id, l.name, l.address_detail, l.latitude, l.longitude, l.radius_m
		FROM work_schedule_details d
		LEFT JOIN locations l ON l.id = d.location_id
		WHERE d.work_schedule_id = $1
		ORDER BY d.id
	`

	rows, err := q.Query(ctx, query, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedule details: %w", err)
	}
	defer rows.Close()

	var details []schedule.WorkScheduleDetail
	for rows.Next() {
		var det schedule.WorkScheduleDetail
		var (
			locID      *int64
			locName    *string
			locAddress *string
			locLat     *float64
			locLong    *float64
			locRadius  *int
		)
		err := rows.Scan(
			&det.ID, &det.WorktypeDetail, &det.WorkDays,
			&det.CheckInStart, &det.CheckInEnd, &det.BreakStart, &det.BreakEnd,
			&det.CheckOutStart, &det.CheckOutEnd, &det.LocationID, &det.IsActive,
			&locID, &locName, &locAddress, &locLat, &locLong, &locRadius,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work schedule detail row: %w", err)
		}
		if locID != nil {
			det.Location = &schedule.Location{
				ID:            *locID,
				Name:          *locName,
				AddressDetail: *locAddress,
				Latitude:      *locLat,
				Longitude:     *locLong,
				RadiusM:       *locRadius,
			}
		}
		details = append(details, det)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate work schedule detail rows: %w", err)
	}

	return details, nil
}
