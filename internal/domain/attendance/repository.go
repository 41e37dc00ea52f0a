package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves attendance for a specific employee on a
	// specific work day. Used to prevent double clock-in.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, attendance Attendance) error

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// ListForWindow retrieves every attendance row in the reporting window,
	// used by the overview timeline pipeline
	ListForWindow(ctx context.Context, from, to time.Time) ([]Attendance, error)

	// GetOpenSession retrieves the most recent attendance with no clock-out
	GetOpenSession(ctx context.Context, employeeID string) (Attendance, error)
}
