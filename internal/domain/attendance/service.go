package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockIn processes employee clock-in with geofence validation
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut processes employee clock-out
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)

	// ListAttendance retrieves attendance records with filters (admin/manager)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// GetAttendance retrieves a single attendance record by ID
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// ResolveGeofence resolves the location and work type a clock action for
	// the given employee must satisfy on the given date. Returns nil when the
	// employee's schedule yields no applicable detail.
	ResolveGeofence(ctx context.Context, employeeID string, date *time.Time, action ClockAction) (*GeofenceResponse, error)
}
