package attendance

import "errors"

// Attendance domain errors
var (
	// Clock-in errors
	ErrAlreadyCheckedIn  = errors.New("you have already clocked in today")
	ErrNoScheduleFound   = errors.New("no work schedule found for this employee")
	ErrOutsideRadius     = errors.New("you are outside the allowed location radius")
	ErrNotCheckedIn      = errors.New("you have not clocked in yet")
	ErrAlreadyCheckedOut = errors.New("you have already clocked out")

	// Geofence errors
	ErrGeofenceUnresolved  = errors.New("no location could be resolved for this clock action")
	ErrCoordinatesRequired = errors.New("latitude and longitude are required for office attendance")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
