package response

import (
	"errors"
	"net/http"

	"github.com/SukaMajuu/hris2-sub001/internal/domain/attendance"
	"github.com/SukaMajuu/hris2-sub001/internal/domain/employee"
	"github.com/SukaMajuu/hris2-sub001/internal/domain/leave"
	"github.com/SukaMajuu/hris2-sub001/internal/domain/schedule"
	"github.com/SukaMajuu/hris2-sub001/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "You have already clocked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "You have already clocked out")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "You have not clocked in yet", nil)
	case errors.Is(err, attendance.ErrNoScheduleFound):
		BadRequest(w, "No work schedule found for this employee", nil)
	case errors.Is(err, attendance.ErrOutsideRadius):
		Forbidden(w, "You are outside the allowed location radius")
	case errors.Is(err, attendance.ErrCoordinatesRequired):
		BadRequest(w, "Latitude and longitude are required for office attendance", nil)
	case errors.Is(err, attendance.ErrGeofenceUnresolved):
		BadRequest(w, "No location could be resolved for this clock action", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "start_date must not be after end_date", nil)
	case errors.Is(err, leave.ErrInvalidLeaveType):
		BadRequest(w, "Invalid leave type", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNoScheduleForEmployee):
		BadRequest(w, "Employee has no work schedule assigned", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrWorkScheduleNotFound):
		NotFound(w, "Work schedule not found")
	case errors.Is(err, schedule.ErrLocationNotFound):
		NotFound(w, "Location not found")
	case errors.Is(err, schedule.ErrWorkScheduleNameExists):
		Conflict(w, "Work schedule name already exists")
	case errors.Is(err, schedule.ErrInvalidWorkType),
		errors.Is(err, schedule.ErrInvalidDetailWorkType),
		errors.Is(err, schedule.ErrInvalidRequestData):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, schedule.ErrDetailTypeMismatch),
		errors.Is(err, schedule.ErrHybridMinDetails),
		errors.Is(err, schedule.ErrHybridNeedsBothTypes),
		errors.Is(err, schedule.ErrWFODetailNeedsLocation),
		errors.Is(err, schedule.ErrWFADetailHasLocation),
		errors.Is(err, schedule.ErrWorkDayOverlap),
		errors.Is(err, schedule.ErrDetailIndexOutOfRange),
		errors.Is(err, schedule.ErrCannotRemoveDetail),
		errors.Is(err, schedule.ErrCannotChangeDetailType):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
