package employee

import (
	"time"

	"github.com/SukaMajuu/hris2-sub001/internal/domain/schedule"
)

// Employee is read-only to this service; creation and profile edits belong
// to the HR admin application.
type Employee struct {
	ID             string
	FirstName      string
	LastName       string
	EmployeeCode   string
	PositionName   string
	WorkScheduleID *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// WorkSchedule is the denormalized owning schedule, loaded for geofence
	// resolution. Nil when the employee has no schedule assigned.
	WorkSchedule *schedule.WorkSchedule
}

// FullName joins first and last name for display and filtering.
func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
