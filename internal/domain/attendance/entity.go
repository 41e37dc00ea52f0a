package attendance

import (
	"time"
)

type Attendance struct {
	ID                string
	EmployeeID        string
	WorkScheduleID    *string
	Date              time.Time
	ClockIn           *time.Time
	ClockOut          *time.Time
	ClockInLatitude   *float64
	ClockInLongitude  *float64
	ClockOutLatitude  *float64
	ClockOutLongitude *float64
	WorkHours         *float64
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// DTO
	EmployeeName     *string
	EmployeePosition *string
}
