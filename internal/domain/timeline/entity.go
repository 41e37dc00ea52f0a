package timeline

import "github.com/SukaMajuu/hris2-sub001/internal/domain/leave"

// EntryKind tags which source collection an Entry was derived from.
type EntryKind string

const (
	EntryKindAttendance   EntryKind = "attendance"
	EntryKindLeaveRequest EntryKind = "leave_request"
)

// Entry is the unified, derived record produced by merging one attendance
// row or one leave-request row for the overview timeline. It is never
// persisted. Date fields are carried as raw "YYYY-MM-DD" strings exactly as
// they arrived from the backend; an unparsable date degrades the sort order
// instead of failing the build.
type Entry struct {
	ID         string
	EmployeeID string
	Employee   EmployeeSnapshot
	Kind       EntryKind

	Date              string
	ClockIn           *string
	ClockOut          *string
	ClockInLatitude   *float64
	ClockInLongitude  *float64
	ClockOutLatitude  *float64
	ClockOutLongitude *float64
	WorkHours         *float64

	// Status is the canonical status after classification. For entries the
	// classifier could not map it holds the raw backend value unchanged.
	Status Status

	// LeaveType is set only for leave_request entries.
	LeaveType *leave.LeaveType

	// LeaveRequests holds every approved leave request covering Date when
	// Status is StatusLeave. Empty on a leave-classified entry means the
	// backing request could not be found (rendered as a placeholder, not an
	// error).
	LeaveRequests []leave.LeaveRequest
}

// EmployeeSnapshot is the denormalized employee identity attached to an
// Entry for display and name filtering.
type EmployeeSnapshot struct {
	ID           string
	FirstName    string
	LastName     string
	EmployeeCode string
	PositionName string
}

// FullName joins first and last name the way the overview filter matches
// against them.
func (s EmployeeSnapshot) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}

// AttendanceRecord is the raw attendance row shape the pipeline consumes,
// as deserialized from the backend. Employee carries the row's embedded
// employee object, used as a fallback when the employee lookup misses.
type AttendanceRecord struct {
	ID                string            `json:"id"`
	EmployeeID        string            `json:"employee_id"`
	WorkScheduleID    *string           `json:"work_schedule_id"`
	Date              string            `json:"date"`
	ClockIn           *string           `json:"clock_in"`
	ClockOut          *string           `json:"clock_out"`
	ClockInLatitude   *float64          `json:"clock_in_lat"`
	ClockInLongitude  *float64          `json:"clock_in_long"`
	ClockOutLatitude  *float64          `json:"clock_out_lat"`
	ClockOutLongitude *float64          `json:"clock_out_long"`
	WorkHours         *float64          `json:"work_hours"`
	Status            string            `json:"status"`
	Employee          *EmployeeSnapshot `json:"employee,omitempty"`
	CreatedAt         string            `json:"created_at"`
	UpdatedAt         string            `json:"updated_at"`
}
