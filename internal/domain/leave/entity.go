package leave

import (
	"strings"
	"time"
)

type LeaveType string

const (
	LeaveTypeSick          LeaveType = "sick"
	LeaveTypeCompassionate LeaveType = "compassionate"
	LeaveTypeMaternity     LeaveType = "maternity"
	LeaveTypeAnnual        LeaveType = "annual"
	LeaveTypeMarriage      LeaveType = "marriage"
)

var LeaveTypeValues = []string{
	string(LeaveTypeSick),
	string(LeaveTypeCompassionate),
	string(LeaveTypeMaternity),
	string(LeaveTypeAnnual),
	string(LeaveTypeMarriage),
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusWaitingApproval LeaveRequestStatus = "waiting_approval"
	LeaveRequestStatusApproved        LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected        LeaveRequestStatus = "rejected"
)

var LeaveRequestStatusValues = []string{
	string(LeaveRequestStatusWaitingApproval),
	string(LeaveRequestStatusApproved),
	string(LeaveRequestStatusRejected),
}

// LeaveRequest entity. StartDate and EndDate are an inclusive calendar-day
// range; StartDate <= EndDate is enforced at request validation.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType

	StartDate time.Time
	EndDate   time.Time

	Status        LeaveRequestStatus
	EmployeeNote  string
	AdminNote     *string
	AttachmentURL *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
}

// IsApproved reports whether the request status is approved. The backend has
// been seen emitting mixed-case status values, so the match is
// case-insensitive.
func (r LeaveRequest) IsApproved() bool {
	return strings.EqualFold(string(r.Status), string(LeaveRequestStatusApproved))
}

// Covers reports whether date falls within [StartDate, EndDate] inclusive,
// comparing calendar days only.
func (r LeaveRequest) Covers(date time.Time) bool {
	day := truncateDay(date)
	return !day.Before(truncateDay(r.StartDate)) && !day.After(truncateDay(r.EndDate))
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
