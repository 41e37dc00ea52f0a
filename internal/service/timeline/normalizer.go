package timeline

import (
	"time"

	"github.com/SukaMajuu/hris2-sub001/internal/domain/leave"
	"github.com/SukaMajuu/hris2-sub001/internal/domain/timeline"
)

const dateLayout = "2006-01-02"

// BuildTimeline merges raw attendance rows and leave requests into one
// normalized timeline: exactly one entry per attendance row and one per
// leave request, with no deduplication at this stage. Date strings are
// carried through as-is, including malformed ones; they degrade the sort
// order later instead of failing here.
func BuildTimeline(
	attendances []timeline.AttendanceRecord,
	leaveRequests []leave.LeaveRequest,
	employees []timeline.EmployeeSnapshot,
) []timeline.Entry {
	lookup := make(map[string]timeline.EmployeeSnapshot, len(employees))
	for _, emp := range employees {
		lookup[emp.ID] = emp
	}

	entries := make([]timeline.Entry, 0, len(attendances)+len(leaveRequests))

	for _, att := range attendances {
		status, _ := timeline.Canonicalize(att.Status)
		entries = append(entries, timeline.Entry{
			ID:                att.ID,
			EmployeeID:        att.EmployeeID,
			Employee:          resolveEmployee(lookup, att.EmployeeID, att.Employee),
			Kind:              timeline.EntryKindAttendance,
			Date:              att.Date,
			ClockIn:           att.ClockIn,
			ClockOut:          att.ClockOut,
			ClockInLatitude:   att.ClockInLatitude,
			ClockInLongitude:  att.ClockInLongitude,
			ClockOutLatitude:  att.ClockOutLatitude,
			ClockOutLongitude: att.ClockOutLongitude,
			WorkHours:         att.WorkHours,
			Status:            status,
		})
	}

	for _, req := range leaveRequests {
		req := req
		leaveType := req.LeaveType
		entries = append(entries, timeline.Entry{
			ID:         req.ID,
			EmployeeID: req.EmployeeID,
			Employee:   resolveEmployee(lookup, req.EmployeeID, leaveEmployeeFallback(req)),
			Kind:       timeline.EntryKindLeaveRequest,
			Date:       req.StartDate.Format(dateLayout),
			// The leave type doubles as a status label until classification
			// assigns the canonical value.
			Status:    timeline.Status(leaveType),
			LeaveType: &leaveType,
		})
	}

	return entries
}

// resolveEmployee resolves the display identity for an entry: the employee
// lookup wins, then the row's own embedded employee object, then a synthetic
// placeholder so the row still renders.
func resolveEmployee(lookup map[string]timeline.EmployeeSnapshot, employeeID string, embedded *timeline.EmployeeSnapshot) timeline.EmployeeSnapshot {
	if emp, ok := lookup[employeeID]; ok && emp.FirstName != "" {
		return emp
	}
	if embedded != nil && embedded.FirstName != "" {
		return *embedded
	}
	return timeline.EmployeeSnapshot{
		ID:        employeeID,
		FirstName: "Unknown Employee",
	}
}

func leaveEmployeeFallback(req leave.LeaveRequest) *timeline.EmployeeSnapshot {
	if req.EmployeeName == nil || *req.EmployeeName == "" {
		return nil
	}
	return &timeline.EmployeeSnapshot{
		ID:        req.EmployeeID,
		FirstName: *req.EmployeeName,
	}
}

// parseEntryDate parses an entry's raw date string. The second return is
// false for malformed dates; callers decide how the entry degrades (oldest
// sort position, excluded from range filters).
func parseEntryDate(raw string) (time.Time, bool) {
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}
