package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SukaMajuu/hris2-sub001/internal/domain/leave"
	"github.com/SukaMajuu/hris2-sub001/internal/domain/timeline"
)

func TestBuildTimelineOneEntryPerSourceRow(t *testing.T) {
	attendances := []timeline.AttendanceRecord{
		{ID: "att-1", EmployeeID: "e1", Date: "2025-03-01", Status: "ontime"},
		{ID: "att-2", EmployeeID: "e2", Date: "2025-03-02", Status: "late"},
	}
	leaveRequests := []leave.LeaveRequest{
		{ID: "lr-1", EmployeeID: "e1", LeaveType: leave.LeaveTypeSick, StartDate: day("2025-03-03"), EndDate: day("2025-03-04")},
	}

	entries := BuildTimeline(attendances, leaveRequests, nil)

	require.Len(t, entries, 3)
	assert.Equal(t, timeline.EntryKindAttendance, entries[0].Kind)
	assert.Equal(t, timeline.EntryKindLeaveRequest, entries[2].Kind)
	assert.Equal(t, "2025-03-03", entries[2].Date)
	require.NotNil(t, entries[2].LeaveType)
	assert.Equal(t, leave.LeaveTypeSick, *entries[2].LeaveType)
}

func TestBuildTimelineCanonicalizesAttendanceStatus(t *testing.T) {
	attendances := []timeline.AttendanceRecord{
		{ID: "att-1", EmployeeID: "e1", Date: "2025-03-01", Status: "On Time"},
	}

	entries := BuildTimeline(attendances, nil, nil)

	require.Len(t, entries, 1)
	assert.Equal(t, timeline.StatusOnTime, entries[0].Status)
}

func TestBuildTimelineLeaveEntryClassifiesAsLeave(t *testing.T) {
	leaveRequests := []leave.LeaveRequest{
		{ID: "lr-1", EmployeeID: "e1", LeaveType: leave.LeaveTypeAnnual, StartDate: day("2025-03-03"), EndDate: day("2025-03-04"), Status: leave.LeaveRequestStatusApproved},
	}

	entries := BuildTimeline(nil, leaveRequests, nil)
	entries = ClassifyAll(entries, leaveRequests)

	require.Len(t, entries, 1)
	assert.Equal(t, timeline.StatusLeave, entries[0].Status)
	assert.Len(t, entries[0].LeaveRequests, 1)
}

func TestBuildTimelineEmployeeResolutionOrder(t *testing.T) {
	lookup := []timeline.EmployeeSnapshot{
		{ID: "e1", FirstName: "Alice", LastName: "Smith"},
	}
	embedded := &timeline.EmployeeSnapshot{ID: "e2", FirstName: "Embedded", LastName: "Fallback"}

	attendances := []timeline.AttendanceRecord{
		{ID: "att-1", EmployeeID: "e1", Date: "2025-03-01", Status: "ontime", Employee: embedded},
		{ID: "att-2", EmployeeID: "e2", Date: "2025-03-01", Status: "ontime", Employee: embedded},
		{ID: "att-3", EmployeeID: "e3", Date: "2025-03-01", Status: "ontime"},
	}

	entries := BuildTimeline(attendances, nil, lookup)

	require.Len(t, entries, 3)
	assert.Equal(t, "Alice Smith", entries[0].Employee.FullName())
	assert.Equal(t, "Embedded Fallback", entries[1].Employee.FullName())
	assert.Equal(t, "Unknown Employee", entries[2].Employee.FullName())
}

func TestBuildTimelineCarriesMalformedDates(t *testing.T) {
	attendances := []timeline.AttendanceRecord{
		{ID: "att-1", EmployeeID: "e1", Date: "Invalid Date", Status: "ontime"},
	}

	entries := BuildTimeline(attendances, nil, nil)

	require.Len(t, entries, 1)
	assert.Equal(t, "Invalid Date", entries[0].Date)
}

func TestEndToEndOverviewPipeline(t *testing.T) {
	attendances := []timeline.AttendanceRecord{
		{ID: "att-1", EmployeeID: "e1", Date: "2025-03-01", Status: "ontime"},
		{ID: "att-2", EmployeeID: "e1", Date: "2025-03-02", Status: "LATE"},
		{ID: "att-3", EmployeeID: "e2", Date: "2025-03-03", Status: "absent"},
	}
	leaveRequests := []leave.LeaveRequest{
		{
			ID: "lr-1", EmployeeID: "e1", LeaveType: leave.LeaveTypeSick,
			StartDate: day("2025-03-04"), EndDate: day("2025-03-05"),
			Status: leave.LeaveRequestStatusApproved,
		},
	}
	employees := []timeline.EmployeeSnapshot{
		{ID: "e1", FirstName: "Alice"},
		{ID: "e2", FirstName: "Bob"},
	}

	entries := BuildTimeline(attendances, leaveRequests, employees)
	entries = ClassifyAll(entries, leaveRequests)

	filter := timeline.Filter{EmployeeName: strPtr("alice"), Status: strPtr("on_time")}
	result := FilterAndPaginate(entries, filter, 1, 10)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "att-1", result.Items[0].ID)
}
