package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SukaMajuu/hris2-sub001/internal/domain/leave"
	"github.com/SukaMajuu/hris2-sub001/internal/domain/timeline"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestClassifyCanonicalizesKnownAliases(t *testing.T) {
	entry := makeEntry("a", "Alice", "2025-03-01", "OnTime")

	got := Classify(entry, nil)

	assert.Equal(t, timeline.StatusOnTime, got.Status)
}

func TestClassifyPassesThroughUnknownStatus(t *testing.T) {
	entry := makeEntry("a", "Alice", "2025-03-01", "half_day")

	got := Classify(entry, nil)

	assert.Equal(t, timeline.Status("half_day"), got.Status)
}

func TestClassifyLeaveAttachesCoveringRequests(t *testing.T) {
	entry := makeEntry("a", "Alice", "2025-03-05", "leave")

	requests := []leave.LeaveRequest{
		{
			ID:         "r1",
			EmployeeID: entry.EmployeeID,
			Status:     leave.LeaveRequestStatusApproved,
			StartDate:  day("2025-03-01"),
			EndDate:    day("2025-03-10"),
		},
		{
			ID:         "r2",
			EmployeeID: entry.EmployeeID,
			Status:     leave.LeaveRequestStatusApproved,
			StartDate:  day("2025-03-05"),
			EndDate:    day("2025-03-06"),
		},
		{ // different employee, never attached
			ID:         "r3",
			EmployeeID: "someone-else",
			Status:     leave.LeaveRequestStatusApproved,
			StartDate:  day("2025-03-01"),
			EndDate:    day("2025-03-10"),
		},
		{ // not approved, never attached
			ID:         "r4",
			EmployeeID: entry.EmployeeID,
			Status:     leave.LeaveRequestStatusWaitingApproval,
			StartDate:  day("2025-03-01"),
			EndDate:    day("2025-03-10"),
		},
	}

	got := Classify(entry, requests)

	assert.Equal(t, timeline.StatusLeave, got.Status)
	require.Len(t, got.LeaveRequests, 2)
	assert.Equal(t, "r1", got.LeaveRequests[0].ID)
	assert.Equal(t, "r2", got.LeaveRequests[1].ID)
}

func TestClassifyLeaveMatchesMixedCaseApproval(t *testing.T) {
	entry := makeEntry("a", "Alice", "2025-03-05", "leave")

	requests := []leave.LeaveRequest{
		{
			ID:         "r1",
			EmployeeID: entry.EmployeeID,
			Status:     leave.LeaveRequestStatus("Approved"),
			StartDate:  day("2025-03-05"),
			EndDate:    day("2025-03-05"),
		},
	}

	got := Classify(entry, requests)

	require.Len(t, got.LeaveRequests, 1)
}

func TestClassifyLeaveWithNoCoveringRequestKeepsEntry(t *testing.T) {
	entry := makeEntry("a", "Alice", "2025-03-05", "leave")

	got := Classify(entry, nil)

	assert.Equal(t, timeline.StatusLeave, got.Status)
	assert.Empty(t, got.LeaveRequests)
}

func TestClassifyLeaveRangeBoundariesInclusive(t *testing.T) {
	requests := []leave.LeaveRequest{
		{
			ID:         "r1",
			EmployeeID: "emp-a",
			Status:     leave.LeaveRequestStatusApproved,
			StartDate:  day("2025-03-05"),
			EndDate:    day("2025-03-07"),
		},
	}

	for _, tc := range []struct {
		date    string
		covered bool
	}{
		{"2025-03-04", false},
		{"2025-03-05", true},
		{"2025-03-07", true},
		{"2025-03-08", false},
	} {
		entry := makeEntry("a", "Alice", tc.date, "leave")
		got := Classify(entry, requests)
		if tc.covered {
			assert.Len(t, got.LeaveRequests, 1, "date %s", tc.date)
		} else {
			assert.Empty(t, got.LeaveRequests, "date %s", tc.date)
		}
	}
}
