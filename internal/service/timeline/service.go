package timeline

import (
	"context"
	"fmt"
	"time"

	"github.com/SukaMajuu/hris2-sub001/internal/domain/attendance"
	"github.com/SukaMajuu/hris2-sub001/internal/domain/employee"
	"github.com/SukaMajuu/hris2-sub001/internal/domain/leave"
	"github.com/SukaMajuu/hris2-sub001/internal/domain/timeline"
)

// defaultWindowDays caps how far back the overview looks when the caller
// sets no date filter.
const defaultWindowDays = 90

type TimelineServiceImpl struct {
	attendance.AttendanceRepository
	leave.LeaveRequestRepository
	employee.EmployeeRepository
}

func NewTimelineService(
	attendanceRepo attendance.AttendanceRepository,
	leaveRequestRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
) timeline.TimelineService {
	return &TimelineServiceImpl{
		AttendanceRepository:   attendanceRepo,
		LeaveRequestRepository: leaveRequestRepo,
		EmployeeRepository:     employeeRepo,
	}
}

// GetOverview implements timeline.TimelineService.
func (s *TimelineServiceImpl) GetOverview(ctx context.Context, filter timeline.Filter) (timeline.ListEntryResponse, error) {
	if err := filter.Validate(); err != nil {
		return timeline.ListEntryResponse{}, err
	}

	from, to := reportingWindow(filter)

	attendances, err := s.AttendanceRepository.ListForWindow(ctx, from, to)
	if err != nil {
		return timeline.ListEntryResponse{}, fmt.Errorf("failed to list attendances for window: %w", err)
	}
	leaveRequests, err := s.LeaveRequestRepository.ListForWindow(ctx, from, to)
	if err != nil {
		return timeline.ListEntryResponse{}, fmt.Errorf("failed to list leave requests for window: %w", err)
	}
	employees, err := s.EmployeeRepository.ListAll(ctx)
	if err != nil {
		return timeline.ListEntryResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	entries := BuildTimeline(toRecords(attendances), leaveRequests, toSnapshots(employees))
	entries = ClassifyAll(entries, leaveRequests)
	page := FilterAndPaginate(entries, filter, filter.Page, filter.Limit)

	responses := make([]timeline.EntryResponse, 0, len(page.Items))
	for _, entry := range page.Items {
		responses = append(responses, mapEntryToResponse(entry))
	}

	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min(filter.Page*filter.Limit, int(page.TotalRecords)), page.TotalRecords)
	if page.TotalRecords == 0 {
		showing = "0 of 0"
	}

	return timeline.ListEntryResponse{
		TotalCount: page.TotalRecords,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: page.TotalPages,
		Showing:    showing,
		Entries:    responses,
	}, nil
}

// reportingWindow derives the fetch window from the date filters, falling
// back to the trailing default window when a bound is absent.
func reportingWindow(filter timeline.Filter) (time.Time, time.Time) {
	now := time.Now().UTC()
	to := now
	from := now.AddDate(0, 0, -defaultWindowDays)

	if filter.DateFrom != nil && *filter.DateFrom != "" {
		if t, err := time.Parse(dateLayout, *filter.DateFrom); err == nil {
			from = t
		}
	}
	if filter.DateTo != nil && *filter.DateTo != "" {
		if t, err := time.Parse(dateLayout, *filter.DateTo); err == nil {
			to = t
		}
	}
	return from, to
}

// toRecords converts persisted attendance rows into the raw record shape
// the pipeline consumes.
func toRecords(attendances []attendance.Attendance) []timeline.AttendanceRecord {
	records := make([]timeline.AttendanceRecord, 0, len(attendances))
	for _, att := range attendances {
		var embedded *timeline.EmployeeSnapshot
		if att.EmployeeName != nil && *att.EmployeeName != "" {
			snap := timeline.EmployeeSnapshot{ID: att.EmployeeID, FirstName: *att.EmployeeName}
			if att.EmployeePosition != nil {
				snap.PositionName = *att.EmployeePosition
			}
			embedded = &snap
		}
		records = append(records, timeline.AttendanceRecord{
			ID:                att.ID,
			EmployeeID:        att.EmployeeID,
			WorkScheduleID:    att.WorkScheduleID,
			Date:              att.Date.Format(dateLayout),
			ClockIn:           timePtrToString(att.ClockIn),
			ClockOut:          timePtrToString(att.ClockOut),
			ClockInLatitude:   att.ClockInLatitude,
			ClockInLongitude:  att.ClockInLongitude,
			ClockOutLatitude:  att.ClockOutLatitude,
			ClockOutLongitude: att.ClockOutLongitude,
			WorkHours:         att.WorkHours,
			Status:            att.Status,
			Employee:          embedded,
		})
	}
	return records
}

func toSnapshots(employees []employee.Employee) []timeline.EmployeeSnapshot {
	snapshots := make([]timeline.EmployeeSnapshot, 0, len(employees))
	for _, emp := range employees {
		snapshots = append(snapshots, timeline.EmployeeSnapshot{
			ID:           emp.ID,
			FirstName:    emp.FirstName,
			LastName:     emp.LastName,
			EmployeeCode: emp.EmployeeCode,
			PositionName: emp.PositionName,
		})
	}
	return snapshots
}

func mapEntryToResponse(entry timeline.Entry) timeline.EntryResponse {
	resp := timeline.EntryResponse{
		ID:                entry.ID,
		EmployeeID:        entry.EmployeeID,
		EmployeeName:      entry.Employee.FullName(),
		EmployeeCode:      entry.Employee.EmployeeCode,
		PositionName:      entry.Employee.PositionName,
		Type:              entry.Kind,
		Date:              entry.Date,
		ClockIn:           entry.ClockIn,
		ClockOut:          entry.ClockOut,
		ClockInLatitude:   entry.ClockInLatitude,
		ClockInLongitude:  entry.ClockInLongitude,
		ClockOutLatitude:  entry.ClockOutLatitude,
		ClockOutLongitude: entry.ClockOutLongitude,
		WorkHours:         entry.WorkHours,
		Status:            string(entry.Status),
	}
	if entry.LeaveType != nil {
		lt := string(*entry.LeaveType)
		resp.LeaveType = &lt
	}
	for _, req := range entry.LeaveRequests {
		resp.LeaveRequestIDs = append(resp.LeaveRequestIDs, req.ID)
	}
	return resp
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}
