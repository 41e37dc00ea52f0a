package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/SukaMajuu/hris2-sub001/internal/domain/attendance"
	"github.com/SukaMajuu/hris2-sub001/internal/domain/employee"
	"github.com/SukaMajuu/hris2-sub001/internal/domain/schedule"
	"github.com/SukaMajuu/hris2-sub001/internal/domain/timeline"
	"github.com/SukaMajuu/hris2-sub001/internal/pkg/utils"
)

type attendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// ClockIn implements attendance.AttendanceService.
func (a *attendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now().UTC()
	workDay := now.Truncate(24 * time.Hour)

	existing, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, workDay)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	emp, err := a.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if emp.WorkSchedule == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNoScheduleFound
	}

	if err := a.enforceGeofence(emp.WorkSchedule, now, req.Latitude, req.Longitude); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	status := classifyClockIn(matchDetail(emp.WorkSchedule, now), now)

	data := attendance.Attendance{
		EmployeeID:       req.EmployeeID,
		WorkScheduleID:   emp.WorkScheduleID,
		Date:             workDay,
		ClockIn:          &now,
		ClockInLatitude:  req.Latitude,
		ClockInLongitude: req.Longitude,
		Status:           status,
	}

	created, err := a.attendanceRepo.Create(ctx, data)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapAttendanceToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *attendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now().UTC()

	att, err := a.attendanceRepo.GetOpenSession(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get open attendance session: %w", err)
	}
	if att.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	emp, err := a.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if emp.WorkSchedule != nil {
		if err := a.enforceGeofence(emp.WorkSchedule, now, req.Latitude, req.Longitude); err != nil {
			return attendance.AttendanceResponse{}, err
		}
	}

	att.ClockOut = &now
	att.ClockOutLatitude = req.Latitude
	att.ClockOutLongitude = req.Longitude
	if att.ClockIn != nil {
		hours := now.Sub(*att.ClockIn).Hours()
		att.WorkHours = &hours
	}
	if det := matchDetail(emp.WorkSchedule, now); det != nil && isEarlyLeave(det, now) {
		att.Status = string(timeline.StatusEarlyLeave)
	}

	if err := a.attendanceRepo.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapAttendanceToResponse(att), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *attendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	attendances, totalCount, err := a.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(filter.Limit)))
	showingStart := (filter.Page-1)*filter.Limit + 1
	showingEnd := showingStart + len(responses) - 1
	if len(responses) == 0 {
		showingStart = 0
		showingEnd = 0
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  totalCount,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Showing:     fmt.Sprintf("%d-%d of %d", showingStart, showingEnd, totalCount),
		Attendances: responses,
	}, nil
}

// GetAttendance implements attendance.AttendanceService.
func (a *attendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	att, err := a.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return mapAttendanceToResponse(att), nil
}

// ResolveGeofence implements attendance.AttendanceService.
func (a *attendanceServiceImpl) ResolveGeofence(ctx context.Context, employeeID string, date *time.Time, _ attendance.ClockAction) (*attendance.GeofenceResponse, error) {
	emp, err := a.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp.WorkSchedule == nil {
		return nil, attendance.ErrNoScheduleFound
	}

	at := time.Now().UTC()
	if date != nil {
		at = *date
	}

	return resolveGeofence(emp.WorkSchedule, at), nil
}

// enforceGeofence rejects an office clock action without coordinates or
// outside the resolved location radius. WFA actions pass with or without
// coordinates.
func (a *attendanceServiceImpl) enforceGeofence(ws *schedule.WorkSchedule, at time.Time, lat, long *float64) error {
	geo := resolveGeofence(ws, at)
	if geo == nil {
		return attendance.ErrGeofenceUnresolved
	}
	if geo.WorkType == string(schedule.WorkArrangementWFA) {
		return nil
	}
	if lat == nil || long == nil {
		return attendance.ErrCoordinatesRequired
	}
	if geo.Latitude == nil || geo.Longitude == nil || geo.RadiusM == nil {
		return attendance.ErrGeofenceUnresolved
	}

	distance := utils.CalculateHaversineDistance(*lat, *long, *geo.Latitude, *geo.Longitude)
	if distance > float64(*geo.RadiusM) {
		return attendance.ErrOutsideRadius
	}
	return nil
}

// classifyClockIn assigns the initial status: late when the clock-in falls
// after the detail's check-in window closes, on time otherwise. A detail
// with no check-in window never marks anyone late.
func classifyClockIn(det *schedule.WorkScheduleDetail, now time.Time) string {
	if det == nil || det.CheckInEnd == nil {
		return string(timeline.StatusOnTime)
	}
	deadline, ok := timeOfDayOn(now, *det.CheckInEnd)
	if !ok {
		return string(timeline.StatusOnTime)
	}
	if now.After(deadline) {
		return string(timeline.StatusLate)
	}
	return string(timeline.StatusOnTime)
}

// isEarlyLeave reports whether a clock-out lands before the detail's
// check-out window opens.
func isEarlyLeave(det *schedule.WorkScheduleDetail, now time.Time) bool {
	if det.CheckOutStart == nil {
		return false
	}
	opens, ok := timeOfDayOn(now, *det.CheckOutStart)
	if !ok {
		return false
	}
	return now.Before(opens)
}

// timeOfDayOn anchors an HH:MM schedule time on the given day.
func timeOfDayOn(day time.Time, hhmm string) (time.Time, bool) {
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, day.Location()), true
}

func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	name := ""
	if att.EmployeeName != nil {
		name = *att.EmployeeName
	}
	return attendance.AttendanceResponse{
		ID:                att.ID,
		EmployeeID:        att.EmployeeID,
		EmployeeName:      name,
		EmployeePosition:  att.EmployeePosition,
		Date:              att.Date.Format("2006-01-02"),
		ClockIn:           timePtrToString(att.ClockIn),
		ClockOut:          timePtrToString(att.ClockOut),
		ClockInLatitude:   att.ClockInLatitude,
		ClockInLongitude:  att.ClockInLongitude,
		ClockOutLatitude:  att.ClockOutLatitude,
		ClockOutLongitude: att.ClockOutLongitude,
		WorkHours:         att.WorkHours,
		Status:            att.Status,
		CreatedAt:         att.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         att.UpdatedAt.Format(time.RFC3339),
	}
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
