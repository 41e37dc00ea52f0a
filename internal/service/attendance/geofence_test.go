package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SukaMajuu/hris2-sub001/internal/domain/schedule"
	"github.com/SukaMajuu/hris2-sub001/internal/domain/timeline"
)

func strPtr(s string) *string { return &s }

var hq = schedule.Location{
	ID:            1,
	Name:          "Headquarters",
	AddressDetail: "Jl. Sudirman 1",
	Latitude:      -6.2088,
	Longitude:     106.8456,
	RadiusM:       100,
}

// monday is a known Monday.
var monday = time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

func hybridSchedule() *schedule.WorkSchedule {
	locID := hq.ID
	return &schedule.WorkSchedule{
		ID:       "ws-1",
		Name:     "Hybrid 3-2",
		WorkType: schedule.WorkArrangementHybrid,
		Details: []schedule.WorkScheduleDetail{
			{
				ID:             1,
				WorktypeDetail: schedule.WorkArrangementWFO,
				WorkDays:       []string{"Monday", "Tuesday", "Wednesday"},
				LocationID:     &locID,
				Location:       &hq,
				IsActive:       true,
			},
			{
				ID:             2,
				WorktypeDetail: schedule.WorkArrangementWFA,
				WorkDays:       []string{"Thursday", "Friday"},
				IsActive:       true,
			},
		},
	}
}

func TestResolveGeofenceWeekdayMatchWFO(t *testing.T) {
	geo := resolveGeofence(hybridSchedule(), monday)

	require.NotNil(t, geo)
	assert.Equal(t, "WFO", geo.WorkType)
	require.NotNil(t, geo.Latitude)
	assert.Equal(t, hq.Latitude, *geo.Latitude)
	assert.Equal(t, hq.Longitude, *geo.Longitude)
	assert.Equal(t, hq.RadiusM, *geo.RadiusM)
	assert.Equal(t, "Headquarters", geo.Name)
}

func TestResolveGeofenceWFADayHasNoCoordinates(t *testing.T) {
	thursday := monday.AddDate(0, 0, 3)

	geo := resolveGeofence(hybridSchedule(), thursday)

	require.NotNil(t, geo)
	assert.Equal(t, "WFA", geo.WorkType)
	assert.Nil(t, geo.Latitude)
	assert.Nil(t, geo.Longitude)
	assert.Nil(t, geo.RadiusM)
}

func TestResolveGeofenceFallsBackToLocatedDetail(t *testing.T) {
	ws := hybridSchedule()
	// Sunday is on nobody's work days.
	sunday := monday.AddDate(0, 0, -1)

	geo := resolveGeofence(ws, sunday)

	require.NotNil(t, geo)
	assert.Equal(t, "WFO", geo.WorkType)
	require.NotNil(t, geo.Latitude)
}

func TestResolveGeofenceSkipsInactiveDetails(t *testing.T) {
	ws := hybridSchedule()
	ws.Details[0].IsActive = false

	geo := resolveGeofence(ws, monday)

	// The WFA detail neither covers Monday nor carries a location.
	assert.Nil(t, geo)
}

func TestResolveGeofenceNilSchedule(t *testing.T) {
	assert.Nil(t, resolveGeofence(nil, monday))
}

func TestClassifyClockInLate(t *testing.T) {
	det := &schedule.WorkScheduleDetail{
		WorktypeDetail: schedule.WorkArrangementWFO,
		CheckInStart:   strPtr("08:00"),
		CheckInEnd:     strPtr("09:00"),
	}

	onTime := time.Date(2025, 3, 3, 8, 59, 0, 0, time.UTC)
	late := time.Date(2025, 3, 3, 9, 1, 0, 0, time.UTC)

	assert.Equal(t, string(timeline.StatusOnTime), classifyClockIn(det, onTime))
	assert.Equal(t, string(timeline.StatusLate), classifyClockIn(det, late))
}

func TestClassifyClockInWithoutWindowIsOnTime(t *testing.T) {
	det := &schedule.WorkScheduleDetail{WorktypeDetail: schedule.WorkArrangementWFA}

	assert.Equal(t, string(timeline.StatusOnTime), classifyClockIn(det, monday))
	assert.Equal(t, string(timeline.StatusOnTime), classifyClockIn(nil, monday))
}

func TestIsEarlyLeave(t *testing.T) {
	det := &schedule.WorkScheduleDetail{
		WorktypeDetail: schedule.WorkArrangementWFO,
		CheckOutStart:  strPtr("17:00"),
	}

	early := time.Date(2025, 3, 3, 16, 30, 0, 0, time.UTC)
	regular := time.Date(2025, 3, 3, 17, 10, 0, 0, time.UTC)

	assert.True(t, isEarlyLeave(det, early))
	assert.False(t, isEarlyLeave(det, regular))
	assert.False(t, isEarlyLeave(&schedule.WorkScheduleDetail{}, early))
}
