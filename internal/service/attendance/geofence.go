package attendance

import (
	"time"

	"github.com/SukaMajuu/hris2-sub001/internal/domain/attendance"
	"github.com/SukaMajuu/hris2-sub001/internal/domain/schedule"
)

// matchDetail picks the schedule detail that governs a clock action on the
// given date: the first active detail whose work days cover the date's
// weekday. When no detail claims the weekday it falls back to the first
// detail that carries a location, so a misconfigured schedule still anchors
// office attendance somewhere rather than nowhere.
func matchDetail(ws *schedule.WorkSchedule, date time.Time) *schedule.WorkScheduleDetail {
	if ws == nil {
		return nil
	}

	weekday := date.Weekday().String()
	for i := range ws.Details {
		det := &ws.Details[i]
		if det.IsActive && det.HasWorkDay(weekday) {
			return det
		}
	}

	for i := range ws.Details {
		det := &ws.Details[i]
		if det.IsActive && det.Location != nil {
			return det
		}
	}

	return nil
}

// resolveGeofence turns the matched detail into the geofence a clock action
// must satisfy. A WFA detail yields a work type with no coordinates; the
// caller must not demand a location check for it. Returns nil when the
// schedule yields no applicable detail.
func resolveGeofence(ws *schedule.WorkSchedule, date time.Time) *attendance.GeofenceResponse {
	det := matchDetail(ws, date)
	if det == nil {
		return nil
	}

	resp := &attendance.GeofenceResponse{
		WorkType: string(det.WorktypeDetail),
	}
	if det.WorktypeDetail == schedule.WorkArrangementWFA || det.Location == nil {
		return resp
	}

	lat := det.Location.Latitude
	long := det.Location.Longitude
	radius := det.Location.RadiusM
	resp.Latitude = &lat
	resp.Longitude = &long
	resp.RadiusM = &radius
	resp.Name = det.Location.Name
	resp.Address = det.Location.AddressDetail
	return resp
}
