package schedule

import "time"

type WorkSchedule struct {
	ID        string
	Name      string
	WorkType  WorkArrangement
	CreatedAt time.Time
	UpdatedAt time.Time

	Details []WorkScheduleDetail
}

type WorkArrangement string

const (
	WorkArrangementWFO    WorkArrangement = "WFO"    // Work From Office
	WorkArrangementWFA    WorkArrangement = "WFA"    // Work From Anywhere
	WorkArrangementHybrid WorkArrangement = "Hybrid" // Hybrid Work Arrangement
)

var WorkArrangementValues = []string{
	string(WorkArrangementWFO),
	string(WorkArrangementWFA),
	string(WorkArrangementHybrid),
}

// DetailWorkTypeValues are the leaf values a detail can take; Hybrid is a
// schedule-level composition, never a detail-level value.
var DetailWorkTypeValues = []string{
	string(WorkArrangementWFO),
	string(WorkArrangementWFA),
}

// WorkScheduleDetail is one row of a schedule. ID 0 marks a detail that has
// not been saved yet. A WFO detail must carry a location before the schedule
// can be saved; a WFA detail never has one.
type WorkScheduleDetail struct {
	ID             int64
	WorktypeDetail WorkArrangement
	WorkDays       []string // weekday names, e.g. {"Monday", "Wednesday"}

	CheckInStart  *string // HH:MM
	CheckInEnd    *string
	BreakStart    *string
	BreakEnd      *string
	CheckOutStart *string
	CheckOutEnd   *string

	LocationID *int64
	Location   *Location
	IsActive   bool
}

// HasWorkDay reports whether the detail covers the given weekday name.
func (d WorkScheduleDetail) HasWorkDay(day string) bool {
	for _, wd := range d.WorkDays {
		if wd == day {
			return true
		}
	}
	return false
}

// Location is a geofence anchor: a point plus a radius in meters within
// which a clock action is considered valid.
type Location struct {
	ID            int64
	Name          string
	AddressDetail string
	Latitude      float64
	Longitude     float64
	RadiusM       int
}

var WeekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}
