package attendance

import (
	"github.com/SukaMajuu/hris2-sub001/internal/pkg/validator"
)

type ClockAction string

const (
	ClockActionIn  ClockAction = "clock_in"
	ClockActionOut ClockAction = "clock_out"
)

type ClockInRequest struct {
	EmployeeID string   `json:"-"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	return validateCoordinates(r.Latitude, r.Longitude)
}

type ClockOutRequest struct {
	EmployeeID string   `json:"-"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
	return validateCoordinates(r.Latitude, r.Longitude)
}

// validateCoordinates checks range only; whether coordinates are required at
// all depends on the resolved work type and is decided by the service.
func validateCoordinates(lat, long *float64) error {
	var errs validator.ValidationErrors

	if lat != nil && (*lat < -90 || *lat > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if long != nil && (*long < -180 || *long > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}
	if (lat == nil) != (long == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "coordinates",
			Message: "latitude and longitude must be provided together",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID                string   `json:"id"`
	EmployeeID        string   `json:"employee_id"`
	EmployeeName      string   `json:"employee_name"`
	EmployeePosition  *string  `json:"employee_position,omitempty"`
	Date              string   `json:"date"`
	ClockIn           *string  `json:"clock_in,omitempty"`
	ClockOut          *string  `json:"clock_out,omitempty"`
	ClockInLatitude   *float64 `json:"clock_in_lat,omitempty"`
	ClockInLongitude  *float64 `json:"clock_in_long,omitempty"`
	ClockOutLatitude  *float64 `json:"clock_out_lat,omitempty"`
	ClockOutLongitude *float64 `json:"clock_out_long,omitempty"`
	WorkHours         *float64 `json:"work_hours,omitempty"`
	Status            string   `json:"status"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}

// ListAttendanceResponse - Enhanced with pagination metadata
type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Showing     string               `json:"showing"`
	Attendances []AttendanceResponse `json:"attendances"`
}

type AttendanceFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	DateFrom   *string `json:"date_from,omitempty"`
	DateTo     *string `json:"date_to,omitempty"`
	Status     *string `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.DateFrom != nil && *f.DateFrom != "" {
		if _, valid := validator.IsValidDate(*f.DateFrom); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date_from",
				Message: "date_from must be a valid date in YYYY-MM-DD format",
			})
		}
	}
	if f.DateTo != nil && *f.DateTo != "" {
		if _, valid := validator.IsValidDate(*f.DateTo); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date_to",
				Message: "date_to must be a valid date in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// GeofenceResponse is the resolved geofence for a clock action. Latitude and
// Longitude are nil for WFA details; the UI must hide the location check
// instead of submitting empty coordinates.
type GeofenceResponse struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	RadiusM   *int     `json:"radius_m,omitempty"`
	Name      string   `json:"name,omitempty"`
	Address   string   `json:"address,omitempty"`
	WorkType  string   `json:"work_type"`
}
