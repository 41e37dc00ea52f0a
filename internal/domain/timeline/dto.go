package timeline

import "github.com/SukaMajuu/hris2-sub001/internal/pkg/validator"

// Filter holds the overview filter criteria. Empty criteria are no-ops;
// EmployeeName and Name are redundant aliases and are ANDed when both are
// set (the overview search box and the explicit name filter can be active
// at the same time).
type Filter struct {
	EmployeeName *string `json:"employee_name,omitempty"`
	Name         *string `json:"name,omitempty"`
	DateFrom     *string `json:"date_from,omitempty"` // YYYY-MM-DD, inclusive
	DateTo       *string `json:"date_to,omitempty"`   // YYYY-MM-DD, inclusive
	Status       *string `json:"status,omitempty"`    // any alias accepted, canonicalized

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *Filter) Validate() error {
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
		f.Limit = 10 // Default limit
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

type EntryResponse struct {
	ID                string    `json:"id"`
	EmployeeID        string    `json:"employee_id"`
	EmployeeName      string    `json:"employee_name"`
	EmployeeCode      string    `json:"employee_code,omitempty"`
	PositionName      string    `json:"position_name,omitempty"`
	Type              EntryKind `json:"type"`
	Date              string    `json:"date"`
	ClockIn           *string   `json:"clock_in,omitempty"`
	ClockOut          *string   `json:"clock_out,omitempty"`
	ClockInLatitude   *float64  `json:"clock_in_lat,omitempty"`
	ClockInLongitude  *float64  `json:"clock_in_long,omitempty"`
	ClockOutLatitude  *float64  `json:"clock_out_lat,omitempty"`
	ClockOutLongitude *float64  `json:"clock_out_long,omitempty"`
	WorkHours         *float64  `json:"work_hours,omitempty"`
	Status            string    `json:"status"`
	LeaveType         *string   `json:"leave_type,omitempty"`
	LeaveRequestIDs   []string  `json:"leave_request_ids,omitempty"`
}

// ListEntryResponse - overview page with pagination metadata
type ListEntryResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Showing    string          `json:"showing"`
	Entries    []EntryResponse `json:"entries"`
}
