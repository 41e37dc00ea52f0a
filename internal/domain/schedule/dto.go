package schedule

import (
	"strconv"
	"strings"

	"github.com/SukaMajuu/hris2-sub001/internal/pkg/validator"
)

type WorkScheduleDetailRequest struct {
	ID             int64    `json:"id"` // 0 = new detail
	WorktypeDetail string   `json:"worktype_detail"`
	WorkDays       []string `json:"work_days"`
	CheckInStart   *string  `json:"checkin_start,omitempty"`  // HH:MM
	CheckInEnd     *string  `json:"checkin_end,omitempty"`    // HH:MM
	BreakStart     *string  `json:"break_start,omitempty"`    // HH:MM
	BreakEnd       *string  `json:"break_end,omitempty"`      // HH:MM
	CheckOutStart  *string  `json:"checkout_start,omitempty"` // HH:MM
	CheckOutEnd    *string  `json:"checkout_end,omitempty"`   // HH:MM
	LocationID     *int64   `json:"location_id,omitempty"`
	IsActive       *bool    `json:"is_active,omitempty"`
}

func (r *WorkScheduleDetailRequest) validate(field string, errs validator.ValidationErrors) validator.ValidationErrors {
	if !validator.IsInSlice(r.WorktypeDetail, DetailWorkTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   field + ".worktype_detail",
			Message: "worktype_detail must be one of: " + strings.Join(DetailWorkTypeValues, ", "),
		})
	}
	for _, day := range r.WorkDays {
		if !validator.IsInSlice(day, WeekdayNames) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".work_days",
				Message: "work_days must contain weekday names Monday..Sunday",
			})
			break
		}
	}
	for name, v := range map[string]*string{
		"checkin_start":  r.CheckInStart,
		"checkin_end":    r.CheckInEnd,
		"break_start":    r.BreakStart,
		"break_end":      r.BreakEnd,
		"checkout_start": r.CheckOutStart,
		"checkout_end":   r.CheckOutEnd,
	} {
		if v != nil && *v != "" {
			if _, valid := validator.IsValidTime(*v); !valid {
				errs = append(errs, validator.ValidationError{
					Field:   field + "." + name,
					Message: name + " must be a valid time in HH:MM format",
				})
			}
		}
	}
	return errs
}

// ToDetail converts the request row into a domain detail. Location snapshots
// are resolved by the service from LocationID.
func (r *WorkScheduleDetailRequest) ToDetail() WorkScheduleDetail {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return WorkScheduleDetail{
		ID:             r.ID,
		WorktypeDetail: WorkArrangement(r.WorktypeDetail),
		WorkDays:       append([]string(nil), r.WorkDays...),
		CheckInStart:   r.CheckInStart,
		CheckInEnd:     r.CheckInEnd,
		BreakStart:     r.BreakStart,
		BreakEnd:       r.BreakEnd,
		CheckOutStart:  r.CheckOutStart,
		CheckOutEnd:    r.CheckOutEnd,
		LocationID:     r.LocationID,
		IsActive:       isActive,
	}
}

type CreateWorkScheduleRequest struct {
	Name     string                      `json:"name"`
	WorkType string                      `json:"work_type"`
	Details  []WorkScheduleDetailRequest `json:"details"`
}

func (r *CreateWorkScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.WorkType) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: "work_type is required",
		})
	} else if !validator.IsInSlice(r.WorkType, WorkArrangementValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: "work_type must be one of: " + strings.Join(WorkArrangementValues, ", "),
		})
	}
	if len(r.Details) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "details",
			Message: "at least one detail is required",
		})
	}
	for i := range r.Details {
		errs = r.Details[i].validate("details["+strconv.Itoa(i)+"]", errs)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToDraft converts the request into an editable draft.
func (r *CreateWorkScheduleRequest) ToDraft() Draft {
	details := make([]WorkScheduleDetail, 0, len(r.Details))
	for i := range r.Details {
		details = append(details, r.Details[i].ToDetail())
	}
	return Draft{
		Name:     r.Name,
		WorkType: WorkArrangement(r.WorkType),
		Details:  details,
	}
}

type UpdateWorkScheduleRequest struct {
	ID               string                      `json:"-"`
	Name             string                      `json:"name"`
	WorkType         string                      `json:"work_type"`
	Details          []WorkScheduleDetailRequest `json:"details"`
	DeletedDetailIDs []int64                     `json:"deleted_detail_ids,omitempty"`
}

func (r *UpdateWorkScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	create := CreateWorkScheduleRequest{Name: r.Name, WorkType: r.WorkType, Details: r.Details}
	if err := create.Validate(); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, verrs...)
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *UpdateWorkScheduleRequest) ToDraft() Draft {
	create := CreateWorkScheduleRequest{Name: r.Name, WorkType: r.WorkType, Details: r.Details}
	draft := create.ToDraft()
	draft.ID = r.ID
	draft.DeletedDetailIDs = append([]int64(nil), r.DeletedDetailIDs...)
	return draft
}

// DraftOperation names one edit the schedule form can apply to a draft.
type DraftOperation string

const (
	DraftOpSetMainWorkType   DraftOperation = "set_main_work_type"
	DraftOpAddDetail         DraftOperation = "add_detail"
	DraftOpRemoveDetail      DraftOperation = "remove_detail"
	DraftOpSetDetailWorkType DraftOperation = "set_detail_work_type"
)

var DraftOperationValues = []string{
	string(DraftOpSetMainWorkType),
	string(DraftOpAddDetail),
	string(DraftOpRemoveDetail),
	string(DraftOpSetDetailWorkType),
}

// ApplyDraftOpRequest carries the current draft plus one operation to apply.
type ApplyDraftOpRequest struct {
	Draft    DraftPayload   `json:"draft"`
	Op       DraftOperation `json:"op"`
	WorkType *string        `json:"work_type,omitempty"` // set_main_work_type, set_detail_work_type
	Index    *int           `json:"index,omitempty"`     // remove_detail, set_detail_work_type
}

func (r *ApplyDraftOpRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(string(r.Op), DraftOperationValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "op",
			Message: "op must be one of: " + strings.Join(DraftOperationValues, ", "),
		})
	}
	switch r.Op {
	case DraftOpSetMainWorkType:
		if r.WorkType == nil || !validator.IsInSlice(*r.WorkType, WorkArrangementValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "work_type",
				Message: "work_type must be one of: " + strings.Join(WorkArrangementValues, ", "),
			})
		}
	case DraftOpSetDetailWorkType:
		if r.WorkType == nil || !validator.IsInSlice(*r.WorkType, DetailWorkTypeValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "work_type",
				Message: "work_type must be one of: " + strings.Join(DetailWorkTypeValues, ", "),
			})
		}
		if r.Index == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "index",
				Message: "index is required",
			})
		}
	case DraftOpRemoveDetail:
		if r.Index == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "index",
				Message: "index is required",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DraftPayload is the wire form of a Draft; it round-trips through the
// draft-validation endpoint unchanged apart from the applied operation.
type DraftPayload struct {
	ID               string                      `json:"id,omitempty"`
	Name             string                      `json:"name"`
	WorkType         string                      `json:"work_type"`
	Details          []WorkScheduleDetailRequest `json:"details"`
	DeletedDetailIDs []int64                     `json:"deleted_detail_ids,omitempty"`
}

func (p *DraftPayload) ToDraft() Draft {
	details := make([]WorkScheduleDetail, 0, len(p.Details))
	for i := range p.Details {
		details = append(details, p.Details[i].ToDetail())
	}
	return Draft{
		ID:               p.ID,
		Name:             p.Name,
		WorkType:         WorkArrangement(p.WorkType),
		Details:          details,
		DeletedDetailIDs: append([]int64(nil), p.DeletedDetailIDs...),
	}
}

// ApplyDraftOpResponse returns the resulting draft, or the unchanged input
// draft plus a human-readable rule-violation message.
type ApplyDraftOpResponse struct {
	Draft DraftPayload `json:"draft"`
	Error *string      `json:"error,omitempty"`
}

func DraftToPayload(d Draft) DraftPayload {
	details := make([]WorkScheduleDetailRequest, 0, len(d.Details))
	for _, det := range d.Details {
		isActive := det.IsActive
		details = append(details, WorkScheduleDetailRequest{
			ID:             det.ID,
			WorktypeDetail: string(det.WorktypeDetail),
			WorkDays:       append([]string(nil), det.WorkDays...),
			CheckInStart:   det.CheckInStart,
			CheckInEnd:     det.CheckInEnd,
			BreakStart:     det.BreakStart,
			BreakEnd:       det.BreakEnd,
			CheckOutStart:  det.CheckOutStart,
			CheckOutEnd:    det.CheckOutEnd,
			LocationID:     det.LocationID,
			IsActive:       &isActive,
		})
	}
	return DraftPayload{
		ID:               d.ID,
		Name:             d.Name,
		WorkType:         string(d.WorkType),
		Details:          details,
		DeletedDetailIDs: append([]int64(nil), d.DeletedDetailIDs...),
	}
}

type WorkScheduleDetailResponse struct {
	ID             int64             `json:"id"`
	WorktypeDetail string            `json:"worktype_detail"`
	WorkDays       []string          `json:"work_days"`
	CheckInStart   *string           `json:"checkin_start,omitempty"`
	CheckInEnd     *string           `json:"checkin_end,omitempty"`
	BreakStart     *string           `json:"break_start,omitempty"`
	BreakEnd       *string           `json:"break_end,omitempty"`
	CheckOutStart  *string           `json:"checkout_start,omitempty"`
	CheckOutEnd    *string           `json:"checkout_end,omitempty"`
	LocationID     *int64            `json:"location_id,omitempty"`
	Location       *LocationResponse `json:"location,omitempty"`
	IsActive       bool              `json:"is_active"`
}

type LocationResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	AddressDetail string  `json:"address_detail"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	RadiusM       int     `json:"radius_m"`
}

type WorkScheduleResponse struct {
	ID        string                       `json:"id"`
	Name      string                       `json:"name"`
	WorkType  string                       `json:"work_type"`
	Details   []WorkScheduleDetailResponse `json:"details"`
	CreatedAt string                       `json:"created_at"`
	UpdatedAt string                       `json:"updated_at"`
}

// ListWorkScheduleResponse - Enhanced with pagination metadata
type ListWorkScheduleResponse struct {
	TotalCount    int64                  `json:"total_count"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
	TotalPages    int                    `json:"total_pages"`
	Showing       string                 `json:"showing"`
	WorkSchedules []WorkScheduleResponse `json:"work_schedules"`
}

type WorkScheduleFilter struct {
	Name     *string `json:"name,omitempty"`
	WorkType *string `json:"work_type,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *WorkScheduleFilter) Validate() error {
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

	if f.WorkType != nil && !validator.IsInSlice(*f.WorkType, WorkArrangementValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: "work_type must be one of: " + strings.Join(WorkArrangementValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
