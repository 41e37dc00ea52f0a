package schedule

import "errors"

var (
	// Work Schedule Errors
	ErrWorkScheduleNotFound   = errors.New("work schedule not found")
	ErrWorkScheduleNameExists = errors.New("work schedule with this name already exists")
	ErrLocationNotFound       = errors.New("location not found")

	// Draft rule-violation errors. These are returned to the operator as
	// human-readable messages; the draft is never left half-applied.
	ErrInvalidWorkType        = errors.New("work type must be one of WFO, WFA, Hybrid")
	ErrInvalidDetailWorkType  = errors.New("detail work type must be WFO or WFA")
	ErrDetailIndexOutOfRange  = errors.New("work schedule detail index out of range")
	ErrDetailTypeMismatch     = errors.New("every detail must match the schedule work type")
	ErrHybridMinDetails       = errors.New("a hybrid schedule needs at least 2 details")
	ErrHybridNeedsBothTypes   = errors.New("a hybrid schedule needs at least one WFO and one WFA detail")
	ErrCannotRemoveDetail     = errors.New("this detail cannot be removed: a hybrid schedule must keep at least one WFO and one WFA detail")
	ErrCannotChangeDetailType = errors.New("this detail cannot change type: it is the only detail of its work type in a hybrid schedule")
	ErrWFODetailNeedsLocation = errors.New("a WFO detail requires a location")
	ErrWFADetailHasLocation   = errors.New("a WFA detail must not have a location")
	ErrWorkDayOverlap         = errors.New("a work day is already assigned to another detail of this schedule")

	// Request Data Errors
	ErrInvalidRequestData = errors.New("invalid request data")
)
