package schedule

import "fmt"

// Draft is the editable form of a work schedule. Every draft operation
// returns a new Draft and leaves its input untouched, so a rejected edit can
// never half-apply.
type Draft struct {
	ID       string
	Name     string
	WorkType WorkArrangement
	Details  []WorkScheduleDetail

	// DeletedDetailIDs collects the IDs of saved details the operator removed
	// while editing; the update request deletes them server-side.
	DeletedDetailIDs []int64
}

// Clone returns a deep copy of the draft.
func (d Draft) Clone() Draft {
	out := d
	out.Details = make([]WorkScheduleDetail, len(d.Details))
	for i, det := range d.Details {
		out.Details[i] = det.clone()
	}
	out.DeletedDetailIDs = append([]int64(nil), d.DeletedDetailIDs...)
	return out
}

func (d WorkScheduleDetail) clone() WorkScheduleDetail {
	out := d
	out.WorkDays = append([]string(nil), d.WorkDays...)
	if d.LocationID != nil {
		id := *d.LocationID
		out.LocationID = &id
	}
	if d.Location != nil {
		loc := *d.Location
		out.Location = &loc
	}
	return out
}

// countDetailTypes returns how many details are WFO and how many are WFA.
func (d Draft) countDetailTypes() (wfo, wfa int) {
	for _, det := range d.Details {
		switch det.WorktypeDetail {
		case WorkArrangementWFO:
			wfo++
		case WorkArrangementWFA:
			wfa++
		}
	}
	return wfo, wfa
}

// CheckComposition enforces the schedule composition rules that must hold
// after every draft edit: WFO forces every detail to WFO, WFA forces every
// detail to WFA, Hybrid needs at least two details with at least one of each
// leaf type.
func (d Draft) CheckComposition() error {
	wfo, wfa := d.countDetailTypes()

	switch d.WorkType {
	case WorkArrangementWFO:
		if wfa > 0 {
			return ErrDetailTypeMismatch
		}
	case WorkArrangementWFA:
		if wfo > 0 {
			return ErrDetailTypeMismatch
		}
		for _, det := range d.Details {
			if det.LocationID != nil || det.Location != nil {
				return ErrWFADetailHasLocation
			}
		}
	case WorkArrangementHybrid:
		if len(d.Details) < 2 {
			return ErrHybridMinDetails
		}
		if wfo == 0 || wfa == 0 {
			return ErrHybridNeedsBothTypes
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidWorkType, d.WorkType)
	}

	return nil
}

// ValidateForSave enforces the invariants that only need to hold when the
// draft is persisted, on top of the composition rules: every WFO detail must
// carry a location, and a weekday may be assigned to at most one detail.
func (d Draft) ValidateForSave() error {
	if err := d.CheckComposition(); err != nil {
		return err
	}

	seen := make(map[string]bool)
	for _, det := range d.Details {
		if det.WorktypeDetail == WorkArrangementWFO && det.LocationID == nil {
			return ErrWFODetailNeedsLocation
		}
		for _, day := range det.WorkDays {
			if seen[day] {
				return fmt.Errorf("%w: %s", ErrWorkDayOverlap, day)
			}
			seen[day] = true
		}
	}

	return nil
}
