package schedule

import (
	"github.com/SukaMajuu/hris2-sub001/internal/domain/schedule"
)

// DraftEngine applies the schedule-form edit operations to a draft while
// enforcing the composition rules. Every operation works on a clone and
// returns the input draft untouched when the edit would violate an
// invariant, so the form never materializes an invalid intermediate state.
type DraftEngine struct{}

func NewDraftEngine() *DraftEngine {
	return &DraftEngine{}
}

// SetMainWorkType changes the schedule-level work type and normalizes the
// details to match:
//   - WFO forces every detail to WFO. A detail converted from WFA keeps its
//     nil location; the operator has to fill it in before saving.
//   - WFA forces every detail to WFA and clears all locations.
//   - Hybrid guarantees at least two details with a WFO/WFA split: a lone
//     detail gets a partner of the opposite type appended; an all-WFO or
//     all-WFA set has its last detail converted to the missing type.
func (e *DraftEngine) SetMainWorkType(draft schedule.Draft, workType schedule.WorkArrangement) (schedule.Draft, error) {
	out := draft.Clone()
	out.WorkType = workType

	switch workType {
	case schedule.WorkArrangementWFO:
		for i := range out.Details {
			out.Details[i].WorktypeDetail = schedule.WorkArrangementWFO
		}
	case schedule.WorkArrangementWFA:
		for i := range out.Details {
			clearLocation(&out.Details[i])
		}
	case schedule.WorkArrangementHybrid:
		normalizeHybrid(&out)
	default:
		return draft, schedule.ErrInvalidWorkType
	}

	if err := out.CheckComposition(); err != nil {
		return draft, err
	}
	return out, nil
}

// AddDetail appends a new empty detail. Under Hybrid the new detail takes
// whichever leaf type is currently absent so the split stays reachable;
// otherwise it takes the schedule's own type.
func (e *DraftEngine) AddDetail(draft schedule.Draft) (schedule.Draft, error) {
	out := draft.Clone()

	detail := schedule.WorkScheduleDetail{IsActive: true}
	switch out.WorkType {
	case schedule.WorkArrangementHybrid:
		if missing := absentDetailType(out); missing != "" {
			detail.WorktypeDetail = missing
		} else {
			detail.WorktypeDetail = schedule.WorkArrangementWFO
		}
	case schedule.WorkArrangementWFA:
		detail.WorktypeDetail = schedule.WorkArrangementWFA
	default:
		detail.WorktypeDetail = schedule.WorkArrangementWFO
	}
	out.Details = append(out.Details, detail)

	if err := out.CheckComposition(); err != nil {
		return draft, err
	}
	return out, nil
}

// RemoveDetail removes the detail at idx. Under Hybrid the removal is
// rejected when it would drop below two details or eliminate the last WFO
// or last WFA detail. A removed detail that was already saved has its ID
// recorded so the update request can delete it server-side.
func (e *DraftEngine) RemoveDetail(draft schedule.Draft, idx int) (schedule.Draft, error) {
	if idx < 0 || idx >= len(draft.Details) {
		return draft, schedule.ErrDetailIndexOutOfRange
	}

	if draft.WorkType == schedule.WorkArrangementHybrid {
		if len(draft.Details) <= 2 {
			return draft, schedule.ErrCannotRemoveDetail
		}
		if isSoleOfItsType(draft, idx) {
			return draft, schedule.ErrCannotRemoveDetail
		}
	}

	out := draft.Clone()
	removed := out.Details[idx]
	out.Details = append(out.Details[:idx], out.Details[idx+1:]...)
	if removed.ID != 0 {
		out.DeletedDetailIDs = append(out.DeletedDetailIDs, removed.ID)
	}

	if err := out.CheckComposition(); err != nil {
		return draft, err
	}
	return out, nil
}

// SetDetailWorkType changes one detail's leaf type. Switching to WFA clears
// the detail's location snapshot. Under Hybrid a detail that is the sole
// WFO or sole WFA cannot be switched away from its current type.
func (e *DraftEngine) SetDetailWorkType(draft schedule.Draft, idx int, workType schedule.WorkArrangement) (schedule.Draft, error) {
	if idx < 0 || idx >= len(draft.Details) {
		return draft, schedule.ErrDetailIndexOutOfRange
	}
	if workType != schedule.WorkArrangementWFO && workType != schedule.WorkArrangementWFA {
		return draft, schedule.ErrInvalidDetailWorkType
	}

	current := draft.Details[idx].WorktypeDetail
	if current == workType {
		return draft.Clone(), nil
	}

	if draft.WorkType == schedule.WorkArrangementHybrid && isSoleOfItsType(draft, idx) {
		return draft, schedule.ErrCannotChangeDetailType
	}

	out := draft.Clone()
	if workType == schedule.WorkArrangementWFA {
		clearLocation(&out.Details[idx])
	} else {
		out.Details[idx].WorktypeDetail = schedule.WorkArrangementWFO
	}

	if err := out.CheckComposition(); err != nil {
		return draft, err
	}
	return out, nil
}

// normalizeHybrid makes the detail set satisfy the Hybrid composition rule
// with the smallest possible change.
func normalizeHybrid(draft *schedule.Draft) {
	if len(draft.Details) == 0 {
		draft.Details = append(draft.Details,
			schedule.WorkScheduleDetail{WorktypeDetail: schedule.WorkArrangementWFO, IsActive: true},
			schedule.WorkScheduleDetail{WorktypeDetail: schedule.WorkArrangementWFA, IsActive: true},
		)
		return
	}

	if len(draft.Details) == 1 {
		opposite := schedule.WorkArrangementWFA
		if draft.Details[0].WorktypeDetail == schedule.WorkArrangementWFA {
			opposite = schedule.WorkArrangementWFO
		}
		draft.Details = append(draft.Details, schedule.WorkScheduleDetail{WorktypeDetail: opposite, IsActive: true})
		return
	}

	missing := absentDetailType(*draft)
	if missing == "" {
		return // both types already present
	}
	last := len(draft.Details) - 1
	if missing == schedule.WorkArrangementWFA {
		clearLocation(&draft.Details[last])
	} else {
		draft.Details[last].WorktypeDetail = schedule.WorkArrangementWFO
	}
}

// absentDetailType returns whichever leaf type no detail currently has, or
// "" when both are present. An empty detail set reports WFO first.
func absentDetailType(draft schedule.Draft) schedule.WorkArrangement {
	var hasWFO, hasWFA bool
	for _, det := range draft.Details {
		switch det.WorktypeDetail {
		case schedule.WorkArrangementWFO:
			hasWFO = true
		case schedule.WorkArrangementWFA:
			hasWFA = true
		}
	}
	switch {
	case !hasWFO:
		return schedule.WorkArrangementWFO
	case !hasWFA:
		return schedule.WorkArrangementWFA
	default:
		return ""
	}
}

// isSoleOfItsType reports whether the detail at idx is the only detail with
// its leaf type.
func isSoleOfItsType(draft schedule.Draft, idx int) bool {
	target := draft.Details[idx].WorktypeDetail
	for i, det := range draft.Details {
		if i != idx && det.WorktypeDetail == target {
			return false
		}
	}
	return true
}

// clearLocation switches a detail to WFA and drops its location snapshot.
func clearLocation(detail *schedule.WorkScheduleDetail) {
	detail.WorktypeDetail = schedule.WorkArrangementWFA
	detail.LocationID = nil
	detail.Location = nil
}
