package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func locPtr(v int64) *int64 { return &v }

func TestCheckCompositionWFO(t *testing.T) {
	d := Draft{
		WorkType: WorkArrangementWFO,
		Details: []WorkScheduleDetail{
			{WorktypeDetail: WorkArrangementWFO, LocationID: locPtr(1)},
		},
	}
	assert.NoError(t, d.CheckComposition())

	d.Details = append(d.Details, WorkScheduleDetail{WorktypeDetail: WorkArrangementWFA})
	assert.ErrorIs(t, d.CheckComposition(), ErrDetailTypeMismatch)
}

func TestCheckCompositionWFARejectsLocations(t *testing.T) {
	d := Draft{
		WorkType: WorkArrangementWFA,
		Details: []WorkScheduleDetail{
			{WorktypeDetail: WorkArrangementWFA, LocationID: locPtr(1)},
		},
	}
	assert.ErrorIs(t, d.CheckComposition(), ErrWFADetailHasLocation)
}

func TestCheckCompositionHybrid(t *testing.T) {
	d := Draft{
		WorkType: WorkArrangementHybrid,
		Details: []WorkScheduleDetail{
			{WorktypeDetail: WorkArrangementWFO, LocationID: locPtr(1)},
		},
	}
	assert.ErrorIs(t, d.CheckComposition(), ErrHybridMinDetails)

	d.Details = append(d.Details, WorkScheduleDetail{WorktypeDetail: WorkArrangementWFO, LocationID: locPtr(2)})
	assert.ErrorIs(t, d.CheckComposition(), ErrHybridNeedsBothTypes)

	d.Details[1] = WorkScheduleDetail{WorktypeDetail: WorkArrangementWFA}
	assert.NoError(t, d.CheckComposition())
}

func TestCheckCompositionUnknownWorkType(t *testing.T) {
	d := Draft{WorkType: "Remote"}
	assert.ErrorIs(t, d.CheckComposition(), ErrInvalidWorkType)
}

func TestValidateForSaveWFODetailNeedsLocation(t *testing.T) {
	d := Draft{
		WorkType: WorkArrangementWFO,
		Details: []WorkScheduleDetail{
			{WorktypeDetail: WorkArrangementWFO},
		},
	}
	assert.ErrorIs(t, d.ValidateForSave(), ErrWFODetailNeedsLocation)
}

func TestValidateForSaveRejectsWorkDayOverlap(t *testing.T) {
	d := Draft{
		WorkType: WorkArrangementHybrid,
		Details: []WorkScheduleDetail{
			{WorktypeDetail: WorkArrangementWFO, LocationID: locPtr(1), WorkDays: []string{"Monday", "Tuesday"}},
			{WorktypeDetail: WorkArrangementWFA, WorkDays: []string{"Tuesday", "Friday"}},
		},
	}
	assert.ErrorIs(t, d.ValidateForSave(), ErrWorkDayOverlap)

	d.Details[1].WorkDays = []string{"Wednesday", "Friday"}
	assert.NoError(t, d.ValidateForSave())
}

func TestCloneIsDeep(t *testing.T) {
	d := Draft{
		WorkType: WorkArrangementWFO,
		Details: []WorkScheduleDetail{
			{WorktypeDetail: WorkArrangementWFO, LocationID: locPtr(1), WorkDays: []string{"Monday"}},
		},
		DeletedDetailIDs: []int64{7},
	}

	c := d.Clone()
	c.Details[0].WorkDays[0] = "Sunday"
	*c.Details[0].LocationID = 99
	c.DeletedDetailIDs[0] = 8

	assert.Equal(t, "Monday", d.Details[0].WorkDays[0])
	assert.Equal(t, int64(1), *d.Details[0].LocationID)
	assert.Equal(t, int64(7), d.DeletedDetailIDs[0])
}
