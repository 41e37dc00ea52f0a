package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SukaMajuu/hris2-sub001/internal/domain/schedule"
)

func int64Ptr(v int64) *int64 { return &v }

func wfoDetail(id int64, locationID int64) schedule.WorkScheduleDetail {
	return schedule.WorkScheduleDetail{
		ID:             id,
		WorktypeDetail: schedule.WorkArrangementWFO,
		LocationID:     int64Ptr(locationID),
		Location:       &schedule.Location{ID: locationID, Name: "HQ"},
		IsActive:       true,
	}
}

func wfaDetail(id int64) schedule.WorkScheduleDetail {
	return schedule.WorkScheduleDetail{
		ID:             id,
		WorktypeDetail: schedule.WorkArrangementWFA,
		IsActive:       true,
	}
}

func TestSetMainWorkTypeHybridOnEmptyDraftSeedsBothTypes(t *testing.T) {
	engine := NewDraftEngine()
	draft := schedule.Draft{Name: "Shift A", WorkType: schedule.WorkArrangementWFO}

	got, err := engine.SetMainWorkType(draft, schedule.WorkArrangementHybrid)

	require.NoError(t, err)
	require.Len(t, got.Details, 2)
	assert.Equal(t, schedule.WorkArrangementWFO, got.Details[0].WorktypeDetail)
	assert.Equal(t, schedule.WorkArrangementWFA, got.Details[1].WorktypeDetail)
}

func TestSetMainWorkTypeHybridWithOneDetailAppendsOpposite(t *testing.T) {
	engine := NewDraftEngine()
	draft := schedule.Draft{
		WorkType: schedule.WorkArrangementWFO,
		Details:  []schedule.WorkScheduleDetail{wfoDetail(1, 10)},
	}

	got, err := engine.SetMainWorkType(draft, schedule.WorkArrangementHybrid)

	require.NoError(t, err)
	require.Len(t, got.Details, 2)
	assert.Equal(t, schedule.WorkArrangementWFA, got.Details[1].WorktypeDetail)
	assert.Nil(t, got.Details[1].LocationID)
}

func TestSetMainWorkTypeHybridConvertsLastDetailWhenAllSameType(t *testing.T) {
	engine := NewDraftEngine()
	draft := schedule.Draft{
		WorkType: schedule.WorkArrangementWFO,
		Details:  []schedule.WorkScheduleDetail{wfoDetail(1, 10), wfoDetail(2, 11)},
	}

	got, err := engine.SetMainWorkType(draft, schedule.WorkArrangementHybrid)

	require.NoError(t, err)
	require.Len(t, got.Details, 2)
	assert.Equal(t, schedule.WorkArrangementWFO, got.Details[0].WorktypeDetail)
	assert.Equal(t, schedule.WorkArrangementWFA, got.Details[1].WorktypeDetail)
	// Conversion to WFA drops the location.
	assert.Nil(t, got.Details[1].LocationID)
	assert.Nil(t, got.Details[1].Location)
}

func TestSetMainWorkTypeWFOForcesAllDetailsWFO(t *testing.T) {
	engine := NewDraftEngine()
	draft := schedule.Draft{
		WorkType: schedule.WorkArrangementHybrid,
		Details:  []schedule.WorkScheduleDetail{wfoDetail(1, 10), wfaDetail(2)},
	}

	got, err := engine.SetMainWorkType(draft, schedule.WorkArrangementWFO)

	require.NoError(t, err)
	for _, det := range got.Details {
		assert.Equal(t, schedule.WorkArrangementWFO, det.WorktypeDetail)
	}
	// The converted detail has no location yet; that is a save-time problem,
	// not an edit-time one.
	assert.Nil(t, got.Details[1].LocationID)
	assert.Error(t, got.ValidateForSave())
	assert.NoError(t, got.CheckComposition())
}

func TestSetMainWorkTypeWFAClearsLocations(t *testing.T) {
	engine := NewDraftEngine()
	draft := schedule.Draft{
		WorkType: schedule.WorkArrangementHybrid,
		Details:  []schedule.WorkScheduleDetail{wfoDetail(1, 10), wfaDetail(2)},
	}

	got, err := engine.SetMainWorkType(draft, schedule.WorkArrangementWFA)

	require.NoError(t, err)
	for _, det := range got.Details {
		assert.Equal(t, schedule.WorkArrangementWFA, det.WorktypeDetail)
		assert.Nil(t, det.LocationID)
		assert.Nil(t, det.Location)
	}
}

func TestAddDetailDefaultsToMainTypeOutsideHybrid(t *testing.T) {
	engine := NewDraftEngine()

	wfa := schedule.Draft{WorkType: schedule.WorkArrangementWFA}
	got, err := engine.AddDetail(wfa)
	require.NoError(t, err)
	require.Len(t, got.Details, 1)
	assert.Equal(t, schedule.WorkArrangementWFA, got.Details[0].WorktypeDetail)
}

func TestAddDetailHybridTakesAbsentType(t *testing.T) {
	engine := NewDraftEngine()
	draft := schedule.Draft{
		WorkType: schedule.WorkArrangementHybrid,
		Details:  []schedule.WorkScheduleDetail{wfoDetail(1, 10), wfaDetail(2), wfaDetail(3)},
	}

	// Removing the WFO detail is impossible, but adding to a draft where one
	// type is scarce should never make the imbalance worse.
	got, err := engine.AddDetail(draft)
	require.NoError(t, err)
	require.Len(t, got.Details, 4)
	// Both types present, so the default is WFO.
	assert.Equal(t, schedule.WorkArrangementWFO, got.Details[3].WorktypeDetail)
}

func TestRemoveDetailOutOfRange(t *testing.T) {
	engine := NewDraftEngine()
	draft := schedule.Draft{WorkType: schedule.WorkArrangementWFO, Details: []schedule.WorkScheduleDetail{wfoDetail(1, 10)}}

	_, err := engine.RemoveDetail(draft, 3)
	assert.ErrorIs(t, err, schedule.ErrDetailIndexOutOfRange)

	_, err = engine.RemoveDetail(draft, -1)
	assert.ErrorIs(t, err, schedule.ErrDetailIndexOutOfRange)
}

func TestRemoveDetailHybridRejectsDroppingBelowTwo(t *testing.T) {
	engine := NewDraftEngine()
	draft := schedule.Draft{
		WorkType: schedule.WorkArrangementHybrid,
		Details:  []schedule.WorkScheduleDetail{wfoDetail(1, 10), wfaDetail(2)},
	}

	got, err := engine.RemoveDetail(draft, 0)

	assert.ErrorIs(t, err, schedule.ErrCannotRemoveDetail)
	// The input draft comes back unchanged.
	assert.Len(t, got.Details, 2)
}

func TestRemoveDetailHybridRejectsRemovingLastOfType(t *testing.T) {
	engine := NewDraftEngine()
	draft := schedule.Draft{
		WorkType: schedule.WorkArrangementHybrid,
		Details:  []schedule.WorkScheduleDetail{wfoDetail(1, 10), wfaDetail(2), wfaDetail(3)},
	}

	_, err := engine.RemoveDetail(draft, 0)
	assert.ErrorIs(t, err, schedule.ErrCannotRemoveDetail)

	got, err := engine.RemoveDetail(draft, 1)
	require.NoError(t, err)
	assert.Len(t, got.Details, 2)
}

func TestRemoveDetailRecordsSavedDetailID(t *testing.T) {
	engine := NewDraftEngine()
	draft := schedule.Draft{
		WorkType: schedule.WorkArrangementWFO,
		Details: []schedule.WorkScheduleDetail{
			wfoDetail(42, 10),
			{WorktypeDetail: schedule.WorkArrangementWFO, LocationID: int64Ptr(11), IsActive: true}, // unsaved, ID 0
		},
	}

	got, err := engine.RemoveDetail(draft, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{42}, got.DeletedDetailIDs)

	got2, err := engine.RemoveDetail(got, 0)
	require.NoError(t, err)
	// Unsaved details leave no deletion trace.
	assert.Equal(t, []int64{42}, got2.DeletedDetailIDs)
}

func TestSetDetailWorkTypeToWFAClearsLocation(t *testing.T) {
	engine := NewDraftEngine()
	draft := schedule.Draft{
		WorkType: schedule.WorkArrangementHybrid,
		Details:  []schedule.WorkScheduleDetail{wfoDetail(1, 10), wfoDetail(2, 11), wfaDetail(3)},
	}

	got, err := engine.SetDetailWorkType(draft, 1, schedule.WorkArrangementWFA)

	require.NoError(t, err)
	assert.Equal(t, schedule.WorkArrangementWFA, got.Details[1].WorktypeDetail)
	assert.Nil(t, got.Details[1].LocationID)
	assert.Nil(t, got.Details[1].Location)
}

func TestSetDetailWorkTypeHybridRejectsSoleTypeSwitch(t *testing.T) {
	engine := NewDraftEngine()
	draft := schedule.Draft{
		WorkType: schedule.WorkArrangementHybrid,
		Details:  []schedule.WorkScheduleDetail{wfoDetail(1, 10), wfaDetail(2)},
	}

	_, err := engine.SetDetailWorkType(draft, 0, schedule.WorkArrangementWFA)
	assert.ErrorIs(t, err, schedule.ErrCannotChangeDetailType)

	_, err = engine.SetDetailWorkType(draft, 1, schedule.WorkArrangementWFO)
	assert.ErrorIs(t, err, schedule.ErrCannotChangeDetailType)
}

func TestSetDetailWorkTypeRejectsHybridLeafValue(t *testing.T) {
	engine := NewDraftEngine()
	draft := schedule.Draft{
		WorkType: schedule.WorkArrangementWFO,
		Details:  []schedule.WorkScheduleDetail{wfoDetail(1, 10)},
	}

	_, err := engine.SetDetailWorkType(draft, 0, schedule.WorkArrangementHybrid)
	assert.ErrorIs(t, err, schedule.ErrInvalidDetailWorkType)
}

func TestOperationsNeverMutateInput(t *testing.T) {
	engine := NewDraftEngine()
	draft := schedule.Draft{
		WorkType: schedule.WorkArrangementHybrid,
		Details:  []schedule.WorkScheduleDetail{wfoDetail(1, 10), wfaDetail(2), wfaDetail(3)},
	}

	_, err := engine.RemoveDetail(draft, 2)
	require.NoError(t, err)
	assert.Len(t, draft.Details, 3)

	_, err = engine.SetMainWorkType(draft, schedule.WorkArrangementWFA)
	require.NoError(t, err)
	assert.Equal(t, schedule.WorkArrangementHybrid, draft.WorkType)
	assert.NotNil(t, draft.Details[0].LocationID)
}
