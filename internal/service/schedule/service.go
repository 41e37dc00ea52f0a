package schedule

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/SukaMajuu/hris2-sub001/internal/domain/schedule"
)

type scheduleServiceImpl struct {
	workScheduleRepo schedule.WorkScheduleRepository
	locationRepo     schedule.LocationRepository
	engine           *DraftEngine
}

func NewScheduleService(
	workScheduleRepo schedule.WorkScheduleRepository,
	locationRepo schedule.LocationRepository,
) schedule.ScheduleService {
	return &scheduleServiceImpl{
		workScheduleRepo: workScheduleRepo,
		locationRepo:     locationRepo,
		engine:           NewDraftEngine(),
	}
}

// CreateWorkSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) CreateWorkSchedule(ctx context.Context, req schedule.CreateWorkScheduleRequest) (schedule.WorkScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	draft := req.ToDraft()
	if err := s.resolveLocations(ctx, &draft); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}
	if err := draft.ValidateForSave(); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	created, err := s.workScheduleRepo.Create(ctx, schedule.WorkSchedule{
		Name:     draft.Name,
		WorkType: draft.WorkType,
		Details:  draft.Details,
	})
	if err != nil {
		return schedule.WorkScheduleResponse{}, fmt.Errorf("failed to create work schedule: %w", err)
	}

	return mapWorkScheduleToResponse(created), nil
}

// UpdateWorkSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) UpdateWorkSchedule(ctx context.Context, req schedule.UpdateWorkScheduleRequest) (schedule.WorkScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	if _, err := s.workScheduleRepo.GetByID(ctx, req.ID); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	draft := req.ToDraft()
	if err := s.resolveLocations(ctx, &draft); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}
	if err := draft.ValidateForSave(); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	updated, err := s.workScheduleRepo.Update(ctx, schedule.WorkSchedule{
		ID:       draft.ID,
		Name:     draft.Name,
		WorkType: draft.WorkType,
		Details:  draft.Details,
	}, draft.DeletedDetailIDs)
	if err != nil {
		return schedule.WorkScheduleResponse{}, fmt.Errorf("failed to update work schedule: %w", err)
	}

	return mapWorkScheduleToResponse(updated), nil
}

// GetWorkSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetWorkSchedule(ctx context.Context, id string) (schedule.WorkScheduleResponse, error) {
	ws, err := s.workScheduleRepo.GetByID(ctx, id)
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}
	return mapWorkScheduleToResponse(ws), nil
}

// ListWorkSchedules implements schedule.ScheduleService.
func (s *scheduleServiceImpl) ListWorkSchedules(ctx context.Context, filter schedule.WorkScheduleFilter) (schedule.ListWorkScheduleResponse, error) {
	if err := filter.Validate(); err != nil {
		return schedule.ListWorkScheduleResponse{}, err
	}

	schedules, totalCount, err := s.workScheduleRepo.List(ctx, filter)
	if err != nil {
		return schedule.ListWorkScheduleResponse{}, fmt.Errorf("failed to list work schedules: %w", err)
	}

	responses := make([]schedule.WorkScheduleResponse, 0, len(schedules))
	for _, ws := range schedules {
		responses = append(responses, mapWorkScheduleToResponse(ws))
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(filter.Limit)))
	showingStart := (filter.Page-1)*filter.Limit + 1
	showingEnd := showingStart + len(responses) - 1
	if len(responses) == 0 {
		showingStart = 0
		showingEnd = 0
	}

	return schedule.ListWorkScheduleResponse{
		TotalCount:    totalCount,
		Page:          filter.Page,
		Limit:         filter.Limit,
		TotalPages:    totalPages,
		Showing:       fmt.Sprintf("%d-%d of %d", showingStart, showingEnd, totalCount),
		WorkSchedules: responses,
	}, nil
}

// ApplyDraftOp implements schedule.ScheduleService. Rule violations are part
// of the response payload so the form can surface them inline; only malformed
// requests produce an error return.
func (s *scheduleServiceImpl) ApplyDraftOp(ctx context.Context, req schedule.ApplyDraftOpRequest) (schedule.ApplyDraftOpResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ApplyDraftOpResponse{}, err
	}

	draft := req.Draft.ToDraft()

	var (
		result schedule.Draft
		err    error
	)
	switch req.Op {
	case schedule.DraftOpSetMainWorkType:
		result, err = s.engine.SetMainWorkType(draft, schedule.WorkArrangement(*req.WorkType))
	case schedule.DraftOpAddDetail:
		result, err = s.engine.AddDetail(draft)
	case schedule.DraftOpRemoveDetail:
		result, err = s.engine.RemoveDetail(draft, *req.Index)
	case schedule.DraftOpSetDetailWorkType:
		result, err = s.engine.SetDetailWorkType(draft, *req.Index, schedule.WorkArrangement(*req.WorkType))
	default:
		return schedule.ApplyDraftOpResponse{}, schedule.ErrInvalidRequestData
	}

	if err != nil {
		msg := err.Error()
		return schedule.ApplyDraftOpResponse{
			Draft: schedule.DraftToPayload(draft),
			Error: &msg,
		}, nil
	}

	if err := s.resolveLocations(ctx, &result); err != nil {
		return schedule.ApplyDraftOpResponse{}, err
	}

	return schedule.ApplyDraftOpResponse{Draft: schedule.DraftToPayload(result)}, nil
}

// resolveLocations attaches a location snapshot to every detail that carries
// a LocationID but no snapshot yet.
func (s *scheduleServiceImpl) resolveLocations(ctx context.Context, draft *schedule.Draft) error {
	for i := range draft.Details {
		det := &draft.Details[i]
		if det.LocationID == nil || det.Location != nil {
			continue
		}
		loc, err := s.locationRepo.GetByID(ctx, *det.LocationID)
		if err != nil {
			return err
		}
		det.Location = &loc
	}
	return nil
}

func mapWorkScheduleToResponse(ws schedule.WorkSchedule) schedule.WorkScheduleResponse {
	details := make([]schedule.WorkScheduleDetailResponse, 0, len(ws.Details))
	for _, det := range ws.Details {
		detResp := schedule.WorkScheduleDetailResponse{
			ID:             det.ID,
			WorktypeDetail: string(det.WorktypeDetail),
			WorkDays:       det.WorkDays,
			CheckInStart:   det.CheckInStart,
			CheckInEnd:     det.CheckInEnd,
			BreakStart:     det.BreakStart,
			BreakEnd:       det.BreakEnd,
			CheckOutStart:  det.CheckOutStart,
			CheckOutEnd:    det.CheckOutEnd,
			LocationID:     det.LocationID,
			IsActive:       det.IsActive,
		}
		if det.Location != nil {
			detResp.Location = &schedule.LocationResponse{
				ID:            det.Location.ID,
				Name:          det.Location.Name,
				AddressDetail: det.Location.AddressDetail,
				Latitude:      det.Location.Latitude,
				Longitude:     det.Location.Longitude,
				RadiusM:       det.Location.RadiusM,
			}
		}
		details = append(details, detResp)
	}

	return schedule.WorkScheduleResponse{
		ID:        ws.ID,
		Name:      ws.Name,
		WorkType:  string(ws.WorkType),
		Details:   details,
		CreatedAt: ws.CreatedAt.Format(time.RFC3339),
		UpdatedAt: ws.UpdatedAt.Format(time.RFC3339),
	}
}
