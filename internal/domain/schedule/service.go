package schedule

import "context"

// ScheduleService defines business logic for work schedule management
type ScheduleService interface {
	// CreateWorkSchedule validates the draft and persists a new schedule
	CreateWorkSchedule(ctx context.Context, req CreateWorkScheduleRequest) (WorkScheduleResponse, error)

	// UpdateWorkSchedule validates the draft and persists changes, honoring
	// the deleted-detail ID list
	UpdateWorkSchedule(ctx context.Context, req UpdateWorkScheduleRequest) (WorkScheduleResponse, error)

	// GetWorkSchedule retrieves a work schedule by ID
	GetWorkSchedule(ctx context.Context, id string) (WorkScheduleResponse, error)

	// ListWorkSchedules retrieves work schedules with filters
	ListWorkSchedules(ctx context.Context, filter WorkScheduleFilter) (ListWorkScheduleResponse, error)

	// ApplyDraftOp applies one edit operation to a draft. Rule violations
	// come back as a message with the draft unchanged, never as a half
	// applied edit.
	ApplyDraftOp(ctx context.Context, req ApplyDraftOpRequest) (ApplyDraftOpResponse, error)
}
