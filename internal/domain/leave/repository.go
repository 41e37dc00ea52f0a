package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	// Create creates a new leave request
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a leave request by ID
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// Update updates an existing leave request
	Update(ctx context.Context, request LeaveRequest) error

	// List retrieves leave requests with filters and pagination
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)

	// ListForWindow retrieves every leave request overlapping the reporting
	// window, used by the overview timeline pipeline
	ListForWindow(ctx context.Context, from, to time.Time) ([]LeaveRequest, error)
}
