package leave

import "context"

// LeaveService defines business logic for leave request operations
type LeaveService interface {
	// CreateLeaveRequest submits a new leave request for an employee
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)

	// GetLeaveRequest retrieves a single leave request by ID
	GetLeaveRequest(ctx context.Context, id string) (LeaveRequestResponse, error)

	// ListLeaveRequests retrieves leave requests with filters (admin)
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) (ListLeaveRequestResponse, error)

	// ApproveLeaveRequest approves a waiting leave request
	ApproveLeaveRequest(ctx context.Context, req ApproveLeaveRequestRequest) (LeaveRequestResponse, error)

	// RejectLeaveRequest rejects a waiting leave request with an admin note
	RejectLeaveRequest(ctx context.Context, req RejectLeaveRequestRequest) (LeaveRequestResponse, error)
}
