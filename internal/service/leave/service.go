package leave

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/SukaMajuu/hris2-sub001/internal/domain/leave"
)

const dateLayout = "2006-01-02"

type leaveServiceImpl struct {
	leaveRequestRepo leave.LeaveRequestRepository
}

func NewLeaveService(leaveRequestRepo leave.LeaveRequestRepository) leave.LeaveService {
	return &leaveServiceImpl{leaveRequestRepo: leaveRequestRepo}
}

// CreateLeaveRequest implements leave.LeaveService.
func (s *leaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDateRange
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDateRange
	}
	if endDate.Before(startDate) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidDateRange
	}

	request := leave.LeaveRequest{
		EmployeeID:    req.EmployeeID,
		LeaveType:     leave.LeaveType(req.LeaveType),
		StartDate:     startDate,
		EndDate:       endDate,
		Status:        leave.LeaveRequestStatusWaitingApproval,
		EmployeeNote:  req.EmployeeNote,
		AttachmentURL: req.AttachmentURL,
	}

	created, err := s.leaveRequestRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return mapLeaveRequestToResponse(created), nil
}

// GetLeaveRequest implements leave.LeaveService.
func (s *leaveServiceImpl) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := s.leaveRequestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return mapLeaveRequestToResponse(request), nil
}

// ListLeaveRequests implements leave.LeaveService.
func (s *leaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}

	requests, totalCount, err := s.leaveRequestRepo.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, mapLeaveRequestToResponse(request))
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(filter.Limit)))
	showingStart := (filter.Page-1)*filter.Limit + 1
	showingEnd := showingStart + len(responses) - 1
	if len(responses) == 0 {
		showingStart = 0
		showingEnd = 0
	}

	return leave.ListLeaveRequestResponse{
		TotalCount:    totalCount,
		Page:          filter.Page,
		Limit:         filter.Limit,
		TotalPages:    totalPages,
		Showing:       fmt.Sprintf("%d-%d of %d", showingStart, showingEnd, totalCount),
		LeaveRequests: responses,
	}, nil
}

// ApproveLeaveRequest implements leave.LeaveService.
func (s *leaveServiceImpl) ApproveLeaveRequest(ctx context.Context, req leave.ApproveLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	return s.decide(ctx, req.ID, leave.LeaveRequestStatusApproved, req.AdminNote)
}

// RejectLeaveRequest implements leave.LeaveService.
func (s *leaveServiceImpl) RejectLeaveRequest(ctx context.Context, req leave.RejectLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return s.decide(ctx, req.ID, leave.LeaveRequestStatusRejected, &req.AdminNote)
}

// decide transitions a waiting request to its final status. A request that
// already left waiting_approval cannot be decided again.
func (s *leaveServiceImpl) decide(ctx context.Context, id string, status leave.LeaveRequestStatus, adminNote *string) (leave.LeaveRequestResponse, error) {
	request, err := s.leaveRequestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.Status != leave.LeaveRequestStatusWaitingApproval {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	request.Status = status
	if adminNote != nil {
		request.AdminNote = adminNote
	}

	if err := s.leaveRequestRepo.Update(ctx, request); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return mapLeaveRequestToResponse(request), nil
}

func mapLeaveRequestToResponse(request leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		ID:            request.ID,
		EmployeeID:    request.EmployeeID,
		EmployeeName:  request.EmployeeName,
		LeaveType:     string(request.LeaveType),
		StartDate:     request.StartDate.Format(dateLayout),
		EndDate:       request.EndDate.Format(dateLayout),
		Status:        string(request.Status),
		EmployeeNote:  request.EmployeeNote,
		AdminNote:     request.AdminNote,
		AttachmentURL: request.AttachmentURL,
		CreatedAt:     request.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     request.UpdatedAt.Format(time.RFC3339),
	}
}
