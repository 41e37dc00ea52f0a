package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SukaMajuu/hris2-sub001/internal/domain/leave"
)

type stubLeaveRequestRepo struct {
	requests map[string]leave.LeaveRequest
	nextID   int
	updated  *leave.LeaveRequest
}

func newStubLeaveRequestRepo(seed ...leave.LeaveRequest) *stubLeaveRequestRepo {
	repo := &stubLeaveRequestRepo{requests: map[string]leave.LeaveRequest{}, nextID: 1}
	for _, r := range seed {
		repo.requests[r.ID] = r
	}
	return repo
}

func (s *stubLeaveRequestRepo) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	request.ID = fmt.Sprintf("lr-%d", s.nextID)
	s.nextID++
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	s.requests[request.ID] = request
	return request, nil
}

func (s *stubLeaveRequestRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	request, ok := s.requests[id]
	if !ok {
		return leave.LeaveRequest{}, pgx.ErrNoRows
	}
	return request, nil
}

func (s *stubLeaveRequestRepo) Update(_ context.Context, request leave.LeaveRequest) error {
	s.requests[request.ID] = request
	s.updated = &request
	return nil
}

func (s *stubLeaveRequestRepo) List(_ context.Context, _ leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	return nil, 0, nil
}

func (s *stubLeaveRequestRepo) ListForWindow(_ context.Context, _, _ time.Time) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func waitingRequest(id string) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:         id,
		EmployeeID: "emp-1",
		LeaveType:  leave.LeaveTypeSick,
		StartDate:  time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
		Status:     leave.LeaveRequestStatusWaitingApproval,
	}
}

func TestCreateLeaveRequestStartsWaiting(t *testing.T) {
	repo := newStubLeaveRequestRepo()
	svc := NewLeaveService(repo)

	resp, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID:   "emp-1",
		LeaveType:    "annual",
		StartDate:    "2025-03-05",
		EndDate:      "2025-03-07",
		EmployeeNote: "family trip",
	})

	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveRequestStatusWaitingApproval), resp.Status)
	assert.Equal(t, "2025-03-05", resp.StartDate)
	assert.Equal(t, "2025-03-07", resp.EndDate)
}

func TestCreateLeaveRequestRejectsInvertedRange(t *testing.T) {
	repo := newStubLeaveRequestRepo()
	svc := NewLeaveService(repo)

	_, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "annual",
		StartDate:  "2025-03-07",
		EndDate:    "2025-03-05",
	})

	require.Error(t, err)
	assert.Empty(t, repo.requests)
}

func TestApproveLeaveRequest(t *testing.T) {
	repo := newStubLeaveRequestRepo(waitingRequest("lr-1"))
	svc := NewLeaveService(repo)

	resp, err := svc.ApproveLeaveRequest(context.Background(), leave.ApproveLeaveRequestRequest{ID: "lr-1"})

	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveRequestStatusApproved), resp.Status)
	require.NotNil(t, repo.updated)
	assert.Equal(t, leave.LeaveRequestStatusApproved, repo.updated.Status)
}

func TestRejectLeaveRequestRequiresAdminNote(t *testing.T) {
	repo := newStubLeaveRequestRepo(waitingRequest("lr-1"))
	svc := NewLeaveService(repo)

	_, err := svc.RejectLeaveRequest(context.Background(), leave.RejectLeaveRequestRequest{ID: "lr-1"})
	require.Error(t, err)
	assert.Nil(t, repo.updated)

	resp, err := svc.RejectLeaveRequest(context.Background(), leave.RejectLeaveRequestRequest{
		ID:        "lr-1",
		AdminNote: "insufficient balance",
	})
	require.NoError(t, err)
	assert.Equal(t, string(leave.LeaveRequestStatusRejected), resp.Status)
	require.NotNil(t, resp.AdminNote)
	assert.Equal(t, "insufficient balance", *resp.AdminNote)
}

func TestDecideIsFinal(t *testing.T) {
	req := waitingRequest("lr-1")
	req.Status = leave.LeaveRequestStatusApproved
	repo := newStubLeaveRequestRepo(req)
	svc := NewLeaveService(repo)

	_, err := svc.ApproveLeaveRequest(context.Background(), leave.ApproveLeaveRequestRequest{ID: "lr-1"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	_, err = svc.RejectLeaveRequest(context.Background(), leave.RejectLeaveRequestRequest{
		ID:        "lr-1",
		AdminNote: "already approved",
	})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestDecideUnknownRequest(t *testing.T) {
	repo := newStubLeaveRequestRepo()
	svc := NewLeaveService(repo)

	_, err := svc.ApproveLeaveRequest(context.Background(), leave.ApproveLeaveRequestRequest{ID: "missing"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}
