package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request has already been approved or rejected")
	ErrInvalidDateRange             = errors.New("start_date must not be after end_date")
	ErrInvalidLeaveType             = errors.New("invalid leave type")
)
