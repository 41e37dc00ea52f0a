package employee

import "errors"

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrNoScheduleForEmployee = errors.New("employee has no work schedule assigned")
)
