package employee

import "context"

type EmployeeRepository interface {
	// GetByID retrieves an employee by ID, with the owning work schedule and
	// its details loaded
	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves employees with filters and pagination
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)

	// ListAll retrieves every employee, used as the lookup table by the
	// overview timeline pipeline
	ListAll(ctx context.Context) ([]Employee, error)
}
