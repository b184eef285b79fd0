package department

type Department struct {
	ID        int64
	Name      string
	Location  *string
	ManagerID *int64

	// Populated by list queries.
	ManagerName   *string
	EmployeeCount int64
}
