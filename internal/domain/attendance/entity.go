package attendance

import "time"

type Attendance struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	Status     Status
	CheckIn    *time.Time
	CheckOut   *time.Time

	// Populated from the attendance view.
	EmployeeName string
}

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusOnLeave Status = "On Leave"
)

// MonthlySummary aggregates one department's attendance for a month.
type MonthlySummary struct {
	DepartmentName string
	Present        int64
	Absent         int64
	OnLeave        int64
}
