package attendance

import (
	"github.com/161corp/hr-backend-go/internal/pkg/normalize"
	"github.com/161corp/hr-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	CheckIn    string `json:"check_in,omitempty"`
	CheckOut   string `json:"check_out,omitempty"`
}

type ListAttendanceFilter struct {
	EmployeeID int64 `json:"employee_id"`
	Month      int   `json:"month"`
	Year       int   `json:"year"`
}

type AttendanceResponse struct {
	ID           int64  `json:"id"`
	EmployeeID   int64  `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	CheckIn      string `json:"check_in,omitempty"`
	CheckOut     string `json:"check_out,omitempty"`
}

type MonthlySummaryResponse struct {
	DepartmentName string `json:"department_name"`
	Present        int64  `json:"present"`
	Absent         int64  `json:"absent"`
	OnLeave        int64  `json:"on_leave"`
}

type MutationResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

func (r MarkAttendanceRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	}
	if !validator.IsInSlice(r.Status, []string{string(StatusPresent), string(StatusAbsent), string(StatusOnLeave)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Present, Absent or On Leave"})
	}
	return errs
}

// Normalize converts the display-format request into an Attendance record.
func (r MarkAttendanceRequest) Normalize() (Attendance, error) {
	var att Attendance
	att.EmployeeID = r.EmployeeID
	att.Status = Status(r.Status)

	date, err := normalize.ParseDisplayDate(r.Date)
	if err != nil {
		return Attendance{}, err
	}
	if err := normalize.ValidateAttendanceDate(date); err != nil {
		return Attendance{}, err
	}
	att.Date = date

	if r.CheckIn != "" {
		checkIn, err := normalize.ParseDisplayTime(r.CheckIn)
		if err != nil {
			return Attendance{}, err
		}
		att.CheckIn = &checkIn
	}
	if r.CheckOut != "" {
		checkOut, err := normalize.ParseDisplayTime(r.CheckOut)
		if err != nil {
			return Attendance{}, err
		}
		att.CheckOut = &checkOut
	}
	return att, nil
}

func ToAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         normalize.FormatDisplayDate(&a.Date),
		Status:       string(a.Status),
		CheckIn:      normalize.FormatDisplayTime(a.CheckIn),
		CheckOut:     normalize.FormatDisplayTime(a.CheckOut),
	}
}
