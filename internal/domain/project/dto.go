package project

import (
	"github.com/161corp/hr-backend-go/internal/pkg/normalize"
	"github.com/161corp/hr-backend-go/internal/pkg/validator"
)

type CreateProjectRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
	Budget    string `json:"budget"`
}

// Only the name and end date can change after creation.
type UpdateProjectRequest struct {
	Name    string `json:"name"`
	EndDate string `json:"end_date,omitempty"`
}

type ListProjectFilter struct {
	Status string `json:"status,omitempty"`
}

type ProjectResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date,omitempty"`
	Budget        int64  `json:"budget"`
	Status        string `json:"status"`
	EmployeeCount int64  `json:"employee_count"`
	TotalHours    string `json:"total_hours"`
}

type MutationResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

func (r CreateProjectRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "project name is required"})
	}
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start date is required"})
	}
	if validator.IsEmpty(r.Budget) {
		errs = append(errs, validator.ValidationError{Field: "budget", Message: "budget is required"})
	}
	return errs
}

func (r CreateProjectRequest) Normalize() (Project, error) {
	var p Project
	p.Name = r.Name

	startDate, err := normalize.ParseDisplayDate(r.StartDate)
	if err != nil {
		return Project{}, err
	}
	p.StartDate = startDate

	if r.EndDate != "" {
		endDate, err := normalize.ParseDisplayDate(r.EndDate)
		if err != nil {
			return Project{}, err
		}
		p.EndDate = &endDate
	}

	budget, err := normalize.ParseCurrencyInput(r.Budget)
	if err != nil {
		return Project{}, err
	}
	if err := normalize.ValidateSalary(budget); err != nil {
		return Project{}, err
	}
	p.Budget = normalize.ToStorageMoney(budget)

	return p, nil
}

func (r UpdateProjectRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "project name is required"})
	}
	return errs
}

func (r UpdateProjectRequest) Normalize() (Project, error) {
	var p Project
	p.Name = r.Name
	if r.EndDate != "" {
		endDate, err := normalize.ParseDisplayDate(r.EndDate)
		if err != nil {
			return Project{}, err
		}
		p.EndDate = &endDate
	}
	return p, nil
}

func ToProjectResponse(p Project) ProjectResponse {
	budget := p.Budget
	status := StatusOngoing
	if p.EndDate != nil {
		status = StatusCompleted
	}
	return ProjectResponse{
		ID:            p.ID,
		Name:          p.Name,
		StartDate:     normalize.FormatDisplayDate(&p.StartDate),
		EndDate:       normalize.FormatDisplayDate(p.EndDate),
		Budget:        normalize.ToDisplayMoney(&budget),
		Status:        string(status),
		EmployeeCount: p.EmployeeCount,
		TotalHours:    p.TotalHours.String(),
	}
}
