package dto

import "github.com/aliskhannn/corpsite/internal/model"

type VacancyRequest struct {
	Location       string  `json:"location" validate:"required,oneof=office plant"`
	Title          string  `json:"title" validate:"required,max=255"`
	Salary         *string `json:"salary" validate:"omitempty,max=255"`
	PayPeriod      *string `json:"pay_period" validate:"omitempty,max=255"`
	Experience     *string `json:"experience" validate:"omitempty,max=255"`
	EmploymentType *string `json:"employment_type" validate:"omitempty,max=64"`
	Schedule       *string `json:"schedule" validate:"omitempty,max=255"`
	WorkHours      *string `json:"work_hours" validate:"omitempty,max=255"`
	WorkFormat     *string `json:"work_format" validate:"omitempty,max=255"`
	Description    *string `json:"description"`
}

func (r VacancyRequest) ToModel(id int64) model.Vacancy {
	return model.Vacancy{
		ID:             id,
		Location:       r.Location,
		Title:          r.Title,
		Salary:         blankToNil(r.Salary),
		PayPeriod:      blankToNil(r.PayPeriod),
		Experience:     blankToNil(r.Experience),
		EmploymentType: blankToNil(r.EmploymentType),
		Schedule:       blankToNil(r.Schedule),
		WorkHours:      blankToNil(r.WorkHours),
		WorkFormat:     blankToNil(r.WorkFormat),
		Description:    blankToNil(r.Description),
	}
}
