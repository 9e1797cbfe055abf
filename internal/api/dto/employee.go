package dto

import "github.com/aliskhannn/corpsite/internal/model"

// EmployeeRequest is the body of employee create and update requests.
type EmployeeRequest struct {
	FullName string  `json:"full_name" validate:"required,max=255"`
	Title    string  `json:"title" validate:"required,max=255"`
	Dept     string  `json:"dept" validate:"required,max=255"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Phone    *string `json:"phone" validate:"omitempty,max=64"`
	Photo    *string `json:"photo" validate:"omitempty,max=512"`
	Span2    bool    `json:"span2"`
}

func (r EmployeeRequest) ToModel(id int64) model.Employee {
	return model.Employee{
		ID:       id,
		FullName: r.FullName,
		Title:    r.Title,
		Dept:     r.Dept,
		Email:    blankToNil(r.Email),
		Phone:    blankToNil(r.Phone),
		Photo:    blankToNil(r.Photo),
		Span2:    r.Span2,
	}
}
