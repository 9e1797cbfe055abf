package dto

import "github.com/aliskhannn/corpsite/internal/model"

type ProjectRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Subtitle    *string `json:"subtitle" validate:"omitempty,max=255"`
	Image       *string `json:"image" validate:"omitempty,max=512"`
	Description *string `json:"description"`
	Purpose     *string `json:"purpose"`
	Advantages  *string `json:"advantages"`
	Application *string `json:"application"`
}

func (r ProjectRequest) ToModel(id int64) model.Project {
	return model.Project{
		ID:          id,
		Title:       r.Title,
		Subtitle:    blankToNil(r.Subtitle),
		Image:       blankToNil(r.Image),
		Description: blankToNil(r.Description),
		Purpose:     blankToNil(r.Purpose),
		Advantages:  blankToNil(r.Advantages),
		Application: blankToNil(r.Application),
	}
}
