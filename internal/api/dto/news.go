package dto

import "github.com/aliskhannn/corpsite/internal/model"

// NewsRequest is the body of news create and update requests. Gallery is only
// read on create.
type NewsRequest struct {
	Title   string   `json:"title" validate:"required,max=255"`
	Excerpt *string  `json:"excerpt" validate:"omitempty,max=600"`
	Body    *string  `json:"body"`
	Cover   *string  `json:"cover" validate:"omitempty,max=512"`
	Pinned  bool     `json:"pinned"`
	Gallery []string `json:"gallery" validate:"omitempty,dive,required,max=512"`
}

func (r NewsRequest) ToModel(id int64) model.News {
	return model.News{
		ID:      id,
		Title:   r.Title,
		Excerpt: blankToNil(r.Excerpt),
		Body:    blankToNil(r.Body),
		Cover:   blankToNil(r.Cover),
		Pinned:  r.Pinned,
	}
}

// ImagesRequest adds gallery images by upload path or URL.
type ImagesRequest struct {
	Paths []string `json:"paths" validate:"required,min=1,dive,required,max=512"`
}
