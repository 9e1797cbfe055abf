package model

import "time"

// Project represents a portfolio entry.
type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Subtitle    *string   `json:"subtitle,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Description *string   `json:"description,omitempty"`
	Purpose     *string   `json:"purpose,omitempty"`
	Advantages  *string   `json:"advantages,omitempty"` // ";"-separated list
	Application *string   `json:"application,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
