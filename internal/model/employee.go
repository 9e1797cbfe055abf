package model

// Employee represents a team member shown on the about page.
type Employee struct {
	ID        int64   `json:"id"`
	FullName  string  `json:"full_name"`
	Title     string  `json:"title"`
	Dept      string  `json:"dept"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Photo     *string `json:"photo,omitempty"`      // upload path or URL
	Span2     bool    `json:"span2"`                // card spans two grid columns
	SortOrder *int    `json:"sort_order,omitempty"` // nil for employees added before manual ordering
}
