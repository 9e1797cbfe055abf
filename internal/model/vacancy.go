package model

import "time"

const (
	LocationOffice = "office"
	LocationPlant  = "plant"
)

const (
	AddressOffice = "Новосибирск, Депутатская 2"
	AddressPlant  = "Новосибирск, Электровозная 3 к1"
)

// Vacancy represents an open position.
type Vacancy struct {
	ID             int64     `json:"id"`
	Location       string    `json:"location"` // "office" | "plant"
	Title          string    `json:"title"`
	Salary         *string   `json:"salary,omitempty"`
	PayPeriod      *string   `json:"pay_period,omitempty"`
	Experience     *string   `json:"experience,omitempty"`
	EmploymentType *string   `json:"employment_type,omitempty"`
	Schedule       *string   `json:"schedule,omitempty"`
	WorkHours      *string   `json:"work_hours,omitempty"`
	WorkFormat     *string   `json:"work_format,omitempty"`
	Description    *string   `json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// LocationHuman returns the location with its street address.
func (v Vacancy) LocationHuman() string {
	if v.Location == LocationOffice {
		return "Офис (" + AddressOffice + ")"
	}

	return "Производство (" + AddressPlant + ")"
}
