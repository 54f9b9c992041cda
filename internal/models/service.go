package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:150;not null" json:"name"`
	Description *string `gorm:"size:500" json:"description"`

	Price float64 `json:"price"`

	// Advisory only: the scheduler books fixed half-hour slots and does not
	// consult procedure duration when checking occupancy.
	DurationMinutes int `json:"duration_minutes"`

	Specialization *Specialization `gorm:"size:30" json:"specialization"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
