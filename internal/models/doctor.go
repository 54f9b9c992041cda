package models

import "time"

// ===============================
// Doctor Specialization
// ===============================

type Specialization string

const (
	SpecOrthodontist Specialization = "orthodontist"
	SpecSurgeon      Specialization = "surgeon"
	SpecTherapist    Specialization = "therapist"
	SpecPeriodontist Specialization = "periodontist"
	SpecOrthopedist  Specialization = "orthopedist"
)

func (s Specialization) Valid() bool {
	switch s {
	case SpecOrthodontist, SpecSurgeon, SpecTherapist, SpecPeriodontist, SpecOrthopedist:
		return true
	}
	return false
}

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName      string         `gorm:"size:100;not null" json:"first_name"`
	LastName       string         `gorm:"size:100;not null" json:"last_name"`
	Specialization Specialization `gorm:"size:30;index" json:"specialization"`

	ExperienceYears int     `json:"experience_years"`
	PhotoURL        *string `gorm:"size:255" json:"photo_url"`

	// Static profile rating, shown until real reviews accumulate.
	Rating       *float64 `json:"rating"`
	ReviewsCount *int     `json:"reviews_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Doctor) FullName() string {
	return d.FirstName + " " + d.LastName
}
