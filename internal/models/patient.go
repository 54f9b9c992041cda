package models

import "time"

type Patient struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string  `gorm:"size:100;not null" json:"first_name"`
	LastName  string  `gorm:"size:100;not null" json:"last_name"`
	Phone     string  `gorm:"size:20;not null" json:"phone"`
	Email     *string `gorm:"size:100" json:"email"`
	BirthDate *string `gorm:"size:10" json:"birth_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
