package models

import "gorm.io/gorm"

// Mission links one scientist to one planet.
//
// ScientistID and PlanetID are pointers so that an absent id can be told apart
// from a literal zero: zero passes validation and is left for the foreign key
// to reject.
type Mission struct {
	ID          int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string     `json:"name" gorm:"not null" validate:"required"`
	ScientistID *int       `json:"scientist_id" gorm:"not null;index" validate:"required"`
	PlanetID    *int       `json:"planet_id" gorm:"not null;index" validate:"required"`
	Scientist   *Scientist `json:"scientist,omitempty" validate:"-"`
	Planet      *Planet    `json:"planet,omitempty" validate:"-"`
}

// TableName returns the table name for Mission
func (Mission) TableName() string {
	return "missions"
}

// Validate checks that name, scientist_id and planet_id are present
func (m *Mission) Validate() error {
	return validateStruct(m)
}

// BeforeSave rejects invalid rows on every create and update path
func (m *Mission) BeforeSave(tx *gorm.DB) error {
	return m.Validate()
}
