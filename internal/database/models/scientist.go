package models

import "gorm.io/gorm"

// Scientist is a researcher who leads missions. Deleting a scientist deletes
// their missions.
type Scientist struct {
	ID           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"name" gorm:"not null" validate:"required"`
	FieldOfStudy string    `json:"field_of_study" gorm:"not null" validate:"required"`
	Missions     []Mission `json:"missions,omitempty" gorm:"foreignKey:ScientistID;constraint:OnDelete:CASCADE" validate:"-"`
}

// TableName returns the table name for Scientist
func (Scientist) TableName() string {
	return "scientists"
}

// Validate checks that name and field_of_study are set
func (s *Scientist) Validate() error {
	return validateStruct(s)
}

// BeforeSave rejects invalid rows on every create and update path
func (s *Scientist) BeforeSave(tx *gorm.DB) error {
	return s.Validate()
}
