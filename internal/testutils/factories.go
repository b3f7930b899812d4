package testutils

import (
	"space-missions-api/internal/database/models"

	"gorm.io/gorm"
)

// ScientistFactory provides methods to create test Scientist data
type ScientistFactory struct{}

// NewScientistFactory creates a new ScientistFactory
func NewScientistFactory() *ScientistFactory {
	return &ScientistFactory{}
}

// Create creates a test Scientist with default values
func (f *ScientistFactory) Create() *models.Scientist {
	return &models.Scientist{
		Name:         "Mel T. Valent",
		FieldOfStudy: "Xenobiology",
	}
}

// WithName sets a custom name for the scientist
func (f *ScientistFactory) WithName(name string) *models.Scientist {
	s := f.Create()
	s.Name = name
	return s
}

// PlanetFactory provides methods to create test Planet data
type PlanetFactory struct{}

// NewPlanetFactory creates a new PlanetFactory
func NewPlanetFactory() *PlanetFactory {
	return &PlanetFactory{}
}

// Create creates a test Planet with default values
func (f *PlanetFactory) Create() *models.Planet {
	return &models.Planet{
		Name:              "TauCeti F",
		DistanceFromEarth: 11,
		NearestStar:       "TauCeti",
	}
}

// WithName sets a custom name for the planet
func (f *PlanetFactory) WithName(name string) *models.Planet {
	p := f.Create()
	p.Name = name
	return p
}

// MissionFactory provides methods to create test Mission data
type MissionFactory struct{}

// NewMissionFactory creates a new MissionFactory
func NewMissionFactory() *MissionFactory {
	return &MissionFactory{}
}

// Create creates a test Mission for the given scientist and planet
func (f *MissionFactory) Create(scientistID, planetID int) *models.Mission {
	return &models.Mission{
		Name:        "Explore TauCeti F",
		ScientistID: &scientistID,
		PlanetID:    &planetID,
	}
}

// WithName sets a custom name for the mission
func (f *MissionFactory) WithName(name string, scientistID, planetID int) *models.Mission {
	m := f.Create(scientistID, planetID)
	m.Name = name
	return m
}

// Seed inserts one scientist and one planet and returns them
func Seed(db *gorm.DB) (*models.Scientist, *models.Planet, error) {
	s := NewScientistFactory().Create()
	if err := db.Create(s).Error; err != nil {
		return nil, nil, err
	}
	p := NewPlanetFactory().Create()
	if err := db.Create(p).Error; err != nil {
		return nil, nil, err
	}
	return s, p, nil
}
