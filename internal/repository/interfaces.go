package repository

import (
	"context"

	"space-missions-api/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ScientistRepositoryInterface defines the interface for scientist repository operations
type ScientistRepositoryInterface interface {
	Create(scientist *models.Scientist) error
	GetByID(id int) (*models.Scientist, error)
	GetByName(name string) (*models.Scientist, error)
	GetWithMissions(id int) (*models.Scientist, error)
	GetAll() ([]models.Scientist, error)
	Update(scientist *models.Scientist) error
	Delete(id int) error
	DeleteAll() error
}

// PlanetRepositoryInterface defines the interface for planet repository operations
type PlanetRepositoryInterface interface {
	Create(planet *models.Planet) error
	GetByID(id int) (*models.Planet, error)
	GetByName(name string) (*models.Planet, error)
	GetWithMissions(id int) (*models.Planet, error)
	GetAll() ([]models.Planet, error)
	Delete(id int) error
	DeleteAll() error
}

// MissionRepositoryInterface defines the interface for mission repository operations
type MissionRepositoryInterface interface {
	Create(mission *models.Mission) error
	GetByName(name string) (*models.Mission, error)
	GetWithRelations(id int) (*models.Mission, error)
	GetByScientistID(scientistID int) ([]models.Mission, error)
	GetByPlanetID(planetID int) ([]models.Mission, error)
	DeleteAll() error
}

// TransactorInterface runs fn against repositories bound to one transaction.
// A non-nil error from fn rolls the transaction back.
type TransactorInterface interface {
	WithinTransaction(ctx context.Context, fn func(repos Repositories) error) error
}
