package service

import (
	"context"
	"errors"
	"fmt"

	"space-missions-api/internal/database/models"
	apperrors "space-missions-api/internal/errors"
	"space-missions-api/internal/logger"
	"space-missions-api/internal/repository"

	"gorm.io/gorm"
)

// PlanetService handles business logic for planets
type PlanetService struct {
	transactor repository.TransactorInterface
}

// Ensure PlanetService implements PlanetServiceInterface
var _ PlanetServiceInterface = (*PlanetService)(nil)

// NewPlanetService creates a new planet service
func NewPlanetService(transactor repository.TransactorInterface) *PlanetService {
	return &PlanetService{transactor: transactor}
}

// List returns every planet without missions
func (s *PlanetService) List(ctx context.Context) ([]PlanetSummary, error) {
	var planets []models.Planet
	err := s.transactor.WithinTransaction(ctx, func(repos repository.Repositories) error {
		var err error
		planets, err = repos.Planets.GetAll()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list planets: %w", err)
	}

	summaries := make([]PlanetSummary, len(planets))
	for i := range planets {
		summaries[i] = toPlanetSummary(&planets[i])
	}
	return summaries, nil
}

// GetByID returns a planet with missions and each mission's scientist
func (s *PlanetService) GetByID(ctx context.Context, id int) (*PlanetResponse, error) {
	var planet *models.Planet
	err := s.transactor.WithinTransaction(ctx, func(repos repository.Repositories) error {
		var err error
		planet, err = repos.Planets.GetWithMissions(id)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlanetNotFound
		}
		return nil, fmt.Errorf("failed to get planet: %w", err)
	}
	return toPlanetResponse(planet), nil
}

// Delete removes a planet and all missions to it
func (s *PlanetService) Delete(ctx context.Context, id int) error {
	var removed int
	err := s.transactor.WithinTransaction(ctx, func(repos repository.Repositories) error {
		missions, err := repos.Missions.GetByPlanetID(id)
		if err != nil {
			return err
		}
		removed = len(missions)
		return repos.Planets.Delete(id)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPlanetNotFound
		}
		return fmt.Errorf("failed to delete planet: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"planet_id":        id,
		"missions_removed": removed,
	}).Info("Planet deleted")
	return nil
}
