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

// MissionService handles business logic for missions
type MissionService struct {
	transactor repository.TransactorInterface
}

// Ensure MissionService implements MissionServiceInterface
var _ MissionServiceInterface = (*MissionService)(nil)

// NewMissionService creates a new mission service
func NewMissionService(transactor repository.TransactorInterface) *MissionService {
	return &MissionService{transactor: transactor}
}

// CreateMissionRequest represents the request to create a mission
type CreateMissionRequest struct {
	Name        string `json:"name" example:"Project Hail Mary"`
	ScientistID *int   `json:"scientist_id" example:"1"`
	PlanetID    *int   `json:"planet_id" example:"1"`
}

// GetByID returns a mission with its scientist and planet
func (s *MissionService) GetByID(ctx context.Context, id int) (*MissionResponse, error) {
	var mission *models.Mission
	err := s.transactor.WithinTransaction(ctx, func(repos repository.Repositories) error {
		var err error
		mission, err = repos.Missions.GetWithRelations(id)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMissionNotFound
		}
		return nil, fmt.Errorf("failed to get mission: %w", err)
	}
	return toMissionResponse(mission), nil
}

// Create validates and inserts a mission. Both referenced parents must exist.
func (s *MissionService) Create(ctx context.Context, req *CreateMissionRequest) (*MissionResponse, error) {
	mission := &models.Mission{
		Name:        req.Name,
		ScientistID: req.ScientistID,
		PlanetID:    req.PlanetID,
	}
	if err := mission.Validate(); err != nil {
		return nil, err
	}

	var created *models.Mission
	err := s.transactor.WithinTransaction(ctx, func(repos repository.Repositories) error {
		if err := ensureExists(func() error {
			_, err := repos.Scientists.GetByID(*mission.ScientistID)
			return err
		}, "scientist_id", "scientist does not exist"); err != nil {
			return err
		}
		if err := ensureExists(func() error {
			_, err := repos.Planets.GetByID(*mission.PlanetID)
			return err
		}, "planet_id", "planet does not exist"); err != nil {
			return err
		}

		if err := repos.Missions.Create(mission); err != nil {
			return err
		}

		var err error
		created, err = repos.Missions.GetWithRelations(mission.ID)
		return err
	})
	if err != nil {
		if apperrors.IsValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create mission: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"mission_id":   created.ID,
		"scientist_id": derefID(created.ScientistID),
		"planet_id":    derefID(created.PlanetID),
	}).Info("Mission created")
	return toMissionResponse(created), nil
}

// ensureExists turns a record-not-found lookup into a validation error on field
func ensureExists(lookup func() error, field, message string) error {
	err := lookup()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewValidationError(field, message)
	}
	return err
}
