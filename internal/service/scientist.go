package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"space-missions-api/internal/database/models"
	apperrors "space-missions-api/internal/errors"
	"space-missions-api/internal/logger"
	"space-missions-api/internal/repository"

	"gorm.io/gorm"
)

// ScientistService handles business logic for scientists
type ScientistService struct {
	transactor repository.TransactorInterface
}

// Ensure ScientistService implements ScientistServiceInterface
var _ ScientistServiceInterface = (*ScientistService)(nil)

// NewScientistService creates a new scientist service
func NewScientistService(transactor repository.TransactorInterface) *ScientistService {
	return &ScientistService{transactor: transactor}
}

// CreateScientistRequest represents the request to create a scientist
type CreateScientistRequest struct {
	Name         string `json:"name" example:"Mel T. Valent"`
	FieldOfStudy string `json:"field_of_study" example:"Xenobiology"`
}

// UpdateScientistRequest represents a partial update. Only keys present in
// the request body are applied.
type UpdateScientistRequest struct {
	Name         OptionalString `json:"name" swaggertype:"string"`
	FieldOfStudy OptionalString `json:"field_of_study" swaggertype:"string"`
}

// OptionalString records whether a JSON key was present at all.
// An explicit null counts as present and empty.
type OptionalString struct {
	Value string
	Set   bool
}

// NewOptionalString returns a present value
func NewOptionalString(value string) OptionalString {
	return OptionalString{Value: value, Set: true}
}

// UnmarshalJSON implements json.Unmarshaler
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = ""
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// List returns every scientist without missions
func (s *ScientistService) List(ctx context.Context) ([]ScientistSummary, error) {
	var scientists []models.Scientist
	err := s.transactor.WithinTransaction(ctx, func(repos repository.Repositories) error {
		var err error
		scientists, err = repos.Scientists.GetAll()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list scientists: %w", err)
	}

	summaries := make([]ScientistSummary, len(scientists))
	for i := range scientists {
		summaries[i] = toScientistSummary(&scientists[i])
	}
	return summaries, nil
}

// GetByID returns a scientist with missions and each mission's planet
func (s *ScientistService) GetByID(ctx context.Context, id int) (*ScientistResponse, error) {
	var scientist *models.Scientist
	err := s.transactor.WithinTransaction(ctx, func(repos repository.Repositories) error {
		var err error
		scientist, err = repos.Scientists.GetWithMissions(id)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScientistNotFound
		}
		return nil, fmt.Errorf("failed to get scientist: %w", err)
	}
	return toScientistResponse(scientist), nil
}

// Exists reports ErrScientistNotFound when no scientist has id
func (s *ScientistService) Exists(ctx context.Context, id int) error {
	err := s.transactor.WithinTransaction(ctx, func(repos repository.Repositories) error {
		_, err := repos.Scientists.GetByID(id)
		return err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrScientistNotFound
		}
		return fmt.Errorf("failed to look up scientist: %w", err)
	}
	return nil
}

// Create validates and inserts a scientist
func (s *ScientistService) Create(ctx context.Context, req *CreateScientistRequest) (*ScientistResponse, error) {
	scientist := &models.Scientist{
		Name:         req.Name,
		FieldOfStudy: req.FieldOfStudy,
	}
	if err := scientist.Validate(); err != nil {
		return nil, err
	}

	err := s.transactor.WithinTransaction(ctx, func(repos repository.Repositories) error {
		return repos.Scientists.Create(scientist)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create scientist: %w", err)
	}

	logger.WithContext(ctx).WithField("scientist_id", scientist.ID).Info("Scientist created")
	return toScientistResponse(scientist), nil
}

// Update applies the supplied fields to an existing scientist
func (s *ScientistService) Update(ctx context.Context, id int, req *UpdateScientistRequest) (*ScientistResponse, error) {
	var updated *models.Scientist
	err := s.transactor.WithinTransaction(ctx, func(repos repository.Repositories) error {
		scientist, err := repos.Scientists.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrScientistNotFound
			}
			return err
		}

		if req.Name.Set {
			scientist.Name = req.Name.Value
		}
		if req.FieldOfStudy.Set {
			scientist.FieldOfStudy = req.FieldOfStudy.Value
		}
		if err := scientist.Validate(); err != nil {
			return err
		}
		if err := repos.Scientists.Update(scientist); err != nil {
			return err
		}

		updated, err = repos.Scientists.GetWithMissions(id)
		return err
	})
	if err != nil {
		if apperrors.IsNotFound(err) || apperrors.IsValidation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update scientist: %w", err)
	}

	logger.WithContext(ctx).WithField("scientist_id", id).Info("Scientist updated")
	return toScientistResponse(updated), nil
}

// Delete removes a scientist and all of their missions
func (s *ScientistService) Delete(ctx context.Context, id int) error {
	var removed int
	err := s.transactor.WithinTransaction(ctx, func(repos repository.Repositories) error {
		missions, err := repos.Missions.GetByScientistID(id)
		if err != nil {
			return err
		}
		removed = len(missions)
		return repos.Scientists.Delete(id)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrScientistNotFound
		}
		return fmt.Errorf("failed to delete scientist: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"scientist_id":     id,
		"missions_removed": removed,
	}).Info("Scientist deleted")
	return nil
}
