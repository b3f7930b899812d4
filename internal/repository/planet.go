package repository

import (
	"space-missions-api/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlanetRepository handles database operations for planets
type PlanetRepository struct {
	db *gorm.DB
}

// Ensure PlanetRepository implements PlanetRepositoryInterface
var _ PlanetRepositoryInterface = (*PlanetRepository)(nil)

// NewPlanetRepository creates a new planet repository
func NewPlanetRepository(db *gorm.DB) *PlanetRepository {
	return &PlanetRepository{db: db}
}

// Create creates a new planet
func (r *PlanetRepository) Create(planet *models.Planet) error {
	return r.db.Omit(clause.Associations).Create(planet).Error
}

// GetByID retrieves a planet by ID
func (r *PlanetRepository) GetByID(id int) (*models.Planet, error) {
	var planet models.Planet
	if err := r.db.First(&planet, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &planet, nil
}

// GetByName retrieves the first planet with the given name
func (r *PlanetRepository) GetByName(name string) (*models.Planet, error) {
	var planet models.Planet
	if err := r.db.Order("id ASC").First(&planet, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &planet, nil
}

// GetWithMissions retrieves a planet with missions and each mission's scientist
func (r *PlanetRepository) GetWithMissions(id int) (*models.Planet, error) {
	var planet models.Planet
	err := r.db.
		Preload("Missions", func(db *gorm.DB) *gorm.DB { return db.Order("missions.id ASC") }).
		Preload("Missions.Scientist").
		First(&planet, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &planet, nil
}

// GetAll retrieves all planets ordered by ID
func (r *PlanetRepository) GetAll() ([]models.Planet, error) {
	var planets []models.Planet
	if err := r.db.Order("id ASC").Find(&planets).Error; err != nil {
		return nil, err
	}
	return planets, nil
}

// Delete deletes a planet together with its missions.
// A missing id, zero included, yields gorm.ErrRecordNotFound.
func (r *PlanetRepository) Delete(id int) error {
	var planet models.Planet
	if err := r.db.First(&planet, "id = ?", id).Error; err != nil {
		return err
	}
	return r.db.Select("Missions").Delete(&planet).Error
}

// DeleteAll removes every planet; missions go with them through the cascade
func (r *PlanetRepository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Planet{}).Error
}
