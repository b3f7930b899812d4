package repository

import (
	"space-missions-api/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MissionRepository handles database operations for missions
type MissionRepository struct {
	db *gorm.DB
}

// Ensure MissionRepository implements MissionRepositoryInterface
var _ MissionRepositoryInterface = (*MissionRepository)(nil)

// NewMissionRepository creates a new mission repository
func NewMissionRepository(db *gorm.DB) *MissionRepository {
	return &MissionRepository{db: db}
}

// Create creates a new mission. The referenced scientist and planet must exist.
func (r *MissionRepository) Create(mission *models.Mission) error {
	return r.db.Omit(clause.Associations).Create(mission).Error
}

// GetByName retrieves the first mission with the given name
func (r *MissionRepository) GetByName(name string) (*models.Mission, error) {
	var mission models.Mission
	if err := r.db.Order("id ASC").First(&mission, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &mission, nil
}

// GetWithRelations retrieves a mission with its scientist and planet
func (r *MissionRepository) GetWithRelations(id int) (*models.Mission, error) {
	var mission models.Mission
	err := r.db.Preload("Scientist").Preload("Planet").First(&mission, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &mission, nil
}

// GetByScientistID retrieves all missions led by a scientist
func (r *MissionRepository) GetByScientistID(scientistID int) ([]models.Mission, error) {
	var missions []models.Mission
	if err := r.db.Where("scientist_id = ?", scientistID).Order("id ASC").Find(&missions).Error; err != nil {
		return nil, err
	}
	return missions, nil
}

// GetByPlanetID retrieves all missions bound for a planet
func (r *MissionRepository) GetByPlanetID(planetID int) ([]models.Mission, error) {
	var missions []models.Mission
	if err := r.db.Where("planet_id = ?", planetID).Order("id ASC").Find(&missions).Error; err != nil {
		return nil, err
	}
	return missions, nil
}

// DeleteAll removes every mission
func (r *MissionRepository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Mission{}).Error
}
