package repository

import (
	"space-missions-api/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ScientistRepository handles database operations for scientists
type ScientistRepository struct {
	db *gorm.DB
}

// Ensure ScientistRepository implements ScientistRepositoryInterface
var _ ScientistRepositoryInterface = (*ScientistRepository)(nil)

// NewScientistRepository creates a new scientist repository
func NewScientistRepository(db *gorm.DB) *ScientistRepository {
	return &ScientistRepository{db: db}
}

// Create creates a new scientist
func (r *ScientistRepository) Create(scientist *models.Scientist) error {
	return r.db.Omit(clause.Associations).Create(scientist).Error
}

// GetByID retrieves a scientist by ID
func (r *ScientistRepository) GetByID(id int) (*models.Scientist, error) {
	var scientist models.Scientist
	if err := r.db.First(&scientist, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &scientist, nil
}

// GetByName retrieves the first scientist with the given name
func (r *ScientistRepository) GetByName(name string) (*models.Scientist, error) {
	var scientist models.Scientist
	if err := r.db.Order("id ASC").First(&scientist, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &scientist, nil
}

// GetWithMissions retrieves a scientist with missions and each mission's planet
func (r *ScientistRepository) GetWithMissions(id int) (*models.Scientist, error) {
	var scientist models.Scientist
	err := r.db.
		Preload("Missions", func(db *gorm.DB) *gorm.DB { return db.Order("missions.id ASC") }).
		Preload("Missions.Planet").
		First(&scientist, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &scientist, nil
}

// GetAll retrieves all scientists ordered by ID
func (r *ScientistRepository) GetAll() ([]models.Scientist, error) {
	var scientists []models.Scientist
	if err := r.db.Order("id ASC").Find(&scientists).Error; err != nil {
		return nil, err
	}
	return scientists, nil
}

// Update saves every column of scientist; associations are left untouched
func (r *ScientistRepository) Update(scientist *models.Scientist) error {
	return r.db.Omit(clause.Associations).Save(scientist).Error
}

// Delete deletes a scientist together with its missions.
// A missing id, zero included, yields gorm.ErrRecordNotFound.
func (r *ScientistRepository) Delete(id int) error {
	var scientist models.Scientist
	if err := r.db.First(&scientist, "id = ?", id).Error; err != nil {
		return err
	}
	return r.db.Select("Missions").Delete(&scientist).Error
}

// DeleteAll removes every scientist; missions go with them through the cascade
func (r *ScientistRepository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Scientist{}).Error
}
