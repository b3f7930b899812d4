package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories groups the repositories that share one database handle
type Repositories struct {
	Scientists ScientistRepositoryInterface
	Planets    PlanetRepositoryInterface
	Missions   MissionRepositoryInterface
}

// NewRepositories binds every repository to db
func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Scientists: NewScientistRepository(db),
		Planets:    NewPlanetRepository(db),
		Missions:   NewMissionRepository(db),
	}
}

// Transactor opens one GORM transaction per call
type Transactor struct {
	db *gorm.DB
}

// Ensure Transactor implements TransactorInterface
var _ TransactorInterface = (*Transactor)(nil)

// NewTransactor creates a new transactor over db
func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

// WithinTransaction commits when fn returns nil and rolls back otherwise
func (t *Transactor) WithinTransaction(ctx context.Context, fn func(repos Repositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
