package service

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ScientistServiceInterface defines the interface for scientist service
type ScientistServiceInterface interface {
	List(ctx context.Context) ([]ScientistSummary, error)
	GetByID(ctx context.Context, id int) (*ScientistResponse, error)
	Exists(ctx context.Context, id int) error
	Create(ctx context.Context, req *CreateScientistRequest) (*ScientistResponse, error)
	Update(ctx context.Context, id int, req *UpdateScientistRequest) (*ScientistResponse, error)
	Delete(ctx context.Context, id int) error
}

// PlanetServiceInterface defines the interface for planet service
type PlanetServiceInterface interface {
	List(ctx context.Context) ([]PlanetSummary, error)
	GetByID(ctx context.Context, id int) (*PlanetResponse, error)
	Delete(ctx context.Context, id int) error
}

// MissionServiceInterface defines the interface for mission service
type MissionServiceInterface interface {
	GetByID(ctx context.Context, id int) (*MissionResponse, error)
	Create(ctx context.Context, req *CreateMissionRequest) (*MissionResponse, error)
}
