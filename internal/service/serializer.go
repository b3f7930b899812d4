package service

import "space-missions-api/internal/database/models"

// The response shapes below never nest a parent inside its own children:
// a scientist's missions carry the planet but not the scientist, a planet's
// missions carry the scientist but not the planet, and a mission carries
// both parents without their mission lists.

// ScientistSummary is the flat scientist shape used in lists and as a nested parent
type ScientistSummary struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	FieldOfStudy string `json:"field_of_study"`
}

// PlanetSummary is the flat planet shape used in lists and as a nested parent
type PlanetSummary struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	DistanceFromEarth int    `json:"distance_from_earth"`
	NearestStar       string `json:"nearest_star"`
}

// ScientistResponse is a scientist with its missions
type ScientistResponse struct {
	ID           int                `json:"id"`
	Name         string             `json:"name"`
	FieldOfStudy string             `json:"field_of_study"`
	Missions     []ScientistMission `json:"missions"`
}

// ScientistMission is a mission nested under its scientist
type ScientistMission struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	ScientistID int            `json:"scientist_id"`
	PlanetID    int            `json:"planet_id"`
	Planet      *PlanetSummary `json:"planet,omitempty"`
}

// PlanetResponse is a planet with its missions
type PlanetResponse struct {
	ID                int             `json:"id"`
	Name              string          `json:"name"`
	DistanceFromEarth int             `json:"distance_from_earth"`
	NearestStar       string          `json:"nearest_star"`
	Missions          []PlanetMission `json:"missions"`
}

// PlanetMission is a mission nested under its planet
type PlanetMission struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	ScientistID int               `json:"scientist_id"`
	PlanetID    int               `json:"planet_id"`
	Scientist   *ScientistSummary `json:"scientist,omitempty"`
}

// MissionResponse is a mission with both parents
type MissionResponse struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	ScientistID int               `json:"scientist_id"`
	PlanetID    int               `json:"planet_id"`
	Scientist   *ScientistSummary `json:"scientist"`
	Planet      *PlanetSummary    `json:"planet"`
}

func toScientistSummary(s *models.Scientist) ScientistSummary {
	return ScientistSummary{
		ID:           s.ID,
		Name:         s.Name,
		FieldOfStudy: s.FieldOfStudy,
	}
}

func toPlanetSummary(p *models.Planet) PlanetSummary {
	return PlanetSummary{
		ID:                p.ID,
		Name:              p.Name,
		DistanceFromEarth: p.DistanceFromEarth,
		NearestStar:       p.NearestStar,
	}
}

func toScientistResponse(s *models.Scientist) *ScientistResponse {
	missions := make([]ScientistMission, len(s.Missions))
	for i := range s.Missions {
		m := &s.Missions[i]
		missions[i] = ScientistMission{
			ID:          m.ID,
			Name:        m.Name,
			ScientistID: derefID(m.ScientistID),
			PlanetID:    derefID(m.PlanetID),
		}
		if m.Planet != nil {
			p := toPlanetSummary(m.Planet)
			missions[i].Planet = &p
		}
	}
	return &ScientistResponse{
		ID:           s.ID,
		Name:         s.Name,
		FieldOfStudy: s.FieldOfStudy,
		Missions:     missions,
	}
}

func toPlanetResponse(p *models.Planet) *PlanetResponse {
	missions := make([]PlanetMission, len(p.Missions))
	for i := range p.Missions {
		m := &p.Missions[i]
		missions[i] = PlanetMission{
			ID:          m.ID,
			Name:        m.Name,
			ScientistID: derefID(m.ScientistID),
			PlanetID:    derefID(m.PlanetID),
		}
		if m.Scientist != nil {
			s := toScientistSummary(m.Scientist)
			missions[i].Scientist = &s
		}
	}
	return &PlanetResponse{
		ID:                p.ID,
		Name:              p.Name,
		DistanceFromEarth: p.DistanceFromEarth,
		NearestStar:       p.NearestStar,
		Missions:          missions,
	}
}

func toMissionResponse(m *models.Mission) *MissionResponse {
	resp := &MissionResponse{
		ID:          m.ID,
		Name:        m.Name,
		ScientistID: derefID(m.ScientistID),
		PlanetID:    derefID(m.PlanetID),
	}
	if m.Scientist != nil {
		s := toScientistSummary(m.Scientist)
		resp.Scientist = &s
	}
	if m.Planet != nil {
		p := toPlanetSummary(m.Planet)
		resp.Planet = &p
	}
	return resp
}

func derefID(id *int) int {
	if id == nil {
		return 0
	}
	return *id
}
