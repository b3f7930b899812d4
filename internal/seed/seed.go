// Package seed loads scientists, planets and missions from YAML fixtures.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"space-missions-api/internal/database/models"
	"space-missions-api/internal/logger"
	"space-missions-api/internal/repository"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// ScientistData is one scientist entry of a fixture file
type ScientistData struct {
	Name         string `yaml:"name"`
	FieldOfStudy string `yaml:"field_of_study"`
}

// PlanetData is one planet entry of a fixture file
type PlanetData struct {
	Name              string `yaml:"name"`
	DistanceFromEarth int    `yaml:"distance_from_earth"`
	NearestStar       string `yaml:"nearest_star"`
}

// MissionData references its scientist and planet by name
type MissionData struct {
	Name      string `yaml:"name"`
	Scientist string `yaml:"scientist"`
	Planet    string `yaml:"planet"`
}

// Data is the merged content of every fixture file
type Data struct {
	Scientists []ScientistData `yaml:"scientists"`
	Planets    []PlanetData    `yaml:"planets"`
	Missions   []MissionData   `yaml:"missions"`
}

// Result counts the rows inserted by Apply
type Result struct {
	ScientistsCreated int
	PlanetsCreated    int
	MissionsCreated   int
}

// Load reads every *.yaml and *.yml file under dir, in lexical order
func Load(dir string) (*Data, error) {
	var all Data

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var file Data
		if err := yaml.Unmarshal(content, &file); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}

		all.Scientists = append(all.Scientists, file.Scientists...)
		all.Planets = append(all.Planets, file.Planets...)
		all.Missions = append(all.Missions, file.Missions...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load seed data from %s: %w", dir, err)
	}

	return &all, nil
}

// Apply inserts data in one transaction. Rows whose name already exists are
// reused, so running it twice creates nothing the second time. With reset,
// every mission, planet and scientist is deleted first.
func Apply(ctx context.Context, transactor repository.TransactorInterface, data *Data, reset bool) (*Result, error) {
	result := &Result{}

	err := transactor.WithinTransaction(ctx, func(repos repository.Repositories) error {
		if reset {
			if err := resetAll(repos); err != nil {
				return err
			}
		}

		scientists := make(map[string]int, len(data.Scientists))
		for _, sd := range data.Scientists {
			id, created, err := ensureScientist(repos, sd)
			if err != nil {
				return fmt.Errorf("scientist %q: %w", sd.Name, err)
			}
			scientists[sd.Name] = id
			if created {
				result.ScientistsCreated++
			}
		}

		planets := make(map[string]int, len(data.Planets))
		for _, pd := range data.Planets {
			id, created, err := ensurePlanet(repos, pd)
			if err != nil {
				return fmt.Errorf("planet %q: %w", pd.Name, err)
			}
			planets[pd.Name] = id
			if created {
				result.PlanetsCreated++
			}
		}

		for _, md := range data.Missions {
			created, err := ensureMission(repos, md, scientists, planets)
			if err != nil {
				return fmt.Errorf("mission %q: %w", md.Name, err)
			}
			if created {
				result.MissionsCreated++
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply seed data: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"scientists_created": result.ScientistsCreated,
		"planets_created":    result.PlanetsCreated,
		"missions_created":   result.MissionsCreated,
		"reset":              reset,
	}).Info("Seed data applied")

	return result, nil
}

func resetAll(repos repository.Repositories) error {
	if err := repos.Missions.DeleteAll(); err != nil {
		return fmt.Errorf("reset missions: %w", err)
	}
	if err := repos.Planets.DeleteAll(); err != nil {
		return fmt.Errorf("reset planets: %w", err)
	}
	if err := repos.Scientists.DeleteAll(); err != nil {
		return fmt.Errorf("reset scientists: %w", err)
	}
	return nil
}

func ensureScientist(repos repository.Repositories, sd ScientistData) (int, bool, error) {
	existing, err := repos.Scientists.GetByName(sd.Name)
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, err
	}

	scientist := &models.Scientist{Name: sd.Name, FieldOfStudy: sd.FieldOfStudy}
	if err := repos.Scientists.Create(scientist); err != nil {
		return 0, false, err
	}
	return scientist.ID, true, nil
}

func ensurePlanet(repos repository.Repositories, pd PlanetData) (int, bool, error) {
	existing, err := repos.Planets.GetByName(pd.Name)
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, err
	}

	planet := &models.Planet{Name: pd.Name, DistanceFromEarth: pd.DistanceFromEarth, NearestStar: pd.NearestStar}
	if err := repos.Planets.Create(planet); err != nil {
		return 0, false, err
	}
	return planet.ID, true, nil
}

func ensureMission(repos repository.Repositories, md MissionData, scientists, planets map[string]int) (bool, error) {
	if _, err := repos.Missions.GetByName(md.Name); err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	scientistID, err := lookupID(scientists, md.Scientist, func(name string) (int, error) {
		s, err := repos.Scientists.GetByName(name)
		if err != nil {
			return 0, err
		}
		return s.ID, nil
	})
	if err != nil {
		return false, fmt.Errorf("scientist %q: %w", md.Scientist, err)
	}

	planetID, err := lookupID(planets, md.Planet, func(name string) (int, error) {
		p, err := repos.Planets.GetByName(name)
		if err != nil {
			return 0, err
		}
		return p.ID, nil
	})
	if err != nil {
		return false, fmt.Errorf("planet %q: %w", md.Planet, err)
	}

	mission := &models.Mission{Name: md.Name, ScientistID: &scientistID, PlanetID: &planetID}
	if err := repos.Missions.Create(mission); err != nil {
		return false, err
	}
	return true, nil
}

// lookupID prefers ids created in this run and falls back to the database
func lookupID(known map[string]int, name string, fetch func(string) (int, error)) (int, error) {
	if id, ok := known[name]; ok {
		return id, nil
	}
	return fetch(name)
}
