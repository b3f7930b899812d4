package models

// Planet is a mission destination. Deleting a planet deletes its missions.
type Planet struct {
	ID                int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name              string    `json:"name"`
	DistanceFromEarth int       `json:"distance_from_earth"`
	NearestStar       string    `json:"nearest_star"`
	Missions          []Mission `json:"missions,omitempty" gorm:"foreignKey:PlanetID;constraint:OnDelete:CASCADE" validate:"-"`
}

// TableName returns the table name for Planet
func (Planet) TableName() string {
	return "planets"
}
