package script

import "errors"

// ObstacleDef defines a chance-based obstacle loaded from JSON.
type ObstacleDef struct {
	ID            string  `json:"id"`            // Unique identifier (e.g., "wall_of_fire")
	Name          string  `json:"name"`          // Display name (e.g., "Wall Of Fire")
	SuccessChance float64 `json:"successChance"` // Probability of surviving, in [0, 1]
	Ending        bool    `json:"ending"`        // True if surviving unlocks a named ending
}

// ObstaclesFile represents the structure of obstacles.json.
type ObstaclesFile struct {
	Obstacles []ObstacleDef `json:"obstacles"`
}

// LoadObstacles reads all obstacle definitions from the embedded obstacles.json.
func LoadObstacles() ([]ObstacleDef, error) {
	file, err := Load[ObstaclesFile]("obstacles.json")
	if err != nil {
		return nil, err
	}
	return file.Obstacles, nil
}

// ObstacleRegistry holds loaded obstacle definitions and provides lookup by ID.
type ObstacleRegistry struct {
	obstacles []ObstacleDef
	byID      map[string]*ObstacleDef
}

// NewObstacleRegistry creates a registry from loaded obstacle definitions.
func NewObstacleRegistry(obstacles []ObstacleDef) *ObstacleRegistry {
	registry := &ObstacleRegistry{
		obstacles: obstacles,
		byID:      make(map[string]*ObstacleDef, len(obstacles)),
	}
	for i := range obstacles {
		registry.byID[obstacles[i].ID] = &obstacles[i]
	}
	return registry
}

// LoadObstacleRegistry loads and creates a registry from the embedded obstacles.json.
func LoadObstacleRegistry() (*ObstacleRegistry, error) {
	obstacles, err := LoadObstacles()
	if err != nil {
		return nil, err
	}
	if len(obstacles) == 0 {
		return nil, errors.New("no obstacles loaded from obstacles.json")
	}
	return NewObstacleRegistry(obstacles), nil
}

// MustLoadObstacleRegistry loads a registry, panicking on error.
func MustLoadObstacleRegistry() *ObstacleRegistry {
	registry, err := LoadObstacleRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the obstacle definition with the given ID, or nil if not found.
func (r *ObstacleRegistry) GetByID(id string) *ObstacleDef {
	return r.byID[id]
}

// All returns all obstacle definitions.
func (r *ObstacleRegistry) All() []ObstacleDef {
	return r.obstacles
}

// Count returns the number of obstacle types in the registry.
func (r *ObstacleRegistry) Count() int {
	return len(r.obstacles)
}
