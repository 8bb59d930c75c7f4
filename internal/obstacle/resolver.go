// Package obstacle resolves chance-based narrative obstacles.
package obstacle

import (
	"fmt"
	"math/rand"

	"github.com/0six0ne/terminal-runner/internal/script"
)

// Outcome contains the result of an obstacle attempt.
type Outcome struct {
	Def      *script.ObstacleDef // The obstacle that was attempted
	Survived bool                // True if the player made it through
}

// Resolver rolls obstacle attempts against their configured success chance.
// The RNG is injected so outcomes can be made deterministic in tests.
type Resolver struct {
	registry *script.ObstacleRegistry
	rng      *rand.Rand
}

// NewResolver creates a resolver over the given obstacle registry.
func NewResolver(registry *script.ObstacleRegistry, rng *rand.Rand) *Resolver {
	return &Resolver{
		registry: registry,
		rng:      rng,
	}
}

// Attempt rolls the obstacle with the given ID.
// A uniform draw in [0, 1) below the obstacle's success chance survives.
func (r *Resolver) Attempt(id string) (Outcome, error) {
	def := r.registry.GetByID(id)
	if def == nil {
		return Outcome{}, fmt.Errorf("unknown obstacle %q", id)
	}
	return Outcome{
		Def:      def,
		Survived: r.rng.Float64() < def.SuccessChance,
	}, nil
}
