package obstacle

import (
	"math/rand"
	"testing"

	"github.com/0six0ne/terminal-runner/internal/script"
)

func testRegistry() *script.ObstacleRegistry {
	return script.NewObstacleRegistry([]script.ObstacleDef{
		{ID: "coin_flip", Name: "Coin Flip", SuccessChance: 0.5},
		{ID: "sure_thing", Name: "Sure Thing", SuccessChance: 1.0},
		{ID: "hopeless", Name: "Hopeless", SuccessChance: 0.0},
	})
}

func TestAttemptDeterministic(t *testing.T) {
	registry := testRegistry()

	r1 := NewResolver(registry, rand.New(rand.NewSource(42)))
	r2 := NewResolver(registry, rand.New(rand.NewSource(42)))

	for i := 0; i < 20; i++ {
		out1, err := r1.Attempt("coin_flip")
		if err != nil {
			t.Fatalf("Attempt failed: %v", err)
		}
		out2, err := r2.Attempt("coin_flip")
		if err != nil {
			t.Fatalf("Attempt failed: %v", err)
		}
		if out1.Survived != out2.Survived {
			t.Errorf("Roll %d mismatch: %v != %v", i, out1.Survived, out2.Survived)
		}
	}
}

func TestAttemptChanceExtremes(t *testing.T) {
	resolver := NewResolver(testRegistry(), rand.New(rand.NewSource(7)))

	for i := 0; i < 50; i++ {
		out, err := resolver.Attempt("sure_thing")
		if err != nil {
			t.Fatalf("Attempt failed: %v", err)
		}
		if !out.Survived {
			t.Fatal("Chance 1.0 should always survive")
		}

		out, err = resolver.Attempt("hopeless")
		if err != nil {
			t.Fatalf("Attempt failed: %v", err)
		}
		if out.Survived {
			t.Fatal("Chance 0.0 should never survive")
		}
	}
}

func TestAttemptOutcomeCarriesDef(t *testing.T) {
	resolver := NewResolver(testRegistry(), rand.New(rand.NewSource(1)))

	out, err := resolver.Attempt("coin_flip")
	if err != nil {
		t.Fatalf("Attempt failed: %v", err)
	}
	if out.Def == nil || out.Def.Name != "Coin Flip" {
		t.Errorf("Outcome should carry the obstacle def, got %+v", out.Def)
	}
}

func TestAttemptUnknownObstacle(t *testing.T) {
	resolver := NewResolver(testRegistry(), rand.New(rand.NewSource(1)))

	if _, err := resolver.Attempt("no_such_obstacle"); err == nil {
		t.Error("Expected error for unknown obstacle ID")
	}
}
