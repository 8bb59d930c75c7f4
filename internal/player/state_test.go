package player

import "testing"

func TestNewState(t *testing.T) {
	s := NewState()

	if s.Score != StartingScore {
		t.Errorf("Expected starting score %d, got %d", StartingScore, s.Score)
	}
	if s.HasFireArmor {
		t.Error("Fresh state should not have fire armor")
	}
}

func TestModifyScore(t *testing.T) {
	s := NewState()

	if got := s.ModifyScore(5); got != 15 {
		t.Errorf("Expected score 15 after +5, got %d", got)
	}
	if got := s.ModifyScore(-5); got != 10 {
		t.Errorf("Expected score 10 after -5, got %d", got)
	}

	// Order of deltas doesn't matter
	s2 := NewState()
	s2.ModifyScore(-5)
	s2.ModifyScore(5)
	if s2.Score != StartingScore {
		t.Errorf("Expected score %d after -5/+5, got %d", StartingScore, s2.Score)
	}
}

func TestModifyScoreGoesNegative(t *testing.T) {
	s := NewState()

	if got := s.ModifyScore(-25); got != -15 {
		t.Errorf("Expected score -15, got %d", got)
	}
}

func TestIsGameOverBoundary(t *testing.T) {
	tests := []struct {
		score    int
		gameOver bool
	}{
		{1, false},
		{0, true},
		{-5, true},
		{StartingScore, false},
	}

	for _, tt := range tests {
		s := &State{Score: tt.score}
		if got := s.IsGameOver(); got != tt.gameOver {
			t.Errorf("IsGameOver() with score %d = %v, want %v", tt.score, got, tt.gameOver)
		}
	}
}

func TestGrantFireArmor(t *testing.T) {
	s := NewState()

	s.GrantFireArmor()
	if !s.HasFireArmor {
		t.Error("Expected fire armor after grant")
	}

	// Granting again is a no-op; the flag never reverts
	s.GrantFireArmor()
	if !s.HasFireArmor {
		t.Error("Fire armor should never revert within a session")
	}
}
