// Package player holds the per-session player state.
package player

// StartingScore is the score every fresh session begins with.
const StartingScore = 10

// State represents one play session's mutable state.
// A new State is created at process start and on every restart;
// nothing in it survives a restart.
type State struct {
	Score        int  // May go negative; game over is Score <= 0.
	HasFireArmor bool // Set true at most once, by the trivia reward.
}

// NewState creates a fresh session state.
func NewState() *State {
	return &State{Score: StartingScore}
}

// ModifyScore adds amount (which may be negative) to the score and
// returns the new value. There is no bounds checking.
func (s *State) ModifyScore(amount int) int {
	s.Score += amount
	return s.Score
}

// GrantFireArmor marks the fire protection armor as owned.
// The flag is never cleared within a session.
func (s *State) GrantFireArmor() {
	s.HasFireArmor = true
}

// IsGameOver reports whether the score has dropped to zero or below.
// Callers decide when to check; the state itself never acts on it.
func (s *State) IsGameOver() bool {
	return s.Score <= 0
}
