// Package game provides the narrative state machine and session loop.
package game

// Scene represents a discrete narrative state. The session loop drives
// the machine by calling step with the current scene until it yields
// one of the sentinel scenes (SceneRestart, SceneQuit).
type Scene int

const (
	// SceneIntro shows the opening narration.
	SceneIntro Scene = iota
	// ScenePathChoice is the main junction; the game-over checkpoint.
	ScenePathChoice
	// SceneFirewallPath is the corridor leading to the lava bridge.
	SceneFirewallPath
	// SceneBridgeCrossing is the suspense beat halfway across the bridge.
	SceneBridgeCrossing
	// SceneJump requires typing the literal JUMP token.
	SceneJump
	// SceneFirewallObstacle is the wall of fire past the bridge.
	SceneFirewallObstacle
	// SceneCoreAccess is the dark tunnel with the button.
	SceneCoreAccess
	// SceneRandomEvent resolves the button press: detonation or hidden door.
	SceneRandomEvent
	// SceneTrivia is the armor challenge behind the hidden door.
	SceneTrivia
	// SceneReturnToCore asks where to head after the trivia.
	SceneReturnToCore
	// SceneFanObstacle is the spinning fan deeper in the tunnel.
	SceneFanObstacle
	// ScenePlayAgainLoss is the replay prompt after a death or failure.
	ScenePlayAgainLoss
	// ScenePlayAgainEnding is the replay prompt after a named ending.
	ScenePlayAgainEnding

	// SceneRestart tells the session loop to reset state and replay the intro.
	SceneRestart
	// SceneQuit tells the session loop to terminate.
	SceneQuit
)

// String returns a stable scene name for logs and traces.
func (s Scene) String() string {
	switch s {
	case SceneIntro:
		return "intro"
	case ScenePathChoice:
		return "path_choice"
	case SceneFirewallPath:
		return "firewall_path"
	case SceneBridgeCrossing:
		return "bridge_crossing"
	case SceneJump:
		return "jump"
	case SceneFirewallObstacle:
		return "firewall_obstacle"
	case SceneCoreAccess:
		return "core_access"
	case SceneRandomEvent:
		return "random_event"
	case SceneTrivia:
		return "trivia"
	case SceneReturnToCore:
		return "return_to_core"
	case SceneFanObstacle:
		return "fan_obstacle"
	case ScenePlayAgainLoss:
		return "play_again_loss"
	case ScenePlayAgainEnding:
		return "play_again_ending"
	case SceneRestart:
		return "restart"
	case SceneQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// terminal reports whether the scene is a session-loop sentinel.
func (s Scene) terminal() bool {
	return s == SceneRestart || s == SceneQuit
}
