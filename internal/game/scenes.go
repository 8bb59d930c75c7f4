package game

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/0six0ne/terminal-runner/internal/obstacle"
	"github.com/0six0ne/terminal-runner/internal/telemetry"
)

// Input prompts. Validation sets are per scene; everything is
// case-insensitive except the literal JUMP token, which is uppercased
// before comparison.
const (
	promptPath       = "Where do you go from here? The choice is yours: "
	promptBridge     = "It sounds risky. Will you do it? (Y/N): "
	promptButton     = "Do you press the button? (Y/N): "
	promptReturn     = "Go to the firewall corridor? (Y/N): "
	promptReplayWin  = "Would you like to play again? (Y/N): "
	promptReplayLoss = "You lost, play again? (Y/N): "
	promptChevron    = "> "
)

var (
	yesNo      = []string{"y", "n"}
	yesNoBlank = []string{"y", "n", ""}
	oneTwo     = []string{"1", "2"}
	abc        = []string{"a", "b", "c"}
)

// Score deltas applied by the trivia challenge.
const (
	triviaReward  = 5
	triviaPenalty = -5
)

func (g *Game) intro() (Scene, error) {
	g.out.Hold(time.Second)
	g.say("intro")
	return ScenePathChoice, nil
}

// pathChoice is the only place the game-over condition is evaluated.
// A score driven below zero elsewhere keeps the session alive until
// the player next returns here.
func (g *Game) pathChoice() (Scene, error) {
	if g.state.IsGameOver() {
		g.log.Info().Int("score", g.state.Score).Msg("game over at checkpoint")
		return ScenePlayAgainLoss, nil
	}

	g.say("path_choice")
	choice, err := g.in.Ask(promptPath, oneTwo, "")
	if err != nil {
		return SceneQuit, err
	}
	if choice == "1" {
		return SceneFirewallPath, nil
	}
	return SceneCoreAccess, nil
}

func (g *Game) firewallPath() (Scene, error) {
	if g.state.HasFireArmor {
		// The bridge broke on the first crossing; no way around the jump now.
		g.say("firewall_armored")
		return SceneJump, nil
	}

	g.say("firewall_enter")
	choice, err := g.in.Ask(promptBridge, yesNo, "")
	if err != nil {
		return SceneQuit, err
	}
	if choice == "y" {
		return SceneBridgeCrossing, nil
	}
	g.say("firewall_decline")
	return ScenePathChoice, nil
}

func (g *Game) bridgeCrossing() (Scene, error) {
	g.say("bridge_crossing")
	return SceneJump, nil
}

// jump requires the literal JUMP token. Anything else, typos included,
// drops the player into the lava.
func (g *Game) jump() (Scene, error) {
	g.out.Type(g.line("jump_prompt"))
	input, err := g.in.ReadLine(promptChevron)
	if err != nil {
		return SceneQuit, err
	}
	if strings.ToUpper(input) == "JUMP" {
		g.out.Raw(g.line("jump_success"))
		g.out.Beat()
		return SceneFirewallObstacle, nil
	}
	g.out.Raw(g.line("jump_failure"))
	return ScenePlayAgainLoss, nil
}

func (g *Game) firewallObstacle(ctx context.Context) (Scene, error) {
	g.say("bridge_across")

	if g.state.HasFireArmor {
		g.say("fire_armored")
		g.out.Type(g.line("farewell"))
		return ScenePlayAgainEnding, nil
	}

	g.say("fire_wall")
	g.menu("fire_menu")
	choice, err := g.in.Ask(promptChevron, oneTwo, "")
	if err != nil {
		return SceneQuit, err
	}
	if choice == "2" {
		g.say("fire_back")
		return ScenePathChoice, nil
	}

	g.say("fire_step")
	out, err := g.attempt(ctx, "wall_of_fire")
	if err != nil {
		return SceneQuit, err
	}
	if out.Survived {
		g.say("fire_success")
		g.out.Type(g.line("farewell"))
		return ScenePlayAgainEnding, nil
	}
	g.say("fire_failure")
	return ScenePlayAgainLoss, nil
}

func (g *Game) coreAccess() (Scene, error) {
	g.say("core_enter")

	if g.state.HasFireArmor {
		g.say("core_armored")
		return SceneFanObstacle, nil
	}

	g.say("core_button")
	choice, err := g.in.Ask(promptButton, yesNo, "")
	if err != nil {
		return SceneQuit, err
	}
	if choice == "y" {
		return SceneRandomEvent, nil
	}
	g.say("core_decline")
	return SceneFanObstacle, nil
}

// randomEvent resolves the button press: an even split between the
// tunnel detonating and a hidden door opening onto the armor.
func (g *Game) randomEvent(ctx context.Context) (Scene, error) {
	out, err := g.attempt(ctx, "core_detonation")
	if err != nil {
		return SceneQuit, err
	}
	if !out.Survived {
		g.say("explosion")
		return ScenePlayAgainLoss, nil
	}
	g.say("door_open")
	return SceneTrivia, nil
}

func (g *Game) triviaChallenge(ctx context.Context) (Scene, error) {
	g.say("trivia_intro")

	q := g.trivia.PickRandom(g.rng)
	g.out.Pause(q.Question)
	g.out.Raw(q.Options)

	answer, err := g.in.Ask(promptChevron, abc, "")
	if err != nil {
		return SceneQuit, err
	}
	correct := answer == q.Answer

	_, span := telemetry.Tracer("trivia").Start(ctx, "trivia.question")
	span.SetAttributes(
		attribute.String("trivia.id", q.ID),
		attribute.Bool("trivia.correct", correct),
	)
	span.End()
	g.log.Debug().Str("question", q.ID).Bool("correct", correct).Msg("trivia answered")

	if correct {
		g.say("trivia_correct")
		g.state.ModifyScore(triviaReward)
		g.state.GrantFireArmor()
	} else {
		g.say("trivia_wrong")
		g.state.ModifyScore(triviaPenalty)
	}
	return SceneReturnToCore, nil
}

func (g *Game) returnToCore() (Scene, error) {
	choice, err := g.in.Ask(promptReturn, yesNo, "")
	if err != nil {
		return SceneQuit, err
	}
	if choice == "y" {
		return SceneFirewallPath, nil
	}
	g.say("core_return")
	return SceneFanObstacle, nil
}

func (g *Game) fanObstacle(ctx context.Context) (Scene, error) {
	g.say("fan_enter")
	g.menu("fan_menu")
	choice, err := g.in.Ask(promptChevron, oneTwo, "")
	if err != nil {
		return SceneQuit, err
	}
	if choice == "2" {
		g.say("fan_back")
		return ScenePathChoice, nil
	}

	g.say("fan_prepare")
	out, err := g.attempt(ctx, "spinning_fan")
	if err != nil {
		return SceneQuit, err
	}
	if out.Survived {
		g.say("fan_success")
		g.out.Type(g.line("farewell"))
		return ScenePlayAgainEnding, nil
	}
	g.say("fan_failure")
	return ScenePlayAgainLoss, nil
}

// playAgain offers a restart. A blank line counts as yes; declining
// prints the farewell and ends the process via SceneQuit.
func (g *Game) playAgain(isEnding bool) (Scene, error) {
	prompt := promptReplayLoss
	if isEnding {
		prompt = promptReplayWin
	}
	choice, err := g.in.Ask(prompt, yesNoBlank, "")
	if err != nil {
		return SceneQuit, err
	}
	if choice == "n" {
		g.out.Type(g.line("farewell"))
		return SceneQuit, nil
	}
	g.out.Beat()
	return SceneRestart, nil
}

// attempt rolls an obstacle and records the outcome.
func (g *Game) attempt(ctx context.Context, id string) (obstacle.Outcome, error) {
	out, err := g.resolver.Attempt(id)
	if err != nil {
		return out, err
	}

	_, span := telemetry.Tracer("obstacle").Start(ctx, "obstacle.attempt")
	span.SetAttributes(
		attribute.String("obstacle.id", out.Def.ID),
		attribute.String("obstacle.name", out.Def.Name),
		attribute.Bool("obstacle.survived", out.Survived),
	)
	span.End()
	g.log.Debug().Str("obstacle", id).Bool("survived", out.Survived).Msg("obstacle attempt")

	return out, nil
}
