package game

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/0six0ne/terminal-runner/internal/console"
	"github.com/0six0ne/terminal-runner/internal/obstacle"
	"github.com/0six0ne/terminal-runner/internal/player"
	"github.com/0six0ne/terminal-runner/internal/script"
	"github.com/0six0ne/terminal-runner/internal/telemetry"
)

// Game holds everything one interactive run needs: the current session
// state, the script registries, I/O, and the injected RNG.
type Game struct {
	cfg       Config
	state     *player.State
	out       *console.Typewriter
	in        *console.Prompter
	passages  *script.PassageRegistry
	trivia    *script.TriviaRegistry
	resolver  *obstacle.Resolver
	rng       *rand.Rand
	log       zerolog.Logger
	sessionID uuid.UUID
}

// New creates a game reading from in and writing to out.
func New(cfg Config, in io.Reader, out io.Writer, log zerolog.Logger) (*Game, error) {
	passages, err := script.LoadPassageRegistry()
	if err != nil {
		return nil, err
	}
	trivia, err := script.LoadTriviaRegistry()
	if err != nil {
		return nil, err
	}
	obstacles, err := script.LoadObstacleRegistry()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	styles := console.DefaultStyles()
	if cfg.NoColor {
		styles = console.PlainStyles()
	}

	// Zero pacing means no pacing at all: skip the holds entirely so
	// tests and piped runs finish instantly.
	tw := console.NewTypewriter(out, cfg.CharDelay, cfg.LinePause)
	if cfg.CharDelay == 0 && cfg.LinePause == 0 {
		tw = console.NewInstant(out)
	}

	return &Game{
		cfg:       cfg,
		state:     player.NewState(),
		out:       tw,
		in:        console.NewPrompter(in, out, styles),
		passages:  passages,
		trivia:    trivia,
		resolver:  obstacle.NewResolver(obstacles, rng),
		rng:       rng,
		log:       log,
		sessionID: uuid.New(),
	}, nil
}

// State returns the current session state.
func (g *Game) State() *player.State {
	return g.state
}

// Run drives the scene machine until the player quits or input fails.
// Each pass of the outer loop is one session; SceneRestart starts a new
// one with fresh state, SceneQuit returns nil. A read error (e.g. a
// closed input stream) aborts the run and is returned to the caller.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	for {
		g.out.Clear()
		g.log.Info().
			Str("session_id", g.sessionID.String()).
			Msg("session started")

		sessionCtx, span := tracer.Start(ctx, "session.run")
		span.SetAttributes(
			attribute.String("session.id", g.sessionID.String()),
		)

		scene := SceneIntro
		for !scene.terminal() {
			next, err := g.step(sessionCtx, scene)
			if err != nil {
				span.End()
				return err
			}
			g.log.Debug().
				Stringer("from", scene).
				Stringer("to", next).
				Int("score", g.state.Score).
				Msg("scene transition")
			scene = next
		}

		span.SetAttributes(
			attribute.Int("player.score", g.state.Score),
			attribute.Bool("player.fire_armor", g.state.HasFireArmor),
			attribute.Bool("session.restarted", scene == SceneRestart),
		)
		span.End()

		if scene == SceneQuit {
			g.log.Info().
				Str("session_id", g.sessionID.String()).
				Msg("player quit")
			return nil
		}

		// Restart: everything session-scoped is replaced wholesale.
		g.state = player.NewState()
		g.sessionID = uuid.New()
	}
}

// step runs a single scene and returns the next one.
func (g *Game) step(ctx context.Context, s Scene) (Scene, error) {
	switch s {
	case SceneIntro:
		return g.intro()
	case ScenePathChoice:
		return g.pathChoice()
	case SceneFirewallPath:
		return g.firewallPath()
	case SceneBridgeCrossing:
		return g.bridgeCrossing()
	case SceneJump:
		return g.jump()
	case SceneFirewallObstacle:
		return g.firewallObstacle(ctx)
	case SceneCoreAccess:
		return g.coreAccess()
	case SceneRandomEvent:
		return g.randomEvent(ctx)
	case SceneTrivia:
		return g.triviaChallenge(ctx)
	case SceneReturnToCore:
		return g.returnToCore()
	case SceneFanObstacle:
		return g.fanObstacle(ctx)
	case ScenePlayAgainLoss:
		return g.playAgain(false)
	case ScenePlayAgainEnding:
		return g.playAgain(true)
	default:
		// Unreachable as long as the transition table stays closed.
		g.log.Error().Stringer("scene", s).Msg("no handler for scene")
		return SceneQuit, nil
	}
}

// say narrates a passage line by line with the standard pause.
func (g *Game) say(id string) {
	g.out.Lines(g.passages.Lines(id))
}

// menu prints a passage immediately, without the typewriter effect.
func (g *Game) menu(id string) {
	for _, line := range g.passages.Lines(id) {
		g.out.Raw(line)
	}
}

// line returns the first line of a passage, for single-line output.
func (g *Game) line(id string) string {
	lines := g.passages.Lines(id)
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}
