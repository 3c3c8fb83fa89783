// Package gameplay provides core game logic for player movement and the maze
// lifecycle.
package gameplay

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"mazehunt/pkg/engine/maze"
	"mazehunt/pkg/game/config"
	"mazehunt/pkg/game/renderer"
	"mazehunt/pkg/game/session"
	"mazehunt/pkg/game/state"
)

// BuildGame creates a new game and its first maze
func BuildGame(cfg config.Config, log logrus.FieldLogger) (*state.Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := state.NewGame(cfg, cfg.EffectiveSeed(), log)
	s, seed, err := startLevel(g, g.Level)
	if err != nil {
		return nil, err
	}
	g.Session, g.LevelSeed = s, seed

	g.ClearMessages()
	logMessage(g, "GT{WELCOME}")
	logMessage(g, "%s", renderer.Message("LEVEL_START", g.Level))
	ShowObjective(g)

	return g, nil
}

// NewLevel replaces the maze with a fresh one of the same size. Score and
// moves carry over. On error the current maze stays in play.
func NewLevel(g *state.Game) error {
	s, seed, err := startLevel(g, g.Level+1)
	if err != nil {
		return err
	}
	g.AdvanceLevel()
	g.Session, g.LevelSeed = s, seed

	g.ClearMessages()
	logMessage(g, "%s", renderer.Message("LEVEL_START", g.Level))
	ShowObjective(g)
	return nil
}

// GenerateMaze builds the maze for a level seed and wraps it in an idle
// session. The same seed always yields the same maze and treasure sequence.
func GenerateMaze(cfg config.Config, levelSeed int64, opts ...session.Option) (*session.Session, maze.Stats, error) {
	rng := rand.New(rand.NewSource(levelSeed))
	grid, stats, err := maze.NewBuilder(rng).Generate(cfg.Cols, cfg.Rows, cfg.ExtraEdgeFraction)
	if err != nil {
		return nil, stats, err
	}
	opts = append([]session.Option{
		session.WithRand(rng),
		session.WithMaxSteps(cfg.MaxSteps),
	}, opts...)
	s, err := session.New(grid, opts...)
	return s, stats, err
}

// startLevel draws the next level seed, builds the maze and starts its
// session. g is not modified apart from its rng.
func startLevel(g *state.Game, level int) (*session.Session, int64, error) {
	seed := g.Rand.Int63()
	log := g.Log.WithFields(logrus.Fields{
		"level":      level,
		"level_seed": seed,
	})

	s, stats, err := GenerateMaze(g.Config, seed,
		session.WithLogger(log),
		session.WithGoalHandler(func(ev session.GoalEvent) { onGoal(g, ev) }),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("building level %d: %w", level, err)
	}
	log.WithFields(logrus.Fields{
		"cols":           g.Config.Cols,
		"rows":           g.Config.Rows,
		"spanning_edges": stats.SpanningEdges,
		"carve_attempts": stats.CarveAttempts,
		"carved_edges":   stats.CarvedEdges,
	}).Info("maze generated")

	if err := s.Start(); err != nil {
		return nil, 0, fmt.Errorf("starting level %d: %w", level, err)
	}
	return s, seed, nil
}

// ShowObjective tells the player how far away the treasure is
func ShowObjective(g *state.Game) {
	if g.Session == nil {
		return
	}
	if d, ok := g.Session.TargetDistance(); ok {
		logMessage(g, "%s", renderer.Message("TREASURE_DISTANCE", d))
	}
}

// logMessage adds a formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(renderer.FormatText(msg, a...))
}
