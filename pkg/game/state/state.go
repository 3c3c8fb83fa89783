package state

import (
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"mazehunt/pkg/game/config"
	"mazehunt/pkg/game/session"
)

const maxMessages = 5

// Game is the host-side state wrapped around the running session
type Game struct {
	Session *session.Session

	Config config.Config

	Seed      int64 // Game seed, drives every level seed
	LevelSeed int64 // Seed of the current maze
	Rand      *rand.Rand
	Log       logrus.FieldLogger

	Messages []string

	Level int // Current maze number, starting at 1

	// Totals carried across mazes; the session only counts its own maze.
	BaseScore int
	BaseMoves int

	HintsUsed int

	StartedAt time.Time

	Quit bool
}

// NewGame creates a game with no maze yet. A nil log discards everything.
func NewGame(cfg config.Config, seed int64, log logrus.FieldLogger) *Game {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &Game{
		Config:    cfg,
		Seed:      seed,
		Rand:      rand.New(rand.NewSource(seed)),
		Log:       log,
		Messages:  make([]string, 0),
		Level:     1,
		StartedAt: time.Now(),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// Score returns treasures collected over all mazes
func (g *Game) Score() int {
	if g.Session == nil {
		return g.BaseScore
	}
	return g.BaseScore + g.Session.Score()
}

// Moves returns move requests over all mazes
func (g *Game) Moves() int {
	if g.Session == nil {
		return g.BaseMoves
	}
	return g.BaseMoves + g.Session.Moves()
}

// Elapsed returns the play time so far
func (g *Game) Elapsed() time.Duration {
	return time.Since(g.StartedAt)
}

// AdvanceLevel folds the current session's totals into the game and bumps
// the level counter. The caller installs the next session.
func (g *Game) AdvanceLevel() {
	if g.Session != nil {
		g.BaseScore += g.Session.Score()
		g.BaseMoves += g.Session.Moves()
		g.Session.Finish()
		g.Session = nil
	}
	g.Level++
}
