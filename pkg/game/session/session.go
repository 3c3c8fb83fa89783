// Package session tracks one player moving through a fixed maze: it gates
// moves on walls, detects arrival at the treasure and places the next one.
package session

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"mazehunt/pkg/engine/navigation"
	"mazehunt/pkg/engine/world"
)

// DefaultMaxSteps bounds how far a new treasure may be from the player
const DefaultMaxSteps = 8

// Session errors.
var (
	ErrNoGrid           = errors.New("session requires a grid")
	ErrNotPlaying       = errors.New("session is not playing")
	ErrAlreadyStarted   = errors.New("session already started")
	ErrStartOutOfBounds = errors.New("start cell is outside the grid")
	ErrInvalidMaxSteps  = navigation.ErrInvalidMaxSteps
	ErrDegenerateMaze   = navigation.ErrDegenerateMaze
	errFieldUnavailable = errors.New("distance field unavailable")
)

// State is the session lifecycle stage
type State int

// Session states
const (
	StateIdle State = iota
	StatePlaying
	StateFinished
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// MoveResult describes the effect of a single move request
type MoveResult struct {
	From        world.Cell
	To          world.Cell
	Moved       bool // False on a wall bump
	GoalReached bool
}

// GoalEvent is emitted every time the player reaches the treasure
type GoalEvent struct {
	Cell  world.Cell           // Where the treasure was collected
	Score int                  // Score after collecting it
	Moves int                  // Moves made so far
	Next  navigation.Placement // The newly placed treasure
}

// Session is the navigation controller for one maze. It is not safe for
// concurrent use; the grid it reads is never modified.
type Session struct {
	grid     *world.Grid
	rng      *rand.Rand
	maxSteps int
	start    *world.Cell
	log      logrus.FieldLogger
	onGoal   func(GoalEvent)

	state     State
	player    world.Cell
	placement navigation.Placement
	field     *navigation.DistanceField
	score     int
	moves     int
}

// Option configures a Session
type Option func(*Session)

// WithRand sets the random source used for the start cell and target placement
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithMaxSteps sets the placement budget
func WithMaxSteps(n int) Option {
	return func(s *Session) {
		s.maxSteps = n
	}
}

// WithStart fixes the player's initial cell instead of choosing one at random
func WithStart(c world.Cell) Option {
	return func(s *Session) {
		s.start = &c
	}
}

// WithLogger sets the structured logger
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// WithGoalHandler registers a callback run after each treasure is collected
func WithGoalHandler(fn func(GoalEvent)) Option {
	return func(s *Session) {
		s.onGoal = fn
	}
}

// New creates an idle session over g
func New(g *world.Grid, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, ErrNoGrid
	}

	s := &Session{
		grid:     g,
		maxSteps: DefaultMaxSteps,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.maxSteps <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxSteps, s.maxSteps)
	}
	if s.start != nil && !g.InBounds(*s.start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, *s.start)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		s.log = discard
	}

	return s, nil
}

// Start places the player and the first treasure. A single-cell maze has
// nowhere to put the treasure; Start then returns ErrDegenerateMaze and the
// session stays idle.
func (s *Session) Start() error {
	if s.state != StateIdle {
		return ErrAlreadyStarted
	}

	if s.start != nil {
		s.player = *s.start
	} else {
		s.player = s.grid.CellAt(s.rng.Intn(s.grid.Area()))
	}

	if err := s.resetTarget(); err != nil {
		return err
	}

	s.state = StatePlaying
	s.log.WithFields(logrus.Fields{
		"cols":     s.grid.Cols(),
		"rows":     s.grid.Rows(),
		"player":   s.player.String(),
		"target":   s.placement.Cell.String(),
		"distance": s.placement.Distance,
	}).Info("session started")
	return nil
}

// Move applies a move request. A move into a wall leaves the player in place
// and is not an error.
func (s *Session) Move(d world.Direction) (MoveResult, error) {
	if s.state != StatePlaying {
		return MoveResult{}, ErrNotPlaying
	}

	res := MoveResult{From: s.player, To: s.player}
	s.moves++

	if !s.grid.IsOpen(s.player, d) {
		s.log.WithFields(logrus.Fields{
			"cell":      s.player.String(),
			"direction": d.String(),
		}).Debug("wall bump")
		return res, nil
	}

	s.player, _ = s.grid.Neighbor(s.player, d)
	res.To = s.player
	res.Moved = true

	if s.player != s.placement.Cell {
		return res, nil
	}

	res.GoalReached = true
	s.score++
	collected := s.placement.Cell
	if err := s.resetTarget(); err != nil {
		return res, err
	}

	ev := GoalEvent{Cell: collected, Score: s.score, Moves: s.moves, Next: s.placement}
	s.log.WithFields(logrus.Fields{
		"score":    ev.Score,
		"moves":    ev.Moves,
		"next":     ev.Next.Cell.String(),
		"distance": ev.Next.Distance,
		"fallback": ev.Next.Fallback,
	}).Info("treasure collected")
	if s.onGoal != nil {
		s.onGoal(ev)
	}
	return res, nil
}

// Finish ends the session; further moves are rejected
func (s *Session) Finish() {
	if s.state == StateFinished {
		return
	}
	s.state = StateFinished
	s.log.WithFields(logrus.Fields{
		"score": s.score,
		"moves": s.moves,
	}).Info("session finished")
}

// resetTarget recomputes distances from the player and places a new treasure
func (s *Session) resetTarget() error {
	field, err := navigation.ComputeDistances(s.player, s.grid)
	if err != nil {
		return fmt.Errorf("%w: %v", errFieldUnavailable, err)
	}
	p, err := navigation.Place(field, s.player, s.maxSteps, s.rng)
	if err != nil {
		return err
	}
	if p.Fallback {
		s.log.WithFields(logrus.Fields{
			"player":    s.player.String(),
			"max_steps": s.maxSteps,
		}).Warn("no cell within step budget, placing treasure anywhere reachable")
	}
	s.field = field
	s.placement = p
	return nil
}

// State returns the lifecycle stage
func (s *Session) State() State {
	return s.state
}

// Grid returns the maze
func (s *Session) Grid() *world.Grid {
	return s.grid
}

// PlayerCell returns the player's current cell
func (s *Session) PlayerCell() world.Cell {
	return s.player
}

// TargetCell returns the treasure's cell
func (s *Session) TargetCell() world.Cell {
	return s.placement.Cell
}

// Placement returns the details of the current treasure placement
func (s *Session) Placement() navigation.Placement {
	return s.placement
}

// TargetDistance returns the current shortest-path distance from the player to
// the treasure, or false if it cannot be reached.
func (s *Session) TargetDistance() (int, bool) {
	if s.state == StateIdle || s.field == nil {
		return 0, false
	}
	if s.player == s.field.Source() {
		return s.placement.Distance, true
	}
	f, err := navigation.ComputeDistances(s.placement.Cell, s.grid)
	if err != nil {
		return 0, false
	}
	return f.Distance(s.player)
}

// Field returns the distance field computed at the last treasure placement.
// Its source is where the player stood at that time.
func (s *Session) Field() *navigation.DistanceField {
	return s.field
}

// Score returns the number of treasures collected
func (s *Session) Score() int {
	return s.score
}

// Moves returns the number of move requests, wall bumps included
func (s *Session) Moves() int {
	return s.moves
}

// MaxSteps returns the placement budget
func (s *Session) MaxSteps() int {
	return s.maxSteps
}
