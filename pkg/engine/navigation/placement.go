package navigation

import (
	"errors"
	"fmt"
	"math/rand"

	"mazehunt/pkg/engine/world"
)

// Placement errors.
var (
	ErrInvalidMaxSteps = errors.New("max steps must be positive")
	ErrDegenerateMaze  = errors.New("no reachable cell other than the excluded one")
)

// Placement is the outcome of a target selection
type Placement struct {
	Cell     world.Cell
	Distance int  // Hop count from the field's source
	Fallback bool // True if no cell satisfied the step budget
}

// SelectTarget picks a random reached cell within maxSteps of the field's
// source, never returning exclude. See Place for the fallback policy.
func SelectTarget(f *DistanceField, exclude world.Cell, maxSteps int, rng *rand.Rand) (world.Cell, error) {
	p, err := Place(f, exclude, maxSteps, rng)
	return p.Cell, err
}

// Place chooses uniformly among reached cells c != exclude with
// 1 <= distance(c) <= maxSteps. If there are none it chooses uniformly among
// all reached cells other than exclude and sets Fallback.
//
// When exclude is the only reachable cell, Place returns exclude itself
// together with ErrDegenerateMaze; callers decide whether that is fatal.
func Place(f *DistanceField, exclude world.Cell, maxSteps int, rng *rand.Rand) (Placement, error) {
	if maxSteps <= 0 {
		return Placement{}, fmt.Errorf("%w: %d", ErrInvalidMaxSteps, maxSteps)
	}

	var within, others []Placement
	f.Cells(func(c world.Cell, d int) {
		if c == exclude {
			return
		}
		p := Placement{Cell: c, Distance: d}
		others = append(others, p)
		if d >= 1 && d <= maxSteps {
			within = append(within, p)
		}
	})

	if len(within) > 0 {
		return within[rng.Intn(len(within))], nil
	}
	if len(others) > 0 {
		p := others[rng.Intn(len(others))]
		p.Fallback = true
		return p, nil
	}

	d, _ := f.Distance(exclude)
	return Placement{Cell: exclude, Distance: d, Fallback: true}, ErrDegenerateMaze
}
