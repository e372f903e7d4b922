// Package walk steps an agent along a path through a jagged maze.
package walk

import (
	"fmt"
	"iter"

	"github.com/cory-johannsen/monkeymap/internal/grid"
	"github.com/cory-johannsen/monkeymap/internal/route"
)

// State is the agent's position and facing after an instruction.
type State struct {
	Position  grid.Position
	Direction grid.Direction
}

// String renders s as "(x,y) facing".
func (s State) String() string {
	return fmt.Sprintf("%s %s", s.Position, s.Direction)
}

// Walker is a pull-based traversal of a path over a maze. It yields one State
// per instruction and cannot be restarted.
//
// Invariant: state.Position is always a valid cell of the maze.
type Walker struct {
	maze  *grid.Maze
	path  route.Path
	next  int
	state State
	err   error

	// OnTile, when non-nil, is called after every committed single-tile step.
	OnTile func(State)
}

// New creates a Walker starting at the first column of row 1, facing right.
//
// Precondition: maze must have at least one row; maze and path must not be
// modified while the Walker is in use.
func New(maze *grid.Maze, path route.Path) *Walker {
	return &Walker{
		maze:  maze,
		path:  path,
		state: State{Position: maze.Start(), Direction: grid.Right},
	}
}

// State returns the current state without consuming an instruction.
func (w *Walker) State() State {
	return w.state
}

// Remaining returns the number of instructions not yet applied.
func (w *Walker) Remaining() int {
	return len(w.path) - w.next
}

// Err returns the error that stopped the traversal, if any.
func (w *Walker) Err() error {
	return w.err
}

// Next applies one instruction and returns the resulting state.
//
// Postcondition: Returns (state, true) after each instruction, or
// (State{}, false) once the path is exhausted or an error occurred.
func (w *Walker) Next() (State, bool) {
	if w.err != nil || w.next >= len(w.path) {
		return State{}, false
	}
	m := w.path[w.next]
	w.next++

	switch m.Kind {
	case route.Forward:
		if err := w.advance(m.Steps); err != nil {
			w.err = fmt.Errorf("instruction %d (%s): %w", w.next, m, err)
			return State{}, false
		}
	case route.TurnLeft:
		w.state.Direction = w.state.Direction.TurnLeft()
	case route.TurnRight:
		w.state.Direction = w.state.Direction.TurnRight()
	default:
		w.err = fmt.Errorf("instruction %d: unknown move kind %d", w.next, int(m.Kind))
		return State{}, false
	}
	return w.state, true
}

// advance moves up to n tiles in the current direction. The first wall ends
// the instruction; tiles after it are not attempted. A step that wraps back
// onto the current cell also ends it, since no further tile can change.
func (w *Walker) advance(n int) error {
	for i := 0; i < n; i++ {
		to, err := w.maze.Next(w.state.Position, w.state.Direction)
		if err != nil {
			return err
		}
		if to == w.state.Position || w.maze.HasWall(to) {
			return nil
		}
		w.state.Position = to
		if w.OnTile != nil {
			w.OnTile(w.state)
		}
	}
	return nil
}

// States returns the remaining states as a range-over-func sequence, one per
// instruction. Breaking out of the loop leaves the Walker where it stopped.
// Check Err after the loop.
func (w *Walker) States() iter.Seq[State] {
	return func(yield func(State) bool) {
		for {
			s, ok := w.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// Final drains the walker and returns the last state. A Walker with no
// remaining instructions returns its current state.
//
// Postcondition: Returns the terminal state, or a non-nil error if traversal failed.
func (w *Walker) Final() (State, error) {
	for range w.States() {
	}
	if w.err != nil {
		return State{}, w.err
	}
	return w.state, nil
}
