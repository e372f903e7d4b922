package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDirection_RotateIsClockwise(t *testing.T) {
	assert.Equal(t, Right, Up.Rotate())
	assert.Equal(t, Down, Right.Rotate())
	assert.Equal(t, Left, Down.Rotate())
	assert.Equal(t, Up, Left.Rotate())
}

func TestDirection_Turns(t *testing.T) {
	assert.Equal(t, Right, Up.TurnRight())
	assert.Equal(t, Left, Up.TurnLeft())
	assert.Equal(t, Up, Right.TurnLeft())
	assert.Equal(t, Down, Left.TurnLeft())
}

func TestDirection_Facing(t *testing.T) {
	assert.Equal(t, 0, Right.Facing())
	assert.Equal(t, 1, Down.Facing())
	assert.Equal(t, 2, Left.Facing())
	assert.Equal(t, 3, Up.Facing())
}

func TestDirection_Delta(t *testing.T) {
	dx, dy := Up.Delta()
	assert.Equal(t, [2]int{0, -1}, [2]int{dx, dy})
	dx, dy = Right.Delta()
	assert.Equal(t, [2]int{1, 0}, [2]int{dx, dy})
}

func TestDirection_InvalidPanics(t *testing.T) {
	assert.Panics(t, func() { Direction(9).Rotate() })
	assert.Equal(t, "direction(9)", Direction(9).String())
}

func TestPosition_Step(t *testing.T) {
	p := Position{X: 5, Y: 5}
	assert.Equal(t, Position{X: 5, Y: 4}, p.Step(Up))
	assert.Equal(t, Position{X: 5, Y: 6}, p.Step(Down))
	assert.Equal(t, Position{X: 4, Y: 5}, p.Step(Left))
	assert.Equal(t, Position{X: 6, Y: 5}, p.Step(Right))
	assert.Equal(t, "(5,5)", p.String())
}

func TestPropertyRotateIsFourCycle(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := rapid.SampledFrom(Directions).Draw(t, "dir")
		assert.Equal(t, d, d.Rotate().Rotate().Rotate().Rotate())
		assert.NotEqual(t, d, d.Rotate())
	})
}

func TestPropertyTurnLeftUndoesTurnRight(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := rapid.SampledFrom(Directions).Draw(t, "dir")
		assert.Equal(t, d, d.TurnRight().TurnLeft())
		assert.Equal(t, d, d.TurnLeft().TurnRight())
	})
}
