package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gcheng713/pokerglasses/poker"
)

func TestSimulateUncontested(t *testing.T) {
	hole := poker.MustParseCards("AsKs")
	board := poker.MustParseCards("QsJsTs2h3d")

	result := Simulate(hole, board, 0, 1, 1)
	assert.Equal(t, Result{Wins: 1, Ties: 0, Samples: 1}, result)
	assert.Equal(t, 1.0, result.Equity())
	assert.Equal(t, 1.0, result.WinRate())
	assert.Equal(t, 0.0, result.TieRate())
}

func TestSimulateNutsAlwaysWins(t *testing.T) {
	hole := poker.MustParseCards("AsKs")
	board := poker.MustParseCards("QsJsTs2h3d")

	result := Simulate(hole, board, 2, 200, 7)
	assert.Equal(t, 200, result.Samples)
	assert.Equal(t, 1.0, result.Equity(), "a royal flush cannot be outdrawn")
}

func TestSimulateBoardPlays(t *testing.T) {
	// The board itself is a royal flush, so every showdown splits.
	hole := poker.MustParseCards("2h3d")
	board := poker.MustParseCards("As Ks Qs Js Ts")

	result := Simulate(hole, board, 1, 100, 3)
	assert.Equal(t, 100, result.Ties)
	assert.Equal(t, 0.5, result.Equity())
	assert.Equal(t, 1.0, result.TieRate())
}

func TestSimulateHeadsUpAces(t *testing.T) {
	hole := poker.MustParseCards("AsAh")

	result := Simulate(hole, nil, 1, 2000, 42)
	assert.Equal(t, 2000, result.Samples)
	// Pocket aces run at roughly 85% against a random hand.
	assert.Greater(t, result.Equity(), 0.75)
	assert.Less(t, result.Equity(), 0.95)
}

func TestSimulateStrengthOrdering(t *testing.T) {
	aces := Simulate(poker.MustParseCards("AsAh"), nil, 1, 1000, 9)
	junk := Simulate(poker.MustParseCards("7c2h"), nil, 1, 1000, 9)
	assert.Greater(t, aces.Equity(), junk.Equity())
}

func TestSimulateMoreOpponentsLowerEquity(t *testing.T) {
	hole := poker.MustParseCards("AsAh")
	one := Simulate(hole, nil, 1, 2000, 11)
	four := Simulate(hole, nil, 4, 2000, 11)
	assert.Greater(t, one.Equity(), four.Equity())
}

func TestSimulateInvalidInput(t *testing.T) {
	assert.Equal(t, Result{}, Simulate(nil, nil, 1, 100, 1))
	assert.Equal(t, Result{}, Simulate(poker.MustParseCards("AsAh"), nil, 1, 0, 1))
	assert.Equal(t, 0.0, Result{}.Equity())
}
