package analysis

import (
	"github.com/gcheng713/pokerglasses/poker"
)

// Advice is a suggested action with a bet size and a confidence score.
// Reasoning, when present, holds the human-readable grounds for the
// suggestion.
type Advice struct {
	Action     poker.ActionType
	Amount     float64
	Confidence float64
	Reasoning  []string
}

// PotOdds returns the price of a call: the call amount as a fraction of
// the pot after calling. Zero when there is nothing to call.
func PotOdds(pot, toCall float64) float64 {
	if toCall <= 0 {
		return 0
	}
	return toCall / (pot + toCall)
}

// Recommend applies the betting ladder to an already-computed strength
// and equity.
func Recommend(strength, equity, pot, toCall float64, opponents int, position poker.Position) Advice {
	potOdds := PotOdds(pot, toCall)

	switch {
	case equity > potOdds+0.1:
		// Significant edge
		switch {
		case strength > 0.8:
			return Advice{Action: poker.Raise, Amount: pot * 0.75, Confidence: 0.9}
		case equity > 0.7:
			return Advice{Action: poker.Raise, Amount: pot * 0.5, Confidence: 0.8}
		case equity > potOdds+0.2:
			return Advice{Action: poker.Raise, Amount: pot * 0.33, Confidence: 0.7}
		default:
			return Advice{Action: poker.Call, Amount: toCall, Confidence: 0.6}
		}
	case equity > potOdds:
		// Small edge: position decides how comfortable the call is
		if position == poker.Late && opponents <= 2 {
			return Advice{Action: poker.Call, Amount: toCall, Confidence: 0.6}
		}
		return Advice{Action: poker.Call, Amount: toCall, Confidence: 0.5}
	default:
		if toCall == 0 && position == poker.Late {
			return Advice{Action: poker.Check, Confidence: 0.7}
		}
		return Advice{Action: poker.Fold, Confidence: 0.8}
	}
}

// Advise evaluates the hand, runs the equity simulation and applies the
// betting ladder.
func Advise(hole, board []poker.Card, pot, toCall float64, opponents int, position poker.Position, samples int, seed int64) Advice {
	strength := Strength(hole, board)
	equity := Simulate(hole, board, opponents, samples, seed).Equity()
	return Recommend(strength, equity, pot, toCall, opponents, position)
}
