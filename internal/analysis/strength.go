package analysis

import (
	"github.com/gcheng713/pokerglasses/poker"
)

// Strength scores a hand on a 0-1 scale where 1 is the best possible
// hand. Before the flop this is the starting-hand category scalar; with
// community cards it is the hand's percentile in the 7,462 rank domain.
func Strength(hole, board []poker.Card) float64 {
	if len(hole) != 2 {
		return 0
	}
	if len(board) == 0 {
		return Categorize(hole[0], hole[1]).PreflopStrength()
	}
	rank := MadeHand(hole, board)
	return 1 - float64(rank)/float64(poker.RankCount)
}

// MadeHand evaluates the best 5-card hand available from the hole and
// community cards.
func MadeHand(hole, board []poker.Card) poker.HandRank {
	hand := poker.NewHand(hole...)
	for _, c := range board {
		hand.AddCard(c)
	}
	return poker.Evaluate(hand)
}

// Label names the made hand, e.g. "Two Pair" or "Straight Flush".
func Label(hole, board []poker.Card) string {
	return MadeHand(hole, board).String()
}
