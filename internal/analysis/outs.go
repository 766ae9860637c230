package analysis

import (
	"github.com/gcheng713/pokerglasses/poker"
)

// Draw identifies the kind of hand a drawing card would complete.
type Draw uint8

const (
	FlushDraw Draw = iota
	StraightDraw
	TwoPairDraw
	SetDraw
)

func (d Draw) String() string {
	switch d {
	case FlushDraw:
		return "flush_draw"
	case StraightDraw:
		return "straight_draw"
	case TwoPairDraw:
		return "two_pair_draw"
	case SetDraw:
		return "set_draw"
	}
	return "unknown"
}

// improvementThreshold is the strength gain a card must provide before
// it counts as an out.
const improvementThreshold = 0.2

// DrawOuts counts the unseen cards that significantly improve the hand,
// bucketed by the hand they complete. Before the flop there is nothing
// to draw to and the result is empty; the same holds once the board is
// complete.
func DrawOuts(hole, board []poker.Card) map[Draw]int {
	outs := make(map[Draw]int)
	if len(hole) != 2 || len(board) < 3 || len(board) >= 5 {
		return outs
	}

	current := Strength(hole, board)
	newBoard := make([]poker.Card, len(board), len(board)+1)
	copy(newBoard, board)

	for _, card := range availableCards(hole, board) {
		newBoard = append(newBoard[:len(board)], card)
		if Strength(hole, newBoard)-current <= improvementThreshold {
			continue
		}
		switch MadeHand(hole, newBoard).Type() {
		case poker.Flush:
			outs[FlushDraw]++
		case poker.Straight:
			outs[StraightDraw]++
		case poker.TwoPair:
			outs[TwoPairDraw]++
		case poker.ThreeOfAKind:
			outs[SetDraw]++
		}
	}
	return outs
}

// TotalOuts sums all counted outs.
func TotalOuts(outs map[Draw]int) int {
	total := 0
	for _, n := range outs {
		total += n
	}
	return total
}
