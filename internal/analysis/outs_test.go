package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gcheng713/pokerglasses/poker"
)

func TestDrawOutsFlushDraw(t *testing.T) {
	hole := poker.MustParseCards("2h7h")
	board := poker.MustParseCards("9hKh3c")

	outs := DrawOuts(hole, board)
	assert.Equal(t, 9, outs[FlushDraw], "nine hearts remain in the deck")
	assert.Equal(t, 0, outs[StraightDraw])
	assert.Equal(t, 9, TotalOuts(outs))
}

func TestDrawOutsOpenEndedStraight(t *testing.T) {
	hole := poker.MustParseCards("8c9d")
	board := poker.MustParseCards("6h7s2c")

	outs := DrawOuts(hole, board)
	assert.Equal(t, 8, outs[StraightDraw], "any five or ten completes the straight")
	assert.Equal(t, 0, outs[FlushDraw])
}

func TestDrawOutsPocketPair(t *testing.T) {
	hole := poker.MustParseCards("5h5d")
	board := poker.MustParseCards("AcKd2s")

	outs := DrawOuts(hole, board)
	assert.Equal(t, 2, outs[SetDraw], "two fives remain")
	assert.Equal(t, 9, outs[TwoPairDraw], "pairing any board card makes two pair")
}

func TestDrawOutsPreflopEmpty(t *testing.T) {
	hole := poker.MustParseCards("AsKs")
	assert.Empty(t, DrawOuts(hole, nil))
	assert.Empty(t, DrawOuts(hole, poker.MustParseCards("QsJs")))
}

func TestDrawOutsRiverEmpty(t *testing.T) {
	hole := poker.MustParseCards("2h7h")
	board := poker.MustParseCards("9h Kh 3c 4d As")
	assert.Empty(t, DrawOuts(hole, board))
}
