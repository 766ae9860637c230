package game

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcheng713/pokerglasses/internal/profile"
	"github.com/gcheng713/pokerglasses/poker"
)

func newTestGame(names []string, chips, smallBlind int, seed int64) *Game {
	return New(names, chips, smallBlind, seed, nil, zerolog.Nop())
}

func totalChips(g *Game) int {
	total := g.Pot()
	for _, p := range g.Players() {
		total += p.Chips
	}
	return total
}

func TestStartHandPostsBlinds(t *testing.T) {
	g := newTestGame([]string{"a", "b", "c"}, 100, 1, 1)
	g.StartHand()

	assert.Equal(t, 0, g.DealerIndex(), "button starts on seat zero")
	assert.Equal(t, 3, g.Pot())
	assert.Equal(t, 2, g.CurrentBet())
	assert.Equal(t, 99, g.Player(1).Chips)
	assert.True(t, g.Player(1).SmallBlind)
	assert.Equal(t, 98, g.Player(2).Chips)
	assert.True(t, g.Player(2).BigBlind)
	assert.Equal(t, 0, g.ActionIndex(), "first to act preflop is the seat after the big blind")

	for _, p := range g.Players() {
		assert.Len(t, p.Cards, 2)
	}
}

func TestPreflopRoundWithBigBlindOption(t *testing.T) {
	g := newTestGame([]string{"a", "b", "c"}, 100, 1, 1)
	g.StartHand()

	// Seat 0 folds, small blind calls.
	require.NoError(t, g.ProcessAction(0, poker.Action{Type: poker.Fold}))
	assert.Equal(t, 0, g.Player(0).CurrentBet, "folding releases the matched amount")

	require.NoError(t, g.ProcessAction(1, poker.Action{Type: poker.Call}))
	assert.Equal(t, 4, g.Pot())

	// All bets are matched but the big blind still holds the option.
	assert.False(t, g.IsRoundComplete())

	require.NoError(t, g.ProcessAction(2, poker.Action{Type: poker.Check}))
	assert.True(t, g.IsRoundComplete())
}

func TestBigBlindOptionRaise(t *testing.T) {
	g := newTestGame([]string{"a", "b", "c"}, 100, 1, 1)
	g.StartHand()

	require.NoError(t, g.ProcessAction(0, poker.Action{Type: poker.Call}))
	require.NoError(t, g.ProcessAction(1, poker.Action{Type: poker.Call}))
	assert.False(t, g.IsRoundComplete())

	// The big blind raises its option; action reopens.
	require.NoError(t, g.ProcessAction(2, poker.Action{Type: poker.Raise, Amount: 6}))
	assert.Equal(t, 6, g.CurrentBet())
	assert.False(t, g.IsRoundComplete())

	require.NoError(t, g.ProcessAction(0, poker.Action{Type: poker.Call}))
	require.NoError(t, g.ProcessAction(1, poker.Action{Type: poker.Call}))
	assert.True(t, g.IsRoundComplete())
	assert.Equal(t, 18, g.Pot())
}

func TestProcessActionValidation(t *testing.T) {
	g := newTestGame([]string{"a", "b", "c"}, 100, 1, 1)

	err := g.ProcessAction(0, poker.Action{Type: poker.Fold})
	assert.ErrorIs(t, err, ErrHandNotActive)

	g.StartHand()

	err = g.ProcessAction(1, poker.Action{Type: poker.Call})
	assert.ErrorIs(t, err, ErrOutOfTurn)

	// Seat 0 faces a bet: checking is not legal.
	err = g.ProcessAction(0, poker.Action{Type: poker.Check})
	assert.ErrorIs(t, err, ErrIllegalAction)

	// Raise below the minimum is rejected before any chips move.
	err = g.ProcessAction(0, poker.Action{Type: poker.Raise, Amount: 3})
	assert.ErrorIs(t, err, ErrIllegalAction)
	assert.Equal(t, 3, g.Pot())
	assert.Equal(t, 100, g.Player(0).Chips)

	// Raise beyond the stack is rejected.
	err = g.ProcessAction(0, poker.Action{Type: poker.Raise, Amount: 500})
	assert.ErrorIs(t, err, ErrIllegalAction)

	require.NoError(t, g.ProcessAction(0, poker.Action{Type: poker.Raise, Amount: 4}))
	assert.Equal(t, 4, g.CurrentBet())
	assert.Equal(t, 96, g.Player(0).Chips)
}

func TestLegalActions(t *testing.T) {
	g := newTestGame([]string{"a", "b", "c"}, 100, 1, 1)
	g.StartHand()

	// Seat 0 faces the big blind.
	assert.Equal(t,
		[]poker.ActionType{poker.Fold, poker.Call, poker.Raise, poker.AllIn},
		g.LegalActions(0))

	require.NoError(t, g.ProcessAction(0, poker.Action{Type: poker.Call}))
	require.NoError(t, g.ProcessAction(1, poker.Action{Type: poker.Call}))

	// The big blind has already matched: check is free, fold pointless.
	assert.Equal(t,
		[]poker.ActionType{poker.Check, poker.Raise, poker.AllIn},
		g.LegalActions(2))
}

func TestAdvanceStreetDealsBoard(t *testing.T) {
	g := newTestGame([]string{"a", "b", "c"}, 100, 1, 1)
	g.StartHand()

	assert.ErrorIs(t, g.AdvanceStreet(), ErrRoundNotComplete)

	playPreflopCalls(t, g)

	require.NoError(t, g.AdvanceStreet())
	assert.Equal(t, poker.Flop, g.Street())
	assert.Len(t, g.Community(), 3)
	assert.Equal(t, 0, g.CurrentBet(), "bets reset between streets")
	assert.Equal(t, 1, g.ActionIndex(), "small blind acts first after the flop")

	checkAround(t, g)
	require.NoError(t, g.AdvanceStreet())
	assert.Equal(t, poker.Turn, g.Street())
	assert.Len(t, g.Community(), 4)

	checkAround(t, g)
	require.NoError(t, g.AdvanceStreet())
	assert.Equal(t, poker.River, g.Street())
	assert.Len(t, g.Community(), 5)
}

func TestFullHandPotConservation(t *testing.T) {
	g := newTestGame([]string{"a", "b", "c", "d"}, 100, 2, 9)
	start := 4 * 100

	for hand := 0; hand < 5; hand++ {
		g.StartHand()
		assert.Equal(t, start, totalChips(g))

		playPreflopCalls(t, g)
		for g.Street() != poker.River {
			require.NoError(t, g.AdvanceStreet())
			checkAround(t, g)
			assert.Equal(t, start, totalChips(g))
		}

		winners := g.Winners()
		require.NotEmpty(t, winners)
		g.EndHand(winners)

		assert.Equal(t, 0, g.Pot())
		assert.Equal(t, start, totalChips(g), "chips are neither created nor destroyed")
	}
}

func TestWinnersMatchEvaluation(t *testing.T) {
	g := newTestGame([]string{"a", "b", "c"}, 100, 1, 33)
	g.StartHand()
	playPreflopCalls(t, g)
	for g.Street() != poker.River {
		require.NoError(t, g.AdvanceStreet())
		checkAround(t, g)
	}

	best := poker.HandRank(poker.RankCount)
	ranks := make([]poker.HandRank, len(g.Players()))
	for i, p := range g.Players() {
		hand := poker.NewHand(p.Cards...)
		for _, c := range g.Community() {
			hand.AddCard(c)
		}
		ranks[i] = poker.Evaluate(hand)
		if ranks[i] < best {
			best = ranks[i]
		}
	}

	winners := g.Winners()
	require.NotEmpty(t, winners)
	for _, w := range winners {
		for i, p := range g.Players() {
			if p == w {
				assert.Equal(t, best, ranks[i])
			}
		}
	}
}

func TestDealerRotationVisitsEverySeat(t *testing.T) {
	g := newTestGame([]string{"a", "b", "c", "d", "e"}, 100, 1, 2)

	seen := make(map[int]bool)
	for i := 0; i < 5; i++ {
		g.ResetHand()
		g.MoveDealerButton()
		assert.False(t, seen[g.DealerIndex()], "button visited seat twice in one orbit")
		seen[g.DealerIndex()] = true
	}
	assert.Len(t, seen, 5)
}

func TestFoldedChipsStayInPot(t *testing.T) {
	g := newTestGame([]string{"a", "b", "c"}, 100, 1, 1)
	g.StartHand()

	require.NoError(t, g.ProcessAction(0, poker.Action{Type: poker.Raise, Amount: 10}))
	require.NoError(t, g.ProcessAction(1, poker.Action{Type: poker.Fold}))

	assert.Equal(t, 0, g.Player(1).CurrentBet)
	assert.Equal(t, 99, g.Player(1).Chips, "the posted blind is gone")
	assert.Equal(t, 13, g.Pot(), "folded chips remain in the pot")
}

func TestSplitPotOddChip(t *testing.T) {
	g := newTestGame([]string{"a", "b", "c"}, 100, 1, 1)
	g.StartHand()
	// Pot is 3: small blind 1, big blind 2.

	winners := []*Player{g.Player(1), g.Player(2)}
	g.EndHand(winners)

	// One chip each, odd chip to the first winner clockwise from the
	// button (seat 1).
	assert.Equal(t, 101, g.Player(1).Chips)
	assert.Equal(t, 99, g.Player(2).Chips)
	assert.Equal(t, 0, g.Pot())
	assert.Equal(t, 300, totalChips(g))
}

func TestAllInShortStack(t *testing.T) {
	g := newTestGame([]string{"a", "b", "c"}, 100, 1, 1)
	g.StartHand()
	g.Player(0).Chips = 5

	require.NoError(t, g.ProcessAction(0, poker.Action{Type: poker.AllIn}))
	p := g.Player(0)
	assert.True(t, p.AllIn)
	assert.Equal(t, 0, p.Chips)
	assert.Equal(t, 5, p.CurrentBet)
	assert.Equal(t, 5, g.CurrentBet(), "an all-in above the bet reopens action")
	assert.Equal(t, 8, g.Pot())
}

func TestSingleClaimantWinsUncontested(t *testing.T) {
	g := newTestGame([]string{"a", "b", "c"}, 100, 1, 1)
	g.StartHand()

	require.NoError(t, g.ProcessAction(0, poker.Action{Type: poker.Fold}))
	require.NoError(t, g.ProcessAction(1, poker.Action{Type: poker.Fold}))

	assert.True(t, g.HandDone())
	winners := g.Winners()
	require.Len(t, winners, 1)
	assert.Equal(t, "c", winners[0].Name)

	g.EndHand(winners)
	assert.Equal(t, 101, g.Player(2).Chips)
}

func TestEndHandFeedsProfiler(t *testing.T) {
	analyzer := profile.NewAnalyzer(zerolog.Nop())
	g := New([]string{"a", "b", "c"}, 100, 1, 1, analyzer, zerolog.Nop())
	g.StartHand()

	require.NoError(t, g.ProcessAction(0, poker.Action{Type: poker.Raise, Amount: 6}))
	require.NoError(t, g.ProcessAction(1, poker.Action{Type: poker.Fold}))
	require.NoError(t, g.ProcessAction(2, poker.Action{Type: poker.Fold}))

	g.EndHand(g.Winners())

	stats, ok := analyzer.Snapshot("a")
	require.True(t, ok)
	assert.Equal(t, 1, stats.TotalHands)
	assert.Equal(t, 1, stats.PFRHands)
	assert.Equal(t, 1, stats.VPIPHands)
	assert.Equal(t, 1, stats.HandsWon)

	// Histories are cleared for the next hand.
	assert.Equal(t, HandHistory{}, g.Player(0).History)
}

func TestSnapshotRedactsHoleCards(t *testing.T) {
	g := newTestGame([]string{"a", "b", "c"}, 100, 1, 1)
	g.StartHand()

	snap := g.Snapshot(1)
	assert.Equal(t, "preflop", snap.Street)
	assert.Equal(t, 3, snap.Pot)
	assert.Len(t, snap.Players[1].Cards, 2)
	assert.Empty(t, snap.Players[0].Cards)
	assert.Empty(t, snap.Players[2].Cards)

	hidden := g.Snapshot(-1)
	for _, p := range hidden.Players {
		assert.Empty(t, p.Cards)
	}
}

func TestAnalyzeReadout(t *testing.T) {
	g := newTestGame([]string{"a", "b", "c"}, 100, 1, 5)
	g.StartHand()
	playPreflopCalls(t, g)
	require.NoError(t, g.AdvanceStreet())

	out := g.Analyze(0, 200, 5)
	assert.GreaterOrEqual(t, out.HandStrength, 0.0)
	assert.LessOrEqual(t, out.HandStrength, 1.0)
	assert.GreaterOrEqual(t, out.PotEquity, 0.0)
	assert.LessOrEqual(t, out.PotEquity, 1.0)
	assert.NotEmpty(t, out.HandCategory)
	assert.NotEmpty(t, out.MadeHand)
	assert.Equal(t, 0.0, out.PotOdds, "nothing to call after the flop")
}

// playPreflopCalls has every seat call the big blind and the big blind
// check its option.
func playPreflopCalls(t *testing.T, g *Game) {
	t.Helper()
	for !g.IsRoundComplete() {
		idx := g.ActionIndex()
		var err error
		if g.CurrentBet() > g.Player(idx).CurrentBet {
			err = g.ProcessAction(idx, poker.Action{Type: poker.Call})
		} else {
			err = g.ProcessAction(idx, poker.Action{Type: poker.Check})
		}
		require.NoError(t, err)
	}
}

// checkAround has every active seat check the street through.
func checkAround(t *testing.T, g *Game) {
	t.Helper()
	for !g.IsRoundComplete() {
		require.NoError(t, g.ProcessAction(g.ActionIndex(), poker.Action{Type: poker.Check}))
	}
}
