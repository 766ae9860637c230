package server

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *GameService {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Game.Players = []string{"Hero", "Villain1", "Villain2"}
	cfg.Game.StartingChips = 200
	cfg.Game.SmallBlind = 1
	cfg.Game.EquitySamples = 200
	cfg.Game.Seed = 7
	require.NoError(t, cfg.Validate())
	return NewGameService(cfg, zerolog.Nop())
}

// heroAct tries the hero's most passive continuing action; the service
// rejects illegal actions without changing state, so falling through the
// ladder is safe.
func heroAct(t *testing.T, s *GameService) (GameStateData, *HandEndData) {
	t.Helper()
	for _, action := range []string{"check", "call", "fold"} {
		state, end, err := s.HandleAction(ActionData{Seat: heroSeat, Action: action})
		if err == nil {
			return state, end
		}
	}
	t.Fatal("no legal hero action")
	return GameStateData{}, nil
}

func TestStartHandRunsToHeroOrEnd(t *testing.T) {
	s := newTestService(t)

	state, end, err := s.StartHand()
	require.NoError(t, err)

	if end == nil {
		// The table stopped because the hero is due to act.
		assert.Equal(t, heroSeat, state.State.ActionIdx)
		hero := state.State.Players[heroSeat]
		assert.Len(t, hero.Cards, 2, "hero sees own hole cards")
	} else {
		assert.NotEmpty(t, end.Winners)
	}
}

func TestStartHandTwiceFails(t *testing.T) {
	s := newTestService(t)

	_, end, err := s.StartHand()
	require.NoError(t, err)
	if end != nil {
		t.Skip("hand ended before the hero acted")
	}

	_, _, err = s.StartHand()
	assert.Error(t, err)
}

func TestPlayCompleteHand(t *testing.T) {
	s := newTestService(t)

	_, end, err := s.StartHand()
	require.NoError(t, err)

	for i := 0; end == nil && i < 20; i++ {
		_, end = heroAct(t, s)
	}
	require.NotNil(t, end, "hand should finish within a few hero turns")

	assert.NotEmpty(t, end.Winners)
	assert.Positive(t, end.Pot)

	// The pot was paid out and chips are conserved.
	total := 0
	for _, p := range end.State.Players {
		total += p.Chips
	}
	assert.Equal(t, 3*200, total)
}

func TestHandleActionRejectsBadInput(t *testing.T) {
	s := newTestService(t)

	_, _, err := s.HandleAction(ActionData{Seat: heroSeat, Action: "levitate"})
	assert.Error(t, err)

	_, _, err = s.HandleAction(ActionData{Seat: heroSeat, Action: "call"})
	assert.Error(t, err, "no hand in progress")
}

func TestStateRedactsOtherSeats(t *testing.T) {
	s := newTestService(t)

	_, end, err := s.StartHand()
	require.NoError(t, err)
	if end != nil {
		t.Skip("hand ended before the hero acted")
	}

	state := s.State(heroSeat)
	for i, p := range state.State.Players {
		if i == heroSeat {
			assert.Len(t, p.Cards, 2)
		} else {
			assert.Empty(t, p.Cards)
		}
	}
}

func TestAnalysisAndAdvice(t *testing.T) {
	s := newTestService(t)

	_, end, err := s.StartHand()
	require.NoError(t, err)
	if end != nil {
		t.Skip("hand ended before the hero acted")
	}

	analysis, err := s.Analysis(heroSeat)
	require.NoError(t, err)
	assert.Equal(t, heroSeat, analysis.Seat)
	assert.NotEmpty(t, analysis.Analysis.HandCategory)
	assert.GreaterOrEqual(t, analysis.Analysis.PotEquity, 0.0)
	assert.LessOrEqual(t, analysis.Analysis.PotEquity, 1.0)

	advice, err := s.Advice(heroSeat)
	require.NoError(t, err)
	assert.NotEmpty(t, advice.Action)
	assert.Greater(t, advice.Confidence, 0.0)

	_, err = s.Advice(99)
	assert.Error(t, err)
}

func TestDetectionFlow(t *testing.T) {
	s := newTestService(t)

	frame := DetectData{Cards: []CardObservation{
		{Card: "As", Confidence: 0.9},
		{Card: "Kd", Confidence: 0.9},
	}}

	var state DetectionStateData
	var err error
	for i := 0; i < 3; i++ {
		state, err = s.Detect(frame)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"As", "Kd"}, state.Hole)

	state = s.AdvanceDetectedStreet()
	assert.Equal(t, "flop", state.Street)
	assert.True(t, state.WaitingForBoard)

	state = s.ResetDetectedHand()
	assert.Empty(t, state.Hole)
	assert.Equal(t, "preflop", state.Street)
	assert.True(t, state.Stale)
}

func TestDetectRejectsBadCard(t *testing.T) {
	s := newTestService(t)

	_, err := s.Detect(DetectData{Cards: []CardObservation{{Card: "Zz", Confidence: 0.9}}})
	assert.Error(t, err)
}
