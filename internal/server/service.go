package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/gcheng713/pokerglasses/internal/advisor"
	"github.com/gcheng713/pokerglasses/internal/game"
	"github.com/gcheng713/pokerglasses/internal/profile"
	"github.com/gcheng713/pokerglasses/internal/vision"
	"github.com/gcheng713/pokerglasses/poker"
)

// heroSeat is the seat the assistant plays for. All other seats are
// driven by the advisor.
const heroSeat = 0

// GameService runs a single table: the hero acts through the API while
// the remaining seats are played by the advisor. It also owns the
// vision tracker for detected cards.
type GameService struct {
	mu       sync.Mutex
	cfg      *Config
	game     *game.Game
	advisor  *advisor.Advisor
	analyzer *profile.Analyzer
	tracker  *vision.Tracker
	logger   zerolog.Logger
	staleAge time.Duration
}

// NewGameService creates the service from validated configuration.
func NewGameService(cfg *Config, logger zerolog.Logger) *GameService {
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	analyzer := profile.NewAnalyzer(logger)
	return &GameService{
		cfg:      cfg,
		game:     game.New(cfg.Game.Players, cfg.Game.StartingChips, cfg.Game.SmallBlind, seed, analyzer, logger),
		advisor:  advisor.New(cfg.Game.EquitySamples, seed, logger),
		analyzer: analyzer,
		tracker:  vision.NewTracker(quartz.NewReal(), logger),
		logger:   logger.With().Str("component", "service").Logger(),
		staleAge: time.Duration(cfg.Vision.StaleAfterSeconds) * time.Second,
	}
}

// StartHand begins a new hand and lets the advisor seats act until the
// hero is due. If every other seat folds immediately the hand can end
// before the hero ever acts.
func (s *GameService) StartHand() (GameStateData, *HandEndData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game.Live() {
		return GameStateData{}, nil, fmt.Errorf("hand already in progress")
	}

	s.game.StartHand()
	end, err := s.step()
	if err != nil {
		return GameStateData{}, nil, err
	}
	return s.stateLocked(heroSeat), end, nil
}

// HandleAction applies the hero's action, then plays the advisor seats
// forward until the hero is due again or the hand ends.
func (s *GameService) HandleAction(data ActionData) (GameStateData, *HandEndData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actionType, ok := poker.ParseActionType(data.Action)
	if !ok {
		return GameStateData{}, nil, fmt.Errorf("unknown action: %q", data.Action)
	}

	if err := s.game.ProcessAction(data.Seat, poker.Action{Type: actionType, Amount: data.Amount}); err != nil {
		return GameStateData{}, nil, err
	}

	end, err := s.step()
	if err != nil {
		return GameStateData{}, nil, err
	}
	return s.stateLocked(heroSeat), end, nil
}

// step advances the table: advisor seats act, completed rounds roll to
// the next street, and a finished hand goes to showdown. Returns hand
// end details when the hand finished.
func (s *GameService) step() (*HandEndData, error) {
	for s.game.Live() {
		if s.game.HandDone() {
			return s.finishHand(), nil
		}
		if s.game.IsRoundComplete() {
			if err := s.game.AdvanceStreet(); err != nil {
				return nil, err
			}
			continue
		}

		idx := s.game.ActionIndex()
		if idx == heroSeat {
			return nil, nil
		}

		action := s.game.AIAction(idx, s.advisor)
		if err := s.game.ProcessAction(idx, action); err != nil {
			return nil, fmt.Errorf("advisor seat %d: %w", idx, err)
		}
	}
	return nil, nil
}

// finishHand settles the pot and reports the result.
func (s *GameService) finishHand() *HandEndData {
	winners := s.game.Winners()
	pot := s.game.Pot()
	s.game.EndHand(winners)

	names := make([]string, len(winners))
	for i, w := range winners {
		names[i] = w.Name
	}

	s.logger.Info().Strs("winners", names).Int("pot", pot).Msg("hand finished")

	return &HandEndData{
		Winners: names,
		Pot:     pot,
		State:   s.game.Snapshot(heroSeat),
	}
}

// State returns the game state with the given seat's hole cards shown.
func (s *GameService) State(seat int) GameStateData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked(seat)
}

func (s *GameService) stateLocked(seat int) GameStateData {
	return GameStateData{State: s.game.Snapshot(seat)}
}

// Analysis produces the full hand readout for a seat.
func (s *GameService) Analysis(seat int) (AnalysisData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkSeat(seat); err != nil {
		return AnalysisData{}, err
	}
	return AnalysisData{
		Seat:     seat,
		Analysis: s.game.Analyze(seat, s.cfg.Game.EquitySamples, s.cfg.Game.Seed),
	}, nil
}

// Advice returns the fused recommendation for a seat without acting on
// it.
func (s *GameService) Advice(seat int) (AdviceData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkSeat(seat); err != nil {
		return AdviceData{}, err
	}
	if !s.game.Live() {
		return AdviceData{}, fmt.Errorf("no hand in progress")
	}

	advice := s.game.Advice(seat, s.advisor)
	return AdviceData{
		Seat:       seat,
		Action:     advice.Action.String(),
		Amount:     advice.Amount,
		Confidence: advice.Confidence,
		Reasoning:  advice.Reasoning,
	}, nil
}

func (s *GameService) checkSeat(seat int) error {
	if seat < 0 || seat >= len(s.game.Players()) {
		return fmt.Errorf("no such seat: %d", seat)
	}
	return nil
}

// Detect feeds one frame of card detections to the vision tracker.
func (s *GameService) Detect(data DetectData) (DetectionStateData, error) {
	frame := make([]vision.Observation, 0, len(data.Cards))
	for _, obs := range data.Cards {
		card, err := poker.ParseCard(obs.Card)
		if err != nil {
			return DetectionStateData{}, fmt.Errorf("bad detection %q: %w", obs.Card, err)
		}
		frame = append(frame, vision.Observation{Card: card, Confidence: obs.Confidence})
	}

	s.tracker.Observe(frame)
	return s.detectionState(), nil
}

// AdvanceDetectedStreet tells the tracker the action round ended and
// new board cards are expected.
func (s *GameService) AdvanceDetectedStreet() DetectionStateData {
	s.tracker.AdvanceStreet()
	return s.detectionState()
}

// ResetDetectedHand clears the tracker for a fresh hand.
func (s *GameService) ResetDetectedHand() DetectionStateData {
	s.tracker.ResetHand()
	return s.detectionState()
}

func (s *GameService) detectionState() DetectionStateData {
	snap := s.tracker.Snapshot()
	return DetectionStateData{
		Hole:            cardNames(snap.Hole),
		Community:       cardNames(snap.Community),
		Street:          snap.Street.String(),
		WaitingForBoard: snap.WaitingForBoard,
		Stale:           s.tracker.Stale(s.staleAge),
	}
}

func cardNames(cards []poker.Card) []string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}
	return names
}
