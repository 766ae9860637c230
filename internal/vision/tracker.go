package vision

import (
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/gcheng713/pokerglasses/poker"
)

const (
	// ConfidenceThreshold filters out low-confidence detections.
	ConfidenceThreshold = 0.45

	// stabilityFrames is how many consecutive identical frames a
	// detection must survive before cards are accepted.
	stabilityFrames = 3
)

// Observation is a single detected card with its model confidence.
type Observation struct {
	Card       poker.Card
	Confidence float64
}

// Snapshot is a point-in-time copy of the tracked hand state.
type Snapshot struct {
	Hole            []poker.Card
	Community       []poker.Card
	Street          poker.Street
	WaitingForBoard bool
	LastDetection   time.Time
}

// Tracker accumulates card detections into a consistent hand state.
// Detections are debounced over consecutive frames, deduplicated
// against everything already seen, and gated by street so a flop never
// grows past three cards. Safe for concurrent use.
type Tracker struct {
	mu     sync.Mutex
	clock  quartz.Clock
	logger zerolog.Logger

	seen      map[poker.Card]bool
	hole      []poker.Card
	community []poker.Card
	street    poker.Street
	waiting   bool
	expected  int

	frames        [][]poker.Card
	lastDetection time.Time
}

// NewTracker creates a tracker for a fresh hand.
func NewTracker(clock quartz.Clock, logger zerolog.Logger) *Tracker {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Tracker{
		clock:  clock,
		logger: logger.With().Str("component", "vision").Logger(),
		seen:   make(map[poker.Card]bool),
	}
}

// Observe feeds one frame of detections. Cards below the confidence
// threshold are dropped; the rest only take effect once the same frame
// has been seen several times in a row.
func (t *Tracker) Observe(frame []Observation) {
	confident := make([]poker.Card, 0, len(frame))
	for _, obs := range frame {
		if obs.Confidence > ConfidenceThreshold && obs.Card.Valid() {
			confident = append(confident, obs.Card)
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.frames = append(t.frames, confident)
	if len(t.frames) > stabilityFrames {
		t.frames = t.frames[1:]
	}

	if len(confident) == 0 || !t.framesStable() {
		return
	}

	for _, card := range confident {
		t.accept(card)
	}
	t.lastDetection = t.clock.Now()
}

// framesStable reports whether every buffered frame detected the same
// cards.
func (t *Tracker) framesStable() bool {
	if len(t.frames) < stabilityFrames {
		return false
	}
	first := t.frames[0]
	for _, frame := range t.frames[1:] {
		if !sameCards(first, frame) {
			return false
		}
	}
	return true
}

// accept routes a card to the hole or the board. Cards already seen are
// ignored, making repeated detections idempotent.
func (t *Tracker) accept(card poker.Card) {
	if t.seen[card] {
		return
	}

	if t.street == poker.Preflop && len(t.hole) < 2 {
		t.seen[card] = true
		t.hole = append(t.hole, card)
		t.logger.Debug().Stringer("card", card).Msg("hole card detected")
		return
	}

	if t.waiting && t.expected > 0 {
		t.seen[card] = true
		t.community = append(t.community, card)
		t.expected--
		if t.expected == 0 {
			t.waiting = false
		}
		t.logger.Debug().Stringer("card", card).Int("board", len(t.community)).Msg("board card detected")
	}
}

// SetHoleCards overrides the detected hole cards, for manual entry.
func (t *Tracker) SetHoleCards(cards []poker.Card) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.hole = append([]poker.Card(nil), cards...)
	for _, c := range cards {
		t.seen[c] = true
	}
}

// AdvanceStreet moves to the next street and arms the tracker to expect
// that street's community cards. Returns the new street and how many
// cards it brings; once the river is dealt there is nothing further and
// ok is false.
func (t *Tracker) AdvanceStreet() (street poker.Street, expected int, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.street >= poker.River {
		return t.street, 0, false
	}

	t.street = t.street.Next()
	t.expected = t.street.CommunityCards()
	t.waiting = t.expected > 0
	t.frames = nil

	t.logger.Info().Stringer("street", t.street).Int("expected", t.expected).Msg("street advanced")
	return t.street, t.expected, true
}

// ResetHand clears all state for a new hand.
func (t *Tracker) ResetHand() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.seen = make(map[poker.Card]bool)
	t.hole = nil
	t.community = nil
	t.street = poker.Preflop
	t.waiting = false
	t.expected = 0
	t.frames = nil
	t.lastDetection = time.Time{}

	t.logger.Info().Msg("hand reset")
}

// Snapshot copies the current state.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	return Snapshot{
		Hole:            append([]poker.Card(nil), t.hole...),
		Community:       append([]poker.Card(nil), t.community...),
		Street:          t.street,
		WaitingForBoard: t.waiting,
		LastDetection:   t.lastDetection,
	}
}

// Stale reports whether no stable detection has landed within maxAge.
func (t *Tracker) Stale(maxAge time.Duration) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.lastDetection.IsZero() {
		return true
	}
	return t.clock.Now().Sub(t.lastDetection) > maxAge
}

func sameCards(a, b []poker.Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
