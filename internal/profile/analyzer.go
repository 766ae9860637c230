package profile

import (
	"sync"

	"github.com/rs/zerolog"
)

const (
	// minHandsForStyle is how many hands must be seen before a player
	// can be classified.
	minHandsForStyle = 20

	// aggressionWindow is how many recent hands the aggression rate is
	// averaged over.
	aggressionWindow = 20

	// maxSamples bounds the per-player sample history.
	maxSamples = 100

	vpipTight     = 0.25
	vpipLoose     = 0.4
	aggPassive    = 0.3
	aggAggressive = 0.5
)

// HandResult summarises one player's involvement in a completed hand.
type HandResult struct {
	Participated      bool
	Won               bool
	VPIP              bool
	PFR               bool
	AggressiveActions int
	PassiveActions    int
	AverageBetSize    float64
	WentToShowdown    bool
	WonAtShowdown     bool
}

// Stats accumulates per-player observations across hands.
type Stats struct {
	TotalHands    int
	HandsPlayed   int
	HandsWon      int
	VPIPHands     int
	PFRHands      int
	ShowdownWins  int
	ShowdownTotal int

	aggression []int
	betSizes   []float64
}

// VPIPRate is the fraction of hands where the player voluntarily put
// chips in preflop.
func (s *Stats) VPIPRate() float64 {
	if s.TotalHands == 0 {
		return 0
	}
	return float64(s.VPIPHands) / float64(s.TotalHands)
}

// PFRRate is the fraction of hands opened with a preflop raise.
func (s *Stats) PFRRate() float64 {
	if s.TotalHands == 0 {
		return 0
	}
	return float64(s.PFRHands) / float64(s.TotalHands)
}

// AggressionRate averages the aggression samples over the recent window.
func (s *Stats) AggressionRate() float64 {
	samples := s.aggression
	if len(samples) > aggressionWindow {
		samples = samples[len(samples)-aggressionWindow:]
	}
	if len(samples) == 0 {
		return 0
	}
	sum := 0
	for _, v := range samples {
		sum += v
	}
	return float64(sum) / float64(len(samples))
}

// AverageBetSize averages the recorded bet sizes.
func (s *Stats) AverageBetSize() float64 {
	if len(s.betSizes) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.betSizes {
		sum += v
	}
	return sum / float64(len(s.betSizes))
}

// Analyzer tracks opponents across hands and classifies their style.
// Safe for concurrent use.
type Analyzer struct {
	mu      sync.Mutex
	players map[string]*Stats
	logger  zerolog.Logger
}

// NewAnalyzer creates an empty analyzer.
func NewAnalyzer(logger zerolog.Logger) *Analyzer {
	return &Analyzer{
		players: make(map[string]*Stats),
		logger:  logger.With().Str("component", "profiler").Logger(),
	}
}

// Record folds a completed hand into a player's running statistics.
func (a *Analyzer) Record(playerID string, result HandResult) {
	a.mu.Lock()
	defer a.mu.Unlock()

	stats := a.stats(playerID)
	stats.TotalHands++

	if !result.Participated {
		return
	}

	stats.HandsPlayed++
	if result.Won {
		stats.HandsWon++
	}
	if result.VPIP {
		stats.VPIPHands++
	}
	if result.PFR {
		stats.PFRHands++
	}

	sample := 0
	if result.AggressiveActions > result.PassiveActions {
		sample = 1
	}
	stats.aggression = appendBounded(stats.aggression, sample)
	stats.betSizes = appendBounded(stats.betSizes, result.AverageBetSize)

	if result.WentToShowdown {
		stats.ShowdownTotal++
		if result.WonAtShowdown {
			stats.ShowdownWins++
		}
	}

	a.logger.Debug().
		Str("player", playerID).
		Int("total_hands", stats.TotalHands).
		Float64("vpip", stats.VPIPRate()).
		Float64("aggression", stats.AggressionRate()).
		Msg("recorded hand result")
}

// Style classifies a player from VPIP and recent aggression. Players
// with fewer than twenty observed hands are unknown.
func (a *Analyzer) Style(playerID string) Style {
	a.mu.Lock()
	defer a.mu.Unlock()

	stats, ok := a.players[playerID]
	if !ok || stats.TotalHands < minHandsForStyle {
		return Unknown
	}

	vpip := stats.VPIPRate()
	aggression := stats.AggressionRate()

	isLoose := vpip > vpipLoose
	isTight := vpip < vpipTight
	isAggressive := aggression > aggAggressive
	isPassive := aggression < aggPassive

	switch {
	case isTight && isAggressive:
		return TightAggressive
	case isTight && isPassive:
		return TightPassive
	case isLoose && isAggressive:
		return LooseAggressive
	default:
		return LoosePassive
	}
}

// Styles classifies every tracked player.
func (a *Analyzer) Styles() map[string]Style {
	a.mu.Lock()
	ids := make([]string, 0, len(a.players))
	for id := range a.players {
		ids = append(ids, id)
	}
	a.mu.Unlock()

	styles := make(map[string]Style, len(ids))
	for _, id := range ids {
		styles[id] = a.Style(id)
	}
	return styles
}

// Snapshot returns a copy of a player's statistics.
func (a *Analyzer) Snapshot(playerID string) (Stats, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	stats, ok := a.players[playerID]
	if !ok {
		return Stats{}, false
	}
	out := *stats
	out.aggression = append([]int(nil), stats.aggression...)
	out.betSizes = append([]float64(nil), stats.betSizes...)
	return out, true
}

func (a *Analyzer) stats(playerID string) *Stats {
	stats, ok := a.players[playerID]
	if !ok {
		stats = &Stats{}
		a.players[playerID] = stats
	}
	return stats
}

func appendBounded[T any](samples []T, v T) []T {
	samples = append(samples, v)
	if len(samples) > maxSamples {
		samples = samples[len(samples)-maxSamples:]
	}
	return samples
}
