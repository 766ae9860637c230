package advisor

import (
	"github.com/rs/zerolog"

	"github.com/gcheng713/pokerglasses/internal/analysis"
	"github.com/gcheng713/pokerglasses/internal/profile"
	"github.com/gcheng713/pokerglasses/poker"
)

// Spot captures everything the advisor needs to weigh a decision.
type Spot struct {
	Hole          []poker.Card
	Board         []poker.Card
	Pot           float64
	ToCall        float64
	Opponents     int
	Position      poker.Position
	Texture       poker.Texture
	PreviousCheck bool
	Styles        map[string]profile.Style
}

// Advisor combines the equity-based betting ladder with the opponent
// profiler and arbitrates between them by confidence.
type Advisor struct {
	samples int
	seed    int64
	logger  zerolog.Logger
}

// New creates an advisor that runs the given number of equity samples
// per decision.
func New(samples int, seed int64, logger zerolog.Logger) *Advisor {
	if samples <= 0 {
		samples = 1000
	}
	return &Advisor{
		samples: samples,
		seed:    seed,
		logger:  logger.With().Str("component", "advisor").Logger(),
	}
}

// Advise produces the fused recommendation for a spot.
func (a *Advisor) Advise(spot Spot) analysis.Advice {
	strength := analysis.Strength(spot.Hole, spot.Board)
	equity := analysis.Simulate(spot.Hole, spot.Board, spot.Opponents, a.samples, a.seed).Equity()

	ladder := analysis.Recommend(strength, equity, spot.Pot, spot.ToCall, spot.Opponents, spot.Position)
	styled := profile.Recommend(profile.Situation{
		Strength:      strength,
		Pot:           spot.Pot,
		ToCall:        spot.ToCall,
		Position:      spot.Position,
		Texture:       spot.Texture,
		PreviousCheck: spot.PreviousCheck,
	}, spot.Styles)

	fused := Fuse(ladder, styled)

	a.logger.Debug().
		Float64("strength", strength).
		Float64("equity", equity).
		Stringer("ladder", ladder.Action).
		Stringer("styled", styled.Action).
		Stringer("final", fused.Action).
		Float64("confidence", fused.Confidence).
		Msg("advised")

	return fused
}

// Fuse arbitrates between two recommendations by confidence. The
// equity-based advice wins only when strictly more confident, so ties go
// to the opponent-aware read.
func Fuse(ladder, styled analysis.Advice) analysis.Advice {
	if ladder.Confidence > styled.Confidence {
		return ladder
	}
	return styled
}

// Legalize maps advice onto the actions actually available. A raise that
// is not allowed becomes a call, a call that is not allowed becomes a
// fold, and when folding is pointless it checks instead.
func Legalize(advice analysis.Advice, legal []poker.ActionType, chips float64) poker.Action {
	allowed := make(map[poker.ActionType]bool, len(legal))
	for _, a := range legal {
		allowed[a] = true
	}

	if advice.Action == poker.Raise && allowed[poker.Raise] {
		amount := advice.Amount
		if amount > chips {
			amount = chips
		}
		return poker.Action{Type: poker.Raise, Amount: int(amount)}
	}
	if (advice.Action == poker.Call || advice.Action == poker.Raise) && allowed[poker.Call] {
		return poker.Action{Type: poker.Call}
	}
	if allowed[poker.Fold] {
		return poker.Action{Type: poker.Fold}
	}
	return poker.Action{Type: poker.Check}
}
