package profile

import (
	"github.com/gcheng713/pokerglasses/internal/analysis"
	"github.com/gcheng713/pokerglasses/poker"
)

// Situation describes the spot a recommendation is wanted for.
type Situation struct {
	Strength      float64
	Pot           float64
	ToCall        float64
	Position      poker.Position
	Texture       poker.Texture
	PreviousCheck bool
}

// Recommend picks an action from hand strength and the opponents' known
// styles. Strong hands slow down against multiple aggressive opponents;
// weak hands bluff only when the table is likely to fold.
func Recommend(sit Situation, opponents map[string]Style) analysis.Advice {
	aggressiveOpponents := 0
	for _, style := range opponents {
		if style.Aggressive() {
			aggressiveOpponents++
		}
	}

	switch {
	case sit.Strength > 0.8:
		return analysis.Advice{
			Action:     poker.Raise,
			Amount:     sit.Pot * 0.75,
			Confidence: 0.9,
			Reasoning:  []string{"Strong hand strength"},
		}

	case sit.Strength > 0.6:
		if aggressiveOpponents >= 2 {
			return analysis.Advice{
				Action:     poker.Call,
				Amount:     sit.ToCall,
				Confidence: 0.7,
				Reasoning:  []string{"Strong hand but multiple aggressive opponents"},
			}
		}
		return analysis.Advice{
			Action:     poker.Raise,
			Amount:     sit.Pot * 0.5,
			Confidence: 0.8,
			Reasoning:  []string{"Strong hand against passive opponents"},
		}

	case sit.Strength > 0.4:
		if analysis.PotOdds(sit.Pot, sit.ToCall) < sit.Strength {
			return analysis.Advice{
				Action:     poker.Call,
				Amount:     sit.ToCall,
				Confidence: 0.6,
				Reasoning:  []string{"Decent hand with good pot odds"},
			}
		}
		return analysis.Advice{
			Action:     poker.Fold,
			Confidence: 0.65,
			Reasoning:  []string{"Medium hand with poor pot odds"},
		}

	default:
		if BluffScore(sit, opponents) > 0.7 {
			return analysis.Advice{
				Action:     poker.Raise,
				Amount:     sit.Pot * 0.3,
				Confidence: 0.5,
				Reasoning:  []string{"Bluff opportunity identified"},
			}
		}
		return analysis.Advice{
			Action:     poker.Fold,
			Confidence: 0.8,
			Reasoning:  []string{"Weak hand and no good bluff opportunity"},
		}
	}
}

// BluffScore rates how promising a bluff is, from the number of tight
// opponents, position, board texture and whether it was checked to us.
// Clamped to [0, 1].
func BluffScore(sit Situation, opponents map[string]Style) float64 {
	score := 0.0

	for _, style := range opponents {
		if style.Tight() {
			score += 0.2
		}
	}

	if sit.Position == poker.Late {
		score += 0.3
	}
	if sit.Texture == poker.TextureDry {
		score += 0.2
	}
	if sit.PreviousCheck {
		score += 0.2
	}

	if score > 1 {
		return 1
	}
	return score
}
