package game

import (
	"github.com/gcheng713/pokerglasses/internal/advisor"
	"github.com/gcheng713/pokerglasses/internal/analysis"
	"github.com/gcheng713/pokerglasses/internal/profile"
	"github.com/gcheng713/pokerglasses/poker"
)

// Advice asks the advisor for its read on the current spot from the
// given seat's perspective, without mapping it onto a legal action.
func (g *Game) Advice(playerIdx int, adv *advisor.Advisor) analysis.Advice {
	player := g.players[playerIdx]

	styles := make(map[string]profile.Style, len(g.players)-1)
	if g.analyzer != nil {
		for i, opp := range g.players {
			if i != playerIdx {
				styles[opp.Name] = g.analyzer.Style(opp.Name)
			}
		}
	}

	toCall := g.betting.CurrentBet - player.CurrentBet
	return adv.Advise(advisor.Spot{
		Hole:          player.Cards,
		Board:         g.community,
		Pot:           float64(g.pot),
		ToCall:        float64(toCall),
		Opponents:     g.NonFolded() - 1,
		Position:      g.PlayerPosition(playerIdx),
		Texture:       g.Texture(),
		PreviousCheck: g.PreviousCheck(),
		Styles:        styles,
	})
}

// AIAction asks the advisor for a decision in the current spot and maps
// it onto a legal action for the seat, clamping raise sizes to the
// legal range.
func (g *Game) AIAction(playerIdx int, adv *advisor.Advisor) poker.Action {
	player := g.players[playerIdx]
	advice := g.Advice(playerIdx, adv)

	action := advisor.Legalize(advice, g.LegalActions(playerIdx), float64(player.CurrentBet+player.Chips))
	if action.Type == poker.Raise {
		if min := g.betting.MinRaise(); action.Amount < min {
			action.Amount = min
		}
		if max := player.CurrentBet + player.Chips; action.Amount > max {
			action.Amount = max
		}
	}
	return action
}
