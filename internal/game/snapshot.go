package game

import (
	"github.com/gcheng713/pokerglasses/internal/analysis"
	"github.com/gcheng713/pokerglasses/poker"
)

// PlayerSnapshot is the wire view of one seat.
type PlayerSnapshot struct {
	Name       string   `json:"name"`
	Chips      int      `json:"chips"`
	CurrentBet int      `json:"current_bet"`
	Folded     bool     `json:"folded"`
	AllIn      bool     `json:"all_in"`
	Dealer     bool     `json:"dealer"`
	SmallBlind bool     `json:"small_blind"`
	BigBlind   bool     `json:"big_blind"`
	Cards      []string `json:"cards,omitempty"`
}

// Snapshot is the wire view of the table.
type Snapshot struct {
	Street     string           `json:"street"`
	Pot        int              `json:"pot"`
	CurrentBet int              `json:"current_bet"`
	Community  []string         `json:"community"`
	DealerIdx  int              `json:"dealer_idx"`
	ActionIdx  int              `json:"action_idx"`
	Texture    string           `json:"board_texture"`
	Players    []PlayerSnapshot `json:"players"`
}

// Snapshot renders the current table state. Hole cards are included
// only for the seat at revealIdx; pass a negative index to hide all.
func (g *Game) Snapshot(revealIdx int) Snapshot {
	snap := Snapshot{
		Street:     g.street.String(),
		Pot:        g.pot,
		CurrentBet: g.betting.CurrentBet,
		Community:  cardStrings(g.community),
		DealerIdx:  g.dealerIdx,
		ActionIdx:  g.actionIdx,
		Texture:    g.Texture().String(),
		Players:    make([]PlayerSnapshot, len(g.players)),
	}

	for i, p := range g.players {
		ps := PlayerSnapshot{
			Name:       p.Name,
			Chips:      p.Chips,
			CurrentBet: p.CurrentBet,
			Folded:     p.Folded,
			AllIn:      p.AllIn,
			Dealer:     p.Dealer,
			SmallBlind: p.SmallBlind,
			BigBlind:   p.BigBlind,
		}
		if i == revealIdx {
			ps.Cards = cardStrings(p.Cards)
		}
		snap.Players[i] = ps
	}
	return snap
}

// HandAnalysis is the full decision-support readout for one seat.
type HandAnalysis struct {
	HandStrength   float64        `json:"hand_strength"`
	HandCategory   string         `json:"hand_category"`
	PotEquity      float64        `json:"pot_equity"`
	WinProbability float64        `json:"win_probability"`
	TieProbability float64        `json:"tie_probability"`
	PotOdds        float64        `json:"pot_odds"`
	DrawOuts       map[string]int `json:"draw_outs,omitempty"`
	MadeHand       string         `json:"made_hand,omitempty"`
}

// Analyze produces the hand analysis for a seat: strength, category,
// simulated equity against the live opponents, pot odds and draw outs.
func (g *Game) Analyze(playerIdx, equitySamples int, seed int64) HandAnalysis {
	player := g.players[playerIdx]
	opponents := g.NonFolded() - 1

	result := analysis.Simulate(player.Cards, g.community, opponents, equitySamples, seed)

	out := HandAnalysis{
		HandStrength:   analysis.Strength(player.Cards, g.community),
		HandCategory:   categoryOf(player.Cards),
		PotEquity:      result.Equity(),
		WinProbability: result.WinRate(),
		TieProbability: result.TieRate(),
	}

	if toCall := g.betting.CurrentBet - player.CurrentBet; toCall > 0 {
		out.PotOdds = analysis.PotOdds(float64(g.pot), float64(toCall))
	}

	if len(g.community) == 3 || len(g.community) == 4 {
		outs := analysis.DrawOuts(player.Cards, g.community)
		if len(outs) > 0 {
			out.DrawOuts = make(map[string]int, len(outs))
			for draw, n := range outs {
				out.DrawOuts[draw.String()] = n
			}
		}
	}

	if len(g.community) > 0 {
		out.MadeHand = analysis.Label(player.Cards, g.community)
	}

	return out
}

func categoryOf(hole []poker.Card) string {
	if len(hole) != 2 {
		return ""
	}
	return analysis.Categorize(hole[0], hole[1]).String()
}

func cardStrings(cards []poker.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
