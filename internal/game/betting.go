package game

import (
	"github.com/gcheng713/pokerglasses/poker"
)

// BettingRound tracks the state of one street's betting.
type BettingRound struct {
	CurrentBet int
	LastRaiser int
	BBActed    bool
	Acted      []bool
	BigBlind   int
}

// NewBettingRound creates the preflop betting state.
func NewBettingRound(numPlayers, bigBlind int) *BettingRound {
	return &BettingRound{
		LastRaiser: -1,
		Acted:      make([]bool, numPlayers),
		BigBlind:   bigBlind,
	}
}

// MinRaise is the smallest legal total a raise can be made to: the
// current bet plus one big blind.
func (br *BettingRound) MinRaise() int {
	return br.CurrentBet + br.BigBlind
}

// ValidActions lists what a player may legally do facing this round
// state.
func (br *BettingRound) ValidActions(player *Player) []poker.ActionType {
	var actions []poker.ActionType
	toCall := br.CurrentBet - player.CurrentBet

	if toCall > 0 {
		actions = append(actions, poker.Fold)
	}

	if toCall == 0 {
		actions = append(actions, poker.Check)
	} else if player.Chips >= toCall {
		actions = append(actions, poker.Call)
	}

	if player.Chips >= br.MinRaise()-player.CurrentBet {
		actions = append(actions, poker.Raise)
	}

	if player.Chips > 0 {
		actions = append(actions, poker.AllIn)
	}

	return actions
}

// Reset prepares the round state for a new street. BBActed persists
// since the big blind option only exists preflop.
func (br *BettingRound) Reset(numPlayers int) {
	br.CurrentBet = 0
	br.LastRaiser = -1
	br.Acted = make([]bool, numPlayers)
}

// MarkActed records that a seat has taken an action this street.
func (br *BettingRound) MarkActed(seat int) {
	if seat >= 0 && seat < len(br.Acted) {
		br.Acted[seat] = true
	}
}

// Complete reports whether betting is finished for the street: every
// active player has acted and matched the current bet, and preflop the
// big blind has had the option to raise.
func (br *BettingRound) Complete(players []*Player, street poker.Street, dealerIdx int) bool {
	active := 0
	for _, p := range players {
		if p.Active() {
			active++
		}
	}
	if active == 0 {
		return true
	}

	for i, p := range players {
		if !p.Active() {
			continue
		}
		if p.CurrentBet != br.CurrentBet {
			return false
		}
		if !br.Acted[i] {
			return false
		}
	}

	if street == poker.Preflop && br.LastRaiser == -1 {
		bb := players[(dealerIdx+2)%len(players)]
		if bb.Active() && !br.BBActed {
			return false
		}
	}

	return true
}
