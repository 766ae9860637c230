package game

import (
	"github.com/gcheng713/pokerglasses/internal/profile"
	"github.com/gcheng713/pokerglasses/poker"
)

// Player holds one seat's state at the table.
type Player struct {
	Name       string
	Chips      int
	Cards      []poker.Card
	CurrentBet int
	Folded     bool
	AllIn      bool
	Dealer     bool
	SmallBlind bool
	BigBlind   bool

	History HandHistory
}

// Active reports whether the player can still act this street.
func (p *Player) Active() bool {
	return !p.Folded && !p.AllIn
}

// InHand reports whether the player still has a claim on the pot.
func (p *Player) InHand() bool {
	return !p.Folded
}

// ResetForHand clears per-hand state while keeping the stack.
func (p *Player) ResetForHand() {
	p.Cards = nil
	p.CurrentBet = 0
	p.Folded = false
	p.AllIn = false
	p.Dealer = false
	p.SmallBlind = false
	p.BigBlind = false
}

// HandHistory accumulates one player's behaviour during a single hand,
// feeding the opponent profiler when the hand ends.
type HandHistory struct {
	Participated      bool
	VPIP              bool
	PFR               bool
	AggressiveActions int
	PassiveActions    int
	TotalBet          int
	NumBets           int
	WentToShowdown    bool
	WonAtShowdown     bool
	Won               bool
}

// recordAction folds a single betting action into the history. Raises
// count as aggression and, preflop, as a preflop raise. Anything except
// a check or fold is voluntary money in the pot.
func (h *HandHistory) recordAction(action poker.Action, preflop bool) {
	h.Participated = true

	switch action.Type {
	case poker.Raise, poker.AllIn:
		h.AggressiveActions++
		if preflop {
			h.PFR = true
		}
	case poker.Call, poker.Check:
		h.PassiveActions++
	}

	if action.Type != poker.Check && action.Type != poker.Fold {
		h.VPIP = true
		h.TotalBet += action.Amount
		h.NumBets++
	}
}

// averageBetSize is the mean raise size over the hand.
func (h *HandHistory) averageBetSize() float64 {
	if h.NumBets == 0 {
		return 0
	}
	return float64(h.TotalBet) / float64(h.NumBets)
}

// result converts the history into the profiler's record format.
func (h *HandHistory) result() profile.HandResult {
	return profile.HandResult{
		Participated:      h.Participated,
		Won:               h.Won,
		VPIP:              h.VPIP,
		PFR:               h.PFR,
		AggressiveActions: h.AggressiveActions,
		PassiveActions:    h.PassiveActions,
		AverageBetSize:    h.averageBetSize(),
		WentToShowdown:    h.WentToShowdown,
		WonAtShowdown:     h.WonAtShowdown,
	}
}
