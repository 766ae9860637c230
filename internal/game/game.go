package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gcheng713/pokerglasses/internal/profile"
	"github.com/gcheng713/pokerglasses/internal/randutil"
	"github.com/gcheng713/pokerglasses/poker"
)

var (
	// ErrIllegalAction is returned when an action is not in the legal
	// set for the player to act.
	ErrIllegalAction = errors.New("illegal action")

	// ErrOutOfTurn is returned when a player acts out of turn.
	ErrOutOfTurn = errors.New("player acting out of turn")

	// ErrHandNotActive is returned for actions outside a live hand.
	ErrHandNotActive = errors.New("no hand in progress")

	// ErrRoundNotComplete is returned when advancing a street with
	// betting still open.
	ErrRoundNotComplete = errors.New("betting round not complete")
)

// Game is a single-table no-limit Hold'em engine with one shared pot.
type Game struct {
	players    []*Player
	dealerIdx  int
	smallBlind int
	bigBlind   int

	pot       int
	street    poker.Street
	community []poker.Card
	deck      *poker.Deck
	betting   *BettingRound
	actionIdx int
	live      bool

	lastAction    poker.ActionType
	hasLastAction bool

	analyzer *profile.Analyzer
	logger   zerolog.Logger
}

// New seats the named players with equal starting stacks. The dealer
// button starts on the last seat so the first hand's button lands on
// seat zero.
func New(names []string, startingChips, smallBlind int, seed int64, analyzer *profile.Analyzer, logger zerolog.Logger) *Game {
	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = &Player{Name: name, Chips: startingChips}
	}

	return &Game{
		players:    players,
		dealerIdx:  len(players) - 1,
		smallBlind: smallBlind,
		bigBlind:   smallBlind * 2,
		deck:       poker.NewDeck(randutil.New(seed)),
		betting:    NewBettingRound(len(players), smallBlind*2),
		analyzer:   analyzer,
		logger:     logger.With().Str("component", "game").Logger(),
	}
}

// Players returns the seated players in order.
func (g *Game) Players() []*Player { return g.players }

// Player returns the seat at idx.
func (g *Game) Player(idx int) *Player { return g.players[idx] }

// Pot returns the chips in the middle.
func (g *Game) Pot() int { return g.pot }

// CurrentBet returns the amount each active player must match.
func (g *Game) CurrentBet() int { return g.betting.CurrentBet }

// Street returns the current betting street.
func (g *Game) Street() poker.Street { return g.street }

// Community returns the dealt community cards.
func (g *Game) Community() []poker.Card { return g.community }

// DealerIndex returns the seat holding the button.
func (g *Game) DealerIndex() int { return g.dealerIdx }

// ActionIndex returns the seat that must act next.
func (g *Game) ActionIndex() int { return g.actionIdx }

// BigBlind returns the big blind size.
func (g *Game) BigBlind() int { return g.bigBlind }

// SmallBlind returns the small blind size.
func (g *Game) SmallBlind() int { return g.smallBlind }

// MinRaise returns the minimum total bet a raise must reach.
func (g *Game) MinRaise() int { return g.betting.MinRaise() }

// Live reports whether a hand is in progress.
func (g *Game) Live() bool { return g.live }

// Texture classifies the current board.
func (g *Game) Texture() poker.Texture { return poker.ClassifyTexture(g.community) }

// StartHand runs the full hand setup: fresh deck and state, button
// moved one seat, blinds posted, hole cards dealt, and action on the
// seat after the big blind.
func (g *Game) StartHand() {
	g.ResetHand()
	g.MoveDealerButton()
	g.PostBlinds()
	g.DealHoleCards()

	g.actionIdx = g.nextActive((g.dealerIdx + 2) % len(g.players))
	g.live = true

	g.logger.Info().
		Int("dealer", g.dealerIdx).
		Int("pot", g.pot).
		Int("current_bet", g.betting.CurrentBet).
		Msg("hand started")
}

// ResetHand clears table state for a new hand and reshuffles.
func (g *Game) ResetHand() {
	g.pot = 0
	g.street = poker.Preflop
	g.community = nil
	g.deck.Reset()
	g.betting = NewBettingRound(len(g.players), g.bigBlind)
	g.live = false
	g.hasLastAction = false
	for _, p := range g.players {
		p.ResetForHand()
	}
}

// MoveDealerButton advances the button one seat and reassigns the
// blind positions.
func (g *Game) MoveDealerButton() {
	g.dealerIdx = (g.dealerIdx + 1) % len(g.players)

	for _, p := range g.players {
		p.Dealer = false
		p.SmallBlind = false
		p.BigBlind = false
	}

	g.players[g.dealerIdx].Dealer = true
	g.players[g.sbIndex()].SmallBlind = true
	g.players[g.bbIndex()].BigBlind = true
}

// PostBlinds takes the forced bets. A short stack posts what it has and
// is all in.
func (g *Game) PostBlinds() {
	g.postBlind(g.players[g.sbIndex()], g.smallBlind)
	bb := g.players[g.bbIndex()]
	g.postBlind(bb, g.bigBlind)
	g.betting.CurrentBet = bb.CurrentBet
}

func (g *Game) postBlind(p *Player, amount int) {
	if amount > p.Chips {
		amount = p.Chips
	}
	p.Chips -= amount
	p.CurrentBet = amount
	g.pot += amount
	if p.Chips == 0 {
		p.AllIn = true
	}
}

// DealHoleCards gives every seated player two cards.
func (g *Game) DealHoleCards() {
	for i := 0; i < 2; i++ {
		for _, p := range g.players {
			if card, ok := g.deck.DealOne(); ok {
				p.Cards = append(p.Cards, card)
			}
		}
	}
}

// LegalActions lists the actions available to a seat.
func (g *Game) LegalActions(playerIdx int) []poker.ActionType {
	return g.betting.ValidActions(g.players[playerIdx])
}

// ProcessAction validates and applies an action for the player to act.
// Actions outside the legal set are rejected with ErrIllegalAction
// before any state changes.
func (g *Game) ProcessAction(playerIdx int, action poker.Action) error {
	if !g.live {
		return ErrHandNotActive
	}
	if playerIdx != g.actionIdx {
		return fmt.Errorf("%w: seat %d to act, got %d", ErrOutOfTurn, g.actionIdx, playerIdx)
	}

	player := g.players[playerIdx]
	if err := g.validate(player, action); err != nil {
		return err
	}

	switch action.Type {
	case poker.Fold:
		player.Folded = true
		player.CurrentBet = 0

	case poker.Check:
		// Nothing moves.

	case poker.Call:
		callAmount := g.betting.CurrentBet - player.CurrentBet
		player.Chips -= callAmount
		player.CurrentBet = g.betting.CurrentBet
		g.pot += callAmount
		if player.Chips == 0 {
			player.AllIn = true
		}

	case poker.Raise:
		raiseBy := action.Amount - player.CurrentBet
		player.Chips -= raiseBy
		player.CurrentBet = action.Amount
		g.betting.CurrentBet = action.Amount
		g.betting.LastRaiser = playerIdx
		g.pot += raiseBy
		if player.Chips == 0 {
			player.AllIn = true
		}

	case poker.AllIn:
		amount := player.Chips
		player.Chips = 0
		player.CurrentBet += amount
		g.pot += amount
		if player.CurrentBet > g.betting.CurrentBet {
			g.betting.CurrentBet = player.CurrentBet
			g.betting.LastRaiser = playerIdx
		}
		player.AllIn = true
	}

	player.History.recordAction(action, g.street == poker.Preflop)
	g.lastAction = action.Type
	g.hasLastAction = true
	g.betting.MarkActed(playerIdx)
	if g.street == poker.Preflop && playerIdx == g.bbIndex() {
		g.betting.BBActed = true
	}

	g.logger.Debug().
		Str("player", player.Name).
		Stringer("action", action.Type).
		Int("amount", action.Amount).
		Int("pot", g.pot).
		Int("current_bet", g.betting.CurrentBet).
		Msg("action processed")

	g.advanceAction(playerIdx)
	return nil
}

func (g *Game) validate(player *Player, action poker.Action) error {
	legal := g.betting.ValidActions(player)
	allowed := false
	for _, a := range legal {
		if a == action.Type {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: %s not available", ErrIllegalAction, action.Type)
	}

	if action.Type == poker.Raise {
		if action.Amount < g.betting.MinRaise() {
			return fmt.Errorf("%w: raise to %d below minimum %d", ErrIllegalAction, action.Amount, g.betting.MinRaise())
		}
		if action.Amount-player.CurrentBet > player.Chips {
			return fmt.Errorf("%w: raise to %d exceeds stack", ErrIllegalAction, action.Amount)
		}
	}

	return nil
}

// IsRoundComplete reports whether the current street's betting is done.
func (g *Game) IsRoundComplete() bool {
	return g.betting.Complete(g.players, g.street, g.dealerIdx)
}

// NonFolded counts players with a claim on the pot.
func (g *Game) NonFolded() int {
	n := 0
	for _, p := range g.players {
		if p.InHand() {
			n++
		}
	}
	return n
}

// HandDone reports whether no further betting or dealing is possible.
func (g *Game) HandDone() bool {
	if !g.live {
		return true
	}
	if g.NonFolded() <= 1 {
		return true
	}
	return g.street == poker.River && g.IsRoundComplete() ||
		g.street == poker.Showdown
}

// AdvanceStreet moves to the next street, dealing its community cards
// and resetting the per-street betting state. Action starts at the
// first active seat after the button.
func (g *Game) AdvanceStreet() error {
	if !g.live {
		return ErrHandNotActive
	}
	if !g.IsRoundComplete() {
		return ErrRoundNotComplete
	}

	for _, p := range g.players {
		p.CurrentBet = 0
	}
	g.betting.Reset(len(g.players))
	g.hasLastAction = false

	g.street = g.street.Next()
	if n := g.street.CommunityCards(); n > 0 {
		cards := g.deck.Deal(n)
		g.community = append(g.community, cards...)
	}

	g.actionIdx = g.nextActive(g.dealerIdx)

	g.logger.Debug().
		Stringer("street", g.street).
		Int("board", len(g.community)).
		Msg("street advanced")

	return nil
}

// Winners finds the best hand among the players still in. With a single
// claimant no cards are compared.
func (g *Game) Winners() []*Player {
	var inHand []*Player
	for _, p := range g.players {
		if p.InHand() {
			inHand = append(inHand, p)
		}
	}
	if len(inHand) <= 1 {
		return inHand
	}

	best := poker.HandRank(poker.RankCount)
	var winners []*Player
	for _, p := range inHand {
		hand := poker.NewHand(p.Cards...)
		for _, c := range g.community {
			hand.AddCard(c)
		}
		rank := poker.Evaluate(hand)
		switch {
		case rank < best:
			best = rank
			winners = []*Player{p}
		case rank == best:
			winners = append(winners, p)
		}
	}
	return winners
}

// EndHand pays the winners, feeds every player's hand history to the
// profiler and closes the hand. A split pot divides evenly; the odd
// chips go to the earliest winning seat clockwise from the button.
func (g *Game) EndHand(winners []*Player) {
	if len(winners) > 0 {
		share := g.pot / len(winners)
		remainder := g.pot % len(winners)

		for _, w := range winners {
			w.Chips += share
		}
		if remainder > 0 {
			g.firstWinnerAfterButton(winners).Chips += remainder
		}
	}
	g.pot = 0

	for _, p := range g.players {
		if p.InHand() {
			p.History.WentToShowdown = true
			p.History.WonAtShowdown = contains(winners, p)
		}
		p.History.Won = contains(winners, p)

		if g.analyzer != nil {
			g.analyzer.Record(p.Name, p.History.result())
		}

		p.History = HandHistory{}
	}

	g.live = false
	g.logger.Info().Int("winners", len(winners)).Msg("hand ended")
}

// PreviousCheck reports whether the most recent action this street was
// a check.
func (g *Game) PreviousCheck() bool {
	return g.hasLastAction && g.lastAction == poker.Check
}

// PlayerPosition classifies a seat as early or late.
func (g *Game) PlayerPosition(playerIdx int) poker.Position {
	return poker.PositionForSeat(playerIdx, len(g.players))
}

func (g *Game) sbIndex() int { return (g.dealerIdx + 1) % len(g.players) }
func (g *Game) bbIndex() int { return (g.dealerIdx + 2) % len(g.players) }

// nextActive finds the first active seat after from, or returns from
// when nobody else can act.
func (g *Game) nextActive(from int) int {
	idx := (from + 1) % len(g.players)
	for idx != from {
		if g.players[idx].Active() {
			return idx
		}
		idx = (idx + 1) % len(g.players)
	}
	return from
}

func (g *Game) advanceAction(from int) {
	g.actionIdx = g.nextActive(from)
}

func (g *Game) firstWinnerAfterButton(winners []*Player) *Player {
	for offset := 1; offset <= len(g.players); offset++ {
		seat := g.players[(g.dealerIdx+offset)%len(g.players)]
		if contains(winners, seat) {
			return seat
		}
	}
	return winners[0]
}

func contains(players []*Player, target *Player) bool {
	for _, p := range players {
		if p == target {
			return true
		}
	}
	return false
}
