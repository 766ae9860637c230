package poker

import (
	"math/bits"
	"strings"
)

// Hand is a bit-packed set of cards: bit position = suit*13 + rank index.
// Up to 7 cards are meaningful for evaluation.
type Hand uint64

// NewHand creates a hand from the given cards
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h = h.WithCard(c)
	}
	return h
}

func cardBit(c Card) uint {
	return uint(c.Suit)*13 + uint(c.Rank-Two)
}

// WithCard returns the hand with the card added
func (h Hand) WithCard(c Card) Hand {
	return h | Hand(1)<<cardBit(c)
}

// AddCard adds a card to the hand in place
func (h *Hand) AddCard(c Card) {
	*h = h.WithCard(c)
}

// HasCard reports whether the card is in the hand
func (h Hand) HasCard(c Card) bool {
	return h&(Hand(1)<<cardBit(c)) != 0
}

// CountCards returns the number of cards in the hand
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// SuitMask returns the 13-bit rank mask for a suit (bit 0 = deuce)
func (h Hand) SuitMask(suit Suit) uint16 {
	return uint16(uint64(h)>>(uint(suit)*13)) & 0x1FFF
}

// Cards unpacks the hand into a slice of cards in suit-then-rank order
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.CountCards())
	for suit := Spades; suit <= Clubs; suit++ {
		mask := h.SuitMask(suit)
		for r := 0; r < 13; r++ {
			if mask&(1<<r) != 0 {
				cards = append(cards, Card{Rank: Rank(r) + Two, Suit: suit})
			}
		}
	}
	return cards
}

// String returns the concatenated card labels (e.g. "2sAs3h")
func (h Hand) String() string {
	var sb strings.Builder
	for _, c := range h.Cards() {
		sb.WriteString(c.String())
	}
	return sb.String()
}
