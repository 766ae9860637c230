package analysis

import (
	"github.com/gcheng713/pokerglasses/poker"
)

// Category buckets a starting hand by preflop strength.
type Category uint8

const (
	Weak Category = iota
	Speculative
	Medium
	Strong
	Premium
)

func (c Category) String() string {
	switch c {
	case Premium:
		return "premium"
	case Strong:
		return "strong"
	case Medium:
		return "medium"
	case Speculative:
		return "speculative"
	default:
		return "weak"
	}
}

// PreflopStrength maps the category to the scalar used before any
// community cards are seen.
func (c Category) PreflopStrength() float64 {
	switch c {
	case Premium:
		return 0.9
	case Strong:
		return 0.7
	case Medium:
		return 0.5
	case Speculative:
		return 0.3
	default:
		return 0.1
	}
}

var startingHands = map[string]Category{
	// Premium
	"AA": Premium, "KK": Premium, "QQ": Premium,
	"AKs": Premium, "AKo": Premium,

	// Strong
	"JJ": Strong, "TT": Strong,
	"AQs": Strong, "AJs": Strong, "KQs": Strong,
	"AQo": Strong,

	// Medium
	"99": Medium, "88": Medium, "77": Medium,
	"ATs": Medium, "A9s": Medium, "A8s": Medium,
	"KJs": Medium, "KTs": Medium, "QJs": Medium,
	"AJo": Medium, "KQo": Medium,

	// Speculative: small pairs and suited connectors
	"66": Speculative, "55": Speculative, "44": Speculative,
	"33": Speculative, "22": Speculative,
	"T9s": Speculative, "98s": Speculative, "87s": Speculative,
	"76s": Speculative, "65s": Speculative, "54s": Speculative,
	"43s": Speculative,
}

// CanonicalCode renders two hole cards in standard notation: pairs as
// "QQ", otherwise high card first with an "s" or "o" suffix, e.g. "AKs".
func CanonicalCode(a, b poker.Card) string {
	hi, lo := a, b
	if lo.Rank > hi.Rank {
		hi, lo = lo, hi
	}
	if hi.Rank == lo.Rank {
		return hi.Rank.String() + lo.Rank.String()
	}
	suffix := "o"
	if hi.Suit == lo.Suit {
		suffix = "s"
	}
	return hi.Rank.String() + lo.Rank.String() + suffix
}

// Categorize buckets a starting hand. Hands outside the named tables
// are weak.
func Categorize(a, b poker.Card) Category {
	if c, ok := startingHands[CanonicalCode(a, b)]; ok {
		return c
	}
	return Weak
}
