package poker

import (
	"math/bits"
)

// HandRank represents the strength of a poker hand in the canonical 7,462
// rank domain. Lower values are stronger; 0 is a royal flush, 7461 the
// worst high card.
type HandRank uint16

// RankCount is the number of distinct 5-card hand ranks.
const RankCount = 7462

// HandType enumerates the categories of poker hands ordered from weakest
// to strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

const (
	straightFlushCount = 10
	fourOfAKindCount   = 13 * 12
	fullHouseCount     = 13 * 12
	flushCount         = 1277
	straightCount      = 10
	threeOfAKindCount  = 13 * 66
	twoPairCount       = 78 * 11
	onePairCount       = 13 * 220
	highCardCount      = 1277
)

const (
	baseStraightFlush = 0
	baseFourOfAKind   = baseStraightFlush + straightFlushCount
	baseFullHouse     = baseFourOfAKind + fourOfAKindCount
	baseFlush         = baseFullHouse + fullHouseCount
	baseStraight      = baseFlush + flushCount
	baseThreeOfAKind  = baseStraight + straightCount
	baseTwoPair       = baseThreeOfAKind + threeOfAKindCount
	baseOnePair       = baseTwoPair + twoPairCount
	baseHighCard      = baseOnePair + onePairCount
)

// Type returns the category of hand this rank encodes
func (hr HandRank) Type() HandType {
	switch {
	case hr < baseFourOfAKind:
		return StraightFlush
	case hr < baseFullHouse:
		return FourOfAKind
	case hr < baseFlush:
		return FullHouse
	case hr < baseStraight:
		return Flush
	case hr < baseThreeOfAKind:
		return Straight
	case hr < baseTwoPair:
		return ThreeOfAKind
	case hr < baseOnePair:
		return TwoPair
	case hr < baseHighCard:
		return Pair
	default:
		return HighCard
	}
}

// String returns a human-readable hand description
func (hr HandRank) String() string {
	return hr.Type().String()
}

// String returns the standard label for a hand type
func (ht HandType) String() string {
	switch ht {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// CompareHands compares two hands and returns 1 if a wins, -1 if b wins,
// 0 for a tie
func CompareHands(a, b HandRank) int {
	if a < b {
		return 1
	} else if a > b {
		return -1
	}
	return 0
}

// Evaluate computes the rank of the best 5-card hand contained in a
// 5, 6 or 7 card hand. Hands outside that size return the worst rank.
func Evaluate(hand Hand) HandRank {
	n := hand.CountCards()
	if n < 5 || n > 7 {
		return RankCount - 1
	}

	var suitMasks [4]uint16
	var rankMask uint16
	for suit := Spades; suit <= Clubs; suit++ {
		mask := hand.SuitMask(suit)
		suitMasks[suit] = mask
		rankMask |= mask
	}

	return rankFromMasks(suitMasks, rankMask)
}

func rankFromMasks(suitMasks [4]uint16, rankMask uint16) HandRank {
	// Flush first. A 7-card hand can never hold both a flush and a full
	// house or quads (a flush requires 5 distinct ranks in one suit), so
	// returning early here is safe.
	bestFlush := HandRank(RankCount) // sentinel
	flushFound := false
	for _, suitMask := range suitMasks {
		if bits.OnesCount16(suitMask) >= 5 {
			if high := straightHigh(suitMask); high > 0 {
				detail := uint16(straightFlushCount-1) - straightIndex(high)
				strength := HandRank(baseStraightFlush + detail)
				if strength < bestFlush {
					return strength
				}
			} else {
				top := topRanks(suitMask, 5)
				idx := adjustNonStraightIndex(comboIndex13of5[rankBits(top)])
				strength := HandRank(baseFlush + uint16(flushCount-1) - idx)
				if strength < bestFlush {
					bestFlush = strength
					flushFound = true
				}
			}
		}
	}
	if flushFound {
		return bestFlush
	}

	s0, s1, s2, s3 := suitMasks[0], suitMasks[1], suitMasks[2], suitMasks[3]

	quadsMask := s0 & s1 & s2 & s3
	tripCandidates := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	tripsMask := tripCandidates &^ quadsMask
	pairsMask := ((s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)) &^ tripCandidates

	if quad := highestBit(quadsMask); quad >= 0 {
		quadRank := uint8(quad)
		kicker := bestKicker(rankMask, []uint8{quadRank})
		kickerOrd := uint16(ordinalBelow(kicker, []uint8{quadRank}))
		idx := uint16(quadRank)*12 + kickerOrd
		return HandRank(baseFourOfAKind + uint16(fourOfAKindCount-1) - idx)
	}

	if trip := highestBit(tripsMask); trip >= 0 {
		tripRank := uint8(trip)
		// A second trip acts as the pair of a full house
		pairCandidates := pairsMask | (tripsMask &^ (1 << trip))
		if pair := highestBit(pairCandidates); pair >= 0 {
			pairOrd := uint16(ordinalBelow(uint8(pair), []uint8{tripRank}))
			idx := uint16(tripRank)*12 + pairOrd
			return HandRank(baseFullHouse + uint16(fullHouseCount-1) - idx)
		}
	}

	if high := straightHigh(rankMask); high > 0 {
		return HandRank(baseStraight + uint16(straightCount-1) - straightIndex(high))
	}

	if trip := highestBit(tripsMask); trip >= 0 {
		tripRank := uint8(trip)
		kickers := orderedKickers(rankMask, []uint8{tripRank}, 2)
		idx := uint16(tripRank)*66 + comboIndex12of2[ordinalBits(kickers, []uint8{tripRank})]
		return HandRank(baseThreeOfAKind + uint16(threeOfAKindCount-1) - idx)
	}

	if hi := highestBit(pairsMask); hi >= 0 {
		highPair := uint8(hi)
		if lo := highestBit(pairsMask &^ (1 << hi)); lo >= 0 {
			lowPair := uint8(lo)
			pairIdx := comboIndex13of2[(1<<lowPair)|(1<<highPair)]
			kicker := bestKicker(rankMask, []uint8{highPair, lowPair})
			kickerOrd := uint16(ordinalBelow(kicker, []uint8{highPair, lowPair}))
			idx := pairIdx*11 + kickerOrd
			return HandRank(baseTwoPair + uint16(twoPairCount-1) - idx)
		}
		kickers := orderedKickers(rankMask, []uint8{highPair}, 3)
		idx := uint16(highPair)*220 + comboIndex12of3[ordinalBits(kickers, []uint8{highPair})]
		return HandRank(baseOnePair + uint16(onePairCount-1) - idx)
	}

	top := orderedKickers(rankMask, nil, 5)
	idx := adjustNonStraightIndex(comboIndex13of5[rankBits(top)])
	return HandRank(baseHighCard + uint16(highCardCount-1) - idx)
}

// straightHigh returns the rank index (0-12) of the high card of the best
// straight present in a rank mask, or 0 when there is none. Index 3 (a
// five) encodes the wheel.
func straightHigh(mask uint16) uint8 {
	const wheel = 0x100F // A,2,3,4,5
	mask &= 0x1FFF

	// Five consecutive bits collapse to a single bit in one cascade.
	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		low := uint8(bits.Len16(seq) - 1)
		return low + 4
	}

	if mask&wheel == wheel {
		return 3
	}
	return 0
}

func straightIndex(high uint8) uint16 {
	if high == 3 { // wheel
		return 0
	}
	return uint16(high - 3)
}

// highestBit returns the highest set bit index, or -1 for an empty mask
func highestBit(mask uint16) int {
	if mask == 0 {
		return -1
	}
	return bits.Len16(mask) - 1
}

// bestKicker finds the highest rank present excluding used ranks
func bestKicker(mask uint16, used []uint8) uint8 {
	available := mask &^ rankBits(used)
	if available == 0 {
		return 0
	}
	return uint8(bits.Len16(available) - 1)
}

// orderedKickers finds the top n ranks in descending order, excluding
// used ranks
func orderedKickers(mask uint16, used []uint8, n int) []uint8 {
	available := mask &^ rankBits(used)
	kickers := make([]uint8, 0, n)
	for len(kickers) < n {
		if available == 0 {
			kickers = append(kickers, 0)
			continue
		}
		top := uint8(bits.Len16(available) - 1)
		kickers = append(kickers, top)
		available &^= 1 << top
	}
	return kickers
}

// topRanks returns the n highest ranks present in the mask
func topRanks(mask uint16, n int) []uint8 {
	return orderedKickers(mask, nil, n)
}

func rankBits(ranks []uint8) uint16 {
	var mask uint16
	for _, r := range ranks {
		mask |= 1 << r
	}
	return mask
}

// ordinalBelow maps a rank to its ordinal among the 13 ranks with the
// excluded ranks removed
func ordinalBelow(rank uint8, excludes []uint8) uint8 {
	var offset uint8
	for _, ex := range excludes {
		if ex < rank {
			offset++
		}
	}
	return rank - offset
}

func ordinalBits(ranks []uint8, excludes []uint8) uint16 {
	var mask uint16
	for _, r := range ranks {
		mask |= 1 << ordinalBelow(r, excludes)
	}
	return mask
}

// comboIndex13of5 maps a 5-bit-of-13 rank mask to its combination index.
// Combinations are enumerated highest card major, so the index is strictly
// ascending in hand strength: a higher top card always outranks a lower
// one, ties fall through to the next card down.
var comboIndex13of5 = func() [1 << 13]uint16 {
	var table [1 << 13]uint16
	var idx uint16
	for e := 4; e <= 12; e++ {
		for d := 3; d < e; d++ {
			for c := 2; c < d; c++ {
				for b := 1; b < c; b++ {
					for a := 0; a < b; a++ {
						mask := (1 << a) | (1 << b) | (1 << c) | (1 << d) | (1 << e)
						table[mask] = idx
						idx++
					}
				}
			}
		}
	}
	return table
}()

var comboIndex13of2 = func() [1 << 13]uint16 {
	var table [1 << 13]uint16
	var idx uint16
	for b := 1; b <= 12; b++ {
		for a := 0; a < b; a++ {
			table[(1<<a)|(1<<b)] = idx
			idx++
		}
	}
	return table
}()

var comboIndex12of2 = func() [1 << 12]uint16 {
	var table [1 << 12]uint16
	var idx uint16
	for b := 1; b <= 11; b++ {
		for a := 0; a < b; a++ {
			table[(1<<a)|(1<<b)] = idx
			idx++
		}
	}
	return table
}()

var comboIndex12of3 = func() [1 << 12]uint16 {
	var table [1 << 12]uint16
	var idx uint16
	for c := 2; c <= 11; c++ {
		for b := 1; b < c; b++ {
			for a := 0; a < b; a++ {
				table[(1<<a)|(1<<b)|(1<<c)] = idx
				idx++
			}
		}
	}
	return table
}()

// straightComboIndices holds the 13-choose-5 indices that correspond to
// straights, sorted ascending, so flush/high-card indexing can skip them.
var straightComboIndices = func() [10]uint16 {
	var arr [10]uint16
	idx := 0
	wheelMask := uint16((1 << 0) | (1 << 1) | (1 << 2) | (1 << 3) | (1 << 12))
	arr[idx] = comboIndex13of5[wheelMask]
	idx++
	for high := 4; high <= 12; high++ {
		mask := uint16(0)
		for r := high - 4; r <= high; r++ {
			mask |= 1 << r
		}
		arr[idx] = comboIndex13of5[mask]
		idx++
	}
	// insertion sort, the array is tiny
	for i := 1; i < len(arr); i++ {
		v := arr[i]
		j := i - 1
		for j >= 0 && arr[j] > v {
			arr[j+1] = arr[j]
			j--
		}
		arr[j+1] = v
	}
	return arr
}()

func adjustNonStraightIndex(idx uint16) uint16 {
	var adjust uint16
	for _, s := range straightComboIndices {
		if idx > s {
			adjust++
		} else {
			break
		}
	}
	return idx - adjust
}
