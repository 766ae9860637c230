package poker

// Texture is a coarse classification of how coordinated the community
// cards are.
type Texture uint8

const (
	// TextureNone means there are not enough cards to classify.
	TextureNone Texture = iota
	// TextureDry boards are uncoordinated: three or more suits, no pairs.
	TextureDry
	// TextureSemiWet boards are paired but not flush-prone.
	TextureSemiWet
	// TextureWet boards have two or fewer suits, so flushes are live.
	TextureWet
)

func (t Texture) String() string {
	switch t {
	case TextureDry:
		return "dry"
	case TextureSemiWet:
		return "semi-wet"
	case TextureWet:
		return "wet"
	default:
		return "none"
	}
}

// ClassifyTexture inspects the community cards. Flush-prone boards are
// wet regardless of rank structure; otherwise a board with no pairs is
// dry.
func ClassifyTexture(board []Card) Texture {
	if len(board) < 3 {
		return TextureNone
	}

	suits := make(map[Suit]bool, 4)
	ranks := make(map[Rank]bool, len(board))
	for _, c := range board {
		suits[c.Suit] = true
		ranks[c.Rank] = true
	}

	if len(suits) <= 2 {
		return TextureWet
	}
	if len(ranks) == len(board) {
		return TextureDry
	}
	return TextureSemiWet
}
