package poker

// ActionType identifies a betting action a player can take.
type ActionType uint8

const (
	Fold ActionType = iota
	Check
	Call
	Raise
	AllIn
)

// String returns the action name in lowercase wire form.
func (a ActionType) String() string {
	switch a {
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Raise:
		return "raise"
	case AllIn:
		return "all_in"
	default:
		return "unknown"
	}
}

// ParseActionType converts a wire-form action name back to an ActionType.
func ParseActionType(s string) (ActionType, bool) {
	switch s {
	case "fold":
		return Fold, true
	case "check":
		return Check, true
	case "call":
		return Call, true
	case "raise":
		return Raise, true
	case "all_in", "allin":
		return AllIn, true
	}
	return Fold, false
}

// Action pairs an action type with its amount. Amount is the absolute
// total the player is betting to, not the increment, and is zero for
// fold and check.
type Action struct {
	Type   ActionType
	Amount int
}

// Aggressive reports whether the action builds the pot.
func (a Action) Aggressive() bool {
	return a.Type == Raise || a.Type == AllIn
}

// Street identifies a stage of a hand.
type Street uint8

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

// String returns the street name in lowercase wire form.
func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	default:
		return "unknown"
	}
}

// Next returns the street that follows, saturating at showdown.
func (s Street) Next() Street {
	if s >= Showdown {
		return Showdown
	}
	return s + 1
}

// CommunityCards returns how many community cards are dealt when this
// street begins: three for the flop, one each for the turn and river.
func (s Street) CommunityCards() int {
	switch s {
	case Flop:
		return 3
	case Turn, River:
		return 1
	default:
		return 0
	}
}
