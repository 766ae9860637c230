package profile

// Style classifies a player along the tight/loose and passive/aggressive
// axes.
type Style uint8

const (
	Unknown Style = iota
	TightPassive
	TightAggressive
	LoosePassive
	LooseAggressive
)

func (s Style) String() string {
	switch s {
	case TightPassive:
		return "tight_passive"
	case TightAggressive:
		return "tight_aggressive"
	case LoosePassive:
		return "loose_passive"
	case LooseAggressive:
		return "loose_aggressive"
	default:
		return "unknown"
	}
}

// Aggressive reports whether the style raises often.
func (s Style) Aggressive() bool {
	return s == TightAggressive || s == LooseAggressive
}

// Tight reports whether the style plays few hands and is likely to fold.
func (s Style) Tight() bool {
	return s == TightPassive || s == TightAggressive
}
