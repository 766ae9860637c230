package poker

// Position classifies a seat as early or late relative to the button.
type Position uint8

const (
	Early Position = iota
	Late
)

func (p Position) String() string {
	if p == Late {
		return "late"
	}
	return "early"
}

// PositionForSeat classifies a seat by its index at the table. The first
// third of seats are early position, the rest late.
func PositionForSeat(seat, numPlayers int) Position {
	if numPlayers <= 0 {
		return Early
	}
	if seat < numPlayers/3 {
		return Early
	}
	return Late
}
