package server

// MessageType represents a WebSocket message type with type safety
type MessageType string

// WebSocket message type constants
// These are used for client-server communication protocol
const (
	// Client to server messages
	MessageTypeStartHand     MessageType = "start_hand"
	MessageTypeAction        MessageType = "action"
	MessageTypeGetState      MessageType = "get_state"
	MessageTypeGetAnalysis   MessageType = "get_analysis"
	MessageTypeGetAdvice     MessageType = "get_advice"
	MessageTypeDetect        MessageType = "detect"
	MessageTypeAdvanceStreet MessageType = "advance_street"
	MessageTypeResetHand     MessageType = "reset_hand"

	// Server to client messages
	MessageTypeError          MessageType = "error"
	MessageTypeGameState      MessageType = "game_state"
	MessageTypeAnalysis       MessageType = "analysis"
	MessageTypeAdvice         MessageType = "advice"
	MessageTypeHandEnd        MessageType = "hand_end"
	MessageTypeDetectionState MessageType = "detection_state"
)

// String returns the string representation of the message type
func (mt MessageType) String() string {
	return string(mt)
}
