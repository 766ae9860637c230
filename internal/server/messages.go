package server

import (
	"encoding/json"
	"time"

	"github.com/gcheng713/pokerglasses/internal/game"
)

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// Client → Server Messages

type ActionData struct {
	Seat   int    `json:"seat"`
	Action string `json:"action"`
	Amount int    `json:"amount,omitempty"`
}

type SeatData struct {
	Seat int `json:"seat"`
}

type CardObservation struct {
	Card       string  `json:"card"`
	Confidence float64 `json:"confidence"`
}

type DetectData struct {
	Cards []CardObservation `json:"cards"`
}

// Server → Client Messages

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type GameStateData struct {
	State game.Snapshot `json:"state"`
}

type AnalysisData struct {
	Seat     int               `json:"seat"`
	Analysis game.HandAnalysis `json:"analysis"`
}

type AdviceData struct {
	Seat       int      `json:"seat"`
	Action     string   `json:"action"`
	Amount     float64  `json:"amount"`
	Confidence float64  `json:"confidence"`
	Reasoning  []string `json:"reasoning,omitempty"`
}

type HandEndData struct {
	Winners []string      `json:"winners"`
	Pot     int           `json:"pot"`
	State   game.Snapshot `json:"state"`
}

type DetectionStateData struct {
	Hole            []string `json:"hole"`
	Community       []string `json:"community"`
	Street          string   `json:"street"`
	WaitingForBoard bool     `json:"waitingForBoard"`
	Stale           bool     `json:"stale"`
}
