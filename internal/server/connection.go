package server

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Connection represents a WebSocket connection to a client
type Connection struct {
	conn      *websocket.Conn
	send      chan *Message
	logger    zerolog.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
	service   *GameService
}

// NewConnection creates a new connection wrapper
func NewConnection(conn *websocket.Conn, logger zerolog.Logger, service *GameService) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	return &Connection{
		conn:    conn,
		send:    make(chan *Message, 256),
		logger:  logger.With().Str("component", "conn").Logger(),
		ctx:     ctx,
		cancel:  cancel,
		service: service,
	}
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		close(c.send)
		err = c.conn.Close()
	})
	return err
}

// SendMessage sends a message to the client
func (c *Connection) SendMessage(msg *Message) error {
	defer func() {
		if r := recover(); r != nil {
			// Channel was closed, this is expected during shutdown
			c.logger.Debug().Interface("error", r).Msg("send on closed connection")
		}
	}()

	select {
	case c.send <- msg:
		return nil
	case <-c.ctx.Done():
		return c.ctx.Err()
	default:
		c.logger.Warn().Msg("send buffer full, closing connection")
		_ = c.Close()
		return ErrConnectionClosed
	}
}

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

var ErrConnectionClosed = websocket.ErrCloseSent

// readPump handles incoming messages from the client
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}

		var msg Message
		err := c.conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error().Err(err).Msg("websocket error")
			}
			break
		}

		c.handleMessage(&msg)
	}
}

// writePump handles outgoing messages to the client
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(message); err != nil {
				c.logger.Error().Err(err).Msg("failed to write message")
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			return
		}
	}
}

// handleMessage processes incoming messages from the client
func (c *Connection) handleMessage(msg *Message) {
	c.logger.Debug().Stringer("type", msg.Type).Msg("received message")

	if c.service == nil {
		c.sendError("service_unavailable", "Game service not available")
		return
	}

	switch msg.Type {
	case MessageTypeStartHand:
		c.handleStartHand()

	case MessageTypeAction:
		var data ActionData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse action data")
			return
		}
		c.handleAction(data)

	case MessageTypeGetState:
		var data SeatData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse state request")
			return
		}
		c.reply(MessageTypeGameState, c.service.State(data.Seat))

	case MessageTypeGetAnalysis:
		var data SeatData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse analysis request")
			return
		}
		analysis, err := c.service.Analysis(data.Seat)
		if err != nil {
			c.sendError("analysis_failed", err.Error())
			return
		}
		c.reply(MessageTypeAnalysis, analysis)

	case MessageTypeGetAdvice:
		var data SeatData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse advice request")
			return
		}
		advice, err := c.service.Advice(data.Seat)
		if err != nil {
			c.sendError("advice_failed", err.Error())
			return
		}
		c.reply(MessageTypeAdvice, advice)

	case MessageTypeDetect:
		var data DetectData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError("invalid_message", "Failed to parse detection data")
			return
		}
		state, err := c.service.Detect(data)
		if err != nil {
			c.sendError("detect_failed", err.Error())
			return
		}
		c.reply(MessageTypeDetectionState, state)

	case MessageTypeAdvanceStreet:
		c.reply(MessageTypeDetectionState, c.service.AdvanceDetectedStreet())

	case MessageTypeResetHand:
		c.reply(MessageTypeDetectionState, c.service.ResetDetectedHand())

	default:
		c.sendError("unknown_message_type", "Unknown message type: "+msg.Type.String())
	}
}

func (c *Connection) handleStartHand() {
	state, end, err := c.service.StartHand()
	if err != nil {
		c.sendError("start_failed", err.Error())
		return
	}
	c.reply(MessageTypeGameState, state)
	if end != nil {
		c.reply(MessageTypeHandEnd, end)
	}
}

func (c *Connection) handleAction(data ActionData) {
	state, end, err := c.service.HandleAction(data)
	if err != nil {
		c.sendError("action_failed", err.Error())
		return
	}
	c.reply(MessageTypeGameState, state)
	if end != nil {
		c.reply(MessageTypeHandEnd, end)
	}
}

// reply marshals and sends a response, logging marshal failures.
func (c *Connection) reply(messageType MessageType, data interface{}) {
	msg, err := NewMessage(messageType, data)
	if err != nil {
		c.logger.Error().Err(err).Stringer("type", messageType).Msg("failed to create message")
		return
	}
	_ = c.SendMessage(msg)
}

// sendError sends an error message to the client
func (c *Connection) sendError(code, message string) {
	c.reply(MessageTypeError, ErrorData{
		Code:    code,
		Message: message,
	})
}
