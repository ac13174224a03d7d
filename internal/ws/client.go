package ws

import (
	"encoding/json"
	"time"

	"studydesk/internal/logger"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = 25 * time.Second
)

// EndFunc reports the end of the running timer, or false when none is set.
// It is polled on every tick so a timer reset mid-stream is picked up.
type EndFunc func() (time.Time, bool)

// Client streams a session's countdown over one websocket connection.
type Client struct {
	SessionID string
	Conn      *websocket.Conn
	Send      chan []byte
	Done      chan struct{}

	Tick   time.Duration
	Now    func() time.Time
	Layout string
}

func NewClient(sessionID string, conn *websocket.Conn, layout string) *Client {
	return &Client{
		SessionID: sessionID,
		Conn:      conn,
		Send:      make(chan []byte, 16),
		Done:      make(chan struct{}),
		Tick:      time.Second,
		Now:       time.Now,
		Layout:    layout,
	}
}

// Run pumps countdown frames until the timer ends, is cleared, or the peer
// goes away.
func (c *Client) Run(end EndFunc) {
	go c.writePump()
	go c.readPump()

	defer close(c.Send)

	ticker := time.NewTicker(c.Tick)
	defer ticker.Stop()

	for {
		msg, last := c.frame(end)
		if !c.queue(msg) || last {
			return
		}
		select {
		case <-c.Done:
			return
		case <-ticker.C:
		}
	}
}

// frame builds the next message; last is true once the stream should end.
func (c *Client) frame(end EndFunc) (Message, bool) {
	e, ok := end()
	if !ok {
		return Message{Type: MsgIdle}, true
	}
	left := e.Sub(c.Now())
	if left <= 0 {
		return Message{Type: MsgDone, EndingTime: e.Format(c.Layout)}, true
	}
	// round up so the last tick reads 1, never 0
	secs := int64((left + time.Second - 1) / time.Second)
	return Message{Type: MsgTick, Remaining: secs, EndingTime: e.Format(c.Layout)}, false
}

func (c *Client) queue(m Message) bool {
	b, err := json.Marshal(m)
	if err != nil {
		return false
	}
	select {
	case c.Send <- b:
		return true
	case <-c.Done:
		return false
	}
}

func (c *Client) readPump() {
	defer close(c.Done)

	c.Conn.SetReadLimit(512)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		// clients only listen; anything they send is dropped
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			logger.Debug("countdown reader closed", "session_id", c.SessionID, "error", err)
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				logger.Debug("countdown write failed", "session_id", c.SessionID, "error", err)
				return
			}

		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
