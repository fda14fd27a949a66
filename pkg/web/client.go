package web

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Client is a browser connected to the Hub.
type Client struct {
	mu   sync.RWMutex
	hub  *Hub
	conn *websocket.Conn
	Send chan []byte
	ID   uint8

	RemoteAddr string
	UserAgent  string

	avgLatency  uint16
	connectedAt time.Time
}

// Latency returns the moving average of the client's round trip
// time in milliseconds.
func (c *Client) Latency() uint16 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.avgLatency
}

// ReadPump reads from the connection until it is closed. Clients
// don't send anything the hub acts on, so messages are discarded.
func (c *Client) ReadPump() {
	// deferred function to handle unregistering client
	// and closing connection
	defer func() {
		c.unregister()
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return // connection closed
		}
	}
}

// WritePump writes queued messages to the connection until the
// hub closes Send.
func (c *Client) WritePump() {
	defer c.conn.Close()

	for message := range c.Send {
		// try to write message to client
		if err := c.conn.WriteMessage(websocket.BinaryMessage, message); err != nil {
			c.unregister()
			return
		}

		// update average latency
		if rtt, ok := roundTrip(c.conn.UnderlyingConn()); ok {
			c.mu.Lock()
			c.avgLatency = ((c.avgLatency * 9) + uint16(rtt.Milliseconds())) / 10
			c.mu.Unlock()
		}
	}

	// connection hub closed the connection
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func (c *Client) unregister() {
	select {
	case c.hub.unregister <- c:
	case <-c.hub.done:
	}
}
