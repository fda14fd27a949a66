// Package web streams the output of a running emulator to browser
// clients over websockets. Every message is binary, with the first
// byte identifying its type.
package web

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

// Message types.
const (
	// ClientInfo is sent to a client once it connects, followed by
	// its ID.
	ClientInfo uint8 = iota + 1
	// SerialOutput carries bytes transmitted over the serial port.
	SerialOutput
	// StatusUpdate carries a JSON encoded status.
	StatusUpdate
	// ServerInfo carries the ID and round trip time in
	// milliseconds (little endian uint16) of every client.
	ServerInfo
)

// Hub broadcasts messages to every connected client.
type Hub struct {
	clients map[*Client]bool

	broadcast            chan []byte
	register, unregister chan *Client
	done                 chan struct{}

	log       log.Logger
	currentID uint8
	mu        sync.Mutex
}

// NewHub returns a new Hub. Run must be called for it to
// accept clients.
func NewHub(l log.Logger) *Hub {
	if l == nil {
		l = log.NewNullLogger()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		log:        l,
	}
}

// Run handles clients connecting, disconnecting and broadcasts
// until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	// periodic info updates
	t := time.NewTicker(time.Second)
	defer t.Stop()
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				close(c.Send)
				delete(h.clients, c)
			}
			return
		case c := <-h.register:
			h.clients[c] = true
			h.log.Debugf("web: client %d connected from %s", c.ID, c.RemoteAddr)
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.Send)
				h.log.Debugf("web: client %d disconnected", c.ID)
			}
		case msg := <-h.broadcast:
			h.send(msg)
		case <-t.C:
			h.send(h.info())
		}
	}
}

// send queues msg for every client, dropping clients that
// aren't keeping up.
func (h *Hub) send(msg []byte) {
	for c := range h.clients {
		select {
		case c.Send <- msg:
		default:
			close(c.Send)
			delete(h.clients, c)
		}
	}
}

// info builds a ServerInfo message.
func (h *Hub) info() []byte {
	data := []byte{ServerInfo}
	for c := range h.clients {
		latencyBuf := make([]byte, 2)
		binary.LittleEndian.PutUint16(latencyBuf, c.Latency())
		data = append(data, c.ID)
		data = append(data, latencyBuf...)
	}
	return data
}

// Broadcast queues msg for every client. Messages are dropped if
// the hub is backed up, so that the emulator is never blocked.
func (h *Hub) Broadcast(msg []byte) {
	select {
	case h.broadcast <- msg:
	default:
	}
}

// Transmit broadcasts a byte sent over the serial port, so the
// Hub can observe a serial.Controller.
func (h *Hub) Transmit(b uint8) {
	h.Broadcast([]byte{SerialOutput, b})
}

// SendStatus broadcasts v as a JSON encoded StatusUpdate.
func (h *Hub) SendStatus(v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	h.Broadcast(append([]byte{StatusUpdate}, b...))
	return nil
}

// ServeHTTP upgrades the connection to a websocket, and registers
// the client with the hub.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	// upgrade the connection to a websocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorf("web: upgrading connection: %v", err)
		return
	}

	// create new client
	c := h.newClient(conn, r)
	c.Send <- []byte{ClientInfo, c.ID}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	// spawn read/write pumps
	go c.ReadPump()
	go c.WritePump()
}

// newClient creates a new client for the hub.
func (h *Hub) newClient(conn *websocket.Conn, r *http.Request) *Client {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.currentID++

	return &Client{
		hub:         h,
		conn:        conn,
		Send:        make(chan []byte, 256),
		ID:          h.currentID,
		RemoteAddr:  r.RemoteAddr,
		UserAgent:   r.Header.Get("User-Agent"),
		connectedAt: time.Now(),
	}
}

// ListenAndServe serves the hub at addr until ctx is cancelled.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: h}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()

	h.log.Infof("web: listening on %s", addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024 * 16,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}
