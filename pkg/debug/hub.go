// Package debug exposes the running core to websocket clients: serial
// output and trace lines are broadcast to everyone attached.
package debug

import (
	"net/http"

	"github.com/cespare/xxhash"
	"github.com/gorilla/websocket"

	"github.com/thelolagemann/sm83/pkg/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub maintains the set of attached clients and fans broadcast lines
// out to them. Consecutive duplicate lines are dropped; trace output
// from a spinning ROM would otherwise flood the stream.
type Hub struct {
	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan []byte

	lastSum uint64
	log     log.Logger
}

// NewHub returns a hub ready to Run.
func NewHub(l log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 256),
		log:        l,
	}
}

// Run services client registration and broadcasting until the process
// exits. It is intended to be run in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			h.log.Infof("debug: client %s attached", c.conn.RemoteAddr())
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
		case message := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}

// Broadcast queues a line for delivery to every attached client.
func (h *Hub) Broadcast(line []byte) {
	sum := xxhash.Sum64(line)
	if sum == h.lastSum {
		return
	}
	h.lastSum = sum

	select {
	case h.broadcast <- line:
	default:
		// a slow consumer never stalls the core
	}
}

// ServeHTTP upgrades the request to a websocket and attaches the
// client to the hub.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorf("debug: upgrade failed: %v", err)
		return
	}
	c := &client{hub: h, conn: conn, send: make(chan []byte, 256)}
	h.register <- c

	go c.writePump()
	go c.readPump()
}

// Writer adapts the hub to io.Writer so it can sit behind the serial
// port or the trace output.
func (h *Hub) Writer() *hubWriter {
	return &hubWriter{hub: h}
}

type hubWriter struct {
	hub *Hub
}

func (w *hubWriter) Write(p []byte) (int, error) {
	line := make([]byte, len(p))
	copy(line, p)
	w.hub.Broadcast(line)
	return len(p), nil
}
