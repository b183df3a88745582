package web

import (
	"log"

	"github.com/gorilla/websocket"
)

// MatchController defines the interface the web package uses to observe
// and control the running match. It avoids a circular dependency between
// the web and main packages.
type MatchController interface {
	// State returns a JSON-encoded snapshot of the current match state.
	State() ([]byte, error)
	Pause()
	Resume()
}

// Client is a middleman between one websocket connection and the hub.
type Client struct {
	hub *Hub

	// The websocket connection.
	conn *websocket.Conn

	// Buffered channel of outbound messages.
	send chan []byte
}

// Hub maintains the set of active viewer clients and broadcasts match
// snapshots to them.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Outbound snapshots to fan out.
	broadcast chan []byte

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// match is used to fetch state on demand.
	match MatchController
}

// NewHub creates a new Hub.
func NewHub(match MatchController) *Hub {
	return &Hub{
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		match:      match,
	}
}

// Run starts the hub's event loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// BroadcastFullState fetches the current match state and broadcasts it to
// all clients. The bot calls this after every turn.
func (h *Hub) BroadcastFullState() {
	if h == nil {
		return
	}
	state, err := h.match.State()
	if err != nil {
		log.Printf("error getting match state for broadcast: %v", err)
		return
	}
	h.broadcast <- state
}
