package web

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	clientSendSize = 8
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// StartServer serves the live match viewer: a websocket feed of match
// snapshots at /ws, the latest snapshot as plain JSON at /state, and
// match control at /pause and /resume. It blocks, so run it in a
// goroutine.
func StartServer(addr string, hub *Hub) error {
	return http.ListenAndServe(addr, newMux(hub))
}

func newMux(hub *Hub) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWs(hub, w, r)
	})
	mux.HandleFunc("/state", func(w http.ResponseWriter, r *http.Request) {
		state, err := hub.match.State()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(state)
	})
	mux.HandleFunc("/pause", func(w http.ResponseWriter, r *http.Request) {
		hub.match.Pause()
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/resume", func(w http.ResponseWriter, r *http.Request) {
		hub.match.Resume()
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

// serveWs upgrades an HTTP request to a websocket viewer connection.
func serveWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	client := &Client{hub: hub, conn: conn, send: make(chan []byte, clientSendSize)}
	hub.register <- client

	go client.writePump()
	go client.readPump()
}

// writePump forwards hub broadcasts to the websocket connection.
func (c *Client) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	// Hub closed the channel.
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump drains the connection (viewers only listen) and unregisters
// on disconnect.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
