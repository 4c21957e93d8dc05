package chat

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"anilookup/internal/metrics"
	"anilookup/pkg/models"
)

const defaultHistorySize = 50

// Message types sent to room members.
const (
	TypeMessage   = "message"
	TypeCard      = "card"
	TypeError     = "error"
	TypeUserJoin  = "user_join"
	TypeUserLeave = "user_leave"
)

type Message struct {
	ID   string       `json:"id"`
	Type string       `json:"type"`
	Room string       `json:"room"`
	User string       `json:"user"`
	Text string       `json:"text,omitempty"`
	Card *models.Card `json:"card,omitempty"`
	At   time.Time    `json:"at"`
}

type Room struct {
	connections map[*websocket.Conn]string
	history     []Message
}

type Hub struct {
	mu          sync.Mutex
	rooms       map[string]*Room
	historySize int
}

func NewHub(historySize int) *Hub {
	if historySize <= 0 {
		historySize = defaultHistorySize
	}
	return &Hub{
		rooms:       make(map[string]*Room),
		historySize: historySize,
	}
}

// Join adds ws to room and replays the room history to it before any
// later broadcast can reach the connection.
func (h *Hub) Join(room string, ws *websocket.Conn, user string) {
	h.mu.Lock()
	r := h.roomLocked(room)
	for _, msg := range r.history {
		_ = ws.WriteJSON(msg)
	}
	r.connections[ws] = user
	h.mu.Unlock()
	metrics.ChatConnections.Inc()

	h.Broadcast(Message{
		Type: TypeUserJoin,
		Room: room,
		User: user,
	})
}

func (h *Hub) Leave(room string, ws *websocket.Conn) {
	var user string
	h.mu.Lock()
	if r, ok := h.rooms[room]; ok {
		if u, exists := r.connections[ws]; exists {
			user = u
			metrics.ChatConnections.Dec()
		}
		delete(r.connections, ws)
		if len(r.connections) == 0 && len(r.history) == 0 {
			delete(h.rooms, room)
		}
	}
	h.mu.Unlock()

	_ = ws.Close()

	if user != "" {
		h.Broadcast(Message{
			Type: TypeUserLeave,
			Room: room,
			User: user,
		})
	}
}

// Broadcast stamps msg with an id and time when missing and sends it to
// everyone in the room. Chat lines and cards are kept in the room history.
func (h *Hub) Broadcast(msg Message) Message {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.At.IsZero() {
		msg.At = time.Now().UTC()
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return msg
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	r, ok := h.rooms[msg.Room]
	if !ok {
		return msg
	}

	if msg.Type == TypeMessage || msg.Type == TypeCard {
		r.history = append(r.history, msg)
		if len(r.history) > h.historySize {
			r.history = r.history[len(r.history)-h.historySize:]
		}
	}

	for ws := range r.connections {
		if err := ws.WriteMessage(websocket.TextMessage, payload); err != nil {
			_ = ws.Close()
			delete(r.connections, ws)
			metrics.ChatConnections.Dec()
		}
	}
	return msg
}

func (h *Hub) History(room string) []Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	if r, ok := h.rooms[room]; ok {
		return append([]Message(nil), r.history...)
	}
	return nil
}

func (h *Hub) User(room string, ws *websocket.Conn) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if r, ok := h.rooms[room]; ok {
		return r.connections[ws]
	}
	return ""
}

func (h *Hub) roomLocked(room string) *Room {
	r, ok := h.rooms[room]
	if !ok {
		r = &Room{connections: make(map[*websocket.Conn]string)}
		h.rooms[room] = r
	}
	return r
}
