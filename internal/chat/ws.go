package chat

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type incomingMessage struct {
	Text string `json:"text"`
	User string `json:"user"`
}

func HistoryHandler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		room := strings.TrimSpace(c.Query("room"))
		if room == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "room is required"})
			return
		}

		history := hub.History(room)
		if history == nil {
			history = []Message{}
		}
		c.JSON(http.StatusOK, history)
	}
}

// WSHandler joins the caller to ?room= as ?user=, relays chat lines and
// lets bot answer command lines in the same room. bot may be nil.
func WSHandler(hub *Hub, bot *Bot, logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "chat")

	return func(c *gin.Context) {
		room := strings.TrimSpace(c.Query("room"))
		if room == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "room is required"})
			return
		}

		user := strings.TrimSpace(c.Query("user"))
		if user == "" {
			user = "anon"
		}

		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Warn("upgrade failed", "room", room, "error", err)
			return
		}

		hub.Join(room, ws, user)
		logger.Info("user joined", "room", room, "user", user)

		for {
			_, payload, err := ws.ReadMessage()
			if err != nil {
				break
			}

			text, msgUser := decodeIncoming(payload)
			if text == "" {
				continue
			}
			if msgUser == "" {
				msgUser = hub.User(room, ws)
			}

			hub.Broadcast(Message{
				Type: TypeMessage,
				Room: room,
				User: msgUser,
				Text: text,
			})

			if reply, ok := bot.Reply(c.Request.Context(), room, text); ok {
				hub.Broadcast(reply)
			}
		}

		hub.Leave(room, ws)
		logger.Info("user left", "room", room, "user", user)
	}
}

// decodeIncoming accepts either {"text": ..., "user": ...} or a raw line.
func decodeIncoming(payload []byte) (text, user string) {
	var incoming incomingMessage
	if err := json.Unmarshal(payload, &incoming); err != nil {
		return strings.TrimSpace(string(payload)), ""
	}
	return strings.TrimSpace(incoming.Text), strings.TrimSpace(incoming.User)
}
