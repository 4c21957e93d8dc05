package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"anilookup/internal/chat"
	"anilookup/internal/present"
)

const defaultBaseURL = "http://localhost:8080"

func newChatCmd(a *app) *cobra.Command {
	var baseURL, room, user string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Join a chat room on an api-server; lines starting with !al are answered by the bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wsURL, err := websocketURL(baseURL, "/ws/chat", url.Values{"room": {room}, "user": {user}})
			if err != nil {
				return fmt.Errorf("invalid server url: %w", err)
			}
			return runChat(wsURL, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&baseURL, "server", defaultBaseURL, "api-server base URL")
	cmd.Flags().StringVar(&room, "room", "lobby", "room to join")
	cmd.Flags().StringVar(&user, "user", defaultUser(), "display name")
	return cmd
}

func runChat(wsURL string, in io.Reader, out io.Writer) error {
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", wsURL, err)
	}
	defer conn.Close()

	done := make(chan error, 1)
	go func() {
		for {
			_, payload, err := conn.ReadMessage()
			if err != nil {
				done <- err
				return
			}
			printChatMessage(out, payload)
		}
	}()

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := conn.WriteJSON(map[string]string{"text": line}); err != nil {
			return fmt.Errorf("send: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	if err := <-done; err != nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		return err
	}
	return nil
}

func printChatMessage(out io.Writer, payload []byte) {
	var msg chat.Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		fmt.Fprintln(out, string(payload))
		return
	}

	switch msg.Type {
	case chat.TypeCard:
		if msg.Card != nil {
			fmt.Fprintln(out, present.Text(*msg.Card, 80))
			return
		}
		fmt.Fprintf(out, "[%s] %s\n", msg.User, msg.Text)
	case chat.TypeError:
		fmt.Fprintf(out, "[%s] ! %s\n", msg.User, msg.Text)
	case chat.TypeUserJoin:
		fmt.Fprintf(out, "* %s joined %s\n", msg.User, msg.Room)
	case chat.TypeUserLeave:
		fmt.Fprintf(out, "* %s left %s\n", msg.User, msg.Room)
	default:
		fmt.Fprintf(out, "[%s] %s\n", msg.User, msg.Text)
	}
}

func websocketURL(baseURL, path string, query url.Values) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	scheme := "ws"
	if u.Scheme == "https" {
		scheme = "wss"
	}
	return (&url.URL{
		Scheme:   scheme,
		Host:     u.Host,
		Path:     path,
		RawQuery: query.Encode(),
	}).String(), nil
}

func defaultUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "guest"
}
