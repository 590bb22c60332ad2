package webui

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/Krish2786/LegalMind-AI/internal/chat"
	"github.com/Krish2786/LegalMind-AI/internal/legalmind"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// chatRequest is the incoming WebSocket message format.
type chatRequest struct {
	Type    string `json:"type"` // "ask"
	Content string `json:"content"`
}

// chatResponse is the outgoing WebSocket message format.
type chatResponse struct {
	Type    string `json:"type"` // "answer" or "error"
	Content string `json:"content"`
}

func (u *WebUI) handleChat(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("webui: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("webui: websocket read: %v", err)
			}
			return
		}

		var req chatRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			u.sendChatError(conn, "invalid message format")
			continue
		}

		switch req.Type {
		case "ask":
			u.handleAskMessage(conn, r, req)
		default:
			u.sendChatError(conn, "unknown message type: "+req.Type)
		}
	}
}

func (u *WebUI) handleAskMessage(conn *websocket.Conn, r *http.Request, req chatRequest) {
	answer, err := u.app.Ask(r.Context(), req.Content)
	if err != nil {
		u.sendChatError(conn, chatErrorText(err))
		return
	}

	u.sendChatResponse(conn, chatResponse{Type: "answer", Content: answer})
}

// chatErrorText converts a flow error into the text shown in the transcript.
func chatErrorText(err error) string {
	if errors.Is(err, chat.ErrAskPending) {
		return "Please wait for the previous answer before asking again."
	}
	return legalmind.UserMessage(err)
}

func (u *WebUI) sendChatResponse(conn *websocket.Conn, resp chatResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("webui: websocket write: %v", err)
	}
}

func (u *WebUI) sendChatError(conn *websocket.Conn, message string) {
	resp := chatResponse{Type: "error", Content: message}
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("webui: websocket write error: %v", err)
	}
}
