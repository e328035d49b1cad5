package chat

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/zhouzirui/nexusai/internal/model/chat"
	chatService "github.com/zhouzirui/nexusai/internal/service/chat"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
	writeWait  = 10 * time.Second
)

// WebSocketHandler WebSocket聊天处理器
type WebSocketHandler struct {
	chatSvc  *chatService.Service
	upgrader websocket.Upgrader
	log      *zap.Logger
}

// NewWebSocketHandler 创建WebSocket处理器
func NewWebSocketHandler(chatSvc *chatService.Service, log *zap.Logger) *WebSocketHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &WebSocketHandler{
		chatSvc: chatSvc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		log: log.Named("websocket"),
	}
}

// RegisterWebSocketRoutes 注册WebSocket路由
func (h *WebSocketHandler) RegisterWebSocketRoutes(r chi.Router) {
	r.Get("/chat/{sessionID}/ws", h.handleWebSocket)
}

type inboundMessage struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type outgoingMessage struct {
	Type      string         `json:"type"`
	SessionID string         `json:"sessionId,omitempty"`
	Message   *chat.Message  `json:"message,omitempty"`
	Messages  []chat.Message `json:"messages,omitempty"`
	Typing    bool           `json:"typing"`
	Error     string         `json:"error,omitempty"`
	Timestamp int64          `json:"timestamp"`
}

func fromEvent(ev chat.Event) outgoingMessage {
	return outgoingMessage{
		Type:      ev.Type,
		Message:   ev.Message,
		Typing:    ev.Typing,
		Error:     ev.Error,
		Timestamp: time.Now().Unix(),
	}
}

// handleWebSocket 处理WebSocket连接。连接即页面：断开时会话随之关闭
func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	messages, err := h.chatSvc.LoadTranscript(r.Context(), sessionID)
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	events, unsubscribe, err := h.chatSvc.Subscribe(sessionID)
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	defer unsubscribe()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	defer h.chatSvc.Close(sessionID)

	h.log.Debug("connection opened", zap.String("session", sessionID))

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	typing, _ := h.chatSvc.Typing(sessionID)
	out := make(chan outgoingMessage, 8)
	out <- outgoingMessage{
		Type:      "connected",
		SessionID: sessionID,
		Messages:  messages,
		Typing:    typing,
		Timestamp: time.Now().Unix(),
	}

	go func() {
		defer cancel()
		h.writeLoop(ctx, conn, events, out)
	}()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) && ctx.Err() == nil {
				h.log.Warn("read failed", zap.String("session", sessionID), zap.Error(err))
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))

		if reply, ok := h.handleMessage(ctx, sessionID, msg); ok {
			select {
			case out <- reply:
			case <-ctx.Done():
				return
			}
		}
	}
}

// handleMessage applies one client frame and returns a direct reply, if any.
func (h *WebSocketHandler) handleMessage(ctx context.Context, sessionID string, msg inboundMessage) (outgoingMessage, bool) {
	switch msg.Type {
	case "message":
		_, err := h.chatSvc.Send(ctx, sessionID, msg.Content)
		switch {
		case err == nil, errors.Is(err, chatService.ErrEmptyMessage):
			return outgoingMessage{}, false
		case errors.Is(err, chatService.ErrSessionNotFound):
			return errorMessage("session not found"), true
		default:
			h.log.Error("send failed", zap.String("session", sessionID), zap.Error(err))
			return errorMessage("failed to send message"), true
		}
	case "ping":
		return outgoingMessage{Type: "pong", Timestamp: time.Now().Unix()}, true
	default:
		return errorMessage("unknown message type"), true
	}
}

func errorMessage(message string) outgoingMessage {
	return outgoingMessage{Type: chat.EventError, Error: message, Timestamp: time.Now().Unix()}
}

// writeLoop is the only writer on conn and closes it on exit. It ends when the session's event stream closes,
// a write fails, or ctx is done.
func (h *WebSocketHandler) writeLoop(ctx context.Context, conn *websocket.Conn, events <-chan chat.Event, out <-chan outgoingMessage) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	defer conn.Close()

	write := func(msg outgoingMessage) bool {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(msg); err != nil {
			h.log.Debug("write failed", zap.Error(err))
			return false
		}
		return true
	}

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-out:
			if !write(msg) {
				return
			}
		case ev, ok := <-events:
			if !ok {
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"),
					time.Now().Add(writeWait))
				return
			}
			if !write(fromEvent(ev)) {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
