// Package stream pushes live chat events to the browser over Server-Sent Events.
package stream

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zhouzirui/nexusai/internal/model/chat"
	chatService "github.com/zhouzirui/nexusai/internal/service/chat"
	"github.com/zhouzirui/nexusai/pkg/utils"
)

const defaultHeartbeat = 15 * time.Second

// Handler manages chat event streams via Server-Sent Events
type Handler struct {
	chatSvc   *chatService.Service
	heartbeat time.Duration
	log       *zap.Logger
}

// New creates a new stream handler
func New(chatSvc *chatService.Service, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{chatSvc: chatSvc, heartbeat: defaultHeartbeat, log: log.Named("sse")}
}

// RegisterRoutes 注册事件流路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/chat/{sessionID}/events", h.HandleEvents)
}

// Snapshot is the first event of every stream so a reconnecting client can resync.
type Snapshot struct {
	SessionID string         `json:"sessionId"`
	Messages  []chat.Message `json:"messages"`
	Typing    bool           `json:"typing"`
}

// HandleEvents streams one conversation until the client leaves or the session ends.
func (h *Handler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	ctx := r.Context()
	sessionID := chi.URLParam(r, "sessionID")

	events, unsubscribe, err := h.chatSvc.Subscribe(sessionID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}
	defer unsubscribe()

	messages, err := h.chatSvc.LoadTranscript(ctx, sessionID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}
	typing, _ := h.chatSvc.Typing(sessionID)

	utils.SetupSSEHeaders(w)
	w.WriteHeader(http.StatusOK)
	h.log.Debug("opening stream", zap.String("session", sessionID))

	if err := utils.SendSSEEvent(w, flusher, "ready", Snapshot{SessionID: sessionID, Messages: messages, Typing: typing}); err != nil {
		return
	}

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.log.Debug("client left stream", zap.String("session", sessionID))
			return
		case ev, ok := <-events:
			if !ok {
				_ = utils.SendSSEEvent(w, flusher, "closed", map[string]string{"sessionId": sessionID})
				return
			}
			if err := utils.SendSSEEvent(w, flusher, ev.Type, ev); err != nil {
				h.log.Debug("stream write failed", zap.String("session", sessionID), zap.Error(err))
				return
			}
		case <-ticker.C:
			if err := utils.SendSSEComment(w, flusher, "heartbeat"); err != nil {
				return
			}
		}
	}
}
