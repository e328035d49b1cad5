package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zhouzirui/nexusai/internal/handler/page"
	"github.com/zhouzirui/nexusai/internal/model/chat"
	chatService "github.com/zhouzirui/nexusai/internal/service/chat"
	"github.com/zhouzirui/nexusai/internal/view/pages"
	"github.com/zhouzirui/nexusai/pkg/utils"
)

// Handler 聊天页面与消息接口的HTTP处理器
type Handler struct {
	chatSvc *chatService.Service
	frame   page.Frame
	log     *zap.Logger
}

// New 创建聊天处理器
func New(chatSvc *chatService.Service, frame page.Frame, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{chatSvc: chatSvc, frame: frame, log: log.Named("chat")}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/chat", h.handlePage)
	r.Get("/chat/{sessionID}/messages", h.handleTranscript)
	r.Post("/chat/{sessionID}/close", h.handleClose)
}

// RegisterSubmitRoutes 注册发送消息路由，由路由层统一限流
func (h *Handler) RegisterSubmitRoutes(r chi.Router) {
	r.Post("/chat/{sessionID}/messages", h.handleSend)
}

func pageURL(sessionID string) string {
	return "/chat?session=" + url.QueryEscape(sessionID)
}

// handlePage 渲染聊天页；没有有效会话时新建一个并重定向
func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := r.URL.Query().Get("session")

	messages, err := h.chatSvc.LoadTranscript(ctx, sessionID)
	if err != nil {
		session, err := h.chatSvc.CreateSession(ctx)
		if err != nil {
			h.log.Error("create session failed", zap.Error(err))
			http.Error(w, "chat unavailable", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, pageURL(session.ID), http.StatusSeeOther)
		return
	}

	typing, _ := h.chatSvc.Typing(sessionID)
	h.frame.Render(w, http.StatusOK, "chat", pages.Chat(h.frame.Page(r, "Chat"), pages.ChatView{
		SessionID: sessionID,
		Messages:  messages,
		Typing:    typing,
	}))
}

func isJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

// handleSend 追加用户消息并安排一次助手回复
func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	jsonRequest := isJSON(r)

	var content string
	if jsonRequest {
		var payload struct {
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		content = payload.Content
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form body", http.StatusBadRequest)
			return
		}
		content = r.PostForm.Get("content")
	}

	message, err := h.chatSvc.Send(r.Context(), sessionID, content)
	switch {
	case err == nil:
	case errors.Is(err, chatService.ErrEmptyMessage):
		// blank input is ignored, not reported
		if jsonRequest {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		http.Redirect(w, r, pageURL(sessionID), http.StatusSeeOther)
		return
	case errors.Is(err, chatService.ErrSessionNotFound):
		if jsonRequest {
			utils.RespondError(w, http.StatusNotFound, "session not found")
			return
		}
		http.Redirect(w, r, "/chat", http.StatusSeeOther)
		return
	default:
		h.log.Error("send failed", zap.String("session", sessionID), zap.Error(err))
		if jsonRequest {
			utils.RespondError(w, http.StatusInternalServerError, "failed to send message")
			return
		}
		http.Error(w, "failed to send message", http.StatusInternalServerError)
		return
	}

	if jsonRequest {
		utils.RespondJSON(w, http.StatusAccepted, map[string]chat.Message{"message": message})
		return
	}
	http.Redirect(w, r, pageURL(sessionID), http.StatusSeeOther)
}

// handleTranscript 返回会话的消息记录
func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	messages, err := h.chatSvc.LoadTranscript(r.Context(), sessionID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}
	typing, _ := h.chatSvc.Typing(sessionID)
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"sessionId": sessionID,
		"messages":  messages,
		"typing":    typing,
	})
}

// handleClose releases the conversation when its page goes away.
func (h *Handler) handleClose(w http.ResponseWriter, r *http.Request) {
	h.chatSvc.Close(chi.URLParam(r, "sessionID"))
	w.WriteHeader(http.StatusNoContent)
}
