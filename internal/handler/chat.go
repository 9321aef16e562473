package handler

import (
	"net/http"

	"github.com/sakif/wellverse/internal/service"
)

// ChatHandler fronts the AI companion endpoints.
type ChatHandler struct {
	chat *service.ChatService
}

func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// HandleChat returns the companion's reply to a message. When the
// companion is down the fallback text comes back with a 200; the chat
// UI treats it as a normal reply.
//
// HTTP: POST /api/chat
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	reply, err := h.chat.Reply(r.Context(), req.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}

type icebreakersRequest struct {
	CommunityID string `json:"communityId"`
	Count       int    `json:"count"`
}

type icebreakersResponse struct {
	Messages []string `json:"messages"`
}

// HandleIcebreakers returns conversation starters for a community.
//
// HTTP: POST /api/icebreakers
func (h *ChatHandler) HandleIcebreakers(w http.ResponseWriter, r *http.Request) {
	var req icebreakersRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	messages, err := h.chat.Icebreakers(r.Context(), req.CommunityID, req.Count)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, icebreakersResponse{Messages: messages})
}
