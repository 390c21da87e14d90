// File path: internal/api/chat_handler.go
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/alyprop/propreport/internal/common"
)

type chatRequest struct {
	Question      string `json:"question"`
	ReportContext string `json:"report_context,omitempty"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "question is required")
		return
	}

	reply, err := s.assistant.Chat(r.Context(), req.Question, req.ReportContext)
	if err != nil {
		common.Logger().Error("api: chat failed", "error", err)
		writeError(w, http.StatusBadGateway, "assistant unavailable")
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}
