// File path: internal/api/health_handler.go
package api

import (
	"net/http"

	"github.com/alyprop/propreport/internal/common"
	"github.com/alyprop/propreport/internal/config"
)

type healthResponse struct {
	Status                 string  `json:"status"`
	PropertyDataConfigured bool    `json:"property_data_configured"`
	LLMConfigured          bool    `json:"llm_configured"`
	LLMProvider            string  `json:"llm_provider"`
	ReportCost             float64 `json:"report_cost"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleHealth reports which collaborators have credentials, so operators
// can tell a degraded deployment from a broken one.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:                 "ok",
		PropertyDataConfigured: s.cfg.PropertyDataConfigured(),
		LLMConfigured:          s.cfg.LLMConfigured(),
		LLMProvider:            s.providerName,
		ReportCost:             config.ReportCost,
	})
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	entries := common.LogEntries()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(entries),
		"entries": entries,
	})
}
