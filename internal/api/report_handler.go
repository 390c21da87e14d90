// File path: internal/api/report_handler.go
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/alyprop/propreport/internal/common"
	"github.com/alyprop/propreport/internal/property"
	"github.com/alyprop/propreport/internal/report"
)

const minAddressLength = 5

type reportRequest struct {
	Address string `json:"address"`
}

func decodeAddress(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return "", false
	}
	address := strings.TrimSpace(req.Address)
	if len(address) < minAddressLength {
		writeError(w, http.StatusBadRequest, "address must be at least 5 characters")
		return "", false
	}
	return address, true
}

func (s *Server) handleLegacyReport(w http.ResponseWriter, r *http.Request) {
	address, ok := decodeAddress(w, r)
	if !ok {
		return
	}
	rep, err := s.generator.GenerateLegacyReport(r.Context(), address)
	if err != nil {
		s.writeReportError(w, address, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleLegendaryReport(w http.ResponseWriter, r *http.Request) {
	address, ok := decodeAddress(w, r)
	if !ok {
		return
	}
	rep, err := s.generator.GenerateLegendaryReport(r.Context(), address)
	if err != nil {
		s.writeReportError(w, address, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleSampleStructure(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, report.Sample())
}

func (s *Server) writeReportError(w http.ResponseWriter, address string, err error) {
	if errors.Is(err, property.ErrNotFound) {
		writeError(w, http.StatusNotFound, "no property record found for that address")
		return
	}
	common.Logger().Error("api: report generation failed", "address", address, "error", err)
	writeError(w, http.StatusBadGateway, "report generation failed")
}
