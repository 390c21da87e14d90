// File path: internal/api/server_test.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alyprop/propreport/internal/config"
	"github.com/alyprop/propreport/internal/property"
	"github.com/alyprop/propreport/internal/report"
)

type stubGenerator struct {
	legacy    report.LegacyReport
	legendary report.LegendaryReport
	err       error
}

func (s *stubGenerator) GenerateLegacyReport(ctx context.Context, address string) (report.LegacyReport, error) {
	return s.legacy, s.err
}

func (s *stubGenerator) GenerateLegendaryReport(ctx context.Context, address string) (report.LegendaryReport, error) {
	return s.legendary, s.err
}

type stubAssistant struct {
	reply string
	err   error
}

func (s *stubAssistant) Chat(ctx context.Context, question, reportContext string) (string, error) {
	return s.reply, s.err
}

func testServer(gen ReportGenerator, assistant ChatAssistant) *Server {
	return NewServer(config.Config{}, gen, assistant, "local")
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestReportHappyPath(t *testing.T) {
	gen := &stubGenerator{legacy: report.LegacyReport{ReportID: "report-1", Cost: 5.00}}
	srv := testServer(gen, &stubAssistant{})

	rec := postJSON(t, srv.Handler(), "/v1/report", `{"address":"123 Main St, Austin, TX"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got report.LegacyReport
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ReportID != "report-1" || got.Cost != 5.00 {
		t.Fatalf("unexpected report payload: %+v", got)
	}
}

func TestReportRejectsShortAddress(t *testing.T) {
	srv := testServer(&stubGenerator{}, &stubAssistant{})

	rec := postJSON(t, srv.Handler(), "/v1/report", `{"address":"abc"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestReportRejectsInvalidJSON(t *testing.T) {
	srv := testServer(&stubGenerator{}, &stubAssistant{})

	rec := postJSON(t, srv.Handler(), "/v1/report", `{"address":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestReportNotFoundMapsTo404(t *testing.T) {
	gen := &stubGenerator{err: property.ErrNotFound}
	srv := testServer(gen, &stubAssistant{})

	rec := postJSON(t, srv.Handler(), "/v1/report", `{"address":"999 Ghost Rd, Nowhere"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestReportUpstreamFailureMapsTo502(t *testing.T) {
	gen := &stubGenerator{err: errors.New("upstream exploded")}
	srv := testServer(gen, &stubAssistant{})

	rec := postJSON(t, srv.Handler(), "/v1/report/legendary", `{"address":"123 Main St, Austin"}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestSampleStructureEndpoint(t *testing.T) {
	srv := testServer(&stubGenerator{}, &stubAssistant{})

	req := httptest.NewRequest(http.MethodGet, "/v1/report/sample", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var sample report.SampleStructure
	if err := json.Unmarshal(rec.Body.Bytes(), &sample); err != nil {
		t.Fatalf("decode sample: %v", err)
	}
	if len(sample.LegacySections) != 8 || len(sample.LegendarySections) != 11 {
		t.Fatalf("unexpected section counts: %d legacy, %d legendary",
			len(sample.LegacySections), len(sample.LegendarySections))
	}
}

func TestChatEndpoint(t *testing.T) {
	srv := testServer(&stubGenerator{}, &stubAssistant{reply: "Focus on equity."})

	rec := postJSON(t, srv.Handler(), "/v1/chat", `{"question":"What matters most?"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp chatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode chat response: %v", err)
	}
	if resp.Reply != "Focus on equity." {
		t.Fatalf("unexpected reply: %q", resp.Reply)
	}
}

func TestChatRequiresQuestion(t *testing.T) {
	srv := testServer(&stubGenerator{}, &stubAssistant{reply: "hi"})

	rec := postJSON(t, srv.Handler(), "/v1/chat", `{"question":"  "}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHealthEndpoints(t *testing.T) {
	cfg := config.Config{EstatedAPIKey: "key", AnthropicAPIKey: "key"}
	srv := NewServer(cfg, &stubGenerator{}, &stubAssistant{}, "anthropic")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz: expected 200, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", rec.Code)
	}
	var health healthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if !health.PropertyDataConfigured || !health.LLMConfigured || health.LLMProvider != "anthropic" {
		t.Fatalf("unexpected health payload: %+v", health)
	}
	if health.ReportCost != 5.00 {
		t.Fatalf("expected report cost 5.00, got %v", health.ReportCost)
	}
}

func TestLogsEndpoint(t *testing.T) {
	srv := testServer(&stubGenerator{}, &stubAssistant{})

	req := httptest.NewRequest(http.MethodGet, "/v1/logs", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode logs: %v", err)
	}
	if payload.Count < 0 {
		t.Fatalf("negative log count: %d", payload.Count)
	}
}
