package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"trustgate/cmd/api/clients/scanclient"
	"trustgate/cmd/api/handlers"
	"trustgate/cmd/api/services"
	"trustgate/models"
)

func newScanTestRouter(t *testing.T, upstream http.HandlerFunc, apiKey string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	client := scanclient.NewWithClient(server.Client(), server.URL, apiKey)
	svc := services.NewScanService(client, time.Second, 3)

	r := gin.New()
	security := r.Group("/security")
	security.POST("/external-scans", handlers.CreateScanHandler(svc))
	security.GET("/external-scans/:id", handlers.GetScanHandler(svc))
	security.GET("/external-scans/:id/findings", handlers.GetScanFindingsHandler(svc))
	security.GET("/external-scans/:id/findings/:findingId", handlers.GetFindingDetailsHandler(svc))
	security.GET("/external-scans/:id/breaches", handlers.GetScanBreachesHandler(svc))
	security.GET("/external-scans/:id/report-url", handlers.GetReportURLHandler(svc))
	return r
}

func TestCreateScanDecoratesRiskLevel(t *testing.T) {
	r := newScanTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Assessment{
			ID:            "scan-7",
			ScanStatus:    models.ScanCompleted,
			SecurityScore: "D",
		})
	}, "key")

	resp := doJSON(t, r, http.MethodPost, "/security/external-scans", "", map[string]any{
		"organizationName": "Example Co",
		"domain":           "example.com",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["riskLevel"] != string(models.RiskAtRisk) {
		t.Fatalf("expected at-risk for score D, got %v", body["riskLevel"])
	}
}

func TestCreateScanValidatesDomain(t *testing.T) {
	r := newScanTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		t.Errorf("upstream must not be called for invalid input")
	}, "key")

	resp := doJSON(t, r, http.MethodPost, "/security/external-scans", "", map[string]any{
		"organizationName": "Example Co",
		"domain":           "not a domain",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid domain, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestGetScanMapsNotFoundAndUnconfigured(t *testing.T) {
	r := newScanTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		http.NotFound(w, req)
	}, "key")

	resp := doJSON(t, r, http.MethodGet, "/security/external-scans/missing", "", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}

	unconfigured := newScanTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		t.Errorf("upstream must not be called without a credential")
	}, "")
	resp = doJSON(t, unconfigured, http.MethodGet, "/security/external-scans/scan-1", "", nil)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when unconfigured, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestFindingsAreRelayedVerbatim(t *testing.T) {
	const findings = `{"findings":[{"id":"f-1","severity":"high","unexpectedField":42}]}`
	r := newScanTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(findings))
	}, "key")

	resp := doJSON(t, r, http.MethodGet, "/security/external-scans/scan-1/findings", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Body.String() != findings {
		t.Fatalf("expected verbatim relay, got %s", resp.Body.String())
	}
}

func TestUpstreamFailureSurfacesAsBadGateway(t *testing.T) {
	r := newScanTestRouter(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, "key")

	resp := doJSON(t, r, http.MethodGet, "/security/external-scans/scan-1/breaches", "", nil)
	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", resp.Code, resp.Body.String())
	}
}
