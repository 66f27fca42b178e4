//nolint:funlen // ok for tests
package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexaero/aerosim-service-go/pkg/model"
	"github.com/apexaero/aerosim-service-go/pkg/track"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	registry, err := track.NewRegistry()
	require.NoError(t, err)
	srv := httptest.NewServer(NewServer(registry).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json",
		strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, target any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestServer_Tracks(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/tracks")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var tracks []model.TrackInfo
	decodeBody(t, resp, &tracks)
	assert.Len(t, tracks, 24)
}

func TestServer_SimulateLap(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/simulate/lap",
		`{"track": "monza", "config": {"dragCoefficient": 0.68}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body simulateResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "Italy", body.Track)
	assert.Greater(t, body.Result.LapTimeSeconds, 60.0)
	assert.NotEmpty(t, body.Result.LapTime)
	assert.Positive(t, body.Metrics.TopSpeed)
}

func TestServer_SimulateLap_Errors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "unknown track",
			body:       `{"track": "Atlantis", "config": {}}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid configuration",
			body:       `{"track": "monza", "config": {"dragCoefficient": -1}}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{"track": `,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, srv, "/api/simulate/lap", tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body errorResponse
			decodeBody(t, resp, &body)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestServer_SimulateCircuit(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/simulate/circuit",
		`{"track": "Monaco", "config": {}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body model.CircuitAnalysis
	decodeBody(t, resp, &body)
	assert.Equal(t, "Circuit de Monaco", body.TrackName)
	assert.Equal(t, model.DownforceHigh, body.DownforceRequirement)
	assert.NotEmpty(t, body.QualifyingLapTime)
	assert.NotEmpty(t, body.CriticalCorners)
}

func TestServer_PredictPerformance(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/predict/performance",
		`{"track": "Bahrain", "config": {"clFront": 1.8, "clRear": 2.2}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body model.PerformanceMetrics
	decodeBody(t, resp, &body)
	assert.Positive(t, body.TopSpeed)
	assert.Positive(t, body.AvgCornerSpeed)
	assert.InDelta(t, 1.8/4.0*100, body.OverallBalance, 1e-6)
}

func TestServer_CompareBaseline(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/api/compare/baseline",
		`{"track": "Italy", "predictedTime": "1:20.327"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body model.BaselineComparison
	decodeBody(t, resp, &body)
	assert.True(t, body.Available)
	assert.Equal(t, "1:19.327", body.Baseline2024)
	assert.InDelta(t, 1.0, body.DeltaSeconds, 1e-6)
}

func TestServer_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/simulate/lap")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
