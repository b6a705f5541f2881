package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/libra/internal/hermes"
)

const balancedExport = "1/15/24, 3:00 PM - Alice: hey\n" +
	"1/15/24, 3:05 PM - Bob: hey back\n" +
	"1/15/24, 3:10 PM - Alice: what's up?\n" +
	"1/15/24, 3:12 PM - Bob: nm u?"

// fakePublisher records published events for assertions.
type fakePublisher struct {
	subjects []string
	events   []any
}

func (f *fakePublisher) Publish(subject string, data any) error {
	f.subjects = append(f.subjects, subject)
	f.events = append(f.events, data)
	return nil
}

func newTestServer(token string, events Publisher) *Server {
	return NewServer(8760, token, nil, events, slog.Default())
}

func postJSON(t *testing.T, srv *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer("", nil)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestStatusEndpoint(t *testing.T) {
	srv := newTestServer("", nil)

	req := httptest.NewRequest("GET", "/api/v1/libra/status", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "libra", body["agent"])
}

func TestAnalyzeTranscriptEndpoint(t *testing.T) {
	events := &fakePublisher{}
	srv := newTestServer("", events)

	w := postJSON(t, srv, "/api/v1/analyze/", AnalyzeRequest{Transcript: balancedExport})

	require.Equal(t, http.StatusOK, w.Code)
	var resp AnalyzeResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "BALANCED", resp.Label)
	assert.Equal(t, 90, resp.Score)

	require.Len(t, events.subjects, 1)
	assert.Equal(t, hermes.SubjectAnalysisCompleted, events.subjects[0])
}

func TestAnalyzeMessagesEndpoint(t *testing.T) {
	srv := newTestServer("", nil)

	req := AnalyzeRequest{Messages: []MessageInput{
		{Text: "hey, how was your weekend?", Side: "self"},
		{Text: "pretty good, went hiking", Side: "other"},
		{Text: "oh nice, where did you go?", Side: "self"},
		{Text: "up in the hills, you should come next time", Side: "other"},
	}}
	w := postJSON(t, srv, "/api/v1/analyze/", req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp AnalyzeResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Breakdown.Self.Messages)
	assert.Equal(t, 2, resp.Breakdown.Other.Messages)
}

func TestAnalyzeEndpoint_UnknownSide(t *testing.T) {
	srv := newTestServer("", nil)

	req := AnalyzeRequest{Messages: []MessageInput{
		{Text: "hey", Side: "them"},
		{Text: "hi", Side: "self"},
		{Text: "yo", Side: "other"},
	}}
	w := postJSON(t, srv, "/api/v1/analyze/", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeEndpoint_InsufficientData(t *testing.T) {
	srv := newTestServer("", nil)

	w := postJSON(t, srv, "/api/v1/analyze/", AnalyzeRequest{Transcript: "alice: hey"})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Contains(t, body["error"], "not enough messages")
}

func TestAnalyzeEndpoint_InvalidJSON(t *testing.T) {
	srv := newTestServer("", nil)

	req := httptest.NewRequest("POST", "/api/v1/analyze/", bytes.NewReader([]byte("{nope")))
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeGroupEndpoint(t *testing.T) {
	srv := newTestServer("", nil)

	transcript := "Ana: planning the trip for next month\n" +
		"Ben: count me in for sure\n" +
		"Ana: great, what dates work?\n" +
		"Cal: ok\n" +
		"Ana: checking with everyone first\n" +
		"Ben: early in the month is best"
	w := postJSON(t, srv, "/api/v1/analyze/group", GroupRequest{Transcript: transcript})

	require.Equal(t, http.StatusOK, w.Code)
	var resp GroupResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 6, resp.TotalMessages)
	assert.Equal(t, 3, resp.TotalParticipants)
	assert.NotEmpty(t, resp.ID)
}

func TestAnalyzeCompareEndpoint(t *testing.T) {
	srv := newTestServer("", nil)

	onesided := "1/15/24, 3:00 PM - Alice: hey\n" +
		"1/15/24, 3:05 PM - Alice: you there?\n" +
		"1/15/24, 3:10 PM - Alice: hello??\n" +
		"1/15/24, 4:10 PM - Bob: k"
	w := postJSON(t, srv, "/api/v1/analyze/compare", CompareRequest{A: balancedExport, B: onesided})

	require.Equal(t, http.StatusOK, w.Code)
	var resp CompareResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.NotNil(t, resp.A)
	require.NotNil(t, resp.B)
	assert.Greater(t, resp.A.Score, resp.B.Score)
}

func TestBearerAuth(t *testing.T) {
	srv := newTestServer("sekrit", nil)

	w := postJSON(t, srv, "/api/v1/analyze/", AnalyzeRequest{Transcript: balancedExport})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	payload, _ := json.Marshal(AnalyzeRequest{Transcript: balancedExport})
	req := httptest.NewRequest("POST", "/api/v1/analyze/", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer sekrit")
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
