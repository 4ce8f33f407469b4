package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studykeep/studykeep/internal/ident"
	"github.com/studykeep/studykeep/internal/kv/memory"
	"github.com/studykeep/studykeep/internal/logger"
	"github.com/studykeep/studykeep/internal/persist"
	"github.com/studykeep/studykeep/internal/services"
	"github.com/studykeep/studykeep/internal/store"
	"github.com/studykeep/studykeep/internal/view"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	provider := memory.New()
	log := logger.New("api-test")
	st := store.New(ident.New(), persist.NewBridge(provider, log), log)
	st.Load(context.Background())
	svc := services.NewTopicService(st, view.NewSelector())

	srv := httptest.NewServer(NewRouter(svc, provider, nil))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, payload interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func doRequest(t *testing.T, method, url string, payload interface{}) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func createTopic(t *testing.T, srv *httptest.Server, name string) string {
	t.Helper()
	resp := postJSON(t, srv.URL+"/api/topics", map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var topic struct {
		ID json.Number `json:"id"`
	}
	decode(t, resp, &topic)
	return topic.ID.String()
}

func TestCreateTopic(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/topics", map[string]string{"name": "Math"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var topic struct {
		ID          json.Number `json:"id"`
		Name        string      `json:"name"`
		TimeEntries []any       `json:"timeEntries"`
		Grades      []any       `json:"grades"`
	}
	decode(t, resp, &topic)
	assert.Equal(t, "Math", topic.Name)
	assert.NotEmpty(t, topic.ID.String())
	assert.Empty(t, topic.TimeEntries)
	assert.Empty(t, topic.Grades)
}

func TestCreateTopic_BlankNameRejected(t *testing.T) {
	srv := newTestServer(t)

	for _, name := range []string{"", "   "} {
		resp := postJSON(t, srv.URL+"/api/topics", map[string]string{"name": name})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		_ = resp.Body.Close()
	}

	resp, err := http.Get(srv.URL + "/api/topics")
	require.NoError(t, err)
	var list struct {
		Count int `json:"count"`
	}
	decode(t, resp, &list)
	assert.Zero(t, list.Count)
}

func TestDeleteTopic_Idempotent(t *testing.T) {
	srv := newTestServer(t)
	id := createTopic(t, srv, "Math")

	resp := doRequest(t, http.MethodDelete, srv.URL+"/api/topics/"+id, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	// Deleting again is still a quiet no-op.
	resp = doRequest(t, http.MethodDelete, srv.URL+"/api/topics/"+id, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doRequest(t, http.MethodGet, srv.URL+"/api/topics/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestLogTimeAndGrades(t *testing.T) {
	srv := newTestServer(t)
	id := createTopic(t, srv, "Math")

	resp := postJSON(t, srv.URL+"/api/topics/"+id+"/time", map[string]interface{}{
		"hours": 1.5, "date": "2024-01-01", "notes": "algebra",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	resp = postJSON(t, srv.URL+"/api/topics/"+id+"/grades", map[string]interface{}{
		"value": 80, "date": "2024-01-02", "type": "quiz",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doRequest(t, http.MethodGet, srv.URL+"/api/topics/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var topic struct {
		TimeEntries []struct {
			Hours float64 `json:"hours"`
			Notes string  `json:"notes"`
		} `json:"timeEntries"`
		Grades []struct {
			Value float64 `json:"value"`
			Type  string  `json:"type"`
		} `json:"grades"`
	}
	decode(t, resp, &topic)
	require.Len(t, topic.TimeEntries, 1)
	require.Len(t, topic.Grades, 1)
	assert.Equal(t, 1.5, topic.TimeEntries[0].Hours)
	assert.Equal(t, "quiz", topic.Grades[0].Type)
}

func TestLogTime_Validation(t *testing.T) {
	srv := newTestServer(t)
	id := createTopic(t, srv, "Math")

	cases := []struct {
		name    string
		payload map[string]interface{}
		status  int
	}{
		{"zero hours", map[string]interface{}{"hours": 0, "date": "2024-01-01"}, http.StatusBadRequest},
		{"negative hours", map[string]interface{}{"hours": -1, "date": "2024-01-01"}, http.StatusBadRequest},
		{"missing date", map[string]interface{}{"hours": 1}, http.StatusBadRequest},
		{"bad date", map[string]interface{}{"hours": 1, "date": "Jan 1"}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+"/api/topics/"+id+"/time", tc.payload)
			assert.Equal(t, tc.status, resp.StatusCode)
			_ = resp.Body.Close()
		})
	}

	// Unknown topic: 404, not a crash.
	resp := postJSON(t, srv.URL+"/api/topics/999999/time", map[string]interface{}{
		"hours": 1, "date": "2024-01-01",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestLogGrade_RequiresValue(t *testing.T) {
	srv := newTestServer(t)
	id := createTopic(t, srv, "Math")

	resp := postJSON(t, srv.URL+"/api/topics/"+id+"/grades", map[string]interface{}{
		"date": "2024-01-01",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestTopicStats(t *testing.T) {
	srv := newTestServer(t)
	id := createTopic(t, srv, "Math")

	// Empty logs: zero hours is a value, the rest is N/A.
	resp := doRequest(t, http.MethodGet, srv.URL+"/api/topics/"+id+"/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats struct {
		TotalHours     float64     `json:"totalHours"`
		LatestGrade    interface{} `json:"latestGrade"`
		Efficiency     string      `json:"efficiency"`
		Recommendation string      `json:"recommendation"`
	}
	decode(t, resp, &stats)
	assert.Zero(t, stats.TotalHours)
	assert.Equal(t, "N/A", stats.LatestGrade)
	assert.Equal(t, "N/A", stats.Efficiency)
	assert.Equal(t, "Log more data to get recommendations", stats.Recommendation)

	for _, p := range []map[string]interface{}{
		{"hours": 2, "date": "2024-01-01"},
		{"hours": 2, "date": "2024-01-03"},
	} {
		r := postJSON(t, srv.URL+"/api/topics/"+id+"/time", p)
		require.Equal(t, http.StatusCreated, r.StatusCode)
		_ = r.Body.Close()
	}
	for _, p := range []map[string]interface{}{
		{"value": 70, "date": "2024-01-02"},
		{"value": 90, "date": "2024-01-04"},
	} {
		r := postJSON(t, srv.URL+"/api/topics/"+id+"/grades", p)
		require.Equal(t, http.StatusCreated, r.StatusCode)
		_ = r.Body.Close()
	}

	resp = doRequest(t, http.MethodGet, srv.URL+"/api/topics/"+id+"/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &stats)
	assert.Equal(t, 4.0, stats.TotalHours)
	assert.Equal(t, 90.0, stats.LatestGrade)
	assert.Equal(t, "20.00", stats.Efficiency) // avg 80 over 4 hours
	assert.Equal(t, "You're doing well! Maintain your current approach", stats.Recommendation)
}

func TestFilterLifecycle(t *testing.T) {
	srv := newTestServer(t)
	mathID := createTopic(t, srv, "Math")
	createTopic(t, srv, "History")

	// Default filter shows all.
	resp, err := http.Get(srv.URL + "/api/filter")
	require.NoError(t, err)
	var filter struct {
		TopicID string `json:"topicId"`
	}
	decode(t, resp, &filter)
	assert.Equal(t, "all", filter.TopicID)

	// Select Math, list shrinks to one.
	resp = doRequest(t, http.MethodPut, srv.URL+"/api/filter", map[string]string{"topicId": mathID})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = http.Get(srv.URL + "/api/topics")
	require.NoError(t, err)
	var list struct {
		Count int `json:"count"`
	}
	decode(t, resp, &list)
	assert.Equal(t, 1, list.Count)

	// Deleting the selected topic resets the filter to all.
	resp = doRequest(t, http.MethodDelete, srv.URL+"/api/topics/"+mathID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = http.Get(srv.URL + "/api/filter")
	require.NoError(t, err)
	decode(t, resp, &filter)
	assert.Equal(t, "all", filter.TopicID)

	resp, err = http.Get(srv.URL + "/api/topics")
	require.NoError(t, err)
	decode(t, resp, &list)
	assert.Equal(t, 1, list.Count)
}

func TestQuoteAbsentWhenDisabled(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/quote")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Status string `json:"status"`
	}
	decode(t, resp, &body)
	assert.Equal(t, "healthy", body.Status)
}

func TestInvalidTopicID(t *testing.T) {
	srv := newTestServer(t)
	for _, path := range []string{
		"/api/topics/not-a-number",
		"/api/topics/not-a-number/stats",
	} {
		resp := doRequest(t, http.MethodGet, srv.URL+path, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, fmt.Sprintf("path %s", path))
		_ = resp.Body.Close()
	}
}
