package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finitolabs/finito"
	adapter "github.com/finitolabs/finito/internal/adapters/http"
	"github.com/finitolabs/finito/internal/logging"
	"github.com/finitolabs/finito/pkg/dsl"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	machine, err := dsl.New().
		State("q0").Initial().On("a", "q1").On("b", "q0").
		State("q1").Final().On("a", "q1").On("b", "q0").
		Build()
	require.NoError(t, err)

	eng := finito.NewEngine(finito.WithMachine(machine))
	srv := httptest.NewServer(adapter.NewMeteredHandler(eng, logging.NewNop()))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
}

func TestAccept(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/accept", map[string]string{"input": "ba"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Input    string `json:"input"`
		Accepted bool   `json:"accepted"`
	}
	decode(t, resp, &body)
	assert.True(t, body.Accepted)
	assert.Equal(t, "ba", body.Input)
}

func TestTrace(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/trace", map[string]string{"input": "ba"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Accepted bool `json:"accepted"`
		Configs  []struct {
			Step    int    `json:"step"`
			StateID string `json:"state_id"`
		} `json:"configs"`
	}
	decode(t, resp, &body)
	require.Len(t, body.Configs, 3)
	assert.Equal(t, "q0", body.Configs[0].StateID)
	assert.Equal(t, "q1", body.Configs[2].StateID)
	assert.True(t, body.Accepted)
}

func TestPutMachine_ReplacesAtomically(t *testing.T) {
	srv := newTestServer(t)

	// A broken body must not disturb the serving machine.
	bad, err := http.NewRequest(http.MethodPut, srv.URL+"/machine", bytes.NewReader([]byte("{broken")))
	require.NoError(t, err)
	badResp, err := http.DefaultClient.Do(bad)
	require.NoError(t, err)
	badResp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, badResp.StatusCode)

	check := postJSON(t, srv.URL+"/accept", map[string]string{"input": "a"})
	var verdict struct {
		Accepted bool `json:"accepted"`
	}
	decode(t, check, &verdict)
	assert.True(t, verdict.Accepted, "machine should survive the failed load")

	// A valid replacement takes effect.
	replacement := `{"alphabet": ["x"], "states": ["s"], "initial_state": "s", "final_states": ["s"], "transitions": {"s,x": "s"}}`
	req, err := http.NewRequest(http.MethodPut, srv.URL+"/machine", bytes.NewReader([]byte(replacement)))
	require.NoError(t, err)
	ok, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	ok.Body.Close()
	require.Equal(t, http.StatusNoContent, ok.StatusCode)

	check = postJSON(t, srv.URL+"/accept", map[string]string{"input": "xx"})
	decode(t, check, &verdict)
	assert.True(t, verdict.Accepted)
}

func TestClosure(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/closure", map[string]any{
		"symbols": "ab", "max_length": 2, "include_empty": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Count   int      `json:"count"`
		Strings []string `json:"strings"`
	}
	decode(t, resp, &body)
	assert.Equal(t, 7, body.Count)
	assert.Equal(t, []string{"", "a", "b", "aa", "ab", "ba", "bb"}, body.Strings)
}

func TestClosure_OverLimit(t *testing.T) {
	machine, err := dsl.New().State("q0").Initial().Build()
	require.NoError(t, err)
	eng := finito.NewEngine(finito.WithMachine(machine), finito.WithClosureLimit(3))
	srv := httptest.NewServer(adapter.NewMeteredHandler(eng, logging.NewNop()))
	t.Cleanup(srv.Close)

	resp := postJSON(t, srv.URL+"/closure", map[string]any{
		"symbols": "ab", "max_length": 4, "include_empty": true,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestAnalyze(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/analyze", map[string]string{"input": "abc"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Substrings []string `json:"substrings"`
		Prefixes   []string `json:"prefixes"`
		Suffixes   []string `json:"suffixes"`
	}
	decode(t, resp, &body)
	assert.Len(t, body.Substrings, 6)
	assert.Equal(t, []string{"a", "ab", "abc"}, body.Prefixes)
	assert.Equal(t, []string{"abc", "bc", "c"}, body.Suffixes)
}

func TestValidate(t *testing.T) {
	machine, err := dsl.New().
		State("q0").Initial().
		State("orphan").Final().
		Build()
	require.NoError(t, err)
	eng := finito.NewEngine(finito.WithMachine(machine))
	srv := httptest.NewServer(adapter.NewMeteredHandler(eng, logging.NewNop()))
	t.Cleanup(srv.Close)

	resp := postJSON(t, srv.URL+"/validate", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Valid    bool     `json:"valid"`
		Findings []string `json:"findings"`
	}
	decode(t, resp, &body)
	assert.True(t, body.Valid)
	assert.NotEmpty(t, body.Findings, "orphan final state should be flagged")
}

func TestTrace_NoInitialState(t *testing.T) {
	eng := finito.NewEngine()
	srv := httptest.NewServer(adapter.NewMeteredHandler(eng, logging.NewNop()))
	t.Cleanup(srv.Close)

	resp := postJSON(t, srv.URL+"/trace", map[string]string{"input": "a"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestHealthAndMetrics(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Drive one simulation so a counter exists.
	postJSON(t, srv.URL+"/accept", map[string]string{"input": "a"}).Body.Close()

	metrics, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer metrics.Body.Close()
	assert.Equal(t, http.StatusOK, metrics.StatusCode)
}
