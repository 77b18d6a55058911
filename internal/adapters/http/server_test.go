package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/polish"
	httpAdapter "github.com/aretw0/polish/internal/adapters/http"
	"github.com/aretw0/polish/internal/logging"
	"github.com/aretw0/polish/pkg/adapters/memory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	handler := httpAdapter.NewHandler(
		polish.New(),
		memory.NewStore(),
		prometheus.NewRegistry(),
		logging.NewNop(),
	)
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func postAnalyze(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/analyze", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHandleAnalyze_Success(t *testing.T) {
	srv := newTestServer(t)

	resp := postAnalyze(t, srv, `{"expression": "(a+b)*c"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out httpAdapter.AnalyzeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "infix", string(out.Notation))
	assert.Equal(t, "ab+c*", out.Postfix)
	assert.Equal(t, "*+abc", out.Prefix)
	assert.Equal(t, "((a+b)*c)", out.Infix)
	assert.Contains(t, out.Tree, "└── *")
}

func TestHandleAnalyze_InvalidBody(t *testing.T) {
	srv := newTestServer(t)

	resp := postAnalyze(t, srv, `{not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleAnalyze_AnalysisError(t *testing.T) {
	srv := newTestServer(t)

	resp := postAnalyze(t, srv, `{"expression": "a+()"}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out httpAdapter.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Contains(t, out.Error, "empty parentheses")
	// No partial results alongside the error.
	assert.NotContains(t, string(body), "postfix")
}

func TestHandleGet_History(t *testing.T) {
	srv := newTestServer(t)

	resp := postAnalyze(t, srv, `{"expression": "ab+c*"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var analyzed httpAdapter.AnalyzeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&analyzed))

	getResp, err := http.Get(srv.URL + "/analyses/" + analyzed.ID)
	require.NoError(t, err)
	defer getResp.Body.Close()
	require.Equal(t, http.StatusOK, getResp.StatusCode)

	var loaded httpAdapter.AnalyzeResponse
	require.NoError(t, json.NewDecoder(getResp.Body).Decode(&loaded))
	assert.Equal(t, "ab+c*", loaded.Postfix)
	assert.Equal(t, "postfix", string(loaded.Notation))
}

func TestHandleGet_NotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/analyses/missing")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleDelete(t *testing.T) {
	srv := newTestServer(t)

	resp := postAnalyze(t, srv, `{"expression": "ab+"}`)
	var analyzed httpAdapter.AnalyzeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&analyzed))

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/analyses/"+analyzed.ID, nil)
	require.NoError(t, err)
	delResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer delResp.Body.Close()
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)

	getResp, err := http.Get(srv.URL + "/analyses/" + analyzed.ID)
	require.NoError(t, err)
	defer getResp.Body.Close()
	assert.Equal(t, http.StatusNotFound, getResp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	// Produce one success and one failure so both counters exist.
	postAnalyze(t, srv, `{"expression": "a+b"}`)
	postAnalyze(t, srv, `{"expression": "ab"}`)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.True(t, strings.Contains(string(body), `polish_analyses_total{notation="infix"} 1`))
	assert.True(t, strings.Contains(string(body), `polish_analysis_failures_total{reason="missing_operator"} 1`))
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
