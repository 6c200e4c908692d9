package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/point-ledger/internal/service/config"
)

type stubHandler struct {
	name string
}

func (s stubHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Handler", s.name)
	w.WriteHeader(http.StatusTeapot)
}

type h struct{}

func (h) GetPoint(w http.ResponseWriter, r *http.Request) {
	stubHandler{name: "get_point"}.ServeHTTP(w, r)
}
func (h) GetHistories(w http.ResponseWriter, r *http.Request) {
	stubHandler{name: "get_histories"}.ServeHTTP(w, r)
}
func (h) Charge(w http.ResponseWriter, r *http.Request) {
	stubHandler{name: "charge"}.ServeHTTP(w, r)
}
func (h) Use(w http.ResponseWriter, r *http.Request) {
	stubHandler{name: "use"}.ServeHTTP(w, r)
}
func (h) Ping(w http.ResponseWriter, r *http.Request) {
	stubHandler{name: "ping"}.ServeHTTP(w, r)
}

func newTestServer(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()

	r := New(cfg, nil)
	r.SetRouter(h{})
	srv := httptest.NewServer(r.GetRouter())
	t.Cleanup(srv.Close)
	return srv
}

func TestCustomRouter_Route_happyTests(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		method   string
		path     string
		wantName string
		wantCode int
	}{
		{http.MethodGet, "/point/1", "get_point", http.StatusTeapot},
		{http.MethodGet, "/point/abc", "get_point", http.StatusTeapot},
		{http.MethodGet, "/point/1/histories", "get_histories", http.StatusTeapot},
		{http.MethodPatch, "/point/1/charge", "charge", http.StatusTeapot},
		{http.MethodPatch, "/point/1/use", "use", http.StatusTeapot},
		{http.MethodGet, "/ping", "ping", http.StatusTeapot},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, strings.NewReader(`{"amount":100}`))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			err = resp.Body.Close()
			require.NoError(t, err)

			assert.Equal(t, tt.wantCode, resp.StatusCode)
			assert.Equal(t, tt.wantName, resp.Header.Get("X-Handler"))
		})
	}
}

func TestCustomRouter_Route_wrong_routes(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		method   string
		path     string
		wantCode int
	}{
		{http.MethodGet, "/", http.StatusNotFound},
		{http.MethodGet, "/point", http.StatusNotFound},
		{http.MethodGet, "/point/1/history", http.StatusNotFound},
		{http.MethodPatch, "/point/1/withdraw", http.StatusNotFound},
		{http.MethodGet, "/ping/", http.StatusNotFound},

		{http.MethodPost, "/point/1", http.StatusMethodNotAllowed},
		{http.MethodDelete, "/point/1/histories", http.StatusMethodNotAllowed},
		{http.MethodGet, "/point/1/charge", http.StatusMethodNotAllowed},
		{http.MethodPost, "/point/1/use", http.StatusMethodNotAllowed},
		{http.MethodPost, "/ping?x=true", http.StatusMethodNotAllowed},
		{http.MethodPost, "/metrics", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, http.NoBody)
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			err = resp.Body.Close()
			require.NoError(t, err)

			assert.Equal(t, tt.wantCode, resp.StatusCode)
		})
	}
}

func TestCustomRouter_contentType(t *testing.T) {
	srv := newTestServer(t, nil)

	req, err := http.NewRequest(http.MethodPatch, srv.URL+"/point/1/charge",
		strings.NewReader(`amount=100`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
}

func TestCustomRouter_cors(t *testing.T) {
	srv := newTestServer(t, &config.Config{AllowedOrigins: []string{"https://shop.example"}})

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/point/1/charge", http.NoBody)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://shop.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "https://shop.example", resp.Header.Get("Access-Control-Allow-Origin"))

	req, err = http.NewRequest(http.MethodGet, srv.URL+"/point/1", http.NoBody)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://evil.example")

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestCustomRouter_metrics(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/point/7")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `point_ledger_http_requests_total{method="GET",route="/point/{id}`)
}
