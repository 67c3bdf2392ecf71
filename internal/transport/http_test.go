package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ganot/tasktrack/internal/domain/item"
	"github.com/ganot/tasktrack/internal/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.RunMigrations(context.Background()))

	repo := sqlite.NewItemRepository(db, sqlite.NewSequenceAllocator(db, nil), "item_id", nil)
	server := httptest.NewServer(NewServer(item.NewService(repo, nil), Options{}))
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url, body string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, url, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestHTTPServer_Health(t *testing.T) {
	server := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/health", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", string(body))
}

func TestHTTPServer_ItemLifecycle(t *testing.T) {
	server := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/api/list", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"items":[]}`, string(body))

	resp, body = doJSON(t, http.MethodPut, server.URL+"/api/add",
		`{"description":"Do something","tags":["home","work"],"deadline":"Mon, 01 Jan 2001 00:00:00 GMT"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.JSONEq(t, `{"id":1}`, string(body))

	resp, body = doJSON(t, http.MethodPut, server.URL+"/api/add", `{"description":"Do something else"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.JSONEq(t, `{"id":2}`, string(body))

	resp, body = doJSON(t, http.MethodGet, server.URL+"/api/items/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got item.Item
	require.NoError(t, json.Unmarshal(body, &got))
	require.True(t, got.Equal(item.Item{
		ID:          1,
		Description: "Do something",
		Tags:        []string{"work", "home"},
		Deadline:    "Mon, 01 Jan 2001 00:00:00 GMT",
	}))

	resp, body = doJSON(t, http.MethodPost, server.URL+"/api/update", `{"id":2,"description":"Changed","tags":["x"]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"updated":true}`, string(body))

	resp, body = doJSON(t, http.MethodDelete, server.URL+"/api/remove/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"removed":true}`, string(body))

	resp, body = doJSON(t, http.MethodGet, server.URL+"/api/list", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"items":[{"id":2,"description":"Changed","tags":["x"],"deadline":""}]}`, string(body))
}

func TestHTTPServer_NotFound(t *testing.T) {
	server := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/api/items/42", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.JSONEq(t, `{"error":"item not found"}`, string(body))

	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/update", `{"id":42,"description":"Test"}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/update", `{"id":-1,"description":"Test"}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, server.URL+"/api/remove/42", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHTTPServer_BadRequests(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"malformed json", http.MethodPut, "/api/add", `{"description":`},
		{"unknown field", http.MethodPut, "/api/add", `{"description":"x","priority":1}`},
		{"missing description", http.MethodPut, "/api/add", `{"tags":["a"]}`},
		{"empty tag", http.MethodPut, "/api/add", `{"description":"x","tags":[""]}`},
		{"non-integer id", http.MethodDelete, "/api/remove/abc", ""},
		{"non-integer get", http.MethodGet, "/api/items/abc", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, tt.method, server.URL+tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var errResp ErrorResponse
			require.NoError(t, json.Unmarshal(body, &errResp))
			require.NotEmpty(t, errResp.Error)
		})
	}
}

type failingService struct {
	ItemService
}

func (failingService) List(context.Context) ([]item.Item, error) {
	return nil, errors.New("connection refused")
}

func TestHTTPServer_InternalError(t *testing.T) {
	server := httptest.NewServer(NewServer(failingService{}, Options{}))
	t.Cleanup(server.Close)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/api/list", "")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.JSONEq(t, `{"error":"internal error"}`, string(body))
}

func TestHTTPServer_OptionalHandlers(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("metrics"))
	})
	mcp := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("mcp " + r.Method))
	})
	server := httptest.NewServer(NewServer(failingService{}, Options{Metrics: metrics, MCP: mcp}))
	t.Cleanup(server.Close)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "metrics", string(body))

	resp, body = doJSON(t, http.MethodPost, server.URL+"/mcp", "{}")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "mcp POST", string(body))
}

func TestHTTPServer_OptionalHandlersAbsent(t *testing.T) {
	server := httptest.NewServer(NewServer(failingService{}, Options{}))
	t.Cleanup(server.Close)

	resp, _ := doJSON(t, http.MethodGet, server.URL+"/metrics", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
