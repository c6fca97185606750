package rpc

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPCaller_Call(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"tag_changed":true}`))
	}))
	defer srv.Close()

	c := NewHTTPCaller(Config{Endpoint: srv.URL + "/", Token: "tok", TimeoutSeconds: 5})
	var out SingleGameResult
	err := c.Call(context.Background(), CmdSyncSingleGameWithData, map[string]any{"appid": "730"}, &out)
	require.NoError(t, err)

	assert.Equal(t, "/rpc/sync_single_game_with_data", gotPath)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "730", gotBody["appid"])
	assert.True(t, out.Success)
	assert.True(t, out.TagChanged)
}

func TestHTTPCaller_Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	c := NewHTTPCaller(Config{Endpoint: srv.URL})
	err := c.Call(context.Background(), CmdGetSettings, nil, nil)
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
	assert.Equal(t, "boom", statusErr.Body)
	assert.ErrorIs(t, err, ErrBackendFailure)
}

func TestHTTPCaller_ContextCancel(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := NewHTTPCaller(Config{Endpoint: srv.URL, TimeoutSeconds: 10})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := c.Call(ctx, CmdGetSyncProgress, nil, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHTTPCaller_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	c := NewHTTPCaller(Config{Endpoint: srv.URL})
	var out SyncProgress
	err := c.Call(context.Background(), CmdGetSyncProgress, nil, &out)
	assert.ErrorContains(t, err, "failed to decode response")
}
