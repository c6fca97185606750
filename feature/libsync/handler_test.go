package libsync

import (
	"io"
	"net/http/httptest"
	"testing"

	"progress-tracker/core/library"
	"progress-tracker/core/rpc"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(svc *Service) *fiber.App {
	app := fiber.New(fiber.Config{JSONEncoder: json.Marshal, JSONDecoder: json.Unmarshal})
	f := NewFeature(svc)
	_ = f.Load(app)
	return app
}

func decode[T any](t *testing.T, body io.Reader) T {
	t.Helper()
	var v T
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestHandler_Sync(t *testing.T) {
	svc := newService(&fakeSource{listings: [][]any{listing(3)}}, &fakeBackend{}, nil)
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("POST", "/sync", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	summary := decode[library.SyncSummary](t, resp.Body)
	assert.Equal(t, library.SyncSummary{Success: true, Total: 3, Synced: 3}, summary)
}

func TestHandler_SyncGame(t *testing.T) {
	backend := &fakeBackend{libraryRes: rpc.SyncResult{Success: true}}
	app := newTestApp(newService(&fakeSource{}, backend, nil))

	resp, err := app.Test(httptest.NewRequest("POST", "/sync/730", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, SingleResult{Success: true}, decode[SingleResult](t, resp.Body))
	require.Len(t, backend.library, 1)

	resp, err = app.Test(httptest.NewRequest("POST", "/sync/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandler_Status(t *testing.T) {
	svc := newService(&fakeSource{}, &fakeBackend{}, nil)
	svc.reconciler.BeginLocal()
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/sync/status", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	report := decode[StatusReport](t, resp.Body)
	assert.True(t, report.Syncing)
	assert.Equal(t, MessageStarting, report.Message)
}
